package words

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog/log"

	"github.com/LeaderGRL/ELGJ25-sub000/pkg/game/crossword"
)

//go:embed migrations/*.sql
var migrations embed.FS

// Store is a SQLite-backed word pool
type Store struct {
	db *sql.DB
}

// Open opens (and creates if missing) the SQLite database at dsn and applies
// pending migrations. Use ":memory:" for a throwaway store.
func Open(dsn string) (*Store, error) {
	if path := strings.TrimPrefix(dsnPath(dsn), "file:"); path != ":memory:" && path != "" {
		dir := filepath.Dir(path)
		if dir != "." && dir != "" {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("mkdir %s: %w", dir, err)
			}
		}
	}

	db, err := sql.Open("sqlite3", withPragmas(dsn))
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", dsn, err)
	}
	// A second connection to ":memory:" would see an empty database.
	db.SetMaxOpenConns(1)

	if err := migrate(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &Store{db: db}, nil
}

const pragmas = "_busy_timeout=5000&_journal_mode=WAL"

// dsnPath returns dsn without its query string
func dsnPath(dsn string) string {
	path, _, _ := strings.Cut(dsn, "?")
	return path
}

// withPragmas appends the connection pragmas to dsn, keeping any query
// parameters it already carries.
func withPragmas(dsn string) string {
	if strings.Contains(dsn, "?") {
		return dsn + "&" + pragmas
	}
	return dsn + "?" + pragmas
}

// migrate applies embedded migrations in lexical order, recording each in
// _migrations so it runs once.
func migrate(db *sql.DB) error {
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS _migrations (name TEXT PRIMARY KEY);`); err != nil {
		return fmt.Errorf("create _migrations: %w", err)
	}

	files, err := fs.Glob(migrations, "migrations/*.sql")
	if err != nil {
		return fmt.Errorf("list migrations: %w", err)
	}
	sort.Strings(files)

	for _, f := range files {
		var done int
		err := db.QueryRow(`SELECT 1 FROM _migrations WHERE name=?`, f).Scan(&done)
		if err == nil {
			continue
		}
		if !errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("query _migrations: %w", err)
		}

		body, err := migrations.ReadFile(f)
		if err != nil {
			return fmt.Errorf("read %s: %w", f, err)
		}

		tx, err := db.Begin()
		if err != nil {
			return err
		}
		if _, err := tx.Exec(string(body)); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("apply %s: %w", f, err)
		}
		if _, err := tx.Exec(`INSERT INTO _migrations(name) VALUES (?)`, f); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("record %s: %w", f, err)
		}
		if err := tx.Commit(); err != nil {
			return fmt.Errorf("commit %s: %w", f, err)
		}
		log.Debug().Str("migration", f).Msg("applied")
	}
	return nil
}

// Close releases the database
func (s *Store) Close() error {
	return s.db.Close()
}

// Insert adds words, ignoring ones whose text is already stored. It returns
// how many rows were added.
func (s *Store) Insert(ctx context.Context, words ...crossword.Word) (int, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	stmt, err := tx.PrepareContext(ctx, `INSERT OR IGNORE INTO words(text, clue, difficulty) VALUES (?, ?, ?)`)
	if err != nil {
		_ = tx.Rollback()
		return 0, fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	added := 0
	for _, w := range words {
		w = crossword.NewWord(w.Text, w.Clue, w.Difficulty)
		if !w.Valid() {
			continue
		}
		res, err := stmt.ExecContext(ctx, w.Text, w.Clue, w.Difficulty)
		if err != nil {
			_ = tx.Rollback()
			return 0, fmt.Errorf("insert %s: %w", w.Text, err)
		}
		if n, err := res.RowsAffected(); err == nil {
			added += int(n)
		}
	}
	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit insert: %w", err)
	}
	return added, nil
}

// Count returns the number of stored words
func (s *Store) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM words`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count words: %w", err)
	}
	return n, nil
}

// Pool returns the words at or below maxDifficulty, ordered by text. A
// negative maxDifficulty returns every word.
func (s *Store) Pool(ctx context.Context, maxDifficulty int) ([]crossword.Word, error) {
	query := `SELECT text, clue, difficulty FROM words ORDER BY text`
	args := []any{}
	if maxDifficulty >= 0 {
		query = `SELECT text, clue, difficulty FROM words WHERE difficulty <= ? ORDER BY text`
		args = append(args, maxDifficulty)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query pool: %w", err)
	}
	defer rows.Close()

	var out []crossword.Word
	for rows.Next() {
		var w crossword.Word
		if err := rows.Scan(&w.Text, &w.Clue, &w.Difficulty); err != nil {
			return nil, fmt.Errorf("scan word: %w", err)
		}
		out = append(out, w)
	}
	return out, rows.Err()
}

// SeedDefaults loads the embedded word list when the store is empty. It
// returns how many words were added.
func (s *Store) SeedDefaults(ctx context.Context) (int, error) {
	n, err := s.Count(ctx)
	if err != nil {
		return 0, err
	}
	if n > 0 {
		return 0, nil
	}
	added, err := s.Insert(ctx, Defaults()...)
	if err != nil {
		return 0, fmt.Errorf("seed defaults: %w", err)
	}
	log.Info().Int("words", added).Msg("seeded word store")
	return added, nil
}
