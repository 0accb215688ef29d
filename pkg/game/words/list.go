// Package words supplies the crossword word pool.
//
// Words come from one of three places:
//   - a SQLite database (Store), seeded with the embedded defaults when empty;
//   - a plain text list on disk (LoadFile);
//   - the embedded default list (Defaults).
//
// List format is one word per line, "TEXT|difficulty|clue". Difficulty and clue
// are optional. Blank lines and lines starting with '#' are skipped.
package words

import (
	"bufio"
	_ "embed"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/LeaderGRL/ELGJ25-sub000/pkg/game/crossword"
)

//go:embed default_words.txt
var embeddedWords string

// ParseList reads a word list from r. Entries without letters are skipped.
func ParseList(r io.Reader) ([]crossword.Word, error) {
	var out []crossword.Word
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		raw := strings.TrimSpace(sc.Text())
		if raw == "" || strings.HasPrefix(raw, "#") {
			continue
		}

		fields := strings.SplitN(raw, "|", 3)
		difficulty := 0
		if len(fields) > 1 && strings.TrimSpace(fields[1]) != "" {
			d, err := strconv.Atoi(strings.TrimSpace(fields[1]))
			if err != nil {
				return nil, fmt.Errorf("line %d: bad difficulty %q: %w", line, fields[1], err)
			}
			difficulty = d
		}
		clue := ""
		if len(fields) > 2 {
			clue = fields[2]
		}

		w := crossword.NewWord(fields[0], clue, difficulty)
		if !w.Valid() {
			continue
		}
		out = append(out, w)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("scan word list: %w", err)
	}
	return out, nil
}

// LoadFile parses the word list at path
func LoadFile(path string) ([]crossword.Word, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open word list: %w", err)
	}
	defer f.Close()

	words, err := ParseList(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return words, nil
}

// Defaults returns the embedded word list
func Defaults() []crossword.Word {
	words, err := ParseList(strings.NewReader(embeddedWords))
	if err != nil {
		panic("embedded word list: " + err.Error())
	}
	return words
}

// Filter returns the words at or below maxDifficulty. A negative
// maxDifficulty keeps everything.
func Filter(pool []crossword.Word, maxDifficulty int) []crossword.Word {
	if maxDifficulty < 0 {
		return append([]crossword.Word(nil), pool...)
	}
	out := make([]crossword.Word, 0, len(pool))
	for _, w := range pool {
		if w.Difficulty <= maxDifficulty {
			out = append(out, w)
		}
	}
	return out
}
