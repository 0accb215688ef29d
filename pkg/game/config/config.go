// Package config resolves runtime settings from an optional .env file, the
// environment and command-line flags, in that order of precedence (flags win).
package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

// Renderer names accepted by -renderer
const (
	RendererTUI    = "tui"
	RendererEbiten = "ebiten"
)

// Config holds everything main needs to start a game
type Config struct {
	WordsDSN   string  // SQLite word store; empty means no store
	WordsFile  string  // plain word list, used when WordsDSN is empty
	Seed       *uint64 // nil for a random run
	StartLevel int
	Renderer   string
	Language   string
	LocaleDir  string
	LogLevel   zerolog.Level
	DumpDir    string
}

// Default returns the settings used when nothing is configured
func Default() Config {
	return Config{
		WordsDSN:   "data/words.db",
		StartLevel: 1,
		Renderer:   RendererTUI,
		Language:   "en_GB",
		LocaleDir:  "locales",
		LogLevel:   zerolog.InfoLevel,
		DumpDir:    ".",
	}
}

// Load reads .env (if present) into the environment, then builds a Config
// from the environment and args. args excludes the program name.
func Load(args []string) (Config, error) {
	_ = godotenv.Load()
	return parse(args, os.Getenv)
}

func parse(args []string, getenv func(string) string) (Config, error) {
	cfg := Default()

	env := func(key, def string) string {
		if v := getenv(key); v != "" {
			return v
		}
		return def
	}

	fs := flag.NewFlagSet("crossword", flag.ContinueOnError)
	fs.StringVar(&cfg.WordsDSN, "db", env("CROSSWORD_DB", cfg.WordsDSN), "SQLite word store (empty to disable)")
	fs.StringVar(&cfg.WordsFile, "words", env("CROSSWORD_WORDS_FILE", ""), "word list file, TEXT|difficulty|clue per line")
	seed := fs.String("seed", env("CROSSWORD_SEED", ""), "puzzle seed (empty for random)")
	level := fs.String("level", env("CROSSWORD_LEVEL", strconv.Itoa(cfg.StartLevel)), "starting level")
	fs.StringVar(&cfg.Renderer, "renderer", env("CROSSWORD_RENDERER", cfg.Renderer), "renderer: tui or ebiten")
	fs.StringVar(&cfg.Language, "lang", env("CROSSWORD_LANG", cfg.Language), "message language")
	fs.StringVar(&cfg.LocaleDir, "locales", env("CROSSWORD_LOCALES", cfg.LocaleDir), "directory holding the message catalogues")
	logLevel := fs.String("log-level", env("LOG_LEVEL", ""), "zerolog level")
	fs.StringVar(&cfg.DumpDir, "dump-dir", env("CROSSWORD_DUMP_DIR", cfg.DumpDir), "where puzzle dumps and screenshots go")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if *seed != "" {
		s, err := strconv.ParseUint(*seed, 10, 64)
		if err != nil {
			return Config{}, fmt.Errorf("seed %q: %w", *seed, err)
		}
		cfg.Seed = &s
	}

	l, err := strconv.Atoi(*level)
	if err != nil {
		return Config{}, fmt.Errorf("level %q: %w", *level, err)
	}
	if l < 1 {
		return Config{}, fmt.Errorf("level %d: must be at least 1", l)
	}
	cfg.StartLevel = l

	switch cfg.Renderer {
	case RendererTUI, RendererEbiten:
	default:
		return Config{}, fmt.Errorf("unknown renderer %q", cfg.Renderer)
	}

	if *logLevel == "" {
		// The grid owns the terminal; only warnings reach stderr by default.
		cfg.LogLevel = zerolog.WarnLevel
		if cfg.Renderer == RendererEbiten {
			cfg.LogLevel = zerolog.InfoLevel
		}
	} else {
		lvl, err := zerolog.ParseLevel(*logLevel)
		if err != nil {
			return Config{}, fmt.Errorf("log level: %w", err)
		}
		cfg.LogLevel = lvl
	}

	if cfg.WordsDSN == "" && cfg.WordsFile == "" {
		return cfg, ErrNoWordSource
	}
	return cfg, nil
}

// ErrNoWordSource is returned alongside a usable Config when neither a store
// nor a file is configured; the caller falls back to the built-in list.
var ErrNoWordSource = errors.New("no word store or file configured")
