package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/leonelquinteros/gotext"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/LeaderGRL/ELGJ25-sub000/pkg/engine/terminal"
	"github.com/LeaderGRL/ELGJ25-sub000/pkg/game/config"
	"github.com/LeaderGRL/ELGJ25-sub000/pkg/game/crossword"
	"github.com/LeaderGRL/ELGJ25-sub000/pkg/game/gameplay"
	"github.com/LeaderGRL/ELGJ25-sub000/pkg/game/renderer"
	ebitenrenderer "github.com/LeaderGRL/ELGJ25-sub000/pkg/game/renderer/ebiten"
	"github.com/LeaderGRL/ELGJ25-sub000/pkg/game/renderer/tui"
	"github.com/LeaderGRL/ELGJ25-sub000/pkg/game/state"
	"github.com/LeaderGRL/ELGJ25-sub000/pkg/game/words"
)

func main() {
	cfg, err := config.Load(os.Args[1:])
	if err != nil && !errors.Is(err, config.ErrNoWordSource) {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	initLogging(cfg)
	gotext.Configure(cfg.LocaleDir, cfg.Language, "default")

	pool, err := loadPool(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load words")
	}
	log.Info().Int("words", len(pool)).Msg("word pool loaded")

	g := gameplay.BuildGame(pool, cfg.StartLevel, cfg.Seed)
	g.DumpDir = cfg.DumpDir

	switch cfg.Renderer {
	case config.RendererEbiten:
		runEbiten(g)
	default:
		runTUI(g)
	}
}

// initLogging points zerolog at stderr with a console writer
func initLogging(cfg config.Config) {
	zerolog.SetGlobalLevel(cfg.LogLevel)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
}

// loadPool returns the word pool from the configured source: the SQLite
// store (seeded with the built-in list on first use), a list file, or the
// built-in list.
func loadPool(cfg config.Config) ([]crossword.Word, error) {
	if cfg.WordsFile != "" {
		return words.LoadFile(cfg.WordsFile)
	}
	if cfg.WordsDSN == "" {
		return words.Defaults(), nil
	}

	store, err := words.Open(cfg.WordsDSN)
	if err != nil {
		return nil, err
	}
	defer store.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if _, err := store.SeedDefaults(ctx); err != nil {
		return nil, err
	}
	return store.Pool(ctx, -1)
}

// runTUI plays in the terminal until the player quits
func runTUI(g *state.Game) {
	if !terminal.IsInteractive() {
		log.Warn().Msg("stdin or stdout is not a terminal; falling back to line input")
	}
	renderer.SetRenderer(tui.New())
	renderer.Init()

	mainLoop(g)
	renderer.ShowMessage(gotext.Get("GOODBYE"))
}

// runEbiten opens a window on the main goroutine and runs the game loop
// beside it
func runEbiten(g *state.Game) {
	r := ebitenrenderer.New()
	renderer.SetRenderer(r)
	renderer.Init()

	go func() {
		mainLoop(g)
		r.Stop()
	}()

	if err := r.Run(); err != nil {
		log.Fatal().Err(err).Msg("window exited")
	}
}

// mainLoop renders, reads one intent and applies it until the game ends
func mainLoop(g *state.Game) {
	for !g.Quit {
		renderer.Clear()
		renderer.RenderFrame(g)
		gameplay.ProcessIntent(g, renderer.GetInput())
	}
}
