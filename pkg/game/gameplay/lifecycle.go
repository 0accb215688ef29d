// Package gameplay provides core game logic: building levels, moving the
// cursor and solving words.
package gameplay

import (
	"time"

	"github.com/leonelquinteros/gotext"
	"github.com/rs/zerolog/log"

	"github.com/LeaderGRL/ELGJ25-sub000/pkg/game/crossword"
	"github.com/LeaderGRL/ELGJ25-sub000/pkg/game/generator"
	"github.com/LeaderGRL/ELGJ25-sub000/pkg/game/level"
	"github.com/LeaderGRL/ELGJ25-sub000/pkg/game/renderer"
	"github.com/LeaderGRL/ELGJ25-sub000/pkg/game/state"
	"github.com/LeaderGRL/ELGJ25-sub000/pkg/game/words"
)

// BuildGame creates a new game instance with optional starting level
func BuildGame(pool []crossword.Word, startLevel int, seed *uint64) *state.Game {
	g := state.NewGame(pool, seed)
	g.Level = level.Clamp(startLevel)

	StartLevel(g)

	g.ClearMessages()
	logMessage(g, "GT{WELCOME}")
	ShowLevelObjectives(g)

	return g
}

// StartLevel builds a fresh puzzle for g.Level. Seeded runs derive the puzzle
// seed from the base seed; others draw one from the clock.
func StartLevel(g *state.Game) {
	seed := uint64(time.Now().UnixNano())
	if s := g.LevelSeed(); s != nil {
		seed = *s
	}
	buildPuzzle(g, seed)
}

// buildPuzzle lays out the level's puzzle from seed and resets level state.
func buildPuzzle(g *state.Game, seed uint64) {
	target := level.TargetWordCount(g.Level)
	pool := words.Filter(g.Pool, level.MaxDifficulty(g.Level))
	if len(pool) < target {
		// Too few words in the band; fall back to the whole pool.
		pool = g.Pool
	}

	grid := generator.Build(pool, target, &seed)
	g.PuzzleSeed = seed
	g.ResetLevel(grid, level.RevealsForLevel(g.Level))
	wirePuzzle(g)
	setupHints(g)

	log.Info().
		Int("level", g.Level).
		Int("placed", grid.Len()).
		Int("requested", target).
		Uint64("seed", seed).
		Msg("puzzle built")

	if placed := grid.Words(); len(placed) > 0 {
		g.Cursor = placed[0].Origin()
		g.Orientation = placed[0].Orientation()
	}
}

// wirePuzzle subscribes the game to the puzzle's notifications
func wirePuzzle(g *state.Game) {
	g.Puzzle.OnWordValidated(func(w *crossword.PlacedWord) {
		logMessage(g, "GT{WORD_SOLVED} WORD{%s}", w.Text())
	})
	g.Puzzle.OnGridComplete(func(last *crossword.PlacedWord) {
		g.Complete = true
		log.Info().Int("level", g.Level).Str("last", last.Text()).Msg("puzzle complete")

		if level.IsFinalLevel(g.Level) {
			g.GameComplete = true
			logMessage(g, "GT{GAME_COMPLETE}")
			return
		}
		logMessage(g, "GT{LEVEL_COMPLETE} ACTION{:next}")
	})
}

// ResetLevel rebuilds the current puzzle from the same seed
func ResetLevel(g *state.Game) {
	buildPuzzle(g, g.PuzzleSeed)

	g.ClearMessages()
	logMessage(g, "GT{LEVEL_RESET}")
	ShowLevelObjectives(g)
}

// AdvanceLevel moves to the next level once the puzzle is solved. It reports
// whether the level changed.
func AdvanceLevel(g *state.Game) bool {
	if !g.Complete {
		logMessage(g, "DENIED{GT{FINISH_FIRST}}")
		return false
	}

	next := level.NextLevel(g.Level)
	if next == 0 {
		g.GameComplete = true
		return false
	}

	g.Level = next
	StartLevel(g)

	g.ClearMessages()
	logMessage(g, "%s", gotext.Get("LEVEL_ADVANCED", g.Level))
	ShowLevelObjectives(g)
	return true
}

// ShowLevelObjectives displays the goal for the current level
func ShowLevelObjectives(g *state.Game) {
	logMessage(g, "%s", level.FlavourText(g.Level))
	logMessage(g, "%s", gotext.Get("LEVEL_OBJECTIVE", g.Puzzle.Len(), g.Reveals))
	ShowHint(g)
}

// logMessage formats msg and appends it to the game's message log
func logMessage(g *state.Game, msg string, a ...any) {
	formatted := renderer.ApplyMarkup(msg, a...)
	g.AddMessage(formatted)
}
