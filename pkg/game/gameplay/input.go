package gameplay

import (
	"github.com/leonelquinteros/gotext"
	"github.com/rs/zerolog/log"

	engineinput "github.com/LeaderGRL/ELGJ25-sub000/pkg/engine/input"
	"github.com/LeaderGRL/ELGJ25-sub000/pkg/engine/world"
	"github.com/LeaderGRL/ELGJ25-sub000/pkg/game/devtools"
	"github.com/LeaderGRL/ELGJ25-sub000/pkg/game/state"
)

// ProcessIntent handles a high-level input intent from the tiered input system.
func ProcessIntent(g *state.Game, intent engineinput.Intent) {
	if intent.Action != engineinput.ActionNone {
		log.Debug().Str("action", engineinput.ActionName(intent.Action)).Str("text", intent.Text).Msg("intent")
	}

	// Completion screen: any key quits
	if g.GameComplete {
		if intent.Action != engineinput.ActionNone {
			g.Quit = true
		}
		return
	}

	switch intent.Action {
	case engineinput.ActionNone:
		return

	case engineinput.ActionQuit:
		g.Quit = true
		return

	case engineinput.ActionMoveNorth:
		MoveCursor(g, world.North)
		return

	case engineinput.ActionMoveSouth:
		MoveCursor(g, world.South)
		return

	case engineinput.ActionMoveEast:
		MoveCursor(g, world.East)
		return

	case engineinput.ActionMoveWest:
		MoveCursor(g, world.West)
		return

	case engineinput.ActionSelect:
		SelectCell(g, intent.Target)
		return

	case engineinput.ActionToggleOrientation:
		ToggleOrientation(g)
		return

	case engineinput.ActionGuess:
		GuessActive(g, intent.Text)
		return

	case engineinput.ActionType:
		TypeLetters(g, intent.Text)
		return

	case engineinput.ActionSubmit:
		if g.Complete {
			AdvanceLevel(g)
			return
		}
		SubmitActive(g)
		return

	case engineinput.ActionErase:
		EraseLetter(g)
		return

	case engineinput.ActionReveal:
		RevealUnderCursor(g)
		return

	case engineinput.ActionClue:
		ShowClue(g)
		return

	case engineinput.ActionNextLevel:
		AdvanceLevel(g)
		return

	case engineinput.ActionResetLevel:
		ResetLevel(g)
		return

	case engineinput.ActionDump:
		path, err := devtools.DumpPuzzleToFile(g, g.DumpDir)
		if err != nil {
			log.Error().Err(err).Msg("puzzle dump failed")
			logMessage(g, "DENIED{GT{DUMP_FAILED}}")
		} else {
			logMessage(g, "GT{DUMP_SAVED} ACTION{%s}", path)
		}
		return

	case engineinput.ActionScreenshot:
		path, err := devtools.SaveScreenshotHTML(g, g.DumpDir)
		if err != nil {
			log.Error().Err(err).Msg("screenshot failed")
			logMessage(g, "DENIED{GT{DUMP_FAILED}}")
		} else {
			logMessage(g, "GT{SCREENSHOT_SAVED} ACTION{%s}", path)
		}
		return

	case engineinput.ActionZoomIn, engineinput.ActionZoomOut:
		// handled by the renderer
		return
	}

	logMessage(g, "%s", gotext.Get("UNKNOWN_COMMAND"))
}
