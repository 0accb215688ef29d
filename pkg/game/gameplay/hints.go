package gameplay

import (
	"math/rand/v2"

	"github.com/leonelquinteros/gotext"

	engineinput "github.com/LeaderGRL/ELGJ25-sub000/pkg/engine/input"
	"github.com/LeaderGRL/ELGJ25-sub000/pkg/game/state"
)

// setupHints fills the level's hint pool with control tips
func setupHints(g *state.Game) {
	g.AddHint(gotext.Get("HINT_GUESS"))
	g.AddHint(gotext.Get("HINT_TOGGLE", engineinput.TerminalCommand(engineinput.ActionToggleOrientation)))
	g.AddHint(gotext.Get("HINT_CLUE", engineinput.TerminalCommand(engineinput.ActionClue)))
	if g.Reveals > 0 {
		g.AddHint(gotext.Get("HINT_REVEAL", engineinput.TerminalCommand(engineinput.ActionReveal)))
	}
}

// ShowHint logs one random hint
func ShowHint(g *state.Game) {
	if len(g.Hints) == 0 {
		return
	}
	logMessage(g, "SUBTLE{%s}", g.Hints[rand.IntN(len(g.Hints))])
}
