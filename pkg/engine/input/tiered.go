package input

import (
	"sort"
	"strings"
	"time"
	"unicode"

	"github.com/LeaderGRL/ELGJ25-sub000/pkg/engine/world"
)

// Device represents a physical input source.
type Device int

const (
	DeviceUnknown Device = iota
	DeviceKeyboard
	DeviceGamepad
	DeviceTerminal
)

// Action represents a high‑level intent in the game.
type Action int

const (
	ActionNone Action = iota

	// Cursor movement
	ActionMoveNorth
	ActionMoveSouth
	ActionMoveWest
	ActionMoveEast

	// Puzzle
	ActionToggleOrientation // switch between the row and column word at the cursor
	ActionGuess             // type Intent.Text into the active word and submit it
	ActionType              // type Intent.Text at the cursor and advance
	ActionSelect            // move the cursor to Intent.Target
	ActionSubmit            // submit the letters already typed into the active word
	ActionErase             // clear the letter under the cursor
	ActionReveal            // spend a reveal on the letter under the cursor
	ActionClue              // show the active word's clue

	// Meta / UI
	ActionNextLevel
	ActionResetLevel
	ActionDump
	ActionScreenshot
	ActionQuit
	ActionZoomIn
	ActionZoomOut
)

// Intent is the 4th‑layer, high‑level description of what the player wants to do.
// Text carries typed letters for ActionGuess and ActionType; Target carries
// the picked cell for ActionSelect.
type Intent struct {
	Action Action
	Text   string
	Target world.Coord
}

// RawInput is the 1st‑layer event emitted directly from an input device.
// Code is a device‑specific identifier (e.g. "tab", "arrow_up", "GamepadDPadUp")
// or, for the terminal, a whole typed line.
type RawInput struct {
	Device    Device
	Code      string
	Timestamp time.Time
}

// DebouncedInput is the 2nd‑layer representation after debouncing/deduplication.
// For this turn‑based game, we treat each RawInput as already debounced by
// the underlying libraries (Ebiten, terminal raw mode), but keep a distinct
// type to make the layering explicit.
type DebouncedInput struct {
	Device Device
	Code   string
}

// NewDebouncedInput converts a raw event to a debounced event, trimming
// surrounding whitespace from typed lines.
func NewDebouncedInput(raw RawInput) DebouncedInput {
	return DebouncedInput{
		Device: raw.Device,
		Code:   strings.TrimSpace(raw.Code),
	}
}

// bindings maps raw codes to actions (3rd-layer bindings).
// Multiple codes may point to the same Action. Terminal commands start with
// ':' so they never collide with a guess.
var bindings = map[string]Action{
	// Movement
	"arrow_up":    ActionMoveNorth,
	"arrow_down":  ActionMoveSouth,
	"arrow_left":  ActionMoveWest,
	"arrow_right": ActionMoveEast,

	"gamepad_dpad_up":    ActionMoveNorth,
	"gamepad_dpad_down":  ActionMoveSouth,
	"gamepad_dpad_left":  ActionMoveWest,
	"gamepad_dpad_right": ActionMoveEast,

	// Orientation
	"tab":       ActionToggleOrientation,
	":t":        ActionToggleOrientation,
	":toggle":   ActionToggleOrientation,
	"gamepad_y": ActionToggleOrientation,

	// Submit / erase
	"enter":     ActionSubmit,
	"gamepad_a": ActionSubmit,
	"backspace": ActionErase,
	"delete":    ActionErase,

	// Reveal
	"!":         ActionReveal,
	":r":        ActionReveal,
	":reveal":   ActionReveal,
	"f1":        ActionReveal,
	"gamepad_x": ActionReveal,

	// Clue
	"?":     ActionClue,
	":c":    ActionClue,
	":clue": ActionClue,
	"f2":    ActionClue,

	// Level
	":n":     ActionNextLevel,
	":next":  ActionNextLevel,
	"f5":     ActionNextLevel,
	":reset": ActionResetLevel,
	"f6":     ActionResetLevel,

	// Dev dump / screenshot
	":dump": ActionDump,
	"f9":    ActionDump,
	":shot": ActionScreenshot,
	"f12":   ActionScreenshot,

	// Quit
	":q":        ActionQuit,
	":quit":     ActionQuit,
	"escape":    ActionQuit,
	"ctrl_c":    ActionQuit,
	"gamepad_b": ActionQuit,

	// Zoom (ebiten only)
	"=":               ActionZoomIn,
	"+":               ActionZoomIn,
	"numpad_add":      ActionZoomIn,
	"-":               ActionZoomOut,
	"numpad_subtract": ActionZoomOut,
}

// MapToIntent is the 3rd+4th layer: it applies the current bindings to a
// debounced input and returns a high‑level Intent. Unbound codes made of
// letters become a guess.
func MapToIntent(ev DebouncedInput) Intent {
	code := strings.ToLower(ev.Code)
	if act, ok := bindings[code]; ok {
		return Intent{Action: act}
	}
	if isGuess(ev.Code) {
		return Intent{Action: ActionGuess, Text: ev.Code}
	}
	return Intent{Action: ActionNone}
}

// isGuess reports whether code holds at least one letter and nothing but
// letters, spaces, hyphens and apostrophes.
func isGuess(code string) bool {
	letters := 0
	for _, r := range code {
		switch {
		case unicode.IsLetter(r):
			letters++
		case r == ' ' || r == '-' || r == '\'':
		default:
			return false
		}
	}
	return letters > 0
}

// ActionName returns a human-friendly name for an action.
func ActionName(a Action) string {
	switch a {
	case ActionMoveNorth:
		return "Move North"
	case ActionMoveSouth:
		return "Move South"
	case ActionMoveWest:
		return "Move West"
	case ActionMoveEast:
		return "Move East"
	case ActionToggleOrientation:
		return "Toggle Across/Down"
	case ActionGuess:
		return "Guess"
	case ActionType:
		return "Type"
	case ActionSelect:
		return "Select"
	case ActionSubmit:
		return "Submit"
	case ActionErase:
		return "Erase"
	case ActionReveal:
		return "Reveal Letter"
	case ActionClue:
		return "Clue"
	case ActionNextLevel:
		return "Next Level"
	case ActionResetLevel:
		return "Reset Level"
	case ActionDump:
		return "Dump Puzzle"
	case ActionScreenshot:
		return "Screenshot"
	case ActionQuit:
		return "Quit"
	case ActionZoomIn:
		return "Zoom In"
	case ActionZoomOut:
		return "Zoom Out"
	default:
		return "None"
	}
}

// GetBindingsByAction returns the current bindings grouped by action.
func GetBindingsByAction() map[Action][]string {
	result := make(map[Action][]string)
	for code, act := range bindings {
		result[act] = append(result[act], code)
	}
	// Ensure stable ordering of codes within each action so UI doesn't flicker.
	for act, codes := range result {
		sort.Strings(codes)
		result[act] = codes
	}
	return result
}

// TerminalCommand returns the first ':' command bound to a, for help lines.
func TerminalCommand(a Action) string {
	for _, code := range GetBindingsByAction()[a] {
		if strings.HasPrefix(code, ":") {
			return code
		}
	}
	return ""
}
