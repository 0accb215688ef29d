package tui

import (
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/gookit/color"
	"github.com/leonelquinteros/gotext"

	"github.com/LeaderGRL/ELGJ25-sub000/pkg/engine/input"
	"github.com/LeaderGRL/ELGJ25-sub000/pkg/engine/terminal"
	"github.com/LeaderGRL/ELGJ25-sub000/pkg/engine/world"
	"github.com/LeaderGRL/ELGJ25-sub000/pkg/game/crossword"
	"github.com/LeaderGRL/ELGJ25-sub000/pkg/game/renderer"
	"github.com/LeaderGRL/ELGJ25-sub000/pkg/game/state"
)

// Glyphs
const (
	IconEmpty = "·" // lettered cell with nothing typed
	IconVoid  = " "
)

// Viewport margins and minimum sizes
const (
	ViewportMinRows = 5
	ViewportMinCols = 9
	// Lines needed outside the grid: status, clue, blanks, help, messages pane
	// (header + 5 + footer) and the prompt.
	ViewportTopMargin = 16
	cellWidth         = 2
)

// TUIRenderer is the terminal-based renderer implementation
type TUIRenderer struct {
	colorLocked      color.Style
	colorTyped       color.Style
	colorEmpty       color.Style
	colorCursor      color.Style
	colorActiveWord  color.Style
	colorAction      color.Style
	colorActionShort color.Style
	colorDenied      color.Style
	colorSubtle      color.Style
	colorWord        color.Style
	colorClue        color.Style
}

// New creates a new TUI renderer
func New() *TUIRenderer {
	return &TUIRenderer{}
}

// Init initializes the TUI renderer (colors, etc.)
func (t *TUIRenderer) Init() {
	t.colorLocked = color.Style{color.FgGreen, color.OpBold}
	t.colorTyped = color.Style{color.FgWhite, color.OpBold}
	t.colorEmpty = color.Style{color.FgGray}
	t.colorCursor = color.Style{color.FgBlack, color.BgYellow, color.OpBold}
	t.colorActiveWord = color.Style{color.OpUnderscore}
	t.colorAction = color.Style{color.FgMagenta}
	t.colorActionShort = color.Style{color.FgMagenta, color.OpBold}
	t.colorDenied = color.Style{color.FgRed, color.OpBold}
	t.colorSubtle = color.Style{color.FgGray, color.OpBold}
	t.colorWord = color.Style{color.FgGreen}
	t.colorClue = color.Style{color.FgCyan}
}

// Clear clears the terminal screen
func (t *TUIRenderer) Clear() {
	c := exec.Command("clear")
	c.Stdout = os.Stdout
	c.Run()
}

// GetInput gets user input from the terminal and returns a high-level Intent.
func (t *TUIRenderer) GetInput() input.Intent {
	raw := input.RawInput{
		Device: input.DeviceTerminal,
		Code:   input.GetInputWithArrows(),
	}
	debounced := input.NewDebouncedInput(raw)
	return input.MapToIntent(debounced)
}

// StyleText applies a style to text
func (t *TUIRenderer) StyleText(text string, style renderer.TextStyle) string {
	switch style {
	case renderer.StyleLocked:
		return t.colorLocked.Sprint(text)
	case renderer.StyleTyped:
		return t.colorTyped.Sprint(text)
	case renderer.StyleEmpty:
		return t.colorEmpty.Sprint(text)
	case renderer.StyleCursor:
		return t.colorCursor.Sprint(text)
	case renderer.StyleActiveWord:
		return t.colorActiveWord.Sprint(text)
	case renderer.StyleAction:
		return t.colorAction.Sprint(text)
	case renderer.StyleActionShort:
		return t.colorActionShort.Sprint(text)
	case renderer.StyleDenied:
		return t.colorDenied.Sprint(text)
	case renderer.StyleSubtle:
		return t.colorSubtle.Sprint(text)
	case renderer.StyleWord:
		return t.colorWord.Sprint(text)
	case renderer.StyleClue:
		return t.colorClue.Sprint(text)
	default:
		return text
	}
}

// FormatText formats a message with the markup system
func (t *TUIRenderer) FormatText(msg string, args ...any) string {
	ret := renderer.ApplyMarkup(msg, args...)
	return renderer.ReplaceMarkup(ret, func(tag, operand string) string {
		switch tag {
		case "GT":
			return gotext.Get(operand)
		case "ACTION":
			if operand == "" {
				return ""
			}
			head, tail := splitFirst(operand)
			return t.colorActionShort.Sprint(head) + t.colorAction.Sprint(tail)
		case "WORD":
			return t.colorWord.Sprint(operand)
		case "CLUE":
			return t.colorClue.Sprint(operand)
		case "DENIED":
			return t.colorDenied.Sprint(operand)
		case "SUBTLE":
			return t.colorSubtle.Sprint(operand)
		default:
			return operand
		}
	})
}

// splitFirst splits s after its first rune
func splitFirst(s string) (string, string) {
	r := []rune(s)
	return string(r[:1]), string(r[1:])
}

// ShowMessage displays a message to the user
func (t *TUIRenderer) ShowMessage(msg string) {
	fmt.Println(t.FormatText("%s", msg))
}

// GetViewportSize returns the viewport dimensions in grid cells
func (t *TUIRenderer) GetViewportSize() (rows, cols int) {
	termWidth, termHeight := terminal.GetSize()

	cols = termWidth/cellWidth - 2
	rows = termHeight - ViewportTopMargin

	if cols < ViewportMinCols {
		cols = ViewportMinCols
	}
	if rows < ViewportMinRows {
		rows = ViewportMinRows
	}
	return rows, cols
}

// RenderFrame renders a complete game frame
func (t *TUIRenderer) RenderFrame(g *state.Game) {
	t.printStatusBar(g)
	t.printGrid(g)
	t.printClue(g)
	t.printPossibleActions()
	t.printMessagesPane(g)

	fmt.Printf("\n> ")
}

// printStatusBar prints level, progress and reveals
func (t *TUIRenderer) printStatusBar(g *state.Game) {
	solved, total := 0, 0
	if g.Puzzle != nil {
		solved, total = g.Puzzle.ValidatedCount(), g.Puzzle.Len()
	}
	status := gotext.Get("STATUS_LINE", g.Level, solved, total, g.Reveals)
	if letters := g.RevealedLetters(); letters != "" {
		status += "  |  " + gotext.Get("REVEALED_LETTERS", letters)
	}
	fmt.Println(t.colorAction.Sprint(status))
	fmt.Println()
}

// printGrid prints the visible part of the puzzle, centred
func (t *TUIRenderer) printGrid(g *state.Game) {
	rows, cols := t.GetViewportSize()
	lines := t.gridLines(g, rows, cols)
	for _, line := range lines {
		fmt.Println(terminal.Center(line))
	}
	fmt.Println()
}

// gridLines renders the viewport around the cursor, top row first
func (t *TUIRenderer) gridLines(g *state.Game, rows, cols int) []string {
	if g.Puzzle == nil {
		return nil
	}
	min, max, ok := g.Puzzle.Bounds()
	if !ok {
		return nil
	}

	minX, maxX := window(min.X, max.X, g.Cursor.X, cols)
	minY, maxY := window(min.Y, max.Y, g.Cursor.Y, rows)

	active := g.ActiveWord()
	lines := make([]string, 0, maxY-minY+1)
	for y := maxY; y >= minY; y-- {
		var b strings.Builder
		for x := minX; x <= maxX; x++ {
			pos := world.At(x, y)
			glyph, style := cellView(g, pos)
			cell := t.StyleText(glyph, style)
			if style != renderer.StyleCursor && active != nil && active.Contains(pos) {
				cell = t.colorActiveWord.Sprint(cell)
			}
			b.WriteString(" ")
			b.WriteString(cell)
		}
		lines = append(lines, b.String())
	}
	return lines
}

// window picks at most size consecutive values in [lo, hi] around focus
func window(lo, hi, focus, size int) (int, int) {
	if hi-lo+1 <= size {
		return lo, hi
	}
	start := focus - size/2
	if start < lo {
		start = lo
	}
	if start+size-1 > hi {
		start = hi - size + 1
	}
	return start, start + size - 1
}

// cellView returns the glyph and style for one grid cell
func cellView(g *state.Game, pos world.Coord) (string, renderer.TextStyle) {
	if _, ok := g.Puzzle.LetterAt(pos); !ok {
		return IconVoid, renderer.StyleNormal
	}

	r, locked := g.Puzzle.DisplayLetterAt(pos)
	glyph := IconEmpty
	style := renderer.StyleEmpty
	switch {
	case locked:
		glyph, style = string(r), renderer.StyleLocked
	case r != crossword.EmptyLetter:
		glyph, style = string(r), renderer.StyleTyped
	}
	if pos == g.Cursor {
		style = renderer.StyleCursor
	}
	return glyph, style
}

// printClue prints the active word's clue
func (t *TUIRenderer) printClue(g *state.Game) {
	w := g.ActiveWord()
	if w == nil {
		fmt.Println()
		return
	}
	dir := gotext.Get("ROW")
	if w.Orientation() == world.Column {
		dir = gotext.Get("COLUMN")
	}
	label := t.colorSubtle.Sprintf("%s (%d %s): ", gotext.Get("CLUE_LABEL"), w.Len(), dir)
	fmt.Println(label + t.colorClue.Sprint(w.Clue()))
}

// printPossibleActions prints the help line
func (t *TUIRenderer) printPossibleActions() {
	help := gotext.Get("HELP_LINE",
		input.TerminalCommand(input.ActionToggleOrientation),
		input.TerminalCommand(input.ActionClue),
		input.TerminalCommand(input.ActionReveal),
		input.TerminalCommand(input.ActionQuit),
	)
	fmt.Println(t.colorSubtle.Sprint(help))
}

// printMessagesPane renders the messages log pane
func (t *TUIRenderer) printMessagesPane(g *state.Game) {
	width := terminal.GetWidth()

	label := " Messages "
	labelLen := len(label)
	sideLen := (width - labelLen) / 2
	if sideLen < 1 {
		sideLen = 1
	}

	leftDashes := strings.Repeat("─", sideLen)
	rightDashes := strings.Repeat("─", max(width-sideLen-labelLen, 1))

	fmt.Println()
	fmt.Println(t.colorSubtle.Sprint(leftDashes + label + rightDashes))

	if len(g.Messages) == 0 {
		fmt.Println(t.colorSubtle.Sprint("  (no messages)"))
	} else {
		for _, msg := range g.Messages {
			fmt.Printf("  %s\n", t.FormatText("%s", msg))
		}
	}

	fmt.Println(t.colorSubtle.Sprint(strings.Repeat("─", width)))
}
