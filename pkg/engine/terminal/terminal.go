// Package terminal queries the controlling terminal for the text renderer.
package terminal

import (
	"os"
	"strings"

	"github.com/gookit/color"
	"golang.org/x/term"
)

const (
	DefaultWidth  = 80
	DefaultHeight = 24
)

// GetSize returns the current terminal width and height.
// Falls back to defaults if the size cannot be determined.
func GetSize() (width, height int) {
	width, height, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 || height <= 0 {
		return DefaultWidth, DefaultHeight
	}
	return width, height
}

// GetWidth returns the current terminal width.
func GetWidth() int {
	width, _ := GetSize()
	return width
}

// IsInteractive reports whether stdin and stdout are both terminals
func IsInteractive() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}

// VisibleWidth returns the printed width of s, ignoring color escapes
func VisibleWidth(s string) int {
	return len([]rune(color.ClearCode(s)))
}

// PadLeft returns the indent that centres a line of the given visible width
// in a terminal width columns wide.
func PadLeft(visible, width int) string {
	if visible >= width {
		return ""
	}
	return strings.Repeat(" ", (width-visible)/2)
}

// Center indents s so it sits in the middle of the terminal
func Center(s string) string {
	return PadLeft(VisibleWidth(s), GetWidth()) + s
}
