package input

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog/log"
	"golang.org/x/term"
)

var stdinReader *bufio.Reader

// GetInput reads a line of input from stdin. At end of input it returns
// ":quit" so the game loop ends cleanly.
func GetInput() string {
	if stdinReader == nil {
		stdinReader = bufio.NewReader(os.Stdin)
	}

	line, err := stdinReader.ReadString('\n')
	if err != nil {
		if err != io.EOF {
			log.Error().Err(err).Msg("cannot read stdin")
		}
		if strings.TrimSpace(line) == "" {
			return ":quit"
		}
	}

	return strings.TrimRight(line, "\r\n")
}

// readByte reads a single byte from stdin in raw mode
func readByte() (byte, error) {
	buf := make([]byte, 1)
	_, err := os.Stdin.Read(buf)
	return buf[0], err
}

// tryReadArrowKey attempts to read an arrow key escape sequence.
// Returns the arrow code if successful, "escape" for a lone or unknown
// escape sequence.
func tryReadArrowKey(firstByte byte) string {
	if firstByte != 0x1b {
		return ""
	}

	b2, err := readByte()
	if err != nil {
		return "escape"
	}

	// Handle both CSI sequences (ESC [) and SS3 sequences (ESC O)
	if b2 == '[' || b2 == 'O' {
		b3, err := readByte()
		if err != nil {
			return "escape"
		}

		switch b3 {
		case 'A':
			return "arrow_up"
		case 'B':
			return "arrow_down"
		case 'C':
			return "arrow_right"
		case 'D':
			return "arrow_left"
		}
	}
	return "escape"
}

// GetInputWithArrows reads input with support for arrow keys and Tab.
// Those return immediately without needing Enter; for text the user types and
// presses Enter as normal. When stdin is not a terminal it falls back to
// GetInput.
func GetInputWithArrows() string {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return GetInput()
	}

	// Reset the buffered reader to avoid conflicts with raw mode
	stdinReader = nil

	oldState, err := term.MakeRaw(fd)
	if err != nil {
		log.Error().Err(err).Msg("cannot set terminal to raw mode")
		return GetInput()
	}
	defer term.Restore(fd, oldState)

	b1, err := readByte()
	if err != nil {
		return ":quit"
	}

	if code := tryReadArrowKey(b1); code != "" {
		fmt.Print("\r\n")
		return code
	}

	switch b1 {
	case 3: // Ctrl+C
		fmt.Print("\r\n")
		return "ctrl_c"
	case '\t':
		return "tab"
	case '\n', '\r':
		return "enter"
	case 127, 8:
		return "backspace"
	}

	// For regular characters, collect input until Enter
	var input []byte
	if b1 >= 32 && b1 < 127 {
		input = append(input, b1)
		fmt.Print(string(b1)) // Echo the character
	}

	for {
		b, err := readByte()
		if err != nil {
			break
		}

		// Arrow keys pressed during text entry are discarded
		if b == 0x1b {
			tryReadArrowKey(b)
			continue
		}

		if b == 127 || b == 8 {
			if len(input) > 0 {
				input = input[:len(input)-1]
				fmt.Print("\b \b")
			}
			continue
		}

		if b == '\n' || b == '\r' {
			fmt.Print("\r\n")
			break
		}

		if b == 3 {
			fmt.Print("\r\n")
			return "ctrl_c"
		}

		if b >= 32 && b < 127 {
			input = append(input, b)
			fmt.Print(string(b))
		}
	}

	return string(input)
}
