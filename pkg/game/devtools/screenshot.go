package devtools

import (
	"fmt"
	"html"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/LeaderGRL/ELGJ25-sub000/pkg/engine/world"
	"github.com/LeaderGRL/ELGJ25-sub000/pkg/game/crossword"
	"github.com/LeaderGRL/ELGJ25-sub000/pkg/game/state"
)

// SaveScreenshotHTML saves the player's view of the puzzle as an HTML file in
// dir and returns its path.
func SaveScreenshotHTML(g *state.Game, dir string) (string, error) {
	if g.Puzzle == nil {
		return "", fmt.Errorf("no puzzle")
	}
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("mkdir %s: %w", dir, err)
	}

	timestamp := time.Now().Format("20060102-150405")
	path := filepath.Join(dir, fmt.Sprintf("screenshot-%s.html", timestamp))

	var b strings.Builder
	b.WriteString(`<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>Crossword - Screenshot</title>
    <style>
        body {
            background-color: #1a1a2e;
            color: #eee;
            font-family: 'Courier New', monospace;
            padding: 20px;
        }
        .header { color: #bb86fc; font-size: 18px; margin-bottom: 10px; }
        table { border-collapse: collapse; background-color: #0f0f1a; }
        td { width: 28px; height: 28px; text-align: center; font-size: 18px; }
        .void { background-color: #0f0f1a; }
        .cell { background-color: #2a2a40; border: 1px solid #555; color: #ccc; }
        .locked { color: #00cc66; font-weight: bold; }
        .cursor { outline: 2px solid #ffff00; }
        .clues { margin-top: 20px; }
        .solved { color: #00cc66; }
    </style>
</head>
<body>
`)
	fmt.Fprintf(&b, "<div class=\"header\">Level %d &middot; %d/%d words</div>\n",
		g.Level, g.Puzzle.ValidatedCount(), g.Puzzle.Len())

	b.WriteString("<table>\n")
	rowOpen := false
	lastY := 0
	g.Puzzle.Letters().ForEachInBounds(func(c world.Coord, _ rune, ok bool) {
		if !rowOpen || c.Y != lastY {
			if rowOpen {
				b.WriteString("</tr>\n")
			}
			b.WriteString("<tr>")
			rowOpen, lastY = true, c.Y
		}
		if !ok {
			b.WriteString(`<td class="void"></td>`)
			return
		}
		classes := []string{"cell"}
		r, locked := g.Puzzle.DisplayLetterAt(c)
		if locked {
			classes = append(classes, "locked")
		}
		if c == g.Cursor {
			classes = append(classes, "cursor")
		}
		letter := ""
		if r != crossword.EmptyLetter {
			letter = string(r)
		}
		fmt.Fprintf(&b, `<td class="%s">%s</td>`, strings.Join(classes, " "), html.EscapeString(letter))
	})
	if rowOpen {
		b.WriteString("</tr>\n")
	}
	b.WriteString("</table>\n")

	b.WriteString("<div class=\"clues\"><ol>\n")
	for _, w := range g.Puzzle.Words() {
		class := ""
		if w.IsFullyValidated() {
			class = ` class="solved"`
		}
		fmt.Fprintf(&b, "<li%s>%s %s (%d)</li>\n", class, w.Orientation(), html.EscapeString(w.Clue()), w.Len())
	}
	b.WriteString("</ol></div>\n</body>\n</html>\n")

	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return "", fmt.Errorf("write screenshot: %w", err)
	}
	return path, nil
}
