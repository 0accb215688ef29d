package ebiten

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/leonelquinteros/gotext"

	"github.com/LeaderGRL/ELGJ25-sub000/pkg/engine/world"
)

// Draw renders the game to the screen (Ebiten interface)
func (e *EbitenRenderer) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)

	e.snapshotMutex.RLock()
	snap := e.snapshot
	e.snapshotMutex.RUnlock()

	if !snap.valid || e.monoFontSource == nil || e.sansFontSource == nil {
		return
	}

	screenWidth, screenHeight := screen.Bounds().Dx(), screen.Bounds().Dy()
	lineHeight := e.getUIFontSize() * 1.4

	e.drawHeader(screen, &snap, lineHeight)
	e.drawGrid(screen, &snap, screenWidth, screenHeight, lineHeight)
	e.drawMessages(screen, &snap, screenHeight, lineHeight)

	if snap.complete {
		e.drawCompleteOverlay(screen, &snap, screenWidth, screenHeight)
	}
}

// drawHeader draws the status and clue lines
func (e *EbitenRenderer) drawHeader(screen *ebiten.Image, snap *renderSnapshot, lineHeight float64) {
	status := gotext.Get("STATUS_LINE", snap.level, snap.solved, snap.total, snap.reveals)
	if snap.revealed != "" {
		status += "  |  " + gotext.Get("REVEALED_LETTERS", snap.revealed)
	}
	e.drawText(screen, status, frameBorder, frameBorder, colorAction)

	if snap.clue == "" {
		return
	}
	dir := gotext.Get("ROW")
	if snap.orientation == world.Column {
		dir = gotext.Get("COLUMN")
	}
	clue := fmt.Sprintf("%s (%d %s): %s", gotext.Get("CLUE_LABEL"), snap.clueLen, dir, snap.clue)
	e.drawText(screen, clue, frameBorder, frameBorder+lineHeight, colorClue)
}

// drawGrid draws the visible cells centred in the space between header and
// messages, and records the placement for mouse picking.
func (e *EbitenRenderer) drawGrid(screen *ebiten.Image, snap *renderSnapshot, screenWidth, screenHeight int, lineHeight float64) {
	tile := e.tileSize
	cols := snap.viewMax.X - snap.viewMin.X + 1
	rows := snap.viewMax.Y - snap.viewMin.Y + 1
	gridW := float64(cols * tile)
	gridH := float64(rows * tile)

	top := frameBorder + lineHeight*2 + frameBorder
	bottom := float64(screenHeight) - lineHeight*float64(maxMessages+1) - frameBorder
	mapX := (float64(screenWidth) - gridW) / 2
	mapY := top + (bottom-top-gridH)/2
	if mapY < top {
		mapY = top
	}

	e.layoutMutex.Lock()
	e.layout = gridLayout{mapX: mapX, mapY: mapY, tileSize: tile, viewMin: snap.viewMin, viewMax: snap.viewMax}
	e.layoutMutex.Unlock()

	const mapMargin = 6
	vector.DrawFilledRect(screen, float32(mapX-mapMargin), float32(mapY-mapMargin),
		float32(gridW+mapMargin*2), float32(gridH+mapMargin*2), colorMapBackground, false)

	face := e.getMonoFontFace()
	for _, c := range snap.cells {
		x := mapX + float64((c.Pos.X-snap.viewMin.X)*tile)
		y := mapY + float64((snap.viewMax.Y-c.Pos.Y)*tile)

		bg := colorTile
		switch {
		case c.Cursor:
			bg = colorTileCursor
		case c.Active:
			bg = colorTileActive
		}
		const margin = 1
		vector.DrawFilledRect(screen, float32(x)+margin, float32(y)+margin,
			float32(tile)-margin*2, float32(tile)-margin*2, bg, false)
		vector.StrokeRect(screen, float32(x)+margin, float32(y)+margin,
			float32(tile)-margin*2, float32(tile)-margin*2, 1, colorTileBorder, false)

		if c.Glyph == "" {
			continue
		}
		fg := cellTextColor(c)
		op := &text.DrawOptions{}
		op.GeoM.Translate(x+float64(tile)/2, y+float64(tile)/2)
		op.ColorScale.ScaleWithColor(fg)
		op.PrimaryAlign = text.AlignCenter
		op.SecondaryAlign = text.AlignCenter
		text.Draw(screen, c.Glyph, face, op)
	}
}

// cellTextColor picks the letter colour for a cell
func cellTextColor(c cellSnapshot) color.Color {
	switch {
	case c.Cursor:
		return colorCursorText
	case c.Locked:
		return colorLocked
	default:
		return colorTyped
	}
}

// drawMessages draws the message log at the bottom, newest last
func (e *EbitenRenderer) drawMessages(screen *ebiten.Image, snap *renderSnapshot, screenHeight int, lineHeight float64) {
	y := float64(screenHeight) - frameBorder - lineHeight*float64(maxMessages)
	for i, msg := range snap.messages {
		c := colorSubtle
		if i == len(snap.messages)-1 {
			c = colorText
		}
		e.drawText(screen, msg, frameBorder, y+lineHeight*float64(i), c)
	}
}

// drawCompleteOverlay dims the screen and shows the completion message
func (e *EbitenRenderer) drawCompleteOverlay(screen *ebiten.Image, snap *renderSnapshot, w, h int) {
	vector.DrawFilledRect(screen, 0, 0, float32(w), float32(h), colorOverlay, false)

	message := gotext.Get("LEVEL_COMPLETE")
	if snap.gameComplete {
		message = gotext.Get("GAME_COMPLETE")
	}
	face := e.getSansFontFace()
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(w)/2, float64(h)/2)
	op.ColorScale.ScaleWithColor(colorLocked)
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	text.Draw(screen, message, face, op)
}

// drawText draws s in the UI font with its top-left corner at x, y
func (e *EbitenRenderer) drawText(screen *ebiten.Image, s string, x, y float64, c color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c)
	text.Draw(screen, s, e.getSansFontFace(), op)
}
