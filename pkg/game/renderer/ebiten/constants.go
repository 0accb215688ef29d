package ebiten

import "image/color"

// Color palette
var (
	colorBackground    = color.RGBA{26, 26, 46, 255}    // Dark blue-gray
	colorMapBackground = color.RGBA{15, 15, 26, 255}    // Darker for map area
	colorTile          = color.RGBA{60, 60, 80, 255}    // Lettered cell
	colorTileActive    = color.RGBA{70, 90, 130, 255}   // Cell of the active word
	colorTileCursor    = color.RGBA{200, 170, 60, 255}  // Cursor cell
	colorTileBorder    = color.RGBA{100, 100, 130, 255} // Cell outline
	colorLocked        = color.RGBA{100, 255, 150, 255} // Solved or revealed letter
	colorTyped         = color.RGBA{235, 235, 245, 255} // Typed letter
	colorCursorText    = color.RGBA{20, 20, 30, 255}    // Letter on the cursor cell
	colorSubtle        = color.RGBA{120, 130, 180, 255} // Soft blue-purple-gray
	colorText          = color.RGBA{200, 210, 245, 255} // Soft off-white with blue-purple tint
	colorAction        = color.RGBA{180, 150, 250, 255} // Blue-purple
	colorClue          = color.RGBA{140, 220, 255, 255} // Cyan
	colorDenied        = color.RGBA{255, 100, 100, 255} // Bright red
	colorOverlay       = color.RGBA{0, 0, 0, 180}       // Completion overlay
)

// Tile size constraints
const (
	defaultTileSize = 40
	minTileSize     = 16
	maxTileSize     = 96
	tileSizeStep    = 4
	baseFontSize    = 22.0 // Font size at defaultTileSize
)

const (
	keyRepeatInitialDelay = 400 // Initial delay before first repeat (milliseconds)
	keyRepeatInterval     = 90  // Interval between repeat events (milliseconds)
)

const (
	frameBorder = 10
	maxMessages = 5
)
