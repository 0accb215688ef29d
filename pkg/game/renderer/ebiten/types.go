// Package ebiten provides an Ebiten-based 2D graphical renderer for the crossword.
package ebiten

import (
	"sync"

	"github.com/hajimehoshi/ebiten/v2/text/v2"

	engineinput "github.com/LeaderGRL/ELGJ25-sub000/pkg/engine/input"
	"github.com/LeaderGRL/ELGJ25-sub000/pkg/engine/world"
)

// cellSnapshot is one lettered cell as it should be drawn
type cellSnapshot struct {
	Pos    world.Coord
	Glyph  string
	Locked bool
	Typed  bool
	Cursor bool
	Active bool // part of the active word
}

// renderSnapshot holds a consistent copy of game state for rendering.
// The game loop runs on its own goroutine; Draw only ever reads this.
type renderSnapshot struct {
	valid        bool
	level        int
	solved       int
	total        int
	reveals      int
	revealed     string // letters revealed this level
	viewMin      world.Coord // bottom-left visible cell
	viewMax      world.Coord // top-right visible cell
	cells        []cellSnapshot
	clue         string
	clueLen      int
	orientation  world.Orientation
	messages     []string
	complete     bool
	gameComplete bool
}

// gridLayout records where the last frame drew the grid, for mouse picking
type gridLayout struct {
	mapX, mapY float64
	tileSize   int
	viewMin    world.Coord
	viewMax    world.Coord
}

// keyRepeatInfo tracks the repeat state for a key or button
type keyRepeatInfo struct {
	firstPressed int64 // Timestamp when first pressed (milliseconds)
	lastRepeat   int64 // Timestamp when last repeat event was sent (milliseconds)
}

// EbitenRenderer is the Ebiten-based graphical renderer
type EbitenRenderer struct {
	// Window dimensions
	windowWidth  int
	windowHeight int

	// Tile size for rendering (adjustable with +/-)
	tileSize int

	// Viewport dimensions (in tiles) - recalculated based on window and tile size
	viewportRows  int
	viewportCols  int
	viewportMutex sync.RWMutex

	// Font sources for text rendering
	monoFontSource *text.GoTextFaceSource // Monospace font for grid letters
	sansFontSource *text.GoTextFaceSource // Sans-serif font for UI text

	// Cached font faces (recreated when tile size changes)
	cachedTileFontSize float64
	cachedUIFontSize   float64
	cachedMonoFace     *text.GoTextFace
	cachedSansFace     *text.GoTextFace

	// Cached render snapshot for consistent drawing
	snapshot      renderSnapshot
	snapshotMutex sync.RWMutex

	// Grid placement from the last Draw
	layout      gridLayout
	layoutMutex sync.RWMutex

	// Input channel for communication between Ebiten and game loop
	inputChan chan engineinput.Intent

	// Closed by Stop; ends both GetInput and the Ebiten loop
	done     chan struct{}
	stopOnce sync.Once

	// Flag to track if we've logged window opening
	windowOpenedLogged bool

	keyRepeatState      map[string]*keyRepeatInfo
	keyRepeatStateMutex sync.Mutex
}
