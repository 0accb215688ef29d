package ebiten

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/leonelquinteros/gotext"
	"github.com/rs/zerolog/log"

	engineinput "github.com/LeaderGRL/ELGJ25-sub000/pkg/engine/input"
	"github.com/LeaderGRL/ELGJ25-sub000/pkg/game/renderer"
)

// New creates a new Ebiten renderer
func New() *EbitenRenderer {
	return &EbitenRenderer{
		windowWidth:    960,
		windowHeight:   720,
		tileSize:       defaultTileSize,
		viewportRows:   11,
		viewportCols:   15,
		inputChan:      make(chan engineinput.Intent, 16),
		done:           make(chan struct{}),
		keyRepeatState: make(map[string]*keyRepeatInfo),
	}
}

// Init loads fonts and configures the window
func (e *EbitenRenderer) Init() {
	if err := e.loadFonts(); err != nil {
		log.Error().Err(err).Msg("font loading failed")
	}
	ebiten.SetWindowSize(e.windowWidth, e.windowHeight)
	ebiten.SetWindowTitle(gotext.Get("WINDOW_TITLE"))
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	e.recalculateViewport()
}

// Clear is a no-op; Draw repaints the whole screen every frame
func (e *EbitenRenderer) Clear() {}

// GetInput blocks until the window produces an intent. After Stop it
// returns ActionQuit.
func (e *EbitenRenderer) GetInput() engineinput.Intent {
	select {
	case intent := <-e.inputChan:
		return intent
	case <-e.done:
		return engineinput.Intent{Action: engineinput.ActionQuit}
	}
}

// StyleText returns text unchanged; colours are chosen at draw time
func (e *EbitenRenderer) StyleText(text string, style renderer.TextStyle) string {
	return text
}

// FormatText formats a message and strips markup for plain text drawing
func (e *EbitenRenderer) FormatText(msg string, args ...any) string {
	return renderer.StripMarkup(renderer.ApplyMarkup(msg, args...))
}

// ShowMessage logs msg; in-game messages come from the game log
func (e *EbitenRenderer) ShowMessage(msg string) {
	log.Info().Msg(e.FormatText("%s", msg))
}

// GetViewportSize returns the current viewport dimensions
func (e *EbitenRenderer) GetViewportSize() (rows, cols int) {
	e.viewportMutex.RLock()
	defer e.viewportMutex.RUnlock()
	return e.viewportRows, e.viewportCols
}

// Run starts the Ebiten game loop on the calling goroutine, which must be
// the main one. It returns once Stop is called or the window is closed.
func (e *EbitenRenderer) Run() error {
	err := ebiten.RunGame(e)
	e.Stop()
	return err
}

// Stop ends the Ebiten loop and unblocks GetInput
func (e *EbitenRenderer) Stop() {
	e.stopOnce.Do(func() {
		close(e.done)
	})
}

// stopped reports whether Stop has been called
func (e *EbitenRenderer) stopped() bool {
	select {
	case <-e.done:
		return true
	default:
		return false
	}
}
