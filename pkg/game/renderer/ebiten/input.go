package ebiten

import (
	"time"
	"unicode"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/rs/zerolog/log"

	engineinput "github.com/LeaderGRL/ELGJ25-sub000/pkg/engine/input"
	"github.com/LeaderGRL/ELGJ25-sub000/pkg/engine/world"
)

// Update handles input (Ebiten interface)
func (e *EbitenRenderer) Update() error {
	if e.stopped() {
		return ebiten.Termination
	}

	// Log window opening on first update (confirms window is actually running)
	if !e.windowOpenedLogged {
		e.windowOpenedLogged = true
		w, h := ebiten.WindowSize()
		log.Info().Int("width", w).Int("height", h).Msg("window opened")
	}

	e.handleZoom()

	for _, intent := range e.collectIntents() {
		// Non-blocking send to input channel
		select {
		case e.inputChan <- intent:
		default:
			// Channel full, drop input
		}
	}
	return nil
}

// collectIntents gathers this tick's intents: typed letters first, then
// mouse, gamepad and keyboard.
func (e *EbitenRenderer) collectIntents() []engineinput.Intent {
	var intents []engineinput.Intent

	if letters := typedLetters(ebiten.AppendInputChars(nil)); letters != "" {
		intents = append(intents, engineinput.Intent{Action: engineinput.ActionType, Text: letters})
	}
	if intent, ok := e.checkMouse(); ok {
		intents = append(intents, intent)
	}
	if intent := e.checkGamepadInput(); intent.Action != engineinput.ActionNone {
		intents = append(intents, intent)
	} else if intent := e.checkInput(); intent.Action != engineinput.ActionNone {
		intents = append(intents, intent)
	}
	return intents
}

// typedLetters keeps only the letters of chars
func typedLetters(chars []rune) string {
	out := make([]rune, 0, len(chars))
	for _, r := range chars {
		if unicode.IsLetter(r) {
			out = append(out, r)
		}
	}
	return string(out)
}

// checkMouse turns a left click on a grid cell into a select intent
func (e *EbitenRenderer) checkMouse() (engineinput.Intent, bool) {
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return engineinput.Intent{}, false
	}
	x, y := ebiten.CursorPosition()

	e.layoutMutex.RLock()
	l := e.layout
	e.layoutMutex.RUnlock()

	pos, ok := l.cellAt(x, y)
	if !ok {
		return engineinput.Intent{}, false
	}
	return engineinput.Intent{Action: engineinput.ActionSelect, Target: pos}, true
}

// cellAt maps a screen point to the grid cell drawn there
func (l gridLayout) cellAt(x, y int) (world.Coord, bool) {
	if l.tileSize <= 0 {
		return world.Coord{}, false
	}
	fx, fy := float64(x)-l.mapX, float64(y)-l.mapY
	if fx < 0 || fy < 0 {
		return world.Coord{}, false
	}
	col, row := int(fx)/l.tileSize, int(fy)/l.tileSize
	pos := world.At(l.viewMin.X+col, l.viewMax.Y-row)
	if pos.X > l.viewMax.X || pos.Y < l.viewMin.Y {
		return world.Coord{}, false
	}
	return pos, true
}

// handleZoom handles =/- for tile size adjustment
func (e *EbitenRenderer) handleZoom() {
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) || inpututil.IsKeyJustPressed(ebiten.KeyNumpadAdd) {
		e.increaseTileSize()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) || inpututil.IsKeyJustPressed(ebiten.KeyNumpadSubtract) {
		e.decreaseTileSize()
	}
	if inpututil.IsKeyJustPressed(ebiten.Key0) || inpututil.IsKeyJustPressed(ebiten.KeyNumpad0) {
		e.resetTileSize()
	}
}

// increaseTileSize increases the tile/font size
func (e *EbitenRenderer) increaseTileSize() {
	if e.tileSize < maxTileSize {
		e.tileSize += tileSizeStep
		e.recalculateViewport()
	}
}

// decreaseTileSize decreases the tile/font size
func (e *EbitenRenderer) decreaseTileSize() {
	if e.tileSize > minTileSize {
		e.tileSize -= tileSizeStep
		e.recalculateViewport()
	}
}

// resetTileSize resets tile size to default
func (e *EbitenRenderer) resetTileSize() {
	e.tileSize = defaultTileSize
	e.recalculateViewport()
}

// recalculateViewport recalculates viewport dimensions based on current window and tile size
func (e *EbitenRenderer) recalculateViewport() {
	e.invalidateFontCache()

	w, h := e.windowWidth, e.windowHeight
	rows, cols := viewportFor(w, h, e.tileSize, e.getUIFontSize())

	e.viewportMutex.Lock()
	e.viewportRows, e.viewportCols = rows, cols
	e.viewportMutex.Unlock()
}

// viewportFor returns how many grid rows and columns fit in a w x h window,
// leaving room for the header, clue line and message pane.
func viewportFor(w, h, tileSize int, uiFontSize float64) (rows, cols int) {
	lineHeight := int(uiFontSize * 1.4)
	headerHeight := lineHeight*2 + frameBorder
	footerHeight := lineHeight*(maxMessages+1) + frameBorder

	cols = (w - frameBorder*2) / tileSize
	rows = (h - headerHeight - footerHeight - frameBorder*2) / tileSize

	if cols < 5 {
		cols = 5
	}
	if rows < 5 {
		rows = 5
	}
	return rows, cols
}

// shouldRepeatKey checks if a key/button should trigger (initial press or repeat)
func (e *EbitenRenderer) shouldRepeatKey(isPressed func() bool, code string) bool {
	now := time.Now().UnixMilli()

	e.keyRepeatStateMutex.Lock()
	defer e.keyRepeatStateMutex.Unlock()

	if !isPressed() {
		delete(e.keyRepeatState, code)
		return false
	}

	info, ok := e.keyRepeatState[code]
	if !ok {
		e.keyRepeatState[code] = &keyRepeatInfo{firstPressed: now, lastRepeat: now}
		return true
	}
	if now-info.firstPressed < keyRepeatInitialDelay {
		return false
	}
	if now-info.lastRepeat >= keyRepeatInterval {
		info.lastRepeat = now
		return true
	}
	return false
}

// keyCodes maps single-press keys to the binding codes of the tiered input
var keyCodes = []struct {
	key  ebiten.Key
	code string
}{
	{ebiten.KeyTab, "tab"},
	{ebiten.KeyEnter, "enter"},
	{ebiten.KeyNumpadEnter, "enter"},
	{ebiten.KeyDelete, "delete"},
	{ebiten.KeyF1, "f1"},
	{ebiten.KeyF2, "f2"},
	{ebiten.KeyF5, "f5"},
	{ebiten.KeyF6, "f6"},
	{ebiten.KeyF9, "f9"},
	{ebiten.KeyF12, "f12"},
	{ebiten.KeyEscape, "escape"},
}

// repeatCodes maps held keys to binding codes
var repeatCodes = []struct {
	key  ebiten.Key
	code string
}{
	{ebiten.KeyArrowUp, "arrow_up"},
	{ebiten.KeyArrowDown, "arrow_down"},
	{ebiten.KeyArrowLeft, "arrow_left"},
	{ebiten.KeyArrowRight, "arrow_right"},
	{ebiten.KeyBackspace, "backspace"},
}

// checkInput maps keyboard state to an intent through the binding table
func (e *EbitenRenderer) checkInput() engineinput.Intent {
	for _, k := range repeatCodes {
		key := k.key
		if e.shouldRepeatKey(func() bool { return ebiten.IsKeyPressed(key) }, "key_"+k.code) {
			return keyboardIntent(k.code)
		}
	}
	for _, k := range keyCodes {
		if inpututil.IsKeyJustPressed(k.key) {
			return keyboardIntent(k.code)
		}
	}
	return engineinput.Intent{Action: engineinput.ActionNone}
}

func keyboardIntent(code string) engineinput.Intent {
	return engineinput.MapToIntent(engineinput.NewDebouncedInput(engineinput.RawInput{
		Device:    engineinput.DeviceKeyboard,
		Code:      code,
		Timestamp: time.Now(),
	}))
}

// gamepadCodes maps standard gamepad buttons to binding codes
var gamepadCodes = []struct {
	button ebiten.StandardGamepadButton
	code   string
}{
	{ebiten.StandardGamepadButtonLeftTop, "gamepad_dpad_up"},
	{ebiten.StandardGamepadButtonLeftBottom, "gamepad_dpad_down"},
	{ebiten.StandardGamepadButtonLeftLeft, "gamepad_dpad_left"},
	{ebiten.StandardGamepadButtonLeftRight, "gamepad_dpad_right"},
	{ebiten.StandardGamepadButtonRightBottom, "gamepad_a"},
	{ebiten.StandardGamepadButtonRightRight, "gamepad_b"},
	{ebiten.StandardGamepadButtonRightLeft, "gamepad_x"},
	{ebiten.StandardGamepadButtonRightTop, "gamepad_y"},
}

// checkGamepadInput maps standard gamepad buttons to an intent
func (e *EbitenRenderer) checkGamepadInput() engineinput.Intent {
	for _, id := range ebiten.AppendGamepadIDs(nil) {
		if !ebiten.IsStandardGamepadLayoutAvailable(id) {
			continue
		}
		for _, b := range gamepadCodes {
			if inpututil.IsStandardGamepadButtonJustPressed(id, b.button) {
				return engineinput.MapToIntent(engineinput.NewDebouncedInput(engineinput.RawInput{
					Device:    engineinput.DeviceGamepad,
					Code:      b.code,
					Timestamp: time.Now(),
				}))
			}
		}
	}
	return engineinput.Intent{Action: engineinput.ActionNone}
}

// Layout returns the game's logical screen size (Ebiten interface)
func (e *EbitenRenderer) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != e.windowWidth || outsideHeight != e.windowHeight {
		e.windowWidth = outsideWidth
		e.windowHeight = outsideHeight
		e.recalculateViewport()
	}
	return outsideWidth, outsideHeight
}
