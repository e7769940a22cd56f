// Package ebiten provides a preview window that draws a generated battlescape
// with Ebiten. Keys are resolved through the engine input bindings: R
// regenerates with the next seed, M switches mission, +/- zooms and Esc
// closes the window.
package ebiten

import (
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"battlescape/pkg/engine/input"
	"battlescape/pkg/engine/world"
	"battlescape/pkg/game/devtools"
	"battlescape/pkg/game/renderer"
)

const groundLevel = 0

// Regenerate builds a new frame, moving on to the next seed or the next
// mission type as requested.
type Regenerate func(nextSeed, nextMission bool) (*renderer.Frame, error)

// EbitenRenderer draws frames in a window and implements ebiten.Game.
type EbitenRenderer struct {
	frameMutex sync.RWMutex
	frame      *renderer.Frame
	walls      []renderer.WallSegment
	message    string

	regenerate Regenerate
	cellSize   int
	title      string

	gamepads           []ebiten.GamepadID
	windowOpenedLogged bool
}

// keyCodes names the keyboard keys the preview listens to
var keyCodes = map[ebiten.Key]string{
	ebiten.KeyR:              "r",
	ebiten.KeySpace:          "space",
	ebiten.KeyM:              "m",
	ebiten.KeyF9:             "f9",
	ebiten.KeyP:              "p",
	ebiten.KeyD:              "d",
	ebiten.KeyEqual:          "=",
	ebiten.KeyNumpadAdd:      "numpad_add",
	ebiten.KeyMinus:          "-",
	ebiten.KeyNumpadSubtract: "numpad_subtract",
	ebiten.KeyQ:              "q",
	ebiten.KeyEscape:         "escape",
}

// padCodes names the standard gamepad buttons the preview listens to
var padCodes = map[ebiten.StandardGamepadButton]string{
	ebiten.StandardGamepadButtonRightBottom: "gamepad_a",
	ebiten.StandardGamepadButtonRightTop:    "gamepad_y",
	ebiten.StandardGamepadButtonRightRight:  "gamepad_b",
	ebiten.StandardGamepadButtonCenterRight: "gamepad_start",
}

// New creates a preview renderer. regenerate may be nil, in which case R and
// M do nothing.
func New(regenerate Regenerate) *EbitenRenderer {
	return &EbitenRenderer{
		regenerate: regenerate,
		cellSize:   defaultCellSize,
		title:      "Battlescape",
	}
}

// Init sizes the window for the current frame
func (e *EbitenRenderer) Init() {
	w, h := e.Layout(0, 0)
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle(e.title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
}

// Clear drops the current frame
func (e *EbitenRenderer) Clear() {
	e.frameMutex.Lock()
	defer e.frameMutex.Unlock()
	e.frame = nil
	e.walls = nil
}

// RenderFrame stores the frame for the next Draw call
func (e *EbitenRenderer) RenderFrame(f *renderer.Frame) {
	var walls []renderer.WallSegment
	if f != nil && f.Grid != nil {
		walls = renderer.WallSegments(f.Grid, groundLevel)
	}
	e.frameMutex.Lock()
	defer e.frameMutex.Unlock()
	e.frame = f
	e.walls = walls
	e.message = ""
	if f != nil {
		ebiten.SetWindowTitle(fmt.Sprintf("%s - %s (seed %d)", e.title, f.Mission, f.Seed))
	}
}

// StyleText returns text unchanged; the window has no text styles
func (e *EbitenRenderer) StyleText(text string, style renderer.TextStyle) string {
	return text
}

// FormatText formats a message without markup
func (e *EbitenRenderer) FormatText(msg string, args ...any) string {
	return fmt.Sprintf(msg, args...)
}

// ShowMessage shows msg in the status line until the next frame
func (e *EbitenRenderer) ShowMessage(msg string) {
	e.frameMutex.Lock()
	defer e.frameMutex.Unlock()
	e.message = msg
}

// GetViewportSize returns the grid size of the current frame in cells
func (e *EbitenRenderer) GetViewportSize() (rows, cols int) {
	e.frameMutex.RLock()
	defer e.frameMutex.RUnlock()
	if e.frame == nil || e.frame.Grid == nil {
		return 0, 0
	}
	return e.frame.Grid.Length(), e.frame.Grid.Width()
}

// Update handles input (Ebiten interface)
func (e *EbitenRenderer) Update() error {
	if !e.windowOpenedLogged {
		e.windowOpenedLogged = true
		w, h := ebiten.WindowSize()
		log.Printf("Preview window opened (%dx%d)", w, h)
	}

	for _, raw := range e.pressed() {
		intent := input.MapToIntent(input.NewDebouncedInput(raw))
		if intent.Action == input.ActionQuit {
			return ebiten.Termination
		}
		e.handle(intent.Action)
	}
	return nil
}

// pressed collects this tick's key and gamepad presses as raw input codes
func (e *EbitenRenderer) pressed() []input.RawInput {
	var out []input.RawInput
	now := time.Now()
	for key, code := range keyCodes {
		if inpututil.IsKeyJustPressed(key) {
			out = append(out, input.RawInput{Device: input.DeviceKeyboard, Code: code, Timestamp: now})
		}
	}
	e.gamepads = ebiten.AppendGamepadIDs(e.gamepads[:0])
	for _, id := range e.gamepads {
		for button, code := range padCodes {
			if inpututil.IsStandardGamepadButtonJustPressed(id, button) {
				out = append(out, input.RawInput{Device: input.DeviceGamepad, Code: code, Timestamp: now})
			}
		}
	}
	return out
}

func (e *EbitenRenderer) handle(action input.Action) {
	switch action {
	case input.ActionRegenerate:
		e.rebuild(true, false)
	case input.ActionNextMission:
		e.rebuild(false, true)
	case input.ActionDevMap:
		e.RenderFrame(devtools.DevFrame())
		e.resize()
	case input.ActionScreenshot:
		e.save(func(f *renderer.Frame) (string, error) { return devtools.SaveScreenshotHTML(".", f) })
	case input.ActionDump:
		e.save(func(f *renderer.Frame) (string, error) { return devtools.DumpMapToFile("", f) })
	case input.ActionZoomIn:
		e.zoom(2)
	case input.ActionZoomOut:
		e.zoom(-2)
	}
}

// save writes the current frame with write and reports the path
func (e *EbitenRenderer) save(write func(*renderer.Frame) (string, error)) {
	e.frameMutex.RLock()
	f := e.frame
	e.frameMutex.RUnlock()
	if f == nil {
		return
	}
	path, err := write(f)
	if err != nil {
		log.Printf("Saving frame failed: %v", err)
		e.ShowMessage(err.Error())
		return
	}
	log.Printf("Saved %s", path)
	e.ShowMessage("saved " + path)
}

func (e *EbitenRenderer) rebuild(nextSeed, nextMission bool) {
	if e.regenerate == nil {
		return
	}
	f, err := e.regenerate(nextSeed, nextMission)
	if err != nil {
		log.Printf("Regenerating terrain failed: %v", err)
		e.ShowMessage(err.Error())
		return
	}
	e.RenderFrame(f)
	e.resize()
}

func (e *EbitenRenderer) zoom(delta int) {
	e.cellSize = min(max(e.cellSize+delta, minCellSize), maxCellSize)
	e.resize()
}

func (e *EbitenRenderer) resize() {
	w, h := e.Layout(0, 0)
	ebiten.SetWindowSize(w, h)
}

// Draw renders the current frame (Ebiten interface)
func (e *EbitenRenderer) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)

	e.frameMutex.RLock()
	f, walls, msg := e.frame, e.walls, e.message
	e.frameMutex.RUnlock()
	if f == nil || f.Grid == nil {
		ebitenutil.DebugPrintAt(screen, "no terrain", 4, 4)
		return
	}

	size := float32(e.cellSize)
	f.Grid.ForEachCell(groundLevel, func(x, z int, c world.Cell) {
		vector.DrawFilledRect(screen, float32(x)*size, float32(z)*size, size, size, floorColor(c.Ground), false)
	})
	for _, w := range walls {
		x, y := float32(w.X)*size, float32(w.Z)*size
		if w.Horizontal {
			vector.DrawFilledRect(screen, x, y-wallThickness/2, size, wallThickness, wallColor(w.Kind), false)
		} else {
			vector.DrawFilledRect(screen, x-wallThickness/2, y, wallThickness, size, wallColor(w.Kind), false)
		}
	}

	status := msg
	if status == "" {
		status = fmt.Sprintf("%s  seed %d  blocked %d  loops %d  rooms %d/%d  [R]eroll [M]ission [P]rint [D]ump [Esc]",
			f.Mission, f.Seed, f.Report.Blocked, f.Report.Loops, f.Report.RoomsPlaced, f.Report.RoomAttempts)
	}
	ebitenutil.DebugPrintAt(screen, status, 4, f.Grid.Length()*e.cellSize+2)
}

// Layout returns the logical screen size: the grid plus a status line
func (e *EbitenRenderer) Layout(outsideWidth, outsideHeight int) (int, int) {
	e.frameMutex.RLock()
	defer e.frameMutex.RUnlock()
	if e.frame == nil || e.frame.Grid == nil {
		return 320, 240
	}
	return e.frame.Grid.Width() * e.cellSize, e.frame.Grid.Length()*e.cellSize + statusHeight
}

// Run opens the window and blocks until it is closed
func (e *EbitenRenderer) Run() error {
	e.Init()
	if err := ebiten.RunGame(e); err != nil && err != ebiten.Termination {
		return err
	}
	return nil
}
