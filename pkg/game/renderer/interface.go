package renderer

import (
	"battlescape/pkg/engine/world"
	"battlescape/pkg/game/generator"
)

// TextStyle represents different text styling options
type TextStyle int

const (
	StyleNormal TextStyle = iota
	StyleWall
	StyleOpen
	StyleRoom
	StyleBlocked
	StyleZoneA
	StyleZoneB
	StyleTitle
	StyleAction
	StyleSubtle
	StyleDenied
)

// Frame is one generated battlescape together with what produced it.
type Frame struct {
	Grid    *world.Grid
	Mission string
	Seed    int64
	Report  generator.Report
	Rooms   []generator.PlacedRoom
}

// Renderer defines the interface for terrain viewing backends.
// Implementations include the terminal map and the ebiten preview window.
type Renderer interface {
	// Init initializes the renderer (colors, window, etc.)
	Init()

	// Clear clears the display
	Clear()

	// RenderFrame draws a generated battlescape with its legend and counters
	RenderFrame(f *Frame)

	// StyleText applies a style to text and returns the styled string
	// For TUI this applies ANSI colors, for GUI it may return the text unchanged
	StyleText(text string, style TextStyle) string

	// FormatText formats a message with the renderer's markup system
	FormatText(msg string, args ...any) string

	// ShowMessage displays a message to the user
	ShowMessage(msg string)

	// GetViewportSize returns the current viewport dimensions (rows, cols)
	GetViewportSize() (rows, cols int)
}

// Current holds the active renderer instance
var Current Renderer

// SetRenderer sets the active renderer
func SetRenderer(r Renderer) {
	Current = r
}

// Init initializes the current renderer
func Init() {
	if Current != nil {
		Current.Init()
	}
}

// Clear clears the display using the current renderer
func Clear() {
	if Current != nil {
		Current.Clear()
	}
}

// RenderFrame renders a generated battlescape
func RenderFrame(f *Frame) {
	if Current != nil {
		Current.RenderFrame(f)
	}
}

// StyleText applies a style to text
func StyleText(text string, style TextStyle) string {
	if Current != nil {
		return Current.StyleText(text, style)
	}
	return text
}

// FormatText formats a message with markup
func FormatText(msg string, args ...any) string {
	if Current != nil {
		return Current.FormatText(msg, args...)
	}
	return msg
}

// ShowMessage displays a message using the current renderer
func ShowMessage(msg string) {
	if Current != nil {
		Current.ShowMessage(msg)
	}
}

// GetViewportSize returns viewport dimensions
func GetViewportSize() (rows, cols int) {
	if Current != nil {
		return Current.GetViewportSize()
	}
	return 24, 80 // sensible defaults
}
