package tui

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"regexp"
	"strings"

	"github.com/gookit/color"
	"github.com/leonelquinteros/gotext"

	"battlescape/pkg/engine/terminal"
	"battlescape/pkg/engine/world"
	"battlescape/pkg/game/renderer"
)

const groundLevel = 0

// Viewport margins and minimum sizes
const (
	ViewportMinRows = 7
	ViewportMinCols = 16
	// Lines needed outside the map: title, blank, legend (2), counters, blank
	ViewportTopMargin = 6
)

// dynamicGet is used for runtime translation key lookups.
// We use a function variable to avoid go vet's non-constant format string check,
// since we intentionally look up translation keys dynamically from markup.
var dynamicGet = gotext.Get

// TUIRenderer is the terminal-based renderer implementation
type TUIRenderer struct {
	out     io.Writer
	palette map[renderer.TextStyle]color.Style

	// width overrides the terminal width when positive
	width int

	regexpStringFunctions *regexp.Regexp
}

// New creates a new TUI renderer writing to stdout
func New() *TUIRenderer {
	return &TUIRenderer{out: os.Stdout}
}

// NewWithWriter creates a TUI renderer writing to w with a fixed width in
// columns. A width of zero uses the terminal width.
func NewWithWriter(w io.Writer, width int) *TUIRenderer {
	return &TUIRenderer{out: w, width: width}
}

// Init initializes the TUI renderer (colors, etc.)
func (t *TUIRenderer) Init() {
	t.palette = renderer.DefaultPalette()
	t.regexpStringFunctions = regexp.MustCompile(`([a-zA-Z_]*){([a-z A-Z0-9_,:.-]+)}`)
}

// Clear clears the terminal screen
func (t *TUIRenderer) Clear() {
	c := exec.Command("clear")
	c.Stdout = os.Stdout
	c.Run()
}

// StyleText applies a style to text
func (t *TUIRenderer) StyleText(text string, style renderer.TextStyle) string {
	s, ok := t.palette[style]
	if !ok || len(s) == 0 {
		return text
	}
	return s.Sprint(text)
}

// FormatText formats a message with the markup system
func (t *TUIRenderer) FormatText(msg string, args ...any) string {
	ret := fmt.Sprintf(msg, args...)

	matches := t.regexpStringFunctions.FindAllStringSubmatch(ret, -1)

	for _, match := range matches {
		function := match[1]
		operand := match[2]

		var val string

		switch function {
		case "GT":
			val = dynamicGet(operand)
		case "TITLE":
			val = t.StyleText(operand, renderer.StyleTitle)
		case "SUBTLE":
			val = t.StyleText(operand, renderer.StyleSubtle)
		case "DENIED":
			val = t.StyleText(dynamicGet(operand), renderer.StyleDenied)
		case "ACTION":
			val = t.StyleText(operand[0:1], renderer.StyleTitle) + t.StyleText(operand[1:], renderer.StyleAction)
		default:
			ret = fmt.Sprintf("ERROR, function not found: %v -> %v", function, operand)
		}

		ret = strings.Replace(ret, match[0], val, -1)
	}

	return ret
}

// ShowMessage displays a message to the user
func (t *TUIRenderer) ShowMessage(msg string) {
	fmt.Fprintln(t.out, msg)
}

// GetViewportSize returns the viewport dimensions based on terminal size
func (t *TUIRenderer) GetViewportSize() (rows, cols int) {
	termWidth, termHeight := terminal.GetSize()
	if t.width > 0 {
		termWidth = t.width
	}

	cols = termWidth
	rows = termHeight - ViewportTopMargin

	if cols < ViewportMinCols {
		cols = ViewportMinCols
	}
	if rows < ViewportMinRows {
		rows = ViewportMinRows
	}
	return rows, cols
}

// RenderFrame prints the title, the map (cropped to the terminal width), the
// legend and the stage counters.
func (t *TUIRenderer) RenderFrame(f *renderer.Frame) {
	if f == nil || f.Grid == nil {
		t.printString("DENIED{NO_TERRAIN}\n")
		return
	}
	t.printString("TITLE{%s} SUBTLE{seed %d}\n\n", f.Mission, f.Seed)

	_, cols := t.GetViewportSize()
	lines, truncated := t.MapLines(f.Grid, cols)
	for _, l := range lines {
		fmt.Fprintln(t.out, l)
	}
	if truncated {
		t.printString("DENIED{MAP_TRUNCATED}\n")
	}

	t.printLegend()
	t.printString("GT{REPORT_BLOCKED} %d  GT{REPORT_LOOPS} %d  GT{REPORT_ROOMS} %d/%d\n",
		f.Report.Blocked, f.Report.Loops, f.Report.RoomsPlaced, f.Report.RoomAttempts)
}

// MapLines draws the ground level of grid as text no wider than cols
// characters. Each cell takes one wall column and two floor columns; each row
// of cells takes a wall line and a floor line. Cells past the width are
// dropped and truncated is reported.
func (t *TUIRenderer) MapLines(grid *world.Grid, cols int) (lines []string, truncated bool) {
	visible := grid.Width()
	if maxCells := (cols - 1) / renderer.CellColumns; maxCells < visible {
		visible = max(maxCells, 1)
		truncated = true
	}

	wall := func(s string) string { return t.StyleText(s, renderer.StyleWall) }

	lines = make([]string, 0, 2*grid.Length()+1)
	var top, row strings.Builder
	for z := 0; z < grid.Length(); z++ {
		top.Reset()
		row.Reset()
		for x := 0; x < visible; x++ {
			c := grid.Cell(x, groundLevel, z)
			north, _ := renderer.WallIcons(c.North)
			_, west := renderer.WallIcons(c.West)
			top.WriteString(wall(renderer.IconCorner + north))
			row.WriteString(wall(west))
			icon := renderer.FloorIcon(c.Ground)
			row.WriteString(t.StyleText(icon+icon, renderer.FloorStyle(c.Ground)))
		}
		east, _ := grid.WallToward(visible-1, groundLevel, z, world.East)
		_, eastIcon := renderer.WallIcons(east)
		top.WriteString(wall(renderer.IconCorner))
		row.WriteString(wall(eastIcon))
		lines = append(lines, top.String(), row.String())
	}

	top.Reset()
	for x := 0; x < visible; x++ {
		south, _ := grid.WallToward(x, groundLevel, grid.Length()-1, world.South)
		north, _ := renderer.WallIcons(south)
		top.WriteString(wall(renderer.IconCorner + north))
	}
	top.WriteString(wall(renderer.IconCorner))
	lines = append(lines, top.String())
	return lines, truncated
}

// printLegend lists every floor glyph with its translated name
func (t *TUIRenderer) printLegend() {
	parts := make([]string, 0, len(world.FloorKinds()))
	for _, k := range world.FloorKinds() {
		icon := renderer.FloorIcon(k)
		parts = append(parts, t.StyleText(icon+icon, renderer.FloorStyle(k))+" "+renderer.FloorName(k))
	}
	fmt.Fprintf(t.out, "\n%s\n", strings.Join(parts, "  "))
}

// printString prints a formatted string
func (t *TUIRenderer) printString(msg string, a ...any) {
	fmt.Fprint(t.out, t.FormatText(msg, a...))
}

// VisibleWidth returns the printed width of s without colour codes.
func VisibleWidth(s string) int {
	return len(color.ClearCode(s))
}
