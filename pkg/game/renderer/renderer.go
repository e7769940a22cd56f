// Package renderer holds what every terrain view shares: the Renderer
// interface, the terminal colour palette and the glyphs and names used for
// floors and walls.
package renderer

import (
	"github.com/gookit/color"
	"github.com/leonelquinteros/gotext"

	"battlescape/pkg/engine/world"
)

// Floor glyphs, drawn twice per cell in the terminal map
const (
	IconOpen    = "."
	IconRoom    = ":"
	IconBlocked = "#"
	IconZoneA   = "A"
	IconZoneB   = "B"
	IconUnknown = "?"
	IconCorner  = "+"
	IconWallH   = "--"
	IconWallV   = "|"
	IconDoorH   = "=="
	IconDoorV   = "]"
	IconWindowH = ".."
	IconWindowV = "'"
	IconOpenH   = "  "
	IconOpenV   = " "
	CellColumns = 3 // characters per cell: one wall column, two floor columns
)

// DefaultPalette returns the gookit colour for every text style.
func DefaultPalette() map[TextStyle]color.Style {
	return map[TextStyle]color.Style{
		StyleNormal:  {},
		StyleWall:    {color.FgGray},
		StyleOpen:    {color.FgGray, color.OpBold},
		StyleRoom:    {color.FgYellow},
		StyleBlocked: {color.FgRed},
		StyleZoneA:   {color.FgGreen, color.OpBold},
		StyleZoneB:   {color.FgCyan, color.OpBold},
		StyleTitle:   {color.FgMagenta, color.OpBold},
		StyleAction:  {color.FgMagenta},
		StyleSubtle:  {color.FgGray},
		StyleDenied:  {color.FgRed, color.OpBold},
	}
}

// FloorStyle returns the text style a floor kind is drawn with.
func FloorStyle(k world.FloorKind) TextStyle {
	switch k {
	case world.FloorOpen:
		return StyleOpen
	case world.FloorRoom:
		return StyleRoom
	case world.FloorBlocked:
		return StyleBlocked
	case world.FloorDeploymentA:
		return StyleZoneA
	case world.FloorDeploymentB:
		return StyleZoneB
	default:
		return StyleNormal
	}
}

// FloorIcon returns the glyph for a floor kind.
func FloorIcon(k world.FloorKind) string {
	switch k {
	case world.FloorOpen:
		return IconOpen
	case world.FloorRoom:
		return IconRoom
	case world.FloorBlocked:
		return IconBlocked
	case world.FloorDeploymentA:
		return IconZoneA
	case world.FloorDeploymentB:
		return IconZoneB
	default:
		return IconUnknown
	}
}

// WallIcons returns the glyphs for a wall kind on a north (horizontal) and a
// west (vertical) side.
func WallIcons(k world.WallKind) (north, west string) {
	switch k {
	case world.WallSolid:
		return IconWallH, IconWallV
	case world.WallDoor:
		return IconDoorH, IconDoorV
	case world.WallWindow:
		return IconWindowH, IconWindowV
	default:
		return IconOpenH, IconOpenV
	}
}

// FloorName returns the translated legend entry for a floor kind. Uses
// gotext.Get with constant keys so the catalog can be extracted.
func FloorName(k world.FloorKind) string {
	switch k {
	case world.FloorOpen:
		return gotext.Get("FLOOR_OPEN")
	case world.FloorRoom:
		return gotext.Get("FLOOR_ROOM")
	case world.FloorBlocked:
		return gotext.Get("FLOOR_BLOCKED")
	case world.FloorDeploymentA:
		return gotext.Get("FLOOR_DEPLOYMENT_A")
	case world.FloorDeploymentB:
		return gotext.Get("FLOOR_DEPLOYMENT_B")
	default:
		return gotext.Get("FLOOR_UNKNOWN")
	}
}
