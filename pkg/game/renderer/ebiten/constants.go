package ebiten

import (
	"image/color"

	"battlescape/pkg/engine/world"
)

// Color palette for the preview
var (
	colorBackground = color.RGBA{26, 26, 46, 255}    // Dark blue-gray
	colorFloorOpen  = color.RGBA{100, 100, 120, 255} // Medium gray corridors
	colorFloorRoom  = color.RGBA{200, 170, 90, 255}  // Sand for open rooms
	colorBlocked    = color.RGBA{60, 30, 30, 255}    // Dark red for blocked ground
	colorZoneA      = color.RGBA{0, 200, 80, 255}    // Green deployment zone
	colorZoneB      = color.RGBA{0, 180, 220, 255}   // Cyan deployment zone
	colorWall       = color.RGBA{220, 220, 235, 255} // Light gray-blue walls
	colorDoor       = color.RGBA{255, 255, 0, 255}   // Bright yellow
	colorWindow     = color.RGBA{120, 170, 255, 255} // Pale blue
)

// Sizes in pixels
const (
	defaultCellSize = 12
	minCellSize     = 4
	maxCellSize     = 32
	wallThickness   = 2
	statusHeight    = 20
)

// floorColor returns the fill for a cell's ground.
func floorColor(k world.FloorKind) color.Color {
	switch k {
	case world.FloorRoom:
		return colorFloorRoom
	case world.FloorBlocked:
		return colorBlocked
	case world.FloorDeploymentA:
		return colorZoneA
	case world.FloorDeploymentB:
		return colorZoneB
	default:
		return colorFloorOpen
	}
}

// wallColor returns the stroke for a closed boundary.
func wallColor(k world.WallKind) color.Color {
	switch k {
	case world.WallDoor:
		return colorDoor
	case world.WallWindow:
		return colorWindow
	default:
		return colorWall
	}
}
