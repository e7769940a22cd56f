package devtools

import (
	"battlescape/pkg/engine/world"
	"battlescape/pkg/game/generator"
	"battlescape/pkg/game/renderer"
)

// DevFrame returns a hard-coded 12x8 frame showing every floor and wall kind,
// for checking renderers without running the generator.
//
//	zone A in the north-west 2x2 block, zone B in the south-east one,
//	a 4x4 room in the middle with a door and a window on its west side,
//	blocked ground on the east side and corridors along the other edges.
func DevFrame() *renderer.Frame {
	grid, err := world.NewGrid(12, 1, 8, nil)
	if err != nil {
		panic(err) // fixed, valid dimensions
	}

	// Wall every macro-cell, then open the interiors.
	grid.ForEachCell(groundLevel, func(x, z int, _ world.Cell) {
		c := grid.Cell(x, groundLevel, z)
		if z%2 == 0 {
			c.North = world.WallSolid
		}
		if x%2 == 0 {
			c.West = world.WallSolid
		}
	})

	// Corridors along the north, south and west edges.
	for x := 2; x < 12; x += 2 {
		grid.Cell(x, groundLevel, 0).West = world.WallNone
		grid.Cell(x, groundLevel, 1).West = world.WallNone
		grid.Cell(x, groundLevel, 6).West = world.WallNone
		grid.Cell(x, groundLevel, 7).West = world.WallNone
	}
	for z := 2; z < 8; z += 2 {
		grid.Cell(0, groundLevel, z).North = world.WallNone
		grid.Cell(1, groundLevel, z).North = world.WallNone
	}

	zoneA := world.Rect{X: 0, Z: 0, Width: 2, Length: 2}
	zoneB := world.Rect{X: 10, Z: 6, Width: 2, Length: 2}
	zoneA.Each(func(x, z int) { grid.Cell(x, groundLevel, z).Ground = world.FloorDeploymentA })
	zoneB.Each(func(x, z int) { grid.Cell(x, groundLevel, z).Ground = world.FloorDeploymentB })

	// Blocked macro-cells, sealed off from the corridors.
	blocked := world.Rect{X: 10, Z: 2, Width: 2, Length: 4}
	blocked.Each(func(x, z int) { grid.Cell(x, groundLevel, z).Ground = world.FloorBlocked })

	// Room in the middle, entered from the west corridor.
	room := world.Rect{X: 4, Z: 2, Width: 4, Length: 4}
	room.Each(func(x, z int) {
		c := grid.Cell(x, groundLevel, z)
		c.Ground = world.FloorRoom
		if z > room.Z {
			c.North = world.WallNone
		}
		if x > room.X {
			c.West = world.WallNone
		}
	})
	for z := 2; z < 6; z++ {
		grid.Cell(2, groundLevel, z).West = world.WallNone
	}
	grid.Cell(4, groundLevel, 3).West = world.WallDoor
	grid.Cell(4, groundLevel, 4).West = world.WallWindow

	return &renderer.Frame{
		Grid:    grid,
		Mission: "Developer map",
		Rooms:   []generator.PlacedRoom{{Rect: room, Visited: 1}},
	}
}
