package renderer

import "battlescape/pkg/engine/world"

// WallSegment is one closed cell boundary to draw. A horizontal segment runs
// along the north edge of cell (X, Z); a vertical one along its west edge.
// The grid's south and east edges come out as segments on the row or column
// just past the grid.
type WallSegment struct {
	X, Z       int
	Horizontal bool
	Kind       world.WallKind
}

// WallSegments lists every blocking boundary on level y, row by row.
func WallSegments(grid *world.Grid, y int) []WallSegment {
	var out []WallSegment
	grid.ForEachCell(y, func(x, z int, c world.Cell) {
		if c.North.Blocks() {
			out = append(out, WallSegment{X: x, Z: z, Horizontal: true, Kind: c.North})
		}
		if c.West.Blocks() {
			out = append(out, WallSegment{X: x, Z: z, Kind: c.West})
		}
		if x == grid.Width()-1 {
			out = append(out, WallSegment{X: x + 1, Z: z, Kind: world.WallSolid})
		}
	})
	for x := 0; x < grid.Width(); x++ {
		out = append(out, WallSegment{X: x, Z: grid.Length(), Horizontal: true, Kind: world.WallSolid})
	}
	return out
}
