package generator

import (
	"battlescape/pkg/engine/world"
)

// groundLevel is the only level the maze is generated on.
const groundLevel = 0

// cellPos is a cell position on the ground level.
type cellPos struct {
	x, z int
}

// macroGrid views a world.Grid as 2×2 macro-cells. Macro-cell ids are
// arena indices (mz*cols + mx); the corner cell of id m is (2*mx, 2*mz).
type macroGrid struct {
	grid *world.Grid
	cols int
	rows int
}

func newMacroGrid(grid *world.Grid) macroGrid {
	return macroGrid{grid: grid, cols: grid.Width() / 2, rows: grid.Length() / 2}
}

// count returns the number of macro-cells on the level.
func (g macroGrid) count() int {
	return g.cols * g.rows
}

// corner returns the north-west cell of m.
func (g macroGrid) corner(m int) (x, z int) {
	return 2 * (m % g.cols), 2 * (m / g.cols)
}

// at returns the macro-cell containing cell (x, z).
func (g macroGrid) at(x, z int) int {
	return (z/2)*g.cols + x/2
}

// members returns the four cells of m.
func (g macroGrid) members(m int) [4]cellPos {
	x, z := g.corner(m)
	return [4]cellPos{{x, z}, {x + 1, z}, {x, z + 1}, {x + 1, z + 1}}
}

// neighbor returns the macro-cell adjacent to m in dir.
func (g macroGrid) neighbor(m int, dir world.Direction) (int, bool) {
	if !dir.IsValid() {
		return 0, false
	}
	mx, mz := m%g.cols, m/g.cols
	dx, dz := dir.Delta()
	nx, nz := mx+dx, mz+dz
	if nx < 0 || nx >= g.cols || nz < 0 || nz >= g.rows {
		return 0, false
	}
	return nz*g.cols + nx, true
}

// boundary returns the two cells that store the wall between m and its
// neighbour in dir, and which of their sides holds it. North and west
// boundaries live on m's own cells, south and east on the neighbour's.
// Boundaries on the grid edge are reported as absent.
func (g macroGrid) boundary(m int, dir world.Direction) ([2]cellPos, world.Side, bool) {
	if _, ok := g.neighbor(m, dir); !ok {
		return [2]cellPos{}, world.SideNorth, false
	}
	x, z := g.corner(m)
	switch dir {
	case world.North:
		return [2]cellPos{{x, z}, {x + 1, z}}, world.SideNorth, true
	case world.South:
		return [2]cellPos{{x, z + 2}, {x + 1, z + 2}}, world.SideNorth, true
	case world.West:
		return [2]cellPos{{x, z}, {x, z + 1}}, world.SideWest, true
	default:
		return [2]cellPos{{x + 2, z}, {x + 2, z + 1}}, world.SideWest, true
	}
}

func (g macroGrid) cell(p cellPos) *world.Cell {
	return g.grid.Cell(p.x, groundLevel, p.z)
}

// setBoundary writes kind on both cells of the boundary between m and dir.
func (g macroGrid) setBoundary(m int, dir world.Direction, kind world.WallKind) bool {
	cells, side, ok := g.boundary(m, dir)
	if !ok {
		return false
	}
	for _, p := range cells {
		g.cell(p).SetWall(side, kind)
	}
	return true
}

// isOpen reports whether m connects to its neighbour in dir.
func (g macroGrid) isOpen(m int, dir world.Direction) bool {
	cells, side, ok := g.boundary(m, dir)
	if !ok {
		return false
	}
	for _, p := range cells {
		if g.cell(p).Wall(side).Blocks() {
			return false
		}
	}
	return true
}

// isSealed reports whether the boundary is solid on both cells.
func (g macroGrid) isSealed(m int, dir world.Direction) bool {
	cells, side, ok := g.boundary(m, dir)
	if !ok {
		return true
	}
	for _, p := range cells {
		if g.cell(p).Wall(side) != world.WallSolid {
			return false
		}
	}
	return true
}

// degree counts the open boundaries of m. Grid edges never count.
func (g macroGrid) degree(m int) int {
	n := 0
	for _, dir := range world.AllDirections() {
		if g.isOpen(m, dir) {
			n++
		}
	}
	return n
}

// MacroID returns the macro-cell id whose north-west corner is (x, z) on the
// ground level of grid.
func MacroID(grid *world.Grid, x, z int) (int, error) {
	if err := grid.CheckMacroCorner(x, groundLevel, z); err != nil {
		return 0, err
	}
	return newMacroGrid(grid).at(x, z), nil
}

// MacroCorner returns the north-west corner cell of macro-cell id m.
func MacroCorner(grid *world.Grid, m int) (x, z int, ok bool) {
	g := newMacroGrid(grid)
	if m < 0 || m >= g.count() {
		return 0, 0, false
	}
	x, z = g.corner(m)
	return x, z, true
}
