package generator

import (
	"github.com/zyedidia/generic/mapset"

	"battlescape/pkg/engine/world"
)

// Reachable collects the macro-cells connected to the one cornered at (x, z)
// through open boundaries, using BFS over the ground level.
func Reachable(grid *world.Grid, x, z int) (mapset.Set[int], error) {
	start, err := MacroID(grid, x, z)
	if err != nil {
		return mapset.New[int](), err
	}
	g := newMacroGrid(grid)

	visited := mapset.New[int]()
	visited.Put(start)
	queue := []int{start}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		for _, dir := range world.AllDirections() {
			if !g.isOpen(current, dir) {
				continue
			}
			n, _ := g.neighbor(current, dir)
			if !visited.Has(n) {
				visited.Put(n)
				queue = append(queue, n)
			}
		}
	}
	return visited, nil
}

// DeadEnds returns the macro-cells with exactly one open boundary.
func DeadEnds(grid *world.Grid) []int {
	g := newMacroGrid(grid)
	var out []int
	for m := 0; m < g.count(); m++ {
		if g.degree(m) == 1 {
			out = append(out, m)
		}
	}
	return out
}

// CountFloors tallies the ground faces of every cell on the ground level.
func CountFloors(grid *world.Grid) map[world.FloorKind]int {
	counts := make(map[world.FloorKind]int, len(world.FloorKinds()))
	grid.ForEachCell(groundLevel, func(x, z int, cell world.Cell) {
		counts[cell.Ground]++
	})
	return counts
}
