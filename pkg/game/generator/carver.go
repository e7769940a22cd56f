package generator

import (
	"slices"

	"battlescape/pkg/engine/world"
)

// Carve grows a spanning tree over the macro-cells from a random start.
// Each step opens the wall to an unvisited neighbour, preferring to keep the
// previous direction; when the walk is stuck it resumes from a random
// frontier entry that still has unvisited neighbours. Entries found to be
// exhausted are dropped, so the loop ends once the frontier is empty.
func (b *Builder) Carve() error {
	if err := b.enter(StageCarve); err != nil {
		return err
	}

	start := b.rng.Intn(b.count())
	b.report.Start = start
	b.visited.Add(start)
	b.frontier.Push(start)

	current, heading := start, world.NoDirection
	dirs := make([]world.Direction, 0, 4)
	for {
		dirs = b.unvisitedDirections(current, dirs[:0])
		if len(dirs) == 0 {
			next, ok := b.resume()
			if !ok {
				break
			}
			current, heading = next, world.NoDirection
			continue
		}

		dir := b.chooseDirection(dirs, heading)
		next, _ := b.neighbor(current, dir)
		b.setBoundary(current, dir, world.WallNone)
		b.visited.Add(next)
		b.frontier.Push(next)
		b.report.Carved++
		current, heading = next, dir
	}

	b.frontier = Frontier{}
	b.log.Printf("carve: start %d, %d walls removed, %d macro-cells visited",
		start, b.report.Carved, b.visited.Len())
	return nil
}

// unvisitedDirections appends the directions from m toward unvisited neighbours.
func (b *Builder) unvisitedDirections(m int, dirs []world.Direction) []world.Direction {
	for _, dir := range world.AllDirections() {
		if n, ok := b.neighbor(m, dir); ok && !b.visited.Has(n) {
			dirs = append(dirs, dir)
		}
	}
	return dirs
}

func (b *Builder) hasUnvisitedNeighbor(m int) bool {
	for _, dir := range world.AllDirections() {
		if n, ok := b.neighbor(m, dir); ok && !b.visited.Has(n) {
			return true
		}
	}
	return false
}

// chooseDirection keeps heading with Linearization% probability when it is
// still available, otherwise picks uniformly among dirs.
func (b *Builder) chooseDirection(dirs []world.Direction, heading world.Direction) world.Direction {
	if heading.IsValid() && slices.Contains(dirs, heading) && chance(b.rng, b.cfg.Linearization) {
		return heading
	}
	return dirs[b.rng.Intn(len(dirs))]
}

// resume draws random frontier entries until one still has an unvisited
// neighbour, discarding exhausted ones.
func (b *Builder) resume() (int, bool) {
	for !b.frontier.Empty() {
		i := b.rng.Intn(b.frontier.Len())
		m := b.frontier.At(i)
		if b.hasUnvisitedNeighbor(m) {
			return m, true
		}
		b.frontier.RemoveAt(i)
	}
	return 0, false
}
