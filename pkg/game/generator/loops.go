package generator

import (
	"battlescape/pkg/engine/world"
)

// InjectLoops gives each remaining dead end a DeadendToLoopPercentage% chance
// to open one extra wall toward a visited neighbour it is not yet connected
// to, turning the tree into a graph with cycles. Dead ends inside a
// deployment zone take part too; only boundaries stored on zone cells are
// left alone.
func (b *Builder) InjectLoops() error {
	if err := b.enter(StageInjectLoops); err != nil {
		return err
	}
	candidates := make([]world.Direction, 0, 4)
	for m := 0; m < b.count(); m++ {
		if b.degree(m) != 1 {
			continue
		}
		if !chance(b.rng, b.cfg.DeadendToLoopPercentage) {
			continue
		}
		candidates = b.loopCandidates(m, candidates[:0])
		if len(candidates) == 0 {
			continue
		}
		dir := candidates[b.rng.Intn(len(candidates))]
		b.setBoundary(m, dir, world.WallNone)
		b.report.Loops++
	}
	b.log.Printf("inject-loops: %d loops opened", b.report.Loops)
	return nil
}

// loopCandidates appends the directions toward visited neighbours that are
// still walled off from m.
func (b *Builder) loopCandidates(m int, dirs []world.Direction) []world.Direction {
	for _, dir := range world.AllDirections() {
		n, ok := b.neighbor(m, dir)
		if !ok || !b.visited.Has(n) || b.isOpen(m, dir) || b.boundaryInZone(m, dir) {
			continue
		}
		dirs = append(dirs, dir)
	}
	return dirs
}
