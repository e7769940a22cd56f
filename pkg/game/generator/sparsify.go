package generator

import (
	"battlescape/pkg/engine/world"
)

// Sparsify runs SparsenessRepeat passes over the macro-cells, blocking every
// dead end it meets. Degrees are read live, so blocking a cell can expose a
// new dead end later in the same pass.
func (b *Builder) Sparsify() error {
	if err := b.enter(StageSparsify); err != nil {
		return err
	}
	for pass := 0; pass < b.cfg.SparsenessRepeat; pass++ {
		blocked := 0
		for m := 0; m < b.count(); m++ {
			if b.degree(m) != 1 || !b.canBlock(m) {
				continue
			}
			b.block(m)
			blocked++
		}
		b.report.Blocked += blocked
		b.log.Printf("sparsify: pass %d blocked %d dead ends", pass+1, blocked)
	}
	return nil
}

// canBlock reports whether blocking m leaves both deployment zones untouched.
func (b *Builder) canBlock(m int) bool {
	if b.macroInZone(m) {
		return false
	}
	for _, dir := range world.AllDirections() {
		if !b.isSealed(m, dir) && b.boundaryInZone(m, dir) {
			return false
		}
	}
	return true
}

// block seals every boundary of m, marks its floor blocked and takes it out
// of the maze.
func (b *Builder) block(m int) {
	for _, dir := range world.AllDirections() {
		if !b.isSealed(m, dir) {
			b.setBoundary(m, dir, world.WallSolid)
		}
	}
	for _, p := range b.members(m) {
		b.cell(p).Ground = world.FloorBlocked
	}
	b.visited.Remove(m)
}
