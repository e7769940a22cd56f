package generator

import (
	"testing"

	"battlescape/pkg/engine/world"
)

// scriptedSource replays fixed values (taken modulo n) and then returns 0.
type scriptedSource struct {
	values []int
	calls  int
}

func (s *scriptedSource) Intn(n int) int {
	s.calls++
	if len(s.values) == 0 {
		return 0
	}
	v := s.values[0]
	s.values = s.values[1:]
	return v % n
}

// smallConfig is an 8×4 grid (4×2 macro-cells) with 2×2 deployment zones on
// macro-cells 0 and 7.
func smallConfig() Config {
	cfg := DefaultConfig()
	cfg.Width, cfg.Length = 8, 4
	cfg.DeploymentWidth, cfg.DeploymentLength = 2, 2
	return cfg
}

func mustBuilder(t *testing.T, cfg Config, rng Source) *Builder {
	t.Helper()
	b, err := NewBuilder(cfg, rng)
	if err != nil {
		t.Fatalf("NewBuilder: %v", err)
	}
	return b
}

// carveByHand marks the given macro-cells visited, opens the listed
// boundaries and leaves the builder as if Carve had finished.
func carveByHand(t *testing.T, b *Builder, visited []int, open map[int][]world.Direction) {
	t.Helper()
	if err := b.enter(StageCarve); err != nil {
		t.Fatalf("enter carve: %v", err)
	}
	for _, m := range visited {
		b.visited.Add(m)
	}
	for m, dirs := range open {
		for _, dir := range dirs {
			if !b.setBoundary(m, dir, world.WallNone) {
				t.Fatalf("macro-cell %d has no boundary %s", m, dir)
			}
		}
	}
}

// checkWallSymmetry asserts that every shared macro boundary reads the same
// from both sides and that both cells storing it agree.
func checkWallSymmetry(t *testing.T, grid *world.Grid, phase string) {
	t.Helper()
	g := newMacroGrid(grid)
	for m := 0; m < g.count(); m++ {
		for _, dir := range []world.Direction{world.East, world.South} {
			n, ok := g.neighbor(m, dir)
			if !ok {
				continue
			}
			if g.isOpen(m, dir) != g.isOpen(n, dir.Opposite()) {
				t.Errorf("%s: boundary %d %s / %d %s disagree", phase, m, dir, n, dir.Opposite())
			}
			cells, side, _ := g.boundary(m, dir)
			a, b := g.cell(cells[0]).Wall(side), g.cell(cells[1]).Wall(side)
			if a != b {
				t.Errorf("%s: boundary %d %s stored as %s and %s", phase, m, dir, a, b)
			}
		}
	}
}

// zoneSnapshot copies both deployment zones.
func zoneSnapshot(b *Builder) [2][]world.Cell {
	return [2][]world.Cell{
		b.grid.Snapshot(groundLevel, b.zones[0]),
		b.grid.Snapshot(groundLevel, b.zones[1]),
	}
}

func checkZonesUnchanged(t *testing.T, b *Builder, before [2][]world.Cell, phase string) {
	t.Helper()
	after := zoneSnapshot(b)
	for i := range before {
		for j := range before[i] {
			if before[i][j] != after[i][j] {
				t.Errorf("%s: deployment zone %d cell %d changed from %+v to %+v", phase, i, j, before[i][j], after[i][j])
			}
		}
	}
}
