package generator

import (
	"testing"

	"battlescape/pkg/engine/world"
)

func TestCarve_VisitsEveryMacroCellAsSpanningTree(t *testing.T) {
	for seed := int64(1); seed <= 5; seed++ {
		b := mustBuilder(t, DefaultConfig(), NewSource(seed))
		if err := b.Carve(); err != nil {
			t.Fatalf("seed %d: Carve: %v", seed, err)
		}

		total := b.count()
		if got := b.visited.Len(); got != total {
			t.Errorf("seed %d: visited %d macro-cells, want all %d", seed, got, total)
		}
		// A spanning tree over n nodes has exactly n-1 edges.
		if b.report.Carved != total-1 {
			t.Errorf("seed %d: carved %d walls, want %d", seed, b.report.Carved, total-1)
		}
		edges := 0
		for m := 0; m < total; m++ {
			edges += b.degree(m)
		}
		if edges/2 != total-1 {
			t.Errorf("seed %d: %d open boundaries, want %d", seed, edges/2, total-1)
		}
		if !b.frontier.Empty() {
			t.Errorf("seed %d: frontier not released after carve", seed)
		}
	}
}

func TestCarve_FloodFillMatchesVisitedSet(t *testing.T) {
	b := mustBuilder(t, DefaultConfig(), NewSource(42))
	if err := b.Carve(); err != nil {
		t.Fatalf("Carve: %v", err)
	}
	x, z := b.Start()
	reached, err := Reachable(b.grid, x, z)
	if err != nil {
		t.Fatalf("Reachable: %v", err)
	}
	if reached.Size() != b.visited.Len() {
		t.Fatalf("flood fill reached %d macro-cells, visited set has %d", reached.Size(), b.visited.Len())
	}
	for m := 0; m < b.count(); m++ {
		if reached.Has(m) != b.visited.Has(m) {
			t.Errorf("macro-cell %d: reachable=%v visited=%v", m, reached.Has(m), b.visited.Has(m))
		}
	}
}

func TestCarve_LeavesPerimeterAndFloorsAlone(t *testing.T) {
	b := mustBuilder(t, DefaultConfig(), NewSource(7))
	if err := b.Carve(); err != nil {
		t.Fatalf("Carve: %v", err)
	}
	b.grid.ForEachCell(groundLevel, func(x, z int, cell world.Cell) {
		if z == 0 && cell.North != world.WallSolid {
			t.Errorf("perimeter north wall at (%d,%d) = %s", x, z, cell.North)
		}
		if x == 0 && cell.West != world.WallSolid {
			t.Errorf("perimeter west wall at (%d,%d) = %s", x, z, cell.West)
		}
		inZone := b.inZone(cellPos{x, z})
		if inZone && !cell.IsDeployment() {
			t.Errorf("zone cell (%d,%d) lost its deployment floor: %s", x, z, cell.Ground)
		}
		if !inZone && cell.Ground != world.FloorOpen {
			t.Errorf("cell (%d,%d) floor = %s, want open", x, z, cell.Ground)
		}
	})
}

func TestCarve_DeploymentZonesStayConnected(t *testing.T) {
	b := mustBuilder(t, DefaultConfig(), NewSource(3))
	if err := b.Carve(); err != nil {
		t.Fatalf("Carve: %v", err)
	}
	reached, err := Reachable(b.grid, 0, 0)
	if err != nil {
		t.Fatalf("Reachable: %v", err)
	}
	far := b.at(b.cfg.Width-2, b.cfg.Length-2)
	if !reached.Has(far) {
		t.Error("south-east deployment zone is not reachable from the north-west one")
	}
}

func TestChooseDirection_KeepsHeadingWhenRollSucceeds(t *testing.T) {
	b := mustBuilder(t, smallConfig(), &scriptedSource{})
	dirs := []world.Direction{world.North, world.East, world.South}

	b.rng = &scriptedSource{values: []int{59}}
	if got := b.chooseDirection(dirs, world.South); got != world.South {
		t.Errorf("roll 59 < 60: got %s, want heading South", got)
	}

	b.rng = &scriptedSource{values: []int{60, 1}}
	if got := b.chooseDirection(dirs, world.South); got != world.East {
		t.Errorf("roll 60 fails: got %s, want uniform pick East", got)
	}

	src := &scriptedSource{values: []int{0}}
	b.rng = src
	if got := b.chooseDirection(dirs, world.West); got != world.North {
		t.Errorf("heading unavailable: got %s, want uniform pick North", got)
	}
	if src.calls != 1 {
		t.Errorf("heading unavailable drew %d values, want 1 (no bias roll)", src.calls)
	}
}

func TestCarve_FullLinearizationRunsStraightCorridors(t *testing.T) {
	cfg := smallConfig()
	cfg.Linearization = 100
	// Start at macro-cell 0; first pick East from {East, South}; the walk
	// must then keep heading East to the edge of the grid.
	b := mustBuilder(t, cfg, &scriptedSource{values: []int{0, 0}})
	if err := b.Carve(); err != nil {
		t.Fatalf("Carve: %v", err)
	}
	for m := 0; m < 3; m++ {
		if !b.isOpen(m, world.East) {
			t.Errorf("macro-cell %d East closed, want a straight corridor along row 0", m)
		}
	}
}

func TestCarve_RejectsSecondRun(t *testing.T) {
	b := mustBuilder(t, smallConfig(), NewSource(1))
	if err := b.Carve(); err != nil {
		t.Fatalf("Carve: %v", err)
	}
	if err := b.Carve(); err == nil {
		t.Error("second Carve() = nil, want ErrStageOrder")
	}
}
