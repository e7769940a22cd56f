package world

import (
	"errors"
	"testing"
)

func TestNewGrid_RejectsOddDimensions(t *testing.T) {
	for _, tc := range []struct {
		name                  string
		width, levels, length int
	}{
		{"odd width", 47, 1, 48},
		{"odd length", 48, 1, 47},
		{"both odd", 3, 1, 5},
	} {
		t.Run(tc.name, func(t *testing.T) {
			g, err := NewGrid(tc.width, tc.levels, tc.length, nil)
			if g != nil {
				t.Errorf("NewGrid(%d,%d,%d) returned a grid, want nil", tc.width, tc.levels, tc.length)
			}
			if !errors.Is(err, ErrOddDimension) {
				t.Fatalf("NewGrid error = %v, want ErrOddDimension", err)
			}
			var dimErr *DimensionError
			if !errors.As(err, &dimErr) {
				t.Fatalf("error %T is not a *DimensionError", err)
			}
			if dimErr.Width != tc.width || dimErr.Length != tc.length {
				t.Errorf("DimensionError = %+v, want width %d length %d", dimErr, tc.width, tc.length)
			}
		})
	}
}

func TestNewGrid_RejectsNonPositiveDimensions(t *testing.T) {
	for _, dims := range [][3]int{{0, 1, 4}, {4, 0, 4}, {4, 1, -2}} {
		_, err := NewGrid(dims[0], dims[1], dims[2], nil)
		if !errors.Is(err, ErrBadDimension) {
			t.Errorf("NewGrid%v error = %v, want ErrBadDimension", dims, err)
		}
	}
}

func TestGrid_IndexLayout(t *testing.T) {
	g, err := NewGrid(4, 2, 6, nil)
	if err != nil {
		t.Fatalf("NewGrid: %v", err)
	}
	if got := len(g.Cells()); got != 4*2*6 {
		t.Fatalf("len(Cells()) = %d, want %d", got, 4*2*6)
	}
	for _, tc := range []struct {
		x, y, z int
		want    int
	}{
		{0, 0, 0, 0},
		{3, 0, 0, 3},
		{0, 0, 1, 4},
		{1, 1, 2, (1*6+2)*4 + 1},
		{3, 1, 5, 47},
	} {
		got, ok := g.Index(tc.x, tc.y, tc.z)
		if !ok || got != tc.want {
			t.Errorf("Index(%d,%d,%d) = %d,%v, want %d,true", tc.x, tc.y, tc.z, got, ok, tc.want)
		}
	}
	if _, ok := g.Index(4, 0, 0); ok {
		t.Error("Index(4,0,0) ok = true, want false")
	}
	if _, ok := g.Index(0, 0, -1); ok {
		t.Error("Index(0,0,-1) ok = true, want false")
	}
}

func TestGrid_AccessorsRejectOutOfBounds(t *testing.T) {
	g, _ := NewGrid(4, 1, 4, nil)
	if err := g.SetWall(4, 0, 0, SideNorth, WallSolid); !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("SetWall out of bounds error = %v, want ErrOutOfBounds", err)
	}
	if _, err := g.Wall(0, 1, 0, SideWest); !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("Wall out of bounds error = %v, want ErrOutOfBounds", err)
	}
	if err := g.SetFloor(-1, 0, 0, FloorRoom); !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("SetFloor out of bounds error = %v, want ErrOutOfBounds", err)
	}
	if g.Cell(0, 0, 4) != nil {
		t.Error("Cell(0,0,4) != nil, want nil")
	}
	var coordErr *CoordError
	err := g.SetFloor(9, 0, 2, FloorRoom)
	if !errors.As(err, &coordErr) || coordErr.X != 9 || coordErr.Z != 2 {
		t.Errorf("SetFloor error = %v, want *CoordError at (9,0,2)", err)
	}
}

func TestGrid_CheckMacroCorner(t *testing.T) {
	g, _ := NewGrid(6, 1, 6, nil)
	if err := g.CheckMacroCorner(2, 0, 4); err != nil {
		t.Errorf("CheckMacroCorner(2,0,4) = %v, want nil", err)
	}
	if err := g.CheckMacroCorner(1, 0, 4); !errors.Is(err, ErrOddMacroCorner) {
		t.Errorf("CheckMacroCorner(1,0,4) = %v, want ErrOddMacroCorner", err)
	}
	if err := g.CheckMacroCorner(2, 0, 3); !errors.Is(err, ErrOddMacroCorner) {
		t.Errorf("CheckMacroCorner(2,0,3) = %v, want ErrOddMacroCorner", err)
	}
	if err := g.CheckMacroCorner(6, 0, 0); !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("CheckMacroCorner(6,0,0) = %v, want ErrOutOfBounds", err)
	}
}

func TestGrid_WallTowardReadsOwningCell(t *testing.T) {
	g, _ := NewGrid(4, 1, 4, nil)
	if err := g.SetWall(2, 0, 1, SideWest, WallDoor); err != nil {
		t.Fatalf("SetWall: %v", err)
	}
	if err := g.SetWall(1, 0, 2, SideNorth, WallWindow); err != nil {
		t.Fatalf("SetWall: %v", err)
	}

	east, _ := g.WallToward(1, 0, 1, East)
	west, _ := g.WallToward(2, 0, 1, West)
	if east != WallDoor || west != WallDoor {
		t.Errorf("shared west/east wall = %v/%v, want door/door", east, west)
	}
	south, _ := g.WallToward(1, 0, 1, South)
	north, _ := g.WallToward(1, 0, 2, North)
	if south != WallWindow || north != WallWindow {
		t.Errorf("shared north/south wall = %v/%v, want window/window", south, north)
	}
	if edge, _ := g.WallToward(3, 0, 3, East); edge != WallSolid {
		t.Errorf("east grid edge = %v, want solid", edge)
	}
	if edge, _ := g.WallToward(3, 0, 3, South); edge != WallSolid {
		t.Errorf("south grid edge = %v, want solid", edge)
	}
}

func TestGrid_FillIsAllOrNothing(t *testing.T) {
	g, _ := NewGrid(4, 1, 4, nil)
	fill := Cell{North: WallSolid, West: WallSolid, Ground: FloorBlocked}

	if err := g.Fill(0, Rect{X: 2, Z: 2, Width: 4, Length: 2}, fill); !errors.Is(err, ErrOutOfBounds) {
		t.Fatalf("Fill overflowing rect error = %v, want ErrOutOfBounds", err)
	}
	for _, c := range g.Cells() {
		if c != (Cell{}) {
			t.Fatalf("rejected Fill modified the grid: %+v", c)
		}
	}

	if err := g.Fill(0, Rect{X: 1, Z: 1, Width: 2, Length: 2}, fill); err != nil {
		t.Fatalf("Fill: %v", err)
	}
	g.ForEachCell(0, func(x, z int, cell Cell) {
		inside := x >= 1 && x < 3 && z >= 1 && z < 3
		if inside && cell != fill {
			t.Errorf("cell (%d,%d) = %+v, want %+v", x, z, cell, fill)
		}
		if !inside && cell != (Cell{}) {
			t.Errorf("cell (%d,%d) outside fill = %+v, want zero", x, z, cell)
		}
	})
}

func TestGrid_EqualAndSnapshot(t *testing.T) {
	a, _ := NewGrid(4, 1, 4, nil)
	b, _ := NewGrid(4, 1, 4, nil)
	if !a.Equal(b) {
		t.Fatal("fresh grids are not Equal")
	}
	_ = b.SetFloor(3, 0, 3, FloorRoom)
	if a.Equal(b) {
		t.Fatal("grids differing in one floor are Equal")
	}
	snap := b.Snapshot(0, Rect{X: 2, Z: 2, Width: 2, Length: 2})
	if len(snap) != 4 || snap[3].Ground != FloorRoom {
		t.Errorf("Snapshot = %+v, want 4 cells ending in a room floor", snap)
	}
}

func TestGrid_FaceLookup(t *testing.T) {
	g, _ := NewGrid(2, 1, 2, nil)
	_ = g.SetWall(0, 0, 0, SideNorth, WallSolid)
	_ = g.SetFloor(1, 0, 1, FloorDeploymentB)
	if got := g.WallFace(0, 0, 0, SideNorth); got != FaceWallSolid {
		t.Errorf("WallFace = %d, want %d", got, FaceWallSolid)
	}
	if got := g.FloorFace(1, 0, 1); got != FaceFloorDeploymentB {
		t.Errorf("FloorFace = %d, want %d", got, FaceFloorDeploymentB)
	}
	if got := g.FloorFace(5, 0, 1); got != FaceNone {
		t.Errorf("FloorFace out of bounds = %d, want FaceNone", got)
	}
}
