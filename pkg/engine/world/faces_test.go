package world

import (
	"errors"
	"testing"
)

func TestNewFaceCatalog_RequiresEveryRole(t *testing.T) {
	walls := map[WallKind]FaceID{WallSolid: 100, WallDoor: 101, WallWindow: 102}
	floors := map[FloorKind]FaceID{
		FloorOpen: 200, FloorRoom: 201, FloorBlocked: 202,
		FloorDeploymentA: 203, FloorDeploymentB: 204,
	}
	c, err := NewFaceCatalog(walls, floors)
	if err != nil {
		t.Fatalf("NewFaceCatalog: %v", err)
	}
	if got := c.WallFace(WallDoor); got != 101 {
		t.Errorf("WallFace(door) = %d, want 101", got)
	}
	if got := c.FloorFace(FloorBlocked); got != 202 {
		t.Errorf("FloorFace(blocked) = %d, want 202", got)
	}

	delete(floors, FloorDeploymentB)
	if _, err := NewFaceCatalog(walls, floors); !errors.Is(err, ErrInvalidFace) {
		t.Errorf("missing floor role error = %v, want ErrInvalidFace", err)
	}
}

func TestNewFaceCatalog_RejectsUnknownKinds(t *testing.T) {
	walls := map[WallKind]FaceID{WallSolid: 1, WallDoor: 2, WallWindow: 3, WallKind(42): 4}
	floors := map[FloorKind]FaceID{}
	for _, k := range FloorKinds() {
		floors[k] = FaceID(10 + int(k))
	}
	if _, err := NewFaceCatalog(walls, floors); !errors.Is(err, ErrInvalidFace) {
		t.Errorf("unknown wall kind error = %v, want ErrInvalidFace", err)
	}
}

func TestKinds_Strings(t *testing.T) {
	if got := WallKind(9).String(); got != "invalid" {
		t.Errorf("WallKind(9).String() = %q, want invalid", got)
	}
	if WallNone.Blocks() || !WallWindow.Blocks() {
		t.Error("Blocks(): none must be passable, window must block")
	}
	if len(FloorKinds()) != int(floorKindCount) {
		t.Errorf("FloorKinds() has %d entries, want %d", len(FloorKinds()), floorKindCount)
	}
}
