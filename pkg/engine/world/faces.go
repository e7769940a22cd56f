package world

import "fmt"

// FaceID is an opaque identifier handed to renderers for a wall or floor face.
type FaceID int

// FaceCatalog maps wall and floor roles to face identifiers.
// It is populated once and never changes afterwards.
type FaceCatalog struct {
	walls  [wallKindCount]FaceID
	floors [floorKindCount]FaceID
}

// Default face identifiers
const (
	FaceNone FaceID = 0

	FaceWallSolid  FaceID = 1
	FaceWallDoor   FaceID = 2
	FaceWallWindow FaceID = 3

	FaceFloorOpen        FaceID = 10
	FaceFloorRoom        FaceID = 11
	FaceFloorBlocked     FaceID = 12
	FaceFloorDeploymentA FaceID = 13
	FaceFloorDeploymentB FaceID = 14
)

// DefaultFaceCatalog returns the catalog used when a mission supplies none.
func DefaultFaceCatalog() *FaceCatalog {
	return &FaceCatalog{
		walls: [wallKindCount]FaceID{
			WallNone:   FaceNone,
			WallSolid:  FaceWallSolid,
			WallDoor:   FaceWallDoor,
			WallWindow: FaceWallWindow,
		},
		floors: [floorKindCount]FaceID{
			FloorOpen:        FaceFloorOpen,
			FloorRoom:        FaceFloorRoom,
			FloorBlocked:     FaceFloorBlocked,
			FloorDeploymentA: FaceFloorDeploymentA,
			FloorDeploymentB: FaceFloorDeploymentB,
		},
	}
}

// NewFaceCatalog builds a catalog from explicit tables. Every wall kind except
// WallNone and every floor kind must be present.
func NewFaceCatalog(walls map[WallKind]FaceID, floors map[FloorKind]FaceID) (*FaceCatalog, error) {
	c := &FaceCatalog{}
	for k, id := range walls {
		if !k.Valid() {
			return nil, fmt.Errorf("wall kind %d: %w", k, ErrInvalidFace)
		}
		c.walls[k] = id
	}
	for k, id := range floors {
		if !k.Valid() {
			return nil, fmt.Errorf("floor kind %d: %w", k, ErrInvalidFace)
		}
		c.floors[k] = id
	}
	for _, k := range WallKinds() {
		if k == WallNone {
			continue
		}
		if _, ok := walls[k]; !ok {
			return nil, fmt.Errorf("no face for wall %s: %w", k, ErrInvalidFace)
		}
	}
	for _, k := range FloorKinds() {
		if _, ok := floors[k]; !ok {
			return nil, fmt.Errorf("no face for floor %s: %w", k, ErrInvalidFace)
		}
	}
	return c, nil
}

// WallFace returns the face for a wall kind, FaceNone for unknown kinds.
func (c *FaceCatalog) WallFace(k WallKind) FaceID {
	if c == nil || !k.Valid() {
		return FaceNone
	}
	return c.walls[k]
}

// FloorFace returns the face for a floor kind, FaceNone for unknown kinds.
func (c *FaceCatalog) FloorFace(k FloorKind) FaceID {
	if c == nil || !k.Valid() {
		return FaceNone
	}
	return c.floors[k]
}
