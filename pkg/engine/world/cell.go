// Package world provides the cell grid a battlescape is generated on.
// These are engine-level constructs with no knowledge of how a map is built.
package world

// WallKind identifies what stands on a cell boundary.
type WallKind uint8

const (
	WallNone   WallKind = iota // Open boundary
	WallSolid                  // Impassable wall
	WallDoor                   // Door, blocks passage until opened
	WallWindow                 // Window, blocks passage but not sight
	wallKindCount
)

// Valid reports whether k is a known wall kind.
func (k WallKind) Valid() bool {
	return k < wallKindCount
}

// Blocks reports whether the boundary is closed for movement.
func (k WallKind) Blocks() bool {
	return k != WallNone
}

func (k WallKind) String() string {
	switch k {
	case WallNone:
		return "none"
	case WallSolid:
		return "solid"
	case WallDoor:
		return "door"
	case WallWindow:
		return "window"
	default:
		return "invalid"
	}
}

// WallKinds returns every wall kind in declaration order.
func WallKinds() []WallKind {
	kinds := make([]WallKind, 0, wallKindCount)
	for k := WallNone; k < wallKindCount; k++ {
		kinds = append(kinds, k)
	}
	return kinds
}

// FloorKind identifies the ground face of a cell.
type FloorKind uint8

const (
	FloorOpen        FloorKind = iota // Corridor floor
	FloorRoom                         // Open-room floor
	FloorBlocked                      // Impassable, removed from the maze
	FloorDeploymentA                  // North-west deployment zone
	FloorDeploymentB                  // South-east deployment zone
	floorKindCount
)

// Valid reports whether k is a known floor kind.
func (k FloorKind) Valid() bool {
	return k < floorKindCount
}

func (k FloorKind) String() string {
	switch k {
	case FloorOpen:
		return "open"
	case FloorRoom:
		return "room"
	case FloorBlocked:
		return "blocked"
	case FloorDeploymentA:
		return "deployment-a"
	case FloorDeploymentB:
		return "deployment-b"
	default:
		return "invalid"
	}
}

// FloorKinds returns every floor kind in declaration order.
func FloorKinds() []FloorKind {
	kinds := make([]FloorKind, 0, floorKindCount)
	for k := FloorOpen; k < floorKindCount; k++ {
		kinds = append(kinds, k)
	}
	return kinds
}

// Cell is a single grid cell. North is the wall shared with the cell at z-1,
// West the wall shared with the cell at x-1.
type Cell struct {
	North  WallKind
	West   WallKind
	Ground FloorKind
}

// Wall returns the wall stored on the given side.
func (c Cell) Wall(side Side) WallKind {
	if side == SideWest {
		return c.West
	}
	return c.North
}

// SetWall stores kind on the given side.
func (c *Cell) SetWall(side Side, kind WallKind) {
	if c == nil {
		return
	}
	if side == SideWest {
		c.West = kind
		return
	}
	c.North = kind
}

// IsBlocked returns true if the cell has been removed from the maze
func (c Cell) IsBlocked() bool {
	return c.Ground == FloorBlocked
}

// IsDeployment returns true if the cell belongs to either deployment zone
func (c Cell) IsDeployment() bool {
	return c.Ground == FloorDeploymentA || c.Ground == FloorDeploymentB
}
