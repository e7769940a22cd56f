package generator

import (
	"battlescape/pkg/engine/world"
)

// PlaceRooms makes RoomAttempts tries at carving an open room. A try picks an
// even size and a macro-aligned corner; corners overlapping a deployment zone
// are redrawn up to RoomPlacementRetries times. The room is carved only if
// its footprint already contains a visited macro-cell, so rooms always hang
// off the maze. Rejected tries are dropped without retry.
func (b *Builder) PlaceRooms() error {
	if err := b.enter(StagePlaceRooms); err != nil {
		return err
	}
	attempts := b.cfg.RoomAttempts()
	b.report.RoomAttempts = attempts
	for i := 0; i < attempts; i++ {
		rect, ok := b.pickRoomFootprint()
		if !ok || !b.carveRoom(rect) {
			b.report.RoomsRejected++
			continue
		}
		b.report.RoomsPlaced++
	}
	b.log.Printf("place-rooms: %d of %d rooms placed", b.report.RoomsPlaced, attempts)

	b.visited = nil
	b.stage = StageDone
	return nil
}

// roomSide draws an even side length in [MinRoomSize, MaxRoomSize].
func (b *Builder) roomSide() int {
	steps := (b.cfg.MaxRoomSize-b.cfg.MinRoomSize)/2 + 1
	return b.cfg.MinRoomSize + 2*b.rng.Intn(steps)
}

// pickRoomFootprint draws a room size and a macro-aligned position that does
// not overlap a deployment zone.
func (b *Builder) pickRoomFootprint() (world.Rect, bool) {
	w, l := b.roomSide(), b.roomSide()
	if w > b.cfg.Width || l > b.cfg.Length {
		return world.Rect{}, false
	}
	for try := 0; try <= b.cfg.RoomPlacementRetries; try++ {
		r := world.Rect{
			X:      2 * b.rng.Intn((b.cfg.Width-w)/2+1),
			Z:      2 * b.rng.Intn((b.cfg.Length-l)/2+1),
			Width:  w,
			Length: l,
		}
		if !b.overlapsZone(r) {
			return r, true
		}
	}
	return world.Rect{}, false
}

// carveRoom opens r if any of its macro-cells is visited: room floor on every
// cell, interior walls removed, perimeter walls left as they are.
func (b *Builder) carveRoom(r world.Rect) bool {
	footprint := b.footprint(r)
	visited := 0
	for _, m := range footprint {
		if b.visited.Has(m) {
			visited++
		}
	}
	if visited == 0 {
		return false
	}

	r.Each(func(x, z int) {
		c := b.grid.Cell(x, groundLevel, z)
		c.Ground = world.FloorRoom
		if z > r.Z {
			c.North = world.WallNone
		}
		if x > r.X {
			c.West = world.WallNone
		}
	})
	for _, m := range footprint {
		b.visited.Add(m)
	}
	b.rooms = append(b.rooms, PlacedRoom{Rect: r, Visited: visited})
	return true
}

// footprint lists the macro-cells covered by a macro-aligned rectangle.
func (b *Builder) footprint(r world.Rect) []int {
	out := make([]int, 0, (r.Width/2)*(r.Length/2))
	for z := r.Z; z < r.Z+r.Length; z += 2 {
		for x := r.X; x < r.X+r.Width; x += 2 {
			out = append(out, b.at(x, z))
		}
	}
	return out
}
