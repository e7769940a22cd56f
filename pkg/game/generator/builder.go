package generator

import (
	"errors"
	"fmt"
	"io"
	"log"

	"battlescape/pkg/engine/world"
)

// Stage is a step of the build pipeline. A builder records the last stage it completed.
type Stage int

const (
	StageInit Stage = iota
	StageCarve
	StageSparsify
	StageInjectLoops
	StagePlaceRooms
	StageDone
)

func (s Stage) String() string {
	switch s {
	case StageInit:
		return "init"
	case StageCarve:
		return "carve"
	case StageSparsify:
		return "sparsify"
	case StageInjectLoops:
		return "inject-loops"
	case StagePlaceRooms:
		return "place-rooms"
	case StageDone:
		return "done"
	default:
		return "unknown"
	}
}

// ErrStageOrder is returned when a stage is run out of sequence.
var ErrStageOrder = errors.New("stage run out of order")

// Report counts what each stage did.
type Report struct {
	Start         int // macro-cell the carve started from
	Carved        int // walls removed by the carver
	Blocked       int // dead ends turned into blocked macro-cells
	Loops         int // walls removed to create cycles
	RoomAttempts  int
	RoomsPlaced   int
	RoomsRejected int
}

// PlacedRoom is a room carved by the room placer.
type PlacedRoom struct {
	Rect world.Rect
	// Visited is how many footprint macro-cells were already part of the
	// maze before the room was carved. Always at least one.
	Visited int
}

// Option configures a Builder.
type Option func(*Builder)

// WithLogger routes stage logging to l.
func WithLogger(l *log.Logger) Option {
	return func(b *Builder) {
		if l != nil {
			b.log = l
		}
	}
}

// Builder runs the generation pipeline over one grid. It is single use:
// Init → Carve → Sparsify → InjectLoops → PlaceRooms → Done.
type Builder struct {
	macroGrid

	cfg   Config
	rng   Source
	log   *log.Logger
	zones [2]world.Rect
	stage Stage

	// scratch state, released when the builder reaches StageDone
	visited  VisitedSet
	frontier Frontier

	rooms  []PlacedRoom
	report Report
}

// NewBuilder validates cfg, allocates the grid and stamps the initial
// layout: every macro-cell walled off, deployment zones tagged.
func NewBuilder(cfg Config, rng Source, opts ...Option) (*Builder, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if rng == nil {
		return nil, ErrNoSource
	}
	grid, err := world.NewGrid(cfg.Width, cfg.Levels, cfg.Length, cfg.Catalog)
	if err != nil {
		return nil, fmt.Errorf("allocating grid: %w", err)
	}

	b := &Builder{
		macroGrid: newMacroGrid(grid),
		cfg:       cfg,
		rng:       rng,
		log:       log.New(io.Discard, "", 0),
		zones:     cfg.DeploymentZones(),
		stage:     StageInit,
	}
	for _, opt := range opts {
		opt(b)
	}
	b.visited = NewVisitedSet(b.count())
	b.stamp()
	b.log.Printf("init: %dx%d grid, %d macro-cells, zones %v %v",
		cfg.Width, cfg.Length, b.count(), b.zones[0], b.zones[1])
	return b, nil
}

// stamp walls every macro-cell boundary, including the perimeter, leaves
// macro-cell interiors open and tags the deployment zones.
func (b *Builder) stamp() {
	for z := 0; z < b.cfg.Length; z++ {
		for x := 0; x < b.cfg.Width; x++ {
			c := b.grid.Cell(x, groundLevel, z)
			c.North, c.West = world.WallNone, world.WallNone
			if z%2 == 0 {
				c.North = world.WallSolid
			}
			if x%2 == 0 {
				c.West = world.WallSolid
			}
			c.Ground = world.FloorOpen
		}
	}
	for i, kind := range []world.FloorKind{world.FloorDeploymentA, world.FloorDeploymentB} {
		b.zones[i].Each(func(x, z int) {
			b.grid.Cell(x, groundLevel, z).Ground = kind
		})
	}
}

// Run executes every remaining stage and returns the finished grid.
func (b *Builder) Run() (*world.Grid, error) {
	for b.stage != StageDone {
		var err error
		switch b.stage {
		case StageInit:
			err = b.Carve()
		case StageCarve:
			err = b.Sparsify()
		case StageSparsify:
			err = b.InjectLoops()
		case StageInjectLoops:
			err = b.PlaceRooms()
		default:
			err = fmt.Errorf("%w: cannot resume from %s", ErrStageOrder, b.stage)
		}
		if err != nil {
			return nil, err
		}
	}
	return b.grid, nil
}

// enter moves the builder into stage s, which must directly follow the last
// completed stage.
func (b *Builder) enter(s Stage) error {
	if b.stage != s-1 {
		return fmt.Errorf("%w: %s after %s", ErrStageOrder, s, b.stage)
	}
	b.stage = s
	return nil
}

// Grid returns the grid being built
func (b *Builder) Grid() *world.Grid {
	return b.grid
}

// Stage returns the last completed stage
func (b *Builder) Stage() Stage {
	return b.stage
}

// Start returns the corner cell of the macro-cell the carve started from.
func (b *Builder) Start() (x, z int) {
	return b.corner(b.report.Start)
}

// Rooms returns the rooms placed so far
func (b *Builder) Rooms() []PlacedRoom {
	out := make([]PlacedRoom, len(b.rooms))
	copy(out, b.rooms)
	return out
}

// Report returns the stage counters
func (b *Builder) Report() Report {
	return b.report
}

// Zones returns the two deployment zones
func (b *Builder) Zones() [2]world.Rect {
	return b.zones
}

// Visited reports whether macro-cell m is part of the maze. Always false once
// the builder is done and its scratch state has been released.
func (b *Builder) Visited(m int) bool {
	return b.visited.Has(m)
}

func (b *Builder) inZone(p cellPos) bool {
	return b.zones[0].Contains(p.x, p.z) || b.zones[1].Contains(p.x, p.z)
}

func (b *Builder) anyInZone(cells []cellPos) bool {
	for _, p := range cells {
		if b.inZone(p) {
			return true
		}
	}
	return false
}

// macroInZone reports whether any cell of m lies in a deployment zone.
func (b *Builder) macroInZone(m int) bool {
	members := b.members(m)
	return b.anyInZone(members[:])
}

// boundaryInZone reports whether the boundary toward dir is stored on a zone cell.
func (b *Builder) boundaryInZone(m int, dir world.Direction) bool {
	cells, _, ok := b.boundary(m, dir)
	return ok && b.anyInZone(cells[:])
}

func (b *Builder) overlapsZone(r world.Rect) bool {
	return r.Overlaps(b.zones[0]) || r.Overlaps(b.zones[1])
}
