package world

// Grid is the battlescape play-field: a flat array of cells covering
// width × levels × length, addressed by index(x,y,z) = (y*length + z)*width + x.
type Grid struct {
	cells   []Cell
	width   int
	levels  int
	length  int
	catalog *FaceCatalog
}

// NewGrid creates a grid with the given dimensions. Width and length must be
// even because generation works on 2×2 macro-cells. Dimensions are checked
// before any cell storage is allocated. A nil catalog selects the default one.
func NewGrid(width, levels, length int, catalog *FaceCatalog) (*Grid, error) {
	if err := ValidateDimensions(width, levels, length); err != nil {
		return nil, err
	}
	if catalog == nil {
		catalog = DefaultFaceCatalog()
	}
	return &Grid{
		cells:   make([]Cell, width*levels*length),
		width:   width,
		levels:  levels,
		length:  length,
		catalog: catalog,
	}, nil
}

// ValidateDimensions checks grid dimensions without allocating anything.
func ValidateDimensions(width, levels, length int) error {
	if width <= 0 || levels <= 0 || length <= 0 {
		return &DimensionError{Width: width, Levels: levels, Length: length, Err: ErrBadDimension}
	}
	if width%2 != 0 || length%2 != 0 {
		return &DimensionError{Width: width, Levels: levels, Length: length, Err: ErrOddDimension}
	}
	return nil
}

// Width returns the number of cells along x
func (g *Grid) Width() int {
	return g.width
}

// Levels returns the number of vertical levels
func (g *Grid) Levels() int {
	return g.levels
}

// Length returns the number of cells along z
func (g *Grid) Length() int {
	return g.length
}

// Catalog returns the face catalog the grid was built with
func (g *Grid) Catalog() *FaceCatalog {
	return g.catalog
}

// Contains checks if a position is within grid bounds
func (g *Grid) Contains(x, y, z int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.levels && z >= 0 && z < g.length
}

// Index returns the linear index of (x,y,z), or false if out of bounds.
func (g *Grid) Index(x, y, z int) (int, bool) {
	if !g.Contains(x, y, z) {
		return 0, false
	}
	return (y*g.length+z)*g.width + x, true
}

// Cell returns the cell at the given position, or nil if out of bounds
func (g *Grid) Cell(x, y, z int) *Cell {
	i, ok := g.Index(x, y, z)
	if !ok {
		return nil
	}
	return &g.cells[i]
}

// At returns a copy of the cell at the given position.
func (g *Grid) At(x, y, z int) (Cell, error) {
	c := g.Cell(x, y, z)
	if c == nil {
		return Cell{}, &CoordError{X: x, Y: y, Z: z, Err: ErrOutOfBounds}
	}
	return *c, nil
}

// CheckMacroCorner validates (x,y,z) as the north-west corner of a 2×2 macro-cell.
func (g *Grid) CheckMacroCorner(x, y, z int) error {
	if !g.Contains(x, y, z) {
		return &CoordError{X: x, Y: y, Z: z, Err: ErrOutOfBounds}
	}
	if x%2 != 0 || z%2 != 0 {
		return &CoordError{X: x, Y: y, Z: z, Err: ErrOddMacroCorner}
	}
	return nil
}

// SetWall sets the wall on the given side of a cell. Because walls are stored
// once per boundary, this also changes what the neighbouring cell sees.
func (g *Grid) SetWall(x, y, z int, side Side, kind WallKind) error {
	c := g.Cell(x, y, z)
	if c == nil {
		return &CoordError{X: x, Y: y, Z: z, Err: ErrOutOfBounds}
	}
	if !kind.Valid() {
		return &CoordError{X: x, Y: y, Z: z, Err: ErrInvalidFace}
	}
	c.SetWall(side, kind)
	return nil
}

// Wall returns the wall on the given side of a cell.
func (g *Grid) Wall(x, y, z int, side Side) (WallKind, error) {
	c := g.Cell(x, y, z)
	if c == nil {
		return WallNone, &CoordError{X: x, Y: y, Z: z, Err: ErrOutOfBounds}
	}
	return c.Wall(side), nil
}

// WallToward returns the wall between (x,y,z) and its neighbour in dir,
// reading it from whichever cell owns that boundary. Boundaries on the
// south and east edges of the grid have no owner and read as WallSolid.
func (g *Grid) WallToward(x, y, z int, dir Direction) (WallKind, error) {
	if !g.Contains(x, y, z) {
		return WallNone, &CoordError{X: x, Y: y, Z: z, Err: ErrOutOfBounds}
	}
	switch dir {
	case North:
		return g.cells[(y*g.length+z)*g.width+x].North, nil
	case West:
		return g.cells[(y*g.length+z)*g.width+x].West, nil
	case South:
		if z+1 >= g.length {
			return WallSolid, nil
		}
		return g.cells[(y*g.length+z+1)*g.width+x].North, nil
	case East:
		if x+1 >= g.width {
			return WallSolid, nil
		}
		return g.cells[(y*g.length+z)*g.width+x+1].West, nil
	}
	return WallNone, &CoordError{X: x, Y: y, Z: z, Err: ErrOutOfBounds}
}

// SetFloor sets the ground face of a cell.
func (g *Grid) SetFloor(x, y, z int, kind FloorKind) error {
	c := g.Cell(x, y, z)
	if c == nil {
		return &CoordError{X: x, Y: y, Z: z, Err: ErrOutOfBounds}
	}
	if !kind.Valid() {
		return &CoordError{X: x, Y: y, Z: z, Err: ErrInvalidFace}
	}
	c.Ground = kind
	return nil
}

// Floor returns the ground face of a cell.
func (g *Grid) Floor(x, y, z int) (FloorKind, error) {
	c := g.Cell(x, y, z)
	if c == nil {
		return FloorOpen, &CoordError{X: x, Y: y, Z: z, Err: ErrOutOfBounds}
	}
	return c.Ground, nil
}

// Fill applies cell to every position of rect on level y. The whole rectangle
// is checked first so a rejected fill leaves the grid untouched.
func (g *Grid) Fill(y int, rect Rect, cell Cell) error {
	if rect.Empty() {
		return nil
	}
	if !g.Contains(rect.X, y, rect.Z) {
		return &CoordError{X: rect.X, Y: y, Z: rect.Z, Err: ErrOutOfBounds}
	}
	lastX, lastZ := rect.X+rect.Width-1, rect.Z+rect.Length-1
	if !g.Contains(lastX, y, lastZ) {
		return &CoordError{X: lastX, Y: y, Z: lastZ, Err: ErrOutOfBounds}
	}
	rect.Each(func(x, z int) {
		g.cells[(y*g.length+z)*g.width+x] = cell
	})
	return nil
}

// Snapshot copies the cells of rect on level y, row by row.
// Positions outside the grid are skipped.
func (g *Grid) Snapshot(y int, rect Rect) []Cell {
	out := make([]Cell, 0, rect.Area())
	rect.Each(func(x, z int) {
		if c := g.Cell(x, y, z); c != nil {
			out = append(out, *c)
		}
	})
	return out
}

// Cells returns a copy of the whole cell array in index order.
func (g *Grid) Cells() []Cell {
	out := make([]Cell, len(g.cells))
	copy(out, g.cells)
	return out
}

// Equal reports whether both grids have the same dimensions and cell contents.
func (g *Grid) Equal(o *Grid) bool {
	if g == nil || o == nil {
		return g == o
	}
	if g.width != o.width || g.levels != o.levels || g.length != o.length {
		return false
	}
	for i := range g.cells {
		if g.cells[i] != o.cells[i] {
			return false
		}
	}
	return true
}

// ForEachCell iterates over all cells of a level, calling fn for each
func (g *Grid) ForEachCell(y int, fn func(x, z int, cell Cell)) {
	if y < 0 || y >= g.levels {
		return
	}
	for z := 0; z < g.length; z++ {
		for x := 0; x < g.width; x++ {
			fn(x, z, g.cells[(y*g.length+z)*g.width+x])
		}
	}
}

// WallFace returns the face identifier for the wall on the given side of a cell.
func (g *Grid) WallFace(x, y, z int, side Side) FaceID {
	c := g.Cell(x, y, z)
	if c == nil {
		return FaceNone
	}
	return g.catalog.WallFace(c.Wall(side))
}

// FloorFace returns the face identifier for the ground of a cell.
func (g *Grid) FloorFace(x, y, z int) FaceID {
	c := g.Cell(x, y, z)
	if c == nil {
		return FaceNone
	}
	return g.catalog.FloorFace(c.Ground)
}
