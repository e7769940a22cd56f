// Package devtools provides developer tools for testing and debugging.
package devtools

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/zyedidia/generic/mapset"

	"battlescape/pkg/engine/world"
	"battlescape/pkg/game/generator"
	"battlescape/pkg/game/renderer"
)

const groundLevel = 0

// DefaultDumpFilename is where DumpMapToFile writes when given no path.
const DefaultDumpFilename = "map.txt"

// cellSymbol returns the single-character symbol for a cell's ground.
func cellSymbol(cell world.Cell) string {
	return renderer.FloorIcon(cell.Ground)
}

// writeFloorGrid writes one character per cell, rooms overlaid with 'R' where
// their rectangles cover the cell so overlapping rooms stand out.
func writeFloorGrid(w io.Writer, grid *world.Grid, roomCells mapset.Set[int]) {
	for z := 0; z < grid.Length(); z++ {
		var row strings.Builder
		for x := 0; x < grid.Width(); x++ {
			c := grid.Cell(x, groundLevel, z)
			idx, _ := grid.Index(x, groundLevel, z)
			if roomCells.Has(idx) && c.Ground == world.FloorRoom {
				row.WriteString("R")
				continue
			}
			row.WriteString(cellSymbol(*c))
		}
		fmt.Fprintln(w, row.String())
	}
}

// writeWallGrid writes the walled layout: one corner column and two floor
// columns per cell, the same layout the terminal map uses.
func writeWallGrid(w io.Writer, grid *world.Grid) {
	for z := 0; z < grid.Length(); z++ {
		var top, row strings.Builder
		for x := 0; x < grid.Width(); x++ {
			c := grid.Cell(x, groundLevel, z)
			north, _ := renderer.WallIcons(c.North)
			_, west := renderer.WallIcons(c.West)
			icon := cellSymbol(*c)
			top.WriteString(renderer.IconCorner + north)
			row.WriteString(west + icon + icon)
		}
		fmt.Fprintln(w, top.String()+renderer.IconCorner)
		fmt.Fprintln(w, row.String()+renderer.IconWallV)
	}
	fmt.Fprintln(w, strings.Repeat(renderer.IconCorner+renderer.IconWallH, grid.Width())+renderer.IconCorner)
}

// WriteMapDump writes a full debug dump of a frame: metadata, stage counters,
// legend, floor map, walled map, rooms, dead ends and face usage.
// Format is human- and LLM-readable (sections, key: value, consistent structure).
func WriteMapDump(out io.Writer, f *renderer.Frame) error {
	if f == nil || f.Grid == nil {
		return fmt.Errorf("no grid")
	}
	w := bufio.NewWriter(out)
	grid := f.Grid

	// --- Metadata ---
	fmt.Fprintln(w, "=== MAP DUMP DEBUG (battlescape terrain) ===")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "--- Metadata ---")
	fmt.Fprintf(w, "mission: %s\n", f.Mission)
	fmt.Fprintf(w, "seed: %d\n", f.Seed)
	fmt.Fprintf(w, "width: %d\n", grid.Width())
	fmt.Fprintf(w, "length: %d\n", grid.Length())
	fmt.Fprintf(w, "levels: %d\n", grid.Levels())
	fmt.Fprintf(w, "coordinate_system: x,z (0-based, x=east, z=south)\n")
	fmt.Fprintln(w, "")

	// --- Counters ---
	fmt.Fprintln(w, "--- Stage counters ---")
	fmt.Fprintf(w, "start_macro_cell: %d\n", f.Report.Start)
	fmt.Fprintf(w, "walls_carved: %d\n", f.Report.Carved)
	fmt.Fprintf(w, "dead_ends_blocked: %d\n", f.Report.Blocked)
	fmt.Fprintf(w, "loops_opened: %d\n", f.Report.Loops)
	fmt.Fprintf(w, "room_attempts: %d\n", f.Report.RoomAttempts)
	fmt.Fprintf(w, "rooms_placed: %d\n", f.Report.RoomsPlaced)
	fmt.Fprintf(w, "rooms_rejected: %d\n", f.Report.RoomsRejected)
	counts := generator.CountFloors(grid)
	for _, k := range world.FloorKinds() {
		fmt.Fprintf(w, "floor_%s: %d\n", k, counts[k])
	}
	fmt.Fprintln(w, "")

	// --- Legend ---
	fmt.Fprintln(w, "--- Legend (cell symbols) ---")
	parts := make([]string, 0, len(world.FloorKinds())+1)
	for _, k := range world.FloorKinds() {
		parts = append(parts, fmt.Sprintf("%s = %s", renderer.FloorIcon(k), k))
	}
	parts = append(parts, "R = inside a placed room rectangle")
	fmt.Fprintln(w, strings.Join(parts, "  "))
	fmt.Fprintln(w, "")

	roomCells := mapset.New[int]()
	for _, room := range f.Rooms {
		room.Rect.Each(func(x, z int) {
			if idx, ok := grid.Index(x, groundLevel, z); ok {
				roomCells.Put(idx)
			}
		})
	}

	fmt.Fprintln(w, "--- Map (floors) ---")
	writeFloorGrid(w, grid, roomCells)
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "--- Map (walls) ---")
	writeWallGrid(w, grid)
	fmt.Fprintln(w, "")

	// --- Rooms ---
	fmt.Fprintln(w, "--- Rooms ---")
	fmt.Fprintf(w, "room_cells: %d\n", roomCells.Size())
	for i, room := range f.Rooms {
		fmt.Fprintf(w, "  room: %d rect: %s visited_macro_cells: %d\n", i, room.Rect, room.Visited)
	}
	fmt.Fprintln(w, "")

	// --- Dead ends ---
	ends := generator.DeadEnds(grid)
	fmt.Fprintln(w, "--- Dead ends (macro-cell ids) ---")
	fmt.Fprintf(w, "count: %d\n", len(ends))
	if len(ends) > 0 {
		ids := make([]string, len(ends))
		for i, m := range ends {
			ids[i] = fmt.Sprint(m)
		}
		fmt.Fprintf(w, "ids: %s\n", strings.Join(ids, ","))
	}
	fmt.Fprintln(w, "")

	// --- Faces ---
	fmt.Fprintln(w, "--- Face identifiers in use ---")
	faces := map[world.FaceID]int{}
	grid.ForEachCell(groundLevel, func(x, z int, c world.Cell) {
		faces[grid.FloorFace(x, groundLevel, z)]++
		for _, side := range []world.Side{world.SideNorth, world.SideWest} {
			if c.Wall(side).Blocks() {
				faces[grid.WallFace(x, groundLevel, z, side)]++
			}
		}
	})
	ids := make([]int, 0, len(faces))
	for id := range faces {
		ids = append(ids, int(id))
	}
	sort.Ints(ids)
	for _, id := range ids {
		fmt.Fprintf(w, "  face: %d uses: %d\n", id, faces[world.FaceID(id)])
	}

	return w.Flush()
}

// DumpMapToFile writes WriteMapDump output to path (DefaultDumpFilename when
// empty) and returns the absolute path written.
func DumpMapToFile(path string, f *renderer.Frame) (string, error) {
	if path == "" {
		path = DefaultDumpFilename
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}

	out, err := os.Create(absPath)
	if err != nil {
		return "", err
	}
	defer out.Close()

	if err := WriteMapDump(out, f); err != nil {
		return "", err
	}
	return absPath, out.Close()
}
