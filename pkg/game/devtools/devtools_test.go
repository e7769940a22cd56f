package devtools

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"battlescape/pkg/engine/world"
	"battlescape/pkg/game/generator"
	"battlescape/pkg/game/renderer"
)

func generatedFrame(t *testing.T, seed int64) *renderer.Frame {
	t.Helper()
	b, err := generator.NewBuilder(generator.DefaultConfig(), generator.NewSource(seed))
	if err != nil {
		t.Fatalf("NewBuilder: %v", err)
	}
	grid, err := b.Run()
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	return &renderer.Frame{Grid: grid, Mission: "crash", Seed: seed, Report: b.Report(), Rooms: b.Rooms()}
}

func TestWriteMapDump_DevFrame(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteMapDump(&buf, DevFrame()); err != nil {
		t.Fatalf("WriteMapDump: %v", err)
	}
	out := buf.String()
	for _, want := range []string{
		"--- Metadata ---",
		"width: 12",
		"length: 8",
		"floor_blocked: 8",
		"floor_room: 16",
		"--- Map (floors) ---\nAA..........\n",
		"....RRRR..##",
		"room: 0 rect:",
		"--- Face identifiers in use ---",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("dump missing %q", want)
		}
	}
}

func TestWriteMapDump_ListsEveryRoom(t *testing.T) {
	f := generatedFrame(t, 6)
	var buf bytes.Buffer
	if err := WriteMapDump(&buf, f); err != nil {
		t.Fatalf("WriteMapDump: %v", err)
	}
	if got := strings.Count(buf.String(), "  room: "); got != len(f.Rooms) {
		t.Errorf("dump lists %d rooms, frame has %d", got, len(f.Rooms))
	}
}

func TestWriteMapDump_NoGrid(t *testing.T) {
	if err := WriteMapDump(&bytes.Buffer{}, &renderer.Frame{}); err == nil {
		t.Error("WriteMapDump without a grid = nil error")
	}
}

func TestDumpMapToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dump.txt")
	got, err := DumpMapToFile(path, DevFrame())
	if err != nil {
		t.Fatalf("DumpMapToFile: %v", err)
	}
	if got != path {
		t.Errorf("DumpMapToFile wrote %s, want %s", got, path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(string(data), "=== MAP DUMP DEBUG") {
		t.Errorf("file starts with %q", string(data[:min(len(data), 40)]))
	}
}

func TestRenderHTML(t *testing.T) {
	f := DevFrame()
	f.Mission = "<Terror & Site>"
	page, err := RenderHTML(f)
	if err != nil {
		t.Fatalf("RenderHTML: %v", err)
	}
	for _, want := range []string{"&lt;Terror &amp; Site&gt;", `class="zone-a"`, `class="blocked"`, `class="room"`} {
		if !strings.Contains(page, want) {
			t.Errorf("page missing %q", want)
		}
	}
	// wall line and floor line per row, plus the bottom edge
	if got := strings.Count(page, `<div class="map-row">`); got != 2*8+1 {
		t.Errorf("page has %d map rows, want %d", got, 2*8+1)
	}
}

func TestSaveScreenshotHTML(t *testing.T) {
	dir := t.TempDir()
	path, err := SaveScreenshotHTML(dir, DevFrame())
	if err != nil {
		t.Fatalf("SaveScreenshotHTML: %v", err)
	}
	if filepath.Dir(path) != dir || !strings.HasSuffix(path, ".html") {
		t.Errorf("screenshot path = %s", path)
	}
}

func TestDevFrame_Layout(t *testing.T) {
	f := DevFrame()
	counts := generator.CountFloors(f.Grid)
	for _, k := range world.FloorKinds() {
		if counts[k] == 0 {
			t.Errorf("dev map has no %s floor", k)
		}
	}
	kinds := map[world.WallKind]bool{}
	f.Grid.ForEachCell(groundLevel, func(x, z int, c world.Cell) {
		kinds[c.North] = true
		kinds[c.West] = true
	})
	for _, k := range world.WallKinds() {
		if !kinds[k] {
			t.Errorf("dev map has no %s wall", k)
		}
	}
	reached, err := generator.Reachable(f.Grid, 0, 0)
	if err != nil {
		t.Fatalf("Reachable: %v", err)
	}
	zoneB, err := generator.MacroID(f.Grid, 10, 6)
	if err != nil {
		t.Fatal(err)
	}
	if !reached.Has(zoneB) {
		t.Error("zone B not reachable from zone A on the dev map")
	}
}
