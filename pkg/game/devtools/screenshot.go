package devtools

import (
	"fmt"
	"html"
	"os"
	"path/filepath"
	"strings"
	"time"

	"battlescape/pkg/engine/world"
	"battlescape/pkg/game/renderer"
)

// floorClass maps each floor kind to its CSS class
var floorClass = map[world.FloorKind]string{
	world.FloorOpen:        "floor",
	world.FloorRoom:        "room",
	world.FloorBlocked:     "blocked",
	world.FloorDeploymentA: "zone-a",
	world.FloorDeploymentB: "zone-b",
}

// RenderHTML renders a frame as a standalone HTML page with the same glyph
// layout as the terminal map.
func RenderHTML(f *renderer.Frame) (string, error) {
	if f == nil || f.Grid == nil {
		return "", fmt.Errorf("no grid")
	}
	grid := f.Grid

	var page strings.Builder

	page.WriteString(`<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>Battlescape - Screenshot</title>
    <style>
        body {
            background-color: #1a1a2e;
            color: #eee;
            font-family: 'Courier New', monospace;
            padding: 20px;
        }
        .header {
            color: #bb86fc;
            font-size: 18px;
            margin-bottom: 10px;
        }
        .seed {
            color: #888;
            margin-bottom: 20px;
        }
        .map-container {
            background-color: #0f0f1a;
            padding: 20px;
            border-radius: 8px;
            display: inline-block;
            margin: 20px 0;
        }
        .map-row {
            white-space: pre;
            line-height: 1.2;
            font-size: 12px;
        }
        .wall { color: #666; }
        .floor { color: #888; }
        .room { color: #d4b45a; }
        .blocked { color: #ff4444; }
        .zone-a { color: #00ff66; font-weight: bold; }
        .zone-b { color: #00ccff; font-weight: bold; }
        .counters {
            margin-top: 20px;
            color: #888;
        }
    </style>
</head>
<body>
`)

	page.WriteString(fmt.Sprintf(`    <div class="header">%s</div>`+"\n", html.EscapeString(f.Mission)))
	page.WriteString(fmt.Sprintf(`    <div class="seed">Seed %d, %dx%d</div>`+"\n", f.Seed, grid.Width(), grid.Length()))

	page.WriteString(`    <div class="map-container">` + "\n")
	span := func(class, text string) string {
		return fmt.Sprintf(`<span class="%s">%s</span>`, class, html.EscapeString(text))
	}
	for z := 0; z < grid.Length(); z++ {
		var top, row strings.Builder
		for x := 0; x < grid.Width(); x++ {
			c := grid.Cell(x, groundLevel, z)
			north, _ := renderer.WallIcons(c.North)
			_, west := renderer.WallIcons(c.West)
			icon := renderer.FloorIcon(c.Ground)
			top.WriteString(span("wall", renderer.IconCorner+north))
			row.WriteString(span("wall", west))
			row.WriteString(span(floorClass[c.Ground], icon+icon))
		}
		page.WriteString(`        <div class="map-row">` + top.String() + span("wall", renderer.IconCorner) + "</div>\n")
		page.WriteString(`        <div class="map-row">` + row.String() + span("wall", renderer.IconWallV) + "</div>\n")
	}
	bottom := strings.Repeat(renderer.IconCorner+renderer.IconWallH, grid.Width()) + renderer.IconCorner
	page.WriteString(`        <div class="map-row">` + span("wall", bottom) + "</div>\n")
	page.WriteString(`    </div>` + "\n")

	page.WriteString(fmt.Sprintf(`    <div class="counters">Blocked %d, loops %d, rooms %d/%d</div>`+"\n",
		f.Report.Blocked, f.Report.Loops, f.Report.RoomsPlaced, f.Report.RoomAttempts))

	page.WriteString(`</body>
</html>
`)
	return page.String(), nil
}

// SaveScreenshotHTML writes RenderHTML output to a timestamped file in dir
// and returns its path.
func SaveScreenshotHTML(dir string, f *renderer.Frame) (string, error) {
	page, err := RenderHTML(f)
	if err != nil {
		return "", err
	}
	timestamp := time.Now().Format("20060102-150405")
	filename := filepath.Join(dir, fmt.Sprintf("screenshot-%s.html", timestamp))
	if err := os.WriteFile(filename, []byte(page), 0644); err != nil {
		return "", err
	}
	return filename, nil
}
