package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gookit/color"
	"github.com/leonelquinteros/gotext"

	"battlescape/pkg/engine/terminal"
	"battlescape/pkg/game/devtools"
	"battlescape/pkg/game/generator"
	"battlescape/pkg/game/mission"
	"battlescape/pkg/game/renderer"
	"battlescape/pkg/game/renderer/ebiten"
	"battlescape/pkg/game/renderer/tui"
)

// options holds the parsed command line
type options struct {
	mission    string
	seed       int64
	width      int
	length     int
	dump       string
	html       string
	window     bool
	devMap     bool
	debug      bool
	lang       string
	localesDir string
}

func parseFlags(args []string) (options, error) {
	var o options
	fs := flag.NewFlagSet("battlescape", flag.ContinueOnError)
	fs.StringVar(&o.mission, "mission", mission.CrashSite.Key(), "mission type: crash, landed, terror or base")
	fs.Int64Var(&o.seed, "seed", 0, "random seed (0 picks one from the clock)")
	fs.IntVar(&o.width, "width", 0, "grid width in cells, even (0 uses the mission default)")
	fs.IntVar(&o.length, "length", 0, "grid length in cells, even (0 uses the mission default)")
	fs.StringVar(&o.dump, "dump", "", "write a text dump of the terrain to this file")
	fs.StringVar(&o.html, "html", "", "write an HTML screenshot into this directory")
	fs.BoolVar(&o.window, "window", false, "open the preview window")
	fs.BoolVar(&o.devMap, "devmap", false, "show the hard-coded developer map instead of generating one")
	fs.BoolVar(&o.debug, "debug", false, "write logs to "+logDir+"/"+logFileName)
	fs.StringVar(&o.lang, "lang", "en_GB", "locale for user-facing text")
	fs.StringVar(&o.localesDir, "locales", "locales", "directory holding <lang>/default.po")
	if err := fs.Parse(args); err != nil {
		return o, err
	}
	return o, nil
}

// session is the terrain currently shown. The preview window advances it.
type session struct {
	mission mission.Type
	seed    int64
	width   int
	length  int
}

func newSession(o options) (*session, error) {
	mt, err := mission.ParseType(o.mission)
	if err != nil {
		return nil, err
	}
	seed := o.seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &session{mission: mt, seed: seed, width: o.width, length: o.length}, nil
}

// config returns the mission preset with the size overrides applied
func (s *session) config() generator.Config {
	cfg := mission.ConfigFor(s.mission)
	if s.width > 0 {
		cfg.Width = s.width
	}
	if s.length > 0 {
		cfg.Length = s.length
	}
	return cfg
}

// generate builds the terrain for the current mission and seed
func (s *session) generate() (*renderer.Frame, error) {
	b, err := generator.NewBuilder(s.config(), generator.NewSource(s.seed), generator.WithLogger(log.Default()))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", gotext.Get("GENERATION_FAILED"), err)
	}
	grid, err := b.Run()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", gotext.Get("GENERATION_FAILED"), err)
	}
	log.Printf("generated %s terrain, seed %d: %+v", s.mission, s.seed, b.Report())
	return &renderer.Frame{
		Grid:    grid,
		Mission: mission.Name(s.mission),
		Seed:    s.seed,
		Report:  b.Report(),
		Rooms:   b.Rooms(),
	}, nil
}

// advance moves to the next seed or mission and generates again
func (s *session) advance(nextSeed, nextMission bool) (*renderer.Frame, error) {
	if nextSeed {
		s.seed++
	}
	if nextMission {
		s.mission = s.mission.Next()
	}
	return s.generate()
}

func run(o options) error {
	s, err := newSession(o)
	if err != nil {
		return err
	}

	var frame *renderer.Frame
	if o.devMap {
		frame = devtools.DevFrame()
	} else if frame, err = s.generate(); err != nil {
		return err
	}

	if !terminal.IsTerminal(os.Stdout) {
		color.Enable = false
	}
	renderer.SetRenderer(tui.New())
	renderer.Init()
	renderer.RenderFrame(frame)

	if o.dump != "" {
		path, err := devtools.DumpMapToFile(o.dump, frame)
		if err != nil {
			return fmt.Errorf("dumping map: %w", err)
		}
		renderer.ShowMessage(renderer.FormatText("GT{DUMP_WRITTEN} %s", path))
	}
	if o.html != "" {
		path, err := devtools.SaveScreenshotHTML(o.html, frame)
		if err != nil {
			return fmt.Errorf("saving screenshot: %w", err)
		}
		renderer.ShowMessage(renderer.FormatText("GT{SCREENSHOT_WRITTEN} %s", path))
	}

	if o.window {
		preview := ebiten.New(s.advance)
		preview.RenderFrame(frame)
		return preview.Run()
	}
	return nil
}

func main() {
	o, err := parseFlags(os.Args[1:])
	if err != nil {
		os.Exit(2)
	}

	if logFile := setupLogging(o.debug); logFile != nil {
		defer logFile.Close()
	}
	gotext.Configure(o.localesDir, o.lang, "default")

	if err := run(o); err != nil {
		log.Printf("fatal: %v", err)
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
