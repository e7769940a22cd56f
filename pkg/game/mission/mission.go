// Package mission maps the mission types a battlescape can be generated for
// onto terrain generator settings. Larger missions get larger grids; terror
// sites are denser, alien bases keep more corridors.
package mission

import (
	"fmt"
	"strings"

	"github.com/leonelquinteros/gotext"

	"battlescape/pkg/game/generator"
)

// Type is the kind of mission the terrain is generated for.
type Type int

const (
	CrashSite  Type = iota // Downed craft in open ground
	LandedShip             // Intact craft, larger field
	TerrorSite             // Dense urban layout
	AlienBase              // Underground complex, long corridors
)

// typeCount is the number of mission types (for cycling).
const typeCount = 4

// Types returns every mission type in declaration order.
func Types() []Type {
	out := make([]Type, typeCount)
	for i := range out {
		out[i] = Type(i)
	}
	return out
}

// Valid reports whether t is a known mission type.
func (t Type) Valid() bool {
	return t >= 0 && t < typeCount
}

// Next returns the mission type after t, wrapping around.
func (t Type) Next() Type {
	if !t.Valid() {
		return CrashSite
	}
	return (t + 1) % typeCount
}

// Key returns the short name used on the command line.
func (t Type) Key() string {
	switch t {
	case CrashSite:
		return "crash"
	case LandedShip:
		return "landed"
	case TerrorSite:
		return "terror"
	case AlienBase:
		return "base"
	default:
		return "unknown"
	}
}

func (t Type) String() string {
	return t.Key()
}

// ParseType resolves a command-line mission name. Matching ignores case.
func ParseType(s string) (Type, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	for _, t := range Types() {
		if t.Key() == key {
			return t, nil
		}
	}
	return CrashSite, fmt.Errorf("unknown mission type %q (want one of %s)", s, strings.Join(keys(), ", "))
}

func keys() []string {
	out := make([]string, 0, typeCount)
	for _, t := range Types() {
		out = append(out, t.Key())
	}
	return out
}

// Name returns the translated mission name. Uses gotext.Get with constant keys
// so the catalog can be extracted.
func Name(t Type) string {
	switch t {
	case CrashSite:
		return gotext.Get("MISSION_CRASH_SITE")
	case LandedShip:
		return gotext.Get("MISSION_LANDED_SHIP")
	case TerrorSite:
		return gotext.Get("MISSION_TERROR_SITE")
	case AlienBase:
		return gotext.Get("MISSION_ALIEN_BASE")
	default:
		return gotext.Get("MISSION_UNKNOWN")
	}
}

// ConfigFor returns the terrain settings for a mission type. Unknown types get
// generator.DefaultConfig.
func ConfigFor(t Type) generator.Config {
	cfg := generator.DefaultConfig()
	switch t {
	case CrashSite:
		cfg.Width, cfg.Length = 40, 40
		cfg.SparsenessRepeat = 80
		cfg.DeploymentWidth, cfg.DeploymentLength = 4, 4
	case LandedShip:
		cfg.Width, cfg.Length = 56, 56
		cfg.MaxRoomSize = 10
		cfg.DeploymentWidth, cfg.DeploymentLength = 6, 8
	case TerrorSite:
		cfg.Linearization = 40
		cfg.SparsenessRepeat = 20
		cfg.DeadendToLoopPercentage = 80
		cfg.RoomDensity = 192
	case AlienBase:
		cfg.Width, cfg.Length = 64, 64
		cfg.Linearization = 80
		cfg.DeadendToLoopPercentage = 25
		cfg.RoomDensity = 384
	}
	return cfg
}
