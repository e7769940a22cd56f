package generator

import (
	"errors"
	"fmt"

	"battlescape/pkg/engine/world"
)

// Default tuning
const (
	DefaultWidth                   = 48
	DefaultLength                  = 48
	DefaultLinearization           = 60  // % chance to keep going straight
	DefaultSparsenessRepeat        = 1   // dead-end blocking passes
	DefaultDeadendToLoopPercentage = 50  // % of dead ends that get a loop
	DefaultRoomDensity             = 288 // cells per room attempt
	DefaultMinRoomSize             = 4
	DefaultMaxRoomSize             = 8
	DefaultRoomPlacementRetries    = 8
	DefaultDeploymentWidth         = 6
	DefaultDeploymentLength        = 6
)

var (
	// ErrInvalidConfig is wrapped by every configuration error.
	ErrInvalidConfig = errors.New("invalid terrain config")
	// ErrUnsupportedLevels is returned for anything but a single level.
	ErrUnsupportedLevels = errors.New("only single-level terrain is supported")
	// ErrDeploymentZone is returned when the deployment zones do not fit the grid.
	ErrDeploymentZone = errors.New("deployment zones do not fit the grid")
	// ErrNoSource is returned when no random source is supplied.
	ErrNoSource = errors.New("no random source")
)

// ConfigError reports the field that failed validation.
type ConfigError struct {
	Field  string
	Value  int
	Reason string
	Err    error
}

func (e *ConfigError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s=%d: %s: %v", e.Field, e.Value, e.Reason, e.Err)
	}
	return fmt.Sprintf("%s=%d: %s", e.Field, e.Value, e.Reason)
}

func (e *ConfigError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrInvalidConfig}
	}
	return []error{ErrInvalidConfig, e.Err}
}

// Config holds grid dimensions and generation tuning.
type Config struct {
	Width  int
	Length int
	Levels int

	Linearization           int
	SparsenessRepeat        int
	DeadendToLoopPercentage int

	RoomDensity          int
	MinRoomSize          int
	MaxRoomSize          int
	RoomPlacementRetries int

	DeploymentWidth  int
	DeploymentLength int

	// Catalog maps wall and floor kinds to faces. Nil selects the default catalog.
	Catalog *world.FaceCatalog
}

// DefaultConfig returns the standard 48×48 single-level configuration.
func DefaultConfig() Config {
	return Config{
		Width:                   DefaultWidth,
		Length:                  DefaultLength,
		Levels:                  1,
		Linearization:           DefaultLinearization,
		SparsenessRepeat:        DefaultSparsenessRepeat,
		DeadendToLoopPercentage: DefaultDeadendToLoopPercentage,
		RoomDensity:             DefaultRoomDensity,
		MinRoomSize:             DefaultMinRoomSize,
		MaxRoomSize:             DefaultMaxRoomSize,
		RoomPlacementRetries:    DefaultRoomPlacementRetries,
		DeploymentWidth:         DefaultDeploymentWidth,
		DeploymentLength:        DefaultDeploymentLength,
	}
}

// Validate checks the configuration before anything is allocated.
func (c Config) Validate() error {
	if err := world.ValidateDimensions(c.Width, max(c.Levels, 1), c.Length); err != nil {
		field, value := "Width", c.Width
		if c.Width > 0 && c.Width%2 == 0 {
			field, value = "Length", c.Length
		}
		return &ConfigError{Field: field, Value: value, Reason: "bad grid dimension", Err: err}
	}
	if c.Width < 4 || c.Length < 4 {
		return &ConfigError{Field: "Width", Value: min(c.Width, c.Length), Reason: "grid needs at least 2×2 macro-cells"}
	}
	if c.Levels != 1 {
		return &ConfigError{Field: "Levels", Value: c.Levels, Reason: "multi-level terrain", Err: ErrUnsupportedLevels}
	}
	for _, p := range []struct {
		field string
		value int
	}{
		{"Linearization", c.Linearization},
		{"DeadendToLoopPercentage", c.DeadendToLoopPercentage},
	} {
		if p.value < 0 || p.value > 100 {
			return &ConfigError{Field: p.field, Value: p.value, Reason: "percentage outside 0..100"}
		}
	}
	if c.SparsenessRepeat < 0 {
		return &ConfigError{Field: "SparsenessRepeat", Value: c.SparsenessRepeat, Reason: "negative pass count"}
	}
	if c.RoomDensity <= 0 {
		return &ConfigError{Field: "RoomDensity", Value: c.RoomDensity, Reason: "must be positive"}
	}
	if c.MinRoomSize < 2 || c.MinRoomSize%2 != 0 {
		return &ConfigError{Field: "MinRoomSize", Value: c.MinRoomSize, Reason: "must be even and at least 2"}
	}
	if c.MaxRoomSize < c.MinRoomSize || c.MaxRoomSize%2 != 0 {
		return &ConfigError{Field: "MaxRoomSize", Value: c.MaxRoomSize, Reason: "must be even and not below MinRoomSize"}
	}
	if c.RoomPlacementRetries < 0 {
		return &ConfigError{Field: "RoomPlacementRetries", Value: c.RoomPlacementRetries, Reason: "negative retry count"}
	}
	if c.DeploymentWidth <= 0 || 2*c.DeploymentWidth > c.Width {
		return &ConfigError{Field: "DeploymentWidth", Value: c.DeploymentWidth, Reason: "zone must fit twice across the grid width", Err: ErrDeploymentZone}
	}
	if c.DeploymentLength <= 0 || 2*c.DeploymentLength > c.Length {
		return &ConfigError{Field: "DeploymentLength", Value: c.DeploymentLength, Reason: "zone must fit twice along the grid length", Err: ErrDeploymentZone}
	}
	return nil
}

// RoomAttempts returns how many room placements are tried per level.
func (c Config) RoomAttempts() int {
	if c.RoomDensity <= 0 {
		return 0
	}
	return (c.Length * c.Width) / c.RoomDensity
}

// DeploymentZones returns the north-west and south-east reserved rectangles.
func (c Config) DeploymentZones() [2]world.Rect {
	return [2]world.Rect{
		{X: 0, Z: 0, Width: c.DeploymentWidth, Length: c.DeploymentLength},
		{
			X:      c.Width - c.DeploymentWidth,
			Z:      c.Length - c.DeploymentLength,
			Width:  c.DeploymentWidth,
			Length: c.DeploymentLength,
		},
	}
}
