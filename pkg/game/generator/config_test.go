package generator

import (
	"errors"
	"testing"

	"battlescape/pkg/engine/world"
)

func TestDefaultConfig_IsValid(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("DefaultConfig().Validate() = %v, want nil", err)
	}
	if got := cfg.RoomAttempts(); got != 8 {
		t.Errorf("RoomAttempts() = %d, want 48*48/288 = 8", got)
	}
}

func TestConfigValidate_OddWidthRejectedBeforeAllocation(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width = 47

	err := cfg.Validate()
	if !errors.Is(err, ErrInvalidConfig) || !errors.Is(err, world.ErrOddDimension) {
		t.Fatalf("Validate() = %v, want ErrInvalidConfig and ErrOddDimension", err)
	}
	var cfgErr *ConfigError
	if !errors.As(err, &cfgErr) || cfgErr.Field != "Width" || cfgErr.Value != 47 {
		t.Errorf("error = %#v, want ConfigError on Width=47", err)
	}

	b, err := NewBuilder(cfg, NewSource(1))
	if b != nil || !errors.Is(err, world.ErrOddDimension) {
		t.Errorf("NewBuilder(width 47) = %v, %v; want nil builder and ErrOddDimension", b, err)
	}
	grid, err := DefaultGenerator.Generate(cfg, NewSource(1))
	if grid != nil || err == nil {
		t.Errorf("Generate(width 47) = %v, %v; want nil grid and an error", grid, err)
	}
}

func TestConfigValidate_Rejections(t *testing.T) {
	for _, tc := range []struct {
		name   string
		mutate func(*Config)
		field  string
		want   error
	}{
		{"odd length", func(c *Config) { c.Length = 33 }, "Length", world.ErrOddDimension},
		{"two levels", func(c *Config) { c.Levels = 2 }, "Levels", ErrUnsupportedLevels},
		{"zero levels", func(c *Config) { c.Levels = 0 }, "Levels", ErrUnsupportedLevels},
		{"linearization above 100", func(c *Config) { c.Linearization = 101 }, "Linearization", ErrInvalidConfig},
		{"negative loop chance", func(c *Config) { c.DeadendToLoopPercentage = -1 }, "DeadendToLoopPercentage", ErrInvalidConfig},
		{"negative passes", func(c *Config) { c.SparsenessRepeat = -1 }, "SparsenessRepeat", ErrInvalidConfig},
		{"zero room density", func(c *Config) { c.RoomDensity = 0 }, "RoomDensity", ErrInvalidConfig},
		{"odd room size", func(c *Config) { c.MinRoomSize = 5 }, "MinRoomSize", ErrInvalidConfig},
		{"max below min", func(c *Config) { c.MaxRoomSize = 2 }, "MaxRoomSize", ErrInvalidConfig},
		{"zones too wide", func(c *Config) { c.DeploymentWidth = 25 }, "DeploymentWidth", ErrDeploymentZone},
		{"zones too long", func(c *Config) { c.DeploymentLength = 0 }, "DeploymentLength", ErrDeploymentZone},
		{"grid too small", func(c *Config) { c.Width, c.Length = 2, 2 }, "Width", ErrInvalidConfig},
	} {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if !errors.Is(err, tc.want) {
				t.Fatalf("Validate() = %v, want %v", err, tc.want)
			}
			if !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Validate() = %v does not wrap ErrInvalidConfig", err)
			}
			var cfgErr *ConfigError
			if errors.As(err, &cfgErr) && cfgErr.Field != tc.field {
				t.Errorf("ConfigError.Field = %q, want %q", cfgErr.Field, tc.field)
			}
		})
	}
}

func TestNewBuilder_RequiresSource(t *testing.T) {
	if _, err := NewBuilder(DefaultConfig(), nil); !errors.Is(err, ErrNoSource) {
		t.Errorf("NewBuilder(nil source) = %v, want ErrNoSource", err)
	}
}

func TestConfig_DeploymentZones(t *testing.T) {
	zones := DefaultConfig().DeploymentZones()
	if zones[0] != (world.Rect{X: 0, Z: 0, Width: 6, Length: 6}) {
		t.Errorf("zone A = %v, want 6x6@(0,0)", zones[0])
	}
	if zones[1] != (world.Rect{X: 42, Z: 42, Width: 6, Length: 6}) {
		t.Errorf("zone B = %v, want 6x6@(42,42)", zones[1])
	}
}
