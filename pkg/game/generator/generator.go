package generator

import (
	"battlescape/pkg/engine/world"
)

// TerrainGenerator is an interface for battlescape generation algorithms
type TerrainGenerator interface {
	Generate(cfg Config, rng Source) (*world.Grid, error)
	Name() string
}

// MazeGenerator builds terrain with the spanning-tree maze pipeline.
type MazeGenerator struct {
	Options []Option
}

// Name returns the name of this generator
func (g *MazeGenerator) Name() string {
	return "Sparse Maze"
}

// Generate validates cfg, builds a fresh grid and runs every stage on it.
func (g *MazeGenerator) Generate(cfg Config, rng Source) (*world.Grid, error) {
	b, err := NewBuilder(cfg, rng, g.Options...)
	if err != nil {
		return nil, err
	}
	return b.Run()
}

// Available generators
var (
	Maze = &MazeGenerator{}
)

// DefaultGenerator is the default terrain generator
var DefaultGenerator TerrainGenerator = Maze
