package world

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfBounds is returned when a coordinate lies outside the grid.
	ErrOutOfBounds = errors.New("coordinate out of bounds")
	// ErrOddMacroCorner is returned when a macro-cell is addressed by an odd corner.
	ErrOddMacroCorner = errors.New("macro-cell corner must have even x and z")
	// ErrOddDimension is returned when width or length is odd.
	ErrOddDimension = errors.New("grid width and length must be even")
	// ErrBadDimension is returned for zero or negative dimensions.
	ErrBadDimension = errors.New("grid dimensions must be positive")
	// ErrInvalidFace is returned when a catalog role has no face or a kind is unknown.
	ErrInvalidFace = errors.New("invalid face")
)

// CoordError reports a rejected coordinate.
type CoordError struct {
	X, Y, Z int
	Err     error
}

func (e *CoordError) Error() string {
	return fmt.Sprintf("(%d,%d,%d): %v", e.X, e.Y, e.Z, e.Err)
}

func (e *CoordError) Unwrap() error {
	return e.Err
}

// DimensionError reports grid dimensions rejected before allocation.
type DimensionError struct {
	Width, Levels, Length int
	Err                   error
}

func (e *DimensionError) Error() string {
	return fmt.Sprintf("grid %dx%dx%d: %v", e.Width, e.Levels, e.Length, e.Err)
}

func (e *DimensionError) Unwrap() error {
	return e.Err
}
