// Package terminal reports what the attached terminal can show.
package terminal

import (
	"os"

	"golang.org/x/term"
)

const (
	DefaultWidth  = 80
	DefaultHeight = 24
)

// Size returns the width and height of the terminal behind f.
// Falls back to defaults when f is not a terminal.
func Size(f *os.File) (width, height int) {
	width, height, err := term.GetSize(int(f.Fd()))
	if err != nil || width <= 0 || height <= 0 {
		return DefaultWidth, DefaultHeight
	}
	return width, height
}

// GetSize returns the current terminal width and height of stdout.
func GetSize() (width, height int) {
	return Size(os.Stdout)
}

// GetWidth returns the current terminal width.
func GetWidth() int {
	width, _ := GetSize()
	return width
}

// IsTerminal reports whether f is attached to a terminal. Output piped to a
// file should not carry colour codes.
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
