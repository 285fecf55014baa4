package terminal

import (
	"fmt"
	"os"

	"golang.org/x/term"
)

const (
	DefaultWidth  = 80
	DefaultHeight = 24
)

// GetSize returns the current terminal width and height.
// Falls back to defaults if the size cannot be determined.
func GetSize() (width, height int) {
	width, height, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return DefaultWidth, DefaultHeight
	}
	return width, height
}

// IsTerminal reports whether stdin is attached to a terminal
func IsTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// CheckFits returns an error when a board of cols x rows characters plus the
// given number of extra lines does not fit into a width x height terminal.
func CheckFits(width, height, cols, rows, extraLines int) error {
	if cols > width || rows+extraLines > height {
		return fmt.Errorf("terminal is %dx%d, need at least %dx%d", width, height, cols, rows+extraLines)
	}
	return nil
}
