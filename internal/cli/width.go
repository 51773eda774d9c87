package cli

import (
	"os"

	"golang.org/x/term"
)

// fallbackWidth is used when stdout is not a terminal.
const fallbackWidth = 78

// terminalWidth returns the width of the terminal attached to stdout, or
// fallbackWidth when stdout is redirected.
func terminalWidth() int {
	w, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || w <= 0 {
		return fallbackWidth
	}
	return w
}
