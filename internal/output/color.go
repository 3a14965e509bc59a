package output

import (
	"os"

	"golang.org/x/term"
)

// IsNoColor reports whether NO_COLOR is set to a non-empty value.
func IsNoColor() bool {
	return os.Getenv("NO_COLOR") != ""
}

// UseColor reports whether f is a terminal and color is not disabled.
func UseColor(f *os.File) bool {
	if IsNoColor() || f == nil {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
