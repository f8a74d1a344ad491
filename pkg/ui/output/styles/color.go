package styles

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
	"github.com/pterm/pterm"
)

// ConfigureColor picks the color profile for output written to w. Color is
// off when disabled is set, NO_COLOR is set, or w is not a terminal.
func ConfigureColor(w io.Writer, disabled bool) {
	if disabled || os.Getenv("NO_COLOR") != "" || !IsTerminal(w) {
		lipgloss.SetColorProfile(termenv.Ascii)
		pterm.DisableStyling()
		return
	}
	lipgloss.SetColorProfile(termenv.NewOutput(w).EnvColorProfile())
	pterm.EnableStyling()
}

// IsTerminal reports whether w is a file descriptor attached to a terminal
func IsTerminal(w io.Writer) bool {
	f, ok := w.(interface{ Fd() uintptr })
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
