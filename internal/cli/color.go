package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/arthur-debert/chatstyle/pkg/config"
	"github.com/arthur-debert/chatstyle/pkg/errors"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
	"github.com/pterm/pterm"
)

const (
	colorAuto   = "auto"
	colorAlways = "always"
	colorNever  = "never"
)

// isTerminal reports whether w is a terminal
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// setupColor validates --color and applies it to the CLI's own styling
func (g *globalOptions) setupColor(out io.Writer) error {
	switch g.color {
	case colorAuto:
		if !isTerminal(out) {
			lipgloss.SetColorProfile(termenv.Ascii)
			pterm.DisableColor()
		}
	case colorAlways:
		lipgloss.SetColorProfile(termenv.ANSI256)
		pterm.EnableColor()
	case colorNever:
		lipgloss.SetColorProfile(termenv.Ascii)
		pterm.DisableColor()
	default:
		return errors.Newf(errors.ErrInvalidInput, MsgErrBadColor, g.color).WithDetail("color", g.color)
	}
	return nil
}

// profile is the colour profile templates are compiled for. auto keeps the
// configured profile only when out is a terminal.
func (g *globalOptions) profile(cfg *config.Config, out io.Writer) (termenv.Profile, error) {
	configured, err := cfg.Profile()
	if err != nil {
		return termenv.Ascii, err
	}
	switch g.color {
	case colorAlways:
		return configured, nil
	case colorNever:
		return termenv.Ascii, nil
	case colorAuto, "":
		if isTerminal(out) {
			return configured, nil
		}
		return termenv.Ascii, nil
	}
	return termenv.Ascii, fmt.Errorf(MsgErrBadColor, g.color)
}

// serveProfile leaves the configured profile alone unless colour is off
func (g *globalOptions) serveProfile() *termenv.Profile {
	if g.color != colorNever {
		return nil
	}
	p := termenv.Ascii
	return &p
}
