package style

import (
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
	"github.com/pterm/pterm"
)

// Mode selects between styled and plain output
type Mode int

const (
	// ModeText renders plain text without escape sequences
	ModeText Mode = iota
	// ModeTerminal renders colors and emphasis
	ModeTerminal
)

func (m Mode) String() string {
	if m == ModeTerminal {
		return "term"
	}
	return "text"
}

// DetectMode resolves the color setting (auto, always, never) against the
// given output. In auto mode, NO_COLOR, a non-terminal output or an
// ASCII-only color profile yield plain text.
func DetectMode(output *os.File, color string) Mode {
	switch strings.ToLower(color) {
	case "always":
		return ModeTerminal
	case "never":
		return ModeText
	}

	if os.Getenv("NO_COLOR") != "" {
		return ModeText
	}

	if output == nil || (!isatty.IsTerminal(output.Fd()) && !isatty.IsCygwinTerminal(output.Fd())) {
		return ModeText
	}

	if termenv.ColorProfile() == termenv.Ascii {
		return ModeText
	}

	return ModeTerminal
}

// Apply makes the lipgloss and pterm globals follow mode
func Apply(mode Mode) {
	if mode == ModeText {
		lipgloss.SetColorProfile(termenv.Ascii)
		pterm.DisableStyling()
		return
	}
	if lipgloss.ColorProfile() == termenv.Ascii {
		lipgloss.SetColorProfile(termenv.ANSI256)
	}
	pterm.EnableStyling()
}
