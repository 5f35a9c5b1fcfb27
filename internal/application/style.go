package application

import (
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Palette for console output.
var (
	colorAccent  = lipgloss.Color("#20B9B4")
	colorWarning = lipgloss.Color("#F4D03F")
	colorError   = lipgloss.Color("#E74C3C")
	colorMuted   = lipgloss.Color("#6C7A89")
)

// styles is bound to the output writer so colour is only emitted when the
// writer is a terminal that supports it.
type styles struct {
	title   lipgloss.Style
	heading lipgloss.Style
	notice  lipgloss.Style
	err     lipgloss.Style
	muted   lipgloss.Style
}

func newStyles(w io.Writer) styles {
	r := lipgloss.NewRenderer(w)
	return styles{
		title:   r.NewStyle().Bold(true).Foreground(colorAccent),
		heading: r.NewStyle().Bold(true),
		notice:  r.NewStyle().Foreground(colorWarning),
		err:     r.NewStyle().Foreground(colorError),
		muted:   r.NewStyle().Foreground(colorMuted),
	}
}
