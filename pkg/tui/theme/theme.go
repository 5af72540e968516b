package theme

import (
	"github.com/charmbracelet/lipgloss/v2"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Theme centralizes Lip Gloss styles for the form UI.
type Theme struct {
	Tabs   TabTheme
	Table  TableTheme
	Editor EditorTheme
	Footer FooterTheme
	Error  lipgloss.Style
}

// TabTheme styles the section tab strip.
type TabTheme struct {
	Active   lipgloss.Style
	Inactive lipgloss.Style
}

// TableTheme styles the section row table.
type TableTheme struct {
	Header   lipgloss.Style
	Row      lipgloss.Style
	Selected lipgloss.Style
	Empty    lipgloss.Style
}

// EditorTheme styles the row edit overlay.
type EditorTheme struct {
	Frame lipgloss.Style
	Title lipgloss.Style
	Label lipgloss.Style
	Focus lipgloss.Style
}

// FooterTheme styles the bottom status bar.
type FooterTheme struct {
	Help   lipgloss.Style
	Status lipgloss.Style
	Dirty  lipgloss.Style
}

const accentHex = "#7d56f4"

// Default returns the built-in theme. Secondary shades are derived
// from the accent so a single hue drives the whole surface.
func Default() Theme {
	accent := lipgloss.Color(accentHex)
	dim := lipgloss.Color(shade(accentHex, 0.55))
	faint := lipgloss.Color("244")

	return Theme{
		Tabs: TabTheme{
			Active: lipgloss.NewStyle().
				Foreground(accent).
				Bold(true).
				Underline(true).
				Padding(0, 1),
			Inactive: lipgloss.NewStyle().
				Foreground(faint).
				Padding(0, 1),
		},
		Table: TableTheme{
			Header:   lipgloss.NewStyle().Bold(true).Foreground(dim),
			Row:      lipgloss.NewStyle(),
			Selected: lipgloss.NewStyle().Foreground(accent).Bold(true),
			Empty:    lipgloss.NewStyle().Faint(true).Italic(true),
		},
		Editor: EditorTheme{
			Frame: lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(accent).
				Padding(1, 2),
			Title: lipgloss.NewStyle().Bold(true),
			Label: lipgloss.NewStyle().Foreground(faint),
			Focus: lipgloss.NewStyle().Foreground(accent),
		},
		Footer: FooterTheme{
			Help:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
			Status: lipgloss.NewStyle().Foreground(faint),
			Dirty:  lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true),
		},
		Error: lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
	}
}

// shade darkens a hex color toward black in LAB space, which keeps the
// hue stable across terminal palettes.
func shade(hex string, factor float64) string {
	c, err := colorful.Hex(hex)
	if err != nil {
		return hex
	}
	black := colorful.Color{}
	return c.BlendLab(black, 1-factor).Hex()
}
