// internal/tui/theme.go
// Package tui renders the benchmark dashboard: the run grid, the comparison
// charts, and the per-file heatmap, as a Bubble Tea program.
package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/mwiater/scorecard/internal/appconfig"
	"github.com/mwiater/scorecard/internal/charts"
)

// Theme bundles the style set for one color scheme. Every view draws through
// it so a toggle re-skins the whole dashboard at once.
type Theme struct {
	Name string

	Title    lipgloss.Style
	Banner   lipgloss.Style
	Header   lipgloss.Style
	Help     lipgloss.Style
	Error    lipgloss.Style
	Selected lipgloss.Style
	Muted    lipgloss.Style
	Bar      lipgloss.Style
	Accent   lipgloss.Style

	// HeatBands maps charts.Band to a cell style; five fixed tiers, each
	// with its own dark/light pair across the two themes.
	HeatBands [5]lipgloss.Style
}

// DarkTheme is the default scheme.
func DarkTheme() Theme {
	return Theme{
		Name:     appconfig.ThemeDark,
		Title:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("230")).Background(lipgloss.Color("62")).Padding(0, 1),
		Banner:   lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		Header:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212")),
		Help:     lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Error:    lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Padding(1),
		Selected: lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		Muted:    lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Bar:      lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
		Accent:   lipgloss.NewStyle().Foreground(lipgloss.Color("205")),
		HeatBands: [5]lipgloss.Style{
			lipgloss.NewStyle().Background(lipgloss.Color("22")).Foreground(lipgloss.Color("255")),
			lipgloss.NewStyle().Background(lipgloss.Color("28")).Foreground(lipgloss.Color("255")),
			lipgloss.NewStyle().Background(lipgloss.Color("100")).Foreground(lipgloss.Color("255")),
			lipgloss.NewStyle().Background(lipgloss.Color("130")).Foreground(lipgloss.Color("255")),
			lipgloss.NewStyle().Background(lipgloss.Color("52")).Foreground(lipgloss.Color("255")),
		},
	}
}

// LightTheme mirrors DarkTheme with the light halves of each color pair.
func LightTheme() Theme {
	return Theme{
		Name:     appconfig.ThemeLight,
		Title:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("235")).Background(lipgloss.Color("153")).Padding(0, 1),
		Banner:   lipgloss.NewStyle().Foreground(lipgloss.Color("243")),
		Header:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("90")),
		Help:     lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Error:    lipgloss.NewStyle().Foreground(lipgloss.Color("124")).Padding(1),
		Selected: lipgloss.NewStyle().Foreground(lipgloss.Color("28")),
		Muted:    lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
		Bar:      lipgloss.NewStyle().Foreground(lipgloss.Color("26")),
		Accent:   lipgloss.NewStyle().Foreground(lipgloss.Color("162")),
		HeatBands: [5]lipgloss.Style{
			lipgloss.NewStyle().Background(lipgloss.Color("120")).Foreground(lipgloss.Color("235")),
			lipgloss.NewStyle().Background(lipgloss.Color("157")).Foreground(lipgloss.Color("235")),
			lipgloss.NewStyle().Background(lipgloss.Color("229")).Foreground(lipgloss.Color("235")),
			lipgloss.NewStyle().Background(lipgloss.Color("215")).Foreground(lipgloss.Color("235")),
			lipgloss.NewStyle().Background(lipgloss.Color("217")).Foreground(lipgloss.Color("235")),
		},
	}
}

// ThemeForName resolves a configured theme name.
func ThemeForName(name string) Theme {
	if name == appconfig.ThemeLight {
		return LightTheme()
	}
	return DarkTheme()
}

// Toggle flips between the two schemes.
func (t Theme) Toggle() Theme {
	if t.Name == appconfig.ThemeDark {
		return LightTheme()
	}
	return DarkTheme()
}

// HeatCell renders a heatmap cell in the band style for its score.
func (t Theme) HeatCell(score float64, text string) string {
	return t.HeatBands[charts.HeatBand(score)].Render(text)
}
