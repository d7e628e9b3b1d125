// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package tui

import "github.com/charmbracelet/lipgloss"

// cardWidth is the outer width of one photo card, borders included.
const cardWidth = 36

// Styles contains the style definitions of the UI.
type Styles struct {
	Title     lipgloss.Style
	Error     lipgloss.Style
	Label     lipgloss.Style
	Preset    lipgloss.Style
	PresetKey lipgloss.Style
	Card      lipgloss.Style
	CardTitle lipgloss.Style
	CardURL   lipgloss.Style
	CardID    lipgloss.Style
	Empty     lipgloss.Style
	Nav       lipgloss.Style
	PageInfo  lipgloss.Style
	Spinner   lipgloss.Style
	Main      lipgloss.Style
}

// NewStyles returns the default styles.
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")).
			MarginBottom(1),
		Error:     lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true), // red
		Label:     lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Preset:    lipgloss.NewStyle().Foreground(lipgloss.Color("214")), // yellow
		PresetKey: lipgloss.NewStyle().Faint(true),
		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("238")).
			Padding(0, 1).
			Width(cardWidth - 2),
		CardTitle: lipgloss.NewStyle().Bold(true),
		CardURL:   lipgloss.NewStyle().Foreground(lipgloss.Color("33")).Underline(true),
		CardID:    lipgloss.NewStyle().Faint(true),
		Empty:     lipgloss.NewStyle().Faint(true).Italic(true),
		Nav:       lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("236")).Padding(0, 1),
		PageInfo:  lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Padding(0, 2),
		Spinner:   lipgloss.NewStyle().Foreground(lipgloss.Color("51")), // cyan
		Main:      lipgloss.NewStyle().Padding(0, 1),
	}
}
