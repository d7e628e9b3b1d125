// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/pdiddy/image-search/internal/search"
	"github.com/pdiddy/image-search/pkg/types"
)

// View renders the UI.
func (m *Model) View() string {
	s := m.ctrl.State()
	return m.styles.Main.Render(lipgloss.JoinVertical(lipgloss.Left,
		m.renderHeader(s),
		m.grid.View(),
		m.renderFooter(s),
	))
}

func (m *Model) renderHeader(s search.State) string {
	lines := []string{m.styles.Title.Render("Image Search")}
	if s.ErrorMessage != "" {
		lines = append(lines, m.styles.Error.Render(s.ErrorMessage))
	}
	lines = append(lines, m.input.View(), m.renderPresets(), "")
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (m *Model) renderPresets() string {
	parts := []string{m.styles.Label.Render("Presets:")}
	for i, p := range m.presets {
		label := m.styles.Preset.Render(presetLabel(p))
		if i < len(m.keys.PresetFn) {
			label = m.styles.PresetKey.Render(fmt.Sprintf("[F%d]", i+1)) + " " + label
		}
		parts = append(parts, label)
	}
	return strings.Join(parts, "  ")
}

func (m *Model) renderFooter(s search.State) string {
	var nav []string
	if s.CanPrev() {
		nav = append(nav, m.styles.Nav.Render("◀ Previous"))
	}
	if s.TotalPages > 0 {
		nav = append(nav, m.styles.PageInfo.Render(fmt.Sprintf("Page %d of %d", s.Page, s.TotalPages)))
	}
	if s.CanNext() {
		nav = append(nav, m.styles.Nav.Render("Next ▶"))
	}
	if s.InFlight > 0 {
		nav = append(nav, " "+m.spin.View()+" loading")
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		"",
		lipgloss.JoinHorizontal(lipgloss.Center, nav...),
		m.help.View(m.keys.helpFor(m.focus)),
	)
}

// renderGrid lays the photo cards out in as many columns as fit in width.
func (m *Model) renderGrid(s search.State, width int) string {
	if len(s.Results) == 0 {
		return m.styles.Empty.Render("No photos yet. Type a search and press enter, or pick a preset.")
	}

	cols := columns(width)
	var rows []string
	for start := 0; start < len(s.Results); start += cols {
		end := min(start+cols, len(s.Results))
		cards := make([]string, 0, end-start)
		for _, p := range s.Results[start:end] {
			cards = append(cards, m.renderCard(p))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (m *Model) renderCard(p types.Photo) string {
	inner := cardWidth - 4
	title := p.Description
	if title == "" {
		title = "untitled"
	}
	return m.styles.Card.Render(lipgloss.JoinVertical(lipgloss.Left,
		m.styles.CardTitle.Render(clip(title, inner)),
		m.styles.CardURL.Render(clip(p.ThumbnailURL, inner)),
		m.styles.CardID.Render(clip(p.ID, inner)),
	))
}

// columns returns how many cards fit side by side in width.
func columns(width int) int {
	return max(1, (width-2)/cardWidth)
}

// presetLabel capitalizes the first letter of a preset for display.
func presetLabel(p string) string {
	r := []rune(p)
	if len(r) == 0 {
		return p
	}
	return strings.ToUpper(string(r[0])) + string(r[1:])
}

func clip(s string, width int) string {
	r := []rune(s)
	if len(r) <= width {
		return s
	}
	return string(r[:width-1]) + "…"
}

func lineCount(s string) int {
	return lipgloss.Height(s)
}
