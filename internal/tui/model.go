// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package tui renders the photo search controller as a Bubble Tea program:
// a search field, preset shortcuts, a responsive photo grid and paging
// controls.
//
// Fetches run as tea.Cmds and come back as messages, so several requests
// can be in flight at once. Their results are applied in arrival order.
package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/pdiddy/image-search/internal/search"
)

// focusArea selects which part of the screen receives key presses.
type focusArea int

const (
	focusInput focusArea = iota
	focusResults
)

// Model is the Bubble Tea model of the search screen.
type Model struct {
	ctx     context.Context
	ctrl    *search.Controller
	presets []string
	keys    keyMap
	styles  *Styles

	input textinput.Model
	grid  viewport.Model
	spin  spinner.Model
	help  help.Model

	focus       focusArea
	width       int
	height      int
	resetScroll bool
}

// New builds the model around ctrl. Fetches are executed with ctx. A
// non-empty ctrl.Query() is submitted when the program starts.
func New(ctx context.Context, ctrl *search.Controller) *Model {
	styles := NewStyles()

	ti := textinput.New()
	ti.Placeholder = "Type something to search ..."
	ti.Prompt = "Search: "
	ti.CharLimit = 200
	ti.Width = 48
	ti.SetValue(ctrl.Query())
	ti.Focus()

	presets := ctrl.Presets()
	m := &Model{
		ctx:     ctx,
		ctrl:    ctrl,
		presets: presets,
		keys:    newKeyMap(presets),
		styles:  styles,
		input:   ti,
		grid:    viewport.New(80, 10),
		spin:    spinner.New(spinner.WithSpinner(spinner.Dot), spinner.WithStyle(styles.Spinner)),
		help:    help.New(),
		focus:   focusInput,
	}
	m.refresh()
	return m
}

// Init starts the cursor blink and submits any initial query.
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{textinput.Blink}
	if q := m.ctrl.Query(); q != "" {
		cmds = append(cmds, m.issue(m.ctrl.SubmitSearch(q)))
		m.setFocus(focusResults)
		m.refresh()
	}
	return tea.Batch(cmds...)
}

// Update handles messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmd := m.update(msg)
	m.refresh()
	return m, cmd
}

func (m *Model) update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.input.Width = max(10, min(60, msg.Width-len(m.input.Prompt)-4))
		return nil

	case fetchResultMsg:
		if m.ctrl.Apply(msg.result) && msg.result.Err == nil {
			m.resetScroll = true
		}
		return nil

	case spinner.TickMsg:
		if m.ctrl.State().InFlight == 0 {
			return nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return cmd

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return cmd
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	if key.Matches(msg, m.keys.Quit) {
		return tea.Quit
	}
	for i, b := range m.keys.PresetFn {
		if key.Matches(msg, b) {
			return m.selectPreset(i)
		}
	}

	if m.focus == focusInput {
		switch {
		case key.Matches(msg, m.keys.Submit):
			cmd := m.issue(m.ctrl.SubmitSearch(m.input.Value()))
			if cmd != nil {
				m.setFocus(focusResults)
			}
			return cmd
		case key.Matches(msg, m.keys.Blur):
			m.setFocus(focusResults)
			return nil
		}
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		m.ctrl.SetQuery(m.input.Value())
		return cmd
	}

	for i, b := range m.keys.PresetNum {
		if key.Matches(msg, b) {
			return m.selectPreset(i)
		}
	}

	switch {
	case key.Matches(msg, m.keys.QuitAny):
		return tea.Quit
	case key.Matches(msg, m.keys.Focus):
		m.setFocus(focusInput)
		return textinput.Blink
	case key.Matches(msg, m.keys.Next):
		return m.issue(m.ctrl.GoToPage(1))
	case key.Matches(msg, m.keys.Prev):
		return m.issue(m.ctrl.GoToPage(-1))
	case key.Matches(msg, m.keys.Reload):
		return m.issue(m.ctrl.Reload())
	case key.Matches(msg, m.keys.ScrollUp):
		m.grid.SetYOffset(m.grid.YOffset - 1)
	case key.Matches(msg, m.keys.ScrollDn):
		m.grid.SetYOffset(m.grid.YOffset + 1)
	case key.Matches(msg, m.keys.PageUp):
		m.grid.SetYOffset(m.grid.YOffset - m.grid.Height)
	case key.Matches(msg, m.keys.PageDn):
		m.grid.SetYOffset(m.grid.YOffset + m.grid.Height)
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}
	return nil
}

// selectPreset puts the i-th preset into the field and submits it.
func (m *Model) selectPreset(i int) tea.Cmd {
	term := m.presets[i]
	m.input.SetValue(term)
	m.input.CursorEnd()
	cmd := m.issue(m.ctrl.SelectPreset(term))
	if cmd != nil {
		m.setFocus(focusResults)
	}
	return cmd
}

// issue turns a controller request into a command that executes it. The
// spinner is started when this is the only request in flight.
func (m *Model) issue(req search.Request, ok bool) tea.Cmd {
	if !ok {
		return nil
	}
	ctx, ctrl := m.ctx, m.ctrl
	fetch := func() tea.Msg {
		return fetchResultMsg{result: ctrl.Execute(ctx, req)}
	}
	if m.ctrl.State().InFlight == 1 {
		return tea.Batch(fetch, m.spin.Tick)
	}
	return fetch
}

func (m *Model) setFocus(f focusArea) {
	m.focus = f
	if f == focusInput {
		m.input.Focus()
	} else {
		m.input.Blur()
	}
}

// refresh brings the key bindings and the grid in line with the controller.
func (m *Model) refresh() {
	s := m.ctrl.State()
	m.keys.Next.SetEnabled(s.CanNext())
	m.keys.Prev.SetEnabled(s.CanPrev())
	m.keys.Reload.SetEnabled(s.Query != "")

	width := m.width
	if width == 0 {
		width = 80
	}
	m.grid.Width = width
	m.grid.SetContent(m.renderGrid(s, width))
	if m.height > 0 {
		m.grid.Height = max(1, m.height-lineCount(m.renderHeader(s))-lineCount(m.renderFooter(s)))
	}
	if m.resetScroll {
		m.grid.GotoTop()
		m.resetScroll = false
	}
}
