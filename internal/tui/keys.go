// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
)

// maxPresetKeys bounds the number of presets reachable from the keyboard.
const maxPresetKeys = 9

// keyMap holds every binding the UI reacts to.
type keyMap struct {
	Quit      key.Binding
	QuitAny   key.Binding
	Submit    key.Binding
	Blur      key.Binding
	Focus     key.Binding
	Next      key.Binding
	Prev      key.Binding
	Reload    key.Binding
	ScrollUp  key.Binding
	ScrollDn  key.Binding
	PageUp    key.Binding
	PageDn    key.Binding
	Help      key.Binding
	PresetFn  []key.Binding
	PresetNum []key.Binding

	// presetHint stands in for the preset bindings in the help line.
	presetHint key.Binding
}

func newKeyMap(presets []string) keyMap {
	k := keyMap{
		Quit:     key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
		QuitAny:  key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
		Submit:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "search")),
		Blur:     key.NewBinding(key.WithKeys("tab", "esc"), key.WithHelp("tab", "results")),
		Focus:    key.NewBinding(key.WithKeys("/", "tab", "i"), key.WithHelp("/", "edit search")),
		Next:     key.NewBinding(key.WithKeys("n", "right"), key.WithHelp("n/→", "next page")),
		Prev:     key.NewBinding(key.WithKeys("p", "left"), key.WithHelp("p/←", "previous page")),
		Reload:   key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reload")),
		ScrollUp: key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "scroll up")),
		ScrollDn: key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "scroll down")),
		PageUp:   key.NewBinding(key.WithKeys("pgup", "b"), key.WithHelp("pgup", "scroll page up")),
		PageDn:   key.NewBinding(key.WithKeys("pgdown", " "), key.WithHelp("pgdn", "scroll page down")),
		Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more keys")),
	}

	n := min(len(presets), maxPresetKeys)
	for i := 0; i < n; i++ {
		fn := fmt.Sprintf("f%d", i+1)
		num := fmt.Sprintf("%d", i+1)
		k.PresetFn = append(k.PresetFn, key.NewBinding(key.WithKeys(fn), key.WithHelp(fn, presets[i])))
		k.PresetNum = append(k.PresetNum, key.NewBinding(key.WithKeys(num), key.WithHelp(num, presets[i])))
	}
	if n > 0 {
		k.presetHint = key.NewBinding(key.WithKeys("f1"), key.WithHelp(fmt.Sprintf("f1-f%d", n), "presets"))
	}
	return k
}

// bindingHelp adapts a fixed set of bindings to help.KeyMap.
type bindingHelp struct {
	short []key.Binding
	full  [][]key.Binding
}

func (b bindingHelp) ShortHelp() []key.Binding  { return b.short }
func (b bindingHelp) FullHelp() [][]key.Binding { return b.full }

// helpFor returns the bindings relevant to the focused area.
func (k keyMap) helpFor(f focusArea) help.KeyMap {
	if f == focusInput {
		return bindingHelp{
			short: []key.Binding{k.Submit, k.presetHint, k.Blur, k.Quit},
			full: [][]key.Binding{
				{k.Submit, k.Blur, k.Quit},
				k.PresetFn,
			},
		}
	}
	return bindingHelp{
		short: []key.Binding{k.Prev, k.Next, k.Focus, k.presetHint, k.Help, k.QuitAny},
		full: [][]key.Binding{
			{k.Prev, k.Next, k.Reload, k.Focus},
			{k.ScrollUp, k.ScrollDn, k.PageUp, k.PageDn},
			k.PresetNum,
			{k.Help, k.QuitAny},
		},
	}
}
