// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package tui

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/image-search/internal/search"
	"github.com/pdiddy/image-search/pkg/types"
)

// --- fake searcher ---

type fakeSearcher struct {
	mu    sync.Mutex
	calls []string
	pages map[string]types.PhotoPage
	err   error
}

func (f *fakeSearcher) SearchPhotos(_ context.Context, query string, page, _ int) (types.PhotoPage, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	k := fmt.Sprintf("%s/%d", query, page)
	f.calls = append(f.calls, k)
	if f.err != nil {
		return types.PhotoPage{}, f.err
	}
	if p, ok := f.pages[k]; ok {
		return p, nil
	}
	return types.PhotoPage{Results: []types.Photo{{ID: k, ThumbnailURL: "https://img/" + k}}, TotalPages: 3}, nil
}

func newTestModel(t *testing.T, fs *fakeSearcher, opts ...search.Option) (*Model, *search.Controller) {
	t.Helper()
	ctrl := search.NewController(fs, opts...)
	m := New(context.Background(), ctrl)
	m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return m, ctrl
}

func keyRunes(s string) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)} }

var (
	keyEnter = tea.KeyMsg{Type: tea.KeyEnter}
	keyTab   = tea.KeyMsg{Type: tea.KeyTab}
	keyF1    = tea.KeyMsg{Type: tea.KeyF1}
	keyF4    = tea.KeyMsg{Type: tea.KeyF4}
	keyFn    = []tea.KeyMsg{keyF1, {Type: tea.KeyF2}, {Type: tea.KeyF3}, keyF4}
	keyRight = tea.KeyMsg{Type: tea.KeyRight}
	keyLeft  = tea.KeyMsg{Type: tea.KeyLeft}
	keyCtrlC = tea.KeyMsg{Type: tea.KeyCtrlC}
)

// fetches runs cmd and returns every fetch result it produces, without
// feeding them back into the model.
func fetches(t *testing.T, cmd tea.Cmd) []fetchResultMsg {
	t.Helper()
	if cmd == nil {
		return nil
	}
	switch msg := cmd().(type) {
	case fetchResultMsg:
		return []fetchResultMsg{msg}
	case tea.BatchMsg:
		var out []fetchResultMsg
		for _, c := range msg {
			out = append(out, fetches(t, c)...)
		}
		return out
	}
	return nil
}

// settle runs cmd and delivers its fetch results to the model.
func settle(t *testing.T, m *Model, cmd tea.Cmd) {
	t.Helper()
	for _, r := range fetches(t, cmd) {
		m.Update(r)
	}
}

func press(m *Model, msg tea.KeyMsg) tea.Cmd {
	_, cmd := m.Update(msg)
	return cmd
}

// --- typing and submitting ---

func TestTypingUpdatesQueryWithoutFetching(t *testing.T) {
	fs := &fakeSearcher{}
	m, ctrl := newTestModel(t, fs)

	press(m, keyRunes("lin"))
	press(m, keyRunes("ux"))

	assert.Equal(t, "linux", ctrl.Query())
	assert.Empty(t, fs.calls)
	assert.Equal(t, focusInput, m.focus)
}

func TestEnterSubmitsSearch(t *testing.T) {
	fs := &fakeSearcher{pages: map[string]types.PhotoPage{
		"linux/1": {Results: []types.Photo{{ID: "a1", ThumbnailURL: "u1", Description: "desc"}}, TotalPages: 5},
	}}
	m, ctrl := newTestModel(t, fs)

	press(m, keyRunes("linux"))
	cmd := press(m, keyEnter)
	require.NotNil(t, cmd)
	assert.Equal(t, focusResults, m.focus)
	assert.Equal(t, 1, ctrl.State().InFlight)
	assert.Contains(t, m.View(), "loading")

	settle(t, m, cmd)

	s := ctrl.State()
	assert.Equal(t, []types.Photo{{ID: "a1", ThumbnailURL: "u1", Description: "desc"}}, s.Results)
	assert.Equal(t, 5, s.TotalPages)

	view := m.View()
	assert.Contains(t, view, "desc")
	assert.Contains(t, view, "Page 1 of 5")
	assert.Contains(t, view, "Next ▶")
	assert.NotContains(t, view, "◀ Previous")
	assert.NotContains(t, view, "loading")
	assert.True(t, m.keys.Next.Enabled())
	assert.False(t, m.keys.Prev.Enabled())
}

func TestEnterWithEmptyFieldDoesNothing(t *testing.T) {
	fs := &fakeSearcher{}
	m, ctrl := newTestModel(t, fs)

	cmd := press(m, keyEnter)
	assert.Nil(t, cmd)
	assert.Equal(t, focusInput, m.focus)
	assert.Equal(t, 0, ctrl.State().InFlight)
	assert.Empty(t, fs.calls)
}

// --- presets ---

func TestPresetKeyMatchesTypingAndEnter(t *testing.T) {
	for i, preset := range search.DefaultPresets {
		t.Run(preset, func(t *testing.T) {
			viaKey, ctrlKey := newTestModel(t, &fakeSearcher{})
			press(viaKey, keyRunes("other"))
			settle(t, viaKey, press(viaKey, keyFn[i]))

			viaTyping, ctrlTyping := newTestModel(t, &fakeSearcher{})
			press(viaTyping, keyRunes(preset))
			settle(t, viaTyping, press(viaTyping, keyEnter))

			assert.Equal(t, ctrlTyping.State(), ctrlKey.State())
			assert.Equal(t, preset, viaKey.input.Value())
		})
	}
}

func TestPresetDigitsOnlyInResults(t *testing.T) {
	fs := &fakeSearcher{}
	m, ctrl := newTestModel(t, fs)

	// In the field a digit is just text.
	press(m, keyRunes("2"))
	assert.Equal(t, "2", ctrl.Query())
	assert.Empty(t, fs.calls)

	press(m, keyTab)
	require.Equal(t, focusResults, m.focus)
	settle(t, m, press(m, keyRunes("2")))

	assert.Equal(t, "python", ctrl.Query())
	assert.Equal(t, []string{"python/1"}, fs.calls)
}

func TestF4SelectsLinux(t *testing.T) {
	fs := &fakeSearcher{}
	m, ctrl := newTestModel(t, fs)

	settle(t, m, press(m, keyF4))
	assert.Equal(t, "linux", ctrl.Query())
	assert.Equal(t, "linux", m.input.Value())
	assert.Equal(t, []string{"linux/1"}, fs.calls)
}

func TestPresetsRendered(t *testing.T) {
	m, _ := newTestModel(t, &fakeSearcher{})
	view := m.View()
	for _, label := range []string{"Anonymous", "Python", "Code", "Linux", "[F1]", "[F4]"} {
		assert.Contains(t, view, label)
	}
}

// --- paging ---

func TestPagingFollowsControls(t *testing.T) {
	fs := &fakeSearcher{}
	m, ctrl := newTestModel(t, fs)
	settle(t, m, press(m, keyF1))
	require.Equal(t, 3, ctrl.State().TotalPages)

	// Previous is disabled on page 1.
	assert.Nil(t, press(m, keyLeft))
	assert.Equal(t, 1, ctrl.State().Page)

	settle(t, m, press(m, keyRight))
	assert.Equal(t, 2, ctrl.State().Page)
	assert.Contains(t, m.View(), "◀ Previous")
	assert.Contains(t, m.View(), "Next ▶")

	settle(t, m, press(m, keyRunes("n")))
	assert.Equal(t, 3, ctrl.State().Page)
	assert.False(t, m.keys.Next.Enabled())
	assert.NotContains(t, m.View(), "Next ▶")

	// Next is disabled on the last page.
	assert.Nil(t, press(m, keyRunes("n")))
	assert.Equal(t, 3, ctrl.State().Page)

	settle(t, m, press(m, keyRunes("p")))
	assert.Equal(t, 2, ctrl.State().Page)
	assert.Equal(t, []string{"anonymous/1", "anonymous/2", "anonymous/3", "anonymous/2"}, fs.calls)
}

func TestOverlappingPagesLastResolvedWins(t *testing.T) {
	fs := &fakeSearcher{pages: map[string]types.PhotoPage{
		"code/1": {Results: []types.Photo{{ID: "p1"}}, TotalPages: 5},
		"code/2": {Results: []types.Photo{{ID: "p2"}}, TotalPages: 5},
		"code/3": {Results: []types.Photo{{ID: "p3"}}, TotalPages: 5},
	}}
	m, ctrl := newTestModel(t, fs)
	press(m, keyRunes("code"))
	settle(t, m, press(m, keyEnter))

	toPage2 := fetches(t, press(m, keyRight))
	toPage3 := fetches(t, press(m, keyRight))
	require.Len(t, toPage2, 1)
	require.Len(t, toPage3, 1)
	assert.Equal(t, 2, ctrl.State().InFlight)

	m.Update(toPage3[0])
	m.Update(toPage2[0])

	s := ctrl.State()
	assert.Equal(t, 3, s.Page)
	assert.Equal(t, []types.Photo{{ID: "p2"}}, s.Results)
	assert.Equal(t, 0, s.InFlight)
}

func TestOverlappingPagesWithStaleDiscard(t *testing.T) {
	fs := &fakeSearcher{}
	m, ctrl := newTestModel(t, fs, search.WithStaleDiscard(true))
	press(m, keyRunes("code"))
	settle(t, m, press(m, keyEnter))

	toPage2 := fetches(t, press(m, keyRight))
	toPage3 := fetches(t, press(m, keyRight))

	m.Update(toPage3[0])
	m.Update(toPage2[0])

	assert.Equal(t, "code/3", ctrl.State().Results[0].ID)
}

// --- failures ---

func TestFailureShowsMessageAndKeepsResults(t *testing.T) {
	fs := &fakeSearcher{}
	m, ctrl := newTestModel(t, fs)
	settle(t, m, press(m, keyF1))
	before := ctrl.State().Results

	fs.err = errors.New("connection refused")
	settle(t, m, press(m, keyRight))

	s := ctrl.State()
	assert.Equal(t, search.FailureMessage, s.ErrorMessage)
	assert.Equal(t, before, s.Results)
	assert.Contains(t, m.View(), search.FailureMessage)
	assert.Contains(t, m.View(), "anonymous/1")

	// The user can keep going after a failure.
	fs.err = nil
	settle(t, m, press(m, keyRunes("r")))
	assert.Empty(t, ctrl.State().ErrorMessage)
	assert.NotContains(t, m.View(), search.FailureMessage)
}

// --- focus, quit, layout ---

func TestFocusSwitching(t *testing.T) {
	m, _ := newTestModel(t, &fakeSearcher{})
	require.Equal(t, focusInput, m.focus)

	press(m, keyTab)
	assert.Equal(t, focusResults, m.focus)
	assert.False(t, m.input.Focused())

	press(m, keyRunes("/"))
	assert.Equal(t, focusInput, m.focus)
	assert.True(t, m.input.Focused())
}

func TestQuitKeys(t *testing.T) {
	m, _ := newTestModel(t, &fakeSearcher{})

	// "q" is text while typing.
	press(m, keyRunes("q"))
	assert.Equal(t, "q", m.input.Value())

	cmd := press(m, keyCtrlC)
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())

	press(m, keyTab)
	cmd = press(m, keyRunes("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
}

func TestInitSubmitsInitialQuery(t *testing.T) {
	fs := &fakeSearcher{}
	ctrl := search.NewController(fs)
	ctrl.SetQuery("python")
	m := New(context.Background(), ctrl)

	assert.Equal(t, "python", m.input.Value())
	settle(t, m, m.Init())
	assert.Equal(t, []string{"python/1"}, fs.calls)
	assert.Equal(t, focusResults, m.focus)
}

func TestColumns(t *testing.T) {
	tests := []struct {
		width int
		want  int
	}{
		{0, 1},
		{20, 1},
		{cardWidth + 2, 1},
		{2*cardWidth + 2, 2},
		{200, 5},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, columns(tt.width), "width %d", tt.width)
	}
}

func TestGridFitsWindow(t *testing.T) {
	fs := &fakeSearcher{pages: map[string]types.PhotoPage{}}
	var results []types.Photo
	for i := 0; i < search.PageSize; i++ {
		results = append(results, types.Photo{ID: fmt.Sprintf("id-%d", i), ThumbnailURL: "u"})
	}
	fs.pages["linux/1"] = types.PhotoPage{Results: results, TotalPages: 2}

	m, _ := newTestModel(t, fs)
	m.Update(tea.WindowSizeMsg{Width: 120, Height: 30})
	settle(t, m, press(m, keyF4))

	assert.LessOrEqual(t, lineCount(m.View()), 30)
	assert.Greater(t, m.grid.TotalLineCount(), m.grid.Height)

	press(m, tea.KeyMsg{Type: tea.KeyPgDown})
	assert.Greater(t, m.grid.YOffset, 0)
}

func TestClipAndLabel(t *testing.T) {
	assert.Equal(t, "short", clip("short", 10))
	assert.Equal(t, "abcdefghi…", clip("abcdefghijklmnop", 10))
	assert.Equal(t, "Linux", presetLabel("linux"))
	assert.Equal(t, "", presetLabel(""))
}
