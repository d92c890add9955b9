package teaui

import (
	"io"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/muesli/reflow/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tableflip.dev/todo/pkg/item"
	"tableflip.dev/todo/pkg/store"
)

type mapKV map[string][]byte

func (m mapKV) Read(key string) ([]byte, error) {
	v, ok := m[key]
	if !ok {
		return nil, store.ErrNotFound
	}
	return v, nil
}

func (m mapKV) Write(key string, val []byte) error {
	m[key] = append([]byte(nil), val...)
	return nil
}

func (m mapKV) Close() error { return nil }

func newModel(t *testing.T, texts ...string) (Model, *store.Store, mapKV) {
	t.Helper()
	kv := mapKV{}
	s := store.New(kv, store.DefaultKey, store.WithWarnings(io.Discard))
	s.Load()
	for _, text := range texts {
		s.Add(text)
	}
	return New(s, nil), s, kv
}

func press(t *testing.T, m Model, keys ...tea.KeyPressMsg) Model {
	t.Helper()
	for _, k := range keys {
		next, _ := m.Update(k)
		var ok bool
		m, ok = next.(Model)
		require.True(t, ok, "unexpected model type %T", next)
	}
	return m
}

func key(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func TestViewShowsRowsAndCounters(t *testing.T) {
	m, _, _ := newModel(t, "Buy milk", "Walk dog")
	view := stripANSI(m.View())

	assert.Contains(t, view, "→ [ ] Buy milk")
	assert.Contains(t, view, "  [ ] Walk dog")
	assert.Contains(t, view, "Item count: 2 · Unchecked count: 2")
}

func TestToggleAndDelete(t *testing.T) {
	m, s, _ := newModel(t, "Buy milk", "Walk dog")

	m = press(t, m, key('j'), key('x'))
	assert.Equal(t, item.List{{ID: 1, Text: "Buy milk"}, {ID: 2, Text: "Walk dog", Checked: true}}, s.Items())
	assert.Contains(t, stripANSI(m.View()), "Unchecked count: 1")

	m = press(t, m, key('x'))
	assert.False(t, s.Items()[1].Checked)

	m = press(t, m, key('k'), key('d'))
	assert.Equal(t, item.List{{ID: 2, Text: "Walk dog"}}, s.Items())
	rows := stripANSI(m.screen.markup)
	assert.NotContains(t, rows, "Buy milk")
	assert.Contains(t, rows, "→ [ ] Walk dog")
	assert.Contains(t, m.status, `deleted "Buy milk"`)
}

func TestCursorStaysInRange(t *testing.T) {
	m, s, _ := newModel(t, "a", "b")
	m = press(t, m, key('j'), key('j'), key('j'), key('d'))
	assert.Equal(t, item.List{{ID: 1, Text: "a"}}, s.Items())

	m = press(t, m, key('d'), key('d'), key('x'))
	assert.Empty(t, s.Items())
	assert.Contains(t, stripANSI(m.View()), "nothing to do")
}

func TestCreateFlow(t *testing.T) {
	m, s, kv := newModel(t, "Buy milk")

	m = press(t, m, key('n'))
	require.Equal(t, modeInsert, m.mode)
	assert.Contains(t, stripANSI(m.View()), "New TODO:")

	m.input.SetValue("  Walk dog ")
	m = press(t, m, tea.KeyPressMsg{Code: tea.KeyEnter})
	assert.Equal(t, modeNormal, m.mode)
	assert.Equal(t, item.List{{ID: 1, Text: "Buy milk"}, {ID: 2, Text: "Walk dog"}}, s.Items())
	assert.Contains(t, stripANSI(m.View()), "→ [ ] Walk dog")

	stored, err := item.Unmarshal(kv[store.DefaultKey])
	require.NoError(t, err)
	assert.Equal(t, s.Items(), stored)
}

func TestCreateBlankOrCancelled(t *testing.T) {
	m, s, _ := newModel(t)

	m = press(t, m, key('n'))
	m.input.SetValue("   ")
	m = press(t, m, tea.KeyPressMsg{Code: tea.KeyEnter})
	assert.Empty(t, s.Items())

	m = press(t, m, key('n'))
	m.input.SetValue("never mind")
	m = press(t, m, tea.KeyPressMsg{Code: tea.KeyEscape})
	assert.Equal(t, modeNormal, m.mode)
	assert.Empty(t, s.Items())
}

func TestStorageChangeReloads(t *testing.T) {
	m, _, kv := newModel(t, "mine")
	kv[store.DefaultKey] = []byte(`[{"id":7,"text":"theirs","checked":true}]`)

	next, _ := m.Update(changedMsg{})
	m = next.(Model)
	view := stripANSI(m.View())
	assert.Contains(t, view, "[x] theirs")
	assert.NotContains(t, view, "mine")
}

func TestQuit(t *testing.T) {
	m, _, _ := newModel(t)
	_, cmd := m.Update(key('q'))
	require.NotNil(t, cmd)
	_, ok := cmd().(tea.QuitMsg)
	assert.True(t, ok)
}

func stripANSI(s string) string {
	var b strings.Builder
	ansiSeq := false
	for _, r := range s {
		if r == ansi.Marker {
			ansiSeq = true
			continue
		}
		if ansiSeq {
			if ansi.IsTerminator(r) {
				ansiSeq = false
			}
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
