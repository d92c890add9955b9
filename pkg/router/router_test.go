package router

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tableflip.dev/todo/pkg/item"
	"tableflip.dev/todo/pkg/render"
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

type recordingView struct {
	markup  string
	counts  item.Counts
	renders int
}

func (v *recordingView) Replace(markup string, counts item.Counts) {
	v.markup = markup
	v.counts = counts
	v.renders++
}

func newRouter(t *testing.T, p Prompter) (*Router, *store.Store, *recordingView, mapKV) {
	t.Helper()
	kv := mapKV{}
	s := store.New(kv, store.DefaultKey, store.WithWarnings(&bytes.Buffer{}))
	s.Load()
	v := &recordingView{}
	return New(s, render.HTML{}, v, p), s, v, kv
}

func TestRefreshPaintsCurrentList(t *testing.T) {
	r, _, v, _ := newRouter(t, nil)
	r.Refresh()
	assert.Equal(t, 1, v.renders)
	assert.Equal(t, item.Counts{}, v.counts)
	assert.Empty(t, v.markup)
}

func TestScenarioThroughIntents(t *testing.T) {
	r, s, v, kv := newRouter(t, nil)

	require.True(t, r.OnCreate("Buy milk"))
	assert.Equal(t, item.Counts{Total: 1, Unchecked: 1}, v.counts)

	r.OnToggle(1, true)
	assert.Equal(t, item.Counts{Total: 1, Unchecked: 0}, v.counts)
	assert.Contains(t, v.markup, render.CheckedClass)

	require.True(t, r.OnCreate("Walk dog"))
	assert.Equal(t, item.Counts{Total: 2, Unchecked: 1}, v.counts)
	assert.Equal(t, 2, s.Items()[1].ID)

	r.OnDelete(1)
	assert.Equal(t, item.Counts{Total: 1, Unchecked: 1}, v.counts)
	assert.Equal(t, item.List{{ID: 2, Text: "Walk dog"}}, s.Items())
	assert.NotContains(t, v.markup, `data-id="1"`)

	stored, err := item.Unmarshal(kv[store.DefaultKey])
	require.NoError(t, err)
	assert.Equal(t, s.Items(), stored)
}

func TestDispatch(t *testing.T) {
	r, s, v, _ := newRouter(t, nil)
	r.OnCreate("a")
	r.OnCreate("b")
	renders := v.renders

	toggle := Event{Type: Change, Target: Target{Tag: "INPUT", Type: "checkbox", InList: true, ID: "2", Checked: true}}
	assert.True(t, r.Dispatch(toggle))
	assert.True(t, s.Items()[1].Checked)

	del := Event{Type: Click, Target: Target{Tag: "BUTTON", InList: true, RowID: "1"}}
	assert.True(t, r.Dispatch(del))
	assert.Equal(t, item.List{{ID: 2, Text: "b", Checked: true}}, s.Items())
	assert.Equal(t, renders+2, v.renders)
}

func TestDispatchIgnoresUnrelatedEvents(t *testing.T) {
	r, s, v, _ := newRouter(t, nil)
	r.OnCreate("a")
	renders := v.renders

	ignored := []Event{
		{Type: Click, Target: Target{Tag: "button", InList: false, RowID: "1"}},
		{Type: Click, Target: Target{Tag: "span", InList: true, RowID: "1"}},
		{Type: Click, Target: Target{Tag: "button", InList: true, RowID: "one"}},
		{Type: Change, Target: Target{Tag: "input", Type: "text", InList: true, ID: "1"}},
		{Type: Change, Target: Target{Tag: "input", Type: "checkbox", InList: false, ID: "1", Checked: true}},
		{Type: Change, Target: Target{Tag: "input", Type: "checkbox", InList: true, ID: "", Checked: true}},
	}
	for _, e := range ignored {
		assert.False(t, r.Dispatch(e), "%+v", e)
	}
	assert.Equal(t, renders, v.renders)
	assert.Equal(t, item.List{{ID: 1, Text: "a"}}, s.Items())
}

func TestDispatchUnknownIDStillRenders(t *testing.T) {
	r, s, v, _ := newRouter(t, nil)
	r.OnCreate("a")
	renders := v.renders

	assert.True(t, r.Dispatch(Event{Type: Click, Target: Target{Tag: "button", InList: true, RowID: "42"}}))
	assert.Equal(t, renders+1, v.renders)
	assert.Len(t, s.Items(), 1)
}

func TestCreate(t *testing.T) {
	tests := []struct {
		name  string
		reply string
		err   error
		added bool
	}{
		{name: "text", reply: "  Buy milk ", added: true},
		{name: "empty", reply: ""},
		{name: "blank", reply: "   "},
		{name: "error", reply: "ignored", err: errors.New("interrupted")},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var label string
			p := PromptFunc(func(_ context.Context, l string) (string, error) {
				label = l
				return tc.reply, tc.err
			})
			r, s, _, _ := newRouter(t, p)

			assert.Equal(t, tc.added, r.Create(context.Background()))
			assert.Equal(t, CreateLabel, label)
			if tc.added {
				assert.Equal(t, item.List{{ID: 1, Text: strings.TrimSpace(tc.reply)}}, s.Items())
			} else {
				assert.Empty(t, s.Items())
			}
		})
	}
}

func TestCreateWithoutPrompter(t *testing.T) {
	r, s, _, _ := newRouter(t, nil)
	assert.False(t, r.Create(context.Background()))
	assert.Empty(t, s.Items())
}
