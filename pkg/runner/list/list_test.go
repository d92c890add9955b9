package list

import (
	"bytes"
	"context"
	"io"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tableflip.dev/todo/pkg/store"
)

type testConfig struct{ path string }

func (t testConfig) BasePath() string { return t.path }
func (t testConfig) Driver() string   { return store.DriverDiskv }
func (t testConfig) Key() string      { return store.DefaultKey }
func (t testConfig) SeedPath() string { return "" }

func openStore(t *testing.T) *store.Store {
	t.Helper()
	s, err := store.Open(context.Background(), testConfig{path: t.TempDir()}, store.WithWarnings(io.Discard))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestListJSON(t *testing.T) {
	s := openStore(t)
	s.Add("a")
	s.Add("b")
	s.SetChecked(1, true)

	var out bytes.Buffer
	l := List{JSON: true, Store: s, Out: &out}
	require.NoError(t, l.Do(context.Background()))
	assert.JSONEq(t, `{
  "items": [{"id":1,"text":"a","checked":true},{"id":2,"text":"b","checked":false}],
  "total": 2,
  "unchecked": 1
}`, out.String())
}

func TestListPretty(t *testing.T) {
	color.NoColor = true
	s := openStore(t)
	s.Add("Buy milk")

	var out bytes.Buffer
	l := List{Title: "todo", Store: s, Out: &out}
	require.NoError(t, l.Do(context.Background()))
	assert.Contains(t, out.String(), "todo")
	assert.Contains(t, out.String(), "Buy milk")
	assert.Contains(t, out.String(), "1 item, 1 unchecked")
}
