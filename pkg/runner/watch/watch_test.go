package watch

import (
	"bytes"
	"context"
	"io"
	"sync"
	"testing"
	"time"

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

type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestWatchReportsExternalChanges(t *testing.T) {
	dir := t.TempDir()
	cfg := testConfig{path: dir}
	watched, err := store.Open(context.Background(), cfg, store.WithWarnings(io.Discard))
	require.NoError(t, err)
	writer, err := store.Open(context.Background(), cfg, store.WithWarnings(io.Discard))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var out syncBuffer
	done := make(chan error, 1)
	go func() {
		w := Watch{BasePath: dir, Store: watched, Out: &out}
		done <- w.Do(ctx)
	}()

	time.Sleep(100 * time.Millisecond)
	writer.Add("from elsewhere")

	require.Eventually(t, func() bool {
		return bytes.Contains([]byte(out.String()), []byte("1 items, 1 unchecked"))
	}, 3*time.Second, 20*time.Millisecond)
	assert.Contains(t, out.String(), "0 items, 0 unchecked")

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("watch did not stop")
	}
}
