package backend

import (
	"errors"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/atomicstack/popup-select/internal/option"
	"github.com/atomicstack/popup-select/internal/source"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func nextEvent(t *testing.T, w *Watcher) Event {
	t.Helper()
	select {
	case evt, ok := <-w.Events():
		require.True(t, ok, "events channel closed")
		return evt
	case <-time.After(2 * time.Second):
		t.Fatalf("timed out waiting for watcher event")
	}
	return Event{}
}

func TestWatcherReportsInitialLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "opts.txt")
	require.NoError(t, os.WriteFile(path, []byte("alpha\nbeta\n"), 0o644))

	w := NewWatcher(path, source.FormatAuto, 20*time.Millisecond)
	defer func() {
		w.Stop()
		w.Wait()
	}()

	assert.Equal(t, KindLoading, nextEvent(t, w).Kind)
	evt := nextEvent(t, w)
	require.Equal(t, KindOptions, evt.Kind)
	require.NoError(t, evt.Err)
	assert.Len(t, evt.Options, 2)
}

func TestWatcherReloadsOnlyWhenFileChanges(t *testing.T) {
	path := filepath.Join(t.TempDir(), "opts.txt")
	require.NoError(t, os.WriteFile(path, []byte("alpha\n"), 0o644))

	var loads atomic.Int32
	w := newWatcher(path, source.FormatLines, 10*time.Millisecond, func(p string, f source.Format) ([]option.Option[string], error) {
		loads.Add(1)
		return source.Load(p, f)
	})
	defer func() {
		w.Stop()
		w.Wait()
	}()

	nextEvent(t, w)
	nextEvent(t, w)
	time.Sleep(60 * time.Millisecond)
	assert.Equal(t, int32(1), loads.Load())

	require.NoError(t, os.WriteFile(path, []byte("alpha\nbeta\ngamma\n"), 0o644))
	assert.Equal(t, KindLoading, nextEvent(t, w).Kind)
	evt := nextEvent(t, w)
	assert.Len(t, evt.Options, 3)
	assert.Equal(t, int32(2), loads.Load())
}

func TestWatcherForwardsLoadErrors(t *testing.T) {
	boom := errors.New("boom")
	w := newWatcher("unused", source.FormatLines, time.Hour, func(string, source.Format) ([]option.Option[string], error) {
		return nil, boom
	})
	defer func() {
		w.Stop()
		w.Wait()
	}()

	nextEvent(t, w)
	evt := nextEvent(t, w)
	assert.ErrorIs(t, evt.Err, boom)
}

func TestWatcherStopClosesChannel(t *testing.T) {
	w := newWatcher("unused", source.FormatLines, time.Hour, func(string, source.Format) ([]option.Option[string], error) {
		return nil, nil
	})
	nextEvent(t, w)
	nextEvent(t, w)
	w.Stop()
	w.Wait()

	select {
	case _, ok := <-w.Events():
		assert.False(t, ok)
	case <-time.After(time.Second):
		t.Fatalf("events channel not closed")
	}
}
