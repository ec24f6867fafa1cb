// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package watch

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testDebounce = 20 * time.Millisecond

// harness drives loop with synthetic events.
type harness struct {
	w      *Watcher
	events chan fsnotify.Event
	errs   chan error
	builds atomic.Int32
	done   chan struct{}
	cancel context.CancelFunc
}

func newHarness(t *testing.T, buildErr error) *harness {
	t.Helper()
	h := &harness{
		events: make(chan fsnotify.Event),
		errs:   make(chan error),
		done:   make(chan struct{}),
	}
	w, err := New(filepath.Join(t.TempDir(), "resume.json"), func(context.Context) error {
		h.builds.Add(1)
		return buildErr
	}, WithDebounce(testDebounce))
	require.NoError(t, err)
	h.w = w

	ctx, cancel := context.WithCancel(context.Background())
	h.cancel = cancel
	go func() {
		defer close(h.done)
		w.loop(ctx, h.events, h.errs)
	}()
	t.Cleanup(h.stop)
	return h
}

func (h *harness) stop() {
	h.cancel()
	<-h.done
}

func (h *harness) send(name string, op fsnotify.Op) {
	h.events <- fsnotify.Event{Name: filepath.Join(filepath.Dir(h.w.path), name), Op: op}
}

func TestLoopDebouncesBursts(t *testing.T) {
	h := newHarness(t, nil)

	for i := 0; i < 5; i++ {
		h.send("resume.json", fsnotify.Write)
	}

	assert.Eventually(t, func() bool { return h.builds.Load() == 1 }, time.Second, 5*time.Millisecond)
	time.Sleep(3 * testDebounce)
	assert.Equal(t, int32(1), h.builds.Load())
}

func TestLoopIgnoresOtherFilesAndRemoval(t *testing.T) {
	h := newHarness(t, nil)

	h.send("notes.txt", fsnotify.Write)
	h.send("resume.json", fsnotify.Remove)
	h.send("resume.json", fsnotify.Chmod)
	time.Sleep(5 * testDebounce)

	assert.Equal(t, int32(0), h.builds.Load())
}

func TestLoopTriggersOnCreateAndRename(t *testing.T) {
	h := newHarness(t, nil)

	h.send("resume.json", fsnotify.Create)
	assert.Eventually(t, func() bool { return h.builds.Load() == 1 }, time.Second, 5*time.Millisecond)

	h.send("resume.json", fsnotify.Rename)
	assert.Eventually(t, func() bool { return h.builds.Load() == 2 }, time.Second, 5*time.Millisecond)
}

func TestLoopSurvivesBuildErrors(t *testing.T) {
	h := newHarness(t, errors.New("record incomplete"))

	h.send("resume.json", fsnotify.Write)
	assert.Eventually(t, func() bool { return h.builds.Load() == 1 }, time.Second, 5*time.Millisecond)

	h.errs <- errors.New("queue overflow")

	h.send("resume.json", fsnotify.Write)
	assert.Eventually(t, func() bool { return h.builds.Load() == 2 }, time.Second, 5*time.Millisecond)
}

func TestLoopStopsOnCancel(t *testing.T) {
	h := newHarness(t, nil)
	h.cancel()

	select {
	case <-h.done:
	case <-time.After(time.Second):
		t.Fatal("loop did not return after cancel")
	}
}

func TestRunRebuildsOnFileWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "resume.json")
	require.NoError(t, os.WriteFile(path, []byte(`{}`), 0o644))

	var builds atomic.Int32
	w, err := New(path, func(context.Context) error {
		builds.Add(1)
		return nil
	}, WithDebounce(testDebounce))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	runErr := make(chan error, 1)
	go func() { runErr <- w.Run(ctx) }()

	// Keep writing until the watch is established and a build lands.
	assert.Eventually(t, func() bool {
		_ = os.WriteFile(path, []byte(`{"name": "Jane"}`), 0o644)
		return builds.Load() > 0
	}, 5*time.Second, 50*time.Millisecond)

	cancel()
	select {
	case err := <-runErr:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func TestRunMissingDirectory(t *testing.T) {
	w, err := New(filepath.Join(t.TempDir(), "nope", "resume.json"), func(context.Context) error { return nil })
	require.NoError(t, err)

	err = w.Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "watching")
}
