package main

import (
	"context"
	"os"
	"sync"
	"syscall"
	"testing"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tobywaite/firemix/internal/app/presets"
	"github.com/tobywaite/firemix/internal/app/registry"
	"github.com/tobywaite/firemix/internal/app/sequencer"
	"github.com/tobywaite/firemix/internal/domain/playlist"
	"github.com/tobywaite/firemix/internal/infra/document"
)

func newRotationSequencer(t *testing.T, notifier sequencer.Notifier, names ...string) *sequencer.Sequencer {
	t.Helper()
	host := sequencer.Host{PlaylistID: "rotation", DataRoot: t.TempDir(), Format: "json"}
	store := document.NewFileStore()

	doc := playlist.New()
	for _, name := range names {
		doc.Playlist = append(doc.Playlist, playlist.Entry{ClassName: presets.SolidColorType, Name: name})
	}
	require.NoError(t, store.Save(host.Path(), doc))

	reg := registry.New()
	presets.RegisterBuiltins(reg)
	seq, err := sequencer.New(host, reg, store, notifier)
	require.NoError(t, err)
	return seq
}

func TestRotate_StopsOnSignal(t *testing.T) {
	sigCh := make(chan os.Signal, 1)

	var mu sync.Mutex
	changes := 0
	seq := newRotationSequencer(t, sequencer.NotifierFunc(func() {
		mu.Lock()
		defer mu.Unlock()
		changes++
		if changes == 2 {
			sigCh <- syscall.SIGINT
		}
	}), "A", "B", "C")

	done := make(chan error, 1)
	go func() {
		done <- rotate(context.Background(), seq, 5*time.Millisecond, 1, sigCh)
	}()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("rotation did not stop after signal")
	}

	mu.Lock()
	defer mu.Unlock()
	assert.GreaterOrEqual(t, changes, 2)
}

func TestRotate_StopsOnContext(t *testing.T) {
	seq := newRotationSequencer(t, nil, "A", "B")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := rotate(ctx, seq, time.Hour, 1, make(chan os.Signal))
	assert.NoError(t, err)
	assert.Equal(t, 0, seq.ActiveIndex())
}

func TestRotate_AdvanceErrorStopsWatcher(t *testing.T) {
	seq := newRotationSequencer(t, nil)

	done := make(chan error, 1)
	go func() {
		done <- rotate(context.Background(), seq, 5*time.Millisecond, 1, make(chan os.Signal))
	}()

	select {
	case err := <-done:
		require.Error(t, err)
		assert.True(t, errors.Is(err, sequencer.ErrEmptyPlaylist))
	case <-time.After(5 * time.Second):
		t.Fatal("rotation did not stop after advance error")
	}
}
