package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cockroachdb/errors"
	zlog "github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/tobywaite/firemix/internal/app/notification"
	"github.com/tobywaite/firemix/internal/app/sequencer"
)

// run advances the playlist every interval until SIGINT or SIGTERM, then saves.
func run(seq *sequencer.Sequencer, notifier *notification.Manager, interval time.Duration, direction int, start string) error {
	if seq.Len() == 0 {
		return errors.Wrapf(sequencer.ErrEmptyPlaylist, "%s", seq.Path())
	}

	id := notifier.Subscribe(func(e notification.Event) {
		active, _ := seq.ActivePreset()
		next, _ := seq.NextPreset()
		zlog.Info().Msgf("playlist changed: seq=%d active=%d:%s next=%d:%s",
			e.SequenceNo, seq.ActiveIndex(), active.Name(), seq.NextIndex(), next.Name())
	})
	defer notifier.Unsubscribe(id)

	if start != "" {
		found, err := seq.SetActivePresetByName(start)
		if err != nil {
			return err
		}
		if !found {
			zlog.Warn().Msgf("start preset not found: name=%s", start)
		}
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	zlog.Info().Msgf("Starting rotation: interval=%s direction=%d presets=%d", interval, direction, seq.Len())
	if err := rotate(context.Background(), seq, interval, direction, sigCh); err != nil {
		return err
	}

	zlog.Info().Msgf("Rotation stopped: changes=%d", notifier.SequenceNo())
	return seq.Save()
}

// rotate runs the signal watcher and the rotation ticker as one group.
// It returns nil once a signal arrives or ctx ends, and the first Advance
// error otherwise.
func rotate(ctx context.Context, seq *sequencer.Sequencer, interval time.Duration, direction int, sigCh <-chan os.Signal) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	g, ctx := errgroup.WithContext(ctx)

	// Signal watcher
	g.Go(func() error {
		select {
		case sig := <-sigCh:
			zlog.Info().Msgf("Received %s, stopping rotation...", sig)
			cancel()
		case <-ctx.Done():
		}
		return nil
	})

	// Rotation ticker
	g.Go(func() error {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return nil
			case <-ticker.C:
				if err := seq.Advance(direction); err != nil {
					return errors.Wrap(err, "failed to advance playlist")
				}
			}
		}
	})

	return g.Wait()
}
