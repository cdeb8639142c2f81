package sequencer

import (
	"github.com/cockroachdb/errors"
	zlog "github.com/rs/zerolog/log"

	"github.com/tobywaite/firemix/internal/domain/preset"
)

// ReorderPlaylistByName rebuilds the playlist so the presets named in names
// come first, in that order.
//
// Each name takes the first preset with that display name that has not been
// placed yet, so a name listed twice places two presets sharing that name.
// Presets not named keep their relative order after the named ones. A name
// with no unplaced preset left fails with ErrUnknownPresetName and leaves the
// playlist unchanged.
//
// The active and next indices follow their presets to the new positions.
// No change is announced when the order stays the same.
func (s *Sequencer) ReorderPlaylistByName(names []string) error {
	s.mu.Lock()

	n := len(s.items)
	placed := make([]bool, n)
	order := make([]int, 0, n)

	for _, name := range names {
		found := -1
		for i, p := range s.items {
			if !placed[i] && p.Name() == name {
				found = i
				break
			}
		}
		if found < 0 {
			s.mu.Unlock()
			return errors.Wrapf(ErrUnknownPresetName, "%q", name)
		}
		placed[found] = true
		order = append(order, found)
	}
	for i := range s.items {
		if !placed[i] {
			order = append(order, i)
		}
	}
	if isIdentity(order) {
		s.mu.Unlock()
		return nil
	}

	items := make([]preset.Preset, n)
	newPos := make([]int, n)
	for pos, old := range order {
		items[pos] = s.items[old]
		newPos[old] = pos
	}
	s.items = items
	if n > 0 {
		s.activeIndex = newPos[s.activeIndex]
		s.nextIndex = newPos[s.nextIndex]
	}
	active, next := s.activeIndex, s.nextIndex
	s.mu.Unlock()

	zlog.Debug().Msgf("reordered playlist: names=%d active=%d next=%d", len(names), active, next)
	s.notify()
	return nil
}

// isIdentity reports whether order leaves every position in place.
func isIdentity(order []int) bool {
	for pos, old := range order {
		if pos != old {
			return false
		}
	}
	return true
}
