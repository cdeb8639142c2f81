package sequencer

import (
	"github.com/cockroachdb/errors"
	zlog "github.com/rs/zerolog/log"

	"github.com/tobywaite/firemix/internal/domain/preset"
)

// Advance shifts both the active and the next index by direction, wrapping
// around the playlist. A negative direction rotates backwards.
func (s *Sequencer) Advance(direction int) error {
	if direction == 0 {
		return ErrZeroStep
	}

	s.mu.Lock()
	n := len(s.items)
	if n == 0 {
		s.mu.Unlock()
		return ErrEmptyPlaylist
	}
	s.activeIndex = mod(s.activeIndex+direction, n)
	s.nextIndex = mod(s.nextIndex+direction, n)
	active, next := s.activeIndex, s.nextIndex
	s.mu.Unlock()

	zlog.Debug().Msgf("advanced playlist: direction=%d active=%d next=%d", direction, active, next)
	s.notify()
	return nil
}

// SetActiveIndex activates the preset at idx (wrapped into range) and points
// next at the preset after it. The newly active preset is reset before the
// change is announced.
func (s *Sequencer) SetActiveIndex(idx int) error {
	s.mu.Lock()
	n := len(s.items)
	if n == 0 {
		s.mu.Unlock()
		return ErrEmptyPlaylist
	}
	s.activeIndex = mod(idx, n)
	s.nextIndex = (s.activeIndex + 1) % n
	pos := s.activeIndex
	active := s.items[pos]
	s.mu.Unlock()

	zlog.Debug().Msgf("activated preset: index=%d name=%s", pos, active.Name())
	active.Reset()
	s.notify()
	return nil
}

// SetActivePresetByName activates the first preset whose display name is name.
// It reports whether such a preset exists; if not, nothing changes.
func (s *Sequencer) SetActivePresetByName(name string) (bool, error) {
	idx := s.IndexOf(name)
	if idx < 0 {
		return false, nil
	}
	return true, s.SetActiveIndex(idx)
}

// IndexOf returns the position of the first preset named name, or -1.
func (s *Sequencer) IndexOf(name string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i, p := range s.items {
		if p.Name() == name {
			return i
		}
	}
	return -1
}

// Get returns the presets in playlist order. The slice is a copy.
func (s *Sequencer) Get() []preset.Preset {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]preset.Preset, len(s.items))
	copy(out, s.items)
	return out
}

// Len returns the number of presets.
func (s *Sequencer) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

// ActiveIndex returns the active position, or -1 for an empty playlist.
func (s *Sequencer) ActiveIndex() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.activeIndex
}

// NextIndex returns the next position, or -1 for an empty playlist.
func (s *Sequencer) NextIndex() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.nextIndex
}

// ActivePreset returns the active preset.
func (s *Sequencer) ActivePreset() (preset.Preset, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if len(s.items) == 0 {
		return nil, ErrEmptyPlaylist
	}
	return s.items[s.activeIndex], nil
}

// NextPreset returns the preset slated to become active next.
func (s *Sequencer) NextPreset() (preset.Preset, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if len(s.items) == 0 {
		return nil, ErrEmptyPlaylist
	}
	return s.items[s.nextIndex], nil
}

// PresetByIndex returns the preset at idx. Out-of-range indices return
// ErrIndexOutOfRange instead of wrapping around.
func (s *Sequencer) PresetByIndex(idx int) (preset.Preset, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if idx < 0 || idx >= len(s.items) {
		return nil, errors.Wrapf(ErrIndexOutOfRange, "index %d, length %d", idx, len(s.items))
	}
	return s.items[idx], nil
}
