package sequencer

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReorderPlaylistByName(t *testing.T) {
	tests := []struct {
		name     string
		presets  []string
		order    []string
		expected []string
		notified int
	}{
		{
			name:     "full permutation",
			presets:  []string{"A", "B", "C"},
			order:    []string{"C", "A", "B"},
			expected: []string{"C", "A", "B"},
			notified: 1,
		},
		{
			name:     "omitted presets keep relative order at the end",
			presets:  []string{"A", "B", "C", "D"},
			order:    []string{"D", "B"},
			expected: []string{"D", "B", "A", "C"},
			notified: 1,
		},
		{
			name:     "empty order keeps playlist",
			presets:  []string{"A", "B", "C"},
			order:    nil,
			expected: []string{"A", "B", "C"},
			notified: 0,
		},
		{
			name:     "same order is not announced",
			presets:  []string{"A", "B", "C"},
			order:    []string{"A", "B"},
			expected: []string{"A", "B", "C"},
			notified: 0,
		},
		{
			name:     "empty playlist with empty order",
			presets:  nil,
			order:    nil,
			expected: []string{},
			notified: 0,
		},
		{
			name:     "duplicate names place successive duplicates",
			presets:  []string{"X", "A", "X", "B"},
			order:    []string{"B", "X", "X"},
			expected: []string{"B", "X", "X", "A"},
			notified: 1,
		},
		{
			name:     "single duplicate name takes the first instance",
			presets:  []string{"X", "A", "X"},
			order:    []string{"A", "X"},
			expected: []string{"A", "X", "X"},
			notified: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, _, notifier := newTestSequencer(t, tt.presets...)

			require.NoError(t, s.ReorderPlaylistByName(tt.order))
			assert.Equal(t, tt.expected, names(s))
			assert.Equal(t, len(tt.presets), s.Len())
			assert.Equal(t, tt.notified, notifier.calls)
		})
	}
}

func TestReorderPlaylistByName_EmptyKeepsIndices(t *testing.T) {
	s, _, notifier := newTestSequencer(t)

	require.NoError(t, s.ReorderPlaylistByName(nil))
	assert.Equal(t, -1, s.ActiveIndex())
	assert.Equal(t, -1, s.NextIndex())
	assert.Equal(t, 0, notifier.calls)
}

func TestReorderPlaylistByName_KeepsInstances(t *testing.T) {
	s, _, _ := newTestSequencer(t, "X", "A", "X")
	before := s.Get()

	require.NoError(t, s.ReorderPlaylistByName([]string{"A", "X", "X"}))
	after := s.Get()

	assert.Same(t, before[1], after[0])
	assert.Same(t, before[0], after[1])
	assert.Same(t, before[2], after[2])
}

func TestReorderPlaylistByName_FollowsActiveAndNext(t *testing.T) {
	s, _, _ := newTestSequencer(t, "A", "B", "C", "D")
	require.NoError(t, s.SetActiveIndex(1)) // active B, next C

	require.NoError(t, s.ReorderPlaylistByName([]string{"C", "D", "A", "B"}))
	assert.Equal(t, 3, s.ActiveIndex())
	assert.Equal(t, 0, s.NextIndex())
	assert.Equal(t, "B", activeName(t, s))
	assert.Equal(t, "C", nextName(t, s))
}

func TestReorderPlaylistByName_FollowsCustomNext(t *testing.T) {
	s, _, _ := newTestSequencer(t, "A", "B", "C", "D")
	s.nextIndex = 3 // active A, next D

	require.NoError(t, s.ReorderPlaylistByName([]string{"D", "C"}))
	assert.Equal(t, []string{"D", "C", "A", "B"}, names(s))
	assert.Equal(t, "A", activeName(t, s))
	assert.Equal(t, "D", nextName(t, s))
}

func TestReorderPlaylistByName_Errors(t *testing.T) {
	tests := []struct {
		name    string
		presets []string
		order   []string
	}{
		{name: "unknown name", presets: []string{"A", "B"}, order: []string{"B", "Z"}},
		{name: "name listed more often than present", presets: []string{"A", "B"}, order: []string{"A", "A"}},
		{name: "names on empty playlist", presets: nil, order: []string{"A"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, _, notifier := newTestSequencer(t, tt.presets...)
			active, next := s.ActiveIndex(), s.NextIndex()

			err := s.ReorderPlaylistByName(tt.order)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrUnknownPresetName))

			assert.Equal(t, tt.presets, nilIfEmpty(names(s)), "playlist unchanged")
			assert.Equal(t, active, s.ActiveIndex())
			assert.Equal(t, next, s.NextIndex())
			assert.Equal(t, 0, notifier.calls)
		})
	}
}

func TestReorderPlaylistByName_ThenSave(t *testing.T) {
	s, store, _ := newTestSequencer(t, "A", "B", "C")
	require.NoError(t, s.ReorderPlaylistByName([]string{"C", "B", "A"}))
	require.NoError(t, s.Save())

	assert.Equal(t, []string{"C", "B", "A"}, store.docs[testHost.Path()].Names())
}

func nilIfEmpty(s []string) []string {
	if len(s) == 0 {
		return nil
	}
	return s
}
