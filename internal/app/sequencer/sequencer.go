// Package sequencer provides the preset playlist and its active/next rotation state.
package sequencer

import (
	"path/filepath"
	"sort"
	"sync"

	"github.com/cockroachdb/errors"
	zlog "github.com/rs/zerolog/log"

	"github.com/tobywaite/firemix/internal/domain/playlist"
	"github.com/tobywaite/firemix/internal/domain/preset"
	"github.com/tobywaite/firemix/internal/infra/document"
)

// Errors
var (
	ErrEmptyPlaylist     = errors.New("playlist is empty")
	ErrIndexOutOfRange   = errors.New("preset index out of range")
	ErrZeroStep          = errors.New("advance step must be non-zero")
	ErrUnknownParameter  = errors.New("unknown preset parameter")
	ErrUnknownPresetName = errors.New("unknown preset name")
)

// Registry resolves preset type names to factories.
type Registry interface {
	Lookup(typeName string) (preset.Factory, error)
}

// Store loads and saves playlist documents.
// Load must return an error matching document.ErrNotFound when no document exists.
type Store interface {
	Load(path string) (*playlist.Document, error)
	Save(path string, doc *playlist.Document) error
}

// Notifier receives the "playlist changed" signal.
type Notifier interface {
	Notify()
}

// NotifierFunc adapts a function to Notifier.
type NotifierFunc func()

// Notify calls f.
func (f NotifierFunc) Notify() {
	f()
}

// Host is the context a sequencer is built in.
type Host struct {
	Mixer      preset.Mixer
	PlaylistID string
	DataRoot   string
	Format     string // File extension, e.g. "json" or "yaml"
}

// Path returns <DataRoot>/playlists/<PlaylistID>.<Format>.
func (h Host) Path() string {
	return filepath.Join(h.DataRoot, "playlists", h.PlaylistID+"."+h.Format)
}

// Sequencer owns an ordered list of preset instances and tracks which one is
// active and which is next in rotation.
//
// When the list is empty both indices are -1 and every rotation operation
// returns ErrEmptyPlaylist.
type Sequencer struct {
	mu sync.RWMutex

	items       []preset.Preset
	activeIndex int
	nextIndex   int

	path     string
	store    Store
	notifier Notifier
}

// New loads the playlist document for host and builds every preset in it.
// A missing document yields an empty playlist. Unknown type names, unknown
// parameter keys and malformed documents abort construction.
func New(host Host, registry Registry, store Store, notifier Notifier) (*Sequencer, error) {
	path := host.Path()

	doc, err := store.Load(path)
	if err != nil {
		if !errors.Is(err, document.ErrNotFound) {
			return nil, errors.Wrap(err, "failed to load playlist")
		}
		zlog.Info().Msgf("playlist not found, starting empty: path=%s", path)
		doc = playlist.New()
	}

	items, err := build(host.Mixer, registry, doc.Playlist)
	if err != nil {
		return nil, err
	}

	s := &Sequencer{
		items:    items,
		path:     path,
		store:    store,
		notifier: notifier,
	}
	s.activeIndex, s.nextIndex = initialIndices(len(items))

	zlog.Info().Msgf("loaded playlist: path=%s presets=%d", path, len(items))
	return s, nil
}

// build constructs the preset instances for entries, in order.
func build(m preset.Mixer, registry Registry, entries []playlist.Entry) ([]preset.Preset, error) {
	items := make([]preset.Preset, 0, len(entries))
	for i, entry := range entries {
		factory, err := registry.Lookup(entry.ClassName)
		if err != nil {
			return nil, errors.Wrapf(err, "playlist entry %d (%s)", i, entry.Name)
		}

		inst := factory(m, entry.Name)
		keys := make([]string, 0, len(entry.Params))
		for key := range entry.Params {
			keys = append(keys, key)
		}
		sort.Strings(keys)

		for _, key := range keys {
			param, ok := inst.Parameter(key)
			if !ok {
				return nil, errors.Wrapf(ErrUnknownParameter, "playlist entry %d (%s): %s.%s", i, entry.Name, entry.ClassName, key)
			}
			if err := param.Set(entry.Params[key]); err != nil {
				return nil, errors.Wrapf(err, "playlist entry %d (%s)", i, entry.Name)
			}
		}

		zlog.Debug().Msgf("built preset: index=%d type=%s name=%s params=%d", i, entry.ClassName, entry.Name, len(entry.Params))
		items = append(items, inst)
	}
	return items, nil
}

func initialIndices(n int) (int, int) {
	if n == 0 {
		return -1, -1
	}
	return 0, 1 % n
}

// mod returns the non-negative remainder of a divided by n.
func mod(a, n int) int {
	r := a % n
	if r < 0 {
		r += n
	}
	return r
}

// Path returns the document path the playlist is loaded from and saved to.
func (s *Sequencer) Path() string {
	return s.path
}

// Save writes the playlist in its current order, replacing the stored document.
func (s *Sequencer) Save() error {
	zlog.Info().Msgf("saving playlist: path=%s", s.path)

	doc := &playlist.Document{
		FileType: playlist.FileType,
		Playlist: s.Entries(),
	}
	if err := s.store.Save(s.path, doc); err != nil {
		return errors.Wrap(err, "failed to save playlist")
	}
	return nil
}

// Entries returns the persisted form of every preset, in playlist order.
func (s *Sequencer) Entries() []playlist.Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries := make([]playlist.Entry, len(s.items))
	for i, p := range s.items {
		entries[i] = playlist.Entry{
			ClassName: p.TypeName(),
			Name:      p.Name(),
			Params:    preset.Values(p),
		}
	}
	return entries
}

func (s *Sequencer) notify() {
	if s.notifier != nil {
		s.notifier.Notify()
	}
}
