// Package playlist provides the persisted playlist document schema.
package playlist

import (
	"github.com/cockroachdb/errors"
	"github.com/go-playground/validator/v10"
)

// FileType is the file-type marker of a playlist document.
const FileType = "playlist"

// Document is the persisted form of a playlist.
type Document struct {
	FileType string  `json:"file-type" yaml:"file-type" validate:"omitempty,eq=playlist"`
	Playlist []Entry `json:"playlist" yaml:"playlist" validate:"dive"`
}

// Entry is the persisted form of a single preset instance.
type Entry struct {
	ClassName string         `json:"classname" yaml:"classname" validate:"required"` // Registry type name
	Name      string         `json:"name" yaml:"name" validate:"required"`           // Display name
	Params    map[string]any `json:"params" yaml:"params"`                           // Parameter values by key
}

// New returns an empty playlist document.
func New() *Document {
	return &Document{
		FileType: FileType,
		Playlist: []Entry{},
	}
}

// Names returns the display names of all entries in order.
func (d *Document) Names() []string {
	names := make([]string, len(d.Playlist))
	for i, e := range d.Playlist {
		names[i] = e.Name
	}
	return names
}

// Validate checks the document structure.
func (d *Document) Validate() error {
	if err := validator.New().Struct(d); err != nil {
		return errors.Wrap(err, "struct validation failed")
	}
	return nil
}
