// Package document provides filesystem storage for playlist documents.
package document

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
	zlog "github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"

	"github.com/tobywaite/firemix/internal/domain/playlist"
)

// Errors
var (
	ErrNotFound          = errors.New("document not found")
	ErrMalformed         = errors.New("malformed document")
	ErrUnsupportedFormat = errors.New("unsupported document format")
)

// Format is a document encoding, named by its file extension.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatOf returns the format implied by the extension of path.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(filepath.Ext(path), ".")) {
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return "", errors.Wrapf(ErrUnsupportedFormat, "%q", path)
	}
}

// FileStore loads and saves playlist documents on the local filesystem.
type FileStore struct{}

// NewFileStore creates a new file store.
func NewFileStore() *FileStore {
	return &FileStore{}
}

// Load reads and validates the document at path.
// Returns ErrNotFound if the file does not exist.
func (s *FileStore) Load(path string) (*playlist.Document, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, errors.Wrapf(ErrNotFound, "%s", path)
		}
		return nil, errors.Wrap(err, "failed to read document")
	}

	doc, err := decode(format, data)
	if err != nil {
		return nil, errors.Wrapf(errors.Mark(err, ErrMalformed), "failed to parse %s", path)
	}
	if err := doc.Validate(); err != nil {
		return nil, errors.Wrapf(errors.Mark(err, ErrMalformed), "invalid document %s", path)
	}

	zlog.Debug().Msgf("loaded document: path=%s presets=%v", path, doc.Names())
	return doc, nil
}

// Save writes doc to path, replacing any previous contents.
// The file is written to a temporary sibling first and renamed into place.
func (s *FileStore) Save(path string, doc *playlist.Document) error {
	format, err := FormatOf(path)
	if err != nil {
		return err
	}

	data, err := encode(format, doc)
	if err != nil {
		return errors.Wrap(err, "failed to encode document")
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return errors.Wrap(err, "failed to create document directory")
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return errors.Wrap(err, "failed to create temporary file")
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return errors.Wrap(err, "failed to write document")
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return errors.Wrap(err, "failed to close document")
	}
	if err := os.Rename(tmpName, path); err != nil {
		_ = os.Remove(tmpName)
		return errors.Wrap(err, "failed to replace document")
	}

	zlog.Debug().Msgf("saved document: path=%s entries=%d", path, len(doc.Playlist))
	return nil
}

func decode(format Format, data []byte) (*playlist.Document, error) {
	var doc playlist.Document
	switch format {
	case FormatJSON:
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, err
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, err
		}
	default:
		return nil, errors.Wrapf(ErrUnsupportedFormat, "%q", format)
	}
	return &doc, nil
}

func encode(format Format, doc *playlist.Document) ([]byte, error) {
	switch format {
	case FormatJSON:
		data, err := json.MarshalIndent(doc, "", "    ")
		if err != nil {
			return nil, err
		}
		return append(data, '\n'), nil
	case FormatYAML:
		return yaml.Marshal(doc)
	default:
		return nil, errors.Wrapf(ErrUnsupportedFormat, "%q", format)
	}
}
