package localization

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Load creates a Store from a translation file. The format is chosen by
// extension: .json, .yaml/.yml, or .toml. The file is read fully into
// memory before Load returns; there is no lazy loading or caching.
func Load(path string, opts ...Option) (*Store, error) {
	doc, err := readDocument(path)
	if err != nil {
		return nil, err
	}

	s, err := New(doc, opts...)
	if err != nil {
		return nil, err
	}
	s.path = path

	return s, nil
}

// Reload re-reads the file the store was loaded from and replaces the
// document. Stores built with New have no backing file and return
// ErrNoSource.
func (s *Store) Reload() error {
	if s.path == "" {
		return ErrNoSource
	}

	doc, err := readDocument(s.path)
	if err != nil {
		return err
	}
	s.doc = doc

	return nil
}

func readDocument(path string) (Document, error) {
	unmarshal, err := unmarshalerFor(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %q", ErrFileNotFound, path)
		}
		return nil, fmt.Errorf("reading %q: %w", path, err)
	}

	var doc Document
	if err := unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: parsing %q: %s", ErrInvalidFormat, path, err)
	}
	if doc == nil {
		doc = Document{}
	}

	return doc, nil
}

func unmarshalerFor(path string) (func([]byte, any) error, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return json.Unmarshal, nil
	case ".yaml", ".yml":
		return yaml.Unmarshal, nil
	case ".toml":
		return toml.Unmarshal, nil
	default:
		return nil, fmt.Errorf("%w: unsupported extension in %q", ErrInvalidFormat, path)
	}
}
