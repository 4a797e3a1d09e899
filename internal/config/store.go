package config

import (
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"

	"github.com/trkcli/trk/internal/paths"
	"github.com/trkcli/trk/pkg/fileutil"
)

// Store reads and writes configuration documents on durable storage.
// The migration executor and the CLI commands consume it as an injected
// capability so tests can substitute an in-memory implementation.
type Store interface {
	// Exists reports whether a document exists at path.
	Exists(path string) bool

	// Read parses the document stored at path.
	Read(path string) (*Document, error)

	// Write persists doc at path, replacing any existing content.
	Write(path string, doc *Document) error
}

// FileStore is the YAML-on-disk Store implementation.
// Writes are atomic (temp file + rename).
type FileStore struct{}

// NewFileStore returns a Store backed by the local filesystem.
func NewFileStore() *FileStore {
	return &FileStore{}
}

// Exists reports whether a regular file exists at path.
func (s *FileStore) Exists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// Read parses the YAML document at path.
func (s *FileStore) Read(path string) (*Document, error) {
	data, err := fileutil.ReadFileWithLimit(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading config %s", path)
	}

	doc := NewDocument()
	if len(data) == 0 {
		return doc, nil
	}
	if err := yaml.Unmarshal(data, doc); err != nil {
		return nil, errors.Wrapf(err, "parsing config %s", path)
	}
	return doc, nil
}

// Write persists doc at path atomically, creating the parent directory
// if needed. Config files are private (0600) since they hold tokens.
func (s *FileStore) Write(path string, doc *Document) error {
	if err := paths.EnsureDir(filepath.Dir(path), 0); err != nil {
		return errors.Wrapf(err, "creating config directory for %s", path)
	}
	if err := fileutil.AtomicWriteYAMLWithPerm(path, doc, 0600); err != nil {
		return errors.Wrapf(err, "writing config %s", path)
	}
	return nil
}

// ReadOrNew reads the document at path, or returns an empty document
// when no file exists yet.
func ReadOrNew(s Store, path string) (*Document, error) {
	if !s.Exists(path) {
		return NewDocument(), nil
	}
	return s.Read(path)
}
