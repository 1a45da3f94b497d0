package repository

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/surveyor/pkg/domain/interfaces"
	"github.com/secmon-lab/surveyor/pkg/domain/model"
	"github.com/secmon-lab/surveyor/pkg/domain/types"
	"gopkg.in/yaml.v3"
)

// File implements StateStore as a YAML jar on the local filesystem.
// Every write replaces the whole file through a rename so that multi-key
// updates are never observed half done.
type File struct {
	mu   sync.Mutex
	path string
	now  func() time.Time
}

type fileDocument struct {
	Entries map[types.StateKey]model.StateEntry `yaml:"entries"`
}

// NewFile creates a file-backed state store at path
func NewFile(path string, opts ...Option) (interfaces.StateStore, error) {
	if path == "" {
		return nil, goerr.New("state file path is empty")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, goerr.Wrap(err, "failed to create state directory", goerr.V("path", path))
	}

	o := newOptions(opts)
	return &File{
		path: path,
		now:  o.now,
	}, nil
}

// Get retrieves an unexpired entry by key
func (f *File) Get(ctx context.Context, key types.StateKey) (*model.StateEntry, error) {
	if key == "" {
		return nil, goerr.New("state key is empty")
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	doc, err := f.load()
	if err != nil {
		return nil, err
	}

	entry, exists := doc.Entries[key]
	if !exists || entry.IsExpired(f.now()) {
		return nil, goerr.Wrap(model.ErrStateNotFound, "failed to get state entry", goerr.V("key", key))
	}

	return &entry, nil
}

// Put stores all entries with one file replacement
func (f *File) Put(ctx context.Context, entries ...model.StateEntry) error {
	if err := validateEntries(entries); err != nil {
		return err
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	doc, err := f.load()
	if err != nil {
		return err
	}
	for _, entry := range entries {
		doc.Entries[entry.Key] = entry
	}
	return f.save(doc)
}

// Delete removes the given keys
func (f *File) Delete(ctx context.Context, keys ...types.StateKey) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	doc, err := f.load()
	if err != nil {
		return err
	}
	for _, key := range keys {
		delete(doc.Entries, key)
	}
	return f.save(doc)
}

// Close is a no-op; the file is not held open between calls
func (f *File) Close() error {
	return nil
}

func (f *File) load() (*fileDocument, error) {
	doc := &fileDocument{Entries: make(map[types.StateKey]model.StateEntry)}

	raw, err := os.ReadFile(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			return doc, nil
		}
		return nil, goerr.Wrap(err, "failed to read state file", goerr.V("path", f.path))
	}

	if err := yaml.Unmarshal(raw, doc); err != nil {
		return nil, goerr.Wrap(err, "failed to decode state file", goerr.V("path", f.path))
	}
	if doc.Entries == nil {
		doc.Entries = make(map[types.StateKey]model.StateEntry)
	}

	// Drop expired entries so they do not accumulate
	now := f.now()
	for key, entry := range doc.Entries {
		if entry.IsExpired(now) {
			delete(doc.Entries, key)
		}
	}
	return doc, nil
}

func (f *File) save(doc *fileDocument) error {
	raw, err := yaml.Marshal(doc)
	if err != nil {
		return goerr.Wrap(err, "failed to encode state file")
	}

	tmp, err := os.CreateTemp(filepath.Dir(f.path), ".state-*.yaml")
	if err != nil {
		return goerr.Wrap(err, "failed to create temporary state file", goerr.V("path", f.path))
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(raw); err != nil {
		_ = tmp.Close()
		return goerr.Wrap(err, "failed to write temporary state file", goerr.V("path", tmpName))
	}
	if err := tmp.Close(); err != nil {
		return goerr.Wrap(err, "failed to close temporary state file", goerr.V("path", tmpName))
	}
	if err := os.Chmod(tmpName, 0o600); err != nil {
		return goerr.Wrap(err, "failed to set state file permission", goerr.V("path", tmpName))
	}
	if err := os.Rename(tmpName, f.path); err != nil {
		return goerr.Wrap(err, "failed to replace state file", goerr.V("path", f.path))
	}
	return nil
}
