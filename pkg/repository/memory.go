package repository

import (
	"context"
	"sync"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/surveyor/pkg/domain/interfaces"
	"github.com/secmon-lab/surveyor/pkg/domain/model"
	"github.com/secmon-lab/surveyor/pkg/domain/types"
)

// Option configures a state store
type Option func(*options)

type options struct {
	now func() time.Time
}

// WithClock overrides the time source used for expiry checks
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		o.now = now
	}
}

func newOptions(opts []Option) *options {
	o := &options{now: time.Now}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Memory implements StateStore with in-memory storage
type Memory struct {
	mu      sync.RWMutex
	entries map[types.StateKey]model.StateEntry
	now     func() time.Time
}

// NewMemory creates a new memory state store
func NewMemory(opts ...Option) interfaces.StateStore {
	o := newOptions(opts)
	return &Memory{
		entries: make(map[types.StateKey]model.StateEntry),
		now:     o.now,
	}
}

// Get retrieves an unexpired entry by key
func (m *Memory) Get(ctx context.Context, key types.StateKey) (*model.StateEntry, error) {
	if key == "" {
		return nil, goerr.New("state key is empty")
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	entry, exists := m.entries[key]
	if !exists || entry.IsExpired(m.now()) {
		return nil, goerr.Wrap(model.ErrStateNotFound, "failed to get state entry", goerr.V("key", key))
	}

	// Return a copy to prevent external modification
	entryCopy := entry
	return &entryCopy, nil
}

// Put stores all entries under a single lock
func (m *Memory) Put(ctx context.Context, entries ...model.StateEntry) error {
	if err := validateEntries(entries); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	for _, entry := range entries {
		m.entries[entry.Key] = entry
	}
	return nil
}

// Delete removes the given keys
func (m *Memory) Delete(ctx context.Context, keys ...types.StateKey) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, key := range keys {
		delete(m.entries, key)
	}
	return nil
}

// Close is a no-op for memory storage
func (m *Memory) Close() error {
	return nil
}

func validateEntries(entries []model.StateEntry) error {
	if len(entries) == 0 {
		return goerr.New("no state entries to put")
	}
	for _, entry := range entries {
		if !entry.Key.IsValid() {
			return goerr.New("invalid state key", goerr.V("key", entry.Key))
		}
	}
	return nil
}
