package interfaces

//go:generate moq -out mocks/repository_mock.go -pkg mocks . StateStore

import (
	"context"

	"github.com/secmon-lab/surveyor/pkg/domain/model"
	"github.com/secmon-lab/surveyor/pkg/domain/types"
)

// StateStore defines the client-side state persistence. It behaves like a
// browser cookie jar: entries are keyed strings with an optional expiry.
type StateStore interface {
	// Get returns the entry for key. Absent or expired entries yield
	// model.ErrStateNotFound.
	Get(ctx context.Context, key types.StateKey) (*model.StateEntry, error)

	// Put writes all entries atomically: either every entry is stored or
	// none is.
	Put(ctx context.Context, entries ...model.StateEntry) error

	// Delete removes the given keys. Missing keys are ignored.
	Delete(ctx context.Context, keys ...types.StateKey) error

	// Close closes the store
	Close() error
}
