package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/surveyor/pkg/domain/interfaces"
	"github.com/secmon-lab/surveyor/pkg/domain/model"
	"github.com/secmon-lab/surveyor/pkg/domain/types"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	// Collection names
	clientStateCollection = "client_states"
)

// Firestore implements StateStore with one Firestore document per profile,
// so progress follows a participant across machines
type Firestore struct {
	client  *firestore.Client
	profile string
	now     func() time.Time
}

type firestoreDocument struct {
	Entries   map[string]model.StateEntry `firestore:"entries"`
	UpdatedAt time.Time                   `firestore:"updated_at"`
}

// NewFirestore creates a new Firestore state store for profile
func NewFirestore(ctx context.Context, projectID, databaseID, profile string, opts ...Option) (interfaces.StateStore, error) {
	logger := ctxlog.From(ctx)

	if profile == "" {
		return nil, goerr.New("firestore profile is empty")
	}

	// Create client with database ID
	client, err := firestore.NewClientWithDatabase(ctx, projectID, databaseID)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create firestore client")
	}

	// Fail fast on invalid project or missing permission
	_, err = client.Collection(clientStateCollection).Limit(1).Documents(ctx).Next()
	if err != nil && err != iterator.Done {
		if status.Code(err) == codes.PermissionDenied || status.Code(err) == codes.Unauthenticated {
			_ = client.Close()
			return nil, goerr.Wrap(err, "failed to connect to firestore project",
				goerr.V("firestore error code", status.Code(err).String()),
			)
		}
		logger.Debug("Firestore connection test returned error (may be empty collection)",
			"error", err,
			"errorCode", status.Code(err).String(),
		)
	}

	logger.Info("Firestore state store initialized",
		"projectID", projectID,
		"databaseID", databaseID,
		"profile", profile,
	)

	o := newOptions(opts)
	return &Firestore{
		client:  client,
		profile: profile,
		now:     o.now,
	}, nil
}

func (f *Firestore) doc() *firestore.DocumentRef {
	return f.client.Collection(clientStateCollection).Doc(f.profile)
}

// Get retrieves an unexpired entry by key
func (f *Firestore) Get(ctx context.Context, key types.StateKey) (*model.StateEntry, error) {
	if key == "" {
		return nil, goerr.New("state key is empty")
	}

	snap, err := f.doc().Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(model.ErrStateNotFound, "failed to get state entry", goerr.V("key", key))
		}
		return nil, goerr.Wrap(err, "failed to get client state from firestore")
	}

	var doc firestoreDocument
	if err := snap.DataTo(&doc); err != nil {
		return nil, goerr.Wrap(err, "failed to decode client state")
	}

	entry, exists := doc.Entries[key.String()]
	if !exists || entry.IsExpired(f.now()) {
		return nil, goerr.Wrap(model.ErrStateNotFound, "failed to get state entry", goerr.V("key", key))
	}
	return &entry, nil
}

// Put stores all entries in one transaction
func (f *Firestore) Put(ctx context.Context, entries ...model.StateEntry) error {
	if err := validateEntries(entries); err != nil {
		return err
	}

	return f.update(ctx, func(doc *firestoreDocument) {
		for _, entry := range entries {
			doc.Entries[entry.Key.String()] = entry
		}
	})
}

// Delete removes the given keys in one transaction
func (f *Firestore) Delete(ctx context.Context, keys ...types.StateKey) error {
	if len(keys) == 0 {
		return nil
	}

	return f.update(ctx, func(doc *firestoreDocument) {
		for _, key := range keys {
			delete(doc.Entries, key.String())
		}
	})
}

func (f *Firestore) update(ctx context.Context, mutate func(doc *firestoreDocument)) error {
	ref := f.doc()

	err := f.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		doc := firestoreDocument{Entries: make(map[string]model.StateEntry)}

		snap, err := tx.Get(ref)
		if err != nil && status.Code(err) != codes.NotFound {
			return goerr.Wrap(err, "failed to get client state in transaction")
		}
		if err == nil {
			if err := snap.DataTo(&doc); err != nil {
				return goerr.Wrap(err, "failed to decode client state")
			}
			if doc.Entries == nil {
				doc.Entries = make(map[string]model.StateEntry)
			}
		}

		now := f.now()
		for key, entry := range doc.Entries {
			if entry.IsExpired(now) {
				delete(doc.Entries, key)
			}
		}

		mutate(&doc)
		doc.UpdatedAt = now

		return tx.Set(ref, doc)
	})
	if err != nil {
		return goerr.Wrap(err, "failed to update client state in firestore", goerr.V("profile", f.profile))
	}
	return nil
}

// Close closes the Firestore client
func (f *Firestore) Close() error {
	if f.client != nil {
		return f.client.Close()
	}
	return nil
}
