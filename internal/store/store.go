package store

import (
	"context"
	"encoding/json"

	"taskdeck/internal/errors"
	"taskdeck/internal/logging"
	"taskdeck/internal/repository/sqlite"
)

// DefaultSlot is the name of the persistent store slot holding the task collection.
const DefaultSlot = "tasks"

// StateStore persists the full task collection as a single named blob.
// Every save rewrites the entire collection; there is no incremental diffing.
type StateStore struct {
	repo sqlite.Repository
	slot string
}

// New creates a new StateStore using the default slot name.
func New(repo sqlite.Repository) *StateStore {
	return NewWithSlot(repo, DefaultSlot)
}

// NewWithSlot creates a new StateStore writing to the given slot name.
func NewWithSlot(repo sqlite.Repository, slot string) *StateStore {
	return &StateStore{
		repo: repo,
		slot: slot,
	}
}

// Load reads the persisted task collection.
// An absent slot yields an empty collection. An unreadable payload is
// treated as an empty collection and logged at debug level; persisted
// tasks are user-local cache data, not critical state.
func (s *StateStore) Load(ctx context.Context) ([]TaskRecord, error) {
	payload, found, err := s.repo.GetBlob(ctx, s.slot)
	if err != nil {
		return nil, err
	}
	if !found {
		return []TaskRecord{}, nil
	}

	var records []TaskRecord
	if err := json.Unmarshal(payload, &records); err != nil {
		corrupt := errors.NewCorruptStateError(s.slot, err)
		logging.Debugf("recovering from corrupt state: %v\n", corrupt)
		return []TaskRecord{}, nil
	}
	if records == nil {
		records = []TaskRecord{}
	}

	return records, nil
}

// Save serializes the full collection and writes it to the persistent
// store in a single atomic replace.
func (s *StateStore) Save(ctx context.Context, records []TaskRecord) error {
	if records == nil {
		records = []TaskRecord{}
	}

	payload, err := json.Marshal(records)
	if err != nil {
		return errors.NewDatabaseError("serialize task collection", err)
	}

	return s.repo.SetBlob(ctx, s.slot, payload)
}
