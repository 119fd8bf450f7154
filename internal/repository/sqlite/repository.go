package sqlite

import (
	"context"
	"database/sql"
	"time"

	"taskdeck/internal/errors"
	"taskdeck/internal/repository/sqlite/migrations"

	_ "modernc.org/sqlite"
)

// Repository defines the interface for the persistent named-blob store.
// Each slot holds one serialized payload; writes replace the full
// payload atomically.
type Repository interface {
	// GetBlob reads the payload stored under the given slot.
	// An absent slot returns found == false with no error.
	GetBlob(ctx context.Context, slot string) (payload []byte, found bool, err error)

	// SetBlob atomically replaces the payload stored under the given slot.
	SetBlob(ctx context.Context, slot string, payload []byte) error

	// DeleteBlob removes the slot. Deleting an absent slot is a no-op.
	DeleteBlob(ctx context.Context, slot string) error

	// Utility
	Close() error
}

// SQLiteRepository implements the Repository interface
type SQLiteRepository struct {
	db           *sql.DB
	queryTimeout time.Duration
	writeTimeout time.Duration
}

// New creates a new SQLite repository instance with default timeouts
func New(dbPath string) (*SQLiteRepository, error) {
	return NewWithTimeouts(dbPath, 10*time.Second, 5*time.Second)
}

// NewWithTimeouts creates a new SQLite repository instance with the
// given per-operation query and write timeouts
func NewWithTimeouts(dbPath string, queryTimeout, writeTimeout time.Duration) (*SQLiteRepository, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, errors.NewDatabaseError("open database", err)
	}

	// Single writer; also keeps an in-memory database on one connection
	db.SetMaxOpenConns(1)

	// Run migrations
	if err := migrations.RunMigrations(db); err != nil {
		db.Close()
		return nil, errors.NewDatabaseError("run migrations", err)
	}

	return &SQLiteRepository{
		db:           db,
		queryTimeout: queryTimeout,
		writeTimeout: writeTimeout,
	}, nil
}

// Close closes the database connection
func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}

// GetBlob reads the payload stored under the given slot
func (r *SQLiteRepository) GetBlob(ctx context.Context, slot string) ([]byte, bool, error) {
	ctx, cancel := context.WithTimeout(ctx, r.queryTimeout)
	defer cancel()

	query := `SELECT payload FROM state_blobs WHERE slot = ?`

	var payload []byte
	err := r.db.QueryRowContext(ctx, query, slot).Scan(&payload)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, HandleDatabaseError("read blob", err)
	}

	return payload, true, nil
}

// SetBlob atomically replaces the payload stored under the given slot.
// The replace runs in a transaction so readers never observe a
// partially written payload.
func (r *SQLiteRepository) SetBlob(ctx context.Context, slot string, payload []byte) error {
	ctx, cancel := context.WithTimeout(ctx, r.writeTimeout)
	defer cancel()

	query := `
	INSERT INTO state_blobs (slot, payload, updated_at)
	VALUES (?, ?, ?)
	ON CONFLICT(slot) DO UPDATE SET
		payload = excluded.payload,
		updated_at = excluded.updated_at`

	return ExecuteInTransaction(ctx, r.db, "write blob", query, slot, payload, FormatTimeForDB(time.Now()))
}

// DeleteBlob removes the slot if present
func (r *SQLiteRepository) DeleteBlob(ctx context.Context, slot string) error {
	ctx, cancel := context.WithTimeout(ctx, r.writeTimeout)
	defer cancel()

	query := `DELETE FROM state_blobs WHERE slot = ?`

	// Absence is not an error; rows affected is deliberately ignored
	if _, err := r.db.ExecContext(ctx, query, slot); err != nil {
		return HandleDatabaseError("delete blob", err)
	}
	return nil
}
