package sqlite

import (
	"context"
	"database/sql"
	"time"

	"taskdeck/internal/errors"
)

// HandleDatabaseError converts database errors to structured app errors
func HandleDatabaseError(operation string, err error) error {
	return errors.NewDatabaseError(operation, err)
}

// FormatTimeForDB formats a time value for storage in the database
func FormatTimeForDB(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

// ExecuteInTransaction executes a single statement inside its own
// transaction so the write is applied atomically or not at all.
func ExecuteInTransaction(ctx context.Context, db *sql.DB, operation string, query string, args ...interface{}) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return HandleDatabaseError(operation, err)
	}

	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		tx.Rollback()
		return HandleDatabaseError(operation, err)
	}

	if err := tx.Commit(); err != nil {
		return HandleDatabaseError(operation, err)
	}

	return nil
}
