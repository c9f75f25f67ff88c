package skills

import (
	"context"
	"strings"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	_ "modernc.org/sqlite"
)

// SQLiteStore implements Store over a shared sqlx database handle.
type SQLiteStore struct {
	db *sqlx.DB
}

// NewSQLiteStore creates a catalog store over an already-opened and migrated
// database. The store takes ownership of the handle; Close closes it.
func NewSQLiteStore(db *sqlx.DB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

// Close closes the underlying database handle.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// ListAll returns every persisted skill record.
func (s *SQLiteStore) ListAll(ctx context.Context) ([]Record, error) {
	var rows []skillRow
	query := `
		SELECT id, source_kind, identity_key, name, description,
		       COALESCE(command, '') AS command, verified, body,
		       is_enabled, file_path, created_at, updated_at
		FROM skills
	`
	if err := s.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, &PersistenceError{Op: "list", Err: err}
	}

	records := make([]Record, 0, len(rows))
	for _, row := range rows {
		record, err := row.toRecord()
		if err != nil {
			return nil, &PersistenceError{Op: "list", Err: err}
		}
		records = append(records, record)
	}
	return records, nil
}

// ApplyBatch executes inserts, updates, and deletes as one transaction,
// retrying on transient SQLite lock contention. Inserts get fresh UUIDs
// assigned in place; the update statement deliberately leaves source_kind,
// identity_key, and is_enabled untouched.
func (s *SQLiteStore) ApplyBatch(ctx context.Context, batch *Batch) error {
	if batch.Empty() {
		return nil
	}

	now := time.Now()
	for i := range batch.Inserts {
		if batch.Inserts[i].ID == "" {
			batch.Inserts[i].ID = uuid.NewString()
		}
		if batch.Inserts[i].CreatedAt.IsZero() {
			batch.Inserts[i].CreatedAt = now
		}
		batch.Inserts[i].UpdatedAt = now
	}
	for i := range batch.Updates {
		batch.Updates[i].UpdatedAt = now
	}

	err := retry.Do(
		func() error { return s.applyBatchTx(ctx, batch) },
		retry.Context(ctx),
		retry.Attempts(3),
		retry.Delay(50*time.Millisecond),
		retry.RetryIf(isBusyError),
		retry.LastErrorOnly(true),
	)
	if err != nil {
		return &PersistenceError{Op: "apply batch", Err: err}
	}
	return nil
}

func (s *SQLiteStore) applyBatchTx(ctx context.Context, batch *Batch) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return errors.Wrap(err, "failed to begin transaction")
	}
	defer tx.Rollback()

	insertQuery := `
		INSERT INTO skills (
			id, source_kind, identity_key, name, description, command,
			verified, body, is_enabled, file_path, created_at, updated_at
		) VALUES (
			:id, :source_kind, :identity_key, :name, :description, :command,
			:verified, :body, :is_enabled, :file_path, :created_at, :updated_at
		)
	`
	for _, record := range batch.Inserts {
		if _, err := tx.NamedExecContext(ctx, insertQuery, rowFromRecord(record)); err != nil {
			return errors.Wrapf(err, "failed to insert skill %s", record.IdentityKey)
		}
	}

	updateQuery := `
		UPDATE skills SET
			name = :name, description = :description, command = :command,
			verified = :verified, body = :body, file_path = :file_path,
			updated_at = :updated_at
		WHERE id = :id
	`
	for _, record := range batch.Updates {
		if _, err := tx.NamedExecContext(ctx, updateQuery, rowFromRecord(record)); err != nil {
			return errors.Wrapf(err, "failed to update skill %s", record.ID)
		}
	}

	for _, id := range batch.Deletes {
		if _, err := tx.ExecContext(ctx, "DELETE FROM skills WHERE id = ?", id); err != nil {
			return errors.Wrapf(err, "failed to delete skill %s", id)
		}
	}

	return tx.Commit()
}

// SetEnabled persists the enabled flag for one record.
func (s *SQLiteStore) SetEnabled(ctx context.Context, id string, enabled bool) error {
	result, err := s.db.ExecContext(ctx,
		"UPDATE skills SET is_enabled = ?, updated_at = ? WHERE id = ?",
		enabled, time.Now().Format(time.RFC3339Nano), id)
	if err != nil {
		return &PersistenceError{Op: "set enabled", Err: err}
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return &PersistenceError{Op: "set enabled", Err: err}
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// isBusyError reports whether err looks like transient SQLite lock contention.
func isBusyError(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "database is locked") || strings.Contains(msg, "SQLITE_BUSY")
}
