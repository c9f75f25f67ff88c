package skills

import "context"

// Batch groups the row operations of one reconciliation pass. ApplyBatch
// executes all of them atomically: either every operation commits or none does.
type Batch struct {
	Inserts []Record
	Updates []Record
	Deletes []string // Record IDs
}

// Empty reports whether the batch contains no operations.
func (b *Batch) Empty() bool {
	return len(b.Inserts) == 0 && len(b.Updates) == 0 && len(b.Deletes) == 0
}

// Store is the persistence boundary for the skill catalog.
type Store interface {
	// ListAll returns every persisted record. Ordering is not significant.
	ListAll(ctx context.Context) ([]Record, error)

	// ApplyBatch executes the batch as a single transaction. Inserts are
	// assigned fresh IDs in place. Updates match by ID and must not alter
	// SourceKind, IdentityKey, or IsEnabled. Failures surface as a
	// *PersistenceError.
	ApplyBatch(ctx context.Context, batch *Batch) error

	// SetEnabled persists the user-controlled enabled flag for one record.
	// Returns ErrNotFound when the ID is unknown.
	SetEnabled(ctx context.Context, id string, enabled bool) error

	// Close releases the underlying database handle.
	Close() error
}
