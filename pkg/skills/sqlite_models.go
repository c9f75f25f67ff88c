package skills

import (
	"time"

	"github.com/pkg/errors"
)

// skillRow mirrors the skills table. Timestamps are stored as RFC3339Nano
// strings for portability across SQLite drivers.
type skillRow struct {
	ID          string `db:"id"`
	SourceKind  string `db:"source_kind"`
	IdentityKey string `db:"identity_key"`
	Name        string `db:"name"`
	Description string `db:"description"`
	Command     string `db:"command"`
	Verified    bool   `db:"verified"`
	Body        string `db:"body"`
	IsEnabled   bool   `db:"is_enabled"`
	FilePath    string `db:"file_path"`
	CreatedAt   string `db:"created_at"`
	UpdatedAt   string `db:"updated_at"`
}

func rowFromRecord(r Record) skillRow {
	return skillRow{
		ID:          r.ID,
		SourceKind:  string(r.SourceKind),
		IdentityKey: r.IdentityKey,
		Name:        r.Name,
		Description: r.Description,
		Command:     r.Command,
		Verified:    r.Verified,
		Body:        r.Body,
		IsEnabled:   r.IsEnabled,
		FilePath:    r.FilePath,
		CreatedAt:   r.CreatedAt.Format(time.RFC3339Nano),
		UpdatedAt:   r.UpdatedAt.Format(time.RFC3339Nano),
	}
}

func (row skillRow) toRecord() (Record, error) {
	createdAt, err := time.Parse(time.RFC3339Nano, row.CreatedAt)
	if err != nil {
		return Record{}, errors.Wrapf(err, "failed to parse created_at for skill %s", row.ID)
	}
	updatedAt, err := time.Parse(time.RFC3339Nano, row.UpdatedAt)
	if err != nil {
		return Record{}, errors.Wrapf(err, "failed to parse updated_at for skill %s", row.ID)
	}

	return Record{
		ID:          row.ID,
		SourceKind:  SourceKind(row.SourceKind),
		IdentityKey: row.IdentityKey,
		Name:        row.Name,
		Description: row.Description,
		Command:     row.Command,
		Verified:    row.Verified,
		Body:        row.Body,
		IsEnabled:   row.IsEnabled,
		FilePath:    row.FilePath,
		CreatedAt:   createdAt,
		UpdatedAt:   updatedAt,
	}, nil
}
