package migrations

import (
	"database/sql"

	"github.com/pkg/errors"

	"github.com/skillcat-dev/skillcat/pkg/db"
)

// Migration20260301120000CreateSkills creates the skills catalog table.
// The UNIQUE(source_kind, identity_key) constraint is what lets the
// reconciler match a discovered file to its persisted row across syncs.
func Migration20260301120000CreateSkills() db.Migration {
	return db.Migration{
		Version:     20260301120000,
		Description: "Create skills catalog table",
		Up: func(tx *sql.Tx) error {
			if _, err := tx.Exec(`
				CREATE TABLE IF NOT EXISTS skills (
					id TEXT PRIMARY KEY,
					source_kind TEXT NOT NULL CHECK (source_kind IN ('official', 'custom')),
					identity_key TEXT NOT NULL,
					name TEXT NOT NULL,
					description TEXT NOT NULL DEFAULT '',
					command TEXT,
					verified INTEGER NOT NULL DEFAULT 0,
					body TEXT NOT NULL DEFAULT '',
					is_enabled INTEGER NOT NULL DEFAULT 1,
					file_path TEXT NOT NULL,
					created_at DATETIME NOT NULL,
					updated_at DATETIME NOT NULL,
					UNIQUE (source_kind, identity_key)
				)
			`); err != nil {
				return errors.Wrap(err, "failed to create skills table")
			}

			if _, err := tx.Exec(`
				CREATE INDEX IF NOT EXISTS idx_skills_source_kind ON skills(source_kind)
			`); err != nil {
				return errors.Wrap(err, "failed to create skills source_kind index")
			}

			return nil
		},
		Down: func(tx *sql.Tx) error {
			if _, err := tx.Exec("DROP TABLE IF EXISTS skills"); err != nil {
				return errors.Wrap(err, "failed to drop skills table")
			}
			return nil
		},
	}
}
