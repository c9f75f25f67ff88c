package migrations

import (
	"database/sql"

	"github.com/pkg/errors"

	"github.com/skillcat-dev/skillcat/pkg/db"
)

// Migration20260301120001CreateProviderCredentials creates the key-value
// table backing the per-provider credential store.
func Migration20260301120001CreateProviderCredentials() db.Migration {
	return db.Migration{
		Version:     20260301120001,
		Description: "Create provider_credentials table",
		Up: func(tx *sql.Tx) error {
			if _, err := tx.Exec(`
				CREATE TABLE IF NOT EXISTS provider_credentials (
					provider TEXT PRIMARY KEY,
					credential TEXT NOT NULL,
					updated_at DATETIME NOT NULL
				)
			`); err != nil {
				return errors.Wrap(err, "failed to create provider_credentials table")
			}
			return nil
		},
		Down: func(tx *sql.Tx) error {
			if _, err := tx.Exec("DROP TABLE IF EXISTS provider_credentials"); err != nil {
				return errors.Wrap(err, "failed to drop provider_credentials table")
			}
			return nil
		},
	}
}
