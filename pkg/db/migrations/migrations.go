// Package migrations contains all database migrations for skillcat.
// Migrations use Rails-style timestamp versioning (YYYYMMDDHHmmss).
package migrations

import (
	"github.com/skillcat-dev/skillcat/pkg/db"
)

// All returns all registered migrations in the correct order.
// New migrations should be added to this list.
func All() []db.Migration {
	return []db.Migration{
		Migration20260301120000CreateSkills(),
		Migration20260301120001CreateProviderCredentials(),
	}
}
