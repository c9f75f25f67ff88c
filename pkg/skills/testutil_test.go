package skills

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/skillcat-dev/skillcat/pkg/db"
	"github.com/skillcat-dev/skillcat/pkg/db/migrations"
)

// newTestStore opens a migrated catalog store in a temp directory.
func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "storage.db")
	sqlDB, err := db.Open(context.Background(), dbPath)
	require.NoError(t, err)

	runner := db.NewMigrationRunner(sqlDB)
	require.NoError(t, runner.Run(context.Background(), migrations.All()))

	store := NewSQLiteStore(sqlDB)
	t.Cleanup(func() { store.Close() })
	return store
}

// writeSkill creates root/<dir>/SKILL.md with the given content.
func writeSkill(t *testing.T, root, dir, content string) string {
	t.Helper()

	skillDir := filepath.Join(root, dir)
	require.NoError(t, os.MkdirAll(skillDir, 0o755))
	path := filepath.Join(skillDir, DefinitionFileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}
