package skills

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestManager(t *testing.T) (*Manager, string, string) {
	t.Helper()
	officialRoot := t.TempDir()
	customRoot := t.TempDir()
	manager := NewManager(newTestStore(t), officialRoot, customRoot)
	return manager, officialRoot, customRoot
}

func TestManagerInitialize(t *testing.T) {
	manager, officialRoot, _ := newTestManager(t)
	writeSkill(t, officialRoot, "test-skill-1", `---
name: Test Skill One
description: First test skill
command: /test1
---

# Test Skill One
`)

	_, err := manager.Initialize(context.Background())
	require.NoError(t, err)

	all := manager.GetAllSkills()
	require.Len(t, all, 1)
	assert.Equal(t, "Test Skill One", all[0].Name)
	assert.Equal(t, "First test skill", all[0].Description)
	assert.Equal(t, SourceOfficial, all[0].SourceKind)
	assert.Equal(t, "/test1", all[0].Command)
	assert.True(t, all[0].IsEnabled)
}

func TestManagerToggleSurvivesResync(t *testing.T) {
	manager, officialRoot, _ := newTestManager(t)
	writeSkill(t, officialRoot, "test-skill-1", "---\nname: Test Skill One\ncommand: /test1\n---\nBody\n")
	ctx := context.Background()

	_, err := manager.Initialize(ctx)
	require.NoError(t, err)
	id := manager.GetAllSkills()[0].ID

	require.NoError(t, manager.SetSkillEnabled(ctx, id, false))

	_, err = manager.Resync(ctx)
	require.NoError(t, err)

	record, err := manager.GetSkillByID(id)
	require.NoError(t, err)
	assert.False(t, record.IsEnabled)
}

func TestManagerSetSkillEnabledUnknownID(t *testing.T) {
	manager, _, _ := newTestManager(t)
	_, err := manager.Initialize(context.Background())
	require.NoError(t, err)

	err = manager.SetSkillEnabled(context.Background(), "no-such-id", true)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestManagerDeleteOfficialForbidden(t *testing.T) {
	manager, officialRoot, _ := newTestManager(t)
	writeSkill(t, officialRoot, "bundled", "---\nname: bundled\n---\nBody\n")
	ctx := context.Background()

	_, err := manager.Initialize(ctx)
	require.NoError(t, err)
	id := manager.GetAllSkills()[0].ID

	deleted, err := manager.DeleteSkill(ctx, id)
	require.NoError(t, err)
	assert.False(t, deleted)

	// The record is still present, on disk state untouched.
	record, err := manager.GetSkillByID(id)
	require.NoError(t, err)
	assert.Equal(t, "bundled", record.IdentityKey)
	_, statErr := os.Stat(filepath.Join(officialRoot, "bundled", DefinitionFileName))
	assert.NoError(t, statErr)
}

func TestManagerAddAndDeleteCustomSkill(t *testing.T) {
	manager, _, customRoot := newTestManager(t)
	ctx := context.Background()

	_, err := manager.Initialize(ctx)
	require.NoError(t, err)

	// Definition file outside the managed roots.
	srcDir := t.TempDir()
	srcPath := writeSkill(t, srcDir, "draft", "---\nname: My Notes\ndescription: Notes helper\n---\nBody\n")

	record, err := manager.AddSkill(ctx, srcPath)
	require.NoError(t, err)
	assert.Equal(t, SourceCustom, record.SourceKind)
	assert.Equal(t, "my-notes", record.IdentityKey)
	assert.True(t, record.IsEnabled)
	assert.NotEmpty(t, record.ID)

	copiedPath := filepath.Join(customRoot, "my-notes", DefinitionFileName)
	assert.Equal(t, copiedPath, record.FilePath)
	_, statErr := os.Stat(copiedPath)
	require.NoError(t, statErr)

	// The addition survives a resync.
	_, err = manager.Resync(ctx)
	require.NoError(t, err)
	got, err := manager.GetSkillByID(record.ID)
	require.NoError(t, err)
	assert.Equal(t, "My Notes", got.Name)

	deleted, err := manager.DeleteSkill(ctx, record.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	_, err = manager.GetSkillByID(record.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	_, statErr = os.Stat(filepath.Join(customRoot, "my-notes"))
	assert.True(t, os.IsNotExist(statErr))

	assert.Empty(t, manager.GetAllSkills())
}

func TestManagerAddSkillMalformed(t *testing.T) {
	manager, _, _ := newTestManager(t)
	ctx := context.Background()

	_, err := manager.Initialize(ctx)
	require.NoError(t, err)

	srcDir := t.TempDir()
	srcPath := writeSkill(t, srcDir, "broken", "no frontmatter\n")

	_, err = manager.AddSkill(ctx, srcPath)
	require.Error(t, err)
	assert.True(t, IsMalformedDefinition(err))
}

func TestManagerAddSkillDisambiguatesDirName(t *testing.T) {
	manager, _, customRoot := newTestManager(t)
	ctx := context.Background()

	_, err := manager.Initialize(ctx)
	require.NoError(t, err)

	srcDir := t.TempDir()
	srcPath := writeSkill(t, srcDir, "draft", "---\nname: helper\n---\nBody\n")

	first, err := manager.AddSkill(ctx, srcPath)
	require.NoError(t, err)
	second, err := manager.AddSkill(ctx, srcPath)
	require.NoError(t, err)

	assert.Equal(t, "helper", first.IdentityKey)
	assert.Equal(t, "helper-2", second.IdentityKey)
	_, statErr := os.Stat(filepath.Join(customRoot, "helper-2", DefinitionFileName))
	assert.NoError(t, statErr)
}

func TestManagerResyncFailureKeepsIndex(t *testing.T) {
	officialRoot := t.TempDir()
	customRoot := t.TempDir()
	writeSkill(t, officialRoot, "keep", "---\nname: keep\n---\nBody\n")

	store := newTestStore(t)
	manager := NewManager(store, officialRoot, customRoot)
	ctx := context.Background()

	_, err := manager.Initialize(ctx)
	require.NoError(t, err)
	require.Len(t, manager.GetAllSkills(), 1)

	// Closing the store makes the next pass fail at the persistence layer.
	require.NoError(t, store.Close())

	_, err = manager.Resync(ctx)
	require.Error(t, err)

	// The in-memory index keeps its pre-sync value.
	assert.Len(t, manager.GetAllSkills(), 1)
}

func TestManagerPartialFailureTolerance(t *testing.T) {
	manager, officialRoot, _ := newTestManager(t)
	writeSkill(t, officialRoot, "good", "---\nname: good\n---\nBody\n")
	writeSkill(t, officialRoot, "bad", "broken\n")

	report, err := manager.Initialize(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, report.Skipped)
	require.Len(t, manager.GetAllSkills(), 1)
	assert.Equal(t, "good", manager.GetAllSkills()[0].IdentityKey)
	assert.Equal(t, report, manager.LastReport())
}
