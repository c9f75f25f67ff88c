package skills

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDefinition(t *testing.T) {
	tmpDir := t.TempDir()
	path := writeSkill(t, tmpDir, "code-review", `---
name: code-review
description: Reviews pull requests
command: /review
verified: true
---

# Code Review

## Instructions
Review the diff carefully.
`)

	definition, err := ParseDefinition(path)
	require.NoError(t, err)
	assert.Equal(t, "code-review", definition.Name)
	assert.Equal(t, "Reviews pull requests", definition.Description)
	assert.Equal(t, "/review", definition.Command)
	assert.True(t, definition.Verified)
	assert.Contains(t, definition.Body, "# Code Review")
	assert.Contains(t, definition.Body, "Review the diff carefully.")
	assert.NotContains(t, definition.Body, "description:")
}

func TestParseDefinitionNameFallsBackToDirectory(t *testing.T) {
	tmpDir := t.TempDir()
	path := writeSkill(t, tmpDir, "unnamed-skill", `---
description: No name in frontmatter
---

Body text.
`)

	definition, err := ParseDefinition(path)
	require.NoError(t, err)
	assert.Equal(t, "unnamed-skill", definition.Name)
}

func TestParseDefinitionOptionalFieldsDefault(t *testing.T) {
	tmpDir := t.TempDir()
	path := writeSkill(t, tmpDir, "minimal", `---
name: minimal
---

Just a body.
`)

	definition, err := ParseDefinition(path)
	require.NoError(t, err)
	assert.Equal(t, "minimal", definition.Name)
	assert.Empty(t, definition.Description)
	assert.Empty(t, definition.Command)
	assert.False(t, definition.Verified)
}

func TestParseDefinitionMissingFrontmatter(t *testing.T) {
	tmpDir := t.TempDir()
	path := writeSkill(t, tmpDir, "no-meta", "# Just markdown\n\nNo frontmatter here.\n")

	_, err := ParseDefinition(path)
	require.Error(t, err)
	assert.True(t, IsMalformedDefinition(err))
	assert.Contains(t, err.Error(), path)
}

func TestParseDefinitionEmptyFile(t *testing.T) {
	tmpDir := t.TempDir()
	path := writeSkill(t, tmpDir, "empty", "")

	_, err := ParseDefinition(path)
	require.Error(t, err)
	assert.True(t, IsMalformedDefinition(err))
}

func TestParseDefinitionUnreadableFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", DefinitionFileName)

	_, err := ParseDefinition(path)
	require.Error(t, err)
	assert.True(t, IsMalformedDefinition(err))
}

func TestExtractBody(t *testing.T) {
	t.Run("strips frontmatter", func(t *testing.T) {
		content := "---\nname: x\n---\n\nBody here.\n"
		assert.Equal(t, "Body here.\n", extractBody(content))
	})

	t.Run("no frontmatter", func(t *testing.T) {
		content := "Plain body.\n"
		assert.Equal(t, content, extractBody(content))
	})

	t.Run("unterminated frontmatter", func(t *testing.T) {
		content := "---\nname: x\n"
		assert.Equal(t, content, extractBody(content))
	})
}

func TestParseDefinitionDirectoryAsPath(t *testing.T) {
	tmpDir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(tmpDir, "a-dir"), 0o755))

	_, err := ParseDefinition(filepath.Join(tmpDir, "a-dir"))
	require.Error(t, err)
	assert.True(t, IsMalformedDefinition(err))
}
