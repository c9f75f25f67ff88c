package skills

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/yuin/goldmark"
	meta "github.com/yuin/goldmark-meta"
	"github.com/yuin/goldmark/parser"
)

// ParseDefinition reads and parses a single SKILL.md file. The name falls
// back to the containing directory's name when the frontmatter omits it.
// Read or parse failures come back as a *MalformedDefinitionError so callers
// can treat them as "skip this candidate".
func ParseDefinition(path string) (*Definition, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, &MalformedDefinitionError{Path: path, Err: errors.Wrap(err, "failed to read skill file")}
	}

	if len(bytes.TrimSpace(content)) == 0 {
		return nil, &MalformedDefinitionError{Path: path, Err: errors.New("file is empty")}
	}

	md := goldmark.New(
		goldmark.WithExtensions(meta.Meta),
	)

	var buf bytes.Buffer
	pctx := parser.NewContext()

	if err := md.Convert(content, &buf, parser.WithContext(pctx)); err != nil {
		return nil, &MalformedDefinitionError{Path: path, Err: errors.Wrap(err, "failed to parse markdown")}
	}

	metaData := meta.Get(pctx)
	if metaData == nil {
		return nil, &MalformedDefinitionError{Path: path, Err: errors.New("missing frontmatter")}
	}

	name, _ := metaData["name"].(string)
	if strings.TrimSpace(name) == "" {
		name = filepath.Base(filepath.Dir(path))
	}

	description, _ := metaData["description"].(string)
	command, _ := metaData["command"].(string)
	verified, _ := metaData["verified"].(bool)

	return &Definition{
		Name:        name,
		Description: description,
		Command:     command,
		Verified:    verified,
		Body:        extractBody(string(content)),
	}, nil
}

// extractBody removes YAML frontmatter and returns the markdown body.
func extractBody(content string) string {
	if !strings.HasPrefix(content, "---") {
		return content
	}

	lines := strings.Split(content, "\n")
	frontmatterEnd := -1

	for i := 1; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) == "---" {
			frontmatterEnd = i
			break
		}
	}

	if frontmatterEnd == -1 {
		return content
	}

	return strings.TrimLeft(strings.Join(lines[frontmatterEnd+1:], "\n"), "\n")
}
