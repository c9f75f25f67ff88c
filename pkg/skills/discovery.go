package skills

import (
	"context"
	"os"
	"path/filepath"

	"github.com/skillcat-dev/skillcat/pkg/logger"
)

// Candidate is a discovered definition file, not yet parsed.
type Candidate struct {
	Path        string     // Absolute path to the SKILL.md
	Source      SourceKind // Which tree the candidate came from
	RelativeKey string     // Subdirectory name under the root
}

// Scanner discovers definition files under one root directory, tagging each
// candidate with the root's source kind.
type Scanner struct {
	root   string
	source SourceKind
}

// NewScanner creates a scanner for the given root and source classification.
func NewScanner(root string, source SourceKind) *Scanner {
	return &Scanner{root: root, source: source}
}

// Scan lists the immediate subdirectories of the root and yields a candidate
// for each one that contains a SKILL.md. Subdirectories without the file are
// skipped: a skill directory may hold scripts or other assets, and sibling
// directories are not required to be skills at all. A missing root contributes
// zero candidates so the first run before any custom skill exists succeeds.
// Candidates come back in ReadDir order, which is deterministic (sorted).
func (s *Scanner) Scan(ctx context.Context) []Candidate {
	entries, err := os.ReadDir(s.root)
	if err != nil {
		logger.G(ctx).WithField("root", s.root).WithError(err).Debug("skill root not readable, skipping")
		return nil
	}

	var candidates []Candidate
	for _, entry := range entries {
		entryPath := filepath.Join(s.root, entry.Name())

		// Stat instead of entry.IsDir so symlinked skill directories work.
		info, err := os.Stat(entryPath)
		if err != nil || !info.IsDir() {
			continue
		}

		definitionPath := filepath.Join(entryPath, DefinitionFileName)
		if _, err := os.Stat(definitionPath); err != nil {
			continue
		}

		candidates = append(candidates, Candidate{
			Path:        definitionPath,
			Source:      s.source,
			RelativeKey: entry.Name(),
		})
	}

	return candidates
}
