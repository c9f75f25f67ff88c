// Package skills manages the catalog of skill definitions: reusable
// capability bundles packaged as directories containing a SKILL.md file with
// YAML frontmatter. Skills are discovered from two filesystem trees — an
// immutable bundled tree shipped with the application and a user-writable
// custom tree — and reconciled against the persisted catalog so user-controlled
// state (the enabled flag) survives repeated syncs.
package skills

import "time"

// SourceKind classifies where a skill was discovered from.
type SourceKind string

const (
	// SourceOfficial marks skills shipped in the bundled tree. Official
	// records cannot be deleted through the manager.
	SourceOfficial SourceKind = "official"
	// SourceCustom marks user-managed skills in the custom tree.
	SourceCustom SourceKind = "custom"
)

// DefinitionFileName is the expected definition file inside each skill directory.
const DefinitionFileName = "SKILL.md"

// Definition is a freshly parsed SKILL.md. It carries no identity of its own;
// identity is assigned when the reconciler matches it to a catalog row.
type Definition struct {
	Name        string // From frontmatter, falling back to the directory name
	Description string
	Command     string // Optional invocation string, e.g. "/review"
	Verified    bool
	Body        string // SKILL.md content below the frontmatter
}

// Record is a persisted catalog entry.
type Record struct {
	ID          string     // Assigned once at first insertion, never reused
	SourceKind  SourceKind // Immutable once set
	IdentityKey string     // Directory name relative to the source root
	Name        string
	Description string
	Command     string
	Verified    bool
	Body        string
	IsEnabled   bool   // User-controlled; never overwritten by a resync
	FilePath    string // Absolute path of the backing SKILL.md at last sync
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// catalogKey identifies a record across syncs. Two files at the same relative
// location under the same root map to the same key even when content changes.
type catalogKey struct {
	Kind SourceKind
	Key  string
}

func (r Record) key() catalogKey {
	return catalogKey{Kind: r.SourceKind, Key: r.IdentityKey}
}
