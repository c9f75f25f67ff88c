// Package paths resolves the on-disk layout of the skillcat data directory.
// All locations derive from a single base path so tests and packaged installs
// can relocate the whole tree with one environment variable.
package paths

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

const (
	// BasePathEnv overrides the default base directory when set.
	BasePathEnv = "SKILLCAT_BASE_PATH"
	// OfficialRootEnv overrides the official skills root, for installs that
	// ship the bundled tree outside the base directory.
	OfficialRootEnv = "SKILLCAT_OFFICIAL_SKILLS"
)

// Base returns the skillcat base directory, honoring SKILLCAT_BASE_PATH.
func Base() (string, error) {
	if basePath := os.Getenv(BasePathEnv); basePath != "" {
		return basePath, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", errors.Wrap(err, "failed to get home directory")
	}
	return filepath.Join(home, ".skillcat"), nil
}

// DBPath returns the path of the shared storage database.
func DBPath() (string, error) {
	base, err := Base()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, "storage.db"), nil
}

// OfficialSkillsRoot returns the root of the bundled, read-only skill tree.
func OfficialSkillsRoot() (string, error) {
	if root := os.Getenv(OfficialRootEnv); root != "" {
		return root, nil
	}
	base, err := Base()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, "skills", "bundled"), nil
}

// CustomSkillsRoot returns the root of the user-managed skill tree.
func CustomSkillsRoot() (string, error) {
	base, err := Base()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, "skills", "custom"), nil
}
