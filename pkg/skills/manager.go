package skills

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/skillcat-dev/skillcat/pkg/logger"
)

// Manager is the public facade over the skill catalog. It holds an in-memory
// index of the current catalog and serializes mutating operations so a
// reconciliation pass can never interleave with a single-record mutation.
// The index is owned exclusively by the manager; reads never touch storage.
type Manager struct {
	// mu serializes mutating operations per instance. Waiters queue on the
	// lock, so operations against one manager execute one at a time in
	// submission order. Reads hold the read side only.
	mu sync.RWMutex

	store      Store
	reconciler *Reconciler
	customRoot string
	index      map[string]Record
	lastReport *Report
}

// LastReport returns the report of the most recent successful sync, or nil
// before the first one.
func (m *Manager) LastReport() *Report {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.lastReport
}

// NewManager creates a catalog manager over the given store and skill roots.
// Call Initialize before using the other operations.
func NewManager(store Store, officialRoot, customRoot string) *Manager {
	return &Manager{
		store:      store,
		reconciler: NewReconciler(store, officialRoot, customRoot),
		customRoot: customRoot,
		index:      make(map[string]Record),
	}
}

// Initialize runs one reconciliation pass and populates the in-memory index.
// Calling it again is equivalent to Resync.
func (m *Manager) Initialize(ctx context.Context) (*Report, error) {
	return m.Resync(ctx)
}

// Resync re-runs the reconciliation pass and refreshes the in-memory index.
// Enabled flags are preserved for every record whose backing file still
// exists. On failure the index keeps its pre-sync value.
func (m *Manager) Resync(ctx context.Context) (*Report, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	records, report, err := m.reconciler.Run(ctx)
	if err != nil {
		return report, err
	}

	index := make(map[string]Record, len(records))
	for _, record := range records {
		index[record.ID] = record
	}
	m.index = index
	m.lastReport = report

	return report, nil
}

// GetAllSkills returns a snapshot of the catalog, sorted by source kind then
// name for stable listings. No I/O.
func (m *Manager) GetAllSkills() []Record {
	m.mu.RLock()
	defer m.mu.RUnlock()

	records := make([]Record, 0, len(m.index))
	for _, record := range m.index {
		records = append(records, record)
	}
	sort.Slice(records, func(i, j int) bool {
		if records[i].SourceKind != records[j].SourceKind {
			return records[i].SourceKind == SourceOfficial
		}
		if records[i].Name != records[j].Name {
			return records[i].Name < records[j].Name
		}
		return records[i].IdentityKey < records[j].IdentityKey
	})
	return records
}

// GetSkillByID returns the record with the given ID, or ErrNotFound. No I/O.
func (m *Manager) GetSkillByID(id string) (Record, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	record, ok := m.index[id]
	if !ok {
		return Record{}, ErrNotFound
	}
	return record, nil
}

// SetSkillEnabled persists the enabled flag for one record and updates the
// in-memory index. Returns ErrNotFound when the ID is unknown.
func (m *Manager) SetSkillEnabled(ctx context.Context, id string, enabled bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	record, ok := m.index[id]
	if !ok {
		return ErrNotFound
	}

	if err := m.store.SetEnabled(ctx, id, enabled); err != nil {
		return err
	}

	record.IsEnabled = enabled
	m.index[id] = record

	logger.G(ctx).WithFields(logrus.Fields{
		"skill":   record.Name,
		"enabled": enabled,
	}).Debug("skill enabled flag updated")

	return nil
}

// AddSkill imports the definition file at filePath into the custom root under
// a fresh subdirectory and inserts a new enabled record. The source file is
// left in place. Fails with a *MalformedDefinitionError when the file does
// not parse.
func (m *Manager) AddSkill(ctx context.Context, filePath string) (Record, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	definition, err := ParseDefinition(filePath)
	if err != nil {
		return Record{}, err
	}

	content, err := os.ReadFile(filePath)
	if err != nil {
		return Record{}, errors.Wrap(err, "failed to read skill file")
	}

	dirName := m.freshDirName(definition.Name)
	skillDir := filepath.Join(m.customRoot, dirName)
	if err := os.MkdirAll(skillDir, 0o755); err != nil {
		return Record{}, errors.Wrap(err, "failed to create skill directory")
	}

	targetPath := filepath.Join(skillDir, DefinitionFileName)
	if err := os.WriteFile(targetPath, content, 0o644); err != nil {
		return Record{}, errors.Wrap(err, "failed to write skill file")
	}

	record := mergeRecord(nil, definition, Candidate{
		Path:        targetPath,
		Source:      SourceCustom,
		RelativeKey: dirName,
	})

	batch := &Batch{Inserts: []Record{record}}
	if err := m.store.ApplyBatch(ctx, batch); err != nil {
		return Record{}, err
	}

	record = batch.Inserts[0]
	m.index[record.ID] = record

	logger.G(ctx).WithFields(logrus.Fields{
		"skill": record.Name,
		"dir":   skillDir,
	}).Info("custom skill added")

	return record, nil
}

// DeleteSkill removes a custom skill: its persisted row, its backing
// directory, and its index entry. Official skills are not deletable; the call
// returns false with no error, as an expected, checkable outcome. Unknown IDs
// return ErrNotFound.
func (m *Manager) DeleteSkill(ctx context.Context, id string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	record, ok := m.index[id]
	if !ok {
		return false, ErrNotFound
	}

	if record.SourceKind == SourceOfficial {
		logger.G(ctx).WithField("skill", record.Name).Warn("refusing to delete official skill")
		return false, nil
	}

	if err := m.store.ApplyBatch(ctx, &Batch{Deletes: []string{id}}); err != nil {
		return false, err
	}

	if record.FilePath != "" {
		if err := os.RemoveAll(filepath.Dir(record.FilePath)); err != nil {
			logger.G(ctx).WithField("path", record.FilePath).WithError(err).Warn("failed to remove skill directory")
		}
	}

	delete(m.index, id)
	return true, nil
}

// freshDirName derives a directory name from the skill name, disambiguating
// against subdirectories already present under the custom root.
func (m *Manager) freshDirName(name string) string {
	base := slugify(name)
	dirName := base
	for i := 2; ; i++ {
		if _, err := os.Stat(filepath.Join(m.customRoot, dirName)); os.IsNotExist(err) {
			return dirName
		}
		dirName = base + "-" + strconv.Itoa(i)
	}
}

func slugify(name string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(strings.TrimSpace(name)) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ', r == '-', r == '_', r == '.':
			b.WriteRune('-')
		}
	}
	slug := strings.Trim(b.String(), "-")
	if slug == "" {
		return "skill"
	}
	return slug
}
