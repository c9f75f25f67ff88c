package skills

import (
	"context"

	"github.com/hashicorp/go-multierror"
	"github.com/sirupsen/logrus"

	"github.com/skillcat-dev/skillcat/pkg/logger"
)

// Report summarizes one reconciliation pass for observability. Malformed
// aggregates the per-candidate parse failures; it is nil on a clean pass.
type Report struct {
	Inserted  int
	Updated   int
	Deleted   int
	Skipped   int // malformed candidates
	Conflicts int // duplicate identity keys within the pass
	Malformed error
}

// Reconciler runs a single sync pass: discover definition files under both
// roots, parse them, diff against the persisted catalog, and apply the result
// transactionally. The pass is idempotent: with no filesystem changes, a
// second run produces zero inserts, zero deletes, and value-level no-op
// updates, and every record keeps its ID and enabled flag.
type Reconciler struct {
	officialRoot string
	customRoot   string
	store        Store
}

// NewReconciler creates a reconciler over the two skill roots and the catalog store.
func NewReconciler(store Store, officialRoot, customRoot string) *Reconciler {
	return &Reconciler{
		officialRoot: officialRoot,
		customRoot:   customRoot,
		store:        store,
	}
}

// Run executes one reconciliation pass and returns the post-sync catalog.
// Malformed candidates are skipped and counted, never fatal. A storage
// failure aborts the pass with a *PersistenceError and leaves the persisted
// catalog untouched.
func (r *Reconciler) Run(ctx context.Context) ([]Record, *Report, error) {
	log := logger.G(ctx)
	report := &Report{}

	candidates := NewScanner(r.officialRoot, SourceOfficial).Scan(ctx)
	candidates = append(candidates, NewScanner(r.customRoot, SourceCustom).Scan(ctx)...)

	// Parse every candidate, keeping the first occurrence of each identity
	// key in scan order and skipping later duplicates.
	type parsed struct {
		candidate  Candidate
		definition *Definition
	}
	var observed []parsed
	seen := make(map[catalogKey]bool)

	for _, candidate := range candidates {
		key := catalogKey{Kind: candidate.Source, Key: candidate.RelativeKey}
		if seen[key] {
			report.Conflicts++
			log.WithField("path", candidate.Path).Warn("duplicate skill identity key, keeping first")
			continue
		}

		definition, err := ParseDefinition(candidate.Path)
		if err != nil {
			report.Skipped++
			report.Malformed = multierror.Append(report.Malformed, err)
			log.WithField("path", candidate.Path).WithError(err).Debug("skipping malformed skill definition")
			continue
		}

		seen[key] = true
		observed = append(observed, parsed{candidate: candidate, definition: definition})
	}

	existing, err := r.store.ListAll(ctx)
	if err != nil {
		return nil, report, err
	}

	existingByKey := make(map[catalogKey]Record, len(existing))
	for _, record := range existing {
		existingByKey[record.key()] = record
	}

	batch := &Batch{}
	matched := make(map[catalogKey]bool)

	for _, p := range observed {
		key := catalogKey{Kind: p.candidate.Source, Key: p.candidate.RelativeKey}
		if prior, ok := existingByKey[key]; ok {
			matched[key] = true
			batch.Updates = append(batch.Updates, mergeRecord(&prior, p.definition, p.candidate))
		} else {
			batch.Inserts = append(batch.Inserts, mergeRecord(nil, p.definition, p.candidate))
		}
	}

	// A file's disappearance always removes its row, official or not: this is
	// a sync, not a user deletion, so the official-deletion guard does not apply.
	for _, record := range existing {
		if !matched[record.key()] {
			batch.Deletes = append(batch.Deletes, record.ID)
		}
	}

	if err := r.store.ApplyBatch(ctx, batch); err != nil {
		return nil, report, err
	}

	report.Inserted = len(batch.Inserts)
	report.Updated = len(batch.Updates)
	report.Deleted = len(batch.Deletes)

	result := make([]Record, 0, len(batch.Inserts)+len(batch.Updates))
	result = append(result, batch.Inserts...)
	result = append(result, batch.Updates...)

	log.WithFields(logrus.Fields{
		"inserted":  report.Inserted,
		"updated":   report.Updated,
		"deleted":   report.Deleted,
		"skipped":   report.Skipped,
		"conflicts": report.Conflicts,
	}).Debug("reconciliation pass complete")

	return result, report, nil
}

// mergeRecord is the single place where protected fields are carved out of a
// resync. With no existing record it builds a fresh insert (enabled by
// default); otherwise it carries over ID, SourceKind, IdentityKey, IsEnabled,
// and CreatedAt, and overwrites everything observed from disk.
func mergeRecord(existing *Record, definition *Definition, candidate Candidate) Record {
	record := Record{
		SourceKind:  candidate.Source,
		IdentityKey: candidate.RelativeKey,
		Name:        definition.Name,
		Description: definition.Description,
		Command:     definition.Command,
		Verified:    definition.Verified,
		Body:        definition.Body,
		FilePath:    candidate.Path,
		IsEnabled:   true,
	}

	if existing != nil {
		record.ID = existing.ID
		record.SourceKind = existing.SourceKind
		record.IdentityKey = existing.IdentityKey
		record.IsEnabled = existing.IsEnabled
		record.CreatedAt = existing.CreatedAt
	}

	return record
}
