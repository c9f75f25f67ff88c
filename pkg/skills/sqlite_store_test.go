package skills

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRecord(key string, kind SourceKind) Record {
	return Record{
		SourceKind:  kind,
		IdentityKey: key,
		Name:        key,
		Description: "a skill",
		Command:     "/" + key,
		Verified:    true,
		Body:        "# " + key,
		IsEnabled:   true,
		FilePath:    "/skills/" + key + "/SKILL.md",
	}
}

func TestApplyBatchInsertAssignsID(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	batch := &Batch{Inserts: []Record{testRecord("alpha", SourceOfficial)}}
	require.NoError(t, store.ApplyBatch(ctx, batch))
	assert.NotEmpty(t, batch.Inserts[0].ID)
	assert.False(t, batch.Inserts[0].CreatedAt.IsZero())

	records, err := store.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, records, 1)

	got := records[0]
	assert.Equal(t, batch.Inserts[0].ID, got.ID)
	assert.Equal(t, SourceOfficial, got.SourceKind)
	assert.Equal(t, "alpha", got.IdentityKey)
	assert.Equal(t, "/alpha", got.Command)
	assert.True(t, got.Verified)
	assert.True(t, got.IsEnabled)
	assert.Equal(t, "# alpha", got.Body)
}

func TestApplyBatchUpdateLeavesProtectedColumns(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	batch := &Batch{Inserts: []Record{testRecord("alpha", SourceOfficial)}}
	require.NoError(t, store.ApplyBatch(ctx, batch))
	id := batch.Inserts[0].ID

	require.NoError(t, store.SetEnabled(ctx, id, false))

	// An update carrying IsEnabled=true must not flip the persisted flag.
	updated := batch.Inserts[0]
	updated.Name = "alpha-renamed"
	updated.IsEnabled = true
	require.NoError(t, store.ApplyBatch(ctx, &Batch{Updates: []Record{updated}}))

	records, err := store.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "alpha-renamed", records[0].Name)
	assert.False(t, records[0].IsEnabled)
	assert.Equal(t, SourceOfficial, records[0].SourceKind)
	assert.Equal(t, "alpha", records[0].IdentityKey)
}

func TestApplyBatchDelete(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	batch := &Batch{Inserts: []Record{testRecord("alpha", SourceOfficial), testRecord("beta", SourceCustom)}}
	require.NoError(t, store.ApplyBatch(ctx, batch))

	require.NoError(t, store.ApplyBatch(ctx, &Batch{Deletes: []string{batch.Inserts[0].ID}}))

	records, err := store.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "beta", records[0].IdentityKey)
}

func TestApplyBatchIsAtomic(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	first := &Batch{Inserts: []Record{testRecord("alpha", SourceOfficial)}}
	require.NoError(t, store.ApplyBatch(ctx, first))

	// The duplicate identity key violates UNIQUE(source_kind, identity_key),
	// so the whole batch, including the delete, must roll back.
	bad := &Batch{
		Inserts: []Record{testRecord("alpha", SourceOfficial)},
		Deletes: []string{first.Inserts[0].ID},
	}
	err := store.ApplyBatch(ctx, bad)
	require.Error(t, err)

	var perr *PersistenceError
	require.ErrorAs(t, err, &perr)

	records, err := store.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, first.Inserts[0].ID, records[0].ID)
}

func TestApplyBatchEmptyIsNoOp(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.ApplyBatch(context.Background(), &Batch{}))
}

func TestSetEnabledUnknownID(t *testing.T) {
	store := newTestStore(t)
	err := store.SetEnabled(context.Background(), "no-such-id", true)
	assert.ErrorIs(t, err, ErrNotFound)
}
