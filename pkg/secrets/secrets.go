// Package secrets stores per-provider credential strings in the shared
// database. It is a plain key-value wrapper: credentials are stored as given,
// with no encryption layered on top.
package secrets

import (
	"context"
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
)

// ErrNotFound is returned when no credential is stored for a provider.
var ErrNotFound = errors.New("credential not found")

// Store persists provider credentials in the provider_credentials table.
type Store struct {
	db *sqlx.DB
}

// NewStore creates a credential store over an already-migrated database handle.
func NewStore(db *sqlx.DB) *Store {
	return &Store{db: db}
}

// Set stores or replaces the credential for a provider.
func (s *Store) Set(ctx context.Context, provider, credential string) error {
	if provider == "" {
		return errors.New("provider must not be empty")
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO provider_credentials (provider, credential, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(provider) DO UPDATE SET
			credential = excluded.credential,
			updated_at = excluded.updated_at
	`, provider, credential, time.Now().Format(time.RFC3339Nano))
	return errors.Wrap(err, "failed to store credential")
}

// Get returns the credential for a provider, or ErrNotFound.
func (s *Store) Get(ctx context.Context, provider string) (string, error) {
	var credential string
	err := s.db.GetContext(ctx, &credential,
		"SELECT credential FROM provider_credentials WHERE provider = ?", provider)
	if err == sql.ErrNoRows {
		return "", ErrNotFound
	}
	if err != nil {
		return "", errors.Wrap(err, "failed to load credential")
	}
	return credential, nil
}

// Delete removes the credential for a provider. Deleting an absent provider
// is not an error.
func (s *Store) Delete(ctx context.Context, provider string) error {
	_, err := s.db.ExecContext(ctx,
		"DELETE FROM provider_credentials WHERE provider = ?", provider)
	return errors.Wrap(err, "failed to delete credential")
}

// List returns the providers that have a stored credential, sorted.
func (s *Store) List(ctx context.Context) ([]string, error) {
	var providers []string
	err := s.db.SelectContext(ctx, &providers,
		"SELECT provider FROM provider_credentials ORDER BY provider")
	if err != nil {
		return nil, errors.Wrap(err, "failed to list credentials")
	}
	return providers, nil
}
