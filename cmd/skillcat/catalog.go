package main

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"github.com/spf13/viper"

	"github.com/skillcat-dev/skillcat/pkg/db"
	"github.com/skillcat-dev/skillcat/pkg/paths"
	"github.com/skillcat-dev/skillcat/pkg/skills"
)

// skillRoots resolves the two catalog roots, preferring CLI/config overrides
// over the platform defaults.
func skillRoots() (official, custom string, err error) {
	official = viper.GetString("official_skills_dir")
	if official == "" {
		official, err = paths.OfficialSkillsRoot()
		if err != nil {
			return "", "", err
		}
	}

	custom = viper.GetString("custom_skills_dir")
	if custom == "" {
		custom, err = paths.CustomSkillsRoot()
		if err != nil {
			return "", "", err
		}
	}

	return official, custom, nil
}

// openDB opens the shared storage database. Migrations already ran in the
// root command's PersistentPreRunE.
func openDB(ctx context.Context) (*sqlx.DB, error) {
	dbPath, err := db.DefaultDBPath()
	if err != nil {
		return nil, err
	}
	return db.Open(ctx, dbPath)
}

// openManager builds an initialized catalog manager. The returned cleanup
// closes the underlying store.
func openManager(ctx context.Context) (*skills.Manager, func(), error) {
	official, custom, err := skillRoots()
	if err != nil {
		return nil, nil, err
	}

	sqlDB, err := openDB(ctx)
	if err != nil {
		return nil, nil, err
	}

	store := skills.NewSQLiteStore(sqlDB)
	manager := skills.NewManager(store, official, custom)

	if _, err := manager.Initialize(ctx); err != nil {
		store.Close()
		return nil, nil, errors.Wrap(err, "failed to initialize skill catalog")
	}

	return manager, func() { store.Close() }, nil
}
