// Package backend opens the persistence adapter selected by configuration.
package backend

import (
	"context"
	"fmt"
	"os"

	migrationsdb "infernocorp/db"
	boltrepo "infernocorp/internal/adapter/repo/bolt"
	gormrepo "infernocorp/internal/adapter/repo/gorm"
	memoryrepo "infernocorp/internal/adapter/repo/memory"
	sqliterepo "infernocorp/internal/adapter/repo/sqlite"
	"infernocorp/internal/app/ports"
	"infernocorp/internal/platform/config"
)

// Repos bundles the ports a session needs from storage.
type Repos struct {
	Saves     ports.SaveRepository
	Journal   ports.JournalRepository
	TxManager ports.TxManager
	Close     func() error
}

func noopClose() error { return nil }

func Open(ctx context.Context, cfg config.Config) (Repos, error) {
	switch cfg.SaveBackend {
	case config.BackendMemory:
		store := memoryrepo.NewStore()
		return Repos{
			Saves:     memoryrepo.NewSaveRepo(store),
			Journal:   memoryrepo.NewJournalRepo(store),
			TxManager: memoryrepo.NewTxManager(store),
			Close:     noopClose,
		}, nil
	case config.BackendBolt:
		store, err := boltrepo.Open(cfg.BoltPath)
		if err != nil {
			return Repos{}, err
		}
		return Repos{Saves: store, Journal: store, TxManager: store, Close: store.Close}, nil
	case config.BackendSQLite:
		store, err := sqliterepo.Open(cfg.SQLitePath)
		if err != nil {
			return Repos{}, err
		}
		return Repos{Saves: store, Journal: store, TxManager: store, Close: store.Close}, nil
	case config.BackendPostgres:
		db, err := gormrepo.OpenPostgres(cfg.DBDSN)
		if err != nil {
			return Repos{}, fmt.Errorf("open postgres: %w", err)
		}
		migrations := migrationsdb.Migrations()
		if cfg.MigrationsDir != "" {
			migrations = os.DirFS(cfg.MigrationsDir)
		}
		if _, err := gormrepo.ApplyMigrations(ctx, db, migrations); err != nil {
			_ = gormrepo.Close(db)
			return Repos{}, fmt.Errorf("apply migrations: %w", err)
		}
		return Repos{
			Saves:     gormrepo.NewSaveRepo(db),
			Journal:   gormrepo.NewJournalRepo(db),
			TxManager: gormrepo.NewTxManager(db),
			Close:     func() error { return gormrepo.Close(db) },
		}, nil
	default:
		return Repos{}, fmt.Errorf("unknown save backend %q", cfg.SaveBackend)
	}
}
