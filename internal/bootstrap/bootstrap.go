// Package bootstrap assembles the session and use cases from configuration.
// The server and the CLI share it.
package bootstrap

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	yamlcatalog "infernocorp/internal/adapter/catalog/yamlfile"
	metricsinmem "infernocorp/internal/adapter/metrics/inmemory"
	"infernocorp/internal/adapter/repo/backend"
	"infernocorp/internal/app/history"
	lifecycleapp "infernocorp/internal/app/lifecycle"
	"infernocorp/internal/app/management"
	missionapp "infernocorp/internal/app/mission"
	"infernocorp/internal/app/ports"
	"infernocorp/internal/app/session"
	"infernocorp/internal/app/status"
	"infernocorp/internal/platform/config"
	"infernocorp/internal/platform/random"
)

type App struct {
	Config  config.Config
	Logger  *zap.Logger
	Session *session.Session
	Metrics *metricsinmem.Recorder
	// Loaded reports whether an existing save was restored.
	Loaded bool

	Status     status.UseCase
	Management management.UseCase
	Mission    missionapp.UseCase
	Lifecycle  lifecycleapp.UseCase
	History    history.UseCase

	repos backend.Repos
}

// Build opens storage, restores or creates the game and wires the use cases.
func Build(ctx context.Context, cfg config.Config, logger *zap.Logger, notifier ports.Notifier) (*App, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	catalog, err := yamlcatalog.Load(cfg.CatalogPath)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	repos, err := backend.Open(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("open %s backend: %w", cfg.SaveBackend, err)
	}
	seeds, err := random.NewSeeds(cfg.Seed)
	if err != nil {
		_ = repos.Close()
		return nil, err
	}
	recorder := metricsinmem.NewRecorder()
	sess, err := session.New(catalog, session.Deps{
		Saves:     repos.Saves,
		Journal:   repos.Journal,
		TxManager: repos.TxManager,
		Notifier:  notifier,
		Metrics:   recorder,
		Seeds:     seeds,
		Logger:    logger.Named("session"),
	})
	if err != nil {
		_ = repos.Close()
		return nil, fmt.Errorf("new session: %w", err)
	}
	loaded := sess.Load(ctx)
	logger.Info("game ready",
		zap.String("backend", string(cfg.SaveBackend)),
		zap.Bool("restored", loaded),
		zap.Int("day", sess.Meta().Day),
	)

	return &App{
		Config:     cfg,
		Logger:     logger,
		Session:    sess,
		Metrics:    recorder,
		Loaded:     loaded,
		Status:     status.UseCase{Session: sess},
		Management: management.UseCase{Session: sess},
		Mission:    missionapp.UseCase{Session: sess},
		Lifecycle:  lifecycleapp.UseCase{Session: sess},
		History:    history.UseCase{Journal: repos.Journal, Slot: session.SaveKey},
		repos:      repos,
	}, nil
}

func (a *App) Close() error {
	if a == nil || a.repos.Close == nil {
		return nil
	}
	return a.repos.Close()
}
