package main

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/amitrd/revtrack/internal/cli"
	"github.com/amitrd/revtrack/internal/config"
	"github.com/amitrd/revtrack/internal/database"
	"github.com/amitrd/revtrack/internal/gamification"
	"github.com/amitrd/revtrack/internal/kvstore"
	"github.com/amitrd/revtrack/internal/remote"
	"github.com/amitrd/revtrack/internal/revision"
	"github.com/amitrd/revtrack/internal/syncer"
	"github.com/amitrd/revtrack/internal/tracker"
)

func loadConfig() (*config.Config, error) {
	loader, err := config.NewConfigLoader(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to create config loader: %w", err)
	}
	return loader.Load()
}

// app wires the full stack for one command invocation.
type app struct {
	cfg       *config.Config
	db        *sqlx.DB
	pusher    *remote.Pusher
	store     *tracker.LocalStore
	engine    *gamification.Engine
	revisions *revision.Service
	syncer    *syncer.Syncer
}

func newApp() (*app, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	db, err := database.Open(cfg.Data.DatabaseFile)
	if err != nil {
		return nil, fmt.Errorf("database.Open(%s) > %w", cfg.Data.DatabaseFile, err)
	}

	var client remote.Client
	if cfg.Remote.Enabled() {
		client = remote.NewHTTPClient(remote.Config{
			BaseURL: cfg.Remote.BaseURL,
			APIKey:  cfg.Remote.APIKey,
			Timeout: time.Duration(cfg.Remote.TimeoutSeconds) * time.Second,
		})
	}
	pusher := remote.NewPusher(client)

	store := tracker.NewLocalStore(kvstore.New(db), pusher)
	engine := gamification.NewEngine(store, cli.NewTerminalNotifier())

	return &app{
		cfg:       cfg,
		db:        db,
		pusher:    pusher,
		store:     store,
		engine:    engine,
		revisions: revision.NewService(store),
		syncer:    syncer.New(client, store, pusher),
	}, nil
}

// Close drains pending remote writes and releases the database.
func (a *app) Close() {
	a.pusher.Close()
	_ = a.db.Close()
}

func (a *app) reportPath() string {
	return filepath.Clean(a.cfg.Reports.OutputDirectory)
}
