package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"task-tracker/config"
	"task-tracker/internal/tracker"
	"task-tracker/internal/tracker/repository/blob"
	"task-tracker/internal/tracker/usecase"
	"task-tracker/pkg/blobstore"
	"task-tracker/pkg/datemath"
	"task-tracker/pkg/log"
)

// app is the tracker wired against local storage.
type app struct {
	cfg   *config.Config
	l     log.Logger
	store blobstore.Store
	uc    tracker.UseCase
}

// openApp loads config and today's state. interactive sends logs to a file so
// they do not draw over the terminal UI.
func openApp(ctx context.Context, interactive bool) (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	output := cfg.Logger.OutputPath
	if interactive && (output == "" || output == "stderr" || output == "stdout") {
		output = filepath.Join(os.TempDir(), "task-tracker.log")
	}
	l := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled && !interactive,
		OutputPath:   output,
	})

	store, err := blobstore.Open(blobstore.Config{
		Driver:     cfg.Storage.Driver,
		Dir:        cfg.Storage.Dir,
		SQLitePath: cfg.Storage.SQLitePath,
		CacheSize:  cfg.Storage.CacheSize,
		CacheTTL:   cfg.Storage.CacheTTL,
	})
	if err != nil {
		return nil, fmt.Errorf("open storage: %w", err)
	}

	dates, err := datemath.NewParser(cfg.Tracker.Timezone)
	if err != nil {
		store.Close()
		return nil, err
	}

	repo := blob.New(store, dates, l)
	return &app{
		cfg:   cfg,
		l:     l,
		store: store,
		uc:    usecase.New(ctx, l, repo, dates, nil),
	}, nil
}

func (a *app) Close() error {
	return a.store.Close()
}
