package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"pawlog/internal/adapters/storage/localstore"
	"pawlog/internal/adapters/storage/memory"
	"pawlog/internal/adapters/storage/postgres"
	"pawlog/internal/adapters/storage/sqlite"
	"pawlog/internal/domain/community"
	"pawlog/internal/domain/pawlog"
	"pawlog/internal/platform/config"
	"pawlog/internal/platform/logger"
	"pawlog/internal/ports/kv"
)

// App agrupa las dependencias compartidas por la API y el CLI.
type App struct {
	Config config.Config
	Log    logger.Logger
	Repo   *localstore.Adapter
	Store  *pawlog.Store
	Feed   *community.Store
}

// New abre el almacén según cfg.Storage, arma los stores y rehidrata la memoria.
func New(ctx context.Context, cfg config.Config, log logger.Logger) (*App, error) {
	if log == nil {
		log = logger.Nop()
	}
	loc, err := cfg.Location()
	if err != nil {
		return nil, err
	}

	store, err := OpenKV(ctx, cfg.Storage)
	if err != nil {
		return nil, err
	}
	repo, err := localstore.Open(ctx, store, localstore.Options{
		QuotaBytes: cfg.Storage.QuotaBytes,
		Logger:     log,
	})
	if err != nil {
		_ = store.Close()
		return nil, err
	}

	feed := community.NewStore(log)
	if cfg.SeedMockFeed {
		feed.LoadMockFeed()
	}

	s := pawlog.NewStore(repo, feed, log)
	s.SetLocation(loc)
	if err := s.Sync(ctx); err != nil {
		_ = repo.Close()
		return nil, fmt.Errorf("app: initial sync: %w", err)
	}

	log.Info("app ready", map[string]any{
		"driver":   cfg.Storage.Driver,
		"timezone": loc.String(),
	})
	return &App{Config: cfg, Log: log, Repo: repo, Store: s, Feed: feed}, nil
}

// OpenKV abre el driver de almacenamiento configurado.
func OpenKV(ctx context.Context, cfg config.StorageConfig) (kv.Store, error) {
	switch cfg.Driver {
	case config.DriverMemory, "":
		return memory.NewKV(), nil
	case config.DriverSQLite:
		if dir := filepath.Dir(cfg.Path); dir != "." && cfg.Path != ":memory:" {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("app: creating data dir: %w", err)
			}
		}
		s, err := sqlite.Open(cfg.Path)
		if err != nil {
			return nil, err
		}
		return s, nil
	case config.DriverPostgres:
		s, err := postgres.OpenKV(ctx, cfg.DSN)
		if err != nil {
			return nil, err
		}
		return s, nil
	default:
		return nil, fmt.Errorf("app: unknown storage driver %q", cfg.Driver)
	}
}

func (a *App) Close() error {
	if a == nil || a.Repo == nil {
		return nil
	}
	return a.Repo.Close()
}
