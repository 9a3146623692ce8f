package app

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"

	"github.com/dori/folio/internal/storage"
	"github.com/dori/folio/internal/store"
)

// App holds the application state and dependencies
type App struct {
	Store    *store.Store
	KV       *storage.KV
	DataDir  string
	lockFile *flock.Flock
}

// Config holds application configuration
type Config struct {
	DataDir     string
	StoragePath string
}

// DefaultConfig returns the default application configuration
func DefaultConfig() *Config {
	dataDir := storage.DefaultDataDir()
	return &Config{
		DataDir:     dataDir,
		StoragePath: filepath.Join(dataDir, "folio.db"),
	}
}

// New creates a new application instance: it locks the data directory,
// opens storage, and loads the portfolio store (seeding the default
// document on first run).
func New(cfg *Config) (*App, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}

	// Ensure data directory exists
	if err := os.MkdirAll(cfg.DataDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	app := &App{
		DataDir: cfg.DataDir,
	}

	// Acquire lock to ensure single instance
	if err := app.acquireLock(); err != nil {
		return nil, err
	}

	kv, err := storage.Open(cfg.StoragePath)
	if err != nil {
		app.releaseLock()
		return nil, fmt.Errorf("failed to open storage: %w", err)
	}
	app.KV = kv

	app.Store = store.New(kv)
	if err := app.Store.Load(); err != nil {
		// A failed seed write is recoverable; anything else is not
		if !errors.Is(err, store.ErrPersist) {
			kv.Close()
			app.releaseLock()
			return nil, fmt.Errorf("failed to load portfolios: %w", err)
		}
	}

	return app, nil
}

// acquireLock acquires an exclusive file lock to prevent multiple instances
func (a *App) acquireLock() error {
	lockPath := filepath.Join(a.DataDir, "folio.lock")
	a.lockFile = flock.New(lockPath)

	locked, err := a.lockFile.TryLock()
	if err != nil {
		return fmt.Errorf("failed to acquire lock: %w", err)
	}

	if !locked {
		return fmt.Errorf("another instance of folio is already running")
	}

	return nil
}

// releaseLock releases the file lock
func (a *App) releaseLock() {
	if a.lockFile != nil {
		a.lockFile.Unlock()
	}
}

// Close cleans up application resources
func (a *App) Close() error {
	var errs []error

	if a.KV != nil {
		if err := a.KV.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close storage: %w", err))
		}
	}

	a.releaseLock()

	if len(errs) > 0 {
		return errs[0]
	}
	return nil
}
