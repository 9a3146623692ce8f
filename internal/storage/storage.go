package storage

import (
	"database/sql"
	"embed"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
	"github.com/pressly/goose/v3"
)

//go:embed migrations/*.sql
var migrations embed.FS

// KV is the local persistence medium: a single sqlite-backed table of
// textual key-value entries, the terminal counterpart of browser local
// storage. One writer, no concurrent-access discipline beyond sqlite's own.
type KV struct {
	db *sql.DB
}

// DefaultDataDir returns the default data directory path
func DefaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".folio"
	}
	return filepath.Join(home, ".local", "share", "folio")
}

// DefaultPath returns the default storage file path
func DefaultPath() string {
	return filepath.Join(DefaultDataDir(), "folio.db")
}

// Open opens the storage file and runs migrations
func Open(path string) (*KV, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	// WAL mode keeps the file safe against interrupted writes
	dsn := fmt.Sprintf("file:%s?_journal_mode=WAL&_busy_timeout=5000", path)
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open storage: %w", err)
	}

	// SQLite only supports one writer
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to storage: %w", err)
	}

	kv := &KV{db: db}

	if err := kv.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return kv, nil
}

// migrate runs storage migrations using embedded SQL files
func (kv *KV) migrate() error {
	// Silence goose logging (it corrupts TUI output)
	goose.SetLogger(log.New(io.Discard, "", 0))
	goose.SetBaseFS(migrations)

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("failed to set dialect: %w", err)
	}

	if err := goose.Up(kv.db, "migrations"); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	return nil
}

// Get returns the value stored under key. The second return is false when
// the key has never been set.
func (kv *KV) Get(key string) (string, bool, error) {
	var value string
	err := kv.db.QueryRow(`SELECT value FROM storage WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return value, true, nil
}

// Set stores value under key, overwriting any previous value
func (kv *KV) Set(key, value string) error {
	_, err := kv.db.Exec(`
		INSERT INTO storage (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`, key, value)
	return err
}

// Delete removes key. Deleting an absent key is not an error.
func (kv *KV) Delete(key string) error {
	_, err := kv.db.Exec(`DELETE FROM storage WHERE key = ?`, key)
	return err
}

// Close closes the underlying storage file
func (kv *KV) Close() error {
	return kv.db.Close()
}
