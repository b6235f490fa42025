// Package aliastable stores aliases in an embedded SQLite table.
package aliastable

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/AntonioJCosta/aliasbar/internal/core/domain/alias"
	"github.com/AntonioJCosta/aliasbar/internal/core/ports"
	_ "modernc.org/sqlite"
)

// MemoryPath opens a private in-memory database.
const MemoryPath = ":memory:"

// Backend implements ports.AliasBackend on top of a single SQLite table.
type Backend struct {
	path string

	mu sync.Mutex
	db *sql.DB
}

// NewBackend creates a backend for the database file at path. Nothing is
// opened until Open is called.
func NewBackend(path string) (*Backend, error) {
	if path == "" {
		return nil, fmt.Errorf("database path cannot be empty")
	}
	return &Backend{path: path}, nil
}

var _ ports.AliasBackend = (*Backend)(nil)

// Open opens the database and applies the schema migrations. Calling it
// again after a successful open is a no-op.
func (b *Backend) Open(ctx context.Context) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.db != nil {
		return nil
	}

	if b.path != MemoryPath {
		if err := os.MkdirAll(filepath.Dir(b.path), 0755); err != nil {
			return fmt.Errorf("failed to create directory for %s: %w", b.path, err)
		}
	}

	db, err := sql.Open("sqlite", b.path)
	if err != nil {
		return fmt.Errorf("failed to open database %s: %w", b.path, err)
	}
	db.SetMaxOpenConns(1) // sqlite; also keeps :memory: on one connection
	db.SetConnMaxLifetime(0)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to connect to database %s: %w", b.path, err)
	}
	if err := runMigrations(db); err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to migrate database %s: %w", b.path, err)
	}

	b.db = db
	return nil
}

// Close releases the database. The store never calls it; the process owner does.
func (b *Backend) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.db == nil {
		return nil
	}
	err := b.db.Close()
	b.db = nil
	return err
}

func (b *Backend) conn() (*sql.DB, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.db == nil {
		return nil, errors.New("database not open")
	}
	return b.db, nil
}

func (b *Backend) Get(ctx context.Context, name string) (string, bool, error) {
	db, err := b.conn()
	if err != nil {
		return "", false, err
	}
	var destination string
	err = db.QueryRowContext(ctx, `SELECT destination FROM aliases WHERE alias = ?`, name).Scan(&destination)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("query alias %q: %w", name, err)
	}
	return destination, true, nil
}

// GetAll returns records ordered by alias using SQLite's binary collation.
func (b *Backend) GetAll(ctx context.Context) ([]alias.Alias, error) {
	db, err := b.conn()
	if err != nil {
		return nil, err
	}
	rows, err := db.QueryContext(ctx, `SELECT alias, destination FROM aliases ORDER BY alias`)
	if err != nil {
		return nil, fmt.Errorf("query aliases: %w", err)
	}
	defer rows.Close()

	var all []alias.Alias
	for rows.Next() {
		var a alias.Alias
		if err := rows.Scan(&a.Name, &a.Destination); err != nil {
			return nil, fmt.Errorf("scan alias: %w", err)
		}
		all = append(all, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate aliases: %w", err)
	}
	return all, nil
}

func (b *Backend) Put(ctx context.Context, a alias.Alias) error {
	db, err := b.conn()
	if err != nil {
		return err
	}
	_, err = db.ExecContext(ctx, `
		INSERT INTO aliases (alias, destination) VALUES (?, ?)
		ON CONFLICT(alias) DO UPDATE SET destination = excluded.destination
	`, a.Name, a.Destination)
	if err != nil {
		return fmt.Errorf("upsert alias %q: %w", a.Name, err)
	}
	return nil
}

func (b *Backend) Delete(ctx context.Context, name string) error {
	db, err := b.conn()
	if err != nil {
		return err
	}
	if _, err := db.ExecContext(ctx, `DELETE FROM aliases WHERE alias = ?`, name); err != nil {
		return fmt.Errorf("delete alias %q: %w", name, err)
	}
	return nil
}

func (b *Backend) Clear(ctx context.Context) error {
	db, err := b.conn()
	if err != nil {
		return err
	}
	if _, err := db.ExecContext(ctx, `DELETE FROM aliases`); err != nil {
		return fmt.Errorf("clear aliases: %w", err)
	}
	return nil
}
