package ports

import (
	"context"

	"github.com/AntonioJCosta/aliasbar/internal/core/domain/alias"
)

// AliasLookup is the read-only view of the alias table the classifier needs.
type AliasLookup interface {
	Get(ctx context.Context, name string) (string, bool)
}

/*
AliasStore is the versioned, persistent alias table consulted by the
classifier. Reads fail open and never return errors; writes fail closed.
*/
type AliasStore interface {
	AliasLookup

	// Open is idempotent. Every other method calls it implicitly.
	Open(ctx context.Context) error

	// Set upserts a record. It returns alias.ErrInvalidArgument when either
	// value is empty after trimming.
	Set(ctx context.Context, name, destination string) error

	// GetAll returns the full mapping, or an empty map if the backend fails.
	GetAll(ctx context.Context) map[string]string

	// List returns the records in backend iteration order, or nil if the backend fails.
	List(ctx context.Context) []alias.Alias

	Remove(ctx context.Context, name string) error
	Clear(ctx context.Context) error
}
