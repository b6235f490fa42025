package ports

import (
	"context"

	"github.com/AntonioJCosta/aliasbar/internal/core/domain/alias"
)

/*
AliasBackend defines the contract for the durable key-value table that holds
alias records. This is a driven port, implemented by repository adapters.
Errors returned here are backend specific; AliasStore translates them.
*/
type AliasBackend interface {
	// Open acquires the underlying storage and creates the schema if absent.
	Open(ctx context.Context) error

	// Get returns the destination stored for name and whether it was found.
	Get(ctx context.Context, name string) (string, bool, error)

	// GetAll returns every record ordered by ascending alias name.
	GetAll(ctx context.Context) ([]alias.Alias, error)

	// Put inserts or overwrites a record.
	Put(ctx context.Context, a alias.Alias) error

	// Delete removes a record. Deleting an absent name is not an error.
	Delete(ctx context.Context, name string) error

	// Clear removes every record.
	Clear(ctx context.Context) error

	// SchemaVersion reports the schema version of the opened storage.
	SchemaVersion(ctx context.Context) (int, error)
}
