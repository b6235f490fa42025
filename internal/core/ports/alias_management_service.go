package ports

import (
	"context"

	"github.com/AntonioJCosta/aliasbar/internal/core/domain/alias"
)

// AliasManagementService defines the contract for managing the alias table from the CLI.
type AliasManagementService interface {
	// SetAlias stores an alias. It returns true if the alias was newly created,
	// false if an existing alias was overwritten, and an error if the write failed.
	SetAlias(ctx context.Context, name, destination string) (bool, error)

	GetAlias(ctx context.Context, name string) (string, bool)

	// ListAliases retrieves all aliases in store order.
	ListAliases(ctx context.Context) []alias.Alias

	RemoveAlias(ctx context.Context, name string) error
	ClearAliases(ctx context.Context) error

	// GetFilteredPredefinedAliases loads the predefined aliases and drops the
	// ones that are invalid or already present in the store.
	// It returns the valid aliases, all aliases originally loaded, and any error encountered.
	GetFilteredPredefinedAliases(ctx context.Context) (validAliases []alias.Alias, allLoadedAliases []alias.Alias, err error)
}
