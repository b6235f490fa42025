package ports

import "github.com/AntonioJCosta/aliasbar/internal/core/domain/alias"

// PredefinedAliasProvider defines the interface for sourcing a starter set of
// aliases, either bundled with the binary or from a user-supplied YAML file.
type PredefinedAliasProvider interface {
	// GetPredefinedAliases loads aliases from the predefined source.
	GetPredefinedAliases() ([]alias.Alias, error)
}
