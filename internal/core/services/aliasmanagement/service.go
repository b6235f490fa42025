package aliasmanagement

import (
	"context"
	"fmt"

	"github.com/AntonioJCosta/aliasbar/internal/core/domain/alias"
	"github.com/AntonioJCosta/aliasbar/internal/core/ports"
)

type service struct {
	store                   ports.AliasStore
	predefinedAliasProvider ports.PredefinedAliasProvider // Can be nil if no predefined aliases are configured.
}

// NewService creates a new alias management service.
// It panics if the store is nil. predefinedAliasProvider can be nil if not used.
func NewService(store ports.AliasStore, pap ports.PredefinedAliasProvider) ports.AliasManagementService {
	if store == nil {
		panic("store cannot be nil")
	}
	return &service{store: store, predefinedAliasProvider: pap}
}

// SetAlias stores an alias, overwriting any existing destination.
// It returns true if the alias was newly created, false if it replaced an existing one.
func (s *service) SetAlias(ctx context.Context, name, destination string) (bool, error) {
	_, existed := s.store.Get(ctx, name)
	if err := s.store.Set(ctx, name, destination); err != nil {
		return false, fmt.Errorf("failed to set alias '%s': %w", name, err)
	}
	return !existed, nil
}

func (s *service) GetAlias(ctx context.Context, name string) (string, bool) {
	return s.store.Get(ctx, name)
}

// ListAliases retrieves all aliases. An unreadable store lists as empty.
func (s *service) ListAliases(ctx context.Context) []alias.Alias {
	return s.store.List(ctx)
}

func (s *service) RemoveAlias(ctx context.Context, name string) error {
	if err := s.store.Remove(ctx, name); err != nil {
		return fmt.Errorf("failed to remove alias '%s': %w", name, err)
	}
	return nil
}

func (s *service) ClearAliases(ctx context.Context) error {
	if err := s.store.Clear(ctx); err != nil {
		return fmt.Errorf("failed to clear aliases: %w", err)
	}
	return nil
}

// GetFilteredPredefinedAliases loads predefined aliases and filters them against the store.
// It returns the valid predefined aliases and the original list of all loaded predefined aliases.
func (s *service) GetFilteredPredefinedAliases(ctx context.Context) ([]alias.Alias, []alias.Alias, error) {
	if s.predefinedAliasProvider == nil {
		return []alias.Alias{}, []alias.Alias{}, nil
	}

	loaded, err := s.predefinedAliasProvider.GetPredefinedAliases()
	if err != nil {
		return nil, nil, fmt.Errorf("error loading predefined aliases: %w", err)
	}

	return filterPredefined(loaded, s.store.GetAll(ctx)), loaded, nil
}
