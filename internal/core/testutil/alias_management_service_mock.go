package testutil

import (
	"context"
	"errors"

	"github.com/AntonioJCosta/aliasbar/internal/core/domain/alias"
)

// MockAliasManagementService is a mock implementation of ports.AliasManagementService.
type MockAliasManagementService struct {
	SetAliasFunc                     func(ctx context.Context, name, destination string) (bool, error)
	GetAliasFunc                     func(ctx context.Context, name string) (string, bool)
	ListAliasesFunc                  func(ctx context.Context) []alias.Alias
	RemoveAliasFunc                  func(ctx context.Context, name string) error
	ClearAliasesFunc                 func(ctx context.Context) error
	GetFilteredPredefinedAliasesFunc func(ctx context.Context) ([]alias.Alias, []alias.Alias, error)

	SetAliasCalls     []alias.Alias
	RemoveAliasCalls  []string
	ClearAliasesCalls int
}

func (m *MockAliasManagementService) SetAlias(ctx context.Context, name, destination string) (bool, error) {
	m.SetAliasCalls = append(m.SetAliasCalls, alias.Alias{Name: name, Destination: destination})
	if m.SetAliasFunc != nil {
		return m.SetAliasFunc(ctx, name, destination)
	}
	return false, errors.New("MockAliasManagementService: SetAliasFunc not implemented")
}

func (m *MockAliasManagementService) GetAlias(ctx context.Context, name string) (string, bool) {
	if m.GetAliasFunc != nil {
		return m.GetAliasFunc(ctx, name)
	}
	return "", false
}

func (m *MockAliasManagementService) ListAliases(ctx context.Context) []alias.Alias {
	if m.ListAliasesFunc != nil {
		return m.ListAliasesFunc(ctx)
	}
	return nil
}

func (m *MockAliasManagementService) RemoveAlias(ctx context.Context, name string) error {
	m.RemoveAliasCalls = append(m.RemoveAliasCalls, name)
	if m.RemoveAliasFunc != nil {
		return m.RemoveAliasFunc(ctx, name)
	}
	return nil
}

func (m *MockAliasManagementService) ClearAliases(ctx context.Context) error {
	m.ClearAliasesCalls++
	if m.ClearAliasesFunc != nil {
		return m.ClearAliasesFunc(ctx)
	}
	return nil
}

func (m *MockAliasManagementService) GetFilteredPredefinedAliases(ctx context.Context) ([]alias.Alias, []alias.Alias, error) {
	if m.GetFilteredPredefinedAliasesFunc != nil {
		return m.GetFilteredPredefinedAliasesFunc(ctx)
	}
	return []alias.Alias{}, []alias.Alias{}, nil
}
