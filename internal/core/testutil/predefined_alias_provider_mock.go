package testutil

import "github.com/AntonioJCosta/aliasbar/internal/core/domain/alias"

// MockPredefinedAliasProvider is a mock implementation of ports.PredefinedAliasProvider.
type MockPredefinedAliasProvider struct {
	GetPredefinedAliasesFunc func() ([]alias.Alias, error)
}

func (m *MockPredefinedAliasProvider) GetPredefinedAliases() ([]alias.Alias, error) {
	if m.GetPredefinedAliasesFunc != nil {
		return m.GetPredefinedAliasesFunc()
	}
	return []alias.Alias{}, nil
}
