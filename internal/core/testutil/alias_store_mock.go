package testutil

import (
	"context"
	"errors"

	"github.com/AntonioJCosta/aliasbar/internal/core/domain/alias"
)

// MockAliasStore is a mock implementation of ports.AliasStore for testing.
type MockAliasStore struct {
	OpenFunc   func(ctx context.Context) error
	SetFunc    func(ctx context.Context, name, destination string) error
	GetFunc    func(ctx context.Context, name string) (string, bool)
	GetAllFunc func(ctx context.Context) map[string]string
	ListFunc   func(ctx context.Context) []alias.Alias
	RemoveFunc func(ctx context.Context, name string) error
	ClearFunc  func(ctx context.Context) error

	GetCalls []string
}

func (m *MockAliasStore) Open(ctx context.Context) error {
	if m.OpenFunc != nil {
		return m.OpenFunc(ctx)
	}
	return nil
}

func (m *MockAliasStore) Set(ctx context.Context, name, destination string) error {
	if m.SetFunc != nil {
		return m.SetFunc(ctx, name, destination)
	}
	return errors.New("MockAliasStore: SetFunc not implemented")
}

func (m *MockAliasStore) Get(ctx context.Context, name string) (string, bool) {
	m.GetCalls = append(m.GetCalls, name)
	if m.GetFunc != nil {
		return m.GetFunc(ctx, name)
	}
	return "", false
}

func (m *MockAliasStore) GetAll(ctx context.Context) map[string]string {
	if m.GetAllFunc != nil {
		return m.GetAllFunc(ctx)
	}
	return map[string]string{}
}

func (m *MockAliasStore) List(ctx context.Context) []alias.Alias {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil
}

func (m *MockAliasStore) Remove(ctx context.Context, name string) error {
	if m.RemoveFunc != nil {
		return m.RemoveFunc(ctx, name)
	}
	return errors.New("MockAliasStore: RemoveFunc not implemented")
}

func (m *MockAliasStore) Clear(ctx context.Context) error {
	if m.ClearFunc != nil {
		return m.ClearFunc(ctx)
	}
	return errors.New("MockAliasStore: ClearFunc not implemented")
}
