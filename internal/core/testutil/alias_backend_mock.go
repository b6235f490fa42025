package testutil

import (
	"context"
	"sort"
	"sync"

	"github.com/AntonioJCosta/aliasbar/internal/core/domain/alias"
)

/*
MockAliasBackend is an in-memory implementation of ports.AliasBackend.
Any of the Func fields overrides the in-memory behaviour of that method,
which lets tests inject backend failures.
*/
type MockAliasBackend struct {
	OpenFunc   func(ctx context.Context) error
	GetFunc    func(ctx context.Context, name string) (string, bool, error)
	GetAllFunc func(ctx context.Context) ([]alias.Alias, error)
	PutFunc    func(ctx context.Context, a alias.Alias) error
	DeleteFunc func(ctx context.Context, name string) error
	ClearFunc  func(ctx context.Context) error

	mu        sync.Mutex
	records   map[string]string
	OpenCalls int
}

// NewMockAliasBackend creates an empty in-memory backend.
func NewMockAliasBackend() *MockAliasBackend {
	return &MockAliasBackend{records: make(map[string]string)}
}

func (m *MockAliasBackend) Open(ctx context.Context) error {
	m.mu.Lock()
	m.OpenCalls++
	m.mu.Unlock()
	if m.OpenFunc != nil {
		return m.OpenFunc(ctx)
	}
	return nil
}

func (m *MockAliasBackend) Get(ctx context.Context, name string) (string, bool, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, name)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	destination, ok := m.records[name]
	return destination, ok, nil
}

func (m *MockAliasBackend) GetAll(ctx context.Context) ([]alias.Alias, error) {
	if m.GetAllFunc != nil {
		return m.GetAllFunc(ctx)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	all := make([]alias.Alias, 0, len(m.records))
	for name, destination := range m.records {
		all = append(all, alias.Alias{Name: name, Destination: destination})
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Name < all[j].Name })
	return all, nil
}

func (m *MockAliasBackend) Put(ctx context.Context, a alias.Alias) error {
	if m.PutFunc != nil {
		return m.PutFunc(ctx, a)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.records[a.Name] = a.Destination
	return nil
}

func (m *MockAliasBackend) Delete(ctx context.Context, name string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, name)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.records, name)
	return nil
}

func (m *MockAliasBackend) Clear(ctx context.Context) error {
	if m.ClearFunc != nil {
		return m.ClearFunc(ctx)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.records = make(map[string]string)
	return nil
}

func (m *MockAliasBackend) SchemaVersion(ctx context.Context) (int, error) {
	return 1, nil
}

// Opens returns how many times Open was called.
func (m *MockAliasBackend) Opens() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.OpenCalls
}
