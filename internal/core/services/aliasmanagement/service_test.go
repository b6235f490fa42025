package aliasmanagement

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/AntonioJCosta/aliasbar/internal/core/domain/alias"
	"github.com/AntonioJCosta/aliasbar/internal/core/testutil"
)

func TestNewService(t *testing.T) {
	t.Run("should return a service if store is not nil", func(t *testing.T) {
		svc := NewService(&testutil.MockAliasStore{}, nil)
		if svc == nil {
			t.Fatal("NewService() returned nil, expected a service instance")
		}
	})

	t.Run("should panic if store is nil", func(t *testing.T) {
		defer func() {
			if r := recover(); r == nil {
				t.Error("NewService did not panic with nil store")
			}
		}()
		_ = NewService(nil, nil)
	})
}

func TestService_SetAlias(t *testing.T) {
	storeErr := errors.New("store error")

	tests := []struct {
		name        string
		aliasName   string
		destination string
		setupMock   func(mockStore *testutil.MockAliasStore)
		wantCreated bool
		wantErr     error
	}{
		{
			name:        "success - alias newly created",
			aliasName:   "gh",
			destination: "https://github.com",
			setupMock: func(mockStore *testutil.MockAliasStore) {
				mockStore.SetFunc = func(_ context.Context, name, destination string) error {
					if name != "gh" || destination != "https://github.com" {
						t.Errorf("Set received (%q, %q)", name, destination)
					}
					return nil
				}
			},
			wantCreated: true,
		},
		{
			name:        "success - existing alias overwritten",
			aliasName:   "gh",
			destination: "https://github.com/new",
			setupMock: func(mockStore *testutil.MockAliasStore) {
				mockStore.GetFunc = func(context.Context, string) (string, bool) {
					return "https://github.com", true
				}
				mockStore.SetFunc = func(context.Context, string, string) error { return nil }
			},
			wantCreated: false,
		},
		{
			name:        "failure - invalid argument",
			aliasName:   " ",
			destination: "https://github.com",
			setupMock: func(mockStore *testutil.MockAliasStore) {
				mockStore.SetFunc = func(context.Context, string, string) error {
					return alias.ErrInvalidArgument
				}
			},
			wantErr: alias.ErrInvalidArgument,
		},
		{
			name:        "failure - store returns error",
			aliasName:   "gh",
			destination: "https://github.com",
			setupMock: func(mockStore *testutil.MockAliasStore) {
				mockStore.SetFunc = func(context.Context, string, string) error { return storeErr }
			},
			wantErr: storeErr,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockStore := &testutil.MockAliasStore{}
			if tt.setupMock != nil {
				tt.setupMock(mockStore)
			}
			svc := NewService(mockStore, nil)

			gotCreated, err := svc.SetAlias(context.Background(), tt.aliasName, tt.destination)

			if !errors.Is(err, tt.wantErr) {
				t.Errorf("SetAlias() error = %v, want %v", err, tt.wantErr)
			}
			if gotCreated != tt.wantCreated {
				t.Errorf("SetAlias() created = %v, want %v", gotCreated, tt.wantCreated)
			}
		})
	}
}

func TestService_RemoveAndClear(t *testing.T) {
	storeErr := errors.New("store error")
	mockStore := &testutil.MockAliasStore{
		RemoveFunc: func(context.Context, string) error { return storeErr },
		ClearFunc:  func(context.Context) error { return nil },
	}
	svc := NewService(mockStore, nil)

	err := svc.RemoveAlias(context.Background(), "gh")
	if !errors.Is(err, storeErr) {
		t.Errorf("RemoveAlias() error = %v, want %v", err, storeErr)
	}
	if err := svc.ClearAliases(context.Background()); err != nil {
		t.Errorf("ClearAliases() unexpected error = %v", err)
	}
}

func TestService_ListAliases(t *testing.T) {
	expected := []alias.Alias{
		{Name: "gh", Destination: "https://github.com"},
		{Name: "yt", Destination: "https://youtube.com"},
	}
	mockStore := &testutil.MockAliasStore{
		ListFunc: func(context.Context) []alias.Alias { return expected },
	}
	svc := NewService(mockStore, nil)

	if got := svc.ListAliases(context.Background()); !reflect.DeepEqual(got, expected) {
		t.Errorf("ListAliases() = %v, want %v", got, expected)
	}
}

func TestService_GetFilteredPredefinedAliases(t *testing.T) {
	loadErr := errors.New("yaml broken")
	loaded := []alias.Alias{
		{Name: "gh", Destination: "https://github.com"},
		{Name: " yt ", Destination: " https://youtube.com "},
		{Name: "", Destination: "https://empty-name.example"},
		{Name: "hn", Destination: ""},
		{Name: "yt", Destination: "https://duplicate.example"},
		{Name: "pkg", Destination: "https://pkg.go.dev"},
	}

	tests := []struct {
		name      string
		provider  *testutil.MockPredefinedAliasProvider
		existing  map[string]string
		wantValid []alias.Alias
		wantAll   []alias.Alias
		wantErr   error
	}{
		{
			name:      "no provider configured",
			provider:  nil,
			wantValid: []alias.Alias{},
			wantAll:   []alias.Alias{},
		},
		{
			name: "filters invalid, duplicate and existing aliases",
			provider: &testutil.MockPredefinedAliasProvider{
				GetPredefinedAliasesFunc: func() ([]alias.Alias, error) { return loaded, nil },
			},
			existing: map[string]string{"pkg": "https://mine.example"},
			wantValid: []alias.Alias{
				{Name: "gh", Destination: "https://github.com"},
				{Name: "yt", Destination: "https://youtube.com"},
			},
			wantAll: loaded,
		},
		{
			name: "provider error is propagated",
			provider: &testutil.MockPredefinedAliasProvider{
				GetPredefinedAliasesFunc: func() ([]alias.Alias, error) { return nil, loadErr },
			},
			wantErr: loadErr,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockStore := &testutil.MockAliasStore{
				GetAllFunc: func(context.Context) map[string]string {
					if tt.existing == nil {
						return map[string]string{}
					}
					return tt.existing
				},
			}
			var svc = NewService(mockStore, nil)
			if tt.provider != nil {
				svc = NewService(mockStore, tt.provider)
			}

			gotValid, gotAll, err := svc.GetFilteredPredefinedAliases(context.Background())
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("GetFilteredPredefinedAliases() error = %v, want %v", err, tt.wantErr)
			}
			if tt.wantErr != nil {
				return
			}
			if !reflect.DeepEqual(gotValid, tt.wantValid) {
				t.Errorf("valid = %v, want %v", gotValid, tt.wantValid)
			}
			if !reflect.DeepEqual(gotAll, tt.wantAll) {
				t.Errorf("all = %v, want %v", gotAll, tt.wantAll)
			}
		})
	}
}
