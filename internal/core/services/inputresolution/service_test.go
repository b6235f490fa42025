package inputresolution

import (
	"context"
	"testing"

	"github.com/AntonioJCosta/aliasbar/internal/adapters/arithmetic"
	"github.com/AntonioJCosta/aliasbar/internal/core/domain/alias"
	"github.com/AntonioJCosta/aliasbar/internal/core/domain/resolution"
	"github.com/AntonioJCosta/aliasbar/internal/core/ports"
	"github.com/AntonioJCosta/aliasbar/internal/core/services/aliasstore"
	"github.com/AntonioJCosta/aliasbar/internal/core/services/inputclassification"
	"github.com/AntonioJCosta/aliasbar/internal/core/testutil"
	"go.uber.org/zap/zaptest"
)

func TestNewService(t *testing.T) {
	t.Run("should panic if classifier is nil", func(t *testing.T) {
		defer func() {
			if r := recover(); r == nil {
				t.Error("NewService did not panic with nil classifier")
			}
		}()
		_ = NewService(nil, &testutil.MockAliasStore{}, nil)
	})

	t.Run("should panic if store is nil", func(t *testing.T) {
		defer func() {
			if r := recover(); r == nil {
				t.Error("NewService did not panic with nil store")
			}
		}()
		_ = NewService(&testutil.MockInputClassifier{}, nil, nil)
	})
}

func TestService_Preview_PassesOneSnapshot(t *testing.T) {
	snapshot := []alias.Alias{{Name: "gh", Destination: "https://github.com"}}
	listCalls := 0
	store := &testutil.MockAliasStore{
		ListFunc: func(context.Context) []alias.Alias {
			listCalls++
			return snapshot
		},
	}
	var gotSnapshot []alias.Alias
	classifier := &testutil.MockInputClassifier{
		SuggestFunc: func(text string, s []alias.Alias) resolution.Preview {
			gotSnapshot = s
			return resolution.Preview{Default: resolution.Result{Kind: resolution.KindAlias}}
		},
	}

	svc := NewService(classifier, store, zaptest.NewLogger(t))
	got := svc.Preview(context.Background(), "g")

	if listCalls != 1 {
		t.Errorf("List called %d times, want 1", listCalls)
	}
	if len(store.GetCalls) != 0 {
		t.Errorf("Get called during preview: %v", store.GetCalls)
	}
	if len(gotSnapshot) != 1 || gotSnapshot[0] != snapshot[0] {
		t.Errorf("classifier received snapshot %v, want %v", gotSnapshot, snapshot)
	}
	if got.Default.Kind != resolution.KindAlias {
		t.Errorf("Preview().Default.Kind = %q, want %q", got.Default.Kind, resolution.KindAlias)
	}
}

func TestService_Commit_UsesStoreAsLookup(t *testing.T) {
	store := &testutil.MockAliasStore{}
	var gotLookup ports.AliasLookup
	classifier := &testutil.MockInputClassifier{
		ClassifyFunc: func(_ context.Context, text string, aliases ports.AliasLookup) resolution.Result {
			gotLookup = aliases
			return resolution.Result{Kind: resolution.KindSearchFallback, Query: text}
		},
	}

	svc := NewService(classifier, store, nil)
	got := svc.Commit(context.Background(), "hello")

	if gotLookup != store {
		t.Errorf("classifier received lookup %v, want the store", gotLookup)
	}
	if got.Query != "hello" {
		t.Errorf("Commit().Query = %q, want %q", got.Query, "hello")
	}
}

// End to end through the real store, classifier and evaluator.
func TestService_EndToEnd(t *testing.T) {
	ctx := context.Background()
	store := aliasstore.NewService(testutil.NewMockAliasBackend(), zaptest.NewLogger(t))
	classifier := inputclassification.NewService(arithmetic.NewEvaluator(), "https://search.example/?q=%s")
	svc := NewService(classifier, store, zaptest.NewLogger(t))

	if err := store.Set(ctx, "3000", "http://internal"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if err := store.Set(ctx, "gh", "https://github.com"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	tests := []struct {
		text            string
		wantKind        resolution.Kind
		wantDestination string
	}{
		{text: "3000", wantKind: resolution.KindAlias, wantDestination: "http://internal"},
		{text: "2k", wantKind: resolution.KindLocalhostPort, wantDestination: "http://localhost:2000"},
		{text: "github.com", wantKind: resolution.KindDirectURL, wantDestination: "https://github.com"},
		{text: "gh", wantKind: resolution.KindAlias, wantDestination: "https://github.com"},
		{text: "2+2", wantKind: resolution.KindComputedValue, wantDestination: "https://search.example/?q=4"},
		{text: "2/0", wantKind: resolution.KindSearchFallback, wantDestination: "https://search.example/?q=2%2F0"},
		{text: "hello world", wantKind: resolution.KindSearchFallback, wantDestination: "https://search.example/?q=hello+world"},
	}
	for _, tt := range tests {
		got := svc.Commit(ctx, tt.text)
		if got.Kind != tt.wantKind || got.Destination != tt.wantDestination {
			t.Errorf("Commit(%q) = (%q, %q), want (%q, %q)", tt.text, got.Kind, got.Destination, tt.wantKind, tt.wantDestination)
		}
	}

	preview := svc.Preview(ctx, "")
	if preview.Default.Alias != "3000" || len(preview.Suggestions) != 1 || preview.Suggestions[0].Alias != "gh" {
		t.Errorf("Preview(\"\") = %+v, want 3000 promoted and gh listed", preview)
	}

	snapshot := svc.Snapshot(ctx)
	if err := store.Remove(ctx, "gh"); err != nil {
		t.Fatalf("Remove() error = %v", err)
	}
	if got := svc.PreviewSnapshot("g", snapshot); got.Default.Alias != "gh" {
		t.Errorf("PreviewSnapshot() default = %+v, want gh from the held snapshot", got.Default)
	}
	if got := svc.Preview(ctx, "g"); got.Default.Kind != resolution.KindSearchFallback {
		t.Errorf("Preview() after remove default = %+v, want search fallback", got.Default)
	}
}
