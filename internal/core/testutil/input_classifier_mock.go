package testutil

import (
	"context"

	"github.com/AntonioJCosta/aliasbar/internal/core/domain/alias"
	"github.com/AntonioJCosta/aliasbar/internal/core/domain/resolution"
	"github.com/AntonioJCosta/aliasbar/internal/core/ports"
)

// MockInputClassifier is a mock implementation of ports.InputClassifier.
type MockInputClassifier struct {
	ClassifyFunc func(ctx context.Context, text string, aliases ports.AliasLookup) resolution.Result
	SuggestFunc  func(text string, snapshot []alias.Alias) resolution.Preview
}

func (m *MockInputClassifier) Classify(ctx context.Context, text string, aliases ports.AliasLookup) resolution.Result {
	if m.ClassifyFunc != nil {
		return m.ClassifyFunc(ctx, text, aliases)
	}
	return resolution.Result{}
}

func (m *MockInputClassifier) Suggest(text string, snapshot []alias.Alias) resolution.Preview {
	if m.SuggestFunc != nil {
		return m.SuggestFunc(text, snapshot)
	}
	return resolution.Preview{}
}
