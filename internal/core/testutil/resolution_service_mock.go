package testutil

import (
	"context"

	"github.com/AntonioJCosta/aliasbar/internal/core/domain/alias"
	"github.com/AntonioJCosta/aliasbar/internal/core/domain/resolution"
)

// MockResolutionService is a mock implementation of ports.ResolutionService.
type MockResolutionService struct {
	PreviewFunc         func(ctx context.Context, text string) resolution.Preview
	CommitFunc          func(ctx context.Context, text string) resolution.Result
	SnapshotFunc        func(ctx context.Context) []alias.Alias
	PreviewSnapshotFunc func(text string, snapshot []alias.Alias) resolution.Preview

	CommitCalls []string
}

func (m *MockResolutionService) Preview(ctx context.Context, text string) resolution.Preview {
	if m.PreviewFunc != nil {
		return m.PreviewFunc(ctx, text)
	}
	return resolution.Preview{}
}

func (m *MockResolutionService) Commit(ctx context.Context, text string) resolution.Result {
	m.CommitCalls = append(m.CommitCalls, text)
	if m.CommitFunc != nil {
		return m.CommitFunc(ctx, text)
	}
	return resolution.Result{}
}

func (m *MockResolutionService) Snapshot(ctx context.Context) []alias.Alias {
	if m.SnapshotFunc != nil {
		return m.SnapshotFunc(ctx)
	}
	return nil
}

func (m *MockResolutionService) PreviewSnapshot(text string, snapshot []alias.Alias) resolution.Preview {
	if m.PreviewSnapshotFunc != nil {
		return m.PreviewSnapshotFunc(text, snapshot)
	}
	return resolution.Preview{}
}
