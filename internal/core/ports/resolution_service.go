package ports

import (
	"context"

	"github.com/AntonioJCosta/aliasbar/internal/core/domain/alias"
	"github.com/AntonioJCosta/aliasbar/internal/core/domain/resolution"
)

// ResolutionService is the entry point used by the UI and browser integration layers.
type ResolutionService interface {
	// Preview classifies without side effects, for live suggestions.
	Preview(ctx context.Context, text string) resolution.Preview

	// Commit classifies submitted input and returns the final navigation target.
	Commit(ctx context.Context, text string) resolution.Result

	// Snapshot reads the alias table once so a caller can reuse it across keystrokes.
	Snapshot(ctx context.Context) []alias.Alias

	// PreviewSnapshot is Preview against a snapshot obtained from Snapshot.
	PreviewSnapshot(text string, snapshot []alias.Alias) resolution.Preview
}
