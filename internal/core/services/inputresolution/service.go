package inputresolution

import (
	"context"

	"github.com/AntonioJCosta/aliasbar/internal/core/domain/alias"
	"github.com/AntonioJCosta/aliasbar/internal/core/domain/resolution"
	"github.com/AntonioJCosta/aliasbar/internal/core/ports"
	"go.uber.org/zap"
)

type service struct {
	classifier ports.InputClassifier
	store      ports.AliasStore
	logger     *zap.Logger
}

// NewService creates the resolution service used by the UI layer.
// It panics if the classifier or store is nil. A nil logger disables logging.
func NewService(classifier ports.InputClassifier, store ports.AliasStore, logger *zap.Logger) ports.ResolutionService {
	if classifier == nil {
		panic("classifier cannot be nil")
	}
	if store == nil {
		panic("store cannot be nil")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &service{classifier: classifier, store: store, logger: logger.Named("resolution")}
}

// Preview reads one snapshot of the alias table and classifies text against it.
// Concurrent previews are independent; callers discard stale results themselves.
func (s *service) Preview(ctx context.Context, text string) resolution.Preview {
	return s.PreviewSnapshot(text, s.Snapshot(ctx))
}

func (s *service) PreviewSnapshot(text string, snapshot []alias.Alias) resolution.Preview {
	preview := s.classifier.Suggest(text, snapshot)
	s.logger.Debug("preview",
		zap.String("input", text),
		zap.String("kind", string(preview.Default.Kind)),
		zap.Int("suggestions", len(preview.Suggestions)))
	return preview
}

func (s *service) Snapshot(ctx context.Context) []alias.Alias {
	return s.store.List(ctx)
}

// Commit resolves submitted text to its final navigation target.
func (s *service) Commit(ctx context.Context, text string) resolution.Result {
	result := s.classifier.Classify(ctx, text, s.store)
	s.logger.Debug("commit",
		zap.String("input", text),
		zap.String("kind", string(result.Kind)),
		zap.String("destination", result.Destination))
	return result
}
