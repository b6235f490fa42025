package ports

import (
	"context"

	"github.com/AntonioJCosta/aliasbar/internal/core/domain/alias"
	"github.com/AntonioJCosta/aliasbar/internal/core/domain/resolution"
)

/*
InputClassifier decides what a line of address-bar input means.
Both methods are total over every string and never panic.
*/
type InputClassifier interface {
	// Classify runs the commit chain. It performs at most one lookup.
	Classify(ctx context.Context, text string, aliases AliasLookup) resolution.Result

	// Suggest runs the preview chain against a caller-owned snapshot.
	Suggest(text string, snapshot []alias.Alias) resolution.Preview
}
