package inputclassification

import (
	"context"
	"strings"

	"github.com/AntonioJCosta/aliasbar/internal/core/domain/alias"
	"github.com/AntonioJCosta/aliasbar/internal/core/domain/resolution"
	"github.com/AntonioJCosta/aliasbar/internal/core/ports"
)

// DefaultSearchURLTemplate is used when no search template is configured.
// The first %s is replaced with the query-escaped search text.
const DefaultSearchURLTemplate = "https://www.google.com/search?q=%s"

type service struct {
	evaluator         ports.ExpressionEvaluator
	searchURLTemplate string
}

// NewService creates a new input classifier.
// It panics if the evaluator is nil. An empty searchURLTemplate selects DefaultSearchURLTemplate.
func NewService(evaluator ports.ExpressionEvaluator, searchURLTemplate string) ports.InputClassifier {
	if evaluator == nil {
		panic("evaluator cannot be nil")
	}
	if strings.TrimSpace(searchURLTemplate) == "" {
		searchURLTemplate = DefaultSearchURLTemplate
	}
	return &service{
		evaluator:         evaluator,
		searchURLTemplate: searchURLTemplate,
	}
}

/*
Classify resolves submitted text by walking the chain below; the first
match wins.

 1. direct URL (scheme-qualified, or a bare domain which gets https://)
 2. exact alias lookup of the trimmed text
 3. localhost port: four digits, or <digits>k
 4. computed value from an arithmetic-only input
 5. web search for the verbatim text

Aliases are checked before the port and arithmetic stages so that an alias
named "3000" or "2+2" shadows the built-in interpretation.
*/
func (s *service) Classify(ctx context.Context, text string, aliases ports.AliasLookup) resolution.Result {
	trimmed := strings.TrimSpace(text)

	if result, ok := directURL(trimmed); ok {
		return result
	}

	if trimmed != "" && aliases != nil {
		if destination, found := aliases.Get(ctx, trimmed); found {
			return resolution.Result{
				Kind:        resolution.KindAlias,
				Alias:       trimmed,
				Destination: destination,
			}
		}
	}

	return s.classifyBuiltin(text, trimmed)
}

/*
Suggest is the preview form of Classify. Every snapshot alias whose name
starts with the trimmed text is returned as a suggestion, in snapshot order. The default
slot follows the same priority as Classify: a URL-like input keeps the URL,
otherwise the first alias match is promoted out of the list, otherwise the
built-in stages decide. Empty or all-whitespace text matches every alias.
*/
func (s *service) Suggest(text string, snapshot []alias.Alias) resolution.Preview {
	trimmed := strings.TrimSpace(text)
	suggestions := prefixMatches(trimmed, snapshot)

	if result, ok := directURL(trimmed); ok {
		return resolution.Preview{
			Default:     result,
			Description: describe(text, result),
			Suggestions: suggestions,
		}
	}

	if len(suggestions) > 0 {
		first := suggestions[0]
		return resolution.Preview{
			Default: resolution.Result{
				Kind:        resolution.KindAlias,
				Alias:       first.Alias,
				Destination: first.Destination,
			},
			Description: first.Description,
			Suggestions: suggestions[1:],
		}
	}

	result := s.classifyBuiltin(text, trimmed)
	return resolution.Preview{
		Default:     result,
		Description: describe(text, result),
	}
}

// classifyBuiltin runs the stages that need no alias table.
func (s *service) classifyBuiltin(text, trimmed string) resolution.Result {
	if result, ok := localhostPort(trimmed); ok {
		return result
	}
	if result, ok := s.computedValue(text); ok {
		return result
	}
	return s.searchFallback(text)
}
