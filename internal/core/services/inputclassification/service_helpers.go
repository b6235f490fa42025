package inputclassification

import (
	"fmt"
	"math"
	"net/url"
	"regexp"
	"strconv"
	"strings"

	"github.com/AntonioJCosta/aliasbar/internal/core/domain/alias"
	"github.com/AntonioJCosta/aliasbar/internal/core/domain/resolution"
)

var (
	schemeURLPattern  = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9+.\-]*://\S+$`)
	bareDomainPattern = regexp.MustCompile(`^(?:[A-Za-z0-9](?:[A-Za-z0-9\-]*[A-Za-z0-9])?\.)+[A-Za-z]{2,63}(?::\d{1,5})?(?:[/?#]\S*)?$`)

	fourDigitPortPattern = regexp.MustCompile(`^\d{4}$`)
	kiloPortPattern      = regexp.MustCompile(`^(\d+)[kK]$`)

	// Deliberately narrower than the evaluator's whitelist: no '/' and no '.'.
	arithmeticInputPattern = regexp.MustCompile(`^[\d\s+\-()*]+$`)
)

func directURL(trimmed string) (resolution.Result, bool) {
	switch {
	case schemeURLPattern.MatchString(trimmed):
		return resolution.Result{Kind: resolution.KindDirectURL, Destination: trimmed}, true
	case bareDomainPattern.MatchString(trimmed):
		return resolution.Result{Kind: resolution.KindDirectURL, Destination: "https://" + trimmed}, true
	}
	return resolution.Result{}, false
}

func localhostPort(trimmed string) (resolution.Result, bool) {
	if fourDigitPortPattern.MatchString(trimmed) {
		port, err := strconv.Atoi(trimmed)
		if err != nil {
			return resolution.Result{}, false
		}
		return portResult(port, trimmed), true
	}

	if m := kiloPortPattern.FindStringSubmatch(trimmed); m != nil {
		thousands, err := strconv.Atoi(m[1])
		if err != nil || thousands > math.MaxInt/1000 {
			return resolution.Result{}, false
		}
		port := thousands * 1000
		return portResult(port, strconv.Itoa(port)), true
	}

	return resolution.Result{}, false
}

// portResult keeps the four-digit form verbatim so "0080" stays "0080".
func portResult(port int, display string) resolution.Result {
	return resolution.Result{
		Kind:        resolution.KindLocalhostPort,
		Port:        port,
		Destination: "http://localhost:" + display,
	}
}

func (s *service) computedValue(text string) (resolution.Result, bool) {
	if !arithmeticInputPattern.MatchString(text) {
		return resolution.Result{}, false
	}
	value, ok := s.evaluator.Evaluate(text)
	if !ok || math.IsInf(value, 0) || math.IsNaN(value) {
		return resolution.Result{}, false
	}
	if value == 0 {
		value = 0 // -0 renders as 0
	}
	return resolution.Result{
		Kind:        resolution.KindComputedValue,
		Value:       value,
		Destination: s.searchURL(formatNumber(value)),
	}, true
}

func (s *service) searchFallback(text string) resolution.Result {
	return resolution.Result{
		Kind:        resolution.KindSearchFallback,
		Query:       text,
		Destination: s.searchURL(text),
	}
}

func (s *service) searchURL(query string) string {
	return strings.Replace(s.searchURLTemplate, "%s", url.QueryEscape(query), 1)
}

func formatNumber(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}

func prefixMatches(prefix string, snapshot []alias.Alias) []resolution.Suggestion {
	var matches []resolution.Suggestion
	for _, a := range snapshot {
		if !strings.HasPrefix(a.Name, prefix) {
			continue
		}
		matches = append(matches, resolution.Suggestion{
			Alias:       a.Name,
			Destination: a.Destination,
			Description: fmt.Sprintf("%s: %s → %s", prefix, a.Name, a.Destination),
		})
	}
	return matches
}

// describe renders a plain-text, markup-free description of a default result.
func describe(text string, result resolution.Result) string {
	switch result.Kind {
	case resolution.KindDirectURL:
		return "open " + result.Destination
	case resolution.KindAlias:
		return fmt.Sprintf("%s → %s", result.Alias, result.Destination)
	case resolution.KindLocalhostPort:
		return "localhost:" + strings.TrimPrefix(result.Destination, "http://localhost:")
	case resolution.KindComputedValue:
		return "= " + formatNumber(result.Value)
	default:
		return text + " - search"
	}
}
