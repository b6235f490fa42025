package cli

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/AntonioJCosta/aliasbar/internal/core/domain/alias"
	"github.com/AntonioJCosta/aliasbar/internal/handlers/ui"
	"github.com/agnivade/levenshtein"
)

const (
	maxNearMatchDistance = 2
	maxNearMatches       = 3
)

// nearMatches returns up to maxNearMatches alias names within a small edit
// distance of name, closest first. Ties keep store order.
func nearMatches(name string, aliases []alias.Alias) []string {
	type candidate struct {
		name     string
		distance int
	}

	target := strings.ToLower(name)
	var candidates []candidate
	for _, a := range aliases {
		d := levenshtein.ComputeDistance(target, strings.ToLower(a.Name))
		if d > maxNearMatchDistance || d >= len([]rune(a.Name)) {
			continue
		}
		candidates = append(candidates, candidate{name: a.Name, distance: d})
	}
	sort.SliceStable(candidates, func(i, j int) bool { return candidates[i].distance < candidates[j].distance })

	names := make([]string, 0, maxNearMatches)
	for _, c := range candidates {
		if len(names) == maxNearMatches {
			break
		}
		names = append(names, c.name)
	}
	return names
}

func printNearMatches(out io.Writer, name string, aliases []alias.Alias) {
	matches := nearMatches(name, aliases)
	if len(matches) == 0 {
		return
	}
	names := make([]string, len(matches))
	for i, m := range matches {
		names[i] = ui.AliasNameColor(m)
	}
	fmt.Fprintln(out, ui.DetailColor("Did you mean: ")+strings.Join(names, ", ")+"?")
}
