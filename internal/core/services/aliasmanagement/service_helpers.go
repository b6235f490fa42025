package aliasmanagement

import (
	"github.com/AntonioJCosta/aliasbar/internal/core/domain/alias"
)

// filterPredefined keeps the predefined aliases that are valid, not already
// stored, and not repeated earlier in the list. Kept entries are normalized.
func filterPredefined(loaded []alias.Alias, existing map[string]string) []alias.Alias {
	seen := make(map[string]bool, len(loaded))
	valid := make([]alias.Alias, 0, len(loaded))
	for _, pa := range loaded {
		if !pa.Valid() {
			continue
		}
		pa = pa.Normalize()
		if _, exists := existing[pa.Name]; exists || seen[pa.Name] {
			continue
		}
		seen[pa.Name] = true
		valid = append(valid, pa)
	}
	return valid
}
