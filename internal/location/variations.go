package location

import (
	"strings"

	"weatherlookup/internal/common"
)

// nameDelimiters are the characters a user might use to join place names.
const nameDelimiters = "/,-"

// Variations derives alternate spellings of a user-supplied city name, used to
// retry a failed lookup: each delimiter-separated segment, the name with
// delimiters collapsed to spaces, and the name with delimiters collapsed to
// hyphens. The result is deduplicated, preserves derivation order, and never
// contains the input itself, so the retry loop is finite and non-repeating.
func Variations(name string) []string {
	trimmed := strings.TrimSpace(name)

	candidates := []string{trimmed}
	candidates = append(candidates, common.SplitAny(trimmed, nameDelimiters)...)
	candidates = append(candidates,
		strings.TrimSpace(common.ReplaceAny(trimmed, nameDelimiters, " ")),
		strings.TrimSpace(common.ReplaceAny(trimmed, nameDelimiters, "-")),
	)

	seen := make(map[string]struct{}, len(candidates))
	var out []string
	for _, c := range candidates {
		if c == "" || c == name {
			continue
		}
		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}
		out = append(out, c)
	}
	return out
}
