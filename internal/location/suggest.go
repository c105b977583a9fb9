package location

import (
	"context"
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"

	"weatherlookup/internal/logger"
)

const (
	// suggestMinLength is the minimum trimmed input length before any lookup.
	suggestMinLength = 2

	// maxSuggestions bounds the returned list.
	maxSuggestions = 5
)

// SuggestionEngine produces autocomplete matches for partial input.
// Suggestions are best-effort: a provider failure yields an empty list, never
// an error.
type SuggestionEngine struct {
	searcher PlaceSearcher
	log      *zap.SugaredLogger
}

func NewSuggestionEngine(searcher PlaceSearcher) *SuggestionEngine {
	return &SuggestionEngine{
		searcher: searcher,
		log:      logger.GetLogger(),
	}
}

// Suggest returns up to maxSuggestions matches for partial, deduplicated by
// the case-insensitive (name, country) pair with first-seen order preserved.
// Input shorter than suggestMinLength returns nil without a network call.
func (e *SuggestionEngine) Suggest(ctx context.Context, partial string) []RawPlaceMatch {
	trimmed := strings.TrimSpace(partial)
	if utf8.RuneCountInString(trimmed) < suggestMinLength {
		return nil
	}

	matches, err := e.searcher.SearchPlacesAll(ctx, trimmed)
	if err != nil {
		e.log.Debugw("suggestion lookup failed", "input", trimmed, "error", err)
		return nil
	}
	return dedupeMatches(matches)
}

func dedupeMatches(matches []RawPlaceMatch) []RawPlaceMatch {
	seen := make(map[string]struct{}, len(matches))
	out := make([]RawPlaceMatch, 0, maxSuggestions)
	for _, m := range matches {
		key := strings.ToLower(m.LocalizedName + ", " + m.CountryName())
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, m)
		if len(out) == maxSuggestions {
			break
		}
	}
	return out
}
