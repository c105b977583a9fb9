package location

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"weatherlookup/internal/logger"
)

// Resolver turns free text or coordinates into one canonical Record. Failed
// name lookups are retried against derived variations of the name, then
// against the coordinates when available. Intermediate failures are logged and
// swallowed; only total exhaustion surfaces an error.
type Resolver struct {
	searcher PlaceSearcher
	log      *zap.SugaredLogger
}

func NewResolver(searcher PlaceSearcher) *Resolver {
	return &Resolver{
		searcher: searcher,
		log:      logger.GetLogger(),
	}
}

// Resolve produces the canonical record for the given city text and/or
// coordinates. cityText may be empty when coords is non-nil; coords may be nil
// when cityText is given.
func (r *Resolver) Resolve(ctx context.Context, cityText string, coords *Coordinates) (Record, error) {
	trimmed := strings.TrimSpace(cityText)
	if trimmed == "" && coords == nil {
		return Record{}, fmt.Errorf("%w: a city name or coordinates are required", ErrValidation)
	}

	var match *RawPlaceMatch

	if trimmed != "" {
		if err := ValidateCityName(trimmed); err != nil {
			return Record{}, err
		}

		m, err := r.searcher.SearchPlaces(ctx, trimmed)
		if err == nil {
			match = &m
		} else {
			r.log.Infow("initial search failed, trying variations", "city", trimmed, "error", err)
			for _, variation := range Variations(trimmed) {
				vm, verr := r.searcher.SearchPlaces(ctx, variation)
				if verr != nil {
					r.log.Debugw("variation failed", "variation", variation, "error", verr)
					continue
				}
				match = &vm
				break
			}
		}
	}

	if match == nil && coords != nil {
		m, err := r.searcher.SearchPlacesByCoords(ctx, *coords)
		if err != nil {
			r.log.Infow("coordinate fallback failed", "error", err)
		} else {
			match = &m
		}
	}

	if match == nil {
		return Record{}, &NotFoundError{
			AttemptedName:     trimmed,
			HadCoordsFallback: coords != nil,
		}
	}

	return NewRecord(*match)
}
