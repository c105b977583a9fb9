package location

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"weatherlookup/internal/logger"
)

// ForecastRetriever obtains the multi-day forecast for a city name or, when
// the name yields no place key, for the fallback coordinates.
type ForecastRetriever struct {
	searcher   PlaceSearcher
	forecaster Forecaster
	language   string
	log        *zap.SugaredLogger
}

func NewForecastRetriever(searcher PlaceSearcher, forecaster Forecaster, language string) *ForecastRetriever {
	return &ForecastRetriever{
		searcher:   searcher,
		forecaster: forecaster,
		language:   language,
		log:        logger.GetLogger(),
	}
}

// GetForecast resolves a place key from city (then coords, at most once) and
// fetches the forecast for it, returned unmodified. It fails with
// ErrForecastUnavailable when no key is obtainable by either path.
func (f *ForecastRetriever) GetForecast(ctx context.Context, city string, coords *Coordinates) (*ForecastPayload, error) {
	var key string

	if strings.TrimSpace(city) != "" {
		match, err := f.searcher.SearchPlaces(ctx, city)
		if err != nil {
			f.log.Debugw("place search for forecast failed", "city", city, "error", err)
		} else {
			key = match.Key
		}
	}

	if key == "" && coords != nil {
		match, err := f.searcher.SearchPlacesByCoords(ctx, *coords)
		if err != nil {
			f.log.Debugw("coordinate search for forecast failed", "error", err)
		} else {
			key = match.Key
		}
	}

	if key == "" {
		return nil, fmt.Errorf("%w (city %q)", ErrForecastUnavailable, city)
	}

	payload, err := f.forecaster.FiveDayForecast(ctx, key, f.language)
	if err != nil {
		return nil, fmt.Errorf("fetch forecast: %w", err)
	}
	return payload, nil
}
