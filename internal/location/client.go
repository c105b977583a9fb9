package location

import "context"

// PlaceSearcher is the place-search surface of the location provider consumed
// by the resolver, suggestion engine, and forecast retriever.
type PlaceSearcher interface {
	// SearchPlaces returns the best match for a free-text query.
	SearchPlaces(ctx context.Context, query string) (RawPlaceMatch, error)

	// SearchPlacesAll returns every match for a free-text query, in provider order.
	SearchPlacesAll(ctx context.Context, query string) ([]RawPlaceMatch, error)

	// SearchPlacesByCoords returns the match nearest to the given coordinates.
	SearchPlacesByCoords(ctx context.Context, coords Coordinates) (RawPlaceMatch, error)
}

// Forecaster fetches the multi-day forecast for a resolved place key.
type Forecaster interface {
	FiveDayForecast(ctx context.Context, placeKey, language string) (*ForecastPayload, error)
}

// ReverseGeocoder turns coordinates into a city/country pair.
type ReverseGeocoder interface {
	ReverseGeocode(ctx context.Context, coords Coordinates) (Place, error)
}

// Locator reports the device's current position.
type Locator interface {
	CurrentPosition(ctx context.Context) (Coordinates, error)
}
