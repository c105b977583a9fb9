package providers

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"weatherlookup/internal/location"
)

const (
	defaultAccuWeatherBaseURL = "https://dataservice.accuweather.com"

	citySearchPath  = "/locations/v1/cities/search"
	geoPositionPath = "/locations/v1/cities/geoposition/search"
	fiveDayPath     = "/forecasts/v1/daily/5day/"
)

// AccuWeatherClient wraps the place-search, geoposition-search, and 5-day
// forecast endpoints. It holds no state beyond its configuration; every call
// is an independent request.
type AccuWeatherClient struct {
	apiKey   string
	language string
	baseURL  string
	client   *http.Client
}

func NewAccuWeatherClient(client *http.Client, apiKey, language string) *AccuWeatherClient {
	return &AccuWeatherClient{
		apiKey:   apiKey,
		language: language,
		baseURL:  defaultAccuWeatherBaseURL,
		client:   client,
	}
}

var _ location.PlaceSearcher = (*AccuWeatherClient)(nil)
var _ location.Forecaster = (*AccuWeatherClient)(nil)

// SearchPlacesAll returns every match for a free-text query, in provider order.
func (c *AccuWeatherClient) SearchPlacesAll(ctx context.Context, query string) ([]location.RawPlaceMatch, error) {
	q := strings.TrimSpace(query)
	if q == "" {
		return nil, fmt.Errorf("accuweather search: %w", location.ErrEmptyQuery)
	}
	if c.apiKey == "" {
		return nil, fmt.Errorf("accuweather search: %w", location.ErrProviderConfig)
	}

	values := url.Values{}
	values.Set("apikey", c.apiKey)
	values.Set("q", q)
	values.Set("language", c.language)

	u := fmt.Sprintf("%s%s?%s", c.baseURL, citySearchPath, values.Encode())

	var matches []location.RawPlaceMatch
	if err := doGetJSON(ctx, c.client, u, &matches); err != nil {
		return nil, fmt.Errorf("accuweather search %q: %w", q, err)
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("accuweather search %q: %w", q, location.ErrNoLocationFound)
	}
	return matches, nil
}

// SearchPlaces returns the best match for a free-text query.
func (c *AccuWeatherClient) SearchPlaces(ctx context.Context, query string) (location.RawPlaceMatch, error) {
	matches, err := c.SearchPlacesAll(ctx, query)
	if err != nil {
		return location.RawPlaceMatch{}, err
	}
	return matches[0], nil
}

// SearchPlacesByCoords returns the match nearest to the given coordinates.
func (c *AccuWeatherClient) SearchPlacesByCoords(ctx context.Context, coords location.Coordinates) (location.RawPlaceMatch, error) {
	if !coords.Valid() {
		return location.RawPlaceMatch{}, fmt.Errorf("accuweather geoposition: %w", location.ErrInvalidCoordinates)
	}
	if c.apiKey == "" {
		return location.RawPlaceMatch{}, fmt.Errorf("accuweather geoposition: %w", location.ErrProviderConfig)
	}

	values := url.Values{}
	values.Set("apikey", c.apiKey)
	values.Set("q", formatCoords(coords))
	values.Set("language", c.language)

	u := fmt.Sprintf("%s%s?%s", c.baseURL, geoPositionPath, values.Encode())

	var match location.RawPlaceMatch
	if err := doGetJSON(ctx, c.client, u, &match); err != nil {
		return location.RawPlaceMatch{}, fmt.Errorf("accuweather geoposition: %w", err)
	}
	if match.Key == "" {
		return location.RawPlaceMatch{}, fmt.Errorf("accuweather geoposition: %w", location.ErrNoLocationFound)
	}
	return match, nil
}

// FiveDayForecast fetches the daily forecast for a resolved place key. The
// payload is returned as decoded, without reinterpretation.
func (c *AccuWeatherClient) FiveDayForecast(ctx context.Context, placeKey, language string) (*location.ForecastPayload, error) {
	if c.apiKey == "" {
		return nil, fmt.Errorf("accuweather forecast: %w", location.ErrProviderConfig)
	}
	if placeKey == "" {
		return nil, fmt.Errorf("accuweather forecast: %w", location.ErrForecastUnavailable)
	}
	if language == "" {
		language = c.language
	}

	values := url.Values{}
	values.Set("apikey", c.apiKey)
	values.Set("language", language)

	u := fmt.Sprintf("%s%s%s?%s", c.baseURL, fiveDayPath, url.PathEscape(placeKey), values.Encode())

	var payload location.ForecastPayload
	if err := doGetJSON(ctx, c.client, u, &payload); err != nil {
		return nil, fmt.Errorf("accuweather forecast for key %s: %w", placeKey, err)
	}
	return &payload, nil
}

func formatCoords(coords location.Coordinates) string {
	return strconv.FormatFloat(coords.Latitude, 'f', -1, 64) + "," +
		strconv.FormatFloat(coords.Longitude, 'f', -1, 64)
}
