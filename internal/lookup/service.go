// Package lookup orchestrates the resolution pipeline: user input or device
// coordinates flow through the cached resolver to a canonical record, then
// through the forecast retriever, and the outcome is pushed to the state
// container with the loading flag bracketing the whole operation.
package lookup

import (
	"context"
	"errors"
	"strings"
	"sync"

	"go.uber.org/zap"

	"weatherlookup/internal/location"
	"weatherlookup/internal/logger"
	"weatherlookup/internal/state"
)

// Service runs the end-to-end lookup flows and owns the pipeline's only writes
// to the state container.
type Service struct {
	resolver    *location.CachedResolver
	forecasts   *location.ForecastRetriever
	suggestions *location.SuggestionEngine
	locator     location.Locator
	geocoder    location.ReverseGeocoder
	state       *state.Container
	log         *zap.SugaredLogger

	mu           sync.Mutex
	coords       *location.Coordinates
	onCityChange func(city string)
}

func NewService(
	resolver *location.CachedResolver,
	forecasts *location.ForecastRetriever,
	suggestions *location.SuggestionEngine,
	locator location.Locator,
	geocoder location.ReverseGeocoder,
	container *state.Container,
) *Service {
	return &Service{
		resolver:    resolver,
		forecasts:   forecasts,
		suggestions: suggestions,
		locator:     locator,
		geocoder:    geocoder,
		state:       container,
		log:         logger.GetLogger(),
	}
}

// OnCityChange registers a hook invoked whenever the active city changes,
// used to restart the periodic refresh.
func (s *Service) OnCityChange(fn func(city string)) {
	s.mu.Lock()
	s.onCityChange = fn
	s.mu.Unlock()
}

// Snapshot returns the current observable state.
func (s *Service) Snapshot() state.Snapshot {
	return s.state.Snapshot()
}

// Suggest returns autocomplete matches for partial input.
func (s *Service) Suggest(ctx context.Context, partial string) []location.RawPlaceMatch {
	return s.suggestions.Suggest(ctx, partial)
}

// Forecast fetches a forecast directly, without touching the observable state.
func (s *Service) Forecast(ctx context.Context, city string, coords *location.Coordinates) (*location.ForecastPayload, error) {
	return s.forecasts.GetForecast(ctx, city, coords)
}

// SearchCity runs the full resolve+forecast flow for a typed query. Validation
// failures surface before any network call and without touching the loading
// flag; all later exit paths clear it.
func (s *Service) SearchCity(ctx context.Context, query string) (state.Snapshot, error) {
	cityPart, _, _ := strings.Cut(query, ",")
	cityPart = strings.TrimSpace(cityPart)

	if err := location.ValidateCityName(cityPart); err != nil {
		s.state.SetError(userMessage(err))
		return s.state.Snapshot(), err
	}

	previous := s.state.Snapshot().City

	s.state.SetLoading(true)
	defer s.state.SetLoading(false)
	s.state.SetError("")

	rec, err := s.resolver.Resolve(ctx, cityPart, s.startCoords())
	if err != nil {
		s.log.Warnw("resolution failed", "city", cityPart, "error", err)
		s.state.SetError(userMessage(err))
		return s.state.Snapshot(), err
	}

	payload, err := s.forecasts.GetForecast(ctx, rec.Name, s.startCoords())
	if err != nil {
		s.log.Warnw("forecast fetch failed", "city", rec.Name, "error", err)
		s.state.SetError(userMessage(err))
		return s.state.Snapshot(), err
	}

	s.state.SetResolved(rec, payload)
	if !strings.EqualFold(previous, rec.Name) {
		s.cityChanged(rec.Name)
	}
	return s.state.Snapshot(), nil
}

// UseMyLocation runs the geolocation chain: current position, reverse geocode,
// resolve (with coordinate fallback), forecast.
func (s *Service) UseMyLocation(ctx context.Context) (state.Snapshot, error) {
	previous := s.state.Snapshot().City

	s.state.SetLoading(true)
	defer s.state.SetLoading(false)
	s.state.SetError("")

	coords, err := s.locator.CurrentPosition(ctx)
	if err != nil {
		s.log.Warnw("geolocation failed", "error", err)
		s.state.SetError(userMessage(err))
		return s.state.Snapshot(), err
	}
	s.setStartCoords(coords)

	var cityText string
	place, err := s.geocoder.ReverseGeocode(ctx, coords)
	if err != nil {
		s.log.Infow("reverse geocode failed, resolving by coordinates", "error", err)
	} else if location.ValidateCityName(place.City) == nil {
		cityText = place.City
	}

	rec, err := s.resolver.Resolve(ctx, cityText, &coords)
	if err != nil {
		s.log.Warnw("resolution failed", "city", cityText, "error", err)
		s.state.SetError(userMessage(err))
		return s.state.Snapshot(), err
	}

	payload, err := s.forecasts.GetForecast(ctx, rec.Name, &coords)
	if err != nil {
		s.log.Warnw("forecast fetch failed", "city", rec.Name, "error", err)
		s.state.SetError(userMessage(err))
		return s.state.Snapshot(), err
	}

	s.state.SetResolved(rec, payload)
	if !strings.EqualFold(previous, rec.Name) {
		s.cityChanged(rec.Name)
	}
	return s.state.Snapshot(), nil
}

// Refresh re-runs the resolve+fetch flow for the active city. It is a no-op
// when no city is active.
func (s *Service) Refresh(ctx context.Context) error {
	snap := s.state.Snapshot()
	if snap.City == "" {
		return nil
	}

	s.state.SetLoading(true)
	defer s.state.SetLoading(false)

	rec, err := s.resolver.Resolve(ctx, snap.City, s.startCoords())
	if err != nil {
		s.state.SetError(userMessage(err))
		return err
	}
	payload, err := s.forecasts.GetForecast(ctx, rec.Name, s.startCoords())
	if err != nil {
		s.state.SetError(userMessage(err))
		return err
	}
	s.state.SetResolved(rec, payload)
	return nil
}

func (s *Service) startCoords() *location.Coordinates {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.coords == nil {
		return nil
	}
	c := *s.coords
	return &c
}

func (s *Service) setStartCoords(coords location.Coordinates) {
	s.mu.Lock()
	s.coords = &coords
	s.mu.Unlock()
}

func (s *Service) cityChanged(city string) {
	s.mu.Lock()
	fn := s.onCityChange
	s.mu.Unlock()
	if fn != nil {
		fn(city)
	}
}

// userMessage maps a pipeline error to the human-readable message stored in
// the state's error field.
func userMessage(err error) string {
	var notFound *location.NotFoundError
	var geoErr *location.GeolocationError

	switch {
	case errors.As(err, &notFound):
		return notFound.Error() + ". Please try a different name or enable location services."
	case errors.As(err, &geoErr):
		return geoErr.Error()
	case errors.Is(err, location.ErrValidation):
		return err.Error()
	case errors.Is(err, location.ErrGeolocationUnavailable):
		return "Geolocation is not supported on this device."
	case errors.Is(err, location.ErrProviderConfig):
		return "The weather service is not configured. Please try again later."
	case errors.Is(err, location.ErrForecastUnavailable),
		errors.Is(err, location.ErrNetwork):
		return "Could not fetch forecast for the specified city."
	case errors.Is(err, location.ErrNoLocationFound):
		return "City not found. Please try another name."
	default:
		return "Could not fetch weather data. Please try again."
	}
}
