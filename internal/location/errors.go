package location

import (
	"errors"
	"fmt"
)

var (
	// ErrGeolocationUnavailable means no geolocation capability is configured.
	ErrGeolocationUnavailable = errors.New("geolocation is not available")

	// ErrInvalidCoordinates means a latitude/longitude pair is missing or not finite.
	ErrInvalidCoordinates = errors.New("latitude and longitude are required")

	// ErrProviderConfig means a required provider credential is unset.
	ErrProviderConfig = errors.New("provider api key is not configured")

	// ErrEmptyQuery means a search query was blank after trimming.
	ErrEmptyQuery = errors.New("search query is required")

	// ErrNoLocationFound means the provider returned zero usable results.
	ErrNoLocationFound = errors.New("no matching location found")

	// ErrIncompleteProviderData means a resolved match lacked required sub-fields.
	ErrIncompleteProviderData = errors.New("incomplete location data from provider")

	// ErrForecastUnavailable means no place key could be obtained for a forecast.
	ErrForecastUnavailable = errors.New("location key not found for forecast")

	// ErrNetwork means an upstream call returned a non-success status.
	ErrNetwork = errors.New("network response was not ok")

	// ErrValidation means user input was malformed: empty, too short, or
	// containing illegal characters.
	ErrValidation = errors.New("invalid city name")
)

// GeolocationError carries the platform's reason for a denied or timed-out
// position request.
type GeolocationError struct {
	Message string
}

func (e *GeolocationError) Error() string {
	return "geolocation error: " + e.Message
}

// NotFoundError is the terminal failure of a resolution: the name itself and
// every variation failed, and the coordinate fallback (if any) came up empty.
type NotFoundError struct {
	AttemptedName     string
	HadCoordsFallback bool
}

func (e *NotFoundError) Error() string {
	if e.HadCoordsFallback {
		return fmt.Sprintf("could not find %q or any nearby location", e.AttemptedName)
	}
	return fmt.Sprintf("could not find %q or any similar locations", e.AttemptedName)
}
