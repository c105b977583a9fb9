package providers

import (
	"context"
	"net/http"
	"sync"
	"time"

	"weatherlookup/internal/location"
)

// maxFixAge is how long a successful position fix may be reused instead of
// issuing a new request.
const maxFixAge = 10 * time.Second

// IPLocator approximates the device position from its public IP address via an
// ip-api style endpoint. Policy: a single attempt per call with an explicit
// timeout, and a recent fix is accepted instead of a new request. Low accuracy
// is inherent to IP positioning and acceptable here.
type IPLocator struct {
	endpoint string
	timeout  time.Duration
	client   *http.Client

	mu      sync.Mutex
	lastFix *location.Coordinates
	fixedAt time.Time
}

func NewIPLocator(client *http.Client, endpoint string, timeout time.Duration) *IPLocator {
	return &IPLocator{
		endpoint: endpoint,
		timeout:  timeout,
		client:   client,
	}
}

var _ location.Locator = (*IPLocator)(nil)

// CurrentPosition returns the device's approximate coordinates. It fails with
// location.ErrGeolocationUnavailable when no locator endpoint is configured and
// with *location.GeolocationError when the request is denied or times out.
func (l *IPLocator) CurrentPosition(ctx context.Context) (location.Coordinates, error) {
	if l.endpoint == "" {
		return location.Coordinates{}, location.ErrGeolocationUnavailable
	}

	l.mu.Lock()
	if l.lastFix != nil && time.Since(l.fixedAt) < maxFixAge {
		fix := *l.lastFix
		l.mu.Unlock()
		return fix, nil
	}
	l.mu.Unlock()

	ctx, cancel := context.WithTimeout(ctx, l.timeout)
	defer cancel()

	var payload struct {
		Status  string  `json:"status"`
		Message string  `json:"message"`
		Lat     float64 `json:"lat"`
		Lon     float64 `json:"lon"`
	}

	if err := doGetJSON(ctx, l.client, l.endpoint, &payload); err != nil {
		return location.Coordinates{}, &location.GeolocationError{Message: err.Error()}
	}
	if payload.Status != "" && payload.Status != "success" {
		msg := payload.Message
		if msg == "" {
			msg = "position request failed"
		}
		return location.Coordinates{}, &location.GeolocationError{Message: msg}
	}

	coords := location.Coordinates{Latitude: payload.Lat, Longitude: payload.Lon}
	if !coords.Valid() {
		return location.Coordinates{}, &location.GeolocationError{Message: "position has no finite coordinates"}
	}

	l.mu.Lock()
	l.lastFix = &coords
	l.fixedAt = time.Now()
	l.mu.Unlock()

	return coords, nil
}
