package providers

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"weatherlookup/internal/location"
)

const (
	defaultGeoapifyBaseURL = "https://api.geoapify.com"

	reverseGeocodePath = "/v1/geocode/reverse"
)

// GeoapifyClient wraps the reverse-geocoding endpoint.
type GeoapifyClient struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

func NewGeoapifyClient(client *http.Client, apiKey string) *GeoapifyClient {
	return &GeoapifyClient{
		apiKey:  apiKey,
		baseURL: defaultGeoapifyBaseURL,
		client:  client,
	}
}

var _ location.ReverseGeocoder = (*GeoapifyClient)(nil)

// ReverseGeocode resolves coordinates to a city/country pair. The city-like
// field is taken in preference order city, town, village, county; both a city
// and a country must be derivable or the lookup fails.
func (c *GeoapifyClient) ReverseGeocode(ctx context.Context, coords location.Coordinates) (location.Place, error) {
	if !coords.Valid() {
		return location.Place{}, fmt.Errorf("geoapify reverse: %w", location.ErrInvalidCoordinates)
	}
	if c.apiKey == "" {
		return location.Place{}, fmt.Errorf("geoapify reverse: %w", location.ErrProviderConfig)
	}

	values := url.Values{}
	values.Set("lat", strconv.FormatFloat(coords.Latitude, 'f', -1, 64))
	values.Set("lon", strconv.FormatFloat(coords.Longitude, 'f', -1, 64))
	values.Set("apiKey", c.apiKey)

	u := fmt.Sprintf("%s%s?%s", c.baseURL, reverseGeocodePath, values.Encode())

	var payload struct {
		Features []struct {
			Properties struct {
				City        string `json:"city"`
				Town        string `json:"town"`
				Village     string `json:"village"`
				County      string `json:"county"`
				Country     string `json:"country"`
				CountryCode string `json:"country_code"`
			} `json:"properties"`
		} `json:"features"`
	}

	if err := doGetJSON(ctx, c.client, u, &payload); err != nil {
		return location.Place{}, fmt.Errorf("geoapify reverse: %w", err)
	}
	if len(payload.Features) == 0 {
		return location.Place{}, fmt.Errorf("geoapify reverse: no features for coordinates: %w", location.ErrNoLocationFound)
	}

	props := payload.Features[0].Properties

	city := props.City
	if city == "" {
		city = props.Town
	}
	if city == "" {
		city = props.Village
	}
	if city == "" {
		city = props.County
	}

	country := props.Country
	if country == "" {
		country = props.CountryCode
	}

	if city == "" || country == "" {
		return location.Place{}, fmt.Errorf("geoapify reverse: could not determine city or country: %w", location.ErrNoLocationFound)
	}

	return location.Place{City: city, Country: country}, nil
}
