package providers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"weatherlookup/internal/location"
)

func newAccuWeatherTestClient(t *testing.T, handler http.HandlerFunc) *AccuWeatherClient {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c := NewAccuWeatherClient(srv.Client(), "test-key", "en-US")
	c.baseURL = srv.URL
	return c
}

func TestAccuWeatherSearchPlaces(t *testing.T) {
	var gotQuery, gotKey string
	c := newAccuWeatherTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, citySearchPath, r.URL.Path)
		gotQuery = r.URL.Query().Get("q")
		gotKey = r.URL.Query().Get("apikey")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[
			{"Key":"226396","LocalizedName":"Tokyo","Country":{"ID":"JP","LocalizedName":"Japan"},"GeoPosition":{"Latitude":35.6,"Longitude":139.6}},
			{"Key":"12345","LocalizedName":"Tokyo","Country":{"ID":"US","LocalizedName":"United States"}}
		]`))
	})

	match, err := c.SearchPlaces(context.Background(), "Tokyo")
	require.NoError(t, err)
	assert.Equal(t, "Tokyo", gotQuery)
	assert.Equal(t, "test-key", gotKey)
	assert.Equal(t, "226396", match.Key)
	require.NotNil(t, match.Country)
	assert.Equal(t, "Japan", match.Country.LocalizedName)
}

func TestAccuWeatherSearchEmptyQuery(t *testing.T) {
	c := NewAccuWeatherClient(http.DefaultClient, "test-key", "en-US")

	_, err := c.SearchPlacesAll(context.Background(), "   ")
	require.ErrorIs(t, err, location.ErrEmptyQuery)
}

func TestAccuWeatherSearchMissingAPIKey(t *testing.T) {
	c := NewAccuWeatherClient(http.DefaultClient, "", "en-US")

	_, err := c.SearchPlacesAll(context.Background(), "Tokyo")
	require.ErrorIs(t, err, location.ErrProviderConfig)
}

func TestAccuWeatherSearchNoMatches(t *testing.T) {
	c := newAccuWeatherTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[]`))
	})

	_, err := c.SearchPlaces(context.Background(), "Xyzzy")
	require.ErrorIs(t, err, location.ErrNoLocationFound)
}

func TestAccuWeatherSearchServerError(t *testing.T) {
	c := newAccuWeatherTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	})

	_, err := c.SearchPlaces(context.Background(), "Tokyo")
	require.ErrorIs(t, err, location.ErrNetwork)
}

func TestAccuWeatherSearchByCoords(t *testing.T) {
	var gotQ string
	c := newAccuWeatherTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, geoPositionPath, r.URL.Path)
		gotQ = r.URL.Query().Get("q")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"Key":"226396","LocalizedName":"Tokyo","Country":{"ID":"JP","LocalizedName":"Japan"},"GeoPosition":{"Latitude":35.6,"Longitude":139.6}}`))
	})

	match, err := c.SearchPlacesByCoords(context.Background(), location.Coordinates{Latitude: 35.6, Longitude: 139.6})
	require.NoError(t, err)
	assert.Equal(t, "35.6,139.6", gotQ)
	assert.Equal(t, "226396", match.Key)
}

func TestAccuWeatherSearchByZeroCoords(t *testing.T) {
	// 0,0 is a legal position and must reach the provider unchanged.
	var gotQ string
	c := newAccuWeatherTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotQ = r.URL.Query().Get("q")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"Key":"1","LocalizedName":"Null Island","Country":{"ID":"XX","LocalizedName":"Nowhere"},"GeoPosition":{"Latitude":0,"Longitude":0}}`))
	})

	match, err := c.SearchPlacesByCoords(context.Background(), location.Coordinates{})
	require.NoError(t, err)
	assert.Equal(t, "0,0", gotQ)
	assert.Equal(t, "1", match.Key)
}

func TestAccuWeatherSearchByCoordsMiss(t *testing.T) {
	c := newAccuWeatherTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{}`))
	})

	_, err := c.SearchPlacesByCoords(context.Background(), location.Coordinates{Latitude: 1, Longitude: 2})
	require.ErrorIs(t, err, location.ErrNoLocationFound)
}

func TestAccuWeatherFiveDayForecast(t *testing.T) {
	c := newAccuWeatherTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, fiveDayPath+"226396", r.URL.Path)
		assert.Equal(t, "en-US", r.URL.Query().Get("language"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"Headline":{"Text":"Rain late"},
			"DailyForecasts":[
				{"Date":"2026-08-27T07:00:00+09:00",
				 "Temperature":{"Minimum":{"Value":70,"Unit":"F"},"Maximum":{"Value":86,"Unit":"F"}},
				 "Day":{"Icon":12,"IconPhrase":"Showers","HasPrecipitation":true,"PrecipitationType":"Rain"},
				 "Night":{"Icon":35,"IconPhrase":"Partly cloudy"}}
			]
		}`))
	})

	payload, err := c.FiveDayForecast(context.Background(), "226396", "en-US")
	require.NoError(t, err)
	assert.Equal(t, "Rain late", payload.Headline.Text)
	require.Len(t, payload.DailyForecasts, 1)
	assert.Equal(t, 86.0, payload.DailyForecasts[0].Temperature.Maximum.Value)
	assert.True(t, payload.DailyForecasts[0].Day.HasPrecipitation)
}

func TestAccuWeatherForecastEmptyKey(t *testing.T) {
	c := NewAccuWeatherClient(http.DefaultClient, "test-key", "en-US")

	_, err := c.FiveDayForecast(context.Background(), "", "en-US")
	require.ErrorIs(t, err, location.ErrForecastUnavailable)
}
