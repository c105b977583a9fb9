package location

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeForecaster struct {
	keys      []string
	languages []string
	payload   *ForecastPayload
	err       error
}

func (f *fakeForecaster) FiveDayForecast(_ context.Context, placeKey, language string) (*ForecastPayload, error) {
	f.keys = append(f.keys, placeKey)
	f.languages = append(f.languages, language)
	if f.err != nil {
		return nil, f.err
	}
	return f.payload, nil
}

func TestForecastUsesCityKey(t *testing.T) {
	searcher := &fakeSearcher{
		searchFn: func(string) (RawPlaceMatch, error) { return tokyoMatch(), nil },
	}
	forecaster := &fakeForecaster{
		payload: &ForecastPayload{Headline: Headline{Text: "Rain late"}},
	}
	fr := NewForecastRetriever(searcher, forecaster, "en-US")

	payload, err := fr.GetForecast(context.Background(), "Tokyo", nil)
	require.NoError(t, err)
	assert.Equal(t, "Rain late", payload.Headline.Text)
	assert.Equal(t, []string{"226396"}, forecaster.keys)
	assert.Equal(t, []string{"en-US"}, forecaster.languages)
	assert.Zero(t, searcher.coordCalls, "coordinates must not be consulted when the city resolves")
}

func TestForecastFallsBackToCoordinates(t *testing.T) {
	searcher := &fakeSearcher{
		coordsFn: func(Coordinates) (RawPlaceMatch, error) { return tokyoMatch(), nil },
	}
	forecaster := &fakeForecaster{payload: &ForecastPayload{}}
	fr := NewForecastRetriever(searcher, forecaster, "en-US")

	_, err := fr.GetForecast(context.Background(), "Nowhere", &Coordinates{Latitude: 35.6, Longitude: 139.6})
	require.NoError(t, err)
	assert.Equal(t, []string{"226396"}, forecaster.keys)
	assert.Equal(t, 1, searcher.coordCalls)
}

func TestForecastSkipsSearchForBlankCity(t *testing.T) {
	searcher := &fakeSearcher{
		coordsFn: func(Coordinates) (RawPlaceMatch, error) { return tokyoMatch(), nil },
	}
	forecaster := &fakeForecaster{payload: &ForecastPayload{}}
	fr := NewForecastRetriever(searcher, forecaster, "en-US")

	_, err := fr.GetForecast(context.Background(), "   ", &Coordinates{Latitude: 35.6, Longitude: 139.6})
	require.NoError(t, err)
	assert.Zero(t, searcher.searchCalls)
	assert.Equal(t, 1, searcher.coordCalls)
}

func TestForecastUnavailableWithoutKey(t *testing.T) {
	searcher := &fakeSearcher{} // every lookup misses
	forecaster := &fakeForecaster{}
	fr := NewForecastRetriever(searcher, forecaster, "en-US")

	_, err := fr.GetForecast(context.Background(), "Nowhere", nil)
	require.ErrorIs(t, err, ErrForecastUnavailable)
	assert.Empty(t, forecaster.keys)

	_, err = fr.GetForecast(context.Background(), "Nowhere", &Coordinates{Latitude: 1, Longitude: 2})
	require.ErrorIs(t, err, ErrForecastUnavailable)
	assert.Empty(t, forecaster.keys)
}

func TestForecastProviderFailureSurfaces(t *testing.T) {
	searcher := &fakeSearcher{
		searchFn: func(string) (RawPlaceMatch, error) { return tokyoMatch(), nil },
	}
	forecaster := &fakeForecaster{err: ErrNetwork}
	fr := NewForecastRetriever(searcher, forecaster, "en-US")

	_, err := fr.GetForecast(context.Background(), "Tokyo", nil)
	require.ErrorIs(t, err, ErrNetwork)
}
