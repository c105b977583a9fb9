package location

import "math"

// Coordinates is a WGS84 latitude/longitude pair. Zero is a legal value for
// both components (equator, prime meridian); absence of coordinates is always
// expressed by a nil *Coordinates, never by a zero value.
type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Valid reports whether both components are finite numbers.
func (c Coordinates) Valid() bool {
	return !math.IsNaN(c.Latitude) && !math.IsInf(c.Latitude, 0) &&
		!math.IsNaN(c.Longitude) && !math.IsInf(c.Longitude, 0)
}

// RawPlaceMatch mirrors one entry of the place-search response. It is
// provider-owned and never mutated; nested records are pointers so that a
// missing block can be told apart from an empty one.
type RawPlaceMatch struct {
	Key                string              `json:"Key"`
	LocalizedName      string              `json:"LocalizedName"`
	Country            *Country            `json:"Country"`
	AdministrativeArea *AdministrativeArea `json:"AdministrativeArea"`
	GeoPosition        *GeoPosition        `json:"GeoPosition"`
}

// Country is the country block of a place match.
type Country struct {
	ID            string `json:"ID"`
	LocalizedName string `json:"LocalizedName"`
}

// AdministrativeArea is the optional administrative subdivision of a place match.
type AdministrativeArea struct {
	ID            string `json:"ID"`
	LocalizedName string `json:"LocalizedName"`
}

// GeoPosition is the geo-position block of a place match.
type GeoPosition struct {
	Latitude  float64 `json:"Latitude"`
	Longitude float64 `json:"Longitude"`
}

// CountryName returns the localized country name, or "" when the country
// block is missing.
func (m RawPlaceMatch) CountryName() string {
	if m.Country == nil {
		return ""
	}
	return m.Country.LocalizedName
}

// Record is the canonical resolved location: the unit stored in the cache and
// handed to downstream consumers. It is derived 1:1 from a RawPlaceMatch.
type Record struct {
	CountryID          string  `json:"countryId"`
	Name               string  `json:"name"`
	Country            string  `json:"country"`
	AdministrativeArea string  `json:"administrativeArea"`
	Lat                float64 `json:"lat"`
	Lon                float64 `json:"lon"`
}

// NewRecord maps a place match to a Record. It fails with
// ErrIncompleteProviderData if the country or geo-position blocks are absent;
// missing fields are never substituted with defaults.
func NewRecord(m RawPlaceMatch) (Record, error) {
	if m.Country == nil || m.Country.ID == "" || m.Country.LocalizedName == "" {
		return Record{}, ErrIncompleteProviderData
	}
	if m.GeoPosition == nil {
		return Record{}, ErrIncompleteProviderData
	}

	rec := Record{
		CountryID: m.Country.ID,
		Name:      m.LocalizedName,
		Country:   m.Country.LocalizedName,
		Lat:       m.GeoPosition.Latitude,
		Lon:       m.GeoPosition.Longitude,
	}
	if m.AdministrativeArea != nil {
		rec.AdministrativeArea = m.AdministrativeArea.LocalizedName
	}
	return rec, nil
}

// Place is the city/country pair produced by reverse geocoding.
type Place struct {
	City    string `json:"city"`
	Country string `json:"country"`
}

// ForecastPayload is the multi-day forecast response, passed through to
// consumers without reinterpretation.
type ForecastPayload struct {
	Headline       Headline        `json:"Headline"`
	DailyForecasts []DailyForecast `json:"DailyForecasts"`
}

// Headline is the forecast summary line.
type Headline struct {
	EffectiveDate string `json:"EffectiveDate,omitempty"`
	Text          string `json:"Text"`
	Category      string `json:"Category,omitempty"`
}

// DailyForecast is one day of the forecast.
type DailyForecast struct {
	Date        string           `json:"Date"`
	Temperature TemperatureRange `json:"Temperature"`
	Day         DayPart          `json:"Day"`
	Night       DayPart          `json:"Night"`
}

// TemperatureRange holds the daily minimum and maximum.
type TemperatureRange struct {
	Minimum TemperatureValue `json:"Minimum"`
	Maximum TemperatureValue `json:"Maximum"`
}

// TemperatureValue is a temperature with its unit as reported by the provider.
type TemperatureValue struct {
	Value float64 `json:"Value"`
	Unit  string  `json:"Unit"`
}

// DayPart describes either the day or night half of a daily forecast.
type DayPart struct {
	Icon                   int    `json:"Icon"`
	IconPhrase             string `json:"IconPhrase"`
	HasPrecipitation       bool   `json:"HasPrecipitation"`
	PrecipitationType      string `json:"PrecipitationType,omitempty"`
	PrecipitationIntensity string `json:"PrecipitationIntensity,omitempty"`
}
