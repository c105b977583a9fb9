package httpapi

import (
	"errors"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"weatherlookup/internal/location"
	"weatherlookup/internal/lookup"
	"weatherlookup/internal/units"
)

var validate = validator.New()

func init() {
	// cityname mirrors the pipeline's own input rule so malformed queries are
	// rejected before the handler runs.
	_ = validate.RegisterValidation("cityname", func(fl validator.FieldLevel) bool {
		return location.ValidateCityName(fl.Field().String()) == nil
	})
}

// RegisterRoutes wires the HTTP handlers into the Fiber app.
func RegisterRoutes(app *fiber.App, service *lookup.Service) {
	v1 := app.Group("/api/v1")

	v1.Get("/suggest", func(c *fiber.Ctx) error {
		matches := service.Suggest(c.UserContext(), c.Query("q"))
		if matches == nil {
			matches = []location.RawPlaceMatch{}
		}
		return c.JSON(fiber.Map{"suggestions": matches})
	})

	v1.Post("/search", func(c *fiber.Ctx) error {
		req := searchQuery{Query: c.Query("q")}
		if err := validate.Struct(req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest,
				"city name must be at least 2 characters and contain only letters, spaces, commas, and hyphens")
		}

		snapshot, err := service.SearchCity(c.UserContext(), req.Query)
		if err != nil {
			return c.Status(statusForError(err)).JSON(snapshot)
		}
		return c.JSON(snapshot)
	})

	v1.Post("/locate", func(c *fiber.Ctx) error {
		snapshot, err := service.UseMyLocation(c.UserContext())
		if err != nil {
			return c.Status(statusForError(err)).JSON(snapshot)
		}
		return c.JSON(snapshot)
	})

	v1.Get("/state", func(c *fiber.Ctx) error {
		snapshot := service.Snapshot()
		return c.JSON(fiber.Map{
			"city":     snapshot.City,
			"country":  snapshot.Country,
			"error":    snapshot.Error,
			"loading":  snapshot.Loading,
			"forecast": snapshot.Forecast,
			"today":    todaySummary(snapshot.Forecast),
		})
	})

	v1.Get("/forecast", func(c *fiber.Ctx) error {
		city, coords, err := parseForecastQuery(c)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		payload, err := service.Forecast(c.UserContext(), city, coords)
		if err != nil {
			return fiber.NewError(statusForError(err), err.Error())
		}
		return c.JSON(payload)
	})
}

// searchQuery holds the query parameter for the search endpoint.
type searchQuery struct {
	Query string `validate:"required,cityname"`
}

// parseForecastQuery reads city and optional lat/lon. Presence of coordinates
// is decided by the parameters being set, never by their numeric value, so a
// zero latitude or longitude is accepted.
func parseForecastQuery(c *fiber.Ctx) (string, *location.Coordinates, error) {
	city := strings.TrimSpace(c.Query("city"))
	latStr := c.Query("lat")
	lonStr := c.Query("lon")

	if (latStr == "") != (lonStr == "") {
		return "", nil, errors.New("lat and lon must be provided together")
	}

	var coords *location.Coordinates
	if latStr != "" {
		lat, err := strconv.ParseFloat(latStr, 64)
		if err != nil {
			return "", nil, errors.New("invalid lat")
		}
		lon, err := strconv.ParseFloat(lonStr, 64)
		if err != nil {
			return "", nil, errors.New("invalid lon")
		}
		coords = &location.Coordinates{Latitude: lat, Longitude: lon}
		if !coords.Valid() {
			return "", nil, errors.New("lat and lon must be finite")
		}
	}

	if city == "" && coords == nil {
		return "", nil, errors.New("city or lat/lon query parameters are required")
	}
	return city, coords, nil
}

// statusForError maps pipeline errors to HTTP status codes.
func statusForError(err error) int {
	var notFound *location.NotFoundError
	var geoErr *location.GeolocationError

	switch {
	case errors.Is(err, location.ErrValidation),
		errors.Is(err, location.ErrEmptyQuery),
		errors.Is(err, location.ErrInvalidCoordinates):
		return fiber.StatusBadRequest
	case errors.As(err, &notFound),
		errors.Is(err, location.ErrNoLocationFound),
		errors.Is(err, location.ErrForecastUnavailable):
		return fiber.StatusNotFound
	case errors.Is(err, location.ErrProviderConfig),
		errors.Is(err, location.ErrGeolocationUnavailable):
		return fiber.StatusServiceUnavailable
	case errors.Is(err, location.ErrNetwork), errors.As(err, &geoErr):
		return fiber.StatusBadGateway
	default:
		return fiber.StatusInternalServerError
	}
}

// todayView is the Celsius summary of the daily entry matching today's date.
type todayView struct {
	Date        string `json:"date"`
	MinC        int    `json:"minC"`
	MaxC        int    `json:"maxC"`
	DayPhrase   string `json:"dayPhrase"`
	NightPhrase string `json:"nightPhrase"`
	DayIcon     int    `json:"dayIcon"`
	NightIcon   int    `json:"nightIcon"`
	Headline    string `json:"headline,omitempty"`
}

func todaySummary(payload *location.ForecastPayload) *todayView {
	if payload == nil || len(payload.DailyForecasts) == 0 {
		return nil
	}

	today := time.Now().UTC().Format("2006-01-02")
	day := payload.DailyForecasts[0]
	for _, d := range payload.DailyForecasts {
		if strings.HasPrefix(d.Date, today) {
			day = d
			break
		}
	}

	return &todayView{
		Date:        day.Date,
		MinC:        toCelsius(day.Temperature.Minimum),
		MaxC:        toCelsius(day.Temperature.Maximum),
		DayPhrase:   day.Day.IconPhrase,
		NightPhrase: day.Night.IconPhrase,
		DayIcon:     day.Day.Icon,
		NightIcon:   day.Night.Icon,
		Headline:    payload.Headline.Text,
	}
}

func toCelsius(v location.TemperatureValue) int {
	if v.Unit == "F" {
		return units.FahrenheitToCelsius(v.Value)
	}
	return int(math.Round(v.Value))
}
