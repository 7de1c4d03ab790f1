package httpapi

import (
	"errors"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/i474232898/weather-report/internal/report"
	"github.com/i474232898/weather-report/internal/weather"
)

var validate = validator.New()

// RegisterRoutes wires the HTTP handlers into the Fiber app.
func RegisterRoutes(app *fiber.App, builder report.Builder) {
	v1 := app.Group("/api/v1")

	for _, view := range []string{report.ViewCurrent, report.ViewHourly, report.ViewWeekly, report.ViewAlerts, report.ViewAll} {
		v1.Get("/report/"+view, reportHandler(builder, view))
	}
}

func reportHandler(builder report.Builder, view string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		coords, err := parseCoordinates(c)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		r, err := builder.Build(c.UserContext(), coords)
		if err != nil {
			if errors.Is(err, weather.ErrMissingField) {
				return fiber.NewError(fiber.StatusBadGateway, "incomplete data from upstream provider")
			}
			return fiber.NewError(fiber.StatusBadGateway, "failed to fetch weather data")
		}

		text, err := r.Render(view)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}

		c.Set(fiber.HeaderContentType, fiber.MIMETextPlainCharsetUTF8)
		return c.SendString(text)
	}
}

// coordinatesQuery holds query parameters for identifying a location.
type coordinatesQuery struct {
	Lat string `validate:"required,latitude"`
	Lon string `validate:"required,longitude"`
}

func parseCoordinates(c *fiber.Ctx) (weather.Coordinates, error) {
	q := coordinatesQuery{
		Lat: c.Query("lat"),
		Lon: c.Query("lon"),
	}
	if err := validate.Struct(q); err != nil {
		return weather.Coordinates{}, err
	}

	lat, err := strconv.ParseFloat(q.Lat, 64)
	if err != nil {
		return weather.Coordinates{}, err
	}
	lon, err := strconv.ParseFloat(q.Lon, 64)
	if err != nil {
		return weather.Coordinates{}, err
	}
	return weather.Coordinates{Lat: lat, Lon: lon}, nil
}
