package report

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/i474232898/weather-report/internal/weather"
)

// hourlyWindow is the number of hourly samples shown in the hourly report.
const hourlyWindow = 24

// Report holds the data fetched for one coordinate and renders it as text.
type Report struct {
	coords   weather.Coordinates
	place    weather.Place
	forecast weather.Forecast
	tz       *time.Location
}

// Option customizes a Report.
type Option func(*Report)

// WithTimezone sets the zone used for clock times and dates. Defaults to time.Local.
func WithTimezone(loc *time.Location) Option {
	return func(r *Report) {
		if loc != nil {
			r.tz = loc
		}
	}
}

// New fetches the forecast and the place name for coords. Both lookups must
// succeed and the forecast must carry current, hourly and daily sections.
func New(ctx context.Context, src weather.Source, geo weather.Geocoder, coords weather.Coordinates, opts ...Option) (*Report, error) {
	r := &Report{coords: coords, tz: time.Local}
	for _, opt := range opts {
		opt(r)
	}

	forecast, err := src.Forecast(ctx, coords)
	if err != nil {
		log.Printf("ERROR: provider %s forecast failed for %s: %v", src.Name(), coords, err)
		return nil, fmt.Errorf("fetch forecast from %s: %w", src.Name(), err)
	}
	if err := forecast.Validate(); err != nil {
		return nil, fmt.Errorf("forecast from %s: %w", src.Name(), err)
	}

	place, err := geo.Reverse(ctx, coords)
	if err != nil {
		log.Printf("ERROR: geocoder %s lookup failed for %s: %v", geo.Name(), coords, err)
		return nil, fmt.Errorf("reverse geocode with %s: %w", geo.Name(), err)
	}
	if place.Name == "" {
		return nil, fmt.Errorf("reverse geocode with %s: %w", geo.Name(), weather.MissingField("name"))
	}

	log.Printf("DEBUG: report for %s (%s): %d hourly, %d daily, %d alerts",
		place.Name, coords, len(forecast.Hourly), len(forecast.Daily), len(forecast.Alerts))

	r.place = place
	r.forecast = forecast
	return r, nil
}

// Location returns the reverse-geocoded display name.
func (r *Report) Location() string {
	return r.place.Name
}

// CurrentWeather returns a one-line summary of current conditions.
func (r *Report) CurrentWeather() string {
	return CurrentLine(r.place.Name, *r.forecast.Current)
}

// HourlyWeather returns an aligned table of the next 24 hours, repeated values collapsed.
func (r *Report) HourlyWeather() string {
	samples := r.forecast.Hourly
	if len(samples) > hourlyWindow {
		samples = samples[:hourlyWindow]
	}

	rows := make([]Row, 0, len(samples))
	for _, s := range samples {
		rows = append(rows, HourlyRow(s, r.tz))
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Next 24 hours in %s:\n", r.place.Name)
	for _, row := range FormatHourly(rows) {
		b.WriteString(HourlyLine(row))
		b.WriteByte('\n')
	}
	return b.String()
}

// WeeklyWeather returns one aligned line per forecast day.
func (r *Report) WeeklyWeather() string {
	rows := make([]Row, 0, len(r.forecast.Daily))
	for _, s := range r.forecast.Daily {
		rows = append(rows, DailyRow(s, r.tz))
	}

	var b strings.Builder
	for _, row := range PadColumns(rows) {
		b.WriteString(DailyLine(row))
		b.WriteByte('\n')
	}
	return b.String()
}

// Alerts returns one line per active alert, or "" when there are none.
func (r *Report) Alerts() string {
	var b strings.Builder
	for _, a := range r.forecast.Alerts {
		b.WriteString(AlertLine(a, r.tz))
		b.WriteByte('\n')
	}
	return b.String()
}

// View names accepted by Render.
const (
	ViewCurrent = "current"
	ViewHourly  = "hourly"
	ViewWeekly  = "weekly"
	ViewAlerts  = "alerts"
	ViewAll     = "all"
)

// Render returns the named view. ViewAll joins every view with blank lines.
func (r *Report) Render(view string) (string, error) {
	switch view {
	case ViewCurrent:
		return r.CurrentWeather() + "\n", nil
	case ViewHourly:
		return r.HourlyWeather(), nil
	case ViewWeekly:
		return r.WeeklyWeather(), nil
	case ViewAlerts:
		return r.Alerts(), nil
	case ViewAll:
		parts := []string{r.CurrentWeather() + "\n", r.HourlyWeather(), r.WeeklyWeather()}
		if alerts := r.Alerts(); alerts != "" {
			parts = append(parts, alerts)
		}
		return strings.Join(parts, "\n"), nil
	default:
		return "", fmt.Errorf("unknown report view %q", view)
	}
}

// Builder creates reports from a fixed pair of collaborators.
type Builder struct {
	Source   weather.Source
	Geocoder weather.Geocoder
	Options  []Option
}

// Build fetches fresh data for coords and returns the report.
func (b Builder) Build(ctx context.Context, coords weather.Coordinates) (*Report, error) {
	return New(ctx, b.Source, b.Geocoder, coords, b.Options...)
}
