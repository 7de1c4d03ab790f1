package weather

import (
	"errors"
	"fmt"
	"time"
)

var (
	// ErrMissingField is returned when a provider response lacks a field a report depends on.
	ErrMissingField = errors.New("missing field in provider response")

	// ErrNotConfigured is returned when a provider is missing required credentials.
	ErrNotConfigured = errors.New("provider not configured")
)

// MissingField wraps ErrMissingField with the name of the absent field.
func MissingField(name string) error {
	return fmt.Errorf("%w: %s", ErrMissingField, name)
}

// Coordinates identifies a point on the globe in decimal degrees.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

func (c Coordinates) String() string {
	return fmt.Sprintf("%f,%f", c.Lat, c.Lon)
}

// Sample is one point-in-time or one-day observation, normalized across providers.
// Temperatures are Kelvin, wind speed is meters per second.
type Sample struct {
	Description string
	Time        time.Time

	TemperatureK float64
	FeelsLikeK   float64
	HumidityPct  int
	WindSpeedMS  float64
	WindDeg      float64

	// PrecipChance is a fraction in [0, 1].
	PrecipChance float64
}

// Alert is a severe weather notice issued for the requested area.
type Alert struct {
	Sender      string
	Event       string
	Start       time.Time
	End         time.Time
	Description string
}

// Forecast is the full provider response for one coordinate.
// A nil Current or nil Hourly/Daily slice means the provider omitted that section.
type Forecast struct {
	Current *Sample
	Hourly  []Sample
	Daily   []Sample
	Alerts  []Alert
}

// Validate reports the first required section absent from the forecast.
func (f Forecast) Validate() error {
	switch {
	case f.Current == nil:
		return MissingField("current")
	case f.Hourly == nil:
		return MissingField("hourly")
	case f.Daily == nil:
		return MissingField("daily")
	}
	return nil
}

// Place is the reverse-geocoded description of a coordinate.
type Place struct {
	Name string `json:"name"`
}
