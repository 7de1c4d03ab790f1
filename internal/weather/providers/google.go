package providers

import (
	"context"
	"fmt"

	"github.com/kelvins/geocoder"

	"github.com/i474232898/weather-report/internal/weather"
)

// GoogleGeocoder implements weather.Geocoder with the Google Geocoding API.
type GoogleGeocoder struct {
	apiKey string
}

// NewGoogleGeocoder sets the process-wide geocoder.ApiKey; Reverse only reads it.
func NewGoogleGeocoder(apiKey string) *GoogleGeocoder {
	if apiKey != "" {
		geocoder.ApiKey = apiKey
	}
	return &GoogleGeocoder{apiKey: apiKey}
}

func (g *GoogleGeocoder) Name() string {
	return "google"
}

// Reverse names the place after its city, or the formatted address when the
// coordinate is outside any city.
func (g *GoogleGeocoder) Reverse(ctx context.Context, coords weather.Coordinates) (weather.Place, error) {
	if g.apiKey == "" {
		return weather.Place{}, fmt.Errorf("google geocoder api key: %w", weather.ErrNotConfigured)
	}
	if err := ctx.Err(); err != nil {
		return weather.Place{}, err
	}

	addresses, err := geocoder.GeocodingReverse(geocoder.Location{
		Latitude:  coords.Lat,
		Longitude: coords.Lon,
	})
	if err != nil {
		return weather.Place{}, fmt.Errorf("google reverse geocode: %w", err)
	}
	if len(addresses) == 0 {
		return weather.Place{}, weather.MissingField("address")
	}

	name := addresses[0].City
	if name == "" {
		name = addresses[0].FormattedAddress
	}
	return weather.Place{Name: name}, nil
}
