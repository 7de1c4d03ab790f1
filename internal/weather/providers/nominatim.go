package providers

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"
	"golang.org/x/time/rate"

	"github.com/i474232898/weather-report/internal/weather"
)

const defaultNominatimURL = "https://nominatim.openstreetmap.org"

// NominatimGeocoder implements weather.Geocoder with the OpenStreetMap Nominatim reverse API.
// Requests are throttled to respect the public instance's usage policy.
type NominatimGeocoder struct {
	client  *resty.Client
	limiter *rate.Limiter
}

// NewNominatimGeocoder creates a geocoder against baseURL (the public instance when empty)
// allowing at most rps requests per second.
func NewNominatimGeocoder(baseURL, userAgent string, timeout time.Duration, rps float64) *NominatimGeocoder {
	if baseURL == "" {
		baseURL = defaultNominatimURL
	}
	if rps <= 0 {
		rps = 1
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetHeader("Accept", "application/json").
		SetTimeout(timeout)
	if userAgent != "" {
		client.SetHeader("User-Agent", userAgent)
	}

	return &NominatimGeocoder{
		client:  client,
		limiter: rate.NewLimiter(rate.Limit(rps), 1),
	}
}

func (g *NominatimGeocoder) Name() string {
	return "nominatim"
}

type nominatimReverse struct {
	Name        string `json:"name"`
	DisplayName string `json:"display_name"`
	Error       string `json:"error"`
}

func (g *NominatimGeocoder) Reverse(ctx context.Context, coords weather.Coordinates) (weather.Place, error) {
	if err := g.limiter.Wait(ctx); err != nil {
		return weather.Place{}, fmt.Errorf("rate limit wait canceled: %w", err)
	}

	var payload nominatimReverse
	resp, err := g.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"lat":    strconv.FormatFloat(coords.Lat, 'f', -1, 64),
			"lon":    strconv.FormatFloat(coords.Lon, 'f', -1, 64),
			"zoom":   "10",
			"format": "jsonv2",
		}).
		SetResult(&payload).
		Get("/reverse")
	if err != nil {
		return weather.Place{}, fmt.Errorf("nominatim request failed: %w", err)
	}
	if resp.IsError() {
		return weather.Place{}, fmt.Errorf("%w: %d", errUnexpected, resp.StatusCode())
	}
	if payload.Error != "" {
		return weather.Place{}, fmt.Errorf("nominatim: %s", payload.Error)
	}

	return weather.Place{Name: payload.Name}, nil
}
