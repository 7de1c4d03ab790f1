package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/i474232898/weather-report/internal/weather"
)

// Provider and geocoder names accepted by the configuration.
const (
	ProviderOpenWeather = "openweather"
	ProviderOpenMeteo   = "openmeteo"

	GeocoderNominatim = "nominatim"
	GeocoderGoogle    = "google"
)

type AppConfig struct {
	OpenWeatherAPIKey string
	GoogleAPIKey      string

	// Provider selects the forecast source. Falls back to Open-Meteo when
	// OpenWeatherMap is requested without an API key.
	Provider string
	Geocoder string

	NominatimURL string
	NominatimRPS float64
	UserAgent    string

	// Default coordinates when none are given on the command line.
	Coordinates weather.Coordinates

	HTTPTimeout    time.Duration
	HTTPMaxRetries int

	// Timezone for clock times and dates in reports.
	Timezone *time.Location

	// RefreshInterval controls how often watch mode re-renders reports.
	RefreshInterval time.Duration

	Port string
}

// Load reads configuration from environment with sensible defaults.
func Load() (*AppConfig, error) {
	if err := godotenv.Load(); err != nil {
		log.Printf("INFO: No .env file found or error loading it: %v", err)
	}
	cfg := &AppConfig{}

	cfg.OpenWeatherAPIKey = os.Getenv("OPENWEATHER_API_KEY")
	cfg.GoogleAPIKey = os.Getenv("GOOGLE_GEOCODER_API_KEY")

	cfg.Provider = strings.ToLower(getenvDefault("WEATHER_PROVIDER", ProviderOpenWeather))
	switch cfg.Provider {
	case ProviderOpenWeather:
		if cfg.OpenWeatherAPIKey == "" {
			log.Printf("INFO: OPENWEATHER_API_KEY not set; using %s", ProviderOpenMeteo)
			cfg.Provider = ProviderOpenMeteo
		}
	case ProviderOpenMeteo:
	default:
		return nil, fmt.Errorf("invalid WEATHER_PROVIDER %q", cfg.Provider)
	}

	cfg.Geocoder = strings.ToLower(getenvDefault("GEOCODER", GeocoderNominatim))
	switch cfg.Geocoder {
	case GeocoderNominatim:
	case GeocoderGoogle:
		if cfg.GoogleAPIKey == "" {
			return nil, fmt.Errorf("GEOCODER=google requires GOOGLE_GEOCODER_API_KEY")
		}
	default:
		return nil, fmt.Errorf("invalid GEOCODER %q", cfg.Geocoder)
	}

	cfg.NominatimURL = getenvDefault("NOMINATIM_URL", "https://nominatim.openstreetmap.org")
	rps, err := getenvFloat("NOMINATIM_RPS", 1)
	if err != nil {
		return nil, err
	}
	cfg.NominatimRPS = rps
	cfg.UserAgent = getenvDefault("USER_AGENT", "weather-report/1.0")

	lat, err := getenvFloat("WEATHER_LAT", 40.827232375361085)
	if err != nil {
		return nil, err
	}
	lon, err := getenvFloat("WEATHER_LON", -73.9466391392184)
	if err != nil {
		return nil, err
	}
	cfg.Coordinates = weather.Coordinates{Lat: lat, Lon: lon}

	timeout, err := time.ParseDuration(getenvDefault("HTTP_TIMEOUT", "10s"))
	if err != nil {
		return nil, fmt.Errorf("invalid HTTP_TIMEOUT: %w", err)
	}
	cfg.HTTPTimeout = timeout
	cfg.HTTPMaxRetries = getenvInt("HTTP_MAX_RETRIES", 0)

	cfg.Timezone = time.Local
	if tz := os.Getenv("REPORT_TIMEZONE"); tz != "" {
		loc, err := time.LoadLocation(tz)
		if err != nil {
			return nil, fmt.Errorf("invalid REPORT_TIMEZONE: %w", err)
		}
		cfg.Timezone = loc
	}

	interval, err := time.ParseDuration(getenvDefault("REFRESH_INTERVAL", "15m"))
	if err != nil {
		return nil, fmt.Errorf("invalid REFRESH_INTERVAL: %w", err)
	}
	cfg.RefreshInterval = interval
	cfg.Port = getenvDefault("PORT", "8080")

	return cfg, nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		n, err := strconv.Atoi(v)
		if err == nil {
			return n
		}
	}
	return def
}

func getenvFloat(key string, def float64) (float64, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return f, nil
}
