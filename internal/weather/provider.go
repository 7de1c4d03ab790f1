package weather

import "context"

// Source abstracts a forecast provider (e.g. OpenWeatherMap One Call, Open-Meteo).
type Source interface {
	Name() string
	Forecast(ctx context.Context, coords Coordinates) (Forecast, error)
}

// Geocoder resolves coordinates into a human-readable place (e.g. Nominatim, Google).
type Geocoder interface {
	Name() string
	Reverse(ctx context.Context, coords Coordinates) (Place, error)
}
