package providers

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/i474232898/weather-report/internal/weather"
	"github.com/sony/gobreaker"
)

const kelvinOffset = 273.15

// OpenMeteoProvider implements weather.Source for Open-Meteo. It needs no API key.
type OpenMeteoProvider struct {
	name    string
	baseURL string
	httpCfg HTTPClientConfig
	circuit *gobreaker.CircuitBreaker
}

func NewOpenMeteoProvider(cfg HTTPClientConfig) *OpenMeteoProvider {
	return &OpenMeteoProvider{
		name:    "openmeteo",
		baseURL: "https://api.open-meteo.com/v1/forecast",
		httpCfg: cfg,
		circuit: newBreaker("openmeteo"),
	}
}

// WithBaseURL points the provider at a different forecast endpoint.
func (p *OpenMeteoProvider) WithBaseURL(u string) *OpenMeteoProvider {
	p.baseURL = u
	return p
}

func (p *OpenMeteoProvider) Name() string {
	return p.name
}

const (
	omCurrentVars = "temperature_2m,relative_humidity_2m,apparent_temperature,weather_code,wind_speed_10m,wind_direction_10m"
	omHourlyVars  = "temperature_2m,relative_humidity_2m,apparent_temperature,precipitation_probability,weather_code,wind_speed_10m,wind_direction_10m"
	omDailyVars   = "weather_code,temperature_2m_max,apparent_temperature_max,relative_humidity_2m_mean,wind_speed_10m_max,wind_direction_10m_dominant,precipitation_probability_max"
)

type omCurrent struct {
	Time        int64    `json:"time"`
	Temperature *float64 `json:"temperature_2m"`
	Humidity    *float64 `json:"relative_humidity_2m"`
	Apparent    *float64 `json:"apparent_temperature"`
	WeatherCode *int     `json:"weather_code"`
	WindSpeed   *float64 `json:"wind_speed_10m"`
	WindDir     *float64 `json:"wind_direction_10m"`
}

type omHourly struct {
	Time        []int64   `json:"time"`
	Temperature []float64 `json:"temperature_2m"`
	Humidity    []float64 `json:"relative_humidity_2m"`
	Apparent    []float64 `json:"apparent_temperature"`
	PrecipProb  []float64 `json:"precipitation_probability"`
	WeatherCode []int     `json:"weather_code"`
	WindSpeed   []float64 `json:"wind_speed_10m"`
	WindDir     []float64 `json:"wind_direction_10m"`
}

type omDaily struct {
	Time        []int64   `json:"time"`
	WeatherCode []int     `json:"weather_code"`
	Temperature []float64 `json:"temperature_2m_max"`
	Apparent    []float64 `json:"apparent_temperature_max"`
	Humidity    []float64 `json:"relative_humidity_2m_mean"`
	WindSpeed   []float64 `json:"wind_speed_10m_max"`
	WindDir     []float64 `json:"wind_direction_10m_dominant"`
	PrecipProb  []float64 `json:"precipitation_probability_max"`
}

type omResponse struct {
	Current *omCurrent `json:"current"`
	Hourly  *omHourly  `json:"hourly"`
	Daily   *omDaily   `json:"daily"`
}

func (p *OpenMeteoProvider) Forecast(ctx context.Context, coords weather.Coordinates) (weather.Forecast, error) {
	values := url.Values{}
	values.Set("latitude", strconv.FormatFloat(coords.Lat, 'f', -1, 64))
	values.Set("longitude", strconv.FormatFloat(coords.Lon, 'f', -1, 64))
	values.Set("current", omCurrentVars)
	values.Set("hourly", omHourlyVars)
	values.Set("daily", omDailyVars)
	values.Set("wind_speed_unit", "ms")
	values.Set("timeformat", "unixtime")
	values.Set("timezone", "auto")
	values.Set("forecast_days", "8")
	// Hourly data otherwise starts at local midnight; this starts it at the current hour.
	values.Set("forecast_hours", "24")

	var payload omResponse
	if err := getJSON(ctx, p.httpCfg, p.circuit, p.baseURL+"?"+values.Encode(), &payload); err != nil {
		return weather.Forecast{}, err
	}

	return payload.normalize()
}

func (o omResponse) normalize() (weather.Forecast, error) {
	var f weather.Forecast

	if c := o.Current; c != nil {
		err := requireFields("current",
			requiredField{"weather_code", c.WeatherCode != nil},
			requiredField{"temperature_2m", c.Temperature != nil},
			requiredField{"apparent_temperature", c.Apparent != nil},
			requiredField{"relative_humidity_2m", c.Humidity != nil},
			requiredField{"wind_speed_10m", c.WindSpeed != nil},
			requiredField{"wind_direction_10m", c.WindDir != nil},
		)
		if err != nil {
			return weather.Forecast{}, err
		}
		f.Current = &weather.Sample{
			Description:  describeWeatherCode(*c.WeatherCode),
			Time:         time.Unix(c.Time, 0),
			TemperatureK: *c.Temperature + kelvinOffset,
			FeelsLikeK:   *c.Apparent + kelvinOffset,
			HumidityPct:  int(*c.Humidity),
			WindSpeedMS:  *c.WindSpeed,
			WindDeg:      *c.WindDir,
		}
	}

	if h := o.Hourly; h != nil {
		n := len(h.Time)
		if !sameLength(n, len(h.Temperature), len(h.Humidity), len(h.Apparent), len(h.PrecipProb),
			len(h.WeatherCode), len(h.WindSpeed), len(h.WindDir)) {
			return weather.Forecast{}, weather.MissingField("hourly variables")
		}
		f.Hourly = make([]weather.Sample, n)
		for i := 0; i < n; i++ {
			f.Hourly[i] = weather.Sample{
				Description:  describeWeatherCode(h.WeatherCode[i]),
				Time:         time.Unix(h.Time[i], 0),
				TemperatureK: h.Temperature[i] + kelvinOffset,
				FeelsLikeK:   h.Apparent[i] + kelvinOffset,
				HumidityPct:  int(h.Humidity[i]),
				WindSpeedMS:  h.WindSpeed[i],
				WindDeg:      h.WindDir[i],
				PrecipChance: h.PrecipProb[i] / 100,
			}
		}
	}

	if d := o.Daily; d != nil {
		n := len(d.Time)
		if !sameLength(n, len(d.WeatherCode), len(d.Temperature), len(d.Apparent), len(d.Humidity),
			len(d.WindSpeed), len(d.WindDir), len(d.PrecipProb)) {
			return weather.Forecast{}, weather.MissingField("daily variables")
		}
		f.Daily = make([]weather.Sample, n)
		for i := 0; i < n; i++ {
			f.Daily[i] = weather.Sample{
				Description:  describeWeatherCode(d.WeatherCode[i]),
				Time:         time.Unix(d.Time[i], 0),
				TemperatureK: d.Temperature[i] + kelvinOffset,
				FeelsLikeK:   d.Apparent[i] + kelvinOffset,
				HumidityPct:  int(d.Humidity[i]),
				WindSpeedMS:  d.WindSpeed[i],
				WindDeg:      d.WindDir[i],
				PrecipChance: d.PrecipProb[i] / 100,
			}
		}
	}

	return f, nil
}

func sameLength(n int, others ...int) bool {
	for _, o := range others {
		if o != n {
			return false
		}
	}
	return true
}

// WMO weather interpretation codes, worded like OpenWeatherMap descriptions.
var wmoDescriptions = map[int]string{
	0:  "clear sky",
	1:  "mainly clear",
	2:  "partly cloudy",
	3:  "overcast clouds",
	45: "fog",
	48: "depositing rime fog",
	51: "light drizzle",
	53: "drizzle",
	55: "dense drizzle",
	56: "light freezing drizzle",
	57: "freezing drizzle",
	61: "light rain",
	63: "moderate rain",
	65: "heavy rain",
	66: "light freezing rain",
	67: "freezing rain",
	71: "light snow",
	73: "snow",
	75: "heavy snow",
	77: "snow grains",
	80: "light rain showers",
	81: "rain showers",
	82: "violent rain showers",
	85: "light snow showers",
	86: "snow showers",
	95: "thunderstorm",
	96: "thunderstorm with light hail",
	99: "thunderstorm with heavy hail",
}

func describeWeatherCode(code int) string {
	if d, ok := wmoDescriptions[code]; ok {
		return d
	}
	return fmt.Sprintf("weather code %d", code)
}
