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

// OpenWeatherProvider implements weather.Source using the OpenWeatherMap One Call API.
type OpenWeatherProvider struct {
	name    string
	apiKey  string
	baseURL string
	httpCfg HTTPClientConfig
	circuit *gobreaker.CircuitBreaker
}

func NewOpenWeatherProvider(cfg HTTPClientConfig, apiKey string) *OpenWeatherProvider {
	return &OpenWeatherProvider{
		name:    "openweathermap",
		apiKey:  apiKey,
		baseURL: "https://api.openweathermap.org/data/2.5/onecall",
		httpCfg: cfg,
		circuit: newBreaker("openweather"),
	}
}

// WithBaseURL points the provider at a different One Call endpoint.
func (p *OpenWeatherProvider) WithBaseURL(u string) *OpenWeatherProvider {
	p.baseURL = u
	return p
}

func (p *OpenWeatherProvider) Name() string {
	return p.name
}

type owCondition struct {
	Description string `json:"description"`
}

// Numeric fields are pointers so an omitted key is told apart from zero.
type owSample struct {
	Dt        int64         `json:"dt"`
	Temp      *float64      `json:"temp"`
	FeelsLike *float64      `json:"feels_like"`
	Humidity  *int          `json:"humidity"`
	WindSpeed *float64      `json:"wind_speed"`
	WindDeg   *float64      `json:"wind_deg"`
	Pop       *float64      `json:"pop"`
	Weather   []owCondition `json:"weather"`
}

type owDayTemp struct {
	Day *float64 `json:"day"`
}

type owDaily struct {
	Dt        int64         `json:"dt"`
	Temp      *owDayTemp    `json:"temp"`
	FeelsLike *owDayTemp    `json:"feels_like"`
	Humidity  *int          `json:"humidity"`
	WindSpeed *float64      `json:"wind_speed"`
	WindDeg   *float64      `json:"wind_deg"`
	Pop       *float64      `json:"pop"`
	Weather   []owCondition `json:"weather"`
}

type owAlert struct {
	SenderName  string `json:"sender_name"`
	Event       string `json:"event"`
	Start       int64  `json:"start"`
	End         int64  `json:"end"`
	Description string `json:"description"`
}

type owOneCall struct {
	Current *owSample  `json:"current"`
	Hourly  []owSample `json:"hourly"`
	Daily   []owDaily  `json:"daily"`
	Alerts  []owAlert  `json:"alerts"`
}

func (p *OpenWeatherProvider) Forecast(ctx context.Context, coords weather.Coordinates) (weather.Forecast, error) {
	if p.apiKey == "" {
		return weather.Forecast{}, fmt.Errorf("openweather api key: %w", weather.ErrNotConfigured)
	}

	values := url.Values{}
	values.Set("lat", strconv.FormatFloat(coords.Lat, 'f', -1, 64))
	values.Set("lon", strconv.FormatFloat(coords.Lon, 'f', -1, 64))
	values.Set("exclude", "minutely")
	values.Set("appid", p.apiKey)

	var payload owOneCall
	if err := getJSON(ctx, p.httpCfg, p.circuit, p.baseURL+"?"+values.Encode(), &payload); err != nil {
		return weather.Forecast{}, err
	}

	return payload.normalize()
}

func (o owOneCall) normalize() (weather.Forecast, error) {
	var f weather.Forecast

	if o.Current != nil {
		cur, err := o.Current.sample("current", false)
		if err != nil {
			return weather.Forecast{}, err
		}
		f.Current = &cur
	}

	if o.Hourly != nil {
		f.Hourly = make([]weather.Sample, 0, len(o.Hourly))
		for i, h := range o.Hourly {
			s, err := h.sample(fmt.Sprintf("hourly[%d]", i), true)
			if err != nil {
				return weather.Forecast{}, err
			}
			f.Hourly = append(f.Hourly, s)
		}
	}

	if o.Daily != nil {
		f.Daily = make([]weather.Sample, 0, len(o.Daily))
		for i, d := range o.Daily {
			s, err := d.sample(fmt.Sprintf("daily[%d]", i))
			if err != nil {
				return weather.Forecast{}, err
			}
			f.Daily = append(f.Daily, s)
		}
	}

	for _, a := range o.Alerts {
		f.Alerts = append(f.Alerts, weather.Alert{
			Sender:      a.SenderName,
			Event:       a.Event,
			Start:       time.Unix(a.Start, 0),
			End:         time.Unix(a.End, 0),
			Description: a.Description,
		})
	}

	return f, nil
}

// Current conditions carry no precipitation chance, so pop is required only
// for forecast entries.
func (s owSample) sample(path string, withPop bool) (weather.Sample, error) {
	err := requireFields(path,
		requiredField{"weather", len(s.Weather) > 0},
		requiredField{"temp", s.Temp != nil},
		requiredField{"feels_like", s.FeelsLike != nil},
		requiredField{"humidity", s.Humidity != nil},
		requiredField{"wind_speed", s.WindSpeed != nil},
		requiredField{"wind_deg", s.WindDeg != nil},
		requiredField{"pop", !withPop || s.Pop != nil},
	)
	if err != nil {
		return weather.Sample{}, err
	}

	var pop float64
	if s.Pop != nil {
		pop = *s.Pop
	}
	return weather.Sample{
		Description:  s.Weather[0].Description,
		Time:         time.Unix(s.Dt, 0),
		TemperatureK: *s.Temp,
		FeelsLikeK:   *s.FeelsLike,
		HumidityPct:  *s.Humidity,
		WindSpeedMS:  *s.WindSpeed,
		WindDeg:      *s.WindDeg,
		PrecipChance: pop,
	}, nil
}

// Daily entries report temperatures per part of day; the daytime value is used.
func (d owDaily) sample(path string) (weather.Sample, error) {
	err := requireFields(path,
		requiredField{"weather", len(d.Weather) > 0},
		requiredField{"temp.day", d.Temp != nil && d.Temp.Day != nil},
		requiredField{"feels_like.day", d.FeelsLike != nil && d.FeelsLike.Day != nil},
		requiredField{"humidity", d.Humidity != nil},
		requiredField{"wind_speed", d.WindSpeed != nil},
		requiredField{"wind_deg", d.WindDeg != nil},
		requiredField{"pop", d.Pop != nil},
	)
	if err != nil {
		return weather.Sample{}, err
	}

	return weather.Sample{
		Description:  d.Weather[0].Description,
		Time:         time.Unix(d.Dt, 0),
		TemperatureK: *d.Temp.Day,
		FeelsLikeK:   *d.FeelsLike.Day,
		HumidityPct:  *d.Humidity,
		WindSpeedMS:  *d.WindSpeed,
		WindDeg:      *d.WindDeg,
		PrecipChance: *d.Pop,
	}, nil
}
