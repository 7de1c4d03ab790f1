package report

import (
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/i474232898/weather-report/internal/weather"
)

// Row is the formatted view of one sample. Field order matches the hourly rendering.
type Row struct {
	Time     string // clock time for hourly rows, long date for daily rows
	Desc     string
	Temp     string
	Humidity string
	Wind     string
	Pop      string
}

const fieldCount = 6

// fields exposes the row's columns in a fixed order for the table passes.
func (r *Row) fields() [fieldCount]*string {
	return [fieldCount]*string{&r.Time, &r.Desc, &r.Temp, &r.Humidity, &r.Wind, &r.Pop}
}

// TemperatureReport shows the feels-like value only when it exceeds the actual
// temperature by more than 3 degrees.
func TemperatureReport(tempF, feelsLikeF int) string {
	if feelsLikeF-tempF > 3 {
		return fmt.Sprintf("Feels like %d°", feelsLikeF)
	}
	return fmt.Sprintf("%d°", tempF)
}

// WindReport describes wind strength, followed by its heading unless the air is nearly still.
func WindReport(speedMph, directionDeg float64) string {
	description := BeaufortDescription(speedMph)
	if speedMph < 1 {
		return description
	}
	return description + ", " + CompassHeading(directionDeg)
}

// Capitalize upper-cases the first letter of s and lower-cases the rest.
func Capitalize(s string) string {
	first, size := utf8.DecodeRuneInString(s)
	if first == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(first)) + strings.ToLower(s[size:])
}

func sampleTemperature(s weather.Sample) string {
	return TemperatureReport(int(KelvinToFahrenheit(s.TemperatureK)), int(KelvinToFahrenheit(s.FeelsLikeK)))
}

func sampleWind(s weather.Sample) string {
	return WindReport(MetersPerSecondToMph(s.WindSpeedMS), s.WindDeg)
}

func humidity(pct int) string {
	return fmt.Sprintf("%d%% humidity", pct)
}

// floatPercent renders v in its shortest exact decimal form, keeping a ".0"
// on whole numbers ("10.0", "12.5").
func floatPercent(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

// HourlyRow builds the row for one hourly sample. The precipitation chance is
// rendered without truncation, e.g. "12.5%" or "10.0% chance of precipitation".
func HourlyRow(s weather.Sample, loc *time.Location) Row {
	return Row{
		Time:     ShortTime(s.Time.In(loc)),
		Desc:     Capitalize(s.Description),
		Temp:     sampleTemperature(s),
		Humidity: humidity(s.HumidityPct),
		Wind:     sampleWind(s),
		Pop:      floatPercent(s.PrecipChance*100) + "% chance of precipitation",
	}
}

// DailyRow builds the row for one daily sample. The precipitation chance is
// truncated to a whole percent.
func DailyRow(s weather.Sample, loc *time.Location) Row {
	return Row{
		Time:     LongDate(s.Time.In(loc)),
		Desc:     Capitalize(s.Description),
		Temp:     sampleTemperature(s),
		Humidity: humidity(s.HumidityPct),
		Wind:     sampleWind(s),
		Pop:      fmt.Sprintf("%d%% chance of precipitation", int(s.PrecipChance*100)),
	}
}

// CurrentLine renders the single-line summary of current conditions at name.
func CurrentLine(name string, s weather.Sample) string {
	return fmt.Sprintf("Currently in %s: %s | %s | %d%% humid | %s",
		name, Capitalize(s.Description), sampleTemperature(s), s.HumidityPct, sampleWind(s))
}

// AlertLine renders one alert with its validity window in short dates.
func AlertLine(a weather.Alert, loc *time.Location) string {
	return fmt.Sprintf("%s (%s - %s) from %s",
		a.Event, ShortDate(a.Start.In(loc)), ShortDate(a.End.In(loc)), a.Sender)
}
