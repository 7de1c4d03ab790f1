package report

import (
	"fmt"
	"math"
	"strconv"
	"time"
)

var compassPoints = [16]string{
	"N", "NNE", "NE", "ENE",
	"E", "ESE", "SE", "SSE",
	"S", "SSW", "SW", "WSW",
	"W", "WNW", "NW", "NNW",
}

// CompassHeading returns the 16-point compass label for a heading in degrees.
// Any finite heading is accepted; it is reduced modulo 360. NaN and ±Inf map to "N".
func CompassHeading(degrees float64) string {
	if math.IsNaN(degrees) || math.IsInf(degrees, 0) {
		return compassPoints[0]
	}
	shifted := math.Mod(degrees+11.25, 360)
	if shifted < 0 {
		shifted += 360
	}
	return compassPoints[int(shifted/22.5)%len(compassPoints)]
}

type beaufortLevel struct {
	minMph      float64
	description string
}

// Ascending by minMph.
var beaufortScale = []beaufortLevel{
	{1, "Light air"},
	{4, "Light breeze"},
	{8, "Gentle breeze"},
	{13, "Moderate breeze"},
	{19, "Fresh breeze"},
	{25, "Strong breeze"},
	{32, "Near gale"},
	{39, "Gale"},
	{47, "Strong gale"},
	{55, "Whole gale"},
	{64, "Storm force"},
	{75, "Hurricane force"},
}

// BeaufortDescription returns the Beaufort scale description for a wind speed in mph.
func BeaufortDescription(mph float64) string {
	description := "Calm"
	for _, level := range beaufortScale {
		if mph < level.minMph {
			break
		}
		description = level.description
	}
	return description
}

// Ordinal renders n with its English ordinal suffix ("1st", "12th", "-5th").
func Ordinal(n int) string {
	s := strconv.Itoa(n)

	// Floored modulo so negative numbers land in [0, 100).
	if m := ((n % 100) + 100) % 100; m >= 11 && m <= 14 {
		return s + "th"
	}

	switch s[len(s)-1] {
	case '1':
		return s + "st"
	case '2':
		return s + "nd"
	case '3':
		return s + "rd"
	default:
		return s + "th"
	}
}

// ShortTime renders the hour of t in 12-hour form with zero minutes, e.g. "8:00".
func ShortTime(t time.Time) string {
	hour := t.Hour() % 12
	if hour == 0 {
		hour = 12
	}
	return fmt.Sprintf("%d:00", hour)
}

// LongDate renders t as "Weekday, Month OrdinalDay".
func LongDate(t time.Time) string {
	return t.Format("Monday, January ") + Ordinal(t.Day())
}

// ShortDate renders t as "M/D/YY".
func ShortDate(t time.Time) string {
	return fmt.Sprintf("%d/%d/%s", int(t.Month()), t.Day(), t.Format("06"))
}
