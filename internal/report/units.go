package report

import "math"

// KelvinToFahrenheit converts k to degrees Fahrenheit, rounded to 3 decimal places.
func KelvinToFahrenheit(k float64) float64 {
	return roundTo((k-273.15)*9/5+32, 3)
}

// MetersPerSecondToMph converts s to miles per hour, rounded to 2 decimal places.
func MetersPerSecondToMph(s float64) float64 {
	return roundTo(s*2.237, 2)
}

func roundTo(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}
