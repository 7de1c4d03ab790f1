package report

import (
	"testing"
	"time"

	"github.com/i474232898/weather-report/internal/weather"
)

func TestTemperatureReport(t *testing.T) {
	tests := []struct {
		temp, feels int
		want        string
	}{
		{70, 70, "70°"},
		{70, 73, "70°"},
		{70, 74, "Feels like 74°"},
		{70, 60, "70°"},
	}

	for _, tt := range tests {
		if got := TemperatureReport(tt.temp, tt.feels); got != tt.want {
			t.Errorf("TemperatureReport(%d, %d) = %q, want %q", tt.temp, tt.feels, got, tt.want)
		}
	}
}

func TestWindReport(t *testing.T) {
	if got := WindReport(0.5, 270); got != "Calm" {
		t.Errorf("expected %q, got %q", "Calm", got)
	}
	if got := WindReport(5, 5); got != "Light breeze, N" {
		t.Errorf("expected %q, got %q", "Light breeze, N", got)
	}
	if got := WindReport(1, 90); got != "Light air, E" {
		t.Errorf("expected %q, got %q", "Light air, E", got)
	}
}

func TestCapitalize(t *testing.T) {
	tests := map[string]string{
		"overcast clouds": "Overcast clouds",
		"Overcast Clouds": "Overcast clouds",
		"":                "",
		"ázure sky":       "Ázure sky",
	}
	for in, want := range tests {
		if got := Capitalize(in); got != want {
			t.Errorf("Capitalize(%q) = %q, want %q", in, got, want)
		}
	}
}

func testSample() weather.Sample {
	return weather.Sample{
		Description:  "overcast clouds",
		Time:         time.Date(2021, 9, 1, 8, 0, 0, 0, time.UTC),
		TemperatureK: 273.15,
		FeelsLikeK:   273.15,
		HumidityPct:  56,
		WindSpeedMS:  2.5,
		WindDeg:      5,
		PrecipChance: 0.125,
	}
}

func TestHourlyRow(t *testing.T) {
	got := HourlyRow(testSample(), time.UTC)
	want := Row{
		Time:     "8:00",
		Desc:     "Overcast clouds",
		Temp:     "32°",
		Humidity: "56% humidity",
		Wind:     "Light breeze, N",
		Pop:      "12.5% chance of precipitation",
	}
	if got != want {
		t.Fatalf("unexpected row:\n got %+v\nwant %+v", got, want)
	}
}

func TestDailyRow(t *testing.T) {
	got := DailyRow(testSample(), time.UTC)
	want := Row{
		Time:     "Wednesday, September 1st",
		Desc:     "Overcast clouds",
		Temp:     "32°",
		Humidity: "56% humidity",
		Wind:     "Light breeze, N",
		Pop:      "12% chance of precipitation",
	}
	if got != want {
		t.Fatalf("unexpected row:\n got %+v\nwant %+v", got, want)
	}
}

// Hourly precipitation keeps the fractional percent, daily truncates it.
func TestPrecipitationAsymmetry(t *testing.T) {
	s := testSample()

	s.PrecipChance = 0.5
	if got := HourlyRow(s, time.UTC).Pop; got != "50.0% chance of precipitation" {
		t.Errorf("hourly: got %q", got)
	}
	if got := DailyRow(s, time.UTC).Pop; got != "50% chance of precipitation" {
		t.Errorf("daily: got %q", got)
	}

	s.PrecipChance = 0
	if got := HourlyRow(s, time.UTC).Pop; got != "0.0% chance of precipitation" {
		t.Errorf("hourly: got %q", got)
	}
	if got := DailyRow(s, time.UTC).Pop; got != "0% chance of precipitation" {
		t.Errorf("daily: got %q", got)
	}

	s.PrecipChance = 0.875
	if got := HourlyRow(s, time.UTC).Pop; got != "87.5% chance of precipitation" {
		t.Errorf("hourly: got %q", got)
	}
	if got := DailyRow(s, time.UTC).Pop; got != "87% chance of precipitation" {
		t.Errorf("daily: got %q", got)
	}
}

func TestHourlyRowUsesTimezone(t *testing.T) {
	est := time.FixedZone("EST", -5*3600)
	if got := HourlyRow(testSample(), est).Time; got != "3:00" {
		t.Errorf("expected 3:00 in EST, got %q", got)
	}
}

func TestCurrentLine(t *testing.T) {
	s := testSample()
	s.FeelsLikeK = 297.0389
	s.WindSpeedMS = 0.2

	want := "Currently in New York: Overcast clouds | Feels like 75° | 56% humid | Calm"
	if got := CurrentLine("New York", s); got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestAlertLine(t *testing.T) {
	a := weather.Alert{
		Sender: "NWS New York City",
		Event:  "Flash Flood Warning",
		Start:  time.Date(2021, 9, 1, 20, 0, 0, 0, time.UTC),
		End:    time.Date(2021, 9, 2, 4, 0, 0, 0, time.UTC),
	}
	want := "Flash Flood Warning (9/1/21 - 9/2/21) from NWS New York City"
	if got := AlertLine(a, time.UTC); got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}
