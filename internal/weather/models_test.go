package weather

import (
	"errors"
	"testing"
)

func TestForecastValidate(t *testing.T) {
	cur := &Sample{Description: "clear sky"}

	tests := []struct {
		name    string
		f       Forecast
		wantErr bool
	}{
		{"complete", Forecast{Current: cur, Hourly: []Sample{}, Daily: []Sample{}}, false},
		{"no current", Forecast{Hourly: []Sample{}, Daily: []Sample{}}, true},
		{"no hourly", Forecast{Current: cur, Daily: []Sample{}}, true},
		{"no daily", Forecast{Current: cur, Hourly: []Sample{}}, true},
	}

	for _, tt := range tests {
		err := tt.f.Validate()
		if tt.wantErr {
			if !errors.Is(err, ErrMissingField) {
				t.Errorf("%s: expected ErrMissingField, got %v", tt.name, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("%s: unexpected error: %v", tt.name, err)
		}
	}
}
