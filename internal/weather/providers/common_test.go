package providers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"
)

func TestGetJSONRetriesServerErrors(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.Write([]byte(`{"ok": true}`))
	}))
	defer srv.Close()

	cfg := DefaultHTTPConfig(srv.Client())
	cfg.Backoff = BackoffConfig{MaxRetries: 3, InitialInterval: time.Millisecond, MaxInterval: 5 * time.Millisecond}

	var out struct {
		OK bool `json:"ok"`
	}
	if err := getJSON(context.Background(), cfg, newBreaker("test"), srv.URL, &out); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !out.OK || calls.Load() != 3 {
		t.Fatalf("expected success after 3 calls, got ok=%v calls=%d", out.OK, calls.Load())
	}
}

func TestGetJSONSingleAttemptByDefault(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	var out map[string]any
	err := getJSON(context.Background(), DefaultHTTPConfig(srv.Client()), newBreaker("test"), srv.URL, &out)
	if !errors.Is(err, errServerError) {
		t.Fatalf("expected errServerError, got %v", err)
	}
	if calls.Load() != 1 {
		t.Fatalf("expected a single attempt, got %d", calls.Load())
	}
}

func TestGetJSONSetsUserAgent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("User-Agent"); got != "weather-report-test" {
			t.Errorf("unexpected user agent %q", got)
		}
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	cfg := DefaultHTTPConfig(srv.Client())
	cfg.UserAgent = "weather-report-test"

	var out map[string]any
	if err := getJSON(context.Background(), cfg, newBreaker("test"), srv.URL, &out); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestDoRequestWithoutClient(t *testing.T) {
	_, err := doRequestWithResilience(context.Background(), HTTPClientConfig{}, newBreaker("test"), nil)
	if !errors.Is(err, errNoHTTPClient) {
		t.Fatalf("expected errNoHTTPClient, got %v", err)
	}
}
