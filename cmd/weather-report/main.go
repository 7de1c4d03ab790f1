package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	httpapi "github.com/i474232898/weather-report/internal/api/http"
	"github.com/i474232898/weather-report/internal/config"
	"github.com/i474232898/weather-report/internal/report"
	"github.com/i474232898/weather-report/internal/scheduler"
	"github.com/i474232898/weather-report/internal/weather"
	"github.com/i474232898/weather-report/internal/weather/providers"
)

func main() {
	// Load configuration.
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	lat := flag.Float64("lat", cfg.Coordinates.Lat, "latitude in decimal degrees")
	lon := flag.Float64("lon", cfg.Coordinates.Lon, "longitude in decimal degrees")
	view := flag.String("report", report.ViewAll, "report to print: current, hourly, weekly, alerts or all")
	serve := flag.Bool("serve", false, "serve reports over HTTP instead of printing")
	watch := flag.Bool("watch", false, "re-print the report every REFRESH_INTERVAL")
	flag.Parse()

	builder := newBuilder(cfg)
	coords := weather.Coordinates{Lat: *lat, Lon: *lon}

	switch {
	case *serve:
		runServer(cfg, builder)
	case *watch:
		runWatch(cfg, builder, coords, *view)
	default:
		ctx, cancel := context.WithTimeout(context.Background(), 2*cfg.HTTPTimeout)
		defer cancel()

		r, err := builder.Build(ctx, coords)
		if err != nil {
			log.Fatalf("failed to build report: %v", err)
		}
		text, err := r.Render(*view)
		if err != nil {
			log.Fatalf("failed to render report: %v", err)
		}
		fmt.Print(text)
	}
}

func newBuilder(cfg *config.AppConfig) report.Builder {
	httpCfg := providers.DefaultHTTPConfig(&http.Client{Timeout: cfg.HTTPTimeout})
	httpCfg.UserAgent = cfg.UserAgent
	httpCfg.Backoff.MaxRetries = cfg.HTTPMaxRetries

	var src weather.Source
	switch cfg.Provider {
	case config.ProviderOpenWeather:
		src = providers.NewOpenWeatherProvider(httpCfg, cfg.OpenWeatherAPIKey)
	default:
		src = providers.NewOpenMeteoProvider(httpCfg)
	}

	var geo weather.Geocoder
	switch cfg.Geocoder {
	case config.GeocoderGoogle:
		geo = providers.NewGoogleGeocoder(cfg.GoogleAPIKey)
	default:
		geo = providers.NewNominatimGeocoder(cfg.NominatimURL, cfg.UserAgent, cfg.HTTPTimeout, cfg.NominatimRPS)
	}

	log.Printf("INFO: using %s forecasts and %s geocoding", src.Name(), geo.Name())

	return report.Builder{
		Source:   src,
		Geocoder: geo,
		Options:  []report.Option{report.WithTimezone(cfg.Timezone)},
	}
}

func runWatch(cfg *config.AppConfig, builder report.Builder, coords weather.Coordinates, view string) {
	sched := scheduler.New(builder, coords, view, cfg.RefreshInterval, os.Stdout)
	if err := sched.Start(); err != nil {
		log.Fatalf("failed to start scheduler: %v", err)
	}
	defer sched.Stop()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()
}

func runServer(cfg *config.AppConfig, builder report.Builder) {
	app := fiber.New(fiber.Config{
		AppName:               "weather-report",
		DisableStartupMessage: true,
		ReadTimeout:           10 * time.Second,
		WriteTimeout:          2 * cfg.HTTPTimeout,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"error":   true,
				"message": err.Error(),
			})
		},
	})

	app.Use(logger.New())
	app.Use(recover.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "ok",
			"service": "weather-report",
		})
	})

	httpapi.RegisterRoutes(app, builder)

	go func() {
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Printf("fiber server stopped: %v", err)
		}
	}()

	// Wait for termination signal
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Printf("error during shutdown: %v", err)
	}
}
