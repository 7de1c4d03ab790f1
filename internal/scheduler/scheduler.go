package scheduler

import (
	"context"
	"fmt"
	"io"
	"log"
	"sync"
	"time"

	"github.com/go-co-op/gocron"

	"github.com/i474232898/weather-report/internal/report"
	"github.com/i474232898/weather-report/internal/weather"
)

const defaultInterval = 15 * time.Minute

// Scheduler periodically rebuilds a report and writes the requested view.
type Scheduler struct {
	scheduler *gocron.Scheduler
	builder   report.Builder
	coords    weather.Coordinates
	view      string
	interval  time.Duration

	mu  sync.Mutex
	out io.Writer
}

// New creates a new Scheduler.
func New(builder report.Builder, coords weather.Coordinates, view string, interval time.Duration, out io.Writer) *Scheduler {
	return &Scheduler{
		scheduler: gocron.NewScheduler(time.UTC),
		builder:   builder,
		coords:    coords,
		view:      view,
		interval:  interval,
		out:       out,
	}
}

// Start schedules the periodic job and starts the underlying scheduler.
// The first run happens immediately.
func (s *Scheduler) Start() error {
	_, err := s.scheduler.Every(s.jobInterval()).Do(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := s.RunOnce(ctx); err != nil {
			log.Printf("scheduler: report failed for %s: %v", s.coords, err)
		}
	})
	if err != nil {
		return err
	}

	s.scheduler.StartAsync()
	return nil
}

// jobInterval returns the configured interval, or 15 minutes when it is not positive.
func (s *Scheduler) jobInterval() time.Duration {
	if s.interval <= 0 {
		return defaultInterval
	}
	return s.interval
}

// RunOnce builds a fresh report and writes the configured view.
func (s *Scheduler) RunOnce(ctx context.Context) error {
	log.Println("scheduler: rendering weather report")

	r, err := s.builder.Build(ctx, s.coords)
	if err != nil {
		return err
	}
	text, err := r.Render(s.view)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	_, err = fmt.Fprintf(s.out, "[%s]\n%s\n", time.Now().Format(time.Kitchen), text)
	return err
}

// Stop stops the scheduler and cancels any future jobs.
func (s *Scheduler) Stop() {
	if s.scheduler != nil {
		s.scheduler.Stop()
	}
}
