// Package schedule re-invokes a run once per day at a fixed wall-clock time.
package schedule

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"
)

// Daily triggers a run function every day at one local HH:MM.
type Daily struct {
	at     string
	spec   string
	logger *slog.Logger
}

// Option configures the scheduler.
type Option func(*Daily)

// WithLogger sets a structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(d *Daily) { d.logger = logger }
}

// NewDaily validates the HH:MM trigger time and builds the scheduler.
func NewDaily(at string, opts ...Option) (*Daily, error) {
	parsed, err := time.Parse("15:04", at)
	if err != nil {
		return nil, fmt.Errorf("daily time %q: want HH:MM", at)
	}

	d := &Daily{
		at:   at,
		spec: fmt.Sprintf("%d %d * * *", parsed.Minute(), parsed.Hour()),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(d)
		}
	}
	return d, nil
}

// At returns the trigger time as given by the operator.
func (d *Daily) At() string { return d.at }

// Run blocks until ctx is canceled, invoking fn at every trigger. A failed
// run is logged and the schedule stays armed; a trigger that lands while the
// previous run is still going is skipped. An in-flight run is allowed to
// finish before Run returns.
func (d *Daily) Run(ctx context.Context, fn func(context.Context) error) error {
	c := cron.New(
		cron.WithLocation(time.Local),
		cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)),
	)
	if _, err := c.AddFunc(d.spec, func() {
		if d.logger != nil {
			d.logger.InfoContext(ctx, "scheduled run starting", "at", d.at)
		}
		if err := fn(ctx); err != nil && d.logger != nil {
			d.logger.ErrorContext(ctx, "scheduled run failed", "error", err)
		}
	}); err != nil {
		return fmt.Errorf("arm schedule %q: %w", d.spec, err)
	}

	c.Start()
	<-ctx.Done()
	<-c.Stop().Done()
	return ctx.Err()
}
