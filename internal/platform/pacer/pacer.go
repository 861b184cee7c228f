package pacer

import (
	"context"
	"time"
)

// SleepFunc pauses for d or returns early with the context's error.
// Injectable so pacing tests run against virtual time.
type SleepFunc func(ctx context.Context, d time.Duration) error

// Config carries the four pacing parameters of a run. BetweenAdds applies
// after every processed contact, BetweenDMs before every fallback DM, and
// BatchSleep after every BatchEvery-th paced operation. BatchEvery <= 0
// disables batch cool-downs.
type Config struct {
	BetweenAdds time.Duration
	BetweenDMs  time.Duration
	BatchEvery  int
	BatchSleep  time.Duration
}

// Pacer spaces outbound platform operations to stay under the platform's
// anti-abuse thresholds. It is owned by the single run goroutine; no
// locking is required.
type Pacer struct {
	cfg          Config
	sleep        SleepFunc
	ops          int
	lastCooldown int
}

// Option configures a Pacer.
type Option func(*Pacer)

// WithSleep replaces the real sleep, letting tests observe delays without
// elapsing wall time.
func WithSleep(fn SleepFunc) Option {
	return func(p *Pacer) {
		if fn != nil {
			p.sleep = fn
		}
	}
}

// New builds a Pacer for one run.
func New(cfg Config, opts ...Option) *Pacer {
	p := &Pacer{cfg: cfg, sleep: sleepCtx}
	for _, opt := range opts {
		if opt != nil {
			opt(p)
		}
	}
	return p
}

// BeforeDM applies the inter-DM delay and counts one paced operation.
func (p *Pacer) BeforeDM(ctx context.Context) error {
	if err := p.sleep(ctx, p.cfg.BetweenDMs); err != nil {
		return err
	}
	return p.completed(ctx)
}

// AfterContact applies the inter-add delay and counts one paced operation.
// It runs on every branch, including contacts that were not on the platform
// at all: the lookup still consumed request quota.
func (p *Pacer) AfterContact(ctx context.Context) error {
	if err := p.sleep(ctx, p.cfg.BetweenAdds); err != nil {
		return err
	}
	return p.completed(ctx)
}

// Ops reports how many paced operations completed so far.
func (p *Pacer) Ops() int {
	return p.ops
}

// completed counts one operation and applies the batch cool-down whenever
// the count crosses a BatchEvery boundary. Crossing (rather than an exact
// modulo match) guarantees one cool-down per full batch even though adds
// and DMs increment the counter independently.
func (p *Pacer) completed(ctx context.Context) error {
	p.ops++
	if p.cfg.BatchEvery > 0 && p.ops-p.lastCooldown >= p.cfg.BatchEvery {
		p.lastCooldown = p.ops
		return p.sleep(ctx, p.cfg.BatchSleep)
	}
	return nil
}

// sleepCtx is the production SleepFunc: a timer select that honors
// cancellation. Interruption propagates; it is never retried here.
func sleepCtx(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
