package pacer

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

type PacerSuite struct {
	suite.Suite
	slept []time.Duration
}

func TestPacerSuite(t *testing.T) {
	suite.Run(t, new(PacerSuite))
}

func (s *PacerSuite) SetupTest() {
	s.slept = nil
}

// recordSleep captures requested delays instead of elapsing them.
func (s *PacerSuite) recordSleep(_ context.Context, d time.Duration) error {
	s.slept = append(s.slept, d)
	return nil
}

func (s *PacerSuite) newPacer(cfg Config) *Pacer {
	return New(cfg, WithSleep(s.recordSleep))
}

// TestDelays verifies each wait uses its configured duration.
func (s *PacerSuite) TestDelays() {
	ctx := context.Background()
	cfg := Config{BetweenAdds: 2 * time.Second, BetweenDMs: 3 * time.Second}

	s.Run("AfterContact uses the inter-add delay", func() {
		s.slept = nil
		p := s.newPacer(cfg)
		s.Require().NoError(p.AfterContact(ctx))
		s.Equal([]time.Duration{2 * time.Second}, s.slept)
		s.Equal(1, p.Ops())
	})

	s.Run("BeforeDM uses the inter-DM delay", func() {
		s.slept = nil
		p := s.newPacer(cfg)
		s.Require().NoError(p.BeforeDM(ctx))
		s.Equal([]time.Duration{3 * time.Second}, s.slept)
		s.Equal(1, p.Ops())
	})
}

// TestBatchCooldown verifies the cool-down fires exactly floor(ops/BatchEvery)
// times, including when DM operations interleave with add operations.
func (s *PacerSuite) TestBatchCooldown() {
	ctx := context.Background()

	s.Run("fires once per full batch", func() {
		s.slept = nil
		p := s.newPacer(Config{
			BetweenAdds: time.Second,
			BatchEvery:  3,
			BatchSleep:  30 * time.Second,
		})
		for i := 0; i < 7; i++ {
			s.Require().NoError(p.AfterContact(ctx))
		}
		// 7 ops, batches of 3: cool-downs after ops 3 and 6.
		cooldowns := 0
		for _, d := range s.slept {
			if d == 30*time.Second {
				cooldowns++
			}
		}
		s.Equal(2, cooldowns)
		s.Equal(7, p.Ops())
	})

	s.Run("interleaved DM operations cannot skip a batch boundary", func() {
		s.slept = nil
		p := s.newPacer(Config{
			BetweenAdds: time.Second,
			BetweenDMs:  time.Second,
			BatchEvery:  2,
			BatchSleep:  10 * time.Second,
		})
		// dm, add, dm, add, dm, add: 6 ops, boundary crossed at 2, 4, 6.
		for i := 0; i < 3; i++ {
			s.Require().NoError(p.BeforeDM(ctx))
			s.Require().NoError(p.AfterContact(ctx))
		}
		cooldowns := 0
		for _, d := range s.slept {
			if d == 10*time.Second {
				cooldowns++
			}
		}
		s.Equal(3, cooldowns)
	})

	s.Run("disabled when BatchEvery is zero", func() {
		s.slept = nil
		p := s.newPacer(Config{BetweenAdds: time.Second, BatchSleep: time.Minute})
		for i := 0; i < 5; i++ {
			s.Require().NoError(p.AfterContact(ctx))
		}
		s.NotContains(s.slept, time.Minute)
	})
}

// TestMinimumElapsed verifies the lower bound on total requested sleep time:
// N contacts with per-op delay D plus floor(ops/B) cool-downs of C.
func (s *PacerSuite) TestMinimumElapsed() {
	ctx := context.Background()
	const (
		contacts = 10
		batch    = 4
	)
	d := 2 * time.Second
	c := 30 * time.Second

	p := s.newPacer(Config{BetweenAdds: d, BatchEvery: batch, BatchSleep: c})
	for i := 0; i < contacts; i++ {
		s.Require().NoError(p.AfterContact(ctx))
	}

	var total time.Duration
	for _, v := range s.slept {
		total += v
	}
	want := time.Duration(contacts)*d + time.Duration(contacts/batch)*c
	s.Equal(want, total)
}

// TestCancellation verifies an interrupted wait surfaces the context error
// instead of swallowing it.
func (s *PacerSuite) TestCancellation() {
	s.Run("real sleep aborts on cancelled context", func() {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		p := New(Config{BetweenAdds: time.Hour})
		err := p.AfterContact(ctx)
		s.Require().ErrorIs(err, context.Canceled)
	})

	s.Run("cancelled batch cool-down propagates", func() {
		ctx, cancel := context.WithCancel(context.Background())
		calls := 0
		p := New(Config{BetweenAdds: time.Second, BatchEvery: 1, BatchSleep: time.Hour},
			WithSleep(func(ctx context.Context, d time.Duration) error {
				calls++
				if calls == 2 { // the cool-down
					cancel()
					return ctx.Err()
				}
				return nil
			}))
		err := p.AfterContact(ctx)
		s.Require().ErrorIs(err, context.Canceled)
	})
}
