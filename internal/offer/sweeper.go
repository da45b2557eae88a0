package offer

import (
	"context"
	"log"
	"time"
)

// Sweeper periodically rewrites cached offer statuses. Reads re-derive the
// status anyway, so a missed tick only leaves the stored field stale, never
// wrong answers.
type Sweeper struct {
	tick time.Duration
	repo Repository
	now  func() time.Time
}

func NewSweeper(repo Repository, tick time.Duration) *Sweeper {
	if tick <= 0 {
		tick = time.Minute
	}
	return &Sweeper{tick: tick, repo: repo, now: time.Now}
}

func (s *Sweeper) Run(ctx context.Context) {
	ticker := time.NewTicker(s.tick)
	defer ticker.Stop()

	s.sweep(ctx)
	for {
		select {
		case <-ticker.C:
			s.sweep(ctx)
		case <-ctx.Done():
			return
		}
	}
}

func (s *Sweeper) sweep(ctx context.Context) {
	if err := s.repo.SweepStatuses(ctx, s.now()); err != nil {
		log.Printf("offer status sweep failed: %v", err)
	}
}
