// Package scheduler periodically drops expired rate-limit entries.
package scheduler

import (
	"sync"
	"time"

	"rwfw/backend/pkg/logger"
)

// Pruner is satisfied by *ratelimit.Limiter.
type Pruner interface {
	Prune() int
	Len() int
}

type Scheduler struct {
	pruners  []Pruner
	interval time.Duration
	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

func New(interval time.Duration, pruners ...Pruner) *Scheduler {
	return &Scheduler{
		pruners:  pruners,
		interval: interval,
		stopCh:   make(chan struct{}),
	}
}

func (s *Scheduler) Start() {
	s.wg.Add(1)
	go s.run()
	logger.Info("rate limit sweeper started", "module", "scheduler", "action", "start", "interval", s.interval)
}

func (s *Scheduler) Stop() {
	s.stopOnce.Do(func() {
		close(s.stopCh)
	})
	s.wg.Wait()
	logger.Info("rate limit sweeper stopped", "module", "scheduler", "action", "stop")
}

func (s *Scheduler) run() {
	defer s.wg.Done()

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.Sweep()
		case <-s.stopCh:
			return
		}
	}
}

// Sweep prunes every limiter once and returns the number of entries removed.
func (s *Scheduler) Sweep() int {
	removed, remaining := 0, 0
	for _, p := range s.pruners {
		removed += p.Prune()
		remaining += p.Len()
	}
	if removed > 0 {
		logger.Debug("rate limit entries pruned", "module", "scheduler", "action", "sweep", "resource", "ratelimit", "result", "ok", "removed", removed, "remaining", remaining)
	}
	return removed
}
