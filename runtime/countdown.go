package runtime

import (
	"code-racer/domain"
	"context"
	"log/slog"
	"sync"
	"time"
)

// CountdownTarget receives the steps of a countdown.
// CountdownTick returns false when the race can no longer count down,
// which stops the countdown without resolving it.
type CountdownTarget interface {
	CountdownTick(ctx context.Context, raceID domain.RaceID, remaining int) bool
	CountdownResolved(ctx context.Context, raceID domain.RaceID)
}

// timer is the cancel handle of one scheduled task. Handles are compared by
// identity so a finishing task never removes the entry of its successor.
type timer struct {
	cancel context.CancelFunc
}

// CountdownScheduler runs at most one countdown per race.
// A race is counting while it has an entry in the active table; the entry is
// registered under the same lock as the existence check, so rapid consecutive
// starts for one race collapse into a single countdown.
type CountdownScheduler struct {
	mu       sync.Mutex
	wg       sync.WaitGroup
	log      *slog.Logger
	start    int
	interval time.Duration
	active   map[domain.RaceID]*timer
}

func NewCountdownScheduler(log *slog.Logger, start int, interval time.Duration) *CountdownScheduler {
	return &CountdownScheduler{
		log:      log,
		start:    start,
		interval: interval,
		active:   make(map[domain.RaceID]*timer),
	}
}

// Start launches the countdown of a race. It returns false, and does nothing,
// if a countdown is already active for that race.
func (s *CountdownScheduler) Start(raceID domain.RaceID, target CountdownTarget) bool {
	s.mu.Lock()
	if _, ok := s.active[raceID]; ok {
		s.mu.Unlock()
		s.log.Debug("Countdown already active", "race_id", raceID)
		return false
	}
	ctx, cancel := context.WithCancel(context.Background())
	c := &timer{cancel: cancel}
	s.active[raceID] = c
	s.wg.Add(1)
	s.mu.Unlock()

	go s.run(ctx, raceID, c, target)
	return true
}

func (s *CountdownScheduler) run(ctx context.Context, raceID domain.RaceID, c *timer, target CountdownTarget) {
	defer s.wg.Done()
	defer s.release(raceID, c)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	remaining := s.start
	for {
		select {
		case <-ctx.Done():
			s.log.Debug("Countdown canceled", "race_id", raceID, "remaining", remaining)
			return
		case <-ticker.C:
			if !target.CountdownTick(ctx, raceID, remaining) {
				s.log.Debug("Countdown stopped, race is gone", "race_id", raceID)
				return
			}
			remaining--
			if remaining == 0 {
				target.CountdownResolved(ctx, raceID)
				return
			}
		}
	}
}

// release removes the table entry, unless a newer countdown already replaced it.
func (s *CountdownScheduler) release(raceID domain.RaceID, c *timer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.active[raceID] == c {
		delete(s.active, raceID)
	}
	c.cancel()
}

// Cancel stops the countdown of a race immediately, if any.
func (s *CountdownScheduler) Cancel(raceID domain.RaceID) {
	s.mu.Lock()
	c, ok := s.active[raceID]
	delete(s.active, raceID)
	s.mu.Unlock()
	if ok {
		c.cancel()
	}
}

func (s *CountdownScheduler) Active(raceID domain.RaceID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.active[raceID]
	return ok
}

// StopAll cancels every countdown and waits for their goroutines to return.
func (s *CountdownScheduler) StopAll() {
	s.mu.Lock()
	for raceID, c := range s.active {
		c.cancel()
		delete(s.active, raceID)
	}
	s.mu.Unlock()
	s.wg.Wait()
}
