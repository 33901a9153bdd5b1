package runtime

import (
	"code-racer/domain"
	"context"
	"log/slog"
	"sync"
	"time"
)

// LoopTarget is ticked by the game loop. LoopTick returns false once the race
// no longer exists or stopped running, which terminates the loop.
type LoopTarget interface {
	LoopTick(ctx context.Context, raceID domain.RaceID) bool
}

// GameLoop ticks every running race on a fixed interval.
// Each loop keeps a cancel handle so that removing a room stops its timer
// right away instead of waiting for the next tick to notice the absence.
type GameLoop struct {
	mu       sync.Mutex
	wg       sync.WaitGroup
	log      *slog.Logger
	interval time.Duration
	loops    map[domain.RaceID]*timer
}

func NewGameLoop(log *slog.Logger, interval time.Duration) *GameLoop {
	return &GameLoop{
		log:      log,
		interval: interval,
		loops:    make(map[domain.RaceID]*timer),
	}
}

func (l *GameLoop) Start(raceID domain.RaceID, target LoopTarget) bool {
	l.mu.Lock()
	if _, ok := l.loops[raceID]; ok {
		l.mu.Unlock()
		return false
	}
	ctx, cancel := context.WithCancel(context.Background())
	t := &timer{cancel: cancel}
	l.loops[raceID] = t
	l.wg.Add(1)
	l.mu.Unlock()

	go l.run(ctx, raceID, t, target)
	return true
}

func (l *GameLoop) run(ctx context.Context, raceID domain.RaceID, t *timer, target LoopTarget) {
	defer l.wg.Done()
	defer l.release(raceID, t)

	ticker := time.NewTicker(l.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			l.log.Debug("Game loop canceled", "race_id", raceID)
			return
		case <-ticker.C:
			if !target.LoopTick(ctx, raceID) {
				l.log.Debug("Game loop finished, race is gone", "race_id", raceID)
				return
			}
		}
	}
}

func (l *GameLoop) release(raceID domain.RaceID, t *timer) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.loops[raceID] == t {
		delete(l.loops, raceID)
	}
	t.cancel()
}

func (l *GameLoop) Stop(raceID domain.RaceID) {
	l.mu.Lock()
	t, ok := l.loops[raceID]
	delete(l.loops, raceID)
	l.mu.Unlock()
	if ok {
		t.cancel()
	}
}

func (l *GameLoop) Running(raceID domain.RaceID) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	_, ok := l.loops[raceID]
	return ok
}

func (l *GameLoop) StopAll() {
	l.mu.Lock()
	for raceID, t := range l.loops {
		t.cancel()
		delete(l.loops, raceID)
	}
	l.mu.Unlock()
	l.wg.Wait()
}
