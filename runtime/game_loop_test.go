package runtime

import (
	"code-racer/domain"
	"context"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type loopCounter struct {
	ticks atomic.Int64
	limit int64
}

func (l *loopCounter) LoopTick(_ context.Context, _ domain.RaceID) bool {
	return l.ticks.Add(1) < l.limit
}

func TestGameLoop_TicksUntilTargetStops(t *testing.T) {
	req := require.New(t)
	loop := NewGameLoop(slog.Default(), 2*time.Millisecond)
	target := &loopCounter{limit: 3}

	req.True(loop.Start("R1", target))
	req.False(loop.Start("R1", target))

	req.Eventually(func() bool { return !loop.Running("R1") }, time.Second, 2*time.Millisecond)
	req.Equal(int64(3), target.ticks.Load())
}

func TestGameLoop_StopCancelsImmediately(t *testing.T) {
	req := require.New(t)
	loop := NewGameLoop(slog.Default(), time.Hour)
	target := &loopCounter{limit: 100}

	req.True(loop.Start("R1", target))
	loop.Stop("R1")
	req.False(loop.Running("R1"))
	loop.StopAll()

	req.Zero(target.ticks.Load())
}

func TestGameLoop_RestartAfterStop(t *testing.T) {
	req := require.New(t)
	loop := NewGameLoop(slog.Default(), time.Hour)
	target := &loopCounter{limit: 100}

	// Given a loop stopped then started again for the same race
	req.True(loop.Start("R1", target))
	loop.Stop("R1")
	req.True(loop.Start("R1", target))

	// Then the old goroutine never evicts the new handle
	time.Sleep(10 * time.Millisecond)
	req.True(loop.Running("R1"))
	loop.StopAll()
	req.False(loop.Running("R1"))
}
