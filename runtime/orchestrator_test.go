package runtime

import (
	"code-racer/domain"
	"code-racer/errors"
	"code-racer/mocks"
	"context"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func validConfig() Config {
	return Config{
		Capacity:              4,
		CountdownStart:        2,
		CountdownInterval:     5 * time.Millisecond,
		GameLoopInterval:      5 * time.Millisecond,
		PersistenceTimeout:    time.Second,
		PersistenceBufferSize: 10,
		RestartInterval:       10 * time.Millisecond,
	}
}

func TestConfig_Validate(t *testing.T) {
	req := require.New(t)
	req.NoError(validConfig().Validate())

	config := validConfig()
	config.Capacity = 1
	req.ErrorIs(config.Validate(), errors.ErrInvalidCapacity)

	config = validConfig()
	config.CountdownStart = 0
	req.ErrorIs(config.Validate(), errors.ErrInvalidCountdown)
}

func TestOrchestrator_PersistsRaceStartAndEnd(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	store := mocks.NewMockIRaceStore(ctrl)

	started := make(chan struct{})
	ended := make(chan struct{})
	store.EXPECT().StartRace(gomock.Any(), domain.RaceID("R1"), gomock.Any()).
		Do(func(context.Context, domain.RaceID, time.Time) { close(started) }).
		Return(nil).Times(1)
	store.EXPECT().EndRace(gomock.Any(), domain.RaceID("R1"), gomock.Any()).
		Do(func(context.Context, domain.RaceID, time.Time) { close(ended) }).
		Return(nil).Times(1)

	orchestrator, err := NewOrchestrator(slog.Default(), store, validConfig())
	req.NoError(err)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	orchestrator.Start(ctx)
	defer orchestrator.Stop()

	// Given two participants, the race starts on its own
	registry := orchestrator.Registry()
	_, err = registry.Enter(ctx, "R1", "p1", "c1")
	req.NoError(err)
	_, err = registry.Enter(ctx, "R1", "p2", "c2")
	req.NoError(err)
	waitFor(t, started)

	// When both leave, the end of race is persisted
	_, err = registry.Leave(ctx, "R1", "p1", "c1")
	req.NoError(err)
	_, err = registry.Leave(ctx, "R1", "p2", "c2")
	req.NoError(err)
	waitFor(t, ended)
}

func waitFor(t *testing.T, c <-chan struct{}) {
	t.Helper()
	select {
	case <-c:
	case <-time.After(2 * time.Second):
		t.Fatal("timed out")
	}
}

func TestOrchestrator_StopWritesPendingRaceEnd(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	store := mocks.NewMockIRaceStore(ctrl)

	var ended atomic.Bool
	store.EXPECT().EndRace(gomock.Any(), domain.RaceID("R1"), gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ domain.RaceID, _ time.Time) error {
			ended.Store(true)
			return ctx.Err()
		}).Times(1)

	config := validConfig()
	config.CountdownInterval = time.Hour
	orchestrator, err := NewOrchestrator(slog.Default(), store, config)
	req.NoError(err)
	ctx := context.Background()
	orchestrator.Start(ctx)

	// Given a race ending right before shutdown
	registry := orchestrator.Registry()
	_, err = registry.Enter(ctx, "R1", "p1", "c1")
	req.NoError(err)
	result, err := registry.Leave(ctx, "R1", "p1", "c1")
	req.NoError(err)
	req.True(result.Removed)

	// When the orchestrator stops
	orchestrator.Stop()

	// Then the end of race is already written
	req.True(ended.Load())
}
