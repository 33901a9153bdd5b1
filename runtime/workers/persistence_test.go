package workers

import (
	"code-racer/domain"
	"code-racer/mocks"
	"context"
	"fmt"
	"log/slog"
	"testing"
	"time"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestPersistenceWorker_StartThenEnd(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	ctrl := gomock.NewController(t)
	store := mocks.NewMockIRaceStore(ctrl)
	worker := NewPersistenceWorker(log, store, 10, time.Second)

	done := make(chan struct{})
	// Given the store is called in the order jobs were enqueued
	gomock.InOrder(
		store.EXPECT().StartRace(gomock.Any(), domain.RaceID("R1"), gomock.Any()).Return(nil).Times(1),
		store.EXPECT().EndRace(gomock.Any(), domain.RaceID("R1"), gomock.Any()).
			Do(func(ctx context.Context, raceID domain.RaceID, at time.Time) { close(done) }).
			Return(nil).Times(1),
	)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = worker.Run(ctx) }()

	// When a race starts and ends
	worker.StartRace("R1")
	worker.EndRace("R1")

	// Then both records are written
	select {
	case <-done:
	case <-time.After(time.Second):
		req.Fail("End of race was never persisted")
	}
}

func TestPersistenceWorker_FailureIsNotPropagated(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	store := mocks.NewMockIRaceStore(ctrl)
	worker := NewPersistenceWorker(slog.Default(), store, 10, time.Second)

	done := make(chan struct{})
	// Given the store fails on start but succeeds on end
	store.EXPECT().StartRace(gomock.Any(), gomock.Any(), gomock.Any()).Return(fmt.Errorf("disk on fire")).Times(1)
	store.EXPECT().EndRace(gomock.Any(), gomock.Any(), gomock.Any()).
		Do(func(ctx context.Context, raceID domain.RaceID, at time.Time) { close(done) }).
		Return(nil).Times(1)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	errChan := make(chan error, 1)
	go func() { errChan <- worker.Run(ctx) }()

	worker.StartRace("R1")
	worker.EndRace("R1")

	// Then the worker keeps going after the failure, without retry
	select {
	case <-done:
	case <-time.After(time.Second):
		req.Fail("Worker stopped after a storage failure")
	}

	cancel()
	req.ErrorIs(<-errChan, context.Canceled)
}

func TestPersistenceWorker_DropsWhenQueueFull(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockIRaceStore(ctrl)
	worker := NewPersistenceWorker(slog.Default(), store, 1, time.Second)

	// Given nobody drains the queue, enqueueing never blocks the caller
	worker.StartRace("R1")
	worker.StartRace("R2")
	worker.EndRace("R1")

	require.Len(t, worker.jobs, 1)
	job := <-worker.jobs
	require.Equal(t, JobStartRace, job.Kind)
	require.Equal(t, domain.RaceID("R1"), job.Race)
}

func TestPersistenceWorker_UsesTimeout(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	store := mocks.NewMockIRaceStore(ctrl)
	worker := NewPersistenceWorker(slog.Default(), store, 10, 20*time.Millisecond)

	done := make(chan error, 1)
	// Given a store hanging until its context expires
	store.EXPECT().StartRace(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, raceID domain.RaceID, at time.Time) error {
			<-ctx.Done()
			done <- ctx.Err()
			return ctx.Err()
		}).Times(1)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = worker.Run(ctx) }()

	worker.StartRace("R1")

	select {
	case err := <-done:
		req.ErrorIs(err, context.DeadlineExceeded)
	case <-time.After(time.Second):
		req.Fail("Store call was never timed out")
	}
}

func TestPersistenceWorker_CancelDrainsQueuedJobs(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	store := mocks.NewMockIRaceStore(ctrl)
	worker := NewPersistenceWorker(slog.Default(), store, 10, time.Second)

	// Given jobs queued when the shutdown begins
	worker.StartRace("R1")
	worker.EndRace("R1")
	gomock.InOrder(
		store.EXPECT().StartRace(gomock.Any(), domain.RaceID("R1"), gomock.Any()).
			DoAndReturn(func(ctx context.Context, _ domain.RaceID, _ time.Time) error {
				req.NoError(ctx.Err())
				return nil
			}).Times(1),
		store.EXPECT().EndRace(gomock.Any(), domain.RaceID("R1"), gomock.Any()).
			DoAndReturn(func(ctx context.Context, _ domain.RaceID, _ time.Time) error {
				_, ok := ctx.Deadline()
				req.True(ok)
				req.NoError(ctx.Err())
				return nil
			}).Times(1),
	)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// When the worker sees its context canceled
	err := worker.Run(ctx)

	// Then every queued job was written with a live, bounded context
	req.ErrorIs(err, context.Canceled)
	pending, _ := worker.Backlog()
	req.Zero(pending)
}
