// Package runtime runs the race rooms: the registry owning them, the timers
// driving their lifecycle and the fan-out of their events.
// It orchestrates the system without containing business logic or domain rules.
package runtime

import (
	"code-racer/contract"
	"code-racer/errors"
	"code-racer/runtime/workers"
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"
)

type Config struct {
	Capacity              int
	CountdownStart        int
	CountdownInterval     time.Duration
	GameLoopInterval      time.Duration
	PersistenceTimeout    time.Duration
	PersistenceBufferSize int
	StatsInterval         time.Duration
	RestartInterval       time.Duration
}

func (c Config) Validate() error {
	if c.Capacity < 2 {
		return fmt.Errorf("%w: %d", errors.ErrInvalidCapacity, c.Capacity)
	}
	if c.CountdownStart < 1 || c.CountdownInterval <= 0 {
		return fmt.Errorf("%w: start=%d interval=%s",
			errors.ErrInvalidCountdown, c.CountdownStart, c.CountdownInterval)
	}
	return nil
}

type Orchestrator struct {
	log         *slog.Logger
	supervisor  *workers.Supervisor
	broadcaster *Broadcaster
	countdown   *CountdownScheduler
	loop        *GameLoop
	persistence *workers.PersistenceWorker
	registry    *Registry

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

func NewOrchestrator(log *slog.Logger, store contract.IRaceStore, config Config) (*Orchestrator, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	broadcaster := NewBroadcaster(log)
	countdown := NewCountdownScheduler(log, config.CountdownStart, config.CountdownInterval)
	loop := NewGameLoop(log, config.GameLoopInterval)
	persistence := workers.NewPersistenceWorker(log, store, config.PersistenceBufferSize, config.PersistenceTimeout)
	registry := NewRegistry(log, config.Capacity, broadcaster, countdown, loop, persistence)

	supervisor := workers.NewSupervisor(log, config.RestartInterval)
	supervisor.Add(persistence)
	if config.StatsInterval > 0 {
		supervisor.Add(workers.NewStatsWorker(log, registry, config.StatsInterval))
	}

	return &Orchestrator{
		log:         log,
		supervisor:  supervisor,
		broadcaster: broadcaster,
		countdown:   countdown,
		loop:        loop,
		persistence: persistence,
		registry:    registry,
	}, nil
}

// MonitorQueues reports the health of the coordinator from the fill level of its queues.
// It must be called before Start.
func (o *Orchestrator) MonitorQueues(threshold float64, interval time.Duration, onChange func(healthy bool)) {
	o.supervisor.Add(workers.NewQueueMonitorWorker(o.log, []workers.NamedQueue{
		{Name: "persistence", Backlog: o.persistence.Backlog},
	}, threshold, interval, onChange))
}

// Start runs the supervised workers in the background and returns immediately.
func (o *Orchestrator) Start(ctx context.Context) {
	o.log.Info("Starting orchestrator and all supervised workers")
	runCtx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	o.mu.Lock()
	o.cancel, o.done = cancel, done
	o.mu.Unlock()
	go func() {
		defer close(done)
		o.supervisor.Run(runCtx)
	}()
}

// Stop cancels every countdown and game loop, then the supervised workers.
// It returns once the workers are gone and the pending race records are written.
func (o *Orchestrator) Stop() {
	o.log.Info("Requesting orchestrator shutdown")
	o.countdown.StopAll()
	o.loop.StopAll()

	o.mu.Lock()
	cancel, done := o.cancel, o.done
	o.mu.Unlock()
	if cancel != nil {
		cancel()
		<-done
	}
	// The persistence worker may have been canceled before its first run.
	o.persistence.Drain(context.Background())
	o.log.Debug("Timers and workers stopped")
}

func (o *Orchestrator) Registry() contract.IRoomRegistry {
	return o.registry
}

func (o *Orchestrator) Broadcaster() contract.IBroadcaster {
	return o.broadcaster
}
