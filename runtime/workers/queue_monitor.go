package workers

import (
	"code-racer/contract"
	"context"
	"log/slog"
	"time"
)

// NamedQueue exposes the fill level of one buffered queue.
type NamedQueue struct {
	Name    string
	Backlog func() (length, capacity int)
}

var _ contract.Worker = (*QueueMonitorWorker)(nil)

// QueueMonitorWorker periodically samples buffered queues.
// Reading len and cap is non-blocking, so sampling never interferes with producers.
// Once any queue fills past the threshold the coordinator is reported unhealthy,
// and healthy again when every queue drained below it.
type QueueMonitorWorker struct {
	log       *slog.Logger
	queues    []NamedQueue
	threshold float64
	interval  time.Duration
	onChange  func(healthy bool)
	healthy   bool
}

func NewQueueMonitorWorker(log *slog.Logger, queues []NamedQueue, threshold float64,
	interval time.Duration, onChange func(healthy bool)) *QueueMonitorWorker {
	return &QueueMonitorWorker{
		log:       log,
		queues:    queues,
		threshold: threshold,
		interval:  interval,
		onChange:  onChange,
		healthy:   true,
	}
}

func (w *QueueMonitorWorker) Run(ctx context.Context) error {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			w.sample()
		}
	}
}

func (w *QueueMonitorWorker) sample() {
	healthy := true
	for _, q := range w.queues {
		length, capacity := q.Backlog()
		if capacity == 0 {
			continue
		}
		ratio := float64(length) / float64(capacity)
		if ratio >= w.threshold {
			healthy = false
			w.log.Warn("Queue almost full", "queue", q.Name, "length", length, "capacity", capacity)
		}
	}
	if healthy != w.healthy {
		w.healthy = healthy
		w.log.Info("Health changed", "healthy", healthy)
		w.onChange(healthy)
	}
}
