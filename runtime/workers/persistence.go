package workers

import (
	"code-racer/contract"
	"code-racer/domain"
	"code-racer/errors"
	"context"
	"fmt"
	"log/slog"
	"time"
)

type JobKind string

const (
	JobStartRace JobKind = "START_RACE"
	JobEndRace   JobKind = "END_RACE"
)

type PersistenceJob struct {
	Kind JobKind
	Race domain.RaceID
	At   time.Time
}

// Ensure *PersistenceWorker implements the contract interfaces at compile time.
var (
	_ contract.Worker             = (*PersistenceWorker)(nil)
	_ contract.IPersistenceBridge = (*PersistenceWorker)(nil)
)

// PersistenceWorker is the only path from the coordinator to the race store.
//
// Calls are fire-and-forget: StartRace and EndRace enqueue a job and return.
// The worker executes jobs in order with a timeout; a failure is wrapped in
// ErrStorage and logged, the in-memory transition that triggered it stands.
type PersistenceWorker struct {
	log     *slog.Logger
	store   contract.IRaceStore
	jobs    chan PersistenceJob
	timeout time.Duration
	now     func() time.Time
}

func NewPersistenceWorker(log *slog.Logger, store contract.IRaceStore, bufferSize int, timeout time.Duration) *PersistenceWorker {
	return &PersistenceWorker{
		log:     log,
		store:   store,
		jobs:    make(chan PersistenceJob, bufferSize),
		timeout: timeout,
		now:     func() time.Time { return time.Now().UTC() },
	}
}

func (w *PersistenceWorker) StartRace(raceID domain.RaceID) {
	w.enqueue(PersistenceJob{Kind: JobStartRace, Race: raceID, At: w.now()})
}

func (w *PersistenceWorker) EndRace(raceID domain.RaceID) {
	w.enqueue(PersistenceJob{Kind: JobEndRace, Race: raceID, At: w.now()})
}

func (w *PersistenceWorker) enqueue(job PersistenceJob) {
	select {
	case w.jobs <- job:
	default:
		w.log.Warn(fmt.Sprintf("Persistence queue full for race %s, dropping %s", job.Race, job.Kind))
	}
}

// Backlog returns the number of pending jobs and the queue capacity.
func (w *PersistenceWorker) Backlog() (int, int) {
	return len(w.jobs), cap(w.jobs)
}

func (w *PersistenceWorker) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			w.log.Debug("Stopping worker", "pending_jobs", len(w.jobs))
			w.Drain(context.WithoutCancel(ctx))
			return ctx.Err()
		case job := <-w.jobs:
			w.handle(ctx, job)
		}
	}
}

// Drain executes the jobs already queued and returns once the queue is empty.
// Each job keeps its own timeout, so a stuck store delays shutdown by at most
// one timeout per pending job.
func (w *PersistenceWorker) Drain(ctx context.Context) {
	for {
		select {
		case job := <-w.jobs:
			w.handle(ctx, job)
		default:
			return
		}
	}
}

func (w *PersistenceWorker) handle(ctx context.Context, job PersistenceJob) {
	jobCtx, cancel := context.WithTimeout(ctx, w.timeout)
	defer cancel()

	var err error
	switch job.Kind {
	case JobStartRace:
		err = w.store.StartRace(jobCtx, job.Race, job.At)
	case JobEndRace:
		err = w.store.EndRace(jobCtx, job.Race, job.At)
	default:
		w.log.Debug(fmt.Sprintf("Not implemented job : %v", job.Kind))
		return
	}
	if err != nil {
		w.log.Error("Race record not updated",
			"race_id", job.Race,
			"job", job.Kind,
			"error", fmt.Errorf("%w: %v", errors.ErrStorage, err))
		return
	}
	w.log.Debug("Race record updated", "race_id", job.Race, "job", job.Kind)
}
