//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"code-racer/domain"
	"code-racer/domain/event"
	"code-racer/domain/race"
	"code-racer/repositories"
	"context"
	"reflect"
	"time"
)

type ISupervisor interface {
	Add(worker ...Worker) ISupervisor
	Run(ctx context.Context)
	Start(ctx context.Context, worker Worker)
	Stop()
}

type WorkerName string

// Worker doesn't protect itself
// Can be silly, focused
type Worker interface {
	Run(ctx context.Context) error
}

// GetWorkerName uses reflection to retrieve the type name of the worker.
// This is used for logging and supervision purposes during worker initialization
// or lifecycle events, avoiding the need for manual naming in the Worker interface.
func GetWorkerName(w Worker) string {
	if w == nil {
		return "NilWorker"
	}
	t := reflect.TypeOf(w)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}

// EventSink is one subscriber of race channels, typically a client connection.
type EventSink interface {
	Consume(ctx context.Context, e event.RaceEvent) error
}

type IBroadcaster interface {
	Register(connectionID domain.ConnectionID, sink EventSink)
	Unregister(connectionID domain.ConnectionID)
	Join(connectionID domain.ConnectionID, raceID domain.RaceID)
	Part(connectionID domain.ConnectionID, raceID domain.RaceID)
	Broadcast(ctx context.Context, e event.RaceEvent)
}

type IRoomRegistry interface {
	Enter(ctx context.Context, raceID domain.RaceID, participantID domain.ParticipantID, connectionID domain.ConnectionID) (domain.RaceState, error)
	Leave(ctx context.Context, raceID domain.RaceID, participantID domain.ParticipantID, connectionID domain.ConnectionID) (race.LeaveResult, error)
	UpdatePosition(ctx context.Context, raceID domain.RaceID, participantID domain.ParticipantID, position float64) error
	FindByConnection(connectionID domain.ConnectionID) (domain.RaceID, domain.ParticipantID, bool)
	Seated(raceID domain.RaceID, connectionID domain.ConnectionID) bool
}

// IRaceStore is the storage collaborator holding persisted race records.
type IRaceStore interface {
	StartRace(ctx context.Context, raceID domain.RaceID, at time.Time) error
	EndRace(ctx context.Context, raceID domain.RaceID, at time.Time) error
	GetRace(raceID domain.RaceID) (repositories.RaceRecord, error)
}

// IPersistenceBridge never blocks nor fails from the caller point of view.
type IPersistenceBridge interface {
	StartRace(raceID domain.RaceID)
	EndRace(raceID domain.RaceID)
}

type IStatsProvider interface {
	Stats() (rooms int, participants int)
}

// IRaceService is the connection gateway used by the transport.
// It owns no state and every call is bound to the connection that issued it.
type IRaceService interface {
	Connect(connectionID domain.ConnectionID, sink EventSink)
	EnterRace(ctx context.Context, cmd race.EnterRaceCommand) (domain.RaceState, error)
	LeaveRace(ctx context.Context, cmd race.LeaveRaceCommand) error
	UpdatePosition(ctx context.Context, cmd race.UpdatePositionCommand) error
	Disconnect(ctx context.Context, connectionID domain.ConnectionID)
}
