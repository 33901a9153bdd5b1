// Package race holds the Room aggregate: participants, lifecycle status and
// the outbox of events produced by each mutation.
// A Room is not safe for concurrent use, the registry serializes access to it.
package race

import (
	"code-racer/domain"
	"code-racer/domain/event"
	"code-racer/errors"

	"github.com/samber/lo"
)

type Room struct {
	id           domain.RaceID
	capacity     int
	status       domain.Status
	participants []domain.Participant
	outbox       []event.RaceEvent
}

func NewRoom(id domain.RaceID, capacity int) *Room {
	return &Room{
		id:       id,
		capacity: capacity,
		status:   domain.StatusWaiting,
	}
}

func (r *Room) ID() domain.RaceID { return r.id }

func (r *Room) Status() domain.Status { return r.status }

func (r *Room) Len() int { return len(r.participants) }

func (r *Room) IsEmpty() bool { return len(r.participants) == 0 }

// Enter adds a participant to the room.
// A participant already present only gets its connection refreshed, so a
// reconnecting client never takes a second seat.
func (r *Room) Enter(participantID domain.ParticipantID, connectionID domain.ConnectionID) error {
	_, idx, found := lo.FindIndexOf(r.participants, func(p domain.Participant) bool {
		return p.ID == participantID
	})
	switch {
	case found:
		r.participants[idx].ConnectionID = connectionID
	case len(r.participants) >= r.capacity:
		return errors.ErrRoomFull
	default:
		r.participants = append(r.participants, domain.Participant{
			ID:           participantID,
			ConnectionID: connectionID,
		})
	}
	r.outbox = append(r.outbox, event.UserRaceEnter{
		Race:          r.id,
		ParticipantID: participantID,
		ConnectionID:  connectionID,
	})
	return nil
}

// Leave removes the participant matching participantID, keeping the order of the others.
// The leave notification is emitted even if the participant was not seated.
func (r *Room) Leave(participantID domain.ParticipantID, connectionID domain.ConnectionID) {
	r.participants = lo.Reject(r.participants, func(p domain.Participant, _ int) bool {
		return p.ID == participantID
	})
	r.outbox = append(r.outbox, event.UserRaceLeave{
		Race:          r.id,
		ParticipantID: participantID,
		ConnectionID:  connectionID,
	})
}

// ShouldStartCountdown reports whether the room just reached the number of players needed to race.
func (r *Room) ShouldStartCountdown() bool {
	return r.status == domain.StatusWaiting && len(r.participants) >= 2
}

func (r *Room) BeginCountdown() {
	r.status = domain.StatusCountdown
}

// CountdownTick records one countdown step. It is refused once the room left the countdown.
func (r *Room) CountdownTick(remaining int) bool {
	if r.status != domain.StatusCountdown {
		return false
	}
	r.outbox = append(r.outbox, event.GameStartCountdown{Race: r.id, Countdown: remaining})
	return true
}

// Start flips the room to running. It returns false once the room is running or
// finished, so a race never starts twice.
func (r *Room) Start() bool {
	if r.status == domain.StatusRunning || r.status == domain.StatusFinished {
		return false
	}
	r.status = domain.StatusRunning
	r.outbox = append(r.outbox, event.GameStart{Race: r.id})
	return true
}

// Tick emits the periodic state update while the race runs.
func (r *Room) Tick() bool {
	if r.status != domain.StatusRunning {
		return false
	}
	r.outbox = append(r.outbox, event.GameStateUpdate{State: r.Snapshot()})
	return true
}

// Finish marks the room as finished and emits the terminal state update.
func (r *Room) Finish() {
	r.status = domain.StatusFinished
	r.outbox = append(r.outbox, event.GameStateUpdate{State: r.Snapshot()})
}

func (r *Room) UpdatePosition(participantID domain.ParticipantID, position float64) error {
	_, idx, found := lo.FindIndexOf(r.participants, func(p domain.Participant) bool {
		return p.ID == participantID
	})
	if !found {
		return errors.ErrParticipantNotFound
	}
	r.participants[idx].Position = position
	return nil
}

// FindConnection returns the participant bound to the given connection.
func (r *Room) FindConnection(connectionID domain.ConnectionID) (domain.ParticipantID, bool) {
	p, found := lo.Find(r.participants, func(p domain.Participant) bool {
		return p.ConnectionID == connectionID
	})
	return p.ID, found
}

func (r *Room) Snapshot() domain.RaceState {
	participants := make([]domain.Participant, len(r.participants))
	copy(participants, r.participants)
	return domain.RaceState{
		ID:           r.id,
		Status:       r.status,
		Participants: participants,
	}
}

// FlushEvents hands over the pending events in emission order and empties the outbox.
func (r *Room) FlushEvents() []event.RaceEvent {
	events := r.outbox
	r.outbox = nil
	return events
}
