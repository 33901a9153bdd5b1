package race

import (
	"code-racer/domain"
	"code-racer/domain/event"
	"code-racer/errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRoom_Enter_AddsParticipantAndEvent(t *testing.T) {
	req := require.New(t)
	room := NewRoom("R1", 4)

	// When a participant enters
	err := room.Enter("p1", "c1")

	// Then the room is waiting with a single participant at position zero
	req.NoError(err)
	snapshot := room.Snapshot()
	req.Equal(domain.StatusWaiting, snapshot.Status)
	req.Equal([]domain.Participant{{ID: "p1", ConnectionID: "c1", Position: 0}}, snapshot.Participants)

	// And the outbox contains a UserRaceEnter event
	events := room.FlushEvents()
	req.Len(events, 1)
	evt, ok := events[0].(event.UserRaceEnter)
	req.True(ok)
	req.Equal(domain.RaceID("R1"), evt.RaceID())
	req.Equal(domain.ParticipantID("p1"), evt.ParticipantID)
	req.Equal(domain.ConnectionID("c1"), evt.ConnectionID)

	// The outbox should be empty after FlushEvents
	req.Len(room.FlushEvents(), 0)
}

func TestRoom_Enter_Full(t *testing.T) {
	req := require.New(t)
	room := NewRoom("R1", 2)
	req.NoError(room.Enter("p1", "c1"))
	req.NoError(room.Enter("p2", "c2"))
	room.FlushEvents()

	// When a third participant enters a room of capacity two
	err := room.Enter("p3", "c3")

	// Then it is rejected without any change nor event
	req.ErrorIs(err, errors.ErrRoomFull)
	req.Equal(2, room.Len())
	req.Empty(room.FlushEvents())
}

func TestRoom_Enter_SameParticipantRefreshesConnection(t *testing.T) {
	req := require.New(t)
	room := NewRoom("R1", 1)
	req.NoError(room.Enter("p1", "c1"))

	// When the same participant comes back on a new connection of a full room
	err := room.Enter("p1", "c9")

	// Then no seat is taken and the connection is refreshed
	req.NoError(err)
	req.Equal(1, room.Len())
	participantID, ok := room.FindConnection("c9")
	req.True(ok)
	req.Equal(domain.ParticipantID("p1"), participantID)
	_, ok = room.FindConnection("c1")
	req.False(ok)
}

func TestRoom_Leave_KeepsInsertionOrder(t *testing.T) {
	req := require.New(t)
	room := NewRoom("R1", 4)
	for _, id := range []string{"p1", "p2", "p3", "p4"} {
		req.NoError(room.Enter(domain.ParticipantID(id), domain.ConnectionID("c"+id)))
	}
	room.FlushEvents()

	// When two participants leave
	room.Leave("p2", "cp2")
	room.Leave("p4", "cp4")

	// Then survivors keep their order
	ids := []domain.ParticipantID{}
	for _, p := range room.Snapshot().Participants {
		ids = append(ids, p.ID)
	}
	req.Equal([]domain.ParticipantID{"p1", "p3"}, ids)

	// And one leave event per call was emitted
	events := room.FlushEvents()
	req.Len(events, 2)
	req.Equal(event.UserRaceLeaveType, events[0].Type())
}

func TestRoom_Lifecycle(t *testing.T) {
	req := require.New(t)
	room := NewRoom("R1", 4)
	req.NoError(room.Enter("p1", "c1"))

	// Given a single participant, no countdown is due
	req.False(room.ShouldStartCountdown())
	req.False(room.CountdownTick(5))

	// When a second participant enters
	req.NoError(room.Enter("p2", "c2"))
	req.True(room.ShouldStartCountdown())
	room.BeginCountdown()

	// Then ticks are accepted and the room can only start once
	req.False(room.ShouldStartCountdown())
	req.True(room.CountdownTick(1))
	req.True(room.Start())
	req.False(room.Start())
	req.Equal(domain.StatusRunning, room.Status())
	req.True(room.Tick())

	room.FlushEvents()
	room.Finish()
	events := room.FlushEvents()
	req.Len(events, 1)
	update, ok := events[0].(event.GameStateUpdate)
	req.True(ok)
	req.Equal(domain.StatusFinished, update.State.Status)
	req.False(room.Tick())
}

func TestRoom_UpdatePosition(t *testing.T) {
	req := require.New(t)
	room := NewRoom("R1", 4)
	req.NoError(room.Enter("p1", "c1"))

	req.NoError(room.UpdatePosition("p1", 42.5))
	req.ErrorIs(room.UpdatePosition("ghost", 10), errors.ErrParticipantNotFound)

	snapshot := room.Snapshot()
	req.Equal(42.5, snapshot.Participants[0].Position)

	// Snapshots are copies
	snapshot.Participants[0].Position = 0
	req.Equal(42.5, room.Snapshot().Participants[0].Position)
}
