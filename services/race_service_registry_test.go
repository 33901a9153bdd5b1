package services

import (
	"code-racer/domain"
	"code-racer/domain/event"
	"code-racer/domain/race"
	"code-racer/errors"
	"code-racer/mocks"
	"code-racer/runtime"
	"code-racer/sink"
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type gateway struct {
	service  *RaceService
	registry *runtime.Registry
	bridge   *mocks.MockIPersistenceBridge
}

// newGateway wires the service to a real registry whose timers never fire during a test.
func newGateway(t *testing.T, capacity int) gateway {
	ctrl := gomock.NewController(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	broadcaster := runtime.NewBroadcaster(log)
	countdown := runtime.NewCountdownScheduler(log, 5, time.Hour)
	loop := runtime.NewGameLoop(log, time.Hour)
	bridge := mocks.NewMockIPersistenceBridge(ctrl)
	registry := runtime.NewRegistry(log, capacity, broadcaster, countdown, loop, bridge)
	t.Cleanup(func() {
		countdown.StopAll()
		loop.StopAll()
	})
	return gateway{
		service:  NewRaceService(log, registry, broadcaster),
		registry: registry,
		bridge:   bridge,
	}
}

func (g gateway) connect(connectionID domain.ConnectionID) *sink.Timeline {
	timeline := sink.NewTimeline()
	g.service.Connect(connectionID, timeline)
	return timeline
}

func (g gateway) enter(t *testing.T, raceID, participantID, connectionID string) {
	_, err := g.service.EnterRace(context.Background(), race.EnterRaceCommand{
		Race: raceID, ParticipantID: participantID, ConnectionID: connectionID})
	require.NoError(t, err)
}

func entered(timeline *sink.Timeline, raceID domain.RaceID, participantID domain.ParticipantID) bool {
	for _, e := range timeline.Events(raceID) {
		if enter, ok := e.(event.UserRaceEnter); ok && enter.ParticipantID == participantID {
			return true
		}
	}
	return false
}

func TestRaceService_DisconnectRemovesRoomOfMultiSeatConnection(t *testing.T) {
	req := require.New(t)
	g := newGateway(t, 4)
	g.bridge.EXPECT().EndRace(domain.RaceID("R1")).Times(1)

	// Given one connection seated twice in the same room
	g.connect("c1")
	g.enter(t, "R1", "p1", "c1")
	g.enter(t, "R1", "p2", "c1")

	// When the connection drops
	g.service.Disconnect(context.Background(), "c1")

	// Then both seats are released and the room is finalized
	_, ok := g.registry.Snapshot("R1")
	req.False(ok)
	_, _, ok = g.registry.FindByConnection("c1")
	req.False(ok)
}

func TestRaceService_ForeignLeaveKeepsSeatedConnectionSubscribed(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	g := newGateway(t, 4)

	// Given c1 seated as p1 next to p2
	c1 := g.connect("c1")
	g.connect("c2")
	g.connect("c3")
	g.enter(t, "R1", "p1", "c1")
	g.enter(t, "R1", "p2", "c2")

	// When c1 sends a leave for a participant it does not hold
	req.NoError(g.service.LeaveRace(ctx, race.LeaveRaceCommand{Race: "R1", ParticipantID: "ghost", ConnectionID: "c1"}))
	req.True(g.registry.Seated("R1", "c1"))

	// Then c1 still receives the events of its room
	g.enter(t, "R1", "p3", "c3")
	req.True(entered(c1, "R1", "p3"))
}

func TestRaceService_RefusedEnterKeepsSeatedConnectionSubscribed(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	g := newGateway(t, 2)

	// Given a full room where c1 holds a seat
	c1 := g.connect("c1")
	g.connect("c2")
	g.enter(t, "R1", "p1", "c1")
	g.enter(t, "R1", "p2", "c2")

	// When c1 tries to take a second seat
	_, err := g.service.EnterRace(ctx, race.EnterRaceCommand{Race: "R1", ParticipantID: "p9", ConnectionID: "c1"})
	req.ErrorIs(err, errors.ErrRoomFull)

	// Then c1 still hears p2 leaving
	req.NoError(g.service.LeaveRace(ctx, race.LeaveRaceCommand{Race: "R1", ParticipantID: "p2", ConnectionID: "c2"}))
	left := false
	for _, e := range c1.Events("R1") {
		if leave, ok := e.(event.UserRaceLeave); ok && leave.ParticipantID == "p2" {
			left = true
		}
	}
	req.True(left)
}

func TestRaceService_RefusedEnterWithdrawsUnseatedSubscription(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	g := newGateway(t, 2)

	g.connect("c1")
	g.connect("c2")
	c3 := g.connect("c3")
	g.enter(t, "R1", "p1", "c1")
	g.enter(t, "R1", "p2", "c2")

	// Given c3 refused from the full room
	_, err := g.service.EnterRace(ctx, race.EnterRaceCommand{Race: "R1", ParticipantID: "p3", ConnectionID: "c3"})
	req.ErrorIs(err, errors.ErrRoomFull)

	// Then c3 no longer receives the room events
	before := len(c3.Events("R1"))
	req.NoError(g.service.LeaveRace(ctx, race.LeaveRaceCommand{Race: "R1", ParticipantID: "p2", ConnectionID: "c2"}))
	req.Len(c3.Events("R1"), before)
}
