package ws

import (
	"code-racer/domain"
	"code-racer/domain/event"
	"code-racer/errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEncodeEvent(t *testing.T) {
	req := require.New(t)

	tests := []struct {
		description string
		event       event.RaceEvent
		want        string
	}{
		{"Should encode an entry", event.UserRaceEnter{Race: "R1", ParticipantID: "p1", ConnectionID: "c1"},
			`{"type":"USER_RACE_ENTER","payload":{"participantId":"p1","connectionId":"c1"}}`},
		{"Should encode a countdown", event.GameStartCountdown{Race: "R1", Countdown: 4},
			`{"type":"GAME_START_COUNTDOWN","payload":{"countdown":4}}`},
		{"Should encode the start with a null payload", event.GameStart{Race: "R1"},
			`{"type":"GAME_START","payload":null}`},
		{"Should encode a state update", event.GameStateUpdate{State: domain.RaceState{
			ID: "R1", Status: domain.StatusRunning,
			Participants: []domain.Participant{{ID: "p1", ConnectionID: "c1", Position: 12.5}},
		}}, `{"type":"GAME_STATE_UPDATE","payload":{"raceState":{"id":"R1","status":"running","participants":[{"id":"p1","connectionId":"c1","position":12.5}]}}}`},
	}

	for _, tt := range tests {
		t.Run(tt.description, func(t *testing.T) {
			data, err := encodeEvent(tt.event)
			req.NoError(err)
			req.JSONEq(tt.want, string(data))
		})
	}
}

func TestErrorCode(t *testing.T) {
	req := require.New(t)
	req.Equal("ROOM_FULL", errorCode(fmt.Errorf("%w: race R1", errors.ErrRoomFull)))
	req.Equal("ROOM_NOT_FOUND", errorCode(errors.ErrRoomNotFound))
	req.Equal("VALIDATION", errorCode(errors.ErrValidation))
	req.Equal("INTERNAL", errorCode(fmt.Errorf("boom")))
}
