package ws

import (
	"code-racer/domain"
	"code-racer/domain/event"
	"code-racer/errors"
	"encoding/json"
	stdErrors "errors"
	"fmt"

	"github.com/samber/lo"
)

const (
	ConnectionAckType    = "CONNECTION_ACK"
	UserRacePositionType = "USER_RACE_POSITION"
	RaceErrorType        = "RACE_ERROR"
)

// Envelope is the JSON frame exchanged in both directions.
type Envelope struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// InboundPayload carries the fields of every client event.
type InboundPayload struct {
	RaceID        string  `json:"raceId"`
	ParticipantID string  `json:"participantId"`
	ConnectionID  string  `json:"connectionId"`
	Position      float64 `json:"position"`
}

type ConnectionAckPayload struct {
	ConnectionID string `json:"connectionId"`
}

type ParticipantPayload struct {
	ParticipantID string `json:"participantId"`
	ConnectionID  string `json:"connectionId"`
}

type CountdownPayload struct {
	Countdown int `json:"countdown"`
}

type StateUpdatePayload struct {
	RaceState RaceStateView `json:"raceState"`
}

type RaceStateView struct {
	ID           string            `json:"id"`
	Status       string            `json:"status"`
	Participants []ParticipantView `json:"participants"`
}

type ParticipantView struct {
	ID           string  `json:"id"`
	ConnectionID string  `json:"connectionId"`
	Position     float64 `json:"position"`
}

// ErrorPayload is only ever sent to the connection whose event was rejected.
type ErrorPayload struct {
	Event   string `json:"event"`
	Error   string `json:"error"`
	Message string `json:"message"`
}

func encode(typ string, payload any) ([]byte, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return json.Marshal(Envelope{Type: typ, Payload: raw})
}

// encodeEvent maps a race event to its outbound frame.
func encodeEvent(e event.RaceEvent) ([]byte, error) {
	switch evt := e.(type) {
	case event.UserRaceEnter:
		return encode(string(evt.Type()), ParticipantPayload{
			ParticipantID: string(evt.ParticipantID),
			ConnectionID:  string(evt.ConnectionID),
		})
	case event.UserRaceLeave:
		return encode(string(evt.Type()), ParticipantPayload{
			ParticipantID: string(evt.ParticipantID),
			ConnectionID:  string(evt.ConnectionID),
		})
	case event.GameStartCountdown:
		return encode(string(evt.Type()), CountdownPayload{Countdown: evt.Countdown})
	case event.GameStart:
		return encode(string(evt.Type()), nil)
	case event.GameStateUpdate:
		return encode(string(evt.Type()), StateUpdatePayload{RaceState: toRaceStateView(evt.State)})
	default:
		return nil, fmt.Errorf("unsupported race event %T", e)
	}
}

func toRaceStateView(state domain.RaceState) RaceStateView {
	return RaceStateView{
		ID:     string(state.ID),
		Status: string(state.Status),
		Participants: lo.Map(state.Participants, func(p domain.Participant, _ int) ParticipantView {
			return ParticipantView{
				ID:           string(p.ID),
				ConnectionID: string(p.ConnectionID),
				Position:     p.Position,
			}
		}),
	}
}

// errorCode turns a sentinel into the stable code clients switch on.
func errorCode(err error) string {
	switch {
	case stdErrors.Is(err, errors.ErrRoomFull):
		return "ROOM_FULL"
	case stdErrors.Is(err, errors.ErrRoomNotFound):
		return "ROOM_NOT_FOUND"
	case stdErrors.Is(err, errors.ErrParticipantNotFound):
		return "PARTICIPANT_NOT_FOUND"
	case stdErrors.Is(err, errors.ErrValidation):
		return "VALIDATION"
	case stdErrors.Is(err, errors.ErrConnectionIDMismatch):
		return "CONNECTION_MISMATCH"
	case stdErrors.Is(err, errors.ErrUnknownInboundEvent):
		return "UNKNOWN_EVENT"
	default:
		return "INTERNAL"
	}
}
