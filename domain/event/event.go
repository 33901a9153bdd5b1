package event

import (
	"code-racer/domain"
)

type Type string

// Event types emitted to the clients of a race channel.
const (
	UserRaceEnterType      Type = "USER_RACE_ENTER"
	UserRaceLeaveType      Type = "USER_RACE_LEAVE"
	GameStartCountdownType Type = "GAME_START_COUNTDOWN"
	GameStartType          Type = "GAME_START"
	GameStateUpdateType    Type = "GAME_STATE_UPDATE"
)

type RaceEvent interface {
	RaceID() domain.RaceID
	Type() Type
}

type UserRaceEnter struct {
	Race          domain.RaceID
	ParticipantID domain.ParticipantID
	ConnectionID  domain.ConnectionID
}

func (e UserRaceEnter) RaceID() domain.RaceID { return e.Race }
func (e UserRaceEnter) Type() Type            { return UserRaceEnterType }

type UserRaceLeave struct {
	Race          domain.RaceID
	ParticipantID domain.ParticipantID
	ConnectionID  domain.ConnectionID
}

func (e UserRaceLeave) RaceID() domain.RaceID { return e.Race }
func (e UserRaceLeave) Type() Type            { return UserRaceLeaveType }

// GameStartCountdown carries the remaining seconds before the race starts.
type GameStartCountdown struct {
	Race      domain.RaceID
	Countdown int
}

func (e GameStartCountdown) RaceID() domain.RaceID { return e.Race }
func (e GameStartCountdown) Type() Type            { return GameStartCountdownType }

type GameStart struct {
	Race domain.RaceID
}

func (e GameStart) RaceID() domain.RaceID { return e.Race }
func (e GameStart) Type() Type            { return GameStartType }

// GameStateUpdate carries a full copy of the room.
type GameStateUpdate struct {
	State domain.RaceState
}

func (e GameStateUpdate) RaceID() domain.RaceID { return e.State.ID }
func (e GameStateUpdate) Type() Type            { return GameStateUpdateType }
