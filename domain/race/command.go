package race

import "code-racer/domain"

type Command interface {
	RaceID() domain.RaceID
}

type EnterRaceCommand struct {
	Race          string `validate:"required"`
	ParticipantID string `validate:"required"`
	ConnectionID  string `validate:"required"`
}

func (c EnterRaceCommand) RaceID() domain.RaceID {
	return domain.RaceID(c.Race)
}

type LeaveRaceCommand struct {
	Race          string `validate:"required"`
	ParticipantID string `validate:"required"`
	ConnectionID  string `validate:"required"`
}

func (c LeaveRaceCommand) RaceID() domain.RaceID {
	return domain.RaceID(c.Race)
}

// UpdatePositionCommand reports how much of the race content a participant completed.
type UpdatePositionCommand struct {
	Race          string  `validate:"required"`
	ParticipantID string  `validate:"required"`
	ConnectionID  string  `validate:"required"`
	Position      float64 `validate:"gte=0,lte=100"`
}

func (c UpdatePositionCommand) RaceID() domain.RaceID {
	return domain.RaceID(c.Race)
}

// LeaveResult is either the updated room or the notice that the room was removed.
type LeaveResult struct {
	State   domain.RaceState
	Removed bool
}
