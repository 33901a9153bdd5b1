package services

import (
	"code-racer/contract"
	"code-racer/domain"
	"code-racer/domain/race"
	"code-racer/errors"
	"context"
	"fmt"
	"log/slog"

	"github.com/go-playground/validator/v10"
)

// RaceService is the gateway between connections and the room registry.
// It keeps no state: subscriptions live in the broadcaster, rooms in the registry.
type RaceService struct {
	log         *slog.Logger
	validator   *validator.Validate
	registry    contract.IRoomRegistry
	broadcaster contract.IBroadcaster
}

var _ contract.IRaceService = (*RaceService)(nil)

func NewRaceService(log *slog.Logger, registry contract.IRoomRegistry, broadcaster contract.IBroadcaster) *RaceService {
	return &RaceService{
		log:         log,
		validator:   validator.New(),
		registry:    registry,
		broadcaster: broadcaster,
	}
}

func (s *RaceService) Connect(connectionID domain.ConnectionID, sink contract.EventSink) {
	s.broadcaster.Register(connectionID, sink)
	s.log.Debug("Connection registered", "connection_id", connectionID)
}

// EnterRace subscribes the connection to the race channel before entering,
// so the connection receives its own USER_RACE_ENTER.
// A refused entry withdraws the subscription unless the connection already holds a seat there.
func (s *RaceService) EnterRace(ctx context.Context, cmd race.EnterRaceCommand) (domain.RaceState, error) {
	if err := s.validator.Struct(cmd); err != nil {
		return domain.RaceState{}, fmt.Errorf("%w: %v", errors.ErrValidation, err)
	}
	raceID := cmd.RaceID()
	connectionID := domain.ConnectionID(cmd.ConnectionID)

	s.broadcaster.Join(connectionID, raceID)
	state, err := s.registry.Enter(ctx, raceID, domain.ParticipantID(cmd.ParticipantID), connectionID)
	if err != nil {
		s.partIfUnseated(connectionID, raceID)
		s.log.Debug("Entry refused", "race_id", raceID, "participant_id", cmd.ParticipantID, "error", err)
		return domain.RaceState{}, err
	}
	return state, nil
}

func (s *RaceService) LeaveRace(ctx context.Context, cmd race.LeaveRaceCommand) error {
	if err := s.validator.Struct(cmd); err != nil {
		return fmt.Errorf("%w: %v", errors.ErrValidation, err)
	}
	return s.leave(ctx, cmd.RaceID(), domain.ParticipantID(cmd.ParticipantID), domain.ConnectionID(cmd.ConnectionID))
}

func (s *RaceService) UpdatePosition(ctx context.Context, cmd race.UpdatePositionCommand) error {
	if err := s.validator.Struct(cmd); err != nil {
		return fmt.Errorf("%w: %v", errors.ErrValidation, err)
	}
	return s.registry.UpdatePosition(ctx, cmd.RaceID(), domain.ParticipantID(cmd.ParticipantID), cmd.Position)
}

// seat is one participant bound to a connection in one room.
type seat struct {
	race        domain.RaceID
	participant domain.ParticipantID
}

// Disconnect synthesizes a leave for every seat bound to the connection,
// then drops the connection from the broadcaster.
func (s *RaceService) Disconnect(ctx context.Context, connectionID domain.ConnectionID) {
	visited := make(map[seat]struct{})
	for {
		raceID, participantID, ok := s.registry.FindByConnection(connectionID)
		if !ok {
			break
		}
		current := seat{race: raceID, participant: participantID}
		if _, seen := visited[current]; seen {
			s.log.Warn("Connection still seated after leave",
				"race_id", raceID, "participant_id", participantID, "connection_id", connectionID)
			break
		}
		visited[current] = struct{}{}
		if err := s.leave(ctx, raceID, participantID, connectionID); err != nil {
			s.log.Debug("Leave on disconnect failed", "race_id", raceID, "error", err)
		}
	}
	s.broadcaster.Unregister(connectionID)
	s.log.Debug("Connection unregistered", "connection_id", connectionID, "seats_left", len(visited))
}

func (s *RaceService) leave(ctx context.Context, raceID domain.RaceID,
	participantID domain.ParticipantID, connectionID domain.ConnectionID) error {
	result, err := s.registry.Leave(ctx, raceID, participantID, connectionID)
	s.partIfUnseated(connectionID, raceID)
	if err != nil {
		s.log.Info("Leave aborted", "race_id", raceID, "participant_id", participantID, "error", err)
		return err
	}
	if result.Removed {
		s.log.Debug("Last participant left", "race_id", raceID)
	}
	return nil
}

// partIfUnseated drops the race subscription of a connection no participant of the room is bound to.
// Messages of one connection are handled one at a time, so the seat cannot change in between.
func (s *RaceService) partIfUnseated(connectionID domain.ConnectionID, raceID domain.RaceID) {
	if s.registry.Seated(raceID, connectionID) {
		return
	}
	s.broadcaster.Part(connectionID, raceID)
}
