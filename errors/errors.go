package errors

import "fmt"

var (
	ErrWorkerPanic          = fmt.Errorf("worker panic")
	ErrRoomFull             = fmt.Errorf("room is full")
	ErrRoomNotFound         = fmt.Errorf("room not found")
	ErrParticipantNotFound  = fmt.Errorf("participant not found in room")
	ErrValidation           = fmt.Errorf("invalid payload")
	ErrStorage              = fmt.Errorf("storage failure")
	ErrSinkFull             = fmt.Errorf("subscriber buffer is full")
	ErrRaceNotFound         = fmt.Errorf("race record not found")
	ErrInvalidCapacity      = fmt.Errorf("room capacity must allow at least two participants")
	ErrInvalidCountdown     = fmt.Errorf("countdown start must be positive")
	ErrUnknownInboundEvent  = fmt.Errorf("unknown inbound event")
	ErrConnectionIDMismatch = fmt.Errorf("connection id does not match the socket")
)
