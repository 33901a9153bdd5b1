// Package domain contains core concepts of the race coordinator.
// This file defines race identifiers and the room lifecycle states.
// No runtime, network, or storage logic should be added here.
package domain

import "fmt"

type RaceID string

type ParticipantID string

type ConnectionID string

type Status string

const (
	StatusWaiting   Status = "waiting"
	StatusCountdown Status = "countdown"
	StatusRunning   Status = "running"
	StatusFinished  Status = "finished"
)

// ChannelName returns the broadcast channel every subscriber of a race listens on.
// It is derived from the race identifier only, so any client can compute it.
func ChannelName(raceID RaceID) string {
	return fmt.Sprintf("RACE_%s", raceID)
}
