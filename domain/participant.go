// Package domain contains core concepts of the race coordinator.
// This file defines Participant entities and the room snapshot they appear in.
// No runtime, network, or UI logic should be added here.
package domain

// Participant is one connected player inside a room.
// Position is the percentage (0-100) of the race content completed.
type Participant struct {
	ID           ParticipantID
	ConnectionID ConnectionID
	Position     float64
}

// RaceState is an immutable copy of a room, safe to hand out of the registry.
type RaceState struct {
	ID           RaceID
	Status       Status
	Participants []Participant
}
