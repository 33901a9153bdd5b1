package sink

import (
	"code-racer/domain"
	"code-racer/domain/event"
	"context"
	"sync"
)

// Timeline records every event it receives, per race, in arrival order.
type Timeline struct {
	mu     sync.Mutex
	events map[domain.RaceID][]event.RaceEvent
}

func NewTimeline() *Timeline {
	return &Timeline{events: make(map[domain.RaceID][]event.RaceEvent)}
}

func (t *Timeline) Consume(_ context.Context, e event.RaceEvent) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.events[e.RaceID()] = append(t.events[e.RaceID()], e)
	return nil
}

// Events returns a copy of what was recorded for a race.
func (t *Timeline) Events(raceID domain.RaceID) []event.RaceEvent {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]event.RaceEvent, len(t.events[raceID]))
	copy(out, t.events[raceID])
	return out
}

// Types returns the recorded event types for a race.
func (t *Timeline) Types(raceID domain.RaceID) []event.Type {
	var types []event.Type
	for _, e := range t.Events(raceID) {
		types = append(types, e.Type())
	}
	return types
}
