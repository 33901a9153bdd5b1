package runtime

import (
	"code-racer/contract"
	"code-racer/domain"
	"code-racer/domain/event"
	"context"
	"log/slog"
	"sync"
)

type Set map[domain.ConnectionID]struct{}

// Broadcaster delivers race events to every connection subscribed to the race channel.
//
// A connection registers its sink once, then joins the channels of the races it enters.
// Delivery is best effort: a sink refusing an event only produces a debug log.
// Calls for one race are serialized by the room registry and every sink is a FIFO,
// so each subscriber observes events in broadcast order.
type Broadcaster struct {
	mu       sync.RWMutex
	log      *slog.Logger
	sessions map[domain.ConnectionID]contract.EventSink // map connection -> Sink
	channels map[string]Set                             // map channel to connections
}

var _ contract.IBroadcaster = (*Broadcaster)(nil)

func NewBroadcaster(log *slog.Logger) *Broadcaster {
	return &Broadcaster{
		log:      log,
		sessions: make(map[domain.ConnectionID]contract.EventSink),
		channels: make(map[string]Set),
	}
}

// Register binds a connection to the sink its events are pushed to.
func (b *Broadcaster) Register(connectionID domain.ConnectionID, sink contract.EventSink) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.sessions[connectionID] = sink
}

// Unregister drops the connection and every channel membership it had.
// Channels left without members are removed to prevent memory leaks over time.
func (b *Broadcaster) Unregister(connectionID domain.ConnectionID) {
	b.mu.Lock()
	defer b.mu.Unlock()

	delete(b.sessions, connectionID)
	for name, members := range b.channels {
		delete(members, connectionID)
		if len(members) == 0 {
			delete(b.channels, name)
		}
	}
}

// Join subscribes the connection to the channel of a race.
// If the channel does not yet exist, it is initialized on the fly.
func (b *Broadcaster) Join(connectionID domain.ConnectionID, raceID domain.RaceID) {
	b.mu.Lock()
	defer b.mu.Unlock()

	name := domain.ChannelName(raceID)
	if _, ok := b.channels[name]; !ok {
		b.channels[name] = make(Set)
	}
	b.channels[name][connectionID] = struct{}{}
}

func (b *Broadcaster) Part(connectionID domain.ConnectionID, raceID domain.RaceID) {
	b.mu.Lock()
	defer b.mu.Unlock()

	name := domain.ChannelName(raceID)
	if members, ok := b.channels[name]; ok {
		delete(members, connectionID)
		if len(members) == 0 {
			delete(b.channels, name)
		}
	}
}

// GetSinksForRace resolves the members of the race channel into their sinks.
// Returns nil if the channel doesn't exist or has no registered member.
func (b *Broadcaster) GetSinksForRace(raceID domain.RaceID) []contract.EventSink {
	b.mu.RLock()
	defer b.mu.RUnlock()

	members, ok := b.channels[domain.ChannelName(raceID)]
	if !ok {
		return nil
	}
	var activeSinks []contract.EventSink
	for connectionID := range members {
		if sink, exists := b.sessions[connectionID]; exists {
			activeSinks = append(activeSinks, sink)
		}
	}
	return activeSinks
}

func (b *Broadcaster) Broadcast(ctx context.Context, e event.RaceEvent) {
	for _, sink := range b.GetSinksForRace(e.RaceID()) {
		if err := sink.Consume(ctx, e); err != nil {
			b.log.Debug("Event not delivered",
				"race_id", e.RaceID(),
				"type", e.Type(),
				"error", err)
		}
	}
}
