package runtime

import (
	"code-racer/contract"
	"code-racer/domain"
	"code-racer/domain/race"
	"code-racer/errors"
	"context"
	"fmt"
	"log/slog"
	"sync"
)

// roomEntry serializes every mutation of one room.
// removed is set, under mu, right before the entry leaves the registry map:
// a caller that looked the entry up before its removal must look again.
type roomEntry struct {
	mu      sync.Mutex
	room    *race.Room
	removed bool
}

// Registry is the authoritative in-memory map from race identifier to room.
//
// The top-level map lock only guards insertion, lookup and deletion of whole
// entries; mutations of a room happen under the lock of its entry, so
// different races never wait on each other.
// Events produced by a mutation are broadcast while the room lock is still
// held, which keeps the broadcast order identical to the mutation order.
type Registry struct {
	mu          sync.RWMutex
	log         *slog.Logger
	rooms       map[domain.RaceID]*roomEntry
	capacity    int
	broadcaster contract.IBroadcaster
	countdown   *CountdownScheduler
	loop        *GameLoop
	bridge      contract.IPersistenceBridge
}

var (
	_ contract.IRoomRegistry = (*Registry)(nil)
	_ contract.IStatsProvider = (*Registry)(nil)
	_ CountdownTarget         = (*Registry)(nil)
	_ LoopTarget              = (*Registry)(nil)
)

func NewRegistry(log *slog.Logger, capacity int,
	broadcaster contract.IBroadcaster,
	countdown *CountdownScheduler,
	loop *GameLoop,
	bridge contract.IPersistenceBridge) *Registry {
	return &Registry{
		log:         log,
		rooms:       make(map[domain.RaceID]*roomEntry),
		capacity:    capacity,
		broadcaster: broadcaster,
		countdown:   countdown,
		loop:        loop,
		bridge:      bridge,
	}
}

// Enter seats a participant, creating the room on first entry.
// A full room returns ErrRoomFull and is left untouched.
// Reaching two participants while waiting starts the countdown.
func (r *Registry) Enter(ctx context.Context, raceID domain.RaceID,
	participantID domain.ParticipantID, connectionID domain.ConnectionID) (domain.RaceState, error) {
	entry := r.lockOrCreate(raceID)
	defer entry.mu.Unlock()

	room := entry.room
	if err := room.Enter(participantID, connectionID); err != nil {
		if room.IsEmpty() {
			r.remove(raceID, entry)
		}
		return domain.RaceState{}, fmt.Errorf("%w: race %s", err, raceID)
	}

	if room.ShouldStartCountdown() {
		room.BeginCountdown()
		r.countdown.Start(raceID, r)
		r.log.Info("Countdown started", "race_id", raceID, "participants", room.Len())
	}
	r.flush(ctx, room)
	return room.Snapshot(), nil
}

// Leave removes a participant. The last one out finalizes the race and removes the room.
func (r *Registry) Leave(ctx context.Context, raceID domain.RaceID,
	participantID domain.ParticipantID, connectionID domain.ConnectionID) (race.LeaveResult, error) {
	entry, ok := r.lock(raceID)
	if !ok {
		return race.LeaveResult{}, fmt.Errorf("%w: race %s", errors.ErrRoomNotFound, raceID)
	}
	defer entry.mu.Unlock()

	room := entry.room
	room.Leave(participantID, connectionID)
	if !room.IsEmpty() {
		r.flush(ctx, room)
		return race.LeaveResult{State: room.Snapshot()}, nil
	}

	room.Finish()
	r.flush(ctx, room)
	state := room.Snapshot()
	r.remove(raceID, entry)
	r.countdown.Cancel(raceID)
	r.loop.Stop(raceID)
	r.bridge.EndRace(raceID)
	r.log.Info("Race finished, room removed", "race_id", raceID)
	return race.LeaveResult{State: state, Removed: true}, nil
}

func (r *Registry) UpdatePosition(_ context.Context, raceID domain.RaceID,
	participantID domain.ParticipantID, position float64) error {
	entry, ok := r.lock(raceID)
	if !ok {
		return fmt.Errorf("%w: race %s", errors.ErrRoomNotFound, raceID)
	}
	defer entry.mu.Unlock()

	if err := entry.room.UpdatePosition(participantID, position); err != nil {
		return fmt.Errorf("%w: %s in race %s", err, participantID, raceID)
	}
	return nil
}

// FindByConnection resolves a connection to the room and participant it is bound to.
// It scans every active room.
func (r *Registry) FindByConnection(connectionID domain.ConnectionID) (domain.RaceID, domain.ParticipantID, bool) {
	for _, entry := range r.entries() {
		entry.mu.Lock()
		if entry.removed {
			entry.mu.Unlock()
			continue
		}
		participantID, found := entry.room.FindConnection(connectionID)
		raceID := entry.room.ID()
		entry.mu.Unlock()
		if found {
			return raceID, participantID, true
		}
	}
	return "", "", false
}

// Seated reports whether a participant of the room is bound to the connection.
func (r *Registry) Seated(raceID domain.RaceID, connectionID domain.ConnectionID) bool {
	entry, ok := r.lock(raceID)
	if !ok {
		return false
	}
	defer entry.mu.Unlock()
	_, found := entry.room.FindConnection(connectionID)
	return found
}

// Snapshot returns a copy of a room.
func (r *Registry) Snapshot(raceID domain.RaceID) (domain.RaceState, bool) {
	entry, ok := r.lock(raceID)
	if !ok {
		return domain.RaceState{}, false
	}
	defer entry.mu.Unlock()
	return entry.room.Snapshot(), true
}

func (r *Registry) Stats() (int, int) {
	entries := r.entries()
	participants := 0
	for _, entry := range entries {
		entry.mu.Lock()
		participants += entry.room.Len()
		entry.mu.Unlock()
	}
	return len(entries), participants
}

func (r *Registry) CountdownTick(ctx context.Context, raceID domain.RaceID, remaining int) bool {
	entry, ok := r.lock(raceID)
	if !ok {
		return false
	}
	defer entry.mu.Unlock()

	// A canceled countdown may still hold a tick, it must not reach a room created since.
	if ctx.Err() != nil || !entry.room.CountdownTick(remaining) {
		return false
	}
	r.log.Debug("Countdown", "race_id", raceID, "remaining", remaining)
	r.flush(ctx, entry.room)
	return true
}

// CountdownResolved starts the race. The persisted start and the game loop are
// only triggered by the call that actually moved the room to running.
func (r *Registry) CountdownResolved(ctx context.Context, raceID domain.RaceID) {
	entry, ok := r.lock(raceID)
	if !ok {
		return
	}
	defer entry.mu.Unlock()

	if ctx.Err() != nil || !entry.room.Start() {
		return
	}
	r.flush(ctx, entry.room)
	r.bridge.StartRace(raceID)
	r.loop.Start(raceID, r)
	r.log.Info("Race started", "race_id", raceID, "participants", entry.room.Len())
}

func (r *Registry) LoopTick(ctx context.Context, raceID domain.RaceID) bool {
	entry, ok := r.lock(raceID)
	if !ok {
		return false
	}
	defer entry.mu.Unlock()

	if ctx.Err() != nil || !entry.room.Tick() {
		return false
	}
	r.flush(ctx, entry.room)
	return true
}

// lock returns the locked entry of an existing room.
func (r *Registry) lock(raceID domain.RaceID) (*roomEntry, bool) {
	r.mu.RLock()
	entry, ok := r.rooms[raceID]
	r.mu.RUnlock()
	if !ok {
		return nil, false
	}
	entry.mu.Lock()
	if entry.removed {
		entry.mu.Unlock()
		return nil, false
	}
	return entry, true
}

// lockOrCreate returns the locked entry of a room, creating it when missing.
// A new entry is locked before being published so nobody can observe it empty.
func (r *Registry) lockOrCreate(raceID domain.RaceID) *roomEntry {
	for {
		r.mu.Lock()
		entry, ok := r.rooms[raceID]
		if !ok {
			entry = &roomEntry{room: race.NewRoom(raceID, r.capacity)}
			entry.mu.Lock()
			r.rooms[raceID] = entry
			r.mu.Unlock()
			r.log.Debug("Room created", "race_id", raceID)
			return entry
		}
		r.mu.Unlock()

		entry.mu.Lock()
		if !entry.removed {
			return entry
		}
		// Removed between lookup and lock, the next pass creates a fresh room.
		entry.mu.Unlock()
	}
}

// remove must be called with entry.mu held.
func (r *Registry) remove(raceID domain.RaceID, entry *roomEntry) {
	entry.removed = true
	r.mu.Lock()
	if r.rooms[raceID] == entry {
		delete(r.rooms, raceID)
	}
	r.mu.Unlock()
}

func (r *Registry) entries() []*roomEntry {
	r.mu.RLock()
	defer r.mu.RUnlock()
	entries := make([]*roomEntry, 0, len(r.rooms))
	for _, entry := range r.rooms {
		entries = append(entries, entry)
	}
	return entries
}

func (r *Registry) flush(ctx context.Context, room *race.Room) {
	for _, evt := range room.FlushEvents() {
		r.broadcaster.Broadcast(ctx, evt)
	}
}
