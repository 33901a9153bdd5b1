package sink

import (
	"code-racer/domain/event"
	"code-racer/errors"
	"context"
)

// ConnectionSink buffers the race events of one client connection.
// The transport drains Events in order and writes them to the socket.
type ConnectionSink struct {
	Events chan event.RaceEvent
}

func NewConnectionSink(bufferSize int) *ConnectionSink {
	return &ConnectionSink{Events: make(chan event.RaceEvent, bufferSize)}
}

// Consume is called by the broadcaster.
// It never blocks: a slow client loses the event instead of stalling its room.
func (s *ConnectionSink) Consume(ctx context.Context, e event.RaceEvent) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}
	select {
	case s.Events <- e:
		return nil
	default:
		return errors.ErrSinkFull
	}
}
