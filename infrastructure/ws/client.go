package ws

import (
	"code-racer/domain"
	"code-racer/domain/race"
	"code-racer/errors"
	"code-racer/sink"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/gorilla/websocket"
)

// client is one websocket connection.
// Only writePump writes to the socket, only readPump reads from it.
type client struct {
	id      domain.ConnectionID
	conn    *websocket.Conn
	log     *slog.Logger
	sink    *sink.ConnectionSink
	replies chan []byte
	done    chan struct{}
	opts    Options
}

func newClient(id domain.ConnectionID, conn *websocket.Conn, log *slog.Logger, opts Options) *client {
	return &client{
		id:      id,
		conn:    conn,
		log:     log.With("connection_id", id),
		sink:    sink.NewConnectionSink(opts.BufferSize),
		replies: make(chan []byte, opts.BufferSize),
		done:    make(chan struct{}),
		opts:    opts,
	}
}

// writeNow is used before the pumps start, when the socket has no other writer.
func (c *client) writeNow(data []byte) error {
	_ = c.conn.SetWriteDeadline(time.Now().Add(c.opts.WriteWait))
	return c.conn.WriteMessage(websocket.TextMessage, data)
}

func (c *client) reply(data []byte) {
	select {
	case c.replies <- data:
	default:
		c.log.Warn("Reply buffer full, dropping reply")
	}
}

func (c *client) replyError(eventType string, err error) {
	data, encodeErr := encode(RaceErrorType, ErrorPayload{
		Event:   eventType,
		Error:   errorCode(err),
		Message: err.Error(),
	})
	if encodeErr != nil {
		c.log.Error("Failed to encode error reply", "error", encodeErr)
		return
	}
	c.reply(data)
}

// writePump drains replies and race events to the socket and keeps the peer alive with pings.
// It closes the socket on return, which also ends readPump.
func (c *client) writePump() {
	ticker := time.NewTicker(c.opts.PongWait * 9 / 10)
	defer func() {
		ticker.Stop()
		_ = c.conn.Close()
	}()

	for {
		select {
		case <-c.done:
			_ = c.conn.SetWriteDeadline(time.Now().Add(c.opts.WriteWait))
			_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
			return
		case data := <-c.replies:
			if err := c.writeNow(data); err != nil {
				c.log.Debug("Write failed", "error", err)
				return
			}
		case evt := <-c.sink.Events:
			data, err := encodeEvent(evt)
			if err != nil {
				c.log.Error("Failed to encode race event", "type", evt.Type(), "error", err)
				continue
			}
			if err := c.writeNow(data); err != nil {
				c.log.Debug("Write failed", "error", err)
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(c.opts.WriteWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// readPump blocks until the peer goes away or a read fails.
func (c *client) readPump(ctx context.Context, handle func(ctx context.Context, c *client, data []byte)) {
	c.conn.SetReadLimit(c.opts.MaxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(c.opts.PongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(c.opts.PongWait))
	})

	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				c.log.Info("Connection lost", "error", err)
			}
			return
		}
		handle(ctx, c, data)
	}
}

// decode parses an inbound frame into a command.
// A connection id in the payload must be the one of the socket it arrives on.
func (c *client) decode(data []byte) (string, InboundPayload, error) {
	var env Envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return "", InboundPayload{}, fmt.Errorf("%w: %v", errors.ErrValidation, err)
	}
	var payload InboundPayload
	if len(env.Payload) > 0 {
		if err := json.Unmarshal(env.Payload, &payload); err != nil {
			return env.Type, InboundPayload{}, fmt.Errorf("%w: %v", errors.ErrValidation, err)
		}
	}
	if payload.ConnectionID != "" && payload.ConnectionID != string(c.id) {
		return env.Type, InboundPayload{}, fmt.Errorf("%w: %s", errors.ErrConnectionIDMismatch, payload.ConnectionID)
	}
	return env.Type, payload, nil
}

func enterCommand(p InboundPayload) race.EnterRaceCommand {
	return race.EnterRaceCommand{Race: p.RaceID, ParticipantID: p.ParticipantID, ConnectionID: p.ConnectionID}
}

func leaveCommand(p InboundPayload) race.LeaveRaceCommand {
	return race.LeaveRaceCommand{Race: p.RaceID, ParticipantID: p.ParticipantID, ConnectionID: p.ConnectionID}
}

func positionCommand(p InboundPayload) race.UpdatePositionCommand {
	return race.UpdatePositionCommand{
		Race:          p.RaceID,
		ParticipantID: p.ParticipantID,
		ConnectionID:  p.ConnectionID,
		Position:      p.Position,
	}
}
