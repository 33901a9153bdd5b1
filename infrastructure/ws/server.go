// Package ws exposes the race coordinator over websockets.
// Each socket gets a connection id, announced with CONNECTION_ACK, and a
// buffered sink receiving the events of every race it entered.
package ws

import (
	"code-racer/contract"
	"code-racer/domain"
	"code-racer/domain/event"
	"code-racer/errors"
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

type Options struct {
	BufferSize     int
	WriteWait      time.Duration
	PongWait       time.Duration
	MaxMessageSize int64
}

type Server struct {
	log      *slog.Logger
	service  contract.IRaceService
	upgrader websocket.Upgrader
	opts     Options
	mu       sync.Mutex
	clients  map[domain.ConnectionID]*client
	wg       sync.WaitGroup
}

func NewServer(log *slog.Logger, service contract.IRaceService, opts Options) *Server {
	return &Server{
		log:     log,
		service: service,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  4096,
			WriteBufferSize: 4096,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
		opts:    opts,
		clients: make(map[domain.ConnectionID]*client),
	}
}

// ServeHTTP upgrades the request and blocks for the lifetime of the socket.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.Debug("Upgrade failed", "remote", r.RemoteAddr, "error", err)
		return
	}
	s.wg.Add(1)
	defer s.wg.Done()

	connectionID := domain.ConnectionID(uuid.NewString())
	c := newClient(connectionID, conn, s.log, s.opts)

	ack, err := encode(ConnectionAckType, ConnectionAckPayload{ConnectionID: string(connectionID)})
	if err != nil {
		s.log.Error("Failed to encode ack", "error", err)
		_ = conn.Close()
		return
	}
	if err := c.writeNow(ack); err != nil {
		s.log.Debug("Ack not delivered", "connection_id", connectionID, "error", err)
		_ = conn.Close()
		return
	}

	s.track(c)
	s.service.Connect(connectionID, c.sink)
	s.log.Info("Client connected", "connection_id", connectionID, "remote", r.RemoteAddr)

	go c.writePump()
	c.readPump(r.Context(), s.handle)

	// The request context may already be canceled, the leaves still have to reach the other participants.
	s.service.Disconnect(context.WithoutCancel(r.Context()), connectionID)
	s.untrack(connectionID)
	close(c.done)
	s.log.Info("Client disconnected", "connection_id", connectionID)
}

func (s *Server) handle(ctx context.Context, c *client, data []byte) {
	eventType, payload, err := c.decode(data)
	if err != nil {
		c.replyError(eventType, err)
		return
	}

	switch eventType {
	case string(event.UserRaceEnterType):
		_, err = s.service.EnterRace(ctx, enterCommand(payload))
	case string(event.UserRaceLeaveType):
		err = s.service.LeaveRace(ctx, leaveCommand(payload))
	case UserRacePositionType:
		err = s.service.UpdatePosition(ctx, positionCommand(payload))
	default:
		err = fmt.Errorf("%w: %q", errors.ErrUnknownInboundEvent, eventType)
	}
	if err != nil {
		c.log.Debug("Event rejected", "type", eventType, "error", err)
		c.replyError(eventType, err)
	}
}

func (s *Server) track(c *client) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.clients[c.id] = c
}

func (s *Server) untrack(connectionID domain.ConnectionID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.clients, connectionID)
}

// Connections returns the number of open sockets.
func (s *Server) Connections() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.clients)
}

// Close drops every open socket and waits until each one went through its disconnect.
// http.Server.Shutdown does not track hijacked connections, so this has to be called next to it.
func (s *Server) Close() {
	s.mu.Lock()
	for _, c := range s.clients {
		_ = c.conn.Close()
	}
	s.mu.Unlock()
	s.wg.Wait()
}
