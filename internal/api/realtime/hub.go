// Package realtime maintains the websocket channel. The channel carries
// no application messages; it only tracks who is connected and logs
// connects and disconnects.
package realtime

import (
	"sync"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"

	"github.com/quickbites/auth-service/internal/api/metrics"
)

// Hub is the set of currently connected realtime clients.
type Hub struct {
	mu    sync.Mutex
	conns map[*websocket.Conn]struct{}
	log   zerolog.Logger
}

func NewHub(log zerolog.Logger) *Hub {
	return &Hub{
		conns: make(map[*websocket.Conn]struct{}),
		log:   log,
	}
}

// Register adds a connection to the hub.
func (h *Hub) Register(conn *websocket.Conn) {
	h.mu.Lock()
	h.conns[conn] = struct{}{}
	n := len(h.conns)
	h.mu.Unlock()

	metrics.RealtimeConnections.Set(float64(n))
	h.log.Info().
		Str("remote", conn.RemoteAddr().String()).
		Int("connected", n).
		Msg("realtime client connected")
}

// Unregister removes a connection from the hub.
func (h *Hub) Unregister(conn *websocket.Conn) {
	h.mu.Lock()
	delete(h.conns, conn)
	n := len(h.conns)
	h.mu.Unlock()

	metrics.RealtimeConnections.Set(float64(n))
	h.log.Info().
		Str("remote", conn.RemoteAddr().String()).
		Int("connected", n).
		Msg("realtime client disconnected")
}

// Count returns the number of connected clients.
func (h *Hub) Count() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.conns)
}
