package api

import (
	"sync"

	"github.com/gorilla/websocket"
)

// Hub fans share events out to the websocket watchers of each session.
type Hub struct {
	mu    sync.Mutex
	conns map[string][]*websocket.Conn
}

// NewHub creates an empty hub.
func NewHub() *Hub {
	return &Hub{conns: make(map[string][]*websocket.Conn)}
}

// Register adds a watcher for a session token.
func (h *Hub) Register(token string, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.conns[token] = append(h.conns[token], conn)
}

// Broadcast sends v to every watcher of the token. Connections that fail
// to write are closed and dropped.
func (h *Hub) Broadcast(token string, v any) {
	h.mu.Lock()
	defer h.mu.Unlock()

	conns := h.conns[token]
	alive := conns[:0]
	for _, conn := range conns {
		if err := conn.WriteJSON(v); err != nil {
			conn.Close()
			continue
		}
		alive = append(alive, conn)
	}
	if len(alive) == 0 {
		delete(h.conns, token)
	} else {
		h.conns[token] = alive
	}
}
