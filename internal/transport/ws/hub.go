package ws

import (
	"encoding/json"
	"sync"
)

// MessageType defines the type of WebSocket message
type MessageType string

// Server message types
const (
	MsgNextQuestion   MessageType = "next_question"
	MsgRecommendation MessageType = "recommendation"
	MsgServerClosing  MessageType = "server_closing"
	MsgError          MessageType = "error"
)

// Client message types
const (
	MsgSwipe  MessageType = "swipe"
	MsgFinish MessageType = "finish"
)

// Message is the WebSocket envelope format
type Message struct {
	Type    MessageType     `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// NewMessage builds an envelope, swallowing marshal errors for payloads
// that are always marshalable structs
func NewMessage(t MessageType, payload interface{}) Message {
	data, _ := json.Marshal(payload)
	return Message{Type: t, Payload: data}
}

// Hub tracks live quiz connections by session so the server can notify
// them on shutdown
type Hub struct {
	mu    sync.RWMutex
	conns map[string]*Connection // sessionID -> conn
}

// NewHub creates a new hub
func NewHub() *Hub {
	return &Hub{
		conns: make(map[string]*Connection),
	}
}

// Register adds a connection; an existing connection for the same
// session is closed first
func (h *Hub) Register(conn *Connection) {
	h.mu.Lock()
	old := h.conns[conn.SessionID]
	h.conns[conn.SessionID] = conn
	h.mu.Unlock()

	if old != nil {
		old.Close()
	}
}

// Unregister removes a connection if it is still the current one
func (h *Hub) Unregister(conn *Connection) {
	h.mu.Lock()
	if h.conns[conn.SessionID] == conn {
		delete(h.conns, conn.SessionID)
	}
	h.mu.Unlock()
}

// ActiveSessions returns the number of live quiz connections
func (h *Hub) ActiveSessions() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.conns)
}

// Shutdown notifies every live connection and closes it
func (h *Hub) Shutdown() {
	h.mu.Lock()
	conns := make([]*Connection, 0, len(h.conns))
	for _, conn := range h.conns {
		conns = append(conns, conn)
	}
	h.conns = make(map[string]*Connection)
	h.mu.Unlock()

	msg := NewMessage(MsgServerClosing, map[string]string{"reason": "server shutting down"})
	for _, conn := range conns {
		_ = conn.Send(msg)
		conn.Close()
	}
}
