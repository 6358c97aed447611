package services

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

const (
	clientSendBuffer = 16
	keepalivePeriod  = 25 * time.Second
	writeWait        = 10 * time.Second
)

// WSClient owns one websocket connection. All writes to the connection go
// through the send channel and are performed by WritePump alone, so broadcasts
// and keepalive pings never interleave on the wire.
type WSClient struct {
	UserID uint
	conn   *websocket.Conn
	send   chan []byte
}

func NewWSClient(userID uint, conn *websocket.Conn) *WSClient {
	return &WSClient{
		UserID: userID,
		conn:   conn,
		send:   make(chan []byte, clientSendBuffer),
	}
}

// WritePump drains the send channel and emits keepalive pings. It is the only
// goroutine allowed to write to the connection and exits when the hub closes
// the send channel or a write fails.
func (c *WSClient) WritePump() {
	ticker := time.NewTicker(keepalivePeriod)
	defer func() {
		ticker.Stop()
		_ = c.conn.Close()
	}()

	for {
		select {
		case msg, ok := <-c.send:
			if !ok {
				_ = c.conn.WriteControl(websocket.CloseMessage, nil, time.Now().Add(writeWait))
				return
			}
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				return
			}
		case <-ticker.C:
			if err := c.conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait)); err != nil {
				return
			}
		}
	}
}

// ReadUntilClosed consumes incoming frames until the peer goes away. Clients
// only listen on this stream; anything they send is discarded.
func (c *WSClient) ReadUntilClosed() {
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return
		}
	}
}

// RealtimeHub fans change events out to every websocket a user has open.
// Register on connect, Unregister unconditionally when the read side ends.
type RealtimeHub struct {
	mu      sync.RWMutex
	clients map[uint]map[*WSClient]struct{}
}

func NewRealtimeHub() *RealtimeHub {
	return &RealtimeHub{clients: make(map[uint]map[*WSClient]struct{})}
}

func (h *RealtimeHub) Register(c *WSClient) {
	h.mu.Lock()
	if h.clients[c.UserID] == nil {
		h.clients[c.UserID] = make(map[*WSClient]struct{})
	}
	h.clients[c.UserID][c] = struct{}{}
	h.mu.Unlock()
}

// Unregister removes the client and closes its send channel, which stops the
// write pump. Safe to call once per client; Broadcast holds the read lock
// while enqueueing, so the close cannot race a send.
func (h *RealtimeHub) Unregister(c *WSClient) {
	h.mu.Lock()
	defer h.mu.Unlock()
	set := h.clients[c.UserID]
	if set == nil {
		return
	}
	if _, ok := set[c]; !ok {
		return
	}
	delete(set, c)
	if len(set) == 0 {
		delete(h.clients, c.UserID)
	}
	close(c.send)
}

// Broadcast enqueues the event on every open socket of the user. A client
// whose buffer is full misses the event rather than blocking the caller.
func (h *RealtimeHub) Broadcast(userID uint, kind string, data any) {
	msg, _ := json.Marshal(map[string]any{"kind": kind, "data": data})
	h.mu.RLock()
	defer h.mu.RUnlock()
	for c := range h.clients[userID] {
		select {
		case c.send <- msg:
		default:
		}
	}
}

var _hub *RealtimeHub

// InitRealtime wires the package-level hub used by EmitEvent.
func InitRealtime(h *RealtimeHub) { _hub = h }

// EmitEvent is safe to call anywhere; it is a no-op before InitRealtime.
func EmitEvent(userID uint, kind string, data any) {
	if _hub == nil {
		return
	}
	_hub.Broadcast(userID, kind, data)
}
