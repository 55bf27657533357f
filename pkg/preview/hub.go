package preview

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

// MessageType identifies a server to client message.
type MessageType string

const (
	// MessageHTML carries the rendered body.
	MessageHTML MessageType = "html"

	// MessageResult reports a settled dialog.
	MessageResult MessageType = "result"
)

// Message is sent to browsers via WebSocket.
type Message struct {
	Type   MessageType `json:"type"`
	HTML   string      `json:"html,omitempty"`
	Kind   string      `json:"kind,omitempty"`
	Result string      `json:"result,omitempty"`
	Value  string      `json:"value,omitempty"`
}

// ClientEvent is sent by browsers when an element with a handler is used.
type ClientEvent struct {
	HID   string `json:"hid"`
	Event string `json:"event"`
	Value string `json:"value,omitempty"`
}

const (
	// sendBuffer is how many messages may wait for a slow client before it
	// is disconnected.
	sendBuffer = 32

	// writeWait bounds a single write to a client.
	writeWait = 10 * time.Second
)

// client is one browser connection. Only its writer goroutine writes to conn.
type client struct {
	conn *websocket.Conn
	send chan []byte
}

func newClient(conn *websocket.Conn, buffer int) *client {
	return &client{conn: conn, send: make(chan []byte, buffer)}
}

// writePump writes queued messages until send is closed or a write fails.
func (c *client) writePump() {
	defer c.conn.Close()
	for data := range c.send {
		c.conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := c.conn.WriteMessage(websocket.TextMessage, data); err != nil {
			return
		}
	}
	c.conn.SetWriteDeadline(time.Now().Add(writeWait))
	c.conn.WriteMessage(websocket.CloseMessage, []byte{})
}

// hub manages WebSocket connections. Sending never blocks: a client whose
// buffer is full is dropped.
type hub struct {
	clients  map[*client]bool
	mu       sync.RWMutex
	upgrader websocket.Upgrader
}

func newHub() *hub {
	return &hub{
		clients: make(map[*client]bool),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024 * 16,
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
	}
}

func (h *hub) upgrade(w http.ResponseWriter, r *http.Request) (*client, error) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		return nil, err
	}
	c := newClient(conn, sendBuffer)
	h.add(c)
	go c.writePump()
	return c, nil
}

func (h *hub) add(c *client) {
	h.mu.Lock()
	h.clients[c] = true
	h.mu.Unlock()
}

// drop unregisters c and stops its writer. Safe to call more than once.
func (h *hub) drop(c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.remove(c)
}

// remove requires h.mu held for writing.
func (h *hub) remove(c *client) {
	if !h.clients[c] {
		return
	}
	delete(h.clients, c)
	close(c.send)
}

// send queues data for c. It reports false when c is gone or too slow.
func (h *hub) send(c *client, data []byte) bool {
	h.mu.RLock()
	ok := h.clients[c]
	if ok {
		select {
		case c.send <- data:
		default:
			ok = false
		}
	}
	h.mu.RUnlock()
	if !ok {
		h.drop(c)
	}
	return ok
}

// broadcast queues msg for all connected clients.
func (h *hub) broadcast(msg Message) {
	data, err := json.Marshal(msg)
	if err != nil {
		return
	}

	var slow []*client
	h.mu.RLock()
	for c := range h.clients {
		select {
		case c.send <- data:
		default:
			slow = append(slow, c)
		}
	}
	h.mu.RUnlock()

	if len(slow) == 0 {
		return
	}
	h.mu.Lock()
	for _, c := range slow {
		h.remove(c)
	}
	h.mu.Unlock()
}

func (h *hub) count() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

func (h *hub) close() {
	h.mu.Lock()
	defer h.mu.Unlock()

	for c := range h.clients {
		h.remove(c)
	}
}
