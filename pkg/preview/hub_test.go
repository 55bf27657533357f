package preview

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
)

// stalledClient connects a browser whose messages are never written out, as
// when the peer stops reading and its TCP window fills.
func stalledClient(t *testing.T, h *hub) *client {
	t.Helper()
	registered := make(chan *client, 1)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := h.upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		c := newClient(conn, 1)
		h.add(c)
		registered <- c
	}))
	t.Cleanup(srv.Close)

	conn, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(srv.URL, "http"), nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	select {
	case c := <-registered:
		t.Cleanup(func() { c.conn.Close() })
		return c
	case <-time.After(5 * time.Second):
		t.Fatal("client never registered")
		return nil
	}
}

func TestBroadcastDropsSlowClient(t *testing.T) {
	h := newHub()
	stalledClient(t, h)
	if h.count() != 1 {
		t.Fatalf("count = %d, want 1", h.count())
	}

	done := make(chan struct{})
	go func() {
		for i := 0; i < 3; i++ {
			h.broadcast(Message{Type: MessageHTML, HTML: "<p>x</p>"})
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("broadcast blocked on a slow client")
	}
	if h.count() != 0 {
		t.Errorf("slow client should be dropped, count = %d", h.count())
	}
}

func TestSendToDroppedClient(t *testing.T) {
	h := newHub()
	c := stalledClient(t, h)

	h.drop(c)
	h.drop(c)
	if h.send(c, []byte("{}")) {
		t.Error("send to a dropped client should report false")
	}
}
