package services

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
)

// hubHarness upgrades inbound test connections and hands the server-side
// client back so tests can unregister it.
func hubHarness(t *testing.T, hub *RealtimeHub) (*httptest.Server, chan *WSClient) {
	t.Helper()
	registered := make(chan *WSClient, 4)
	upgrader := websocket.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseUint(r.URL.Query().Get("user"), 10, 32)
		if err != nil {
			http.Error(w, "bad user", http.StatusBadRequest)
			return
		}
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		client := &WSClient{UserID: uint(id), Conn: conn}
		hub.Register(client)
		registered <- client
	}))
	t.Cleanup(srv.Close)
	return srv, registered
}

func dialHub(t *testing.T, srv *httptest.Server, userID uint) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "?user=" + strconv.FormatUint(uint64(userID), 10)
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("failed to dial hub: %v", err)
	}
	t.Cleanup(func() { conn.Close() })
	return conn
}

func TestHubBroadcastReachesOwnUserOnly(t *testing.T) {
	hub := NewRealtimeHub()
	srv, registered := hubHarness(t, hub)

	mine := dialHub(t, srv, 1)
	other := dialHub(t, srv, 2)
	<-registered
	<-registered

	hub.Broadcast(1, map[string]any{"kind": "log.updated", "date": "2024-01-15"})

	mine.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, msg, err := mine.ReadMessage()
	if err != nil {
		t.Fatalf("expected a message for user 1: %v", err)
	}
	if !strings.Contains(string(msg), "log.updated") {
		t.Errorf("unexpected payload: %s", msg)
	}

	other.SetReadDeadline(time.Now().Add(200 * time.Millisecond))
	if _, _, err := other.ReadMessage(); err == nil {
		t.Error("user 2 received a broadcast meant for user 1")
	}
}

func TestHubUnregisterClosesAndCleansUp(t *testing.T) {
	hub := NewRealtimeHub()
	srv, registered := hubHarness(t, hub)

	conn := dialHub(t, srv, 1)
	client := <-registered

	hub.Unregister(client)

	hub.mu.RLock()
	_, stillThere := hub.clients[1]
	hub.mu.RUnlock()
	if stillThere {
		t.Error("user entry not removed after last client unregistered")
	}

	// The server side closed the connection, so the peer's read fails.
	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	if _, _, err := conn.ReadMessage(); err == nil {
		t.Error("expected read to fail after unregister")
	}

	// Broadcasting to a user with no clients is a no-op.
	hub.Broadcast(1, map[string]any{"kind": "log.updated"})
}

func TestHubMultipleClientsPerUser(t *testing.T) {
	hub := NewRealtimeHub()
	srv, registered := hubHarness(t, hub)

	first := dialHub(t, srv, 1)
	second := dialHub(t, srv, 1)
	<-registered
	<-registered

	hub.Broadcast(1, map[string]any{"kind": "log.updated", "date": "2024-01-15"})

	for i, conn := range []*websocket.Conn{first, second} {
		conn.SetReadDeadline(time.Now().Add(2 * time.Second))
		if _, _, err := conn.ReadMessage(); err != nil {
			t.Errorf("connection %d missed the broadcast: %v", i, err)
		}
	}
}
