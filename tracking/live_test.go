package tracking

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"transport-admin/models"
)

func dialHub(t *testing.T, srv *httptest.Server) *websocket.Conn {
	t.Helper()
	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	t.Cleanup(func() { conn.Close() })
	return conn
}

func waitForClients(t *testing.T, hub *Hub, want int) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for hub.ClientCount() != want {
		if time.Now().After(deadline) {
			t.Fatalf("hub has %d clients, want %d", hub.ClientCount(), want)
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func TestHub_BroadcastDelivers(t *testing.T) {
	hub := NewHub()
	srv := httptest.NewServer(http.HandlerFunc(hub.ServeWS))
	t.Cleanup(srv.Close)

	conn := dialHub(t, srv)
	waitForClients(t, hub, 1)

	hub.Broadcast(PingUpdate{Ping: models.LocationPing{TruckID: 7, Latitude: 51.5, Longitude: -0.12}})

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, payload, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	var update PingUpdate
	if err := json.Unmarshal(payload, &update); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if update.Ping.TruckID != 7 {
		t.Fatalf("unexpected update: %+v", update)
	}
}

func TestHub_ConcurrentBroadcasts(t *testing.T) {
	hub := NewHub()
	srv := httptest.NewServer(http.HandlerFunc(hub.ServeWS))
	t.Cleanup(srv.Close)

	first := dialHub(t, srv)
	second := dialHub(t, srv)
	waitForClients(t, hub, 2)

	// Concurrent ping ingestion broadcasts from many goroutines; every
	// client must still receive every update.
	const updates = 10
	var wg sync.WaitGroup
	for i := 0; i < updates; i++ {
		wg.Add(1)
		go func(truckID int64) {
			defer wg.Done()
			hub.Broadcast(PingUpdate{Ping: models.LocationPing{TruckID: truckID}})
		}(int64(i + 1))
	}
	wg.Wait()

	for _, conn := range []*websocket.Conn{first, second} {
		conn.SetReadDeadline(time.Now().Add(2 * time.Second))
		for i := 0; i < updates; i++ {
			if _, _, err := conn.ReadMessage(); err != nil {
				t.Fatalf("read %d: %v", i, err)
			}
		}
	}
	if hub.ClientCount() != 2 {
		t.Fatalf("clients dropped during broadcast: %d", hub.ClientCount())
	}
}
