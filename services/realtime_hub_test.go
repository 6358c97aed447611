package services

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// dialHub upgrades one server-side client for the given user, registers it
// and starts its write pump, returning the dialer side for assertions.
func dialHub(t *testing.T, hub *RealtimeHub, userID uint) (*websocket.Conn, *WSClient) {
	t.Helper()
	upgrader := websocket.Upgrader{}
	registered := make(chan *WSClient, 1)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		require.NoError(t, err)
		cl := NewWSClient(userID, conn)
		hub.Register(cl)
		go cl.WritePump()
		registered <- cl
	}))
	t.Cleanup(srv.Close)

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http")
	client, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	t.Cleanup(func() { client.Close() })

	return client, <-registered
}

func TestHubBroadcastReachesRegisteredClient(t *testing.T) {
	hub := NewRealtimeHub()
	client, _ := dialHub(t, hub, 1)

	hub.Broadcast(1, "goals.updated", map[string]any{"target_calories": 2000})

	client.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, msg, err := client.ReadMessage()
	require.NoError(t, err)

	var event struct {
		Kind string         `json:"kind"`
		Data map[string]any `json:"data"`
	}
	require.NoError(t, json.Unmarshal(msg, &event))
	assert.Equal(t, "goals.updated", event.Kind)
	assert.Equal(t, float64(2000), event.Data["target_calories"])
}

func TestHubBroadcastIsScopedToUser(t *testing.T) {
	hub := NewRealtimeHub()
	client, _ := dialHub(t, hub, 2)

	// event for a different user must not arrive
	hub.Broadcast(1, "preferences.updated", nil)

	client.SetReadDeadline(time.Now().Add(300 * time.Millisecond))
	_, _, err := client.ReadMessage()
	assert.Error(t, err) // read times out
}

func TestHubConcurrentBroadcastsUseSingleWriter(t *testing.T) {
	hub := NewRealtimeHub()
	client, _ := dialHub(t, hub, 3)

	const events = 10
	var wg sync.WaitGroup
	for i := 0; i < events; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			hub.Broadcast(3, "goals.updated", map[string]any{"n": fmt.Sprint(n)})
		}(i)
	}
	wg.Wait()

	// every event arrives as an intact frame
	for i := 0; i < events; i++ {
		client.SetReadDeadline(time.Now().Add(2 * time.Second))
		_, msg, err := client.ReadMessage()
		require.NoError(t, err)

		var event struct {
			Kind string `json:"kind"`
		}
		require.NoError(t, json.Unmarshal(msg, &event))
		assert.Equal(t, "goals.updated", event.Kind)
	}
}

func TestHubUnregisterIsIdempotent(t *testing.T) {
	hub := NewRealtimeHub()
	_, cl := dialHub(t, hub, 4)

	assert.NotPanics(t, func() {
		hub.Unregister(cl)
		hub.Unregister(cl)
		hub.Broadcast(4, "goals.updated", nil)
	})
}

func TestEmitEventWithoutHubIsNoop(t *testing.T) {
	prev := _hub
	_hub = nil
	defer func() { _hub = prev }()

	assert.NotPanics(t, func() {
		EmitEvent(1, "goals.updated", nil)
	})
}
