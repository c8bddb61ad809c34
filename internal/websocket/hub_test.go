package websocket

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/synthapp/synth/internal/domain"
	"github.com/synthapp/synth/pkg/logger"
	"go.uber.org/goleak"
)

func startHub(t *testing.T) (*Hub, context.CancelFunc, <-chan error) {
	hub := NewHub(nil, logger.NewMockLogger(t))
	ctx, cancel := context.WithCancel(context.Background())
	stopped := make(chan error, 1)
	go func() { stopped <- hub.Run(ctx) }()
	return hub, cancel, stopped
}

func stopHub(t *testing.T, cancel context.CancelFunc, stopped <-chan error) {
	cancel()
	select {
	case err := <-stopped:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(2 * time.Second):
		t.Fatal("hub did not stop")
	}
}

func receive(t *testing.T, c *Client) Frame {
	t.Helper()
	select {
	case payload, ok := <-c.send:
		require.True(t, ok, "send channel closed")
		var frame Frame
		require.NoError(t, json.Unmarshal(payload, &frame))
		return frame
	case <-time.After(time.Second):
		t.Fatal("no frame received")
	}
	return Frame{}
}

func TestHub_PublishMessageReachesRoomOnly(t *testing.T) {
	defer goleak.VerifyNone(t)
	hub, cancel, stopped := startHub(t)

	alice := newClient(hub, nil, "chat-1", "alice")
	bob := newClient(hub, nil, "chat-1", "bob")
	other := newClient(hub, nil, "chat-2", "carol")
	hub.register <- alice
	hub.register <- bob
	hub.register <- other

	hub.PublishMessage("chat-1", &domain.Message{ID: "m1", ChatID: "chat-1", SenderID: "alice", Content: "see you at the show"})

	for _, c := range []*Client{alice, bob} {
		frame := receive(t, c)
		assert.Equal(t, FrameTypeMessage, frame.Type)
		assert.Equal(t, "chat-1", frame.ChatID)
		data, ok := frame.Data.(map[string]interface{})
		require.True(t, ok)
		assert.Equal(t, "see you at the show", data["content"])
	}
	assert.Empty(t, other.send)
	assert.Equal(t, 3, hub.ClientCount())
	assert.Equal(t, 2, hub.RoomSize("chat-1"))

	stopHub(t, cancel, stopped)
}

func TestHub_UnregisterClosesClient(t *testing.T) {
	defer goleak.VerifyNone(t)
	hub, cancel, stopped := startHub(t)

	c := newClient(hub, nil, "chat-1", "alice")
	hub.register <- c
	hub.unregister <- c
	hub.unregister <- c

	_, open := <-c.send
	assert.False(t, open)
	assert.Equal(t, 0, hub.RoomSize("chat-1"))
	assert.False(t, c.trySend([]byte("late")))

	stopHub(t, cancel, stopped)
}

func TestHub_SlowClientIsDropped(t *testing.T) {
	defer goleak.VerifyNone(t)
	hub, cancel, stopped := startHub(t)

	c := newClient(hub, nil, "chat-1", "alice")
	hub.register <- c
	for i := 0; i < sendBuffer; i++ {
		require.True(t, c.trySend([]byte("{}")))
	}

	hub.PublishMessage("chat-1", &domain.Message{ID: "overflow"})
	assert.Eventually(t, func() bool { return hub.RoomSize("chat-1") == 0 }, time.Second, 10*time.Millisecond)

	stopHub(t, cancel, stopped)
}

func TestHub_ShutdownClosesClients(t *testing.T) {
	defer goleak.VerifyNone(t)
	hub, cancel, stopped := startHub(t)

	c := newClient(hub, nil, "chat-1", "alice")
	hub.register <- c
	stopHub(t, cancel, stopped)

	_, open := <-c.send
	assert.False(t, open)
	assert.Equal(t, 0, hub.ClientCount())

	// publishing after shutdown must not block
	hub.PublishMessage("chat-1", &domain.Message{ID: "late"})
}

func TestHub_ServeDeliversOverWebsocket(t *testing.T) {
	defer goleak.VerifyNone(t)
	hub, cancel, stopped := startHub(t)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = hub.Serve(w, r, r.URL.Query().Get("chat_id"), "alice")
	}))

	wsURL := "ws" + strings.TrimPrefix(server.URL, "http") + "/ws/chat?chat_id=chat-9"
	conn, resp, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	_ = resp.Body.Close()

	require.Eventually(t, func() bool { return hub.RoomSize("chat-9") == 1 }, time.Second, 10*time.Millisecond)

	hub.PublishMessage("chat-9", &domain.Message{ID: "m1", ChatID: "chat-9", Content: "hello"})
	var frame Frame
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	require.NoError(t, conn.ReadJSON(&frame))
	assert.Equal(t, FrameTypeMessage, frame.Type)
	assert.Equal(t, "chat-9", frame.ChatID)

	require.NoError(t, conn.WriteJSON(Frame{Type: FrameTypePing}))
	require.NoError(t, conn.ReadJSON(&frame))
	assert.Equal(t, FrameTypePong, frame.Type)

	require.NoError(t, conn.Close())
	require.Eventually(t, func() bool { return hub.RoomSize("chat-9") == 0 }, 2*time.Second, 10*time.Millisecond)

	server.Close()
	stopHub(t, cancel, stopped)
}

func TestHub_ServeAfterStop(t *testing.T) {
	defer goleak.VerifyNone(t)
	hub, cancel, stopped := startHub(t)
	stopHub(t, cancel, stopped)

	served := make(chan error, 1)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		served <- hub.Serve(w, r, "chat-1", "alice")
	}))
	defer server.Close()

	conn, resp, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(server.URL, "http"), nil)
	if err == nil {
		_ = resp.Body.Close()
		defer conn.Close()
	}
	assert.True(t, errors.Is(<-served, ErrHubStopped))
}

func TestOriginChecker(t *testing.T) {
	req := func(origin string) *http.Request {
		r := httptest.NewRequest(http.MethodGet, "/ws/chat", nil)
		if origin != "" {
			r.Header.Set("Origin", origin)
		}
		return r
	}

	assert.True(t, originChecker(nil)(req("https://evil.example")))
	assert.True(t, originChecker([]string{"*"})(req("https://evil.example")))

	check := originChecker([]string{"https://synth.app"})
	assert.True(t, check(req("https://synth.app")))
	assert.True(t, check(req("")))
	assert.False(t, check(req("https://evil.example")))
}
