// Package websocket delivers chat messages to connected clients. Each client
// subscribes to one chat room when it connects.
package websocket

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"github.com/gorilla/websocket"
	"github.com/synthapp/synth/internal/domain"
	"github.com/synthapp/synth/internal/metrics"
	"github.com/synthapp/synth/pkg/logger"
)

// Frame types
const (
	FrameTypeMessage = "message"
	FrameTypePing    = "ping"
	FrameTypePong    = "pong"
)

var ErrHubStopped = errors.New("websocket hub is stopped")

// Frame is the envelope of every server to client message
type Frame struct {
	Type   string      `json:"type"`
	ChatID string      `json:"chat_id,omitempty"`
	Data   interface{} `json:"data,omitempty"`
}

type roomMessage struct {
	chatID  string
	payload []byte
}

// Hub tracks connected clients per chat room. Room membership is only
// mutated by the Run goroutine.
type Hub struct {
	rooms      map[string]map[*Client]struct{}
	register   chan *Client
	unregister chan *Client
	broadcast  chan roomMessage
	done       chan struct{}
	upgrader   websocket.Upgrader
	logger     logger.Logger
	mu         sync.RWMutex
}

func NewHub(allowedOrigins []string, log logger.Logger) *Hub {
	return &Hub{
		rooms:      make(map[string]map[*Client]struct{}),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan roomMessage, 256),
		done:       make(chan struct{}),
		upgrader: websocket.Upgrader{
			ReadBufferSize:   1024,
			WriteBufferSize:  1024,
			HandshakeTimeout: 10 * time.Second,
			CheckOrigin:      originChecker(allowedOrigins),
		},
		logger: log,
	}
}

// Run processes registrations and broadcasts until ctx is cancelled, then
// closes every client.
func (h *Hub) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			count := h.ClientCount()
			close(h.done)
			h.closeAll()
			h.logger.WithField("clients_closed", count).Info("Websocket hub stopped")
			return ctx.Err()

		case client := <-h.register:
			h.add(client)

		case client := <-h.unregister:
			h.remove(client)

		case msg := <-h.broadcast:
			h.deliver(msg)
		}
	}
}

// PublishMessage queues a chat message for every subscriber of the chat. It
// never blocks; messages are dropped when the queue is full.
func (h *Hub) PublishMessage(chatID string, message *domain.Message) {
	payload, err := json.Marshal(Frame{Type: FrameTypeMessage, ChatID: chatID, Data: message})
	if err != nil {
		metrics.WSErrors.WithLabelValues("encode").Inc()
		h.logger.WithField("chat_id", chatID).Error(fmt.Sprintf("Failed to encode websocket frame: %v", err))
		return
	}

	select {
	case <-h.done:
		return
	default:
	}

	select {
	case h.broadcast <- roomMessage{chatID: chatID, payload: payload}:
	default:
		metrics.WSErrors.WithLabelValues("dropped").Inc()
		h.logger.WithField("chat_id", chatID).Warn("Websocket broadcast queue full, message dropped")
	}
}

// Serve upgrades the request and subscribes the connection to chatID. The
// caller must have authenticated the user and checked chat membership.
func (h *Hub) Serve(w http.ResponseWriter, r *http.Request, chatID, userID string) error {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		metrics.WSErrors.WithLabelValues("upgrade").Inc()
		return fmt.Errorf("failed to upgrade connection: %w", err)
	}

	client := newClient(h, conn, chatID, userID)
	select {
	case h.register <- client:
	case <-h.done:
		_ = conn.Close()
		return ErrHubStopped
	}

	go client.writePump()
	go client.readPump()
	return nil
}

func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	count := 0
	for _, room := range h.rooms {
		count += len(room)
	}
	return count
}

func (h *Hub) RoomSize(chatID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.rooms[chatID])
}

func (h *Hub) add(c *Client) {
	h.mu.Lock()
	room, ok := h.rooms[c.chatID]
	if !ok {
		room = make(map[*Client]struct{})
		h.rooms[c.chatID] = room
	}
	room[c] = struct{}{}
	h.mu.Unlock()

	metrics.WSConnections.Inc()
	h.logger.WithFields(map[string]interface{}{
		"chat_id": c.chatID,
		"user_id": c.userID,
	}).Debug("Websocket client connected")
}

func (h *Hub) remove(c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.removeLocked(c)
}

func (h *Hub) removeLocked(c *Client) {
	room, ok := h.rooms[c.chatID]
	if !ok {
		return
	}
	if _, ok := room[c]; !ok {
		return
	}
	delete(room, c)
	if len(room) == 0 {
		delete(h.rooms, c.chatID)
	}
	c.close()
	metrics.WSConnections.Dec()
}

func (h *Hub) deliver(msg roomMessage) {
	h.mu.Lock()
	defer h.mu.Unlock()

	var slow []*Client
	for client := range h.rooms[msg.chatID] {
		if client.trySend(msg.payload) {
			metrics.WSMessagesSent.Inc()
		} else {
			slow = append(slow, client)
		}
	}
	for _, client := range slow {
		metrics.WSErrors.WithLabelValues("slow_client").Inc()
		h.removeLocked(client)
	}
}

func (h *Hub) closeAll() {
	h.mu.Lock()
	defer h.mu.Unlock()

	for _, room := range h.rooms {
		for client := range room {
			h.removeLocked(client)
		}
	}
}

// originChecker allows every origin when the list is empty or holds "*"
func originChecker(allowed []string) func(r *http.Request) bool {
	for _, origin := range allowed {
		if origin == "*" {
			allowed = nil
			break
		}
	}
	return func(r *http.Request) bool {
		if len(allowed) == 0 {
			return true
		}
		origin := r.Header.Get("Origin")
		if origin == "" {
			return true
		}
		for _, o := range allowed {
			if o == origin {
				return true
			}
		}
		return false
	}
}
