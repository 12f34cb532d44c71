package websocket

import (
	"context"
	"encoding/json"
	"errors"
	"sync"

	"getunlocked-be/internal/model"
	"getunlocked-be/internal/pkg/logger"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// fanoutChannel carries cross-instance deliveries. Every instance publishes
// here and relays to whichever of the targeted user's sockets it holds.
const fanoutChannel = "notifications.fanout"

// broadcastTarget marks a fanout payload addressed to every connected user.
const broadcastTarget = "*"

var errRedisUnavailable = errors.New("redis unavailable")

// Hub tracks live websocket connections per user. A user can hold several
// at once (multi-device), and Redis pub/sub bridges instances.
type Hub struct {
	clients map[uuid.UUID][]*Client

	register   chan *Client
	unregister chan *Client

	mu sync.RWMutex

	rdb    *redis.Client
	logger logger.ILogger
}

func NewHub(rdb *redis.Client, log logger.ILogger) *Hub {
	return &Hub{
		register:   make(chan *Client),
		unregister: make(chan *Client),
		clients:    make(map[uuid.UUID][]*Client),
		rdb:        rdb,
		logger:     log,
	}
}

func (h *Hub) Run() {
	if h.rdb != nil {
		go h.relayFanout()
	}

	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client.UserID] = append(h.clients[client.UserID], client)
			h.mu.Unlock()
			h.logger.Info("Hub", "Client registered", map[string]interface{}{"user_id": client.UserID})

		case client := <-h.unregister:
			h.mu.Lock()
			if clients, ok := h.clients[client.UserID]; ok {
				for i, c := range clients {
					if c == client {
						h.clients[client.UserID] = append(clients[:i], clients[i+1:]...)
						close(client.Send)
						break
					}
				}
				if len(h.clients[client.UserID]) == 0 {
					delete(h.clients, client.UserID)
					h.logger.Info("Hub", "Last client disconnected", map[string]interface{}{"user_id": client.UserID})
				}
			}
			h.mu.Unlock()
		}
	}
}

func encodeFrame(notification model.Notification) []byte {
	data, _ := json.Marshal(map[string]interface{}{
		"type": "notification",
		"data": notification,
	})
	return data
}

// Send delivers to one user's sockets. With Redis attached the delivery
// rides the fanout channel, which this instance also subscribes to, so
// local sockets are reached exactly once either way. A failed publish
// falls back to local-only delivery.
func (h *Hub) Send(userID uuid.UUID, notification model.Notification) {
	data := encodeFrame(notification)
	if h.publishFanout(userID.String(), data) != nil {
		h.sendLocal(userID, data)
	}
}

// Broadcast delivers to every connected client on every instance.
func (h *Hub) Broadcast(notification model.Notification) {
	data := encodeFrame(notification)
	if h.publishFanout(broadcastTarget, data) != nil {
		h.broadcastLocal(data)
	}
}

func (h *Hub) sendLocal(userID uuid.UUID, data []byte) {
	h.mu.RLock()
	clients := h.clients[userID]
	h.mu.RUnlock()

	for _, client := range clients {
		select {
		case client.Send <- data:
		default:
			// Stalled reader; drop the connection rather than block the hub.
			h.logger.Warn("Hub", "Send buffer full, dropping client", map[string]interface{}{"user_id": userID})
			h.unregister <- client
		}
	}
}

func (h *Hub) broadcastLocal(data []byte) {
	h.mu.RLock()
	targets := make([]uuid.UUID, 0, len(h.clients))
	for userID := range h.clients {
		targets = append(targets, userID)
	}
	h.mu.RUnlock()

	for _, userID := range targets {
		h.sendLocal(userID, data)
	}
}

func (h *Hub) publishFanout(target string, data []byte) error {
	if h.rdb == nil {
		return errRedisUnavailable
	}
	payload, _ := json.Marshal(fanoutPayload{TargetUserID: target, Message: data})
	if err := h.rdb.Publish(context.Background(), fanoutChannel, payload).Err(); err != nil {
		h.logger.Warn("Hub", "Fanout publish failed, delivering locally only", map[string]interface{}{"error": err.Error()})
		return err
	}
	return nil
}

type fanoutPayload struct {
	TargetUserID string          `json:"target_user_id"`
	Message      json.RawMessage `json:"message"`
}

// relayFanout subscribes to the fanout channel and forwards payloads to any
// locally connected targets, including payloads this instance published.
func (h *Hub) relayFanout() {
	ctx := context.Background()
	pubsub := h.rdb.Subscribe(ctx, fanoutChannel)
	defer pubsub.Close()

	for msg := range pubsub.Channel() {
		var payload fanoutPayload
		if err := json.Unmarshal([]byte(msg.Payload), &payload); err != nil {
			h.logger.Warn("Hub", "Fanout payload parse failed", map[string]interface{}{"error": err.Error()})
			continue
		}

		if payload.TargetUserID == broadcastTarget {
			h.broadcastLocal(payload.Message)
			continue
		}

		uid, err := uuid.Parse(payload.TargetUserID)
		if err != nil {
			continue
		}
		h.sendLocal(uid, payload.Message)
	}
}
