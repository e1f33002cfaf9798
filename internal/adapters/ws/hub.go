package ws

import (
	"context"
	"encoding/json"
	"sync"

	chatPort "dhvanicast/internal/ports/chat"

	"go.uber.org/zap"
)

// ChatSender persists a direct message before it is delivered.
type ChatSender interface {
	SendMessage(ctx context.Context, senderID, recipientID, body string) (*chatPort.MessageDTO, error)
}

// Event قاب رویداد روی وب‌سوکت
type Event struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

const (
	EventReceiveMessage  = "receive_message"
	EventMessageSent     = "message_sent"
	EventUserOnline      = "user_online"
	EventActiveUsersList = "active_users_list"
	EventError           = "error"
)

// Hub نگهدارنده اتصال‌های فعال و مسیریابی پیام‌ها
type Hub struct {
	chat   ChatSender
	logger *zap.Logger

	register   chan *Client
	unregister chan *Client

	mu      sync.RWMutex
	clients map[string]*Client // keyed by userID, one connection each
}

func NewHub(chat ChatSender, logger *zap.Logger) *Hub {
	return &Hub{
		chat:       chat,
		logger:     logger,
		register:   make(chan *Client),
		unregister: make(chan *Client),
		clients:    make(map[string]*Client),
	}
}

func (h *Hub) Run(ctx context.Context) {
	h.logger.Info("🚀 WebSocket hub started")
	for {
		select {
		case <-ctx.Done():
			h.logger.Info("🛑 WebSocket hub stopped")
			return
		case client := <-h.register:
			h.addClient(client)
		case client := <-h.unregister:
			h.removeClient(client)
		}
	}
}

func (h *Hub) addClient(client *Client) {
	h.mu.Lock()
	if old, ok := h.clients[client.userID]; ok {
		// one connection per user; closing the conn lets the old pumps
		// drain and unregister themselves
		old.conn.Close()
	}
	h.clients[client.userID] = client
	h.mu.Unlock()

	h.logger.Info("✅ client connected", zap.String("userID", client.userID))
	h.broadcast(EventUserOnline, map[string]string{"userId": client.userID})
	client.sendEvent(EventActiveUsersList, map[string][]string{"users": h.activeUsers()})
}

func (h *Hub) removeClient(client *Client) {
	h.mu.Lock()
	if current, ok := h.clients[client.userID]; ok && current == client {
		delete(h.clients, client.userID)
		close(client.send)
	}
	h.mu.Unlock()
	h.logger.Info("❌ client disconnected", zap.String("userID", client.userID))
}

func (h *Hub) activeUsers() []string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	users := make([]string, 0, len(h.clients))
	for id := range h.clients {
		users = append(users, id)
	}
	return users
}

func (h *Hub) broadcast(eventType string, payload interface{}) {
	raw, err := json.Marshal(payload)
	if err != nil {
		h.logger.Error("marshal broadcast payload", zap.Error(err))
		return
	}
	data, _ := json.Marshal(Event{Type: eventType, Payload: raw})

	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, client := range h.clients {
		select {
		case client.send <- data:
		default:
			// slow consumer, drop the event rather than block the hub
		}
	}
}

// handleSendMessage persists the message, acks the sender and delivers to
// the recipient if online.
func (h *Hub) handleSendMessage(client *Client, raw json.RawMessage) {
	var req struct {
		To   string `json:"to"`
		Body string `json:"body"`
	}
	if err := json.Unmarshal(raw, &req); err != nil {
		client.sendEvent(EventError, map[string]string{"message": "malformed message payload"})
		return
	}

	msg, err := h.chat.SendMessage(context.Background(), client.userID, req.To, req.Body)
	if err != nil {
		h.logger.Warn("send message failed", zap.String("from", client.userID), zap.Error(err))
		client.sendEvent(EventError, map[string]string{"message": "could not send message"})
		return
	}

	client.sendEvent(EventMessageSent, msg)

	h.mu.RLock()
	recipient, online := h.clients[req.To]
	h.mu.RUnlock()
	if online {
		recipient.sendEvent(EventReceiveMessage, msg)
	}
}
