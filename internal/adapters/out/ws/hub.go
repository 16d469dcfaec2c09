// Package ws provides a WebSocket fan-out hub that pushes production
// events to connected dashboard clients. The hub implements ports.Notifier;
// delivery is best effort and never fails the business operation that
// produced the event.
package ws

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"mestrack/internal/core/ports"
)

// Topics clients can subscribe to. A client with no explicit topics
// receives everything.
const (
	TopicDashboard    = "dashboard"
	TopicEquipment    = "equipment"
	TopicWorkProgress = "work-progress"
	TopicAlerts       = "alerts"
)

// envelope is the wire format for every pushed event.
type envelope struct {
	Type      string    `json:"type"`
	Timestamp time.Time `json:"timestamp"`
	Payload   any       `json:"payload"`
}

// message is a marshaled envelope targeted at one topic.
type message struct {
	topic string
	data  []byte
}

// alertPayload is the payload for alert events.
type alertPayload struct {
	Severity string `json:"severity"`
	Message  string `json:"message"`
}

// Hub maintains active WebSocket connections and broadcasts production
// events to them by topic.
type Hub struct {
	clients map[*client]struct{}
	mutex   sync.RWMutex

	register   chan *client
	unregister chan *client
	broadcast  chan message

	done   chan struct{}
	logger *slog.Logger
}

// NewHub creates a hub. Run must be called before clients connect.
func NewHub(logger *slog.Logger) *Hub {
	return &Hub{
		clients:    make(map[*client]struct{}),
		register:   make(chan *client),
		unregister: make(chan *client),
		broadcast:  make(chan message, 256),
		done:       make(chan struct{}),
		logger:     logger.With("component", "ws_hub"),
	}
}

// Run starts the hub's main loop. Blocks until Shutdown is called,
// so it is typically launched in its own goroutine.
func (h *Hub) Run() {
	h.logger.Info("WebSocket hub started")

	for {
		select {
		case c := <-h.register:
			h.addClient(c)

		case c := <-h.unregister:
			h.removeClient(c)

		case msg := <-h.broadcast:
			h.fanOut(msg)

		case <-h.done:
			h.closeAll()
			return
		}
	}
}

// Shutdown stops the hub loop and disconnects every client.
func (h *Hub) Shutdown() {
	close(h.done)
}

// ConnectionCount returns the number of active connections.
func (h *Hub) ConnectionCount() int {
	h.mutex.RLock()
	defer h.mutex.RUnlock()
	return len(h.clients)
}

// NotifyWorkProgress pushes a work order progress event to subscribers.
func (h *Hub) NotifyWorkProgress(ctx context.Context, event ports.WorkProgressEvent) {
	h.publish(ctx, TopicWorkProgress, "work_progress", event)
}

// NotifyEquipmentUpdate pushes an equipment telemetry event to subscribers.
func (h *Hub) NotifyEquipmentUpdate(ctx context.Context, event ports.EquipmentStatusEvent) {
	h.publish(ctx, TopicEquipment, "equipment_status", event)
}

// NotifyAlert pushes an alert to subscribers.
func (h *Hub) NotifyAlert(ctx context.Context, severity, alertMessage string) {
	h.publish(ctx, TopicAlerts, "alert", alertPayload{Severity: severity, Message: alertMessage})
}

// NotifyDashboard pushes a full dashboard snapshot to subscribers.
func (h *Hub) NotifyDashboard(ctx context.Context, snapshot any) {
	h.publish(ctx, TopicDashboard, "dashboard", snapshot)
}

func (h *Hub) publish(ctx context.Context, topic, eventType string, payload any) {
	data, err := json.Marshal(envelope{
		Type:      eventType,
		Timestamp: time.Now().UTC(),
		Payload:   payload,
	})
	if err != nil {
		h.logger.ErrorContext(ctx, "Failed to marshal event", "type", eventType, "error", err)
		return
	}

	select {
	case h.broadcast <- message{topic: topic, data: data}:
	default:
		// Broadcast queue full, drop the event rather than block the caller
		h.logger.WarnContext(ctx, "Broadcast queue full, event dropped", "type", eventType)
	}
}

func (h *Hub) addClient(c *client) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	h.clients[c] = struct{}{}
	h.logger.Info("Client connected", "remote", c.remoteAddr, "topics", c.topicList(), "total", len(h.clients))
}

func (h *Hub) removeClient(c *client) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	if _, ok := h.clients[c]; !ok {
		return
	}
	delete(h.clients, c)
	close(c.send)
	h.logger.Info("Client disconnected", "remote", c.remoteAddr, "total", len(h.clients))
}

func (h *Hub) fanOut(msg message) {
	h.mutex.RLock()
	defer h.mutex.RUnlock()

	for c := range h.clients {
		if !c.subscribed(msg.topic) {
			continue
		}
		select {
		case c.send <- msg.data:
		default:
			// Slow client, drop the event for it instead of blocking the hub
			h.logger.Warn("Client send buffer full, event dropped", "remote", c.remoteAddr)
		}
	}
}

func (h *Hub) closeAll() {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	for c := range h.clients {
		delete(h.clients, c)
		close(c.send)
	}
	h.logger.Info("WebSocket hub stopped")
}
