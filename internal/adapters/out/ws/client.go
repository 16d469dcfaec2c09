package ws

import (
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/gorilla/websocket"
)

const (
	// Time allowed to write a message to the peer
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer
	pongWait = 30 * time.Second

	// Send pings to peer with this period (must be less than pongWait)
	pingPeriod = 25 * time.Second

	// Maximum message size allowed from peer (clients only send pongs, not data)
	maxMessageSize = 512
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(_ *http.Request) bool {
		return true
	},
}

// client represents one WebSocket connection and its topic subscriptions.
type client struct {
	hub        *Hub
	conn       *websocket.Conn
	topics     map[string]struct{}
	remoteAddr string
	send       chan []byte
}

// HandleConnection upgrades an HTTP request to a WebSocket connection and
// registers it with the hub. The optional topics query parameter holds a
// comma separated subscription list; absent means all topics.
func (h *Hub) HandleConnection(w http.ResponseWriter, r *http.Request) error {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn("WebSocket upgrade failed", "remote", r.RemoteAddr, "error", err)
		return err
	}

	c := &client{
		hub:        h,
		conn:       conn,
		topics:     parseTopics(r.URL.Query().Get("topics")),
		remoteAddr: r.RemoteAddr,
		send:       make(chan []byte, 64),
	}

	h.register <- c

	go c.writePump()
	go c.readPump()
	return nil
}

// parseTopics splits a comma separated subscription list. Unknown names are
// kept; they simply never match a broadcast.
func parseTopics(raw string) map[string]struct{} {
	topics := make(map[string]struct{})
	for _, topic := range strings.Split(raw, ",") {
		topic = strings.TrimSpace(topic)
		if topic != "" {
			topics[topic] = struct{}{}
		}
	}
	return topics
}

// subscribed reports whether the client should receive events on the topic.
func (c *client) subscribed(topic string) bool {
	if len(c.topics) == 0 {
		return true
	}
	_, ok := c.topics[topic]
	return ok
}

// topicList returns the client's subscriptions for logging.
func (c *client) topicList() string {
	if len(c.topics) == 0 {
		return "all"
	}
	topics := make([]string, 0, len(c.topics))
	for topic := range c.topics {
		topics = append(topics, topic)
	}
	sort.Strings(topics)
	return strings.Join(topics, ",")
}

// readPump pumps control messages from the WebSocket connection. Clients
// never send data; the read loop exists to handle ping/pong and to detect
// disconnects.
func (c *client) readPump() {
	defer func() {
		c.hub.unregister <- c
		c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				c.hub.logger.Warn("WebSocket read error", "remote", c.remoteAddr, "error", err)
			}
			return
		}
	}
}

// writePump pumps events from the hub to the WebSocket connection.
func (c *client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case data, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				// The hub closed the channel
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			if err := c.conn.WriteMessage(websocket.TextMessage, data); err != nil {
				return
			}

		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
