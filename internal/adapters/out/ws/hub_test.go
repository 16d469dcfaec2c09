package ws

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTopics(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{"empty means all", "", nil},
		{"single topic", "alerts", []string{"alerts"}},
		{"multiple topics", "alerts,dashboard", []string{"alerts", "dashboard"}},
		{"whitespace trimmed", " alerts , equipment ", []string{"alerts", "equipment"}},
		{"empty segments dropped", "alerts,,", []string{"alerts"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			topics := parseTopics(tt.raw)
			assert.Len(t, topics, len(tt.want))
			for _, topic := range tt.want {
				assert.Contains(t, topics, topic)
			}
		})
	}
}

func TestClientSubscribed(t *testing.T) {
	all := &client{topics: parseTopics("")}
	assert.True(t, all.subscribed(TopicDashboard))
	assert.True(t, all.subscribed(TopicAlerts))

	alertsOnly := &client{topics: parseTopics("alerts")}
	assert.True(t, alertsOnly.subscribed(TopicAlerts))
	assert.False(t, alertsOnly.subscribed(TopicDashboard))
}

func TestClientTopicList(t *testing.T) {
	assert.Equal(t, "all", (&client{topics: parseTopics("")}).topicList())
	assert.Equal(t, "alerts,dashboard", (&client{topics: parseTopics("dashboard,alerts")}).topicList())
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func dialTestHub(t *testing.T, hub *Hub, topics string) *websocket.Conn {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = hub.HandleConnection(w, r)
	}))
	t.Cleanup(server.Close)

	url := "ws" + strings.TrimPrefix(server.URL, "http")
	if topics != "" {
		url += "?topics=" + topics
	}

	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	require.Eventually(t, func() bool {
		return hub.ConnectionCount() == 1
	}, time.Second, 10*time.Millisecond, "client should register with the hub")

	return conn
}

func TestHub_DeliversAlertToSubscriber(t *testing.T) {
	hub := NewHub(testLogger())
	go hub.Run()
	defer hub.Shutdown()

	conn := dialTestHub(t, hub, "")

	hub.NotifyAlert(context.Background(), "ERROR", "defect rate exceeded on WO-123")

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(time.Second)))
	_, data, err := conn.ReadMessage()
	require.NoError(t, err)

	var event envelope
	require.NoError(t, json.Unmarshal(data, &event))
	assert.Equal(t, "alert", event.Type)
	assert.False(t, event.Timestamp.IsZero())

	payload, ok := event.Payload.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "ERROR", payload["severity"])
	assert.Equal(t, "defect rate exceeded on WO-123", payload["message"])
}

func TestHub_FiltersByTopic(t *testing.T) {
	hub := NewHub(testLogger())
	go hub.Run()
	defer hub.Shutdown()

	conn := dialTestHub(t, hub, TopicAlerts)

	// The dashboard event must not reach an alerts-only subscriber.
	hub.NotifyDashboard(context.Background(), map[string]string{"ignored": "snapshot"})
	hub.NotifyAlert(context.Background(), "WARNING", "temperature high")

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(time.Second)))
	_, data, err := conn.ReadMessage()
	require.NoError(t, err)

	var event envelope
	require.NoError(t, json.Unmarshal(data, &event))
	assert.Equal(t, "alert", event.Type)
}

func TestHub_ShutdownDisconnectsClients(t *testing.T) {
	hub := NewHub(testLogger())
	go hub.Run()

	conn := dialTestHub(t, hub, "")

	hub.Shutdown()

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(time.Second)))
	_, _, err := conn.ReadMessage()
	require.Error(t, err, "connection should close after shutdown")
}
