package ws

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"jobboard/internal/domain/notification"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func startHub(t *testing.T) (*Hub, *httptest.Server) {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	hub := NewHub(nil)
	go hub.Run(ctx)

	h := NewHandler(hub, nil)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, err := uuid.Parse(strings.TrimPrefix(r.URL.Path, "/ws/candidates/"))
		if err != nil {
			http.Error(w, "bad id", http.StatusBadRequest)
			return
		}
		h.serve(w, r, id)
	}))

	t.Cleanup(func() {
		srv.Close()
		cancel()
	})
	return hub, srv
}

func dial(t *testing.T, srv *httptest.Server, candidateID uuid.UUID) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws/candidates/" + candidateID.String()
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

func TestHub_PublishReachesOnlyTheCandidate(t *testing.T) {
	hub, srv := startHub(t)
	alice, bob := uuid.New(), uuid.New()

	aliceConn := dial(t, srv, alice)
	bobConn := dial(t, srv, bob)

	require.Eventually(t, func() bool {
		return hub.ClientCount(alice) == 1 && hub.ClientCount(bob) == 1
	}, 2*time.Second, 10*time.Millisecond)

	n := notification.Notification{
		ID:          uuid.New(),
		CandidateID: alice,
		Type:        notification.TypeJobMatch,
		Title:       "Great Match Available",
		Priority:    notification.PriorityMedium,
	}
	require.NoError(t, hub.Publish(context.Background(), n))

	_ = aliceConn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, payload, err := aliceConn.ReadMessage()
	require.NoError(t, err)

	var ev notification.Event
	require.NoError(t, json.Unmarshal(payload, &ev))
	assert.Equal(t, n.ID, ev.ID)
	assert.Equal(t, "Great Match Available", ev.Title)

	_ = bobConn.SetReadDeadline(time.Now().Add(200 * time.Millisecond))
	_, _, err = bobConn.ReadMessage()
	assert.Error(t, err)
}

func TestHub_UnregisterOnDisconnect(t *testing.T) {
	hub, srv := startHub(t)
	id := uuid.New()

	conn := dial(t, srv, id)
	require.Eventually(t, func() bool { return hub.ClientCount(id) == 1 }, 2*time.Second, 10*time.Millisecond)

	_ = conn.Close()
	assert.Eventually(t, func() bool { return hub.ClientCount(id) == 0 }, 2*time.Second, 10*time.Millisecond)
}

func TestHub_NilIsSafe(t *testing.T) {
	var hub *Hub
	assert.NoError(t, hub.Publish(context.Background(), notification.Notification{}))
	assert.False(t, hub.Broadcast(uuid.New(), nil))
	assert.Equal(t, 0, hub.ClientCount(uuid.New()))
}
