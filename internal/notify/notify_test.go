package notify

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestNotifierDeliversPayload(t *testing.T) {
	var mu sync.Mutex
	var got []Message
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var m Message
		require.NoError(t, json.NewDecoder(r.Body).Decode(&m))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		mu.Lock()
		got = append(got, m)
		mu.Unlock()
	}))
	defer srv.Close()

	n := New(srv.URL, 8, testLogger())
	n.Start(context.Background())

	n.Publish(Message{Text: "New order from Ana in room B-214", ID: "order-1"})
	n.Close()
	n.WaitClosed()

	mu.Lock()
	defer mu.Unlock()
	require.Len(t, got, 1)
	assert.Equal(t, "order-1", got[0].ID)
	assert.Contains(t, got[0].Text, "room B-214")
}

func TestNotifierCloseFlushesQueued(t *testing.T) {
	var mu sync.Mutex
	count := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		count++
		mu.Unlock()
	}))
	defer srv.Close()

	n := New(srv.URL, 8, testLogger())
	// queue before the loop starts so Close has something to flush
	n.Publish(Message{ID: "1"})
	n.Publish(Message{ID: "2"})
	n.Publish(Message{ID: "3"})
	n.Start(context.Background())
	n.Close()
	n.WaitClosed()

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, 3, count)
}

func TestNotifierSwallowsDeliveryFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	n := New(srv.URL, 8, testLogger())
	n.Start(context.Background())

	// must not panic or block the publisher
	n.Publish(Message{Text: "x", ID: "order-1"})
	n.Close()

	done := make(chan struct{})
	go func() { n.WaitClosed(); close(done) }()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("notifier did not drain after failed delivery")
	}
}

func TestNotifierDisabledWithoutURL(t *testing.T) {
	n := New("", 1, testLogger())
	assert.False(t, n.Enabled())

	// Publish on a disabled notifier is a no-op, even past the buffer size.
	n.Publish(Message{ID: "1"})
	n.Publish(Message{ID: "2"})
}
