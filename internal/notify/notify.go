// Package notify delivers order notifications to an external webhook.
// Delivery is best effort: messages are queued on a buffered inbox, posted
// by a single goroutine, and failures are logged, never surfaced to the
// order workflow. Close flushes whatever is still queued.
package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"
)

type Message struct {
	Text string `json:"text"`
	ID   string `json:"id"`
}

type Notifier struct {
	url     string
	client  *http.Client
	log     *slog.Logger
	inbox   chan Message
	closeCh chan struct{}
}

func New(url string, buf int, log *slog.Logger) *Notifier {
	return &Notifier{
		url:     url,
		client:  &http.Client{Timeout: 5 * time.Second},
		log:     log,
		inbox:   make(chan Message, buf),
		closeCh: make(chan struct{}),
	}
}

// Enabled reports whether a webhook URL is configured.
func (n *Notifier) Enabled() bool { return n.url != "" }

func (n *Notifier) Start(ctx context.Context) {
	go func() {
		defer close(n.closeCh)
		for {
			select {
			case <-ctx.Done():
				// flush whatever is already queued, then exit
				for {
					select {
					case m, ok := <-n.inbox:
						if !ok {
							return
						}
						n.post(m)
					default:
						return
					}
				}
			case m, ok := <-n.inbox:
				if !ok {
					return
				}
				n.post(m)
			}
		}
	}()
}

// Publish queues a message without blocking the caller beyond the buffer.
func (n *Notifier) Publish(m Message) {
	if !n.Enabled() {
		return
	}
	n.inbox <- m
}

// Close stops accepting messages; the loop flushes the rest and exits.
func (n *Notifier) Close() { close(n.inbox) }

// WaitClosed blocks until the flush is done.
func (n *Notifier) WaitClosed() { <-n.closeCh }

func (n *Notifier) post(m Message) {
	body, err := json.Marshal(m)
	if err != nil {
		n.log.Error("notify: marshal", "err", err)
		return
	}
	resp, err := n.client.Post(n.url, "application/json", bytes.NewReader(body))
	if err != nil {
		n.log.Error("notify: post", "order_id", m.ID, "err", err)
		return
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		n.log.Error("notify: post", "order_id", m.ID, "err", fmt.Errorf("status %d", resp.StatusCode))
		return
	}
	n.log.Info("notify: sent", "order_id", m.ID)
}
