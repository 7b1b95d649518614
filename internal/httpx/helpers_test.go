package httpx

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/fauzanhilmi/hostel-mart/internal/catalog"
	"github.com/fauzanhilmi/hostel-mart/internal/delivery"
	"github.com/fauzanhilmi/hostel-mart/internal/notify"
	"github.com/fauzanhilmi/hostel-mart/internal/orders"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type testEnvelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
}

// hit builds a router, registers the handler under test and performs one
// request, decoding the response envelope.
func hit(t *testing.T, register func(*chi.Mux), method, path, body string) (int, testEnvelope) {
	t.Helper()
	r := NewRouter()
	register(r)

	var rd io.Reader
	if body != "" {
		rd = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, rd)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	var env testEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return rec.Code, env
}

// stub stores with function fields so each test pins just what it needs

type stubCatalog struct {
	list   func(ctx context.Context) ([]catalog.Product, error)
	get    func(ctx context.Context, id string) (*catalog.Product, error)
	create func(ctx context.Context, in catalog.ProductInput) (*catalog.Product, error)
	update func(ctx context.Context, id string, up catalog.ProductUpdate) (*catalog.Product, error)
	del    func(ctx context.Context, id string) error
}

func (s *stubCatalog) List(ctx context.Context) ([]catalog.Product, error) { return s.list(ctx) }
func (s *stubCatalog) Get(ctx context.Context, id string) (*catalog.Product, error) {
	return s.get(ctx, id)
}
func (s *stubCatalog) Create(ctx context.Context, in catalog.ProductInput) (*catalog.Product, error) {
	return s.create(ctx, in)
}
func (s *stubCatalog) Update(ctx context.Context, id string, up catalog.ProductUpdate) (*catalog.Product, error) {
	return s.update(ctx, id, up)
}
func (s *stubCatalog) Delete(ctx context.Context, id string) error { return s.del(ctx, id) }

type stubOrders struct {
	place        func(ctx context.Context, in orders.PlaceInput) (*orders.Order, error)
	get          func(ctx context.Context, id string) (*orders.Order, error)
	list         func(ctx context.Context) ([]orders.Order, error)
	updateStatus func(ctx context.Context, id string, status orders.Status) (*orders.Order, error)
	del          func(ctx context.Context, id string) error
}

func (s *stubOrders) Place(ctx context.Context, in orders.PlaceInput) (*orders.Order, error) {
	return s.place(ctx, in)
}
func (s *stubOrders) Get(ctx context.Context, id string) (*orders.Order, error) {
	return s.get(ctx, id)
}
func (s *stubOrders) List(ctx context.Context) ([]orders.Order, error) { return s.list(ctx) }
func (s *stubOrders) UpdateStatus(ctx context.Context, id string, status orders.Status) (*orders.Order, error) {
	return s.updateStatus(ctx, id, status)
}
func (s *stubOrders) Delete(ctx context.Context, id string) error { return s.del(ctx, id) }

type stubStatus struct {
	get func(ctx context.Context) (delivery.Status, error)
	set func(ctx context.Context, delivering bool) (delivery.Status, error)
}

func (s *stubStatus) GetOrDefault(ctx context.Context) (delivery.Status, error) { return s.get(ctx) }
func (s *stubStatus) SetDelivering(ctx context.Context, delivering bool) (delivery.Status, error) {
	return s.set(ctx, delivering)
}

type recordingPublisher struct {
	mu   sync.Mutex
	sent []notify.Message
}

func (p *recordingPublisher) Publish(m notify.Message) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.sent = append(p.sent, m)
}

func (p *recordingPublisher) messages() []notify.Message {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]notify.Message{}, p.sent...)
}
