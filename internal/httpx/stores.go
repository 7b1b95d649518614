package httpx

import (
	"context"

	"github.com/fauzanhilmi/hostel-mart/internal/catalog"
	"github.com/fauzanhilmi/hostel-mart/internal/delivery"
	"github.com/fauzanhilmi/hostel-mart/internal/notify"
	"github.com/fauzanhilmi/hostel-mart/internal/orders"
)

// Store interfaces the handlers depend on; satisfied by the pgx repos.

type CatalogStore interface {
	List(ctx context.Context) ([]catalog.Product, error)
	Get(ctx context.Context, id string) (*catalog.Product, error)
	Create(ctx context.Context, in catalog.ProductInput) (*catalog.Product, error)
	Update(ctx context.Context, id string, up catalog.ProductUpdate) (*catalog.Product, error)
	Delete(ctx context.Context, id string) error
}

type OrderStore interface {
	Place(ctx context.Context, in orders.PlaceInput) (*orders.Order, error)
	Get(ctx context.Context, id string) (*orders.Order, error)
	List(ctx context.Context) ([]orders.Order, error)
	UpdateStatus(ctx context.Context, id string, status orders.Status) (*orders.Order, error)
	Delete(ctx context.Context, id string) error
}

type StatusStore interface {
	GetOrDefault(ctx context.Context) (delivery.Status, error)
	SetDelivering(ctx context.Context, delivering bool) (delivery.Status, error)
}

type Publisher interface {
	Publish(m notify.Message)
}
