package orders

import (
	"fmt"
	"strings"
	"time"

	"github.com/fauzanhilmi/hostel-mart/internal/catalog"
)

// DeliveryFeeCents is the flat surcharge added when delivery is requested.
const DeliveryFeeCents = 700

type Order struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	RoomNumber string    `json:"room_number"`
	Items      []Item    `json:"items"`
	TotalCents int       `json:"total_cents"`
	Delivery   bool      `json:"delivery"`
	Status     Status    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// Item is an order line. PriceCents is the product price snapshotted at
// placement time; Product carries the resolved product on reads and is nil
// when the product has since been deleted.
type Item struct {
	ProductID  string           `json:"product_id"`
	Quantity   int              `json:"quantity"`
	PriceCents int              `json:"price_cents"`
	Product    *catalog.Product `json:"product,omitempty"`
}

type ItemInput struct {
	ProductID string `json:"id"`
	Quantity  int    `json:"quantity"`
}

type PlaceInput struct {
	Name       string      `json:"name"`
	RoomNumber string      `json:"roomNumber"`
	Items      []ItemInput `json:"items"`
	Delivery   bool        `json:"delivery"`
}

// Summary renders the one-line notification text. It has to carry enough
// for an operator to fulfill the order without opening the store.
func (o *Order) Summary() string {
	names := make([]string, 0, len(o.Items))
	for _, it := range o.Items {
		if it.Product != nil {
			names = append(names, it.Product.Name)
		}
	}
	itemList := "No items"
	if len(names) > 0 {
		itemList = strings.Join(names, ", ")
	}
	return fmt.Sprintf("New order from %s in room %s with total amount of %d.%02d, delivery needed: %t, items: %s",
		o.Name, o.RoomNumber, o.TotalCents/100, o.TotalCents%100, o.Delivery, itemList)
}
