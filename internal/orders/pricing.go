package orders

import "github.com/fauzanhilmi/hostel-mart/internal/catalog"

func (in PlaceInput) Validate() error {
	if in.Name == "" {
		return &ValidationError{Msg: "name is required"}
	}
	if in.RoomNumber == "" {
		return &ValidationError{Msg: "room number is required"}
	}
	if len(in.Items) == 0 {
		return &ValidationError{Msg: "order must contain at least one item"}
	}
	seen := make(map[string]bool, len(in.Items))
	for _, it := range in.Items {
		if it.ProductID == "" {
			return &ValidationError{Msg: "item product id is required"}
		}
		if it.Quantity < 1 {
			return &ValidationError{Msg: "item quantity must be at least 1"}
		}
		if seen[it.ProductID] {
			return &ValidationError{Msg: "duplicate item for product " + it.ProductID}
		}
		seen[it.ProductID] = true
	}
	return nil
}

// BuildLines prices the requested items against the given products. Each
// line snapshots the unit price at this moment; the price is never re-read
// afterwards. The total includes the delivery surcharge when requested,
// regardless of the global delivering flag.
func BuildLines(items []ItemInput, products map[string]*catalog.Product, delivery bool) ([]Item, int, error) {
	lines := make([]Item, 0, len(items))
	total := 0
	for _, it := range items {
		p, ok := products[it.ProductID]
		if !ok || p == nil {
			return nil, 0, &ProductNotFoundError{ProductID: it.ProductID}
		}
		if p.Stock < it.Quantity {
			return nil, 0, &InsufficientStockError{ProductName: p.Name}
		}
		lines = append(lines, Item{
			ProductID:  p.ID,
			Quantity:   it.Quantity,
			PriceCents: p.PriceCents,
			Product:    p,
		})
		total += p.PriceCents * it.Quantity
	}
	if delivery {
		total += DeliveryFeeCents
	}
	return lines, total, nil
}
