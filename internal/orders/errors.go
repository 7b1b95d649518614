package orders

import (
	"errors"
	"fmt"
)

var ErrNotFound = errors.New("order not found")

// ValidationError reports a malformed placement request.
type ValidationError struct{ Msg string }

func (e *ValidationError) Error() string { return e.Msg }

// ProductNotFoundError means a cart line referenced an unknown product.
type ProductNotFoundError struct{ ProductID string }

func (e *ProductNotFoundError) Error() string {
	return fmt.Sprintf("product %s not found", e.ProductID)
}

// InsufficientStockError means a cart line asked for more than is in stock.
// It carries the product name so the message is readable without a lookup.
type InsufficientStockError struct{ ProductName string }

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for product %s", e.ProductName)
}

// StatusError reports a status value outside the enum.
type StatusError struct{ Value string }

func (e *StatusError) Error() string {
	return fmt.Sprintf("invalid status %q", e.Value)
}
