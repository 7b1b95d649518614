package catalog

import (
	"errors"
	"fmt"
	"time"
	"unicode/utf8"
)

const maxNameLen = 60

var ErrNotFound = errors.New("product not found")

// ValidationError reports a field constraint violation on product input.
type ValidationError struct {
	Field string
	Msg   string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Msg)
}

type Product struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	PriceCents int       `json:"price_cents"`
	Image      string    `json:"image"`
	Stock      int       `json:"stock"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// ProductInput carries the user-supplied fields for a new product.
type ProductInput struct {
	Name       string `json:"name"`
	PriceCents int    `json:"price_cents"`
	Image      string `json:"image"`
	Stock      int    `json:"stock"`
}

func (in ProductInput) Validate() error {
	if in.Name == "" {
		return &ValidationError{Field: "name", Msg: "required"}
	}
	if utf8.RuneCountInString(in.Name) > maxNameLen {
		return &ValidationError{Field: "name", Msg: fmt.Sprintf("cannot be more than %d characters", maxNameLen)}
	}
	if in.PriceCents < 0 {
		return &ValidationError{Field: "price_cents", Msg: "cannot be negative"}
	}
	if in.Image == "" {
		return &ValidationError{Field: "image", Msg: "required"}
	}
	if in.Stock < 0 {
		return &ValidationError{Field: "stock", Msg: "cannot be negative"}
	}
	return nil
}

// ProductUpdate is a partial update; nil fields are left unchanged.
type ProductUpdate struct {
	Name       *string `json:"name"`
	PriceCents *int    `json:"price_cents"`
	Image      *string `json:"image"`
	Stock      *int    `json:"stock"`
}

func (up ProductUpdate) Validate() error {
	if up.Name != nil {
		if *up.Name == "" {
			return &ValidationError{Field: "name", Msg: "required"}
		}
		if utf8.RuneCountInString(*up.Name) > maxNameLen {
			return &ValidationError{Field: "name", Msg: fmt.Sprintf("cannot be more than %d characters", maxNameLen)}
		}
	}
	if up.PriceCents != nil && *up.PriceCents < 0 {
		return &ValidationError{Field: "price_cents", Msg: "cannot be negative"}
	}
	if up.Image != nil && *up.Image == "" {
		return &ValidationError{Field: "image", Msg: "required"}
	}
	if up.Stock != nil && *up.Stock < 0 {
		return &ValidationError{Field: "stock", Msg: "cannot be negative"}
	}
	return nil
}
