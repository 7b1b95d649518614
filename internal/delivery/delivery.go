// Package delivery holds the singleton flag that tells the storefront
// whether delivery is currently offered. The flag only gates the UI option;
// order placement applies the surcharge whenever delivery is requested.
package delivery

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Status struct {
	Delivering bool `json:"delivering"`
}

type Repo struct{ DB *pgxpool.Pool }

// GetOrDefault reads the flag. An absent row yields the zero value and does
// not create anything.
func (r *Repo) GetOrDefault(ctx context.Context) (Status, error) {
	var s Status
	err := r.DB.QueryRow(ctx, `SELECT delivering FROM delivery_status WHERE id=1`).Scan(&s.Delivering)
	if errors.Is(err, pgx.ErrNoRows) {
		return Status{}, nil
	}
	if err != nil {
		return Status{}, err
	}
	return s, nil
}

// SetDelivering upserts the singleton row.
func (r *Repo) SetDelivering(ctx context.Context, delivering bool) (Status, error) {
	_, err := r.DB.Exec(ctx, `
		INSERT INTO delivery_status(id, delivering) VALUES (1, $1)
		ON CONFLICT (id) DO UPDATE SET delivering = EXCLUDED.delivering`, delivering)
	if err != nil {
		return Status{}, err
	}
	return Status{Delivering: delivering}, nil
}
