package catalog

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repo struct{ DB *pgxpool.Pool }

const productCols = `id, name, price_cents, image, stock, created_at, updated_at`

func scanProduct(row pgx.Row) (*Product, error) {
	var p Product
	err := row.Scan(&p.ID, &p.Name, &p.PriceCents, &p.Image, &p.Stock, &p.CreatedAt, &p.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *Repo) List(ctx context.Context) ([]Product, error) {
	rows, err := r.DB.Query(ctx, `SELECT `+productCols+` FROM products ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Product{}
	for rows.Next() {
		var p Product
		if err := rows.Scan(&p.ID, &p.Name, &p.PriceCents, &p.Image, &p.Stock, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *Repo) Get(ctx context.Context, id string) (*Product, error) {
	row := r.DB.QueryRow(ctx, `SELECT `+productCols+` FROM products WHERE id=$1`, id)
	return scanProduct(row)
}

func (r *Repo) Create(ctx context.Context, in ProductInput) (*Product, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	row := r.DB.QueryRow(ctx, `
		INSERT INTO products(id, name, price_cents, image, stock)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING `+productCols,
		uuid.NewString(), in.Name, in.PriceCents, in.Image, in.Stock,
	)
	return scanProduct(row)
}

func (r *Repo) Update(ctx context.Context, id string, up ProductUpdate) (*Product, error) {
	if err := up.Validate(); err != nil {
		return nil, err
	}
	row := r.DB.QueryRow(ctx, `
		UPDATE products SET
			name        = COALESCE($2, name),
			price_cents = COALESCE($3, price_cents),
			image       = COALESCE($4, image),
			stock       = COALESCE($5, stock),
			updated_at  = now()
		WHERE id=$1
		RETURNING `+productCols,
		id, up.Name, up.PriceCents, up.Image, up.Stock,
	)
	return scanProduct(row)
}

func (r *Repo) Delete(ctx context.Context, id string) error {
	ct, err := r.DB.Exec(ctx, `DELETE FROM products WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
