package orders

import (
	"context"
	"errors"
	"time"

	"github.com/fauzanhilmi/hostel-mart/internal/catalog"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repo struct{ DB *pgxpool.Pool }

const orderCols = `id, name, room_number, total_cents, delivery, status, created_at, updated_at`

// Place runs the whole placement workflow in one transaction: lock each
// product row, check stock, snapshot prices, decrement stock conditionally,
// insert the order with its lines. Either everything commits or nothing
// does, so two racing placements cannot jointly oversell a product.
func (r *Repo) Place(ctx context.Context, in PlaceInput) (*Order, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	// a malformed id can never match a product; reject it here instead of
	// letting the uuid cast blow up the select
	for _, it := range in.Items {
		if uuid.Validate(it.ProductID) != nil {
			return nil, &ProductNotFoundError{ProductID: it.ProductID}
		}
	}

	tx, err := r.DB.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	products := make(map[string]*catalog.Product, len(in.Items))
	for _, it := range in.Items {
		var p catalog.Product
		err := tx.QueryRow(ctx, `
			SELECT id, name, price_cents, image, stock, created_at, updated_at
			FROM products WHERE id=$1 FOR UPDATE`, it.ProductID).
			Scan(&p.ID, &p.Name, &p.PriceCents, &p.Image, &p.Stock, &p.CreatedAt, &p.UpdatedAt)
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, &ProductNotFoundError{ProductID: it.ProductID}
		}
		if err != nil {
			return nil, err
		}
		products[p.ID] = &p
	}

	lines, total, err := BuildLines(in.Items, products, in.Delivery)
	if err != nil {
		return nil, err
	}

	for _, ln := range lines {
		ct, err := tx.Exec(ctx, `
			UPDATE products SET stock = stock - $2, updated_at = now()
			WHERE id=$1 AND stock >= $2`, ln.ProductID, ln.Quantity)
		if err != nil {
			return nil, err
		}
		if ct.RowsAffected() != 1 {
			return nil, &InsufficientStockError{ProductName: ln.Product.Name}
		}
	}

	o := &Order{
		ID:         uuid.NewString(),
		Name:       in.Name,
		RoomNumber: in.RoomNumber,
		Items:      lines,
		TotalCents: total,
		Delivery:   in.Delivery,
		Status:     StatusPending,
	}
	err = tx.QueryRow(ctx, `
		INSERT INTO orders(id, name, room_number, total_cents, delivery, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at, updated_at`,
		o.ID, o.Name, o.RoomNumber, o.TotalCents, o.Delivery, o.Status).
		Scan(&o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		return nil, err
	}

	for _, ln := range lines {
		if _, err := tx.Exec(ctx, `
			INSERT INTO order_items(order_id, product_id, quantity, price_cents)
			VALUES ($1, $2, $3, $4)`,
			o.ID, ln.ProductID, ln.Quantity, ln.PriceCents); err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return o, nil
}

func (r *Repo) Get(ctx context.Context, id string) (*Order, error) {
	var o Order
	err := r.DB.QueryRow(ctx, `SELECT `+orderCols+` FROM orders WHERE id=$1`, id).
		Scan(&o.ID, &o.Name, &o.RoomNumber, &o.TotalCents, &o.Delivery, &o.Status, &o.CreatedAt, &o.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	items, err := r.loadItems(ctx, []string{o.ID})
	if err != nil {
		return nil, err
	}
	o.Items = items[o.ID]
	if o.Items == nil {
		o.Items = []Item{}
	}
	return &o, nil
}

func (r *Repo) List(ctx context.Context) ([]Order, error) {
	rows, err := r.DB.Query(ctx, `SELECT `+orderCols+` FROM orders ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Order{}
	ids := []string{}
	for rows.Next() {
		var o Order
		if err := rows.Scan(&o.ID, &o.Name, &o.RoomNumber, &o.TotalCents, &o.Delivery, &o.Status, &o.CreatedAt, &o.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, o)
		ids = append(ids, o.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return out, nil
	}

	items, err := r.loadItems(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range out {
		out[i].Items = items[out[i].ID]
		if out[i].Items == nil {
			out[i].Items = []Item{}
		}
	}
	return out, nil
}

// loadItems fetches the lines for a set of orders with product details
// resolved. The join is LEFT so lines survive products deleted after the
// order was placed; those lines keep their snapshot price and a nil product.
func (r *Repo) loadItems(ctx context.Context, orderIDs []string) (map[string][]Item, error) {
	rows, err := r.DB.Query(ctx, `
		SELECT oi.order_id, oi.product_id, oi.quantity, oi.price_cents,
		       p.id, p.name, p.price_cents, p.image, p.stock, p.created_at, p.updated_at
		FROM order_items oi
		LEFT JOIN products p ON p.id = oi.product_id
		WHERE oi.order_id = ANY($1::uuid[])`, orderIDs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := map[string][]Item{}
	for rows.Next() {
		var (
			orderID string
			it      Item
			pid     *string
			pname   *string
			pprice  *int
			pimage  *string
			pstock  *int
			pcr     *time.Time
			pup     *time.Time
		)
		if err := rows.Scan(&orderID, &it.ProductID, &it.Quantity, &it.PriceCents,
			&pid, &pname, &pprice, &pimage, &pstock, &pcr, &pup); err != nil {
			return nil, err
		}
		if pid != nil {
			it.Product = &catalog.Product{
				ID: *pid, Name: *pname, PriceCents: *pprice, Image: *pimage,
				Stock: *pstock, CreatedAt: *pcr, UpdatedAt: *pup,
			}
		}
		out[orderID] = append(out[orderID], it)
	}
	return out, rows.Err()
}

func (r *Repo) UpdateStatus(ctx context.Context, id string, status Status) (*Order, error) {
	ct, err := r.DB.Exec(ctx, `UPDATE orders SET status=$2, updated_at=now() WHERE id=$1`, id, status)
	if err != nil {
		return nil, err
	}
	if ct.RowsAffected() == 0 {
		return nil, ErrNotFound
	}
	return r.Get(ctx, id)
}

// Delete removes an order and credits each line's quantity back onto the
// product's stock, all in one transaction. Products deleted in the meantime
// are skipped. A second delete of the same id reports ErrNotFound and
// performs no compensation.
func (r *Repo) Delete(ctx context.Context, id string) error {
	tx, err := r.DB.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var exists string
	err = tx.QueryRow(ctx, `SELECT id FROM orders WHERE id=$1 FOR UPDATE`, id).Scan(&exists)
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	if err != nil {
		return err
	}

	rows, err := tx.Query(ctx, `SELECT product_id, quantity FROM order_items WHERE order_id=$1`, id)
	if err != nil {
		return err
	}
	type line struct {
		pid string
		qty int
	}
	var lines []line
	for rows.Next() {
		var ln line
		if err := rows.Scan(&ln.pid, &ln.qty); err != nil {
			rows.Close()
			return err
		}
		lines = append(lines, ln)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return err
	}

	for _, ln := range lines {
		if _, err := tx.Exec(ctx, `
			UPDATE products SET stock = stock + $2, updated_at = now()
			WHERE id=$1`, ln.pid, ln.qty); err != nil {
			return err
		}
	}

	// order_items go with the order via ON DELETE CASCADE
	if _, err := tx.Exec(ctx, `DELETE FROM orders WHERE id=$1`, id); err != nil {
		return err
	}
	return tx.Commit(ctx)
}
