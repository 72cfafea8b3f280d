package order

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type Repository interface {
	Create(ctx context.Context, n *NewOrder) (*CreatedOrder, error)
	List(ctx context.Context, onlyPublic bool, limit, offset int) ([]Order, error)
}

type PGRepo struct{ db *pgxpool.Pool }

func NewPGRepo(db *pgxpool.Pool) *PGRepo { return &PGRepo{db: db} }

// Create inserts exactly one row and returns the stored projection
// (id, orderId, customerName, totalPrice, createdAt).
func (r *PGRepo) Create(ctx context.Context, n *NewOrder) (*CreatedOrder, error) {
	var (
		c     CreatedOrder
		total string
	)
	if err := r.db.QueryRow(ctx, `
    INSERT INTO orders (id, order_id, customer_name, total_price, created_at, updated_at)
    VALUES ($1,$2,$3,$4,NOW(),NOW())
    RETURNING id, order_id, customer_name, total_price::text, created_at
  `, uuid.NewString(), n.OrderID, n.CustomerName, n.TotalPrice.String()).
		Scan(&c.ID, &c.OrderID, &c.CustomerName, &total, &c.CreatedAt); err != nil {
		return nil, err
	}
	price, err := decimal.NewFromString(total)
	if err != nil {
		return nil, err
	}
	c.TotalPrice = price
	return &c, nil
}

func (r *PGRepo) List(ctx context.Context, onlyPublic bool, limit, offset int) ([]Order, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	rows, err := r.db.Query(ctx, `
    SELECT id,order_id,customer_name,total_price::text,public,created_at,updated_at
    FROM orders WHERE (NOT $1 OR public)
    ORDER BY created_at DESC LIMIT $2 OFFSET $3
  `, onlyPublic, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Order
	for rows.Next() {
		var (
			o     Order
			total string
		)
		if err := rows.Scan(&o.ID, &o.OrderID, &o.CustomerName, &total, &o.Public, &o.CreatedAt, &o.UpdatedAt); err != nil {
			return nil, err
		}
		if o.TotalPrice, err = decimal.NewFromString(total); err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	return out, rows.Err()
}
