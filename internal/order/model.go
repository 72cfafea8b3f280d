package order

import (
	"time"

	"github.com/shopspring/decimal"
)

type Order struct {
	ID           string          `json:"id"`
	OrderID      string          `json:"orderId"`
	CustomerName string          `json:"customerName"`
	TotalPrice   decimal.Decimal `json:"totalPrice"` // NUMERIC(12,2)
	Public       bool            `json:"public"`
	CreatedAt    time.Time       `json:"createdAt"`
	UpdatedAt    time.Time       `json:"updatedAt"`
}

// NewOrder is the normalized shape handed to the repository.
type NewOrder struct {
	OrderID      string
	CustomerName string
	TotalPrice   decimal.Decimal
}

// CreatedOrder is the projection the repository returns on create
// (id, orderId, customerName, totalPrice, createdAt).
type CreatedOrder struct {
	ID           string          `json:"id"`
	OrderID      string          `json:"orderId"`
	CustomerName string          `json:"customerName"`
	TotalPrice   decimal.Decimal `json:"totalPrice"`
	CreatedAt    time.Time       `json:"createdAt"`
}
