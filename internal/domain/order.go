package domain

import "time"

// Order is a customer's request to purchase a quantity of one product.
// TotalPrice is computed during placement, never supplied by the caller;
// once persisted the order has no update path.
type Order struct {
	ID         uint
	ProductID  int
	Quantity   int
	TotalPrice float64
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
