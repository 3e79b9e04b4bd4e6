package ports

import (
	"context"

	"github.com/nahidahmed02/hungry-den-server/internal/core/domain"
)

// OrderItemInput is one line of a new order.
type OrderItemInput struct {
	FoodID   string
	Name     string
	Price    float64
	Quantity int
}

// PlaceOrderInput carries the fields for a new order. Email must match the
// caller's token claim.
type PlaceOrderInput struct {
	Email string
	Items []OrderItemInput
}

// OrderService exposes order placement and retrieval.
type OrderService interface {
	PlaceOrder(ctx context.Context, claimEmail string, input PlaceOrderInput) (*domain.Order, error)
	// ListOrders returns all orders when email is empty, otherwise the orders
	// for email — which must equal the caller's claim.
	ListOrders(ctx context.Context, claimEmail, email string) ([]domain.Order, error)
	CancelOrder(ctx context.Context, id string) (*DeleteResult, error)
}
