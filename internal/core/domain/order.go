package domain

import "time"

// Order lifecycle states. There is no enforced transition graph; the status is
// a plain last-write-wins field like the user role.
const (
	OrderStatusPending   = "pending"
	OrderStatusPaid      = "paid"
	OrderStatusDelivered = "delivered"
)

// OrderItem is one line of an order.
type OrderItem struct {
	FoodID   string  `json:"food_id,omitempty"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

// Order is a customer's placed order, keyed to the customer by email.
type Order struct {
	ID        string      `json:"id,omitempty"`
	Email     string      `json:"email"`
	Items     []OrderItem `json:"items"`
	Total     float64     `json:"total"`
	Status    string      `json:"status"`
	CreatedAt time.Time   `json:"created_at"`
}
