package ports

import (
	"context"

	"github.com/nahidahmed02/hungry-den-server/internal/core/domain"
)

// OrderRepository defines persistence for the orders collection.
type OrderRepository interface {
	Insert(ctx context.Context, order *domain.Order) (string, error)
	FindAll(ctx context.Context) ([]domain.Order, error)
	FindByEmail(ctx context.Context, email string) ([]domain.Order, error)
	Delete(ctx context.Context, id string) (*DeleteResult, error)
}
