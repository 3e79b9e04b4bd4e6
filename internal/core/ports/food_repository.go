package ports

import (
	"context"

	"github.com/nahidahmed02/hungry-den-server/internal/core/domain"
)

// FoodRepository defines persistence for the foods collection.
type FoodRepository interface {
	FindAll(ctx context.Context) ([]domain.Food, error)
	Insert(ctx context.Context, food *domain.Food) (string, error)
	Delete(ctx context.Context, id string) (*DeleteResult, error)
}
