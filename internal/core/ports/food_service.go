package ports

import (
	"context"

	"github.com/nahidahmed02/hungry-den-server/internal/core/domain"
)

// AddFoodInput carries the fields for a new menu item.
type AddFoodInput struct {
	Name        string
	Price       float64
	Category    string
	Image       string
	Description string
}

// FoodService exposes the menu.
type FoodService interface {
	// Menu returns all menu items, served from cache when possible.
	Menu(ctx context.Context) ([]domain.Food, error)
	AddFood(ctx context.Context, input AddFoodInput) (*domain.Food, error)
	RemoveFood(ctx context.Context, id string) (*DeleteResult, error)
}
