package ports

import (
	"context"

	"github.com/nahidahmed02/hungry-den-server/internal/core/domain"
)

// ReviewRepository defines persistence for the reviews collection.
type ReviewRepository interface {
	FindAll(ctx context.Context) ([]domain.Review, error)
	FindByEmail(ctx context.Context, email string) ([]domain.Review, error)
	Insert(ctx context.Context, review *domain.Review) (string, error)
	Delete(ctx context.Context, id string) (*DeleteResult, error)
}
