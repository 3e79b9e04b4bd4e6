package ports

import (
	"context"

	"github.com/nahidahmed02/hungry-den-server/internal/core/domain"
)

// AddReviewInput carries the fields for a new review.
type AddReviewInput struct {
	Email   string
	Name    string
	Rating  int
	Comment string
}

// ReviewService exposes review reads and writes. Per-email reads are scoped:
// an authenticated caller may only read reviews for their own claimed email.
type ReviewService interface {
	Reviews(ctx context.Context) ([]domain.Review, error)
	ReviewsByEmail(ctx context.Context, claimEmail, email string) ([]domain.Review, error)
	AddReview(ctx context.Context, input AddReviewInput) (*domain.Review, error)
	RemoveReview(ctx context.Context, id string) (*DeleteResult, error)
}
