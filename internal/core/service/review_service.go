package service

import (
	"context"
	"time"

	"github.com/nahidahmed02/hungry-den-server/internal/core/domain"
	"github.com/nahidahmed02/hungry-den-server/internal/core/ports"
)

type reviewService struct {
	repo ports.ReviewRepository
}

// NewReviewService returns a ReviewService backed by the reviews collection.
func NewReviewService(repo ports.ReviewRepository) ports.ReviewService {
	return &reviewService{repo: repo}
}

func (s *reviewService) Reviews(ctx context.Context) ([]domain.Review, error) {
	return s.repo.FindAll(ctx)
}

// ReviewsByEmail returns the reviews written by email. The caller may only
// read their own reviews; a mismatch with the token claim is forbidden.
func (s *reviewService) ReviewsByEmail(ctx context.Context, claimEmail, email string) ([]domain.Review, error) {
	if email != claimEmail {
		return nil, domain.ErrForbidden
	}
	return s.repo.FindByEmail(ctx, email)
}

func (s *reviewService) AddReview(ctx context.Context, input ports.AddReviewInput) (*domain.Review, error) {
	review := &domain.Review{
		Email:     input.Email,
		Name:      input.Name,
		Rating:    input.Rating,
		Comment:   input.Comment,
		CreatedAt: time.Now().UTC(),
	}

	id, err := s.repo.Insert(ctx, review)
	if err != nil {
		return nil, err
	}
	review.ID = id
	return review, nil
}

func (s *reviewService) RemoveReview(ctx context.Context, id string) (*ports.DeleteResult, error) {
	return s.repo.Delete(ctx, id)
}
