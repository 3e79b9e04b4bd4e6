package service

import (
	"context"
	"testing"

	"github.com/nahidahmed02/hungry-den-server/internal/core/domain"
	"github.com/nahidahmed02/hungry-den-server/internal/core/ports"
)

type stubReviewRepo struct {
	reviews []domain.Review
}

func (r *stubReviewRepo) FindAll(_ context.Context) ([]domain.Review, error) {
	return r.reviews, nil
}

func (r *stubReviewRepo) FindByEmail(_ context.Context, email string) ([]domain.Review, error) {
	var out []domain.Review
	for _, rev := range r.reviews {
		if rev.Email == email {
			out = append(out, rev)
		}
	}
	return out, nil
}

func (r *stubReviewRepo) Insert(_ context.Context, review *domain.Review) (string, error) {
	rev := *review
	rev.ID = "review-1"
	r.reviews = append(r.reviews, rev)
	return rev.ID, nil
}

func (r *stubReviewRepo) Delete(_ context.Context, id string) (*ports.DeleteResult, error) {
	for i, rev := range r.reviews {
		if rev.ID == id {
			r.reviews = append(r.reviews[:i], r.reviews[i+1:]...)
			return &ports.DeleteResult{DeletedCount: 1}, nil
		}
	}
	return &ports.DeleteResult{}, nil
}

func TestReviewService_ReviewsByEmail_OwnReviews(t *testing.T) {
	repo := &stubReviewRepo{reviews: []domain.Review{
		{ID: "r1", Email: "a@x.com", Rating: 5},
		{ID: "r2", Email: "b@x.com", Rating: 3},
	}}
	svc := NewReviewService(repo)

	reviews, err := svc.ReviewsByEmail(context.Background(), "a@x.com", "a@x.com")
	if err != nil {
		t.Fatalf("ReviewsByEmail returned error: %v", err)
	}
	if len(reviews) != 1 || reviews[0].ID != "r1" {
		t.Fatalf("unexpected reviews: %+v", reviews)
	}
}

func TestReviewService_ReviewsByEmail_ForeignEmail(t *testing.T) {
	svc := NewReviewService(&stubReviewRepo{})

	if _, err := svc.ReviewsByEmail(context.Background(), "a@x.com", "b@x.com"); err != domain.ErrForbidden {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestReviewService_AddReview_SetsTimestamp(t *testing.T) {
	repo := &stubReviewRepo{}
	svc := NewReviewService(repo)

	review, err := svc.AddReview(context.Background(), ports.AddReviewInput{
		Email:  "a@x.com",
		Rating: 4,
	})
	if err != nil {
		t.Fatalf("AddReview returned error: %v", err)
	}
	if review.ID == "" {
		t.Fatalf("expected review id")
	}
	if review.CreatedAt.IsZero() {
		t.Fatalf("expected created_at to be set")
	}
}
