package ports

import (
	"context"

	"github.com/nahidahmed02/hungry-den-server/internal/core/domain"
)

// UserRepository defines persistence for the users collection.
//
// Upsert and SetRole are deliberately distinct: registration inserts when no
// document matches the email, while a role mutation on an unknown email is a
// no-op reported through WriteResult.MatchedCount.
type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
	Upsert(ctx context.Context, email string, doc map[string]any) (*WriteResult, error)
	SetRole(ctx context.Context, email, role string) (*WriteResult, error)
}
