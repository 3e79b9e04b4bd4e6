package ports

import "context"

// UserService covers user registration and the role state machine. All role
// operations set the role unconditionally regardless of the current value and
// are idempotent; concurrent writes to the same email are last-write-wins.
type UserService interface {
	// RegisterOrReplace upserts the user document keyed by email.
	RegisterOrReplace(ctx context.Context, email string, profile map[string]any) (*WriteResult, error)
	ListUsers(ctx context.Context) ([]UserView, error)

	PromoteToAdmin(ctx context.Context, email string) (*WriteResult, error)
	PromoteToDeliveryMan(ctx context.Context, email string) (*WriteResult, error)
	DemoteFromAdmin(ctx context.Context, email string) (*WriteResult, error)
	DemoteFromDeliveryMan(ctx context.Context, email string) (*WriteResult, error)
}

// UserView is the user representation returned to API callers.
type UserView struct {
	ID    string `json:"id,omitempty"`
	Name  string `json:"name,omitempty"`
	Email string `json:"email"`
	Role  string `json:"role"`
}
