package ports

import "context"

// TokenService issues bearer tokens for recognised users.
//
// Issue returns domain.ErrUserNotFound when the email has no document in the
// credential store; any other error is an upstream failure. The token embeds
// the email as its sole identity claim.
type TokenService interface {
	Issue(ctx context.Context, email string) (string, error)
}
