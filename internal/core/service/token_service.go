package service

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/nahidahmed02/hungry-den-server/internal/api/metrics"
	"github.com/nahidahmed02/hungry-den-server/internal/core/ports"
)

// TokenService issues HS256 bearer tokens carrying the email as the only
// identity claim. Tokens are never stored server-side; validity is purely a
// signature check.
type TokenService struct {
	repo      ports.UserRepository
	jwtSecret string
	tokenTTL  time.Duration
}

// NewTokenService builds a TokenService. A tokenTTL of zero means tokens
// carry no expiry and stay valid until the signing secret changes.
func NewTokenService(repo ports.UserRepository, jwtSecret string, tokenTTL time.Duration) *TokenService {
	return &TokenService{repo: repo, jwtSecret: jwtSecret, tokenTTL: tokenTTL}
}

// Issue looks the email up in the credential store and, when found, signs a
// token for it. Unknown emails yield domain.ErrUserNotFound; the store is
// never mutated.
func (s *TokenService) Issue(ctx context.Context, email string) (string, error) {
	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		metrics.TokenRejectionsTotal.Inc()
		return "", err
	}

	claims := jwt.MapClaims{"email": user.Email}
	if s.tokenTTL > 0 {
		claims["exp"] = time.Now().Add(s.tokenTTL).Unix()
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := t.SignedString([]byte(s.jwtSecret))
	if err != nil {
		return "", err
	}

	metrics.TokensIssuedTotal.Inc()
	return signed, nil
}
