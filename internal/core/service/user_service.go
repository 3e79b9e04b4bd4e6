package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/nahidahmed02/hungry-den-server/internal/api/metrics"
	"github.com/nahidahmed02/hungry-den-server/internal/core/domain"
	"github.com/nahidahmed02/hungry-den-server/internal/core/ports"
)

// UserService implements registration and the role state machine over
// {user, admin, dman}. Role writes set the field unconditionally and never
// upsert: mutating an unknown email matches zero documents and is not an
// error.
type UserService struct {
	repo ports.UserRepository
	log  zerolog.Logger
}

func NewUserService(repo ports.UserRepository, log zerolog.Logger) *UserService {
	return &UserService{repo: repo, log: log}
}

// RegisterOrReplace upserts the user document keyed by email. The stored
// email always follows the path parameter, whatever the body says.
func (s *UserService) RegisterOrReplace(ctx context.Context, email string, profile map[string]any) (*ports.WriteResult, error) {
	if profile == nil {
		profile = map[string]any{}
	}
	profile["email"] = email

	res, err := s.repo.Upsert(ctx, email, profile)
	if err != nil {
		return nil, err
	}

	s.log.Info().
		Str("email", email).
		Bool("created", res.UpsertedID != "").
		Msg("user registered")
	return res, nil
}

func (s *UserService) ListUsers(ctx context.Context) ([]ports.UserView, error) {
	users, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	views := make([]ports.UserView, 0, len(users))
	for i := range users {
		u := &users[i]
		views = append(views, ports.UserView{
			ID:    u.ID,
			Name:  u.Name,
			Email: u.Email,
			Role:  u.EffectiveRole(),
		})
	}
	return views, nil
}

func (s *UserService) PromoteToAdmin(ctx context.Context, email string) (*ports.WriteResult, error) {
	return s.setRole(ctx, email, domain.RoleAdmin)
}

func (s *UserService) PromoteToDeliveryMan(ctx context.Context, email string) (*ports.WriteResult, error) {
	return s.setRole(ctx, email, domain.RoleDeliveryMan)
}

func (s *UserService) DemoteFromAdmin(ctx context.Context, email string) (*ports.WriteResult, error) {
	return s.setRole(ctx, email, domain.RoleUser)
}

func (s *UserService) DemoteFromDeliveryMan(ctx context.Context, email string) (*ports.WriteResult, error) {
	return s.setRole(ctx, email, domain.RoleUser)
}

func (s *UserService) setRole(ctx context.Context, email, role string) (*ports.WriteResult, error) {
	res, err := s.repo.SetRole(ctx, email, role)
	if err != nil {
		return nil, err
	}

	if res.MatchedCount == 0 {
		s.log.Warn().Str("email", email).Str("role", role).Msg("role change matched no user")
		return res, nil
	}

	metrics.RoleChangesTotal.WithLabelValues(role).Inc()
	s.log.Info().Str("email", email).Str("role", role).Msg("role changed")
	return res, nil
}
