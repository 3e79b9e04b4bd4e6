package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/nahidahmed02/hungry-den-server/internal/api/metrics"
	"github.com/nahidahmed02/hungry-den-server/internal/core/domain"
	"github.com/nahidahmed02/hungry-den-server/internal/core/ports"
)

// MenuCache abstracts the read-through cache for the menu (Redis).
type MenuCache interface {
	Get(ctx context.Context) ([]domain.Food, bool, error)
	Set(ctx context.Context, foods []domain.Food) error
	Invalidate(ctx context.Context) error
}

type foodService struct {
	repo  ports.FoodRepository
	cache MenuCache
	log   zerolog.Logger
}

// NewFoodService returns a FoodService backed by the foods collection with a
// read-through menu cache. Cache failures degrade to direct reads.
func NewFoodService(repo ports.FoodRepository, cache MenuCache, log zerolog.Logger) ports.FoodService {
	return &foodService{repo: repo, cache: cache, log: log}
}

func (s *foodService) Menu(ctx context.Context) ([]domain.Food, error) {
	foods, ok, err := s.cache.Get(ctx)
	if err != nil {
		s.log.Warn().Err(err).Msg("menu cache read failed, falling back to store")
	} else if ok {
		metrics.MenuCacheTotal.WithLabelValues("hit").Inc()
		return foods, nil
	}
	metrics.MenuCacheTotal.WithLabelValues("miss").Inc()

	foods, err = s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(ctx, foods); err != nil {
		s.log.Warn().Err(err).Msg("menu cache write failed")
	}
	return foods, nil
}

func (s *foodService) AddFood(ctx context.Context, input ports.AddFoodInput) (*domain.Food, error) {
	food := &domain.Food{
		Name:        input.Name,
		Price:       input.Price,
		Category:    input.Category,
		Image:       input.Image,
		Description: input.Description,
	}

	id, err := s.repo.Insert(ctx, food)
	if err != nil {
		return nil, err
	}
	food.ID = id

	s.invalidate(ctx)
	s.log.Info().Str("food_id", id).Str("name", food.Name).Msg("menu item added")
	return food, nil
}

func (s *foodService) RemoveFood(ctx context.Context, id string) (*ports.DeleteResult, error) {
	res, err := s.repo.Delete(ctx, id)
	if err != nil {
		return nil, err
	}

	s.invalidate(ctx)
	return res, nil
}

func (s *foodService) invalidate(ctx context.Context) {
	if err := s.cache.Invalidate(ctx); err != nil {
		s.log.Warn().Err(err).Msg("menu cache invalidation failed")
	}
}
