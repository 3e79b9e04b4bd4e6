package service

import (
	"context"
	"testing"

	"github.com/rs/zerolog"

	"github.com/nahidahmed02/hungry-den-server/internal/core/domain"
	"github.com/nahidahmed02/hungry-den-server/internal/core/ports"
)

type stubFoodRepo struct {
	foods     []domain.Food
	findCalls int
}

func (r *stubFoodRepo) FindAll(_ context.Context) ([]domain.Food, error) {
	r.findCalls++
	return r.foods, nil
}

func (r *stubFoodRepo) Insert(_ context.Context, food *domain.Food) (string, error) {
	f := *food
	f.ID = "food-1"
	r.foods = append(r.foods, f)
	return f.ID, nil
}

func (r *stubFoodRepo) Delete(_ context.Context, id string) (*ports.DeleteResult, error) {
	for i, f := range r.foods {
		if f.ID == id {
			r.foods = append(r.foods[:i], r.foods[i+1:]...)
			return &ports.DeleteResult{DeletedCount: 1}, nil
		}
	}
	return &ports.DeleteResult{}, nil
}

type stubMenuCache struct {
	cached      []domain.Food
	present     bool
	setCalls    int
	invalidated int
}

func (c *stubMenuCache) Get(_ context.Context) ([]domain.Food, bool, error) {
	return c.cached, c.present, nil
}

func (c *stubMenuCache) Set(_ context.Context, foods []domain.Food) error {
	c.cached = foods
	c.present = true
	c.setCalls++
	return nil
}

func (c *stubMenuCache) Invalidate(_ context.Context) error {
	c.cached = nil
	c.present = false
	c.invalidated++
	return nil
}

func TestFoodService_Menu_CacheHit(t *testing.T) {
	repo := &stubFoodRepo{foods: []domain.Food{{ID: "f1", Name: "kebab"}}}
	cache := &stubMenuCache{cached: []domain.Food{{ID: "f1", Name: "kebab"}}, present: true}
	svc := NewFoodService(repo, cache, zerolog.Nop())

	foods, err := svc.Menu(context.Background())
	if err != nil {
		t.Fatalf("Menu returned error: %v", err)
	}
	if len(foods) != 1 || foods[0].Name != "kebab" {
		t.Fatalf("unexpected menu: %+v", foods)
	}
	if repo.findCalls != 0 {
		t.Fatalf("cache hit must not touch the store, got %d calls", repo.findCalls)
	}
}

func TestFoodService_Menu_CacheMissPopulates(t *testing.T) {
	repo := &stubFoodRepo{foods: []domain.Food{{ID: "f1", Name: "kebab"}}}
	cache := &stubMenuCache{}
	svc := NewFoodService(repo, cache, zerolog.Nop())

	foods, err := svc.Menu(context.Background())
	if err != nil {
		t.Fatalf("Menu returned error: %v", err)
	}
	if len(foods) != 1 {
		t.Fatalf("unexpected menu: %+v", foods)
	}
	if repo.findCalls != 1 {
		t.Fatalf("expected one store read, got %d", repo.findCalls)
	}
	if cache.setCalls != 1 {
		t.Fatalf("expected cache to be populated")
	}

	// Second read is served from cache.
	if _, err := svc.Menu(context.Background()); err != nil {
		t.Fatalf("second Menu returned error: %v", err)
	}
	if repo.findCalls != 1 {
		t.Fatalf("expected cached second read, got %d store calls", repo.findCalls)
	}
}

func TestFoodService_AddFood_InvalidatesCache(t *testing.T) {
	repo := &stubFoodRepo{}
	cache := &stubMenuCache{present: true}
	svc := NewFoodService(repo, cache, zerolog.Nop())

	food, err := svc.AddFood(context.Background(), ports.AddFoodInput{Name: "doner", Price: 8.5})
	if err != nil {
		t.Fatalf("AddFood returned error: %v", err)
	}
	if food.ID == "" {
		t.Fatalf("expected id on created food")
	}
	if cache.invalidated != 1 {
		t.Fatalf("expected cache invalidation after write")
	}
}

func TestFoodService_RemoveFood_MissingIsNoOp(t *testing.T) {
	repo := &stubFoodRepo{}
	cache := &stubMenuCache{}
	svc := NewFoodService(repo, cache, zerolog.Nop())

	res, err := svc.RemoveFood(context.Background(), "missing")
	if err != nil {
		t.Fatalf("RemoveFood returned error: %v", err)
	}
	if res.DeletedCount != 0 {
		t.Fatalf("expected deleted_count 0, got %d", res.DeletedCount)
	}
}
