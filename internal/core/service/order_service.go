package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/nahidahmed02/hungry-den-server/internal/api/metrics"
	"github.com/nahidahmed02/hungry-den-server/internal/core/domain"
	"github.com/nahidahmed02/hungry-den-server/internal/core/ports"
)

type orderService struct {
	repo ports.OrderRepository
	log  zerolog.Logger
}

// NewOrderService returns an OrderService backed by the orders collection.
func NewOrderService(repo ports.OrderRepository, log zerolog.Logger) ports.OrderService {
	return &orderService{repo: repo, log: log}
}

// PlaceOrder creates an order for the caller. The order email must equal the
// token claim; the total is derived from the line items.
func (s *orderService) PlaceOrder(ctx context.Context, claimEmail string, input ports.PlaceOrderInput) (*domain.Order, error) {
	if input.Email != claimEmail {
		return nil, domain.ErrForbidden
	}

	items := make([]domain.OrderItem, 0, len(input.Items))
	var total float64
	for _, it := range input.Items {
		items = append(items, domain.OrderItem{
			FoodID:   it.FoodID,
			Name:     it.Name,
			Price:    it.Price,
			Quantity: it.Quantity,
		})
		total += it.Price * float64(it.Quantity)
	}

	order := &domain.Order{
		Email:     input.Email,
		Items:     items,
		Total:     total,
		Status:    domain.OrderStatusPending,
		CreatedAt: time.Now().UTC(),
	}

	id, err := s.repo.Insert(ctx, order)
	if err != nil {
		return nil, err
	}
	order.ID = id

	metrics.OrdersCreatedTotal.Inc()
	s.log.Info().Str("order_id", id).Str("email", order.Email).Float64("total", total).Msg("order placed")
	return order, nil
}

func (s *orderService) ListOrders(ctx context.Context, claimEmail, email string) ([]domain.Order, error) {
	if email == "" {
		return s.repo.FindAll(ctx)
	}
	if email != claimEmail {
		return nil, domain.ErrForbidden
	}
	return s.repo.FindByEmail(ctx, email)
}

func (s *orderService) CancelOrder(ctx context.Context, id string) (*ports.DeleteResult, error) {
	return s.repo.Delete(ctx, id)
}
