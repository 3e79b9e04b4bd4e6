package service

import (
	"context"
	"fmt"
	"math"

	"github.com/rs/zerolog"

	"github.com/nahidahmed02/hungry-den-server/internal/api/metrics"
	"github.com/nahidahmed02/hungry-den-server/internal/core/domain"
	"github.com/nahidahmed02/hungry-den-server/internal/core/ports"
)

// Intents are always created in USD, matching the storefront.
const paymentCurrency = "usd"

type paymentService struct {
	gateway ports.PaymentGateway
	log     zerolog.Logger
}

// NewPaymentService returns a PaymentService forwarding to the given gateway.
func NewPaymentService(gateway ports.PaymentGateway, log zerolog.Logger) ports.PaymentService {
	return &paymentService{gateway: gateway, log: log}
}

// CreateIntent converts the price to cents, creates an intent with the
// processor, and returns the client secret verbatim. Processor failures are
// surfaced as domain.ErrPaymentFailed with the cause logged, not leaked.
func (s *paymentService) CreateIntent(ctx context.Context, price float64) (string, error) {
	amount := int64(math.Round(price * 100))

	secret, err := s.gateway.CreateIntent(ctx, amount, paymentCurrency)
	if err != nil {
		metrics.PaymentIntentsTotal.WithLabelValues("error").Inc()
		s.log.Error().Err(err).Int64("amount_cents", amount).Msg("payment intent creation failed")
		return "", fmt.Errorf("%w: %v", domain.ErrPaymentFailed, err)
	}

	metrics.PaymentIntentsTotal.WithLabelValues("ok").Inc()
	return secret, nil
}
