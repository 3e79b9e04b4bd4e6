package ports

import "context"

// PaymentGateway abstracts the third-party payment processor. CreateIntent
// registers an intent for the given amount (in the currency's smallest unit)
// and returns the processor-issued client secret verbatim.
type PaymentGateway interface {
	CreateIntent(ctx context.Context, amountCents int64, currency string) (string, error)
}

// PaymentService exposes payment-intent creation to the API layer.
type PaymentService interface {
	// CreateIntent takes the order price in whole currency units.
	CreateIntent(ctx context.Context, price float64) (string, error)
}
