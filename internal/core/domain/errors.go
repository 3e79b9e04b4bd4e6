package domain

import "errors"

var (
	ErrUserNotFound   = errors.New("user not found")
	ErrFoodNotFound   = errors.New("food not found")
	ErrOrderNotFound  = errors.New("order not found")
	ErrReviewNotFound = errors.New("review not found")
	ErrForbidden      = errors.New("access forbidden")
	ErrInvalidID      = errors.New("invalid document id")
	ErrPaymentFailed  = errors.New("payment intent creation failed")
)
