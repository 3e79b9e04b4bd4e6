package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/nahidahmed02/hungry-den-server/internal/core/ports"
)

type PaymentHandler struct {
	paymentService ports.PaymentService
}

func NewPaymentHandler(paymentService ports.PaymentService) *PaymentHandler {
	return &PaymentHandler{paymentService: paymentService}
}

type paymentIntentRequest struct {
	Price float64 `json:"price" validate:"required,gt=0"`
}

type paymentIntentResponse struct {
	ClientSecret string `json:"clientSecret"`
}

// Create creates a payment intent with the processor and returns the client
// secret verbatim.
//
// @Summary      Create a payment intent
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        body  body      paymentIntentRequest  true  "Order price"
// @Success      200   {object}  paymentIntentResponse
// @Failure      502   {object}  map[string]string
// @Router       /create-payment-intent [post]
func (h *PaymentHandler) Create(c echo.Context) error {
	var req paymentIntentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	secret, err := h.paymentService.CreateIntent(c.Request().Context(), req.Price)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, paymentIntentResponse{ClientSecret: secret})
}
