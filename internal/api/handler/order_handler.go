package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/nahidahmed02/hungry-den-server/internal/core/ports"
)

type OrderHandler struct {
	orderService ports.OrderService
}

func NewOrderHandler(orderService ports.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

type orderItemRequest struct {
	FoodID   string  `json:"food_id"`
	Name     string  `json:"name" validate:"required"`
	Price    float64 `json:"price" validate:"required,gt=0"`
	Quantity int     `json:"quantity" validate:"required,min=1"`
}

type placeOrderRequest struct {
	Email string             `json:"email" validate:"required,email"`
	Items []orderItemRequest `json:"items" validate:"required,min=1,dive"`
}

// Create places an order for the authenticated caller.
//
// @Summary      Place an order
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        body  body      placeOrderRequest  true  "Order"
// @Success      201   {object}  domain.Order
// @Failure      403   {object}  map[string]string
// @Router       /orders [post]
func (h *OrderHandler) Create(c echo.Context) error {
	email, err := claimEmail(c)
	if err != nil {
		return err
	}

	var req placeOrderRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	items := make([]ports.OrderItemInput, 0, len(req.Items))
	for _, it := range req.Items {
		items = append(items, ports.OrderItemInput{
			FoodID:   it.FoodID,
			Name:     it.Name,
			Price:    it.Price,
			Quantity: it.Quantity,
		})
	}

	order, err := h.orderService.PlaceOrder(c.Request().Context(), email, ports.PlaceOrderInput{
		Email: req.Email,
		Items: items,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, order)
}

// List returns orders: all of them without a filter, or the caller's own when
// ?email= is given.
//
// @Summary      List orders
// @Tags         orders
// @Produce      json
// @Param        email  query    string  false  "Filter by customer email (must match the caller)"
// @Success      200    {array}  domain.Order
// @Router       /orders [get]
func (h *OrderHandler) List(c echo.Context) error {
	email, err := claimEmail(c)
	if err != nil {
		return err
	}

	orders, err := h.orderService.ListOrders(c.Request().Context(), email, c.QueryParam("email"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, orders)
}

// Delete removes an order by id.
//
// @Summary      Delete an order
// @Tags         orders
// @Produce      json
// @Param        id   path      string  true  "Order document id"
// @Success      200  {object}  ports.DeleteResult
// @Router       /orders/{id} [delete]
func (h *OrderHandler) Delete(c echo.Context) error {
	res, err := h.orderService.CancelOrder(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, res)
}
