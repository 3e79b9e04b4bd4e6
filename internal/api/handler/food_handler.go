package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/nahidahmed02/hungry-den-server/internal/core/ports"
)

type FoodHandler struct {
	foodService ports.FoodService
}

func NewFoodHandler(foodService ports.FoodService) *FoodHandler {
	return &FoodHandler{foodService: foodService}
}

type createFoodRequest struct {
	Name        string  `json:"name" validate:"required"`
	Price       float64 `json:"price" validate:"required,gt=0"`
	Category    string  `json:"category"`
	Image       string  `json:"image"`
	Description string  `json:"description"`
}

// Menu returns all menu items.
//
// @Summary      List the menu
// @Tags         foods
// @Produce      json
// @Success      200  {array}  domain.Food
// @Router       /foods [get]
func (h *FoodHandler) Menu(c echo.Context) error {
	foods, err := h.foodService.Menu(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, foods)
}

// Create adds a menu item.
//
// @Summary      Add a menu item
// @Tags         foods
// @Accept       json
// @Produce      json
// @Param        body  body      createFoodRequest  true  "Menu item"
// @Success      201   {object}  domain.Food
// @Router       /foods [post]
func (h *FoodHandler) Create(c echo.Context) error {
	var req createFoodRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	food, err := h.foodService.AddFood(c.Request().Context(), ports.AddFoodInput{
		Name:        req.Name,
		Price:       req.Price,
		Category:    req.Category,
		Image:       req.Image,
		Description: req.Description,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, food)
}

// Delete removes a menu item by id.
//
// @Summary      Delete a menu item
// @Tags         foods
// @Produce      json
// @Param        id   path      string  true  "Food document id"
// @Success      200  {object}  ports.DeleteResult
// @Router       /foods/{id} [delete]
func (h *FoodHandler) Delete(c echo.Context) error {
	res, err := h.foodService.RemoveFood(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, res)
}
