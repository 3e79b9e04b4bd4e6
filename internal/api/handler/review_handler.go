package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/nahidahmed02/hungry-den-server/internal/core/ports"
)

type ReviewHandler struct {
	reviewService ports.ReviewService
}

func NewReviewHandler(reviewService ports.ReviewService) *ReviewHandler {
	return &ReviewHandler{reviewService: reviewService}
}

type createReviewRequest struct {
	Email   string `json:"email" validate:"required,email"`
	Name    string `json:"name"`
	Rating  int    `json:"rating" validate:"required,min=1,max=5"`
	Comment string `json:"comment"`
}

// List returns all reviews.
//
// @Summary      List reviews
// @Tags         reviews
// @Produce      json
// @Success      200  {array}  domain.Review
// @Router       /reviews [get]
func (h *ReviewHandler) List(c echo.Context) error {
	reviews, err := h.reviewService.Reviews(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, reviews)
}

// ListByEmail returns the caller's own reviews. The path email must match
// the token claim.
//
// @Summary      List a user's reviews
// @Tags         reviews
// @Produce      json
// @Param        email  path     string  true  "Author email"
// @Success      200    {array}  domain.Review
// @Failure      403    {object} map[string]string
// @Router       /reviews/{email} [get]
func (h *ReviewHandler) ListByEmail(c echo.Context) error {
	email, err := claimEmail(c)
	if err != nil {
		return err
	}

	reviews, err := h.reviewService.ReviewsByEmail(c.Request().Context(), email, c.Param("email"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, reviews)
}

// Create stores a review.
//
// @Summary      Add a review
// @Tags         reviews
// @Accept       json
// @Produce      json
// @Param        body  body      createReviewRequest  true  "Review"
// @Success      201   {object}  domain.Review
// @Router       /reviews [post]
func (h *ReviewHandler) Create(c echo.Context) error {
	var req createReviewRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	review, err := h.reviewService.AddReview(c.Request().Context(), ports.AddReviewInput{
		Email:   req.Email,
		Name:    req.Name,
		Rating:  req.Rating,
		Comment: req.Comment,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, review)
}

// Delete removes a review by id.
//
// @Summary      Delete a review
// @Tags         reviews
// @Produce      json
// @Param        id   path      string  true  "Review document id"
// @Success      200  {object}  ports.DeleteResult
// @Router       /reviews/{id} [delete]
func (h *ReviewHandler) Delete(c echo.Context) error {
	res, err := h.reviewService.RemoveReview(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, res)
}
