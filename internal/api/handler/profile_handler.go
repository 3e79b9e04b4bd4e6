package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/nahidahmed02/hungry-den-server/internal/core/ports"
)

type ProfileHandler struct {
	profiles ports.ProfileRepository
}

func NewProfileHandler(profiles ports.ProfileRepository) *ProfileHandler {
	return &ProfileHandler{profiles: profiles}
}

type insertedResponse struct {
	InsertedID string `json:"inserted_id"`
}

// Create stores a free-form profile document as submitted.
//
// @Summary      Store a profile document
// @Tags         profile
// @Accept       json
// @Produce      json
// @Param        body  body      map[string]any  true  "Profile document"
// @Success      201   {object}  insertedResponse
// @Router       /profile [post]
func (h *ProfileHandler) Create(c echo.Context) error {
	var doc map[string]any
	if err := c.Bind(&doc); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	id, err := h.profiles.Insert(c.Request().Context(), doc)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, insertedResponse{InsertedID: id})
}
