package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/nahidahmed02/hungry-den-server/internal/core/domain"
	"github.com/nahidahmed02/hungry-den-server/internal/core/ports"
)

type TokenHandler struct {
	tokenService ports.TokenService
}

func NewTokenHandler(tokenService ports.TokenService) *TokenHandler {
	return &TokenHandler{tokenService: tokenService}
}

type tokenResponse struct {
	AccessToken string `json:"accessToken"`
}

// Issue returns a bearer token for a recognised email.
//
// @Summary      Issue a bearer token
// @Tags         auth
// @Produce      json
// @Param        email  query     string  true  "Registered user email"
// @Success      200    {object}  tokenResponse
// @Failure      403    {object}  tokenResponse
// @Router       /jwt [get]
func (h *TokenHandler) Issue(c echo.Context) error {
	email := c.QueryParam("email")

	token, err := h.tokenService.Issue(c.Request().Context(), email)
	if err != nil {
		// Unknown email: forbidden with an empty token, the contract the
		// storefront client relies on.
		if errors.Is(err, domain.ErrUserNotFound) {
			return c.JSON(http.StatusForbidden, tokenResponse{AccessToken: ""})
		}
		return err
	}

	return c.JSON(http.StatusOK, tokenResponse{AccessToken: token})
}
