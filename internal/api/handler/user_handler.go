package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/nahidahmed02/hungry-den-server/internal/core/ports"
)

type UserHandler struct {
	userService ports.UserService
}

func NewUserHandler(userService ports.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// List returns all user records.
//
// @Summary      List users
// @Tags         users
// @Produce      json
// @Success      200  {array}  ports.UserView
// @Router       /users [get]
func (h *UserHandler) List(c echo.Context) error {
	users, err := h.userService.ListUsers(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, users)
}

// Register upserts the user document keyed by the email path parameter. The
// body is stored as-is; this is the only route with upsert semantics.
//
// @Summary      Register or replace a user
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        email  path      string          true  "User email"
// @Param        body   body      map[string]any  true  "Profile fields"
// @Success      200    {object}  ports.WriteResult
// @Router       /users/{email} [put]
func (h *UserHandler) Register(c echo.Context) error {
	var profile map[string]any
	if err := c.Bind(&profile); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	res, err := h.userService.RegisterOrReplace(c.Request().Context(), c.Param("email"), profile)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, res)
}

// MakeAdmin sets role=admin on the user, unconditionally and idempotently.
//
// @Summary      Grant the admin role
// @Tags         users
// @Produce      json
// @Param        email  path      string  true  "User email"
// @Success      200    {object}  ports.WriteResult
// @Router       /users/admin/{email} [put]
func (h *UserHandler) MakeAdmin(c echo.Context) error {
	return h.setRole(c, h.userService.PromoteToAdmin)
}

// MakeDeliveryMan sets role=dman on the user.
//
// @Summary      Grant the delivery-man role
// @Tags         users
// @Produce      json
// @Param        email  path      string  true  "User email"
// @Success      200    {object}  ports.WriteResult
// @Router       /users/dman/{email} [put]
func (h *UserHandler) MakeDeliveryMan(c echo.Context) error {
	return h.setRole(c, h.userService.PromoteToDeliveryMan)
}

// RevokeAdmin resets the role to plain user, whatever it currently is.
//
// @Summary      Revoke the admin role
// @Tags         users
// @Produce      json
// @Param        email  path      string  true  "User email"
// @Success      200    {object}  ports.WriteResult
// @Router       /admin/{email} [put]
func (h *UserHandler) RevokeAdmin(c echo.Context) error {
	return h.setRole(c, h.userService.DemoteFromAdmin)
}

// RevokeDeliveryMan resets the role to plain user.
//
// @Summary      Revoke the delivery-man role
// @Tags         users
// @Produce      json
// @Param        email  path      string  true  "User email"
// @Success      200    {object}  ports.WriteResult
// @Router       /dman/{email} [put]
func (h *UserHandler) RevokeDeliveryMan(c echo.Context) error {
	return h.setRole(c, h.userService.DemoteFromDeliveryMan)
}

func (h *UserHandler) setRole(c echo.Context, op func(ctx context.Context, email string) (*ports.WriteResult, error)) error {
	res, err := op(c.Request().Context(), c.Param("email"))
	if err != nil {
		return err
	}
	// A zero matched count is not an error: mutating an unknown email is a
	// deliberate no-op, observable to the caller through the counts.
	return c.JSON(http.StatusOK, res)
}
