package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// claimEmail extracts the email claim injected by the Auth middleware. An
// empty claim means the middleware did not run; fail fast before any service
// call.
func claimEmail(c echo.Context) (string, error) {
	email, _ := c.Get("email").(string)
	if email == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return email, nil
}
