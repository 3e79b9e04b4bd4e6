package middleware

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/nahidahmed02/hungry-den-server/internal/core/domain"
	"github.com/nahidahmed02/hungry-den-server/internal/core/ports"
)

// RequireRole enforces that the authenticated caller currently holds one of
// the allowed roles. The token carries identity only, so the current role is
// read from the credential store on every request.
func RequireRole(repo ports.UserRepository, allowedRoles ...string) echo.MiddlewareFunc {
	allowed := make(map[string]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			email, _ := c.Get("email").(string)
			if email == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
			}

			user, err := repo.FindByEmail(c.Request().Context(), email)
			if err != nil {
				if errors.Is(err, domain.ErrUserNotFound) {
					return c.JSON(http.StatusForbidden, map[string]string{"error": "forbidden"})
				}
				return err
			}

			if _, ok := allowed[user.EffectiveRole()]; !ok {
				return c.JSON(http.StatusForbidden, map[string]string{"error": "forbidden"})
			}
			return next(c)
		}
	}
}
