package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/openballot/election-api/internal/core/domain"
)

// RBAC enforces role-based access control against an exact role set.
func RBAC(allowedRoles ...string) echo.MiddlewareFunc {
	allowed := make(map[string]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, _ := c.Get("role").(string)
			if _, ok := allowed[role]; !ok {
				return c.JSON(http.StatusForbidden, map[string]string{"error": "forbidden"})
			}
			return next(c)
		}
	}
}

// Voters admits only voter roles. Unlike RBAC the comparison is
// case-insensitive and accepts the legacy "user" synonym.
func Voters() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, _ := c.Get("role").(string)
			if !domain.IsVoterRole(role) {
				return c.JSON(http.StatusForbidden, map[string]string{"error": "only voters can vote"})
			}
			return next(c)
		}
	}
}
