package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/openballot/election-api/internal/core/domain"
)

// ctxIdentity reassembles the authenticated identity injected by the Auth
// middleware. A missing claim means the middleware did not run for this
// route; fail closed with 401.
func ctxIdentity(c echo.Context) (domain.Identity, error) {
	voterID, _ := c.Get("voter_id").(string)
	role, _ := c.Get("role").(string)
	if voterID == "" || role == "" {
		return domain.Identity{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}

	return domain.Identity{VoterID: voterID, Role: role}, nil
}
