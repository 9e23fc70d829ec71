package handler

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/openballot/election-api/internal/api/metrics"
	"github.com/openballot/election-api/internal/core/ports"
)

type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type loginRequest struct {
	VoterID  string `form:"voter_id" validate:"required"`
	Password string `form:"password" validate:"required"`
	// Role is accepted for backwards compatibility with older clients but
	// never trusted; the role always comes from the credential store.
	Role string `form:"role"`
}

type loginResponse struct {
	Success bool   `json:"success"`
	Token   string `json:"token"`
	Role    string `json:"role"`
}

// Login authenticates a voter and returns a bearer token.
//
// @Summary      Login with voter credentials
// @Tags         auth
// @Accept       x-www-form-urlencoded
// @Produce      json
// @Param        voter_id  formData  string  true   "Voter ID"
// @Param        password  formData  string  true   "Password"
// @Success      200       {object}  loginResponse
// @Failure      401       {object}  map[string]string
// @Failure      500       {object}  map[string]string
// @Router       /login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	token, role, err := h.authService.Login(c.Request().Context(), req.VoterID, req.Password)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		return err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	return c.JSON(http.StatusOK, loginResponse{Success: true, Token: token, Role: role})
}

// Profile returns a greeting for the authenticated identity.
//
// @Summary      Show the authenticated voter's profile
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Router       /profile [get]
func (h *AuthHandler) Profile(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, map[string]string{
		"message": fmt.Sprintf("Hello %s, your role is %s", identity.VoterID, identity.Role),
	})
}
