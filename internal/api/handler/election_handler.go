package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/openballot/election-api/internal/core/domain"
	"github.com/openballot/election-api/internal/core/ports"
)

const dateLayout = "2006-01-02"

// ElectionHandler handles the voting window and per-voter status reads.
type ElectionHandler struct {
	service ports.ElectionService
}

func NewElectionHandler(service ports.ElectionService) *ElectionHandler {
	return &ElectionHandler{service: service}
}

type setDatesRequest struct {
	StartDate string `json:"startDate" validate:"required,datetime=2006-01-02"`
	EndDate   string `json:"endDate" validate:"required,datetime=2006-01-02"`
}

type setDatesResponse struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    setDatesRequest `json:"data"`
}

type datesResponse struct {
	Success   bool    `json:"success"`
	StartDate *string `json:"startDate"`
	EndDate   *string `json:"endDate"`
}

type hasVotedResponse struct {
	Success  bool `json:"success"`
	HasVoted bool `json:"hasVoted"`
}

// SetDates handles POST /set-dates. Admin only. The window is replaced
// wholesale; an inverted range is accepted as-is.
//
// @Summary      Set the voting window
// @Tags         election
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      setDatesRequest  true  "ISO date range"
// @Success      200   {object}  setDatesResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Router       /set-dates [post]
func (h *ElectionHandler) SetDates(c echo.Context) error {
	var req setDatesRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	start, err := time.ParseInLocation(dateLayout, req.StartDate, time.UTC)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "startDate must be an ISO date")
	}
	end, err := time.ParseInLocation(dateLayout, req.EndDate, time.UTC)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "endDate must be an ISO date")
	}

	if err := h.service.SetVotingWindow(c.Request().Context(), identity, start, end); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, setDatesResponse{
		Success: true,
		Message: "Voting dates set",
		Data:    req,
	})
}

// GetDates handles GET /dates. Any authenticated role. Both dates are null
// until an administrator configures the window.
//
// @Summary      Get the voting window
// @Tags         election
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  datesResponse
// @Failure      401  {object}  map[string]string
// @Router       /dates [get]
func (h *ElectionHandler) GetDates(c echo.Context) error {
	window, err := h.service.GetVotingWindow(c.Request().Context())
	if err != nil {
		if errors.Is(err, domain.ErrWindowNotConfigured) {
			return c.JSON(http.StatusOK, datesResponse{Success: true})
		}
		return err
	}

	start := window.StartDate.Format(dateLayout)
	end := window.EndDate.Format(dateLayout)
	return c.JSON(http.StatusOK, datesResponse{
		Success:   true,
		StartDate: &start,
		EndDate:   &end,
	})
}

// HasVoted handles GET /has-voted. Any authenticated role.
//
// @Summary      Report whether the authenticated voter has already voted
// @Tags         election
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  hasVotedResponse
// @Failure      401  {object}  map[string]string
// @Router       /has-voted [get]
func (h *ElectionHandler) HasVoted(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	voted, err := h.service.HasVoted(c.Request().Context(), identity)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, hasVotedResponse{Success: true, HasVoted: voted})
}
