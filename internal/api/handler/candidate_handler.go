package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/openballot/election-api/internal/api/metrics"
	"github.com/openballot/election-api/internal/core/domain"
	"github.com/openballot/election-api/internal/core/ports"
)

// CandidateHandler handles candidate management and listing.
type CandidateHandler struct {
	service ports.ElectionService
}

func NewCandidateHandler(service ports.ElectionService) *CandidateHandler {
	return &CandidateHandler{service: service}
}

type addCandidateRequest struct {
	Name  string `json:"name" validate:"required"`
	Party string `json:"party" validate:"required"`
}

type addCandidateResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	ID      int64  `json:"id"`
}

type listCandidatesResponse struct {
	Success    bool                `json:"success"`
	Candidates []*domain.Candidate `json:"candidates"`
}

// Add handles POST /add-candidate. Admin only.
//
// @Summary      Add a candidate
// @Tags         candidates
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      addCandidateRequest  true  "Candidate details"
// @Success      200   {object}  addCandidateResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Router       /add-candidate [post]
func (h *CandidateHandler) Add(c echo.Context) error {
	var req addCandidateRequest
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

	id, err := h.service.AddCandidate(c.Request().Context(), identity, req.Name, req.Party)
	if err != nil {
		return err
	}

	metrics.CandidatesAddedTotal.Inc()
	return c.JSON(http.StatusOK, addCandidateResponse{
		Success: true,
		Message: "Candidate added",
		ID:      id,
	})
}

// List handles GET /candidates. Any authenticated role.
//
// @Summary      List candidates with their tallies
// @Tags         candidates
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  listCandidatesResponse
// @Failure      401  {object}  map[string]string
// @Router       /candidates [get]
func (h *CandidateHandler) List(c echo.Context) error {
	candidates, err := h.service.ListCandidates(c.Request().Context())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, listCandidatesResponse{
		Success:    true,
		Candidates: candidates,
	})
}
