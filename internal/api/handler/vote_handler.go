package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/openballot/election-api/internal/api/metrics"
	"github.com/openballot/election-api/internal/core/domain"
	"github.com/openballot/election-api/internal/core/ports"
)

// VoteHandler handles vote casting.
type VoteHandler struct {
	service ports.ElectionService
}

func NewVoteHandler(service ports.ElectionService) *VoteHandler {
	return &VoteHandler{service: service}
}

type voteRequest struct {
	CandidateID int64 `json:"candidateId" validate:"required"`
}

type voteResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// Cast handles POST /vote. Voter roles only.
//
// @Summary      Cast a vote
// @Tags         election
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      voteRequest  true  "Candidate choice"
// @Success      200   {object}  voteResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /vote [post]
func (h *VoteHandler) Cast(c echo.Context) error {
	var req voteRequest
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

	if err := h.service.CastVote(c.Request().Context(), identity, req.CandidateID); err != nil {
		metrics.VotesRejectedTotal.WithLabelValues(rejectReason(err)).Inc()
		return err
	}

	metrics.VotesCastTotal.Inc()
	return c.JSON(http.StatusOK, voteResponse{Success: true, Message: "Vote recorded"})
}

func rejectReason(err error) string {
	switch {
	case errors.Is(err, domain.ErrForbidden):
		return "forbidden"
	case errors.Is(err, domain.ErrWindowNotConfigured):
		return "window_not_configured"
	case errors.Is(err, domain.ErrVotingNotActive):
		return "voting_not_active"
	case errors.Is(err, domain.ErrCandidateNotFound):
		return "candidate_not_found"
	case errors.Is(err, domain.ErrAlreadyVoted):
		return "already_voted"
	}
	return "error"
}
