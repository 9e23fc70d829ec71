package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/openballot/election-api/internal/core/domain"
	"github.com/openballot/election-api/internal/core/ports"
)

// ElectionService carries all election business rules. The clock is
// injectable so the voting-window check can be tested against fixed dates.
type ElectionService struct {
	repo   ports.ElectionRepository
	logger zerolog.Logger
	now    func() time.Time
}

func NewElectionService(repo ports.ElectionRepository, logger zerolog.Logger) *ElectionService {
	return &ElectionService{repo: repo, logger: logger, now: time.Now}
}

// WithClock overrides the time source. Intended for tests.
func (s *ElectionService) WithClock(now func() time.Time) *ElectionService {
	s.now = now
	return s
}

// AddCandidate appends a candidate with a zero tally. Admin only.
func (s *ElectionService) AddCandidate(ctx context.Context, identity domain.Identity, name, party string) (int64, error) {
	if identity.Role != domain.RoleAdmin {
		return 0, domain.ErrForbidden
	}

	id, err := s.repo.CreateCandidate(ctx, name, party)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to create candidate")
		return 0, err
	}

	s.logger.Info().Int64("candidate_id", id).Str("name", name).Str("party", party).Msg("candidate added")
	return id, nil
}

// SetVotingWindow replaces the singleton window wholesale. Admin only.
// No start <= end check: an inverted window is stored as given and simply
// never admits a vote.
func (s *ElectionService) SetVotingWindow(ctx context.Context, identity domain.Identity, start, end time.Time) error {
	if identity.Role != domain.RoleAdmin {
		return domain.ErrForbidden
	}

	w := domain.VotingWindow{
		StartDate: domain.DateOf(start),
		EndDate:   domain.DateOf(end),
	}
	if err := s.repo.SetVotingWindow(ctx, w); err != nil {
		s.logger.Error().Err(err).Msg("failed to set voting window")
		return err
	}

	s.logger.Info().
		Time("start_date", w.StartDate).
		Time("end_date", w.EndDate).
		Msg("voting window set")
	return nil
}

func (s *ElectionService) ListCandidates(ctx context.Context) ([]*domain.Candidate, error) {
	return s.repo.ListCandidates(ctx)
}

func (s *ElectionService) GetVotingWindow(ctx context.Context) (*domain.VotingWindow, error) {
	return s.repo.GetVotingWindow(ctx)
}

func (s *ElectionService) HasVoted(ctx context.Context, identity domain.Identity) (bool, error) {
	return s.repo.HasVoted(ctx, identity.VoterID)
}

// CastVote applies the one side-effecting rule of the system:
//
//  1. identity must carry a voter role
//  2. a voting window must be configured
//  3. today (UTC, date-only) must fall inside it, inclusive
//  4. the candidate must exist
//  5. the voter must not have voted before
//  6. ballot insert + tally increment happen in one transaction
//
// Two racing calls for the same voter are resolved by the unique constraint
// on the ballot table inside step 6, not by any lock here: exactly one
// commits, the other gets ErrAlreadyVoted.
func (s *ElectionService) CastVote(ctx context.Context, identity domain.Identity, candidateID int64) error {
	if !domain.IsVoterRole(identity.Role) {
		return domain.ErrForbidden
	}

	window, err := s.repo.GetVotingWindow(ctx)
	if err != nil {
		return err
	}

	today := domain.DateOf(s.now())
	if !window.Contains(today) {
		return domain.ErrVotingNotActive
	}

	if _, err := s.repo.FindCandidate(ctx, candidateID); err != nil {
		return err
	}

	voted, err := s.repo.HasVoted(ctx, identity.VoterID)
	if err != nil {
		return err
	}
	if voted {
		return domain.ErrAlreadyVoted
	}

	if err := s.repo.RecordVote(ctx, identity.VoterID, candidateID); err != nil {
		if !errors.Is(err, domain.ErrAlreadyVoted) {
			s.logger.Error().Err(err).Str("voter_id", identity.VoterID).Msg("failed to record vote")
		}
		return err
	}

	s.logger.Info().Str("voter_id", identity.VoterID).Int64("candidate_id", candidateID).Msg("vote recorded")
	return nil
}
