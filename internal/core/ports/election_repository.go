package ports

import (
	"context"

	"github.com/openballot/election-api/internal/core/domain"
)

// ElectionRepository defines persistence operations for candidates, the
// voting window, and ballots.
type ElectionRepository interface {
	// CreateCandidate inserts a candidate with a zero tally and returns the
	// assigned id.
	CreateCandidate(ctx context.Context, name, party string) (int64, error)
	FindCandidate(ctx context.Context, id int64) (*domain.Candidate, error)
	// ListCandidates returns all candidates ordered by id ascending.
	ListCandidates(ctx context.Context) ([]*domain.Candidate, error)

	// SetVotingWindow replaces the singleton window wholesale (upsert).
	SetVotingWindow(ctx context.Context, w domain.VotingWindow) error
	// GetVotingWindow returns domain.ErrWindowNotConfigured when no window
	// has been set.
	GetVotingWindow(ctx context.Context) (*domain.VotingWindow, error)

	HasVoted(ctx context.Context, voterID string) (bool, error)
	// RecordVote inserts the ballot and increments the candidate's tally in
	// a single transaction. A concurrent duplicate for the same voter is
	// resolved by the unique constraint on the ballot's voter id and
	// surfaces as domain.ErrAlreadyVoted; nothing is partially committed.
	RecordVote(ctx context.Context, voterID string, candidateID int64) error
}
