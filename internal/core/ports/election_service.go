package ports

import (
	"context"
	"time"

	"github.com/openballot/election-api/internal/core/domain"
)

// ElectionService carries the business rules of the election: candidate
// management, the voting window, and the vote-casting transaction. Role
// policy is enforced here per operation, on top of the HTTP-level RBAC.
type ElectionService interface {
	// AddCandidate is admin-only; returns the assigned candidate id.
	AddCandidate(ctx context.Context, identity domain.Identity, name, party string) (int64, error)
	// SetVotingWindow is admin-only; replaces the singleton window.
	// start > end is accepted as-is (such a window never matches any date).
	SetVotingWindow(ctx context.Context, identity domain.Identity, start, end time.Time) error

	ListCandidates(ctx context.Context) ([]*domain.Candidate, error)
	GetVotingWindow(ctx context.Context) (*domain.VotingWindow, error)
	HasVoted(ctx context.Context, identity domain.Identity) (bool, error)

	// CastVote validates role, window, candidate existence, and prior-vote
	// absence, then records the ballot and increments the tally atomically.
	CastVote(ctx context.Context, identity domain.Identity, candidateID int64) error
}
