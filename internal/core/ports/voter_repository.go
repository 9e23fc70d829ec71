package ports

import (
	"context"

	"github.com/openballot/election-api/internal/core/domain"
)

// VoterRepository is the read-only contract against the externally
// provisioned credential store.
type VoterRepository interface {
	FindByVoterID(ctx context.Context, voterID string) (*domain.Voter, error)
}
