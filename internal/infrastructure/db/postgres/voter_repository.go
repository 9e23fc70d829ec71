package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/openballot/election-api/internal/core/domain"
	"github.com/openballot/election-api/internal/pkg/dbx"
)

// VoterRepository reads the externally provisioned credential store.
type VoterRepository struct {
	db dbx.DBTX
}

func NewVoterRepository(db dbx.DBTX) *VoterRepository {
	return &VoterRepository{db: db}
}

func (r *VoterRepository) FindByVoterID(ctx context.Context, voterID string) (*domain.Voter, error) {
	query := `SELECT voter_id, password_hash, role FROM voters WHERE voter_id = $1`

	voter := &domain.Voter{}
	err := r.db.QueryRowContext(ctx, query, voterID).
		Scan(&voter.VoterID, &voter.PasswordHash, &voter.Role)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrVoterNotFound
		}
		return nil, fmt.Errorf("find voter: %w", err)
	}

	return voter, nil
}
