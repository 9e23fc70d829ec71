package postgres

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/openballot/election-api/internal/core/domain"
)

func TestVoterRepository_FindByVoterID(t *testing.T) {
	db := setupDB(t)
	repo := NewVoterRepository(db)
	ctx := context.Background()

	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO voters (voter_id, password_hash, role) VALUES ($1, $2, $3)`,
		"A1", string(hash), domain.RoleVoter)
	require.NoError(t, err)

	voter, err := repo.FindByVoterID(ctx, "A1")
	require.NoError(t, err)
	require.Equal(t, "A1", voter.VoterID)
	require.Equal(t, domain.RoleVoter, voter.Role)
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(voter.PasswordHash), []byte("s3cret")))
}

func TestVoterRepository_NotFound(t *testing.T) {
	db := setupDB(t)
	repo := NewVoterRepository(db)

	_, err := repo.FindByVoterID(context.Background(), "ghost")
	require.ErrorIs(t, err, domain.ErrVoterNotFound)
}
