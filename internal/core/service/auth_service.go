package service

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/openballot/election-api/internal/core/domain"
	"github.com/openballot/election-api/internal/core/ports"
)

// AuthService implements login against the external credential store.
type AuthService struct {
	voters ports.VoterRepository
	tokens ports.TokenService
}

func NewAuthService(voters ports.VoterRepository, tokens ports.TokenService) *AuthService {
	return &AuthService{voters: voters, tokens: tokens}
}

// Login looks up the voter and compares the password hash. The role baked
// into the token always comes from the store, never from the client.
func (s *AuthService) Login(ctx context.Context, voterID, password string) (string, string, error) {
	if voterID == "" || password == "" {
		return "", "", domain.ErrInvalidCredentials
	}

	voter, err := s.voters.FindByVoterID(ctx, voterID)
	if err != nil {
		if errors.Is(err, domain.ErrVoterNotFound) {
			return "", "", domain.ErrInvalidCredentials
		}
		return "", "", err
	}

	if bcrypt.CompareHashAndPassword([]byte(voter.PasswordHash), []byte(password)) != nil {
		return "", "", domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(voter.VoterID, voter.Role)
	if err != nil {
		return "", "", err
	}

	return token, voter.Role, nil
}
