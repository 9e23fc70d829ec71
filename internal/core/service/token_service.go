package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/openballot/election-api/internal/core/domain"
)

// TokenTTL is how long an issued token stays valid. Fixed by policy, not
// derived from any request.
const TokenTTL = 60 * time.Minute

// TokenService issues and verifies HS256-signed bearer tokens carrying
// {voter_id, role, exp}. Verification needs only the shared secret, so no
// session state is kept anywhere.
type TokenService struct {
	secret []byte
	now    func() time.Time
}

func NewTokenService(secret string) *TokenService {
	return &TokenService{secret: []byte(secret), now: time.Now}
}

// WithClock overrides the time source. Intended for tests.
func (s *TokenService) WithClock(now func() time.Time) *TokenService {
	s.now = now
	return s
}

func (s *TokenService) Issue(voterID, role string) (string, error) {
	claims := jwt.MapClaims{
		"voter_id": voterID,
		"role":     role,
		"exp":      s.now().Add(TokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(s.secret)
}

func (s *TokenService) Verify(token string) (domain.Identity, error) {
	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil || !tkn.Valid {
		return domain.Identity{}, domain.ErrInvalidToken
	}

	voterID, _ := claims["voter_id"].(string)
	role, _ := claims["role"].(string)
	if voterID == "" || role == "" {
		return domain.Identity{}, domain.ErrInvalidToken
	}

	return domain.Identity{VoterID: voterID, Role: role}, nil
}
