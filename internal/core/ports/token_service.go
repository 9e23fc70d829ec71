package ports

import "github.com/openballot/election-api/internal/core/domain"

// TokenService issues and verifies the signed bearer tokens that carry a
// voter's identity and role between requests. Verification is stateless:
// nothing is persisted per token.
type TokenService interface {
	Issue(voterID, role string) (string, error)
	// Verify returns domain.ErrInvalidToken when the signature does not
	// check out, the token is malformed or expired, or a required claim is
	// missing.
	Verify(token string) (domain.Identity, error)
}
