package ports

import "context"

type AuthService interface {
	// Login checks the supplied credentials against the credential store and
	// returns a signed bearer token plus the role recorded for the voter.
	// The role a client claims for itself is never consulted.
	Login(ctx context.Context, voterID, password string) (token string, role string, err error)
}
