package domain

import (
	"errors"
	"strings"
)

const (
	RoleAdmin = "admin"
	RoleVoter = "voter"
)

var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrVoterNotFound = errors.New("voter not found")
var ErrInvalidToken = errors.New("invalid token")
var ErrMissingAuthHeader = errors.New("authorization header missing")
var ErrForbidden = errors.New("access forbidden")

// IsVoterRole reports whether role is allowed to cast a vote. Legacy clients
// send "user" instead of "voter"; both are accepted, case-insensitively.
func IsVoterRole(role string) bool {
	switch strings.ToLower(role) {
	case RoleVoter, "user":
		return true
	}
	return false
}

// Voter models an identity in the credential store. Rows are provisioned
// externally; this system only ever reads them.
type Voter struct {
	VoterID      string `json:"voter_id"`
	PasswordHash string `json:"-"`
	Role         string `json:"role"`
}

// Identity is the authenticated claim set extracted from a verified token.
type Identity struct {
	VoterID string
	Role    string
}
