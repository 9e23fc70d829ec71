package domain

import "errors"

var ErrCandidateNotFound = errors.New("candidate not found")

// Candidate is one entry on the ballot. VoteCount is the running tally,
// maintained by the vote transaction rather than recomputed from ballots.
type Candidate struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Party     string `json:"party"`
	VoteCount int64  `json:"vote_count"`
}
