package domain

import (
	"errors"
	"time"
)

var ErrWindowNotConfigured = errors.New("voting dates not set")
var ErrVotingNotActive = errors.New("voting is not active")
var ErrAlreadyVoted = errors.New("voter has already voted")

// VotingWindow is the singleton date range during which votes may be cast.
// Both bounds are calendar dates; the range is inclusive on both ends.
// An inverted window (start after end) is stored as-is and simply never
// contains any date.
type VotingWindow struct {
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
}

// Contains reports whether day falls within the window. All three values
// must be UTC dates with zero time-of-day (see DateOf).
func (w VotingWindow) Contains(day time.Time) bool {
	return !day.Before(w.StartDate) && !day.After(w.EndDate)
}

// DateOf truncates t to a UTC calendar date.
func DateOf(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Ballot is the persisted record of one voter's single vote. Written exactly
// once per voter, never updated or deleted.
type Ballot struct {
	VoterID     string    `json:"voter_id"`
	CandidateID int64     `json:"candidate_id"`
	CastAt      time.Time `json:"cast_at"`
}
