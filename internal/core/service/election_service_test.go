package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/openballot/election-api/internal/core/domain"
)

type stubElectionRepo struct {
	window     *domain.VotingWindow
	candidates map[int64]*domain.Candidate
	ballots    map[string]int64
	nextID     int64

	recordErr error
}

func newStubElectionRepo() *stubElectionRepo {
	return &stubElectionRepo{
		candidates: make(map[int64]*domain.Candidate),
		ballots:    make(map[string]int64),
		nextID:     1,
	}
}

func (r *stubElectionRepo) CreateCandidate(_ context.Context, name, party string) (int64, error) {
	id := r.nextID
	r.nextID++
	r.candidates[id] = &domain.Candidate{ID: id, Name: name, Party: party}
	return id, nil
}

func (r *stubElectionRepo) FindCandidate(_ context.Context, id int64) (*domain.Candidate, error) {
	c, ok := r.candidates[id]
	if !ok {
		return nil, domain.ErrCandidateNotFound
	}
	clone := *c
	return &clone, nil
}

func (r *stubElectionRepo) ListCandidates(_ context.Context) ([]*domain.Candidate, error) {
	out := make([]*domain.Candidate, 0, len(r.candidates))
	for id := int64(1); id < r.nextID; id++ {
		if c, ok := r.candidates[id]; ok {
			clone := *c
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *stubElectionRepo) SetVotingWindow(_ context.Context, w domain.VotingWindow) error {
	r.window = &w
	return nil
}

func (r *stubElectionRepo) GetVotingWindow(_ context.Context) (*domain.VotingWindow, error) {
	if r.window == nil {
		return nil, domain.ErrWindowNotConfigured
	}
	clone := *r.window
	return &clone, nil
}

func (r *stubElectionRepo) HasVoted(_ context.Context, voterID string) (bool, error) {
	_, ok := r.ballots[voterID]
	return ok, nil
}

func (r *stubElectionRepo) RecordVote(_ context.Context, voterID string, candidateID int64) error {
	if r.recordErr != nil {
		return r.recordErr
	}
	if _, ok := r.ballots[voterID]; ok {
		return domain.ErrAlreadyVoted
	}
	r.ballots[voterID] = candidateID
	r.candidates[candidateID].VoteCount++
	return nil
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// fixtureService returns a service whose clock is frozen at the given day
// and whose repo already holds candidate 1 and the 2024-01-01..2024-01-10
// window.
func fixtureService(t *testing.T, today time.Time) (*ElectionService, *stubElectionRepo) {
	t.Helper()
	repo := newStubElectionRepo()
	repo.window = &domain.VotingWindow{StartDate: date(2024, 1, 1), EndDate: date(2024, 1, 10)}
	if _, err := repo.CreateCandidate(context.Background(), "Ada", "Progress"); err != nil {
		t.Fatalf("seed candidate: %v", err)
	}
	svc := NewElectionService(repo, zerolog.Nop()).WithClock(func() time.Time { return today })
	return svc, repo
}

func TestCastVote_Success(t *testing.T) {
	svc, repo := fixtureService(t, date(2024, 1, 5))

	err := svc.CastVote(context.Background(), domain.Identity{VoterID: "A1", Role: domain.RoleVoter}, 1)
	if err != nil {
		t.Fatalf("expected success, got %v", err)
	}

	if repo.ballots["A1"] != 1 {
		t.Fatalf("ballot not recorded: %+v", repo.ballots)
	}
	if repo.candidates[1].VoteCount != 1 {
		t.Fatalf("expected tally 1, got %d", repo.candidates[1].VoteCount)
	}
}

func TestCastVote_OutsideWindow(t *testing.T) {
	svc, repo := fixtureService(t, date(2024, 2, 1))

	err := svc.CastVote(context.Background(), domain.Identity{VoterID: "A1", Role: domain.RoleVoter}, 1)
	if !errors.Is(err, domain.ErrVotingNotActive) {
		t.Fatalf("expected ErrVotingNotActive, got %v", err)
	}
	if len(repo.ballots) != 0 {
		t.Fatalf("no ballot must be written: %+v", repo.ballots)
	}
}

func TestCastVote_WindowBoundsInclusive(t *testing.T) {
	for _, today := range []time.Time{date(2024, 1, 1), date(2024, 1, 10)} {
		svc, _ := fixtureService(t, today)
		err := svc.CastVote(context.Background(), domain.Identity{VoterID: "A1", Role: domain.RoleVoter}, 1)
		if err != nil {
			t.Fatalf("expected success on boundary %s, got %v", today.Format("2006-01-02"), err)
		}
	}
}

func TestCastVote_WindowNotConfigured(t *testing.T) {
	repo := newStubElectionRepo()
	if _, err := repo.CreateCandidate(context.Background(), "Ada", "Progress"); err != nil {
		t.Fatalf("seed candidate: %v", err)
	}
	svc := NewElectionService(repo, zerolog.Nop())

	err := svc.CastVote(context.Background(), domain.Identity{VoterID: "A1", Role: domain.RoleVoter}, 1)
	if !errors.Is(err, domain.ErrWindowNotConfigured) {
		t.Fatalf("expected ErrWindowNotConfigured, got %v", err)
	}
}

func TestCastVote_CandidateNotFound(t *testing.T) {
	svc, _ := fixtureService(t, date(2024, 1, 5))

	err := svc.CastVote(context.Background(), domain.Identity{VoterID: "A1", Role: domain.RoleVoter}, 42)
	if !errors.Is(err, domain.ErrCandidateNotFound) {
		t.Fatalf("expected ErrCandidateNotFound, got %v", err)
	}
}

func TestCastVote_SecondAttemptFails(t *testing.T) {
	svc, repo := fixtureService(t, date(2024, 1, 5))
	identity := domain.Identity{VoterID: "A1", Role: domain.RoleVoter}

	if err := svc.CastVote(context.Background(), identity, 1); err != nil {
		t.Fatalf("first vote failed: %v", err)
	}
	if err := svc.CastVote(context.Background(), identity, 1); !errors.Is(err, domain.ErrAlreadyVoted) {
		t.Fatalf("expected ErrAlreadyVoted, got %v", err)
	}
	if repo.candidates[1].VoteCount != 1 {
		t.Fatalf("tally must be incremented exactly once, got %d", repo.candidates[1].VoteCount)
	}
}

func TestCastVote_RoleGate(t *testing.T) {
	cases := []struct {
		role    string
		allowed bool
	}{
		{domain.RoleVoter, true},
		{"user", true},
		{"Voter", true},
		{"USER", true},
		{domain.RoleAdmin, false},
		{"", false},
		{"observer", false},
	}

	for _, tc := range cases {
		svc, _ := fixtureService(t, date(2024, 1, 5))
		err := svc.CastVote(context.Background(), domain.Identity{VoterID: "A1", Role: tc.role}, 1)
		if tc.allowed && err != nil {
			t.Fatalf("role %q should be allowed, got %v", tc.role, err)
		}
		if !tc.allowed && !errors.Is(err, domain.ErrForbidden) {
			t.Fatalf("role %q should be forbidden, got %v", tc.role, err)
		}
	}
}

func TestAddCandidate_NonAdminForbidden(t *testing.T) {
	repo := newStubElectionRepo()
	svc := NewElectionService(repo, zerolog.Nop())

	_, err := svc.AddCandidate(context.Background(), domain.Identity{VoterID: "A1", Role: domain.RoleVoter}, "Ada", "Progress")
	if !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	if len(repo.candidates) != 0 {
		t.Fatalf("no candidate must be inserted: %+v", repo.candidates)
	}
}

func TestAddCandidate_Admin(t *testing.T) {
	repo := newStubElectionRepo()
	svc := NewElectionService(repo, zerolog.Nop())

	id, err := svc.AddCandidate(context.Background(), domain.Identity{VoterID: "root", Role: domain.RoleAdmin}, "Ada", "Progress")
	if err != nil {
		t.Fatalf("add candidate failed: %v", err)
	}
	if id != 1 {
		t.Fatalf("expected id 1, got %d", id)
	}
	if repo.candidates[1].VoteCount != 0 {
		t.Fatalf("new candidate must start at zero votes")
	}
}

func TestSetVotingWindow_AdminOnlyAndTruncates(t *testing.T) {
	repo := newStubElectionRepo()
	svc := NewElectionService(repo, zerolog.Nop())

	err := svc.SetVotingWindow(context.Background(), domain.Identity{VoterID: "A1", Role: domain.RoleVoter},
		date(2024, 1, 1), date(2024, 1, 10))
	if !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}

	admin := domain.Identity{VoterID: "root", Role: domain.RoleAdmin}
	start := time.Date(2024, 1, 1, 15, 30, 0, 0, time.UTC)
	end := time.Date(2024, 1, 10, 8, 0, 0, 0, time.UTC)
	if err := svc.SetVotingWindow(context.Background(), admin, start, end); err != nil {
		t.Fatalf("set window failed: %v", err)
	}

	if !repo.window.StartDate.Equal(date(2024, 1, 1)) || !repo.window.EndDate.Equal(date(2024, 1, 10)) {
		t.Fatalf("window must be stored date-only: %+v", repo.window)
	}
}

func TestSetVotingWindow_InvertedRangeAccepted(t *testing.T) {
	repo := newStubElectionRepo()
	svc := NewElectionService(repo, zerolog.Nop())
	admin := domain.Identity{VoterID: "root", Role: domain.RoleAdmin}

	// Inverted on purpose: stored as given, never admits a vote.
	if err := svc.SetVotingWindow(context.Background(), admin, date(2024, 1, 10), date(2024, 1, 1)); err != nil {
		t.Fatalf("inverted window must be accepted, got %v", err)
	}

	if _, err := repo.CreateCandidate(context.Background(), "Ada", "Progress"); err != nil {
		t.Fatalf("seed candidate: %v", err)
	}
	svcFrozen := NewElectionService(repo, zerolog.Nop()).WithClock(func() time.Time { return date(2024, 1, 5) })
	err := svcFrozen.CastVote(context.Background(), domain.Identity{VoterID: "A1", Role: domain.RoleVoter}, 1)
	if !errors.Is(err, domain.ErrVotingNotActive) {
		t.Fatalf("expected ErrVotingNotActive inside inverted window, got %v", err)
	}
}

func TestHasVoted(t *testing.T) {
	svc, repo := fixtureService(t, date(2024, 1, 5))
	identity := domain.Identity{VoterID: "A1", Role: domain.RoleVoter}

	voted, err := svc.HasVoted(context.Background(), identity)
	if err != nil || voted {
		t.Fatalf("expected hasVoted=false, got %v %v", voted, err)
	}

	repo.ballots["A1"] = 1
	voted, err = svc.HasVoted(context.Background(), identity)
	if err != nil || !voted {
		t.Fatalf("expected hasVoted=true, got %v %v", voted, err)
	}
}
