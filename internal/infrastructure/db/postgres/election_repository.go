package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/openballot/election-api/internal/core/domain"
	"github.com/openballot/election-api/internal/pkg/dbx"
)

// dateLayout is the single conversion boundary between stored ISO calendar
// dates and domain time values.
const dateLayout = "2006-01-02"

// windowRowID keys the singleton voting_dates row.
const windowRowID = 1

// ElectionRepository persists candidates, the voting window, and ballots.
// It holds the pool rather than a dbx.DBTX because RecordVote opens its own
// transaction.
type ElectionRepository struct {
	db *sql.DB
}

func NewElectionRepository(db *sql.DB) *ElectionRepository {
	return &ElectionRepository{db: db}
}

func (r *ElectionRepository) CreateCandidate(ctx context.Context, name, party string) (int64, error) {
	query := `INSERT INTO candidates (name, party) VALUES ($1, $2) RETURNING id`

	var id int64
	if err := r.db.QueryRowContext(ctx, query, name, party).Scan(&id); err != nil {
		return 0, fmt.Errorf("insert candidate: %w", err)
	}

	return id, nil
}

func (r *ElectionRepository) FindCandidate(ctx context.Context, id int64) (*domain.Candidate, error) {
	query := `SELECT id, name, party, vote_count FROM candidates WHERE id = $1`

	c := &domain.Candidate{}
	err := r.db.QueryRowContext(ctx, query, id).
		Scan(&c.ID, &c.Name, &c.Party, &c.VoteCount)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrCandidateNotFound
		}
		return nil, fmt.Errorf("find candidate: %w", err)
	}

	return c, nil
}

func (r *ElectionRepository) ListCandidates(ctx context.Context) ([]*domain.Candidate, error) {
	query := `SELECT id, name, party, vote_count FROM candidates ORDER BY id ASC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list candidates: %w", err)
	}
	defer rows.Close()

	candidates := make([]*domain.Candidate, 0)
	for rows.Next() {
		c := &domain.Candidate{}
		if err := rows.Scan(&c.ID, &c.Name, &c.Party, &c.VoteCount); err != nil {
			return nil, fmt.Errorf("scan candidate: %w", err)
		}
		candidates = append(candidates, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list candidates: %w", err)
	}

	return candidates, nil
}

func (r *ElectionRepository) SetVotingWindow(ctx context.Context, w domain.VotingWindow) error {
	query := `
		INSERT INTO voting_dates (id, start_date, end_date)
		VALUES ($1, $2, $3)
		ON CONFLICT (id) DO UPDATE SET
			start_date = EXCLUDED.start_date,
			end_date = EXCLUDED.end_date`

	_, err := r.db.ExecContext(ctx, query, windowRowID,
		w.StartDate.Format(dateLayout), w.EndDate.Format(dateLayout))
	if err != nil {
		return fmt.Errorf("set voting window: %w", err)
	}

	return nil
}

func (r *ElectionRepository) GetVotingWindow(ctx context.Context) (*domain.VotingWindow, error) {
	query := `SELECT start_date, end_date FROM voting_dates WHERE id = $1`

	var start, end string
	err := r.db.QueryRowContext(ctx, query, windowRowID).Scan(&start, &end)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrWindowNotConfigured
		}
		return nil, fmt.Errorf("get voting window: %w", err)
	}

	startDate, err := time.ParseInLocation(dateLayout, start, time.UTC)
	if err != nil {
		return nil, fmt.Errorf("parse start date %q: %w", start, err)
	}
	endDate, err := time.ParseInLocation(dateLayout, end, time.UTC)
	if err != nil {
		return nil, fmt.Errorf("parse end date %q: %w", end, err)
	}

	return &domain.VotingWindow{StartDate: startDate, EndDate: endDate}, nil
}

func (r *ElectionRepository) HasVoted(ctx context.Context, voterID string) (bool, error) {
	query := `SELECT 1 FROM votes WHERE voter_id = $1`

	var one int
	err := r.db.QueryRowContext(ctx, query, voterID).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("has voted: %w", err)
	}

	return true, nil
}

// RecordVote inserts the ballot and increments the candidate tally inside
// one transaction. A racing duplicate for the same voter trips the unique
// constraint on votes.voter_id and both statements roll back, so a ballot
// can never exist without its tally increment or vice versa.
func (r *ElectionRepository) RecordVote(ctx context.Context, voterID string, candidateID int64) error {
	err := dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO votes (voter_id, candidate_id, voted_at) VALUES ($1, $2, $3)`,
			voterID, candidateID, time.Now().UTC())
		if err != nil {
			return err
		}

		_, err = tx.ExecContext(ctx,
			`UPDATE candidates SET vote_count = vote_count + 1 WHERE id = $1`,
			candidateID)
		return err
	})
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrAlreadyVoted
		}
		return fmt.Errorf("record vote: %w", err)
	}

	return nil
}

// isUniqueViolation recognises a unique-constraint failure from postgres
// (SQLSTATE 23505) or, in tests, from sqlite.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return true
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
