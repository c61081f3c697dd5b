// Package jobs tracks ingestion runs in the relational database. The graph
// store holds the ingested data itself; this bookkeeping exists so clients
// can enqueue an import and poll its outcome.
package jobs

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/corporate-radar/backend/pkg/ftm"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// State is the lifecycle state of an ingestion job.
type State string

const (
	StatePending   State = "pending"
	StateRunning   State = "running"
	StateCompleted State = "completed"
	StateFailed    State = "failed"
)

// Job is one ingestion run.
type Job struct {
	ID         int64        `json:"id"`
	Source     string       `json:"source"`
	State      State        `json:"state"`
	Summary    *ftm.Summary `json:"summary,omitempty"`
	Error      string       `json:"error,omitempty"`
	CreatedAt  time.Time    `json:"created_at"`
	StartedAt  *time.Time   `json:"started_at,omitempty"`
	FinishedAt *time.Time   `json:"finished_at,omitempty"`
}

// Store persists ingestion jobs.
type Store struct {
	conn *pgxpool.Pool
}

func NewStore(conn *pgxpool.Pool) *Store {
	return &Store{conn: conn}
}

// Create inserts a pending job for the given source reference.
func (s *Store) Create(ctx context.Context, source string) (*Job, error) {
	row := s.conn.QueryRow(ctx, `
		INSERT INTO ingest_jobs (source, state)
		VALUES ($1, $2)
		RETURNING id, created_at
	`, source, StatePending)

	job := &Job{Source: source, State: StatePending}
	if err := row.Scan(&job.ID, &job.CreatedAt); err != nil {
		return nil, fmt.Errorf("failed to create ingest job: %w", err)
	}
	return job, nil
}

// MarkRunning records that a worker picked the job up.
func (s *Store) MarkRunning(ctx context.Context, id int64) error {
	_, err := s.conn.Exec(ctx, `
		UPDATE ingest_jobs
		SET state = $2, started_at = now()
		WHERE id = $1
	`, id, StateRunning)
	if err != nil {
		return fmt.Errorf("failed to mark job %d running: %w", id, err)
	}
	return nil
}

// MarkCompleted records a successful run together with its counters.
func (s *Store) MarkCompleted(ctx context.Context, id int64, summary *ftm.Summary) error {
	_, err := s.conn.Exec(ctx, `
		UPDATE ingest_jobs
		SET state = $2,
		    companies = $3,
		    persons = $4,
		    directorships = $5,
		    ownerships = $6,
		    dropped = $7,
		    elapsed_ms = $8,
		    finished_at = now()
		WHERE id = $1
	`, id, StateCompleted,
		summary.Companies, summary.Persons, summary.Directorships,
		summary.Ownerships, summary.Dropped, summary.ElapsedMs)
	if err != nil {
		return fmt.Errorf("failed to mark job %d completed: %w", id, err)
	}
	return nil
}

// MarkFailed records a failed run and its error message.
func (s *Store) MarkFailed(ctx context.Context, id int64, jobErr error) error {
	message := ""
	if jobErr != nil {
		message = jobErr.Error()
	}
	_, err := s.conn.Exec(ctx, `
		UPDATE ingest_jobs
		SET state = $2, error = $3, finished_at = now()
		WHERE id = $1
	`, id, StateFailed, message)
	if err != nil {
		return fmt.Errorf("failed to mark job %d failed: %w", id, err)
	}
	return nil
}

// Get loads one job. It returns (nil, nil) when the job does not exist.
func (s *Store) Get(ctx context.Context, id int64) (*Job, error) {
	row := s.conn.QueryRow(ctx, `
		SELECT id, source, state,
		       companies, persons, directorships, ownerships, dropped, elapsed_ms,
		       error, created_at, started_at, finished_at
		FROM ingest_jobs
		WHERE id = $1
	`, id)

	var (
		job        Job
		companies  *int64
		persons    *int64
		directs    *int64
		ownerships *int64
		dropped    *int64
		elapsedMs  *int64
		jobError   *string
	)
	err := row.Scan(
		&job.ID, &job.Source, &job.State,
		&companies, &persons, &directs, &ownerships, &dropped, &elapsedMs,
		&jobError, &job.CreatedAt, &job.StartedAt, &job.FinishedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load job %d: %w", id, err)
	}

	if jobError != nil {
		job.Error = *jobError
	}
	if job.State == StateCompleted {
		job.Summary = &ftm.Summary{
			Companies:     int(derefInt64(companies)),
			Persons:       int(derefInt64(persons)),
			Directorships: int(derefInt64(directs)),
			Ownerships:    int(derefInt64(ownerships)),
			Dropped:       int(derefInt64(dropped)),
			ElapsedMs:     derefInt64(elapsedMs),
		}
	}
	return &job, nil
}

func derefInt64(v *int64) int64 {
	if v == nil {
		return 0
	}
	return *v
}
