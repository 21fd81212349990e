package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/aswanig/labportal/internal/core"
)

// submissionsSchema is applied on startup. Parameters are stored as JSONB in
// the shape {name: {value, status, reason}}; timestamps are timestamptz and
// serialize to ISO-8601 on export.
const submissionsSchema = `
CREATE TABLE IF NOT EXISTS submissions (
	id              BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
	technician_id   TEXT        NOT NULL,
	technician_name TEXT        NOT NULL,
	customer_id     TEXT        NOT NULL,
	customer_name   TEXT        NOT NULL,
	test_type       TEXT        NOT NULL,
	parameters      JSONB       NOT NULL,
	submitted_at    TIMESTAMPTZ NOT NULL,
	overall_status  TEXT        NOT NULL,
	approval_notes  TEXT        NOT NULL DEFAULT '',
	approved_by     TEXT        NOT NULL DEFAULT ''
);
CREATE INDEX IF NOT EXISTS submissions_customer_idx ON submissions (customer_id, overall_status);
CREATE INDEX IF NOT EXISTS submissions_technician_idx ON submissions (technician_id);
`

// Postgres persists submissions in PostgreSQL. The identity column replaces
// the reference "row count + 1" ID scheme, which is a read-then-write race
// under concurrency; approval transitions run inside a transaction with a
// row lock so the pending check and field updates are atomic.
type Postgres struct {
	pool *pgxpool.Pool
}

// NewPostgres creates a PostgreSQL-backed store over the given pool.
func NewPostgres(pool *pgxpool.Pool) *Postgres {
	return &Postgres{pool: pool}
}

// EnsureSchema creates the submissions table if it does not exist.
func (p *Postgres) EnsureSchema(ctx context.Context) error {
	if _, err := p.pool.Exec(ctx, submissionsSchema); err != nil {
		return fmt.Errorf("ensure submissions schema: %w", err)
	}
	return nil
}

// Append inserts the record and returns the database-assigned ID.
func (p *Postgres) Append(ctx context.Context, sub *core.Submission) (int64, error) {
	params, err := json.Marshal(sub.Parameters)
	if err != nil {
		return 0, fmt.Errorf("encode parameters: %w", err)
	}

	var id int64
	err = p.pool.QueryRow(ctx, `
		INSERT INTO submissions (
			technician_id, technician_name, customer_id, customer_name,
			test_type, parameters, submitted_at, overall_status,
			approval_notes, approved_by
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id`,
		sub.TechnicianID, sub.TechnicianName, sub.CustomerID, sub.CustomerName,
		sub.TestType, params, sub.Timestamp, sub.OverallStatus,
		sub.ApprovalNotes, sub.ApprovedBy,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert submission: %w", err)
	}
	return id, nil
}

// Get returns the submission with the given ID.
func (p *Postgres) Get(ctx context.Context, id int64) (*core.Submission, error) {
	return p.get(ctx, p.pool, id, false)
}

// Update applies mutate inside a transaction holding a row lock, so the
// check-then-set of an approval transition cannot interleave with another
// manager's action on the same record.
func (p *Postgres) Update(ctx context.Context, id int64, mutate func(*core.Submission) error) (*core.Submission, error) {
	tx, err := p.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin update: %w", err)
	}
	defer tx.Rollback(ctx)

	sub, err := p.get(ctx, tx, id, true)
	if err != nil {
		return nil, err
	}
	if err := mutate(sub); err != nil {
		return nil, err
	}

	if _, err := tx.Exec(ctx, `
		UPDATE submissions
		SET overall_status = $2, approval_notes = $3, approved_by = $4
		WHERE id = $1`,
		id, sub.OverallStatus, sub.ApprovalNotes, sub.ApprovedBy,
	); err != nil {
		return nil, fmt.Errorf("update submission %d: %w", id, err)
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit update: %w", err)
	}
	return sub, nil
}

// List returns all submissions ordered by ascending ID.
func (p *Postgres) List(ctx context.Context) ([]*core.Submission, error) {
	rows, err := p.pool.Query(ctx, selectColumns+` FROM submissions ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list submissions: %w", err)
	}
	defer rows.Close()

	var result []*core.Submission
	for rows.Next() {
		sub, err := scanSubmission(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, sub)
	}
	return result, rows.Err()
}

const selectColumns = `
	SELECT id, technician_id, technician_name, customer_id, customer_name,
	       test_type, parameters, submitted_at, overall_status,
	       approval_notes, approved_by`

// querier is satisfied by both *pgxpool.Pool and pgx.Tx.
type querier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

func (p *Postgres) get(ctx context.Context, q querier, id int64, forUpdate bool) (*core.Submission, error) {
	query := selectColumns + ` FROM submissions WHERE id = $1`
	if forUpdate {
		query += ` FOR UPDATE`
	}

	sub, err := scanSubmission(q.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("submission %d: %w", id, core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get submission %d: %w", id, err)
	}
	return sub, nil
}

func scanSubmission(row pgx.Row) (*core.Submission, error) {
	var (
		sub       core.Submission
		params    []byte
		submitted time.Time
	)
	if err := row.Scan(
		&sub.ID, &sub.TechnicianID, &sub.TechnicianName, &sub.CustomerID, &sub.CustomerName,
		&sub.TestType, &params, &submitted, &sub.OverallStatus,
		&sub.ApprovalNotes, &sub.ApprovedBy,
	); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(params, &sub.Parameters); err != nil {
		return nil, fmt.Errorf("decode parameters for submission %d: %w", sub.ID, err)
	}
	sub.Timestamp = submitted
	return &sub, nil
}

var _ core.Store = (*Postgres)(nil)
