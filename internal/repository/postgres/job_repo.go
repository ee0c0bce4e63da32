package postgres

import (
	"context"
	"fmt"
	"strings"

	"job-board-backend/internal/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

const schema = `
CREATE TABLE IF NOT EXISTS jobs (
	id          UUID PRIMARY KEY,
	title       TEXT NOT NULL DEFAULT '',
	company     TEXT NOT NULL DEFAULT '',
	location    TEXT NOT NULL DEFAULT '',
	link        TEXT NOT NULL DEFAULT '',
	description TEXT NOT NULL DEFAULT '',
	type        TEXT NOT NULL DEFAULT '',
	tags        TEXT[] NOT NULL DEFAULT '{}',
	created_at  TIMESTAMPTZ NOT NULL
);
CREATE INDEX IF NOT EXISTS jobs_created_at_idx ON jobs (created_at DESC);`

const selectJobs = `SELECT id, title, company, location, link, description, type, tags, created_at FROM jobs`

type jobRepo struct {
	db *pgxpool.Pool
}

func NewJobRepository(db *pgxpool.Pool) domain.JobRepository {
	return &jobRepo{db: db}
}

// EnsureSchema creates the jobs table and its index when missing.
func EnsureSchema(ctx context.Context, db *pgxpool.Pool) error {
	if _, err := db.Exec(ctx, schema); err != nil {
		return fmt.Errorf("ensure jobs schema: %w", err)
	}
	return nil
}

func (r *jobRepo) Create(ctx context.Context, job *domain.Job) error {
	id := uuid.New()
	tags := job.Tags
	if tags == nil {
		tags = []string{}
	}

	query := `INSERT INTO jobs (id, title, company, location, link, description, type, tags, created_at)
              VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.db.Exec(ctx, query,
		id, job.Title, job.Company, job.Location, job.Link, job.Description, string(job.Type), tags, job.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert job: %w", err)
	}
	job.ID = id.String()
	return nil
}

func (r *jobRepo) Fetch(ctx context.Context, filter domain.JobFilter) ([]domain.Job, error) {
	query, args := buildListQuery(filter)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query jobs: %w", err)
	}
	defer rows.Close()

	jobs := []domain.Job{}
	for rows.Next() {
		var (
			job     domain.Job
			id      uuid.UUID
			jobType string
		)
		if err := rows.Scan(&id, &job.Title, &job.Company, &job.Location, &job.Link, &job.Description, &jobType, &job.Tags, &job.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan job: %w", err)
		}
		job.ID = id.String()
		job.Type = domain.JobType(jobType)
		if job.Tags == nil {
			job.Tags = []string{}
		}
		jobs = append(jobs, job)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate jobs: %w", err)
	}

	return jobs, nil
}

// buildListQuery uses strpos rather than ILIKE so '%' and '_' in user input
// stay literal.
func buildListQuery(f domain.JobFilter) (string, []interface{}) {
	var (
		conds []string
		args  []interface{}
	)
	next := func(v interface{}) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if f.Type != "" {
		conds = append(conds, "type = "+next(f.Type))
	}
	if f.Location != "" {
		conds = append(conds, "strpos(lower(location), lower("+next(f.Location)+")) > 0")
	}
	if f.Tag != "" {
		conds = append(conds, "EXISTS (SELECT 1 FROM unnest(tags) AS t WHERE strpos(lower(t), lower("+next(f.Tag)+")) > 0)")
	}

	query := selectJobs
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY created_at DESC"
	return query, args
}
