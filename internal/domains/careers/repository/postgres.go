package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"edubright-backend/internal/domains/careers"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) careers.Repository {
	return &postgresRepository{pool: pool}
}

const jobColumns = `
    id, title, type, location, description, requirements, salary_range,
    status, created_at, updated_at
`

func scanJob(row pgx.Row) (*careers.JobPosting, error) {
	var j careers.JobPosting
	err := row.Scan(
		&j.ID, &j.Title, &j.Type, &j.Location, &j.Description, &j.Requirements,
		&j.SalaryRange, &j.Status, &j.CreatedAt, &j.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &j, nil
}

func (r *postgresRepository) ListJobs(ctx context.Context, activeOnly bool) ([]careers.JobPosting, error) {
	query := `SELECT ` + jobColumns + ` FROM job_postings`
	args := []interface{}{}
	if activeOnly {
		query += ` WHERE status = $1`
		args = append(args, careers.StatusActive)
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query job postings: %w", err)
	}
	defer rows.Close()

	var jobs []careers.JobPosting
	for rows.Next() {
		j, err := scanJob(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan job posting: %w", err)
		}
		jobs = append(jobs, *j)
	}

	return jobs, rows.Err()
}

func (r *postgresRepository) GetJob(ctx context.Context, id uuid.UUID) (*careers.JobPosting, error) {
	query := `SELECT ` + jobColumns + ` FROM job_postings WHERE id = $1`

	j, err := scanJob(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, careers.ErrJobNotFound
		}
		return nil, fmt.Errorf("failed to get job posting: %w", err)
	}

	return j, nil
}

func (r *postgresRepository) CreateJob(ctx context.Context, j *careers.JobPosting) (*careers.JobPosting, error) {
	query := `
        INSERT INTO job_postings (title, type, location, description, requirements, salary_range, status)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        RETURNING ` + jobColumns

	created, err := scanJob(r.pool.QueryRow(ctx, query,
		j.Title, j.Type, j.Location, j.Description, j.Requirements, j.SalaryRange, j.Status,
	))
	if err != nil {
		return nil, fmt.Errorf("failed to create job posting: %w", err)
	}

	return created, nil
}

func (r *postgresRepository) UpdateJob(ctx context.Context, j *careers.JobPosting) (*careers.JobPosting, error) {
	query := `
        UPDATE job_postings
        SET
            title = $1, type = $2, location = $3, description = $4,
            requirements = $5, salary_range = $6, status = $7, updated_at = NOW()
        WHERE id = $8
        RETURNING ` + jobColumns

	updated, err := scanJob(r.pool.QueryRow(ctx, query,
		j.Title, j.Type, j.Location, j.Description, j.Requirements, j.SalaryRange, j.Status, j.ID,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, careers.ErrJobNotFound
		}
		return nil, fmt.Errorf("failed to update job posting: %w", err)
	}

	return updated, nil
}

func (r *postgresRepository) DeleteJob(ctx context.Context, id uuid.UUID) error {
	cmdTag, err := r.pool.Exec(ctx, `DELETE FROM job_postings WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete job posting: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return careers.ErrJobNotFound
	}

	return nil
}
