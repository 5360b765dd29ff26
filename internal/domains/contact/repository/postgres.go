package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"edubright-backend/internal/domains/contact"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) contact.Repository {
	return &postgresRepository{pool: pool}
}

func (r *postgresRepository) CreateSubmission(ctx context.Context, s *contact.Submission) (*contact.Submission, error) {
	query := `
        INSERT INTO contact_submissions (name, email, phone, location, grade_level, message)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING id, name, email, phone, location, grade_level, message, created_at
    `

	var created contact.Submission
	err := r.pool.QueryRow(ctx, query,
		s.Name, s.Email, s.Phone, s.Location, s.GradeLevel, s.Message,
	).Scan(
		&created.ID, &created.Name, &created.Email, &created.Phone,
		&created.Location, &created.GradeLevel, &created.Message, &created.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create contact submission: %w", err)
	}

	return &created, nil
}

func (r *postgresRepository) ListSubmissions(ctx context.Context) ([]contact.Submission, error) {
	query := `
        SELECT id, name, email, phone, location, grade_level, message, created_at
        FROM contact_submissions
        ORDER BY created_at DESC
    `

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query contact submissions: %w", err)
	}
	defer rows.Close()

	var subs []contact.Submission
	for rows.Next() {
		var s contact.Submission
		if err := rows.Scan(
			&s.ID, &s.Name, &s.Email, &s.Phone,
			&s.Location, &s.GradeLevel, &s.Message, &s.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan contact submission: %w", err)
		}
		subs = append(subs, s)
	}

	return subs, rows.Err()
}
