package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"edubright-backend/internal/domains/event"
	"edubright-backend/pkg/cache"
	pkgdb "edubright-backend/pkg/database"
)

type postgresRepository struct {
	pool  *pgxpool.Pool
	cache cache.Cache
}

func NewPostgresRepository(pool *pgxpool.Pool, cache cache.Cache) event.Repository {
	return &postgresRepository{
		pool:  pool,
		cache: cache,
	}
}

const (
	eventListCacheKey = "events:list"
	cacheTTL          = 10 * time.Minute
)

const eventColumns = `
    e.id, e.title, e.description, e.date, e.time, e.location, e.price,
    e.max_participants, e.format, e.zoom_webinar_id, e.registration_deadline,
    e.cancellation_policy, e.tag_id, e.created_at, e.updated_at,
    t.id, t.name, t.color, t.created_at
`

func scanEvent(row pgx.Row) (*event.Event, error) {
	var e event.Event
	var tagID *uuid.UUID
	var tagName, tagColor *string
	var tagCreatedAt *time.Time

	err := row.Scan(
		&e.ID, &e.Title, &e.Description, &e.Date, &e.Time, &e.Location, &e.Price,
		&e.MaxParticipants, &e.Format, &e.ZoomWebinarID, &e.RegistrationDeadline,
		&e.CancellationPolicy, &e.TagID, &e.CreatedAt, &e.UpdatedAt,
		&tagID, &tagName, &tagColor, &tagCreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if tagID != nil {
		e.Tag = &event.Tag{
			ID:        *tagID,
			Name:      *tagName,
			Color:     *tagColor,
			CreatedAt: *tagCreatedAt,
		}
	}

	return &e, nil
}

// ========================================
// EVENTS
// ========================================

func (r *postgresRepository) ListEvents(ctx context.Context) ([]event.Event, error) {
	var cached []event.Event
	if hit, err := r.cache.Get(ctx, eventListCacheKey, &cached); err == nil && hit {
		return cached, nil
	}

	query := `
        SELECT ` + eventColumns + `
        FROM events e
        LEFT JOIN event_tags t ON t.id = e.tag_id
        ORDER BY e.date ASC
    `

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query events: %w", err)
	}
	defer rows.Close()

	var events []event.Event
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan event: %w", err)
		}
		events = append(events, *e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating events: %w", err)
	}

	r.cache.Set(ctx, eventListCacheKey, events, cacheTTL)

	return events, nil
}

func (r *postgresRepository) GetEvent(ctx context.Context, id uuid.UUID) (*event.Event, error) {
	query := `
        SELECT ` + eventColumns + `
        FROM events e
        LEFT JOIN event_tags t ON t.id = e.tag_id
        WHERE e.id = $1
    `

	e, err := scanEvent(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, event.ErrEventNotFound
		}
		return nil, fmt.Errorf("failed to get event: %w", err)
	}

	return e, nil
}

func (r *postgresRepository) CreateEvent(ctx context.Context, e *event.Event) (*event.Event, error) {
	query := `
        INSERT INTO events (
            title, description, date, time, location, price, max_participants,
            format, zoom_webinar_id, registration_deadline, cancellation_policy, tag_id
        )
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
        RETURNING id
    `

	var id uuid.UUID
	err := r.pool.QueryRow(ctx, query,
		e.Title, e.Description, e.Date, e.Time, e.Location, e.Price, e.MaxParticipants,
		e.Format, e.ZoomWebinarID, e.RegistrationDeadline, e.CancellationPolicy, e.TagID,
	).Scan(&id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" { // foreign_key_violation
			return nil, event.ErrTagNotFound
		}
		return nil, fmt.Errorf("failed to create event: %w", err)
	}

	r.cache.Delete(ctx, eventListCacheKey)

	return r.GetEvent(ctx, id)
}

func (r *postgresRepository) UpdateEvent(ctx context.Context, e *event.Event) (*event.Event, error) {
	query := `
        UPDATE events
        SET
            title = $1, description = $2, date = $3, time = $4, location = $5,
            price = $6, max_participants = $7, format = $8, zoom_webinar_id = $9,
            registration_deadline = $10, cancellation_policy = $11, tag_id = $12,
            updated_at = NOW()
        WHERE id = $13
        RETURNING id
    `

	var id uuid.UUID
	err := r.pool.QueryRow(ctx, query,
		e.Title, e.Description, e.Date, e.Time, e.Location, e.Price, e.MaxParticipants,
		e.Format, e.ZoomWebinarID, e.RegistrationDeadline, e.CancellationPolicy, e.TagID,
		e.ID,
	).Scan(&id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, event.ErrEventNotFound
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return nil, event.ErrTagNotFound
		}
		return nil, fmt.Errorf("failed to update event: %w", err)
	}

	r.cache.Delete(ctx, eventListCacheKey)

	return r.GetEvent(ctx, id)
}

func (r *postgresRepository) DeleteEvent(ctx context.Context, id uuid.UUID) error {
	err := pkgdb.WithTransaction(ctx, r.pool, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `DELETE FROM event_registrations WHERE event_id = $1`, id); err != nil {
			return fmt.Errorf("failed to delete event registrations: %w", err)
		}

		cmdTag, err := tx.Exec(ctx, `DELETE FROM events WHERE id = $1`, id)
		if err != nil {
			return fmt.Errorf("failed to delete event: %w", err)
		}
		if cmdTag.RowsAffected() == 0 {
			return event.ErrEventNotFound
		}

		return nil
	})
	if err != nil {
		return err
	}

	r.cache.Delete(ctx, eventListCacheKey)

	return nil
}

// ========================================
// TAGS
// ========================================

func (r *postgresRepository) ListTags(ctx context.Context) ([]event.Tag, error) {
	query := `
        SELECT id, name, color, created_at
        FROM event_tags
        ORDER BY name ASC
    `

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query event tags: %w", err)
	}
	defer rows.Close()

	var tags []event.Tag
	for rows.Next() {
		var t event.Tag
		if err := rows.Scan(&t.ID, &t.Name, &t.Color, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan event tag: %w", err)
		}
		tags = append(tags, t)
	}

	return tags, rows.Err()
}

func (r *postgresRepository) CreateTag(ctx context.Context, t *event.Tag) (*event.Tag, error) {
	query := `
        INSERT INTO event_tags (name, color)
        VALUES ($1, $2)
        RETURNING id, name, color, created_at
    `

	var created event.Tag
	err := r.pool.QueryRow(ctx, query, t.Name, t.Color).Scan(
		&created.ID, &created.Name, &created.Color, &created.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create event tag: %w", err)
	}

	return &created, nil
}

func (r *postgresRepository) DeleteTag(ctx context.Context, id uuid.UUID) error {
	cmdTag, err := r.pool.Exec(ctx, `DELETE FROM event_tags WHERE id = $1`, id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return event.ErrTagInUse
		}
		return fmt.Errorf("failed to delete event tag: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return event.ErrTagNotFound
	}

	r.cache.Delete(ctx, eventListCacheKey)

	return nil
}

func (r *postgresRepository) CountTagReferences(ctx context.Context, tagID uuid.UUID) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM events WHERE tag_id = $1`, tagID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count tag references: %w", err)
	}
	return count, nil
}

// ========================================
// REGISTRATIONS
// ========================================

func (r *postgresRepository) CreateRegistration(ctx context.Context, reg *event.Registration) (*event.Registration, error) {
	query := `
        INSERT INTO event_registrations (event_id, user_id, status, stripe_payment_id, zoom_registrant_id)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id, event_id, user_id, status, stripe_payment_id, zoom_registrant_id, created_at
    `

	var created event.Registration
	err := r.pool.QueryRow(ctx, query,
		reg.EventID, reg.UserID, reg.Status, reg.StripePaymentID, reg.ZoomRegistrantID,
	).Scan(
		&created.ID, &created.EventID, &created.UserID, &created.Status,
		&created.StripePaymentID, &created.ZoomRegistrantID, &created.CreatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return nil, event.ErrAlreadyRegistered
		}
		return nil, fmt.Errorf("failed to create registration: %w", err)
	}

	return &created, nil
}

func (r *postgresRepository) ListRegistrations(ctx context.Context, eventID uuid.UUID) ([]event.Registration, error) {
	query := `
        SELECT id, event_id, user_id, status, stripe_payment_id, zoom_registrant_id, created_at
        FROM event_registrations
        WHERE event_id = $1
        ORDER BY created_at DESC
    `

	rows, err := r.pool.Query(ctx, query, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to query registrations: %w", err)
	}
	defer rows.Close()

	var regs []event.Registration
	for rows.Next() {
		var reg event.Registration
		if err := rows.Scan(
			&reg.ID, &reg.EventID, &reg.UserID, &reg.Status,
			&reg.StripePaymentID, &reg.ZoomRegistrantID, &reg.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan registration: %w", err)
		}
		regs = append(regs, reg)
	}

	return regs, rows.Err()
}
