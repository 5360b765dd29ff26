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

	"edubright-backend/internal/domains/team"
	"edubright-backend/pkg/cache"
	pkgdb "edubright-backend/pkg/database"
)

// postgresRepository implements team.Repository.
// The member list cache backs the public team page; every mutation
// invalidates it and the next read repopulates it.
type postgresRepository struct {
	pool  *pgxpool.Pool
	cache cache.Cache
}

func NewPostgresRepository(pool *pgxpool.Pool, cache cache.Cache) team.Repository {
	return &postgresRepository{
		pool:  pool,
		cache: cache,
	}
}

const (
	memberListCacheKey = "team:members"
	tagListCacheKey    = "team:tags"
	cacheTTL           = 15 * time.Minute
)

// ========================================
// MEMBERS
// ========================================

func (r *postgresRepository) ListMembers(ctx context.Context) ([]team.TeamMember, error) {
	var cached []team.TeamMember
	if hit, err := r.cache.Get(ctx, memberListCacheKey, &cached); err == nil && hit {
		return cached, nil
	}

	query := `
        SELECT id, name, title, image_url, bio, degrees, position, created_at, updated_at
        FROM team_members
        ORDER BY position ASC
    `

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query team members: %w", err)
	}
	defer rows.Close()

	var members []team.TeamMember
	for rows.Next() {
		var m team.TeamMember
		if err := rows.Scan(
			&m.ID,
			&m.Name,
			&m.Title,
			&m.ImageURL,
			&m.Bio,
			&m.Degrees,
			&m.Position,
			&m.CreatedAt,
			&m.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan team member: %w", err)
		}
		members = append(members, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating team members: %w", err)
	}

	if err := r.attachTags(ctx, members); err != nil {
		return nil, err
	}

	r.cache.Set(ctx, memberListCacheKey, members, cacheTTL)

	return members, nil
}

// attachTags loads the joined tags for a batch of members in one query
func (r *postgresRepository) attachTags(ctx context.Context, members []team.TeamMember) error {
	if len(members) == 0 {
		return nil
	}

	ids := make([]uuid.UUID, len(members))
	index := make(map[uuid.UUID]int, len(members))
	for i, m := range members {
		ids[i] = m.ID
		index[m.ID] = i
	}

	query := `
        SELECT mt.member_id, t.id, t.name, t.color, t.position, t.created_at
        FROM team_member_tags mt
        JOIN team_tags t ON t.id = mt.tag_id
        WHERE mt.member_id = ANY($1)
        ORDER BY t.position ASC
    `

	rows, err := r.pool.Query(ctx, query, ids)
	if err != nil {
		return fmt.Errorf("failed to query member tags: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var memberID uuid.UUID
		var t team.Tag
		if err := rows.Scan(&memberID, &t.ID, &t.Name, &t.Color, &t.Position, &t.CreatedAt); err != nil {
			return fmt.Errorf("failed to scan member tag: %w", err)
		}
		if i, ok := index[memberID]; ok {
			members[i].Tags = append(members[i].Tags, t)
		}
	}

	return rows.Err()
}

func (r *postgresRepository) GetMember(ctx context.Context, id uuid.UUID) (*team.TeamMember, error) {
	query := `
        SELECT id, name, title, image_url, bio, degrees, position, created_at, updated_at
        FROM team_members
        WHERE id = $1
    `

	var m team.TeamMember
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&m.ID,
		&m.Name,
		&m.Title,
		&m.ImageURL,
		&m.Bio,
		&m.Degrees,
		&m.Position,
		&m.CreatedAt,
		&m.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, team.ErrMemberNotFound
		}
		return nil, fmt.Errorf("failed to get team member: %w", err)
	}

	members := []team.TeamMember{m}
	if err := r.attachTags(ctx, members); err != nil {
		return nil, err
	}

	return &members[0], nil
}

// CreateMember appends the member at the end of the list. The position is
// computed inside the insert so two concurrent creates cannot collide on
// the same position.
func (r *postgresRepository) CreateMember(ctx context.Context, m *team.TeamMember) (*team.TeamMember, error) {
	query := `
        INSERT INTO team_members (name, title, image_url, bio, degrees, position)
        VALUES ($1, $2, $3, $4, $5, (SELECT COUNT(*) FROM team_members))
        RETURNING id, name, title, image_url, bio, degrees, position, created_at, updated_at
    `

	var created team.TeamMember
	err := r.pool.QueryRow(
		ctx,
		query,
		m.Name,
		m.Title,
		m.ImageURL,
		m.Bio,
		m.Degrees,
	).Scan(
		&created.ID,
		&created.Name,
		&created.Title,
		&created.ImageURL,
		&created.Bio,
		&created.Degrees,
		&created.Position,
		&created.CreatedAt,
		&created.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create team member: %w", err)
	}

	r.invalidateMemberCache(ctx)

	return &created, nil
}

func (r *postgresRepository) UpdateMember(ctx context.Context, m *team.TeamMember) (*team.TeamMember, error) {
	query := `
        UPDATE team_members
        SET
            name = $1,
            title = $2,
            image_url = $3,
            bio = $4,
            degrees = $5,
            updated_at = NOW()
        WHERE id = $6
        RETURNING id, name, title, image_url, bio, degrees, position, created_at, updated_at
    `

	var updated team.TeamMember
	err := r.pool.QueryRow(
		ctx,
		query,
		m.Name,
		m.Title,
		m.ImageURL,
		m.Bio,
		m.Degrees,
		m.ID,
	).Scan(
		&updated.ID,
		&updated.Name,
		&updated.Title,
		&updated.ImageURL,
		&updated.Bio,
		&updated.Degrees,
		&updated.Position,
		&updated.CreatedAt,
		&updated.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, team.ErrMemberNotFound
		}
		return nil, fmt.Errorf("failed to update team member: %w", err)
	}

	r.invalidateMemberCache(ctx)

	return &updated, nil
}

// DeleteMember removes the row and closes the position gap in the same
// transaction, keeping positions contiguous from 0.
func (r *postgresRepository) DeleteMember(ctx context.Context, id uuid.UUID) error {
	err := pkgdb.WithTransaction(ctx, r.pool, func(tx pgx.Tx) error {
		var position int
		err := tx.QueryRow(ctx, `SELECT position FROM team_members WHERE id = $1`, id).Scan(&position)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return team.ErrMemberNotFound
			}
			return fmt.Errorf("failed to read member position: %w", err)
		}

		if _, err := tx.Exec(ctx, `DELETE FROM team_member_tags WHERE member_id = $1`, id); err != nil {
			return fmt.Errorf("failed to delete member tag rows: %w", err)
		}

		if _, err := tx.Exec(ctx, `DELETE FROM team_members WHERE id = $1`, id); err != nil {
			return fmt.Errorf("failed to delete team member: %w", err)
		}

		if _, err := tx.Exec(ctx,
			`UPDATE team_members SET position = position - 1 WHERE position > $1`, position); err != nil {
			return fmt.Errorf("failed to renumber team members: %w", err)
		}

		return nil
	})
	if err != nil {
		return err
	}

	r.invalidateMemberCache(ctx)

	return nil
}

// SetMemberTags replaces the full join-row set: delete all, reinsert the
// selection. One transaction, so readers never observe the empty window.
func (r *postgresRepository) SetMemberTags(ctx context.Context, memberID uuid.UUID, tagIDs []uuid.UUID) error {
	err := pkgdb.WithTransaction(ctx, r.pool, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `DELETE FROM team_member_tags WHERE member_id = $1`, memberID); err != nil {
			return fmt.Errorf("failed to clear member tags: %w", err)
		}

		for _, tagID := range tagIDs {
			if _, err := tx.Exec(ctx,
				`INSERT INTO team_member_tags (member_id, tag_id) VALUES ($1, $2)`,
				memberID, tagID); err != nil {
				return fmt.Errorf("failed to insert member tag: %w", err)
			}
		}

		return nil
	})
	if err != nil {
		return err
	}

	r.invalidateMemberCache(ctx)

	return nil
}

// UpdateMemberPositions is the batched position write behind the reorder
// gesture. All rows move in one transaction or none do.
func (r *postgresRepository) UpdateMemberPositions(ctx context.Context, updates []team.PositionUpdate) error {
	if len(updates) == 0 {
		return nil
	}

	err := pkgdb.WithTransaction(ctx, r.pool, func(tx pgx.Tx) error {
		for _, u := range updates {
			cmdTag, err := tx.Exec(ctx,
				`UPDATE team_members SET position = $1, updated_at = NOW() WHERE id = $2`,
				u.Position, u.ID)
			if err != nil {
				return fmt.Errorf("failed to update member position: %w", err)
			}
			if cmdTag.RowsAffected() == 0 {
				return team.ErrMemberNotFound
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	r.invalidateMemberCache(ctx)

	return nil
}

// ========================================
// TAGS
// ========================================

func (r *postgresRepository) ListTags(ctx context.Context) ([]team.Tag, error) {
	var cached []team.Tag
	if hit, err := r.cache.Get(ctx, tagListCacheKey, &cached); err == nil && hit {
		return cached, nil
	}

	query := `
        SELECT id, name, color, position, created_at
        FROM team_tags
        ORDER BY position ASC
    `

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query team tags: %w", err)
	}
	defer rows.Close()

	var tags []team.Tag
	for rows.Next() {
		var t team.Tag
		if err := rows.Scan(&t.ID, &t.Name, &t.Color, &t.Position, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan team tag: %w", err)
		}
		tags = append(tags, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating team tags: %w", err)
	}

	r.cache.Set(ctx, tagListCacheKey, tags, cacheTTL)

	return tags, nil
}

func (r *postgresRepository) CreateTag(ctx context.Context, t *team.Tag) (*team.Tag, error) {
	query := `
        INSERT INTO team_tags (name, color, position)
        VALUES ($1, $2, (SELECT COUNT(*) FROM team_tags))
        RETURNING id, name, color, position, created_at
    `

	var created team.Tag
	err := r.pool.QueryRow(ctx, query, t.Name, t.Color).Scan(
		&created.ID,
		&created.Name,
		&created.Color,
		&created.Position,
		&created.CreatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return nil, team.ErrDuplicateTag
		}
		return nil, fmt.Errorf("failed to create team tag: %w", err)
	}

	r.invalidateTagCache(ctx)

	return &created, nil
}

func (r *postgresRepository) UpdateTag(ctx context.Context, t *team.Tag) (*team.Tag, error) {
	query := `
        UPDATE team_tags
        SET name = $1, color = $2
        WHERE id = $3
        RETURNING id, name, color, position, created_at
    `

	var updated team.Tag
	err := r.pool.QueryRow(ctx, query, t.Name, t.Color, t.ID).Scan(
		&updated.ID,
		&updated.Name,
		&updated.Color,
		&updated.Position,
		&updated.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, team.ErrTagNotFound
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, team.ErrDuplicateTag
		}
		return nil, fmt.Errorf("failed to update team tag: %w", err)
	}

	r.invalidateTagCache(ctx)
	r.invalidateMemberCache(ctx) // members embed tag name/color

	return &updated, nil
}

// DeleteTag removes a tag and closes its position gap. The FK on
// team_member_tags is the second line of defense behind the service-level
// reference check.
func (r *postgresRepository) DeleteTag(ctx context.Context, id uuid.UUID) error {
	err := pkgdb.WithTransaction(ctx, r.pool, func(tx pgx.Tx) error {
		var position int
		err := tx.QueryRow(ctx, `SELECT position FROM team_tags WHERE id = $1`, id).Scan(&position)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return team.ErrTagNotFound
			}
			return fmt.Errorf("failed to read tag position: %w", err)
		}

		if _, err := tx.Exec(ctx, `DELETE FROM team_tags WHERE id = $1`, id); err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == "23503" { // foreign_key_violation
				return team.ErrTagInUse
			}
			return fmt.Errorf("failed to delete team tag: %w", err)
		}

		if _, err := tx.Exec(ctx,
			`UPDATE team_tags SET position = position - 1 WHERE position > $1`, position); err != nil {
			return fmt.Errorf("failed to renumber team tags: %w", err)
		}

		return nil
	})
	if err != nil {
		return err
	}

	r.invalidateTagCache(ctx)

	return nil
}

func (r *postgresRepository) UpdateTagPositions(ctx context.Context, updates []team.PositionUpdate) error {
	if len(updates) == 0 {
		return nil
	}

	err := pkgdb.WithTransaction(ctx, r.pool, func(tx pgx.Tx) error {
		for _, u := range updates {
			cmdTag, err := tx.Exec(ctx,
				`UPDATE team_tags SET position = $1 WHERE id = $2`,
				u.Position, u.ID)
			if err != nil {
				return fmt.Errorf("failed to update tag position: %w", err)
			}
			if cmdTag.RowsAffected() == 0 {
				return team.ErrTagNotFound
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	r.invalidateTagCache(ctx)

	return nil
}

func (r *postgresRepository) CountTagReferences(ctx context.Context, tagID uuid.UUID) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM team_member_tags WHERE tag_id = $1`, tagID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count tag references: %w", err)
	}
	return count, nil
}

// Cache helpers

func (r *postgresRepository) invalidateMemberCache(ctx context.Context) {
	r.cache.Delete(ctx, memberListCacheKey)
}

func (r *postgresRepository) invalidateTagCache(ctx context.Context) {
	r.cache.Delete(ctx, tagListCacheKey)
}
