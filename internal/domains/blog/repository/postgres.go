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

	"edubright-backend/internal/domains/blog"
	"edubright-backend/pkg/cache"
	pkgdb "edubright-backend/pkg/database"
)

type postgresRepository struct {
	pool  *pgxpool.Pool
	cache cache.Cache
}

func NewPostgresRepository(pool *pgxpool.Pool, cache cache.Cache) blog.Repository {
	return &postgresRepository{
		pool:  pool,
		cache: cache,
	}
}

const (
	postListCacheKey = "blog:posts"
	cacheTTL         = 15 * time.Minute
)

// ========================================
// POSTS
// ========================================

func (r *postgresRepository) ListPosts(ctx context.Context) ([]blog.BlogPost, error) {
	var cached []blog.BlogPost
	if hit, err := r.cache.Get(ctx, postListCacheKey, &cached); err == nil && hit {
		return cached, nil
	}

	query := `
        SELECT
            p.id, p.title, p.content, p.preview, p.image_url, p.author_id,
            p.created_at, p.updated_at,
            a.id, a.name, a.role, a.avatar_url, a.created_at
        FROM blog_posts p
        JOIN blog_authors a ON a.id = p.author_id
        ORDER BY p.created_at DESC
    `

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query blog posts: %w", err)
	}
	defer rows.Close()

	var posts []blog.BlogPost
	for rows.Next() {
		var p blog.BlogPost
		var a blog.BlogAuthor
		if err := rows.Scan(
			&p.ID, &p.Title, &p.Content, &p.Preview, &p.ImageURL, &p.AuthorID,
			&p.CreatedAt, &p.UpdatedAt,
			&a.ID, &a.Name, &a.Role, &a.AvatarURL, &a.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan blog post: %w", err)
		}
		p.Author = &a
		posts = append(posts, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating blog posts: %w", err)
	}

	if err := r.attachTags(ctx, posts); err != nil {
		return nil, err
	}

	r.cache.Set(ctx, postListCacheKey, posts, cacheTTL)

	return posts, nil
}

func (r *postgresRepository) attachTags(ctx context.Context, posts []blog.BlogPost) error {
	if len(posts) == 0 {
		return nil
	}

	ids := make([]uuid.UUID, len(posts))
	index := make(map[uuid.UUID]int, len(posts))
	for i, p := range posts {
		ids[i] = p.ID
		index[p.ID] = i
	}

	query := `
        SELECT pt.post_id, t.id, t.name, t.created_at
        FROM blog_post_tags pt
        JOIN blog_tags t ON t.id = pt.tag_id
        WHERE pt.post_id = ANY($1)
        ORDER BY t.name ASC
    `

	rows, err := r.pool.Query(ctx, query, ids)
	if err != nil {
		return fmt.Errorf("failed to query post tags: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var postID uuid.UUID
		var t blog.Tag
		if err := rows.Scan(&postID, &t.ID, &t.Name, &t.CreatedAt); err != nil {
			return fmt.Errorf("failed to scan post tag: %w", err)
		}
		if i, ok := index[postID]; ok {
			posts[i].Tags = append(posts[i].Tags, t)
		}
	}

	return rows.Err()
}

func (r *postgresRepository) GetPost(ctx context.Context, id uuid.UUID) (*blog.BlogPost, error) {
	query := `
        SELECT
            p.id, p.title, p.content, p.preview, p.image_url, p.author_id,
            p.created_at, p.updated_at,
            a.id, a.name, a.role, a.avatar_url, a.created_at
        FROM blog_posts p
        JOIN blog_authors a ON a.id = p.author_id
        WHERE p.id = $1
    `

	var p blog.BlogPost
	var a blog.BlogAuthor
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&p.ID, &p.Title, &p.Content, &p.Preview, &p.ImageURL, &p.AuthorID,
		&p.CreatedAt, &p.UpdatedAt,
		&a.ID, &a.Name, &a.Role, &a.AvatarURL, &a.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, blog.ErrPostNotFound
		}
		return nil, fmt.Errorf("failed to get blog post: %w", err)
	}
	p.Author = &a

	posts := []blog.BlogPost{p}
	if err := r.attachTags(ctx, posts); err != nil {
		return nil, err
	}

	return &posts[0], nil
}

func (r *postgresRepository) CreatePost(ctx context.Context, p *blog.BlogPost) (*blog.BlogPost, error) {
	query := `
        INSERT INTO blog_posts (title, content, preview, image_url, author_id)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id, title, content, preview, image_url, author_id, created_at, updated_at
    `

	var created blog.BlogPost
	err := r.pool.QueryRow(ctx, query,
		p.Title, p.Content, p.Preview, p.ImageURL, p.AuthorID,
	).Scan(
		&created.ID, &created.Title, &created.Content, &created.Preview,
		&created.ImageURL, &created.AuthorID, &created.CreatedAt, &created.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" { // foreign_key_violation
			return nil, blog.ErrAuthorNotFound
		}
		return nil, fmt.Errorf("failed to create blog post: %w", err)
	}

	r.cache.Delete(ctx, postListCacheKey)

	return &created, nil
}

func (r *postgresRepository) UpdatePost(ctx context.Context, p *blog.BlogPost) (*blog.BlogPost, error) {
	query := `
        UPDATE blog_posts
        SET
            title = $1,
            content = $2,
            preview = $3,
            image_url = $4,
            author_id = $5,
            updated_at = NOW()
        WHERE id = $6
        RETURNING id, title, content, preview, image_url, author_id, created_at, updated_at
    `

	var updated blog.BlogPost
	err := r.pool.QueryRow(ctx, query,
		p.Title, p.Content, p.Preview, p.ImageURL, p.AuthorID, p.ID,
	).Scan(
		&updated.ID, &updated.Title, &updated.Content, &updated.Preview,
		&updated.ImageURL, &updated.AuthorID, &updated.CreatedAt, &updated.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, blog.ErrPostNotFound
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return nil, blog.ErrAuthorNotFound
		}
		return nil, fmt.Errorf("failed to update blog post: %w", err)
	}

	r.cache.Delete(ctx, postListCacheKey)

	return &updated, nil
}

func (r *postgresRepository) DeletePost(ctx context.Context, id uuid.UUID) error {
	err := pkgdb.WithTransaction(ctx, r.pool, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `DELETE FROM blog_post_tags WHERE post_id = $1`, id); err != nil {
			return fmt.Errorf("failed to delete post tag rows: %w", err)
		}

		cmdTag, err := tx.Exec(ctx, `DELETE FROM blog_posts WHERE id = $1`, id)
		if err != nil {
			return fmt.Errorf("failed to delete blog post: %w", err)
		}
		if cmdTag.RowsAffected() == 0 {
			return blog.ErrPostNotFound
		}

		return nil
	})
	if err != nil {
		return err
	}

	r.cache.Delete(ctx, postListCacheKey)

	return nil
}

// SetPostTags replaces the full join-row set in one transaction
func (r *postgresRepository) SetPostTags(ctx context.Context, postID uuid.UUID, tagIDs []uuid.UUID) error {
	err := pkgdb.WithTransaction(ctx, r.pool, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `DELETE FROM blog_post_tags WHERE post_id = $1`, postID); err != nil {
			return fmt.Errorf("failed to clear post tags: %w", err)
		}

		for _, tagID := range tagIDs {
			if _, err := tx.Exec(ctx,
				`INSERT INTO blog_post_tags (post_id, tag_id) VALUES ($1, $2)`,
				postID, tagID); err != nil {
				return fmt.Errorf("failed to insert post tag: %w", err)
			}
		}

		return nil
	})
	if err != nil {
		return err
	}

	r.cache.Delete(ctx, postListCacheKey)

	return nil
}

// ========================================
// AUTHORS
// ========================================

func (r *postgresRepository) ListAuthors(ctx context.Context) ([]blog.BlogAuthor, error) {
	query := `
        SELECT id, name, role, avatar_url, created_at
        FROM blog_authors
        ORDER BY name ASC
    `

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query blog authors: %w", err)
	}
	defer rows.Close()

	var authors []blog.BlogAuthor
	for rows.Next() {
		var a blog.BlogAuthor
		if err := rows.Scan(&a.ID, &a.Name, &a.Role, &a.AvatarURL, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan blog author: %w", err)
		}
		authors = append(authors, a)
	}

	return authors, rows.Err()
}

func (r *postgresRepository) CreateAuthor(ctx context.Context, a *blog.BlogAuthor) (*blog.BlogAuthor, error) {
	query := `
        INSERT INTO blog_authors (name, role, avatar_url)
        VALUES ($1, $2, $3)
        RETURNING id, name, role, avatar_url, created_at
    `

	var created blog.BlogAuthor
	err := r.pool.QueryRow(ctx, query, a.Name, a.Role, a.AvatarURL).Scan(
		&created.ID, &created.Name, &created.Role, &created.AvatarURL, &created.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create blog author: %w", err)
	}

	return &created, nil
}

func (r *postgresRepository) UpdateAuthor(ctx context.Context, a *blog.BlogAuthor) (*blog.BlogAuthor, error) {
	query := `
        UPDATE blog_authors
        SET name = $1, role = $2, avatar_url = $3
        WHERE id = $4
        RETURNING id, name, role, avatar_url, created_at
    `

	var updated blog.BlogAuthor
	err := r.pool.QueryRow(ctx, query, a.Name, a.Role, a.AvatarURL, a.ID).Scan(
		&updated.ID, &updated.Name, &updated.Role, &updated.AvatarURL, &updated.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, blog.ErrAuthorNotFound
		}
		return nil, fmt.Errorf("failed to update blog author: %w", err)
	}

	r.cache.Delete(ctx, postListCacheKey) // posts embed author name/role

	return &updated, nil
}

func (r *postgresRepository) DeleteAuthor(ctx context.Context, id uuid.UUID) error {
	cmdTag, err := r.pool.Exec(ctx, `DELETE FROM blog_authors WHERE id = $1`, id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return blog.ErrAuthorInUse
		}
		return fmt.Errorf("failed to delete blog author: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return blog.ErrAuthorNotFound
	}

	return nil
}

func (r *postgresRepository) CountAuthorPosts(ctx context.Context, authorID uuid.UUID) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM blog_posts WHERE author_id = $1`, authorID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count author posts: %w", err)
	}
	return count, nil
}

// ========================================
// TAGS
// ========================================

func (r *postgresRepository) ListTags(ctx context.Context) ([]blog.Tag, error) {
	query := `
        SELECT id, name, created_at
        FROM blog_tags
        ORDER BY name ASC
    `

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query blog tags: %w", err)
	}
	defer rows.Close()

	var tags []blog.Tag
	for rows.Next() {
		var t blog.Tag
		if err := rows.Scan(&t.ID, &t.Name, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan blog tag: %w", err)
		}
		tags = append(tags, t)
	}

	return tags, rows.Err()
}

func (r *postgresRepository) CreateTag(ctx context.Context, t *blog.Tag) (*blog.Tag, error) {
	query := `
        INSERT INTO blog_tags (name)
        VALUES ($1)
        RETURNING id, name, created_at
    `

	var created blog.Tag
	err := r.pool.QueryRow(ctx, query, t.Name).Scan(&created.ID, &created.Name, &created.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return nil, blog.ErrDuplicateTag
		}
		return nil, fmt.Errorf("failed to create blog tag: %w", err)
	}

	return &created, nil
}

func (r *postgresRepository) DeleteTag(ctx context.Context, id uuid.UUID) error {
	cmdTag, err := r.pool.Exec(ctx, `DELETE FROM blog_tags WHERE id = $1`, id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return blog.ErrTagInUse
		}
		return fmt.Errorf("failed to delete blog tag: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return blog.ErrTagNotFound
	}

	return nil
}

func (r *postgresRepository) CountTagReferences(ctx context.Context, tagID uuid.UUID) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM blog_post_tags WHERE tag_id = $1`, tagID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count tag references: %w", err)
	}
	return count, nil
}
