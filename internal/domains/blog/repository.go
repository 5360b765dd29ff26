package blog

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines data access for blog posts, authors and tags.
type Repository interface {
	// ListPosts returns all posts newest first, author and tags joined
	ListPosts(ctx context.Context) ([]BlogPost, error)

	// GetPost returns one post with author and tags joined.
	// Errors: ErrPostNotFound
	GetPost(ctx context.Context, id uuid.UUID) (*BlogPost, error)

	// CreatePost inserts a post.
	// Errors: ErrAuthorNotFound (FK)
	CreatePost(ctx context.Context, p *BlogPost) (*BlogPost, error)

	// UpdatePost saves a full post edit.
	// Errors: ErrPostNotFound, ErrAuthorNotFound
	UpdatePost(ctx context.Context, p *BlogPost) (*BlogPost, error)

	// DeletePost removes a post and its tag join rows in one transaction.
	// Errors: ErrPostNotFound
	DeletePost(ctx context.Context, id uuid.UUID) error

	// SetPostTags replaces the post's tag set: delete all join rows,
	// reinsert the given set, one transaction.
	SetPostTags(ctx context.Context, postID uuid.UUID, tagIDs []uuid.UUID) error

	// ListAuthors returns all authors ordered by name
	ListAuthors(ctx context.Context) ([]BlogAuthor, error)

	// CreateAuthor inserts an author
	CreateAuthor(ctx context.Context, a *BlogAuthor) (*BlogAuthor, error)

	// UpdateAuthor saves an author edit.
	// Errors: ErrAuthorNotFound
	UpdateAuthor(ctx context.Context, a *BlogAuthor) (*BlogAuthor, error)

	// DeleteAuthor removes an author. The service checks references first;
	// the FK constraint is the second line of defense.
	// Errors: ErrAuthorNotFound, ErrAuthorInUse
	DeleteAuthor(ctx context.Context, id uuid.UUID) error

	// CountAuthorPosts returns how many posts the author has
	CountAuthorPosts(ctx context.Context, authorID uuid.UUID) (int, error)

	// ListTags returns all blog tags ordered by name
	ListTags(ctx context.Context) ([]Tag, error)

	// CreateTag inserts a tag.
	// Errors: ErrDuplicateTag
	CreateTag(ctx context.Context, t *Tag) (*Tag, error)

	// DeleteTag removes a tag.
	// Errors: ErrTagNotFound, ErrTagInUse
	DeleteTag(ctx context.Context, id uuid.UUID) error

	// CountTagReferences returns how many posts carry the tag
	CountTagReferences(ctx context.Context, tagID uuid.UUID) (int, error)
}
