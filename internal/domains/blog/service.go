package blog

import (
	"context"

	"github.com/google/uuid"
)

// Service defines business logic for the blog admin panel and public pages.
type Service interface {
	ListPosts(ctx context.Context) ([]BlogPost, error)
	GetPost(ctx context.Context, id uuid.UUID) (*BlogPost, error)

	// CreatePost validates, inserts, then applies the requested tag set
	CreatePost(ctx context.Context, req *CreatePostRequest) (*BlogPost, error)

	// UpdatePost saves a full edit; tags are replace-all
	UpdatePost(ctx context.Context, id uuid.UUID, req *UpdatePostRequest) (*BlogPost, error)

	DeletePost(ctx context.Context, id uuid.UUID) error

	// SetPostTags replaces a post's tag set (replace-all, not a diff)
	SetPostTags(ctx context.Context, postID uuid.UUID, tagIDs []uuid.UUID) error

	ListAuthors(ctx context.Context) ([]BlogAuthor, error)
	CreateAuthor(ctx context.Context, req *CreateAuthorRequest) (*BlogAuthor, error)
	UpdateAuthor(ctx context.Context, id uuid.UUID, req *UpdateAuthorRequest) (*BlogAuthor, error)

	// DeleteAuthor removes an author after verifying no post references it.
	// Errors: ErrAuthorNotFound, ErrAuthorInUse
	DeleteAuthor(ctx context.Context, id uuid.UUID) error

	ListTags(ctx context.Context) ([]Tag, error)
	CreateTag(ctx context.Context, req *CreateTagRequest) (*Tag, error)

	// DeleteTag removes a tag after verifying no post references it.
	// Errors: ErrTagNotFound, ErrTagInUse
	DeleteTag(ctx context.Context, id uuid.UUID) error
}
