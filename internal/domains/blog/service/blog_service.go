package service

import (
	"context"

	"github.com/google/uuid"

	"edubright-backend/internal/domains/blog"
	"edubright-backend/pkg/logger"
)

type blogService struct {
	repo blog.Repository
}

func NewBlogService(repo blog.Repository) blog.Service {
	return &blogService{repo: repo}
}

func (s *blogService) ListPosts(ctx context.Context) ([]blog.BlogPost, error) {
	return s.repo.ListPosts(ctx)
}

func (s *blogService) GetPost(ctx context.Context, id uuid.UUID) (*blog.BlogPost, error) {
	return s.repo.GetPost(ctx, id)
}

func (s *blogService) CreatePost(ctx context.Context, req *blog.CreatePostRequest) (*blog.BlogPost, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	created, err := s.repo.CreatePost(ctx, req.ToEntity())
	if err != nil {
		logger.Error("failed to create blog post", err)
		return nil, err
	}

	if len(req.TagIDs) > 0 {
		if err := s.repo.SetPostTags(ctx, created.ID, req.TagIDs); err != nil {
			logger.Error("failed to set tags on new blog post", err)
			return nil, err
		}
	}

	return s.repo.GetPost(ctx, created.ID)
}

func (s *blogService) UpdatePost(ctx context.Context, id uuid.UUID, req *blog.UpdatePostRequest) (*blog.BlogPost, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	existing, err := s.repo.GetPost(ctx, id)
	if err != nil {
		return nil, err
	}

	req.ApplyToEntity(existing)

	if _, err := s.repo.UpdatePost(ctx, existing); err != nil {
		logger.Error("failed to update blog post", err)
		return nil, err
	}

	// Tag edits ride along with the post edit, replace-all
	if err := s.repo.SetPostTags(ctx, id, req.TagIDs); err != nil {
		logger.Error("failed to replace blog post tags", err)
		return nil, err
	}

	return s.repo.GetPost(ctx, id)
}

func (s *blogService) DeletePost(ctx context.Context, id uuid.UUID) error {
	return s.repo.DeletePost(ctx, id)
}

func (s *blogService) SetPostTags(ctx context.Context, postID uuid.UUID, tagIDs []uuid.UUID) error {
	if _, err := s.repo.GetPost(ctx, postID); err != nil {
		return err
	}
	return s.repo.SetPostTags(ctx, postID, tagIDs)
}

func (s *blogService) ListAuthors(ctx context.Context) ([]blog.BlogAuthor, error) {
	return s.repo.ListAuthors(ctx)
}

func (s *blogService) CreateAuthor(ctx context.Context, req *blog.CreateAuthorRequest) (*blog.BlogAuthor, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	return s.repo.CreateAuthor(ctx, &blog.BlogAuthor{
		Name:      req.Name,
		Role:      req.Role,
		AvatarURL: req.AvatarURL,
	})
}

func (s *blogService) UpdateAuthor(ctx context.Context, id uuid.UUID, req *blog.UpdateAuthorRequest) (*blog.BlogAuthor, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	return s.repo.UpdateAuthor(ctx, &blog.BlogAuthor{
		ID:        id,
		Name:      req.Name,
		Role:      req.Role,
		AvatarURL: req.AvatarURL,
	})
}

func (s *blogService) DeleteAuthor(ctx context.Context, id uuid.UUID) error {
	posts, err := s.repo.CountAuthorPosts(ctx, id)
	if err != nil {
		return err
	}
	if posts > 0 {
		return blog.ErrAuthorInUse
	}

	return s.repo.DeleteAuthor(ctx, id)
}

func (s *blogService) ListTags(ctx context.Context) ([]blog.Tag, error) {
	return s.repo.ListTags(ctx)
}

func (s *blogService) CreateTag(ctx context.Context, req *blog.CreateTagRequest) (*blog.Tag, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	return s.repo.CreateTag(ctx, &blog.Tag{Name: req.Name})
}

func (s *blogService) DeleteTag(ctx context.Context, id uuid.UUID) error {
	refs, err := s.repo.CountTagReferences(ctx, id)
	if err != nil {
		return err
	}
	if refs > 0 {
		return blog.ErrTagInUse
	}

	return s.repo.DeleteTag(ctx, id)
}
