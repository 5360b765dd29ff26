package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"edubright-backend/internal/domains/blog"
)

type mockRepository struct {
	listPostsFunc        func(ctx context.Context) ([]blog.BlogPost, error)
	getPostFunc          func(ctx context.Context, id uuid.UUID) (*blog.BlogPost, error)
	createPostFunc       func(ctx context.Context, p *blog.BlogPost) (*blog.BlogPost, error)
	updatePostFunc       func(ctx context.Context, p *blog.BlogPost) (*blog.BlogPost, error)
	deletePostFunc       func(ctx context.Context, id uuid.UUID) error
	setPostTagsFunc      func(ctx context.Context, postID uuid.UUID, tagIDs []uuid.UUID) error
	listAuthorsFunc      func(ctx context.Context) ([]blog.BlogAuthor, error)
	createAuthorFunc     func(ctx context.Context, a *blog.BlogAuthor) (*blog.BlogAuthor, error)
	updateAuthorFunc     func(ctx context.Context, a *blog.BlogAuthor) (*blog.BlogAuthor, error)
	deleteAuthorFunc     func(ctx context.Context, id uuid.UUID) error
	countAuthorPostsFunc func(ctx context.Context, authorID uuid.UUID) (int, error)
	listTagsFunc         func(ctx context.Context) ([]blog.Tag, error)
	createTagFunc        func(ctx context.Context, t *blog.Tag) (*blog.Tag, error)
	deleteTagFunc        func(ctx context.Context, id uuid.UUID) error
	countTagRefsFunc     func(ctx context.Context, tagID uuid.UUID) (int, error)
}

func (m *mockRepository) ListPosts(ctx context.Context) ([]blog.BlogPost, error) {
	return m.listPostsFunc(ctx)
}

func (m *mockRepository) GetPost(ctx context.Context, id uuid.UUID) (*blog.BlogPost, error) {
	return m.getPostFunc(ctx, id)
}

func (m *mockRepository) CreatePost(ctx context.Context, p *blog.BlogPost) (*blog.BlogPost, error) {
	return m.createPostFunc(ctx, p)
}

func (m *mockRepository) UpdatePost(ctx context.Context, p *blog.BlogPost) (*blog.BlogPost, error) {
	return m.updatePostFunc(ctx, p)
}

func (m *mockRepository) DeletePost(ctx context.Context, id uuid.UUID) error {
	return m.deletePostFunc(ctx, id)
}

func (m *mockRepository) SetPostTags(ctx context.Context, postID uuid.UUID, tagIDs []uuid.UUID) error {
	return m.setPostTagsFunc(ctx, postID, tagIDs)
}

func (m *mockRepository) ListAuthors(ctx context.Context) ([]blog.BlogAuthor, error) {
	return m.listAuthorsFunc(ctx)
}

func (m *mockRepository) CreateAuthor(ctx context.Context, a *blog.BlogAuthor) (*blog.BlogAuthor, error) {
	return m.createAuthorFunc(ctx, a)
}

func (m *mockRepository) UpdateAuthor(ctx context.Context, a *blog.BlogAuthor) (*blog.BlogAuthor, error) {
	return m.updateAuthorFunc(ctx, a)
}

func (m *mockRepository) DeleteAuthor(ctx context.Context, id uuid.UUID) error {
	return m.deleteAuthorFunc(ctx, id)
}

func (m *mockRepository) CountAuthorPosts(ctx context.Context, authorID uuid.UUID) (int, error) {
	return m.countAuthorPostsFunc(ctx, authorID)
}

func (m *mockRepository) ListTags(ctx context.Context) ([]blog.Tag, error) {
	return m.listTagsFunc(ctx)
}

func (m *mockRepository) CreateTag(ctx context.Context, t *blog.Tag) (*blog.Tag, error) {
	return m.createTagFunc(ctx, t)
}

func (m *mockRepository) DeleteTag(ctx context.Context, id uuid.UUID) error {
	return m.deleteTagFunc(ctx, id)
}

func (m *mockRepository) CountTagReferences(ctx context.Context, tagID uuid.UUID) (int, error) {
	return m.countTagRefsFunc(ctx, tagID)
}

func validUpdate(authorID uuid.UUID, tagIDs ...uuid.UUID) *blog.UpdatePostRequest {
	return &blog.UpdatePostRequest{
		Title:    "Exam strategies",
		Content:  "# Tips\nbody",
		Preview:  "Tips for exam season",
		ImageURL: "https://cdn.example.com/exams.jpg",
		AuthorID: authorID,
		TagIDs:   tagIDs,
	}
}

func TestUpdatePost_ReplacesTagSet(t *testing.T) {
	postID := uuid.New()
	authorID := uuid.New()
	tagA, tagB, tagC := uuid.New(), uuid.New(), uuid.New()

	// post currently tagged {A, B}
	stored := &blog.BlogPost{
		ID:       postID,
		AuthorID: authorID,
		Tags:     []blog.Tag{{ID: tagA}, {ID: tagB}},
	}
	var replacedWith []uuid.UUID

	repo := &mockRepository{
		getPostFunc: func(ctx context.Context, id uuid.UUID) (*blog.BlogPost, error) {
			return stored, nil
		},
		updatePostFunc: func(ctx context.Context, p *blog.BlogPost) (*blog.BlogPost, error) {
			return p, nil
		},
		setPostTagsFunc: func(ctx context.Context, id uuid.UUID, tagIDs []uuid.UUID) error {
			replacedWith = tagIDs
			return nil
		},
	}

	svc := NewBlogService(repo)
	_, err := svc.UpdatePost(context.Background(), postID, validUpdate(authorID, tagB, tagC))
	require.NoError(t, err)

	// edit to {B, C} leaves exactly {B, C}, not a merge
	assert.Equal(t, []uuid.UUID{tagB, tagC}, replacedWith)
}

func TestUpdatePost_EmptyTagListClearsTags(t *testing.T) {
	postID := uuid.New()
	authorID := uuid.New()
	cleared := false

	repo := &mockRepository{
		getPostFunc: func(ctx context.Context, id uuid.UUID) (*blog.BlogPost, error) {
			return &blog.BlogPost{ID: postID, AuthorID: authorID, Tags: []blog.Tag{{ID: uuid.New()}}}, nil
		},
		updatePostFunc: func(ctx context.Context, p *blog.BlogPost) (*blog.BlogPost, error) {
			return p, nil
		},
		setPostTagsFunc: func(ctx context.Context, id uuid.UUID, tagIDs []uuid.UUID) error {
			cleared = len(tagIDs) == 0
			return nil
		},
	}

	svc := NewBlogService(repo)
	_, err := svc.UpdatePost(context.Background(), postID, validUpdate(authorID))
	require.NoError(t, err)
	assert.True(t, cleared)
}

func TestCreatePost_RequiresAllFields(t *testing.T) {
	svc := NewBlogService(&mockRepository{})

	cases := []struct {
		name string
		req  blog.CreatePostRequest
	}{
		{"missing title", blog.CreatePostRequest{Content: "c", Preview: "p", ImageURL: "i", AuthorID: uuid.New()}},
		{"missing content", blog.CreatePostRequest{Title: "t", Preview: "p", ImageURL: "i", AuthorID: uuid.New()}},
		{"missing preview", blog.CreatePostRequest{Title: "t", Content: "c", ImageURL: "i", AuthorID: uuid.New()}},
		{"missing image", blog.CreatePostRequest{Title: "t", Content: "c", Preview: "p", AuthorID: uuid.New()}},
		{"missing author", blog.CreatePostRequest{Title: "t", Content: "c", Preview: "p", ImageURL: "i"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.CreatePost(context.Background(), &tc.req)
			assert.Error(t, err)
		})
	}
}

func TestDeleteAuthor_BlockedWhilePostsExist(t *testing.T) {
	repo := &mockRepository{
		countAuthorPostsFunc: func(ctx context.Context, authorID uuid.UUID) (int, error) {
			return 3, nil
		},
	}

	svc := NewBlogService(repo)
	err := svc.DeleteAuthor(context.Background(), uuid.New())
	assert.ErrorIs(t, err, blog.ErrAuthorInUse)
}

func TestDeleteAuthor_NoPosts(t *testing.T) {
	deleted := false
	repo := &mockRepository{
		countAuthorPostsFunc: func(ctx context.Context, authorID uuid.UUID) (int, error) {
			return 0, nil
		},
		deleteAuthorFunc: func(ctx context.Context, id uuid.UUID) error {
			deleted = true
			return nil
		},
	}

	svc := NewBlogService(repo)
	require.NoError(t, svc.DeleteAuthor(context.Background(), uuid.New()))
	assert.True(t, deleted)
}

func TestDeleteTag_BlockedWhileReferenced(t *testing.T) {
	repo := &mockRepository{
		countTagRefsFunc: func(ctx context.Context, tagID uuid.UUID) (int, error) {
			return 1, nil
		},
	}

	svc := NewBlogService(repo)
	err := svc.DeleteTag(context.Background(), uuid.New())
	assert.ErrorIs(t, err, blog.ErrTagInUse)
}
