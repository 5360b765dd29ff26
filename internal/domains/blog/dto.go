package blog

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
)

// CreatePostRequest - POST /admin/blog/posts
// Title, content, preview, image and author are all mandatory.
type CreatePostRequest struct {
	Title    string      `json:"title" binding:"required"`
	Content  string      `json:"content" binding:"required"`
	Preview  string      `json:"preview" binding:"required"`
	ImageURL string      `json:"image_url" binding:"required"`
	AuthorID uuid.UUID   `json:"author_id" binding:"required"`
	TagIDs   []uuid.UUID `json:"tag_ids"`
}

func (r CreatePostRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title,
			validation.Required.Error("title is required"),
			validation.Length(1, 500),
		),
		validation.Field(&r.Content,
			validation.Required.Error("content is required"),
		),
		validation.Field(&r.Preview,
			validation.Required.Error("preview is required"),
			validation.Length(1, 1000),
		),
		validation.Field(&r.ImageURL,
			validation.Required.Error("image_url is required"),
		),
		validation.Field(&r.AuthorID,
			validation.By(func(value interface{}) error {
				if id, ok := value.(uuid.UUID); !ok || id == uuid.Nil {
					return ErrInvalidAuthor
				}
				return nil
			}),
		),
	)
}

// UpdatePostRequest - PUT /admin/blog/posts/:id
type UpdatePostRequest struct {
	Title    string      `json:"title" binding:"required"`
	Content  string      `json:"content" binding:"required"`
	Preview  string      `json:"preview" binding:"required"`
	ImageURL string      `json:"image_url" binding:"required"`
	AuthorID uuid.UUID   `json:"author_id" binding:"required"`
	TagIDs   []uuid.UUID `json:"tag_ids"`
}

func (r UpdatePostRequest) Validate() error {
	return CreatePostRequest(r).Validate()
}

// CreateAuthorRequest - POST /admin/blog/authors
type CreateAuthorRequest struct {
	Name      string `json:"name" binding:"required"`
	Role      string `json:"role"`
	AvatarURL string `json:"avatar_url"`
}

func (r CreateAuthorRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name,
			validation.Required.Error("name is required"),
			validation.Length(1, 255),
		),
		validation.Field(&r.Role, validation.Length(0, 255)),
	)
}

// UpdateAuthorRequest - PUT /admin/blog/authors/:id
type UpdateAuthorRequest struct {
	Name      string `json:"name" binding:"required"`
	Role      string `json:"role"`
	AvatarURL string `json:"avatar_url"`
}

func (r UpdateAuthorRequest) Validate() error {
	return CreateAuthorRequest(r).Validate()
}

// CreateTagRequest - POST /admin/blog/tags
type CreateTagRequest struct {
	Name string `json:"name" binding:"required"`
}

func (r CreateTagRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name,
			validation.Required.Error("name is required"),
			validation.Length(1, 100),
		),
	)
}

// SetTagsRequest - PUT /admin/blog/posts/:id/tags
// Replace-all semantics: the post ends up with exactly this set.
type SetTagsRequest struct {
	TagIDs []uuid.UUID `json:"tag_ids"`
}

// PostListResponse wraps the newest-first list
type PostListResponse struct {
	Posts []BlogPost `json:"posts"`
	Total int        `json:"total"`
}

// ToEntity converts CreatePostRequest to a BlogPost entity
func (r *CreatePostRequest) ToEntity() *BlogPost {
	return &BlogPost{
		Title:    r.Title,
		Content:  r.Content,
		Preview:  r.Preview,
		ImageURL: r.ImageURL,
		AuthorID: r.AuthorID,
	}
}

// ApplyToEntity applies UpdatePostRequest onto an existing post
func (r *UpdatePostRequest) ApplyToEntity(p *BlogPost) {
	p.Title = r.Title
	p.Content = r.Content
	p.Preview = r.Preview
	p.ImageURL = r.ImageURL
	p.AuthorID = r.AuthorID
}
