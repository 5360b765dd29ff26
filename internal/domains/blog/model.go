package blog

import (
	"time"

	"github.com/google/uuid"
)

// BlogPost is one article, newest first on the public listing.
type BlogPost struct {
	ID        uuid.UUID `json:"id" db:"id"`
	Title     string    `json:"title" db:"title"`
	Content   string    `json:"content" db:"content"` // markdown
	Preview   string    `json:"preview" db:"preview"`
	ImageURL  string    `json:"image_url" db:"image_url"`
	AuthorID  uuid.UUID `json:"author_id" db:"author_id"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`

	// Joined rows; nil when not requested
	Author *BlogAuthor `json:"author,omitempty" db:"-"`
	Tags   []Tag       `json:"tags,omitempty" db:"-"`
}

// BlogAuthor cannot be deleted while posts reference it.
type BlogAuthor struct {
	ID        uuid.UUID `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Role      string    `json:"role" db:"role"`
	AvatarURL string    `json:"avatar_url" db:"avatar_url"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// Tag is a blog tag. Unlike team tags these carry no color or ordering.
type Tag struct {
	ID        uuid.UUID `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
