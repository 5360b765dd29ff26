package team

import (
	"time"

	"github.com/google/uuid"
)

// TeamMember is one entry on the public team page. Members are listed in
// explicit position order, maintained contiguous from 0 by the reorder flow.
type TeamMember struct {
	ID        uuid.UUID `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Title     string    `json:"title" db:"title"`
	ImageURL  string    `json:"image_url" db:"image_url"`
	Bio       string    `json:"bio" db:"bio"`
	Degrees   []string  `json:"degrees" db:"degrees"`
	Position  int       `json:"position" db:"position"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`

	// Joined from team_member_tags; nil when not requested
	Tags []Tag `json:"tags,omitempty" db:"-"`
}

// Tag is a team tag (specialty badge). Team tags carry their own position
// so admins can order the badge legend.
type Tag struct {
	ID        uuid.UUID `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Color     string    `json:"color" db:"color"`
	Position  int       `json:"position" db:"position"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
