package team

import (
	"regexp"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
)

var hexColor = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// CreateMemberRequest - POST /admin/team/members
type CreateMemberRequest struct {
	Name     string      `json:"name" binding:"required"`
	Title    string      `json:"title" binding:"required"`
	ImageURL string      `json:"image_url"`
	Bio      string      `json:"bio"`
	Degrees  []string    `json:"degrees"`
	TagIDs   []uuid.UUID `json:"tag_ids"`
}

func (r CreateMemberRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name,
			validation.Required.Error("name is required"),
			validation.Length(1, 255),
		),
		validation.Field(&r.Title,
			validation.Required.Error("title is required"),
			validation.Length(1, 255),
		),
		validation.Field(&r.Bio, validation.Length(0, 5000)),
	)
}

// UpdateMemberRequest - PUT /admin/team/members/:id
type UpdateMemberRequest struct {
	Name     string      `json:"name" binding:"required"`
	Title    string      `json:"title" binding:"required"`
	ImageURL string      `json:"image_url"`
	Bio      string      `json:"bio"`
	Degrees  []string    `json:"degrees"`
	TagIDs   []uuid.UUID `json:"tag_ids"`
}

func (r UpdateMemberRequest) Validate() error {
	return CreateMemberRequest(r).Validate()
}

// ReorderRequest - POST /admin/team/members/reorder
// Indexes into the current position-ordered list.
type ReorderRequest struct {
	FromIndex int `json:"from_index"`
	ToIndex   int `json:"to_index"`
}

// CreateTagRequest - POST /admin/team/tags
type CreateTagRequest struct {
	Name  string `json:"name" binding:"required"`
	Color string `json:"color"`
}

func (r CreateTagRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name,
			validation.Required.Error("name is required"),
			validation.Length(1, 100),
		),
		validation.Field(&r.Color,
			validation.Match(hexColor).Error("color must be a hex value like #aabbcc"),
		),
	)
}

// UpdateTagRequest - PUT /admin/team/tags/:id (rename / recolor)
type UpdateTagRequest struct {
	Name  string `json:"name" binding:"required"`
	Color string `json:"color"`
}

func (r UpdateTagRequest) Validate() error {
	return CreateTagRequest(r).Validate()
}

// SetTagsRequest - PUT /admin/team/members/:id/tags
// Replace-all semantics: the member ends up with exactly this set.
type SetTagsRequest struct {
	TagIDs []uuid.UUID `json:"tag_ids"`
}

// MemberListResponse wraps the position-ordered list
type MemberListResponse struct {
	Members []TeamMember `json:"members"`
	Total   int          `json:"total"`
}

// ToEntity converts CreateMemberRequest to a TeamMember entity.
// Position is assigned by the repository (appended at the end).
func (r *CreateMemberRequest) ToEntity() *TeamMember {
	return &TeamMember{
		Name:     r.Name,
		Title:    r.Title,
		ImageURL: r.ImageURL,
		Bio:      r.Bio,
		Degrees:  r.Degrees,
	}
}

// ApplyToEntity applies UpdateMemberRequest onto an existing member
func (r *UpdateMemberRequest) ApplyToEntity(m *TeamMember) {
	m.Name = r.Name
	m.Title = r.Title
	m.ImageURL = r.ImageURL
	m.Bio = r.Bio
	m.Degrees = r.Degrees
}
