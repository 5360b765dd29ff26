package team

import (
	"context"

	"github.com/google/uuid"
)

// Service defines business logic for the team admin panel and the public
// team page.
type Service interface {
	// ListMembers returns the position-ordered member list with tags
	ListMembers(ctx context.Context) ([]TeamMember, error)

	// GetMember returns one member.
	// Errors: ErrMemberNotFound
	GetMember(ctx context.Context, id uuid.UUID) (*TeamMember, error)

	// CreateMember validates and inserts a member at the end of the list,
	// then applies the requested tag set.
	// Errors: ErrInvalidName, ErrInvalidTitle
	CreateMember(ctx context.Context, req *CreateMemberRequest) (*TeamMember, error)

	// UpdateMember validates and saves a full member edit (tags included,
	// replace-all semantics).
	// Errors: ErrMemberNotFound, validation errors
	UpdateMember(ctx context.Context, id uuid.UUID, req *UpdateMemberRequest) (*TeamMember, error)

	// DeleteMember removes a member; remaining positions stay contiguous.
	// Errors: ErrMemberNotFound
	DeleteMember(ctx context.Context, id uuid.UUID) error

	// ReorderMembers moves the member at fromIndex to toIndex and persists
	// new positions for every affected row in one batched write.
	// On persistence failure the optimistic list is discarded and the
	// authoritative list is re-read and returned alongside the error.
	ReorderMembers(ctx context.Context, fromIndex, toIndex int) ([]TeamMember, error)

	// SetMemberTags replaces a member's tag set (replace-all, not a diff)
	SetMemberTags(ctx context.Context, memberID uuid.UUID, tagIDs []uuid.UUID) error

	// ListTags returns the position-ordered tag list
	ListTags(ctx context.Context) ([]Tag, error)

	// CreateTag validates and appends a tag.
	// Errors: ErrInvalidTagName, ErrInvalidTagColor, ErrDuplicateTag
	CreateTag(ctx context.Context, req *CreateTagRequest) (*Tag, error)

	// UpdateTag renames or recolors a tag.
	// Errors: ErrTagNotFound, validation errors
	UpdateTag(ctx context.Context, id uuid.UUID, req *UpdateTagRequest) (*Tag, error)

	// DeleteTag removes a tag after verifying no member references it.
	// Errors: ErrTagNotFound, ErrTagInUse
	DeleteTag(ctx context.Context, id uuid.UUID) error

	// ReorderTags is ReorderMembers for the tag list
	ReorderTags(ctx context.Context, fromIndex, toIndex int) ([]Tag, error)
}
