package team

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines data access for team members and team tags.
// Abstraction allows mocking in service tests and keeps SQL out of the
// business layer.
type Repository interface {
	// ListMembers returns all members ordered by position asc, tags joined
	ListMembers(ctx context.Context) ([]TeamMember, error)

	// GetMember returns one member with tags joined.
	// Errors: ErrMemberNotFound
	GetMember(ctx context.Context, id uuid.UUID) (*TeamMember, error)

	// CreateMember inserts a member at the end of the list
	// (position = current count).
	CreateMember(ctx context.Context, m *TeamMember) (*TeamMember, error)

	// UpdateMember updates name/title/image/bio/degrees. Position is not
	// touched here; only the reorder path moves positions.
	// Errors: ErrMemberNotFound
	UpdateMember(ctx context.Context, m *TeamMember) (*TeamMember, error)

	// DeleteMember removes a member and renumbers the remainder so
	// positions stay contiguous from 0. Single transaction.
	// Errors: ErrMemberNotFound
	DeleteMember(ctx context.Context, id uuid.UUID) error

	// SetMemberTags replaces the member's tag set: delete all join rows,
	// reinsert the given set, one transaction.
	SetMemberTags(ctx context.Context, memberID uuid.UUID, tagIDs []uuid.UUID) error

	// UpdateMemberPositions applies a batched position write in one
	// transaction (the update_positions call).
	UpdateMemberPositions(ctx context.Context, updates []PositionUpdate) error

	// ListTags returns all team tags ordered by position asc
	ListTags(ctx context.Context) ([]Tag, error)

	// CreateTag appends a tag (position = current count).
	// Errors: ErrDuplicateTag
	CreateTag(ctx context.Context, t *Tag) (*Tag, error)

	// UpdateTag renames/recolors a tag.
	// Errors: ErrTagNotFound, ErrDuplicateTag
	UpdateTag(ctx context.Context, t *Tag) (*Tag, error)

	// DeleteTag removes a tag. The service checks references first;
	// the FK constraint is the second line of defense.
	// Errors: ErrTagNotFound, ErrTagInUse
	DeleteTag(ctx context.Context, id uuid.UUID) error

	// UpdateTagPositions applies a batched tag position write in one transaction
	UpdateTagPositions(ctx context.Context, updates []PositionUpdate) error

	// CountTagReferences returns how many members carry the tag
	CountTagReferences(ctx context.Context, tagID uuid.UUID) (int, error)
}
