package team

import "errors"

var (
	// Validation errors
	ErrInvalidName     = errors.New("member name is required")
	ErrInvalidTitle    = errors.New("member title is required")
	ErrInvalidTagName  = errors.New("tag name is required")
	ErrInvalidTagColor = errors.New("tag color must be a hex value like #aabbcc")
	ErrInvalidMove     = errors.New("reorder indexes are out of range")

	// Business rule errors
	ErrMemberNotFound = errors.New("team member not found")
	ErrTagNotFound    = errors.New("team tag not found")
	ErrTagInUse       = errors.New("cannot delete a tag that is assigned to team members")
	ErrDuplicateTag   = errors.New("a tag with this name already exists")
)

// ToHTTPStatus converts error to HTTP status code
func ToHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrMemberNotFound), errors.Is(err, ErrTagNotFound):
		return 404
	case errors.Is(err, ErrTagInUse), errors.Is(err, ErrDuplicateTag):
		return 409
	case errors.Is(err, ErrInvalidName), errors.Is(err, ErrInvalidTitle),
		errors.Is(err, ErrInvalidTagName), errors.Is(err, ErrInvalidTagColor),
		errors.Is(err, ErrInvalidMove):
		return 400
	default:
		return 500
	}
}
