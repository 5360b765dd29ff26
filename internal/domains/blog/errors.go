package blog

import "errors"

var (
	// Validation errors
	ErrInvalidTitle   = errors.New("post title is required")
	ErrInvalidContent = errors.New("post content is required")
	ErrInvalidAuthor  = errors.New("post author is required")

	// Business rule errors
	ErrPostNotFound   = errors.New("blog post not found")
	ErrAuthorNotFound = errors.New("blog author not found")
	ErrTagNotFound    = errors.New("blog tag not found")
	ErrAuthorInUse    = errors.New("cannot delete an author with published posts")
	ErrTagInUse       = errors.New("cannot delete a tag that is assigned to posts")
	ErrDuplicateTag   = errors.New("a tag with this name already exists")
)

// ToHTTPStatus converts error to HTTP status code
func ToHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrPostNotFound), errors.Is(err, ErrAuthorNotFound),
		errors.Is(err, ErrTagNotFound):
		return 404
	case errors.Is(err, ErrAuthorInUse), errors.Is(err, ErrTagInUse),
		errors.Is(err, ErrDuplicateTag):
		return 409
	case errors.Is(err, ErrInvalidTitle), errors.Is(err, ErrInvalidContent),
		errors.Is(err, ErrInvalidAuthor):
		return 400
	default:
		return 500
	}
}
