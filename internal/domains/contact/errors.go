package contact

import "errors"

var (
	ErrMissingName       = errors.New("name is required")
	ErrInvalidEmail      = errors.New("a valid email is required")
	ErrMissingLocation   = errors.New("location is required")
	ErrMissingGradeLevel = errors.New("grade level is required")
)

// ToHTTPStatus converts error to HTTP status code
func ToHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrMissingName), errors.Is(err, ErrInvalidEmail),
		errors.Is(err, ErrMissingLocation), errors.Is(err, ErrMissingGradeLevel):
		return 400
	default:
		return 500
	}
}
