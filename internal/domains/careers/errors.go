package careers

import "errors"

var (
	ErrInvalidTitle  = errors.New("job title is required")
	ErrInvalidType   = errors.New("job type must be Full-time, Part-time or Contract")
	ErrInvalidStatus = errors.New("job status must be active, filled or draft")

	ErrJobNotFound = errors.New("job posting not found")
)

// ToHTTPStatus converts error to HTTP status code
func ToHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrJobNotFound):
		return 404
	case errors.Is(err, ErrInvalidTitle), errors.Is(err, ErrInvalidType),
		errors.Is(err, ErrInvalidStatus):
		return 400
	default:
		return 500
	}
}
