package contact

import (
	"regexp"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Loose shape check only: something@something.tld
var emailPattern = regexp.MustCompile(`^\S+@\S+\.\S+$`)

// SubmitRequest - POST /api/v1/contact
// Phone and message are optional; everything else is required and
// reported per field.
type SubmitRequest struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Location   string `json:"location"`
	GradeLevel string `json:"grade_level"`
	Message    string `json:"message"`
}

func (r SubmitRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name,
			validation.Required.Error("name is required"),
			validation.Length(1, 255),
		),
		validation.Field(&r.Email,
			validation.Required.Error("email is required"),
			validation.Match(emailPattern).Error("email is invalid"),
		),
		validation.Field(&r.Location,
			validation.Required.Error("location is required"),
		),
		validation.Field(&r.GradeLevel,
			validation.Required.Error("grade level is required"),
		),
		validation.Field(&r.Message, validation.Length(0, 10000)),
	)
}

// ToEntity converts SubmitRequest to a Submission entity
func (r *SubmitRequest) ToEntity() *Submission {
	return &Submission{
		Name:       r.Name,
		Email:      r.Email,
		Phone:      r.Phone,
		Location:   r.Location,
		GradeLevel: r.GradeLevel,
		Message:    r.Message,
	}
}
