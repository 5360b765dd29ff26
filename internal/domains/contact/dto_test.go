package contact

import (
	"testing"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validSubmit() SubmitRequest {
	return SubmitRequest{
		Name:       "Sam Lee",
		Email:      "sam@example.com",
		Phone:      "555-0100",
		Location:   "Austin, TX",
		GradeLevel: "11th",
		Message:    "Looking for SAT prep.",
	}
}

func TestSubmitRequest_Valid(t *testing.T) {
	assert.NoError(t, validSubmit().Validate())
}

func TestSubmitRequest_OptionalFieldsMayBeEmpty(t *testing.T) {
	req := validSubmit()
	req.Phone = ""
	req.Message = ""
	assert.NoError(t, req.Validate())
}

func TestSubmitRequest_FieldErrors(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*SubmitRequest)
		field  string
	}{
		{"missing name", func(r *SubmitRequest) { r.Name = "" }, "name"},
		{"missing email", func(r *SubmitRequest) { r.Email = "" }, "email"},
		{"malformed email", func(r *SubmitRequest) { r.Email = "not-an-email" }, "email"},
		{"email without tld", func(r *SubmitRequest) { r.Email = "sam@host" }, "email"},
		{"missing location", func(r *SubmitRequest) { r.Location = "" }, "location"},
		{"missing grade level", func(r *SubmitRequest) { r.GradeLevel = "" }, "grade_level"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := validSubmit()
			tc.mutate(&req)

			err := req.Validate()
			require.Error(t, err)

			// the error names the offending field
			verrs, ok := err.(validation.Errors)
			require.True(t, ok)
			assert.Contains(t, verrs, tc.field)
		})
	}
}
