package careers

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// CreateJobRequest - POST /admin/careers
type CreateJobRequest struct {
	Title        string   `json:"title" binding:"required"`
	Type         string   `json:"type" binding:"required"`
	Location     string   `json:"location"`
	Description  string   `json:"description"`
	Requirements []string `json:"requirements"`
	SalaryRange  *string  `json:"salary_range"`
	Status       string   `json:"status"`
}

func (r CreateJobRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title,
			validation.Required.Error("title is required"),
			validation.Length(1, 255),
		),
		validation.Field(&r.Type,
			validation.Required.Error("type is required"),
			validation.In(TypeFullTime, TypePartTime, TypeContract).
				Error("type must be Full-time, Part-time or Contract"),
		),
		validation.Field(&r.Status,
			validation.In(StatusActive, StatusFilled, StatusDraft).
				Error("status must be active, filled or draft"),
		),
	)
}

// UpdateJobRequest - PUT /admin/careers/:id
type UpdateJobRequest struct {
	Title        string   `json:"title" binding:"required"`
	Type         string   `json:"type" binding:"required"`
	Location     string   `json:"location"`
	Description  string   `json:"description"`
	Requirements []string `json:"requirements"`
	SalaryRange  *string  `json:"salary_range"`
	Status       string   `json:"status"`
}

func (r UpdateJobRequest) Validate() error {
	return CreateJobRequest(r).Validate()
}

// ToEntity converts CreateJobRequest to a JobPosting entity.
// New postings default to draft until an admin publishes them.
func (r *CreateJobRequest) ToEntity() *JobPosting {
	status := r.Status
	if status == "" {
		status = StatusDraft
	}
	return &JobPosting{
		Title:        r.Title,
		Type:         r.Type,
		Location:     r.Location,
		Description:  r.Description,
		Requirements: r.Requirements,
		SalaryRange:  r.SalaryRange,
		Status:       status,
	}
}

// ApplyToEntity applies UpdateJobRequest onto an existing posting
func (r *UpdateJobRequest) ApplyToEntity(j *JobPosting) {
	j.Title = r.Title
	j.Type = r.Type
	j.Location = r.Location
	j.Description = r.Description
	j.Requirements = r.Requirements
	j.SalaryRange = r.SalaryRange
	if r.Status != "" {
		j.Status = r.Status
	}
}
