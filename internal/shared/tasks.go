package shared

// Task type names shared between the API (enqueue side) and the
// worker binary (handler side).
const (
	TypeContactNotify            = "contact:notify"
	TypeRegistrationConfirmation = "registration:confirmation"
)

// ContactNotifyPayload carries a contact submission to the worker
type ContactNotifyPayload struct {
	SubmissionID string `json:"submissionId"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	Phone        string `json:"phone,omitempty"`
	Location     string `json:"location"`
	GradeLevel   string `json:"gradeLevel"`
	Message      string `json:"message,omitempty"`
}

// RegistrationConfirmationPayload carries a completed registration to the worker
type RegistrationConfirmationPayload struct {
	RegistrationID string `json:"registrationId"`
	Email          string `json:"email"`
	EventTitle     string `json:"eventTitle"`
	EventDate      string `json:"eventDate"`
	EventTime      string `json:"eventTime"`
	Location       string `json:"location"`
	Status         string `json:"status"`
}
