package job

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog/log"

	"edubright-backend/internal/infrastructure/email"
	"edubright-backend/internal/shared"
)

// ============================================
// Contact Notification Handler
// ============================================

// ContactNotifyHandler emails the admin inbox about a new contact
// submission.
type ContactNotifyHandler struct {
	emailService email.EmailService
	adminEmail   string
}

func NewContactNotifyHandler(emailService email.EmailService, adminEmail string) *ContactNotifyHandler {
	return &ContactNotifyHandler{
		emailService: emailService,
		adminEmail:   adminEmail,
	}
}

func (h *ContactNotifyHandler) ProcessTask(ctx context.Context, task *asynq.Task) error {
	var payload shared.ContactNotifyPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		log.Error().Err(err).Msg("Failed to unmarshal ContactNotify payload")
		return fmt.Errorf("unmarshal payload: %w", err)
	}

	log.Info().
		Str("submission_id", payload.SubmissionID).
		Msg("Processing contact notification")

	err := h.emailService.SendContactNotification(ctx, email.ContactNotificationData{
		AdminEmail: h.adminEmail,
		Name:       payload.Name,
		Email:      payload.Email,
		Phone:      payload.Phone,
		Location:   payload.Location,
		GradeLevel: payload.GradeLevel,
		Message:    payload.Message,
	})
	if err != nil {
		log.Error().Err(err).Msg("Failed to send contact notification")
		return fmt.Errorf("send contact notification: %w", err)
	}

	return nil
}
