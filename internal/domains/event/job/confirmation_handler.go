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
// Registration Confirmation Handler
// ============================================

// RegistrationConfirmationHandler emails the attendee after a
// registration completes.
type RegistrationConfirmationHandler struct {
	emailService email.EmailService
}

func NewRegistrationConfirmationHandler(emailService email.EmailService) *RegistrationConfirmationHandler {
	return &RegistrationConfirmationHandler{
		emailService: emailService,
	}
}

func (h *RegistrationConfirmationHandler) ProcessTask(ctx context.Context, task *asynq.Task) error {
	var payload shared.RegistrationConfirmationPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		log.Error().Err(err).Msg("Failed to unmarshal RegistrationConfirmation payload")
		return fmt.Errorf("unmarshal payload: %w", err)
	}

	log.Info().
		Str("registration_id", payload.RegistrationID).
		Str("email", payload.Email).
		Msg("Processing registration confirmation")

	err := h.emailService.SendRegistrationConfirmation(ctx, email.RegistrationConfirmationData{
		Email:      payload.Email,
		EventTitle: payload.EventTitle,
		EventDate:  payload.EventDate,
		EventTime:  payload.EventTime,
		Location:   payload.Location,
		Status:     payload.Status,
	})
	if err != nil {
		log.Error().Err(err).Msg("Failed to send registration confirmation")
		return fmt.Errorf("send registration confirmation: %w", err)
	}

	return nil
}
