package main

import (
	"github.com/hibiken/asynq"

	contactJob "edubright-backend/internal/domains/contact/job"
	eventJob "edubright-backend/internal/domains/event/job"
	"edubright-backend/internal/infrastructure/email"
	"edubright-backend/internal/shared"
	"edubright-backend/pkg/container"
)

// HandlerRegistry holds all job handlers
type HandlerRegistry struct {
	// Email handlers
	contactNotify            *contactJob.ContactNotifyHandler
	registrationConfirmation *eventJob.RegistrationConfirmationHandler
}

// initializeHandlers creates all job handlers with their dependencies
func initializeHandlers(c *container.Container, cfg *Config) *HandlerRegistry {
	// Initialize services
	emailSvc := email.NewSMTPEmailService(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPFrom)

	// Create handlers
	return &HandlerRegistry{
		contactNotify:            contactJob.NewContactNotifyHandler(emailSvc, c.Config.App.AdminEmail),
		registrationConfirmation: eventJob.NewRegistrationConfirmationHandler(emailSvc),
	}
}

// RegisterHandlers registers all handlers with the mux
func (h *HandlerRegistry) RegisterHandlers(mux *asynq.ServeMux) {
	// Email tasks
	mux.HandleFunc(shared.TypeContactNotify, h.contactNotify.ProcessTask)
	mux.HandleFunc(shared.TypeRegistrationConfirmation, h.registrationConfirmation.ProcessTask)
}
