package email

import (
	"context"
	"fmt"
	"net/smtp"

	"edubright-backend/pkg/logger"
)

type ContactNotificationData struct {
	AdminEmail string
	Name       string
	Email      string
	Phone      string
	Location   string
	GradeLevel string
	Message    string
}

type RegistrationConfirmationData struct {
	Email      string
	EventTitle string
	EventDate  string
	EventTime  string
	Location   string
	Status     string
}

type EmailService interface {
	SendContactNotification(ctx context.Context, data ContactNotificationData) error
	SendRegistrationConfirmation(ctx context.Context, data RegistrationConfirmationData) error
}

type smtpEmailService struct {
	smtpAddr string
	smtpFrom string
}

func NewSMTPEmailService(smtpHost, smtpPort, from string) EmailService {
	return &smtpEmailService{
		smtpAddr: smtpHost + ":" + smtpPort,
		smtpFrom: from,
	}
}

func (s *smtpEmailService) SendContactNotification(ctx context.Context, data ContactNotificationData) error {
	subject := "New contact form submission"
	body := fmt.Sprintf(`A new contact form was submitted.

Name: %s
Email: %s
Phone: %s
Location: %s
Grade level: %s

Message:
%s`, data.Name, data.Email, data.Phone, data.Location, data.GradeLevel, data.Message)

	msg := []byte(fmt.Sprintf(
		"From: %s\r\nTo: %s\r\nSubject: %s\r\n\r\n%s",
		s.smtpFrom, data.AdminEmail, subject, body))

	if err := smtp.SendMail(s.smtpAddr, nil, s.smtpFrom, []string{data.AdminEmail}, msg); err != nil {
		logger.Info("Failed to send contact notification", map[string]interface{}{
			"error":     err.Error(),
			"to":        data.AdminEmail,
			"smtp_addr": s.smtpAddr,
		})
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}

func (s *smtpEmailService) SendRegistrationConfirmation(ctx context.Context, data RegistrationConfirmationData) error {
	subject := fmt.Sprintf("Registration received: %s", data.EventTitle)
	body := fmt.Sprintf(`Hi,

We received your registration for %s.

Date: %s
Time: %s
Location: %s
Status: %s

If you did not register for this event, please ignore this email.`,
		data.EventTitle, data.EventDate, data.EventTime, data.Location, data.Status)

	msg := []byte(fmt.Sprintf(
		"From: %s\r\nTo: %s\r\nSubject: %s\r\n\r\n%s",
		s.smtpFrom, data.Email, subject, body))

	if err := smtp.SendMail(s.smtpAddr, nil, s.smtpFrom, []string{data.Email}, msg); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}
