package service

import (
	"context"
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"clubhub-backend/internal/domain"
	"clubhub-backend/internal/logger"
)

type sendGridService struct {
	apiKey     string
	fromEmail  string
	fromName   string
	adminEmail string
}

func NewSendGridService(apiKey, fromEmail, fromName, adminEmail string) EmailService {
	return &sendGridService{
		apiKey:     apiKey,
		fromEmail:  fromEmail,
		fromName:   fromName,
		adminEmail: adminEmail,
	}
}

func (s *sendGridService) send(ctx context.Context, toEmail, toName, subject, plainText, htmlContent string) error {
	from := mail.NewEmail(s.fromName, s.fromEmail)
	recipient := mail.NewEmail(toName, toEmail)
	message := mail.NewSingleEmail(from, subject, recipient, plainText, htmlContent)

	client := sendgrid.NewSendClient(s.apiKey)

	logger.ExternalServiceCall("sendgrid", "send", "to", toEmail, "subject", subject)
	response, err := client.SendWithContext(ctx, message)
	logger.ExternalServiceResult("sendgrid", "send", err, "to", toEmail)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	if response.StatusCode >= 400 {
		return fmt.Errorf("sendgrid error: status %d", response.StatusCode)
	}
	return nil
}

func (s *sendGridService) SendApplicationAcknowledgment(ctx context.Context, email, name string) error {
	subject := "We received your application"
	plainText := fmt.Sprintf("Hello %s,\n\nThanks for applying to join the club! Your application is under review; we will get back to you soon.\n\nBest regards,\nThe Club Team", name)
	htmlContent := fmt.Sprintf(`<p>Hello %s,</p><p>Thanks for applying to join the club! Your application is under review; we will get back to you soon.</p><p>Best regards,<br>The Club Team</p>`, name)
	return s.send(ctx, email, name, subject, plainText, htmlContent)
}

func (s *sendGridService) SendRegistrationConfirmation(ctx context.Context, email, name, eventTitle string) error {
	subject := fmt.Sprintf("You're registered: %s", eventTitle)
	plainText := fmt.Sprintf("Hello %s,\n\nYour registration for %s is confirmed. See you there!\n\nBest regards,\nThe Club Team", name, eventTitle)
	htmlContent := fmt.Sprintf(`<p>Hello %s,</p><p>Your registration for <strong>%s</strong> is confirmed. See you there!</p><p>Best regards,<br>The Club Team</p>`, name, eventTitle)
	return s.send(ctx, email, name, subject, plainText, htmlContent)
}

func (s *sendGridService) SendStatusUpdate(ctx context.Context, email, name string, status domain.ApplicationStatus) error {
	subject := "Your application status has changed"
	plainText := fmt.Sprintf("Hello %s,\n\nYour club application status is now: %s.\n\nBest regards,\nThe Club Team", name, status)
	htmlContent := fmt.Sprintf(`<p>Hello %s,</p><p>Your club application status is now: <strong>%s</strong>.</p><p>Best regards,<br>The Club Team</p>`, name, status)
	return s.send(ctx, email, name, subject, plainText, htmlContent)
}

func (s *sendGridService) SendAdminNotification(ctx context.Context, subject, message string) error {
	if s.adminEmail == "" {
		return fmt.Errorf("admin recipient not configured")
	}
	plainText := message
	htmlContent := fmt.Sprintf("<p>%s</p>", message)
	return s.send(ctx, s.adminEmail, "", subject, plainText, htmlContent)
}
