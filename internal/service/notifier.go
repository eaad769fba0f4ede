package service

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"clubhub-backend/internal/domain"
	"clubhub-backend/internal/logger"
	"clubhub-backend/internal/repository"
)

// Notification operations, recorded on dead letters so retries can be
// dispatched without re-deriving context.
const (
	OpApplicationAck           = "application_ack"
	OpRegistrationConfirmation = "registration_confirmation"
	OpStatusUpdate             = "status_update"
	OpAdminNotice              = "admin_notice"
	OpAppendRow                = "append_row"
	OpDeleteRow                = "delete_row"
	OpUpdateStatusRow          = "update_status_row"
)

// DeadLetterRetrier re-dispatches a previously failed notification. The
// cron sweep uses it; see internal/jobs.
type DeadLetterRetrier interface {
	Retry(ctx context.Context, letter *domain.DeadLetter) error
}

type FanoutNotifier struct {
	email       EmailService
	sheets      SheetsMirror
	deadLetters repository.DeadLetterRepository
	adminEmail  string
	testMode    bool
}

func NewNotifier(
	email EmailService,
	sheets SheetsMirror,
	deadLetters repository.DeadLetterRepository,
	adminEmail string,
	testMode bool,
) *FanoutNotifier {
	return &FanoutNotifier{
		email:       email,
		sheets:      sheets,
		deadLetters: deadLetters,
		adminEmail:  adminEmail,
		testMode:    testMode,
	}
}

// ApplicationSubmitted fans out the acknowledgment email and the sheet
// mirror concurrently; neither outcome affects the other or the caller.
func (n *FanoutNotifier) ApplicationSubmitted(ctx context.Context, app *domain.Application) {
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		if n.testMode {
			logger.Info("Test mode: skipping acknowledgment email", "email", app.Email)
			return
		}
		n.tryEmail(ctx, OpApplicationAck, map[string]string{
			"email": app.Email,
			"name":  app.Name,
		})
		if n.adminEmail != "" {
			n.tryEmail(ctx, OpAdminNotice, map[string]string{
				"subject": "New membership application",
				"message": fmt.Sprintf("%s <%s> applied to join the club.", app.Name, app.Email),
			})
		}
	}()
	go func() {
		defer wg.Done()
		n.trySheets(ctx, OpAppendRow, applicationRow(app))
	}()
	wg.Wait()
}

func (n *FanoutNotifier) RegistrationSubmitted(ctx context.Context, reg *domain.Registration) {
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		if n.testMode {
			logger.Info("Test mode: skipping confirmation email", "email", reg.Email)
			return
		}
		n.tryEmail(ctx, OpRegistrationConfirmation, map[string]string{
			"email":       reg.Email,
			"name":        reg.Name,
			"event_title": reg.EventTitle,
		})
	}()
	go func() {
		defer wg.Done()
		n.trySheets(ctx, OpAppendRow, registrationRow(reg))
	}()
	wg.Wait()
}

func (n *FanoutNotifier) ApplicationStatusChanged(ctx context.Context, app *domain.Application) {
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		if n.testMode {
			return
		}
		n.tryEmail(ctx, OpStatusUpdate, map[string]string{
			"email":  app.Email,
			"name":   app.Name,
			"status": string(app.Status),
		})
	}()
	go func() {
		defer wg.Done()
		n.trySheets(ctx, OpUpdateStatusRow, map[string]string{
			"email":  app.Email,
			"status": string(app.Status),
		})
	}()
	wg.Wait()
}

func (n *FanoutNotifier) ApplicationDeleted(ctx context.Context, email string) {
	n.trySheets(ctx, OpDeleteRow, map[string]string{"email": email})
}

// Retry re-dispatches a dead letter through its original channel.
func (n *FanoutNotifier) Retry(ctx context.Context, letter *domain.DeadLetter) error {
	switch letter.Channel {
	case domain.ChannelEmail:
		return n.dispatchEmail(ctx, letter.Operation, letter.Payload)
	case domain.ChannelSheets:
		return n.dispatchSheets(ctx, letter.Operation, letter.Payload)
	default:
		return fmt.Errorf("unknown notification channel %q", letter.Channel)
	}
}

func (n *FanoutNotifier) tryEmail(ctx context.Context, op string, payload map[string]string) {
	if err := n.dispatchEmail(ctx, op, payload); err != nil {
		logger.Error("Notification failed", "channel", "email", "operation", op, "error", err)
		n.deadLetter(ctx, domain.ChannelEmail, op, payload, err)
	}
}

func (n *FanoutNotifier) trySheets(ctx context.Context, op string, payload map[string]string) {
	if err := n.dispatchSheets(ctx, op, payload); err != nil {
		logger.Error("Notification failed", "channel", "sheets", "operation", op, "error", err)
		n.deadLetter(ctx, domain.ChannelSheets, op, payload, err)
	}
}

func (n *FanoutNotifier) dispatchEmail(ctx context.Context, op string, payload map[string]string) error {
	switch op {
	case OpApplicationAck:
		return n.email.SendApplicationAcknowledgment(ctx, payload["email"], payload["name"])
	case OpRegistrationConfirmation:
		return n.email.SendRegistrationConfirmation(ctx, payload["email"], payload["name"], payload["event_title"])
	case OpStatusUpdate:
		return n.email.SendStatusUpdate(ctx, payload["email"], payload["name"], domain.ApplicationStatus(payload["status"]))
	case OpAdminNotice:
		return n.email.SendAdminNotification(ctx, payload["subject"], payload["message"])
	default:
		return fmt.Errorf("unknown email operation %q", op)
	}
}

func (n *FanoutNotifier) dispatchSheets(ctx context.Context, op string, payload map[string]string) error {
	switch op {
	case OpAppendRow:
		return n.sheets.AppendRow(ctx, payload)
	case OpDeleteRow:
		return n.sheets.Delete(ctx, payload["email"])
	case OpUpdateStatusRow:
		return n.sheets.UpdateStatus(ctx, payload["email"], payload["status"])
	default:
		return fmt.Errorf("unknown sheets operation %q", op)
	}
}

func (n *FanoutNotifier) deadLetter(ctx context.Context, channel domain.NotificationChannel, op string, payload map[string]string, cause error) {
	letter := &domain.DeadLetter{
		Channel:   channel,
		Operation: op,
		Payload:   payload,
		Reason:    cause.Error(),
		Attempts:  1,
	}
	if err := n.deadLetters.Create(ctx, letter); err != nil {
		logger.Error("Failed to record dead letter", "channel", channel, "operation", op, "error", err)
	}
}

// applicationRow is the flat projection mirrored to the spreadsheet.
// Values stay raw here; sanitization happens inside the mirror client.
func applicationRow(app *domain.Application) map[string]string {
	return map[string]string{
		"Name":      app.Name,
		"Email":     app.Email,
		"Branch":    app.Branch,
		"Year":      app.Year,
		"College":   app.College,
		"Domain":    app.Domain,
		"Reason":    app.Reason,
		"LinkedIn":  app.LinkedIn,
		"GitHub":    app.GitHub,
		"Status":    string(app.Status),
		"Timestamp": app.CreatedAt.Format(time.RFC3339),
	}
}

func registrationRow(reg *domain.Registration) map[string]string {
	row := map[string]string{
		"Event":        reg.EventTitle,
		"EventID":      reg.EventID,
		"Name":         reg.Name,
		"Email":        reg.Email,
		"Team":         reg.Team,
		"Department":   reg.Department,
		"EnrollmentNo": reg.EnrollmentNo,
		"Status":       string(reg.Status),
		"Timestamp":    reg.CreatedAt.Format(time.RFC3339),
	}
	if len(reg.Responses) > 0 {
		parts := make([]string, 0, len(reg.Responses))
		for _, r := range reg.Responses {
			parts = append(parts, fmt.Sprintf("%s: %s", r.Question, r.Answer))
		}
		row["Responses"] = strings.Join(parts, " | ")
	}
	return row
}
