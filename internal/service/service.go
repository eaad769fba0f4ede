package service

import (
	"context"
	"encoding/json"

	"clubhub-backend/internal/domain"
)

// ApplicationSubmission is the boundary-validated input of the application
// intake pipeline. All fields arrive as strings; the handler has already
// rejected non-string JSON values.
type ApplicationSubmission struct {
	Name     string
	Email    string
	Branch   string
	Year     string
	College  string
	Domain   string
	Reason   string
	LinkedIn string
	GitHub   string

	// Spam traps: Honeypot must stay empty; FormStartedAt is the client's
	// form-open time in epoch milliseconds (0 when absent).
	Honeypot      string
	FormStartedAt int64
}

// RegistrationSubmission is the boundary-validated input of the event
// registration pipeline. Responses stays raw so the response-schema
// validator can report shape violations precisely.
type RegistrationSubmission struct {
	EventID      string
	Name         string
	Email        string
	Team         string
	Department   string
	EnrollmentNo string
	Responses    json.RawMessage

	Honeypot      string
	FormStartedAt int64
}

// SubmissionResult is returned on intake success.
type SubmissionResult struct {
	ID      string `json:"id,omitempty"`
	Message string `json:"message"`
}

// ApplicationUpdate carries the optional fields of an admin PATCH. Email is
// the natural key and cannot change.
type ApplicationUpdate struct {
	Name     *string
	Branch   *string
	Year     *string
	College  *string
	Domain   *string
	Reason   *string
	LinkedIn *string
	GitHub   *string
}

type ApplicationService interface {
	Submit(ctx context.Context, sub ApplicationSubmission) (*SubmissionResult, error)
}

type RegistrationService interface {
	Register(ctx context.Context, sub RegistrationSubmission) (*SubmissionResult, error)
}

type EventService interface {
	List(ctx context.Context) ([]domain.Event, error)
	Get(ctx context.Context, id string) (*domain.Event, error)
	Create(ctx context.Context, event *domain.Event) error
	Update(ctx context.Context, event *domain.Event) error
	Delete(ctx context.Context, id string) error
}

type AdminService interface {
	ListApplications(ctx context.Context) ([]domain.Application, error)
	UpdateApplication(ctx context.Context, id string, upd ApplicationUpdate) error
	UpdateApplicationStatus(ctx context.Context, id string, status domain.ApplicationStatus) (*domain.Application, error)
	DeleteApplication(ctx context.Context, id string) error
	ListRegistrations(ctx context.Context, eventID string) ([]domain.Registration, error)
	ListMembers(ctx context.Context) ([]domain.Member, error)
}

// EmailService sends transactional mail through the external email API.
type EmailService interface {
	SendApplicationAcknowledgment(ctx context.Context, email, name string) error
	SendRegistrationConfirmation(ctx context.Context, email, name, eventTitle string) error
	SendStatusUpdate(ctx context.Context, email, name string, status domain.ApplicationStatus) error
	SendAdminNotification(ctx context.Context, subject, message string) error
}

// SheetsMirror mirrors records to the spreadsheet-backed webhook. Rows are
// sanitized against formula injection at this boundary, nowhere else.
type SheetsMirror interface {
	AppendRow(ctx context.Context, fields map[string]string) error
	Delete(ctx context.Context, email string) error
	UpdateStatus(ctx context.Context, email, status string) error
}

// Notifier fans out best-effort side effects after the transactional core
// has succeeded. Failures are logged and dead-lettered, never returned.
type Notifier interface {
	ApplicationSubmitted(ctx context.Context, app *domain.Application)
	RegistrationSubmitted(ctx context.Context, reg *domain.Registration)
	ApplicationStatusChanged(ctx context.Context, app *domain.Application)
	ApplicationDeleted(ctx context.Context, email string)
}
