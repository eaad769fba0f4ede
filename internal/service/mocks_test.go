package service

import (
	"context"

	"github.com/stretchr/testify/mock"

	"clubhub-backend/internal/domain"
)

// MockApplicationRepo
type MockApplicationRepo struct {
	mock.Mock
}

func (m *MockApplicationRepo) Create(ctx context.Context, app *domain.Application) error {
	args := m.Called(ctx, app)
	return args.Error(0)
}
func (m *MockApplicationRepo) GetByID(ctx context.Context, id string) (*domain.Application, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Application), args.Error(1)
}
func (m *MockApplicationRepo) GetByEmail(ctx context.Context, email string) (*domain.Application, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Application), args.Error(1)
}
func (m *MockApplicationRepo) List(ctx context.Context) ([]domain.Application, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Application), args.Error(1)
}
func (m *MockApplicationRepo) Update(ctx context.Context, app *domain.Application) error {
	args := m.Called(ctx, app)
	return args.Error(0)
}
func (m *MockApplicationRepo) UpdateStatus(ctx context.Context, id string, status domain.ApplicationStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}
func (m *MockApplicationRepo) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockRegistrationRepo
type MockRegistrationRepo struct {
	mock.Mock
}

func (m *MockRegistrationRepo) Create(ctx context.Context, reg *domain.Registration) error {
	args := m.Called(ctx, reg)
	return args.Error(0)
}
func (m *MockRegistrationRepo) GetByEventAndEmail(ctx context.Context, eventID, email string) (*domain.Registration, error) {
	args := m.Called(ctx, eventID, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Registration), args.Error(1)
}
func (m *MockRegistrationRepo) ListByEvent(ctx context.Context, eventID string) ([]domain.Registration, error) {
	args := m.Called(ctx, eventID)
	return args.Get(0).([]domain.Registration), args.Error(1)
}
func (m *MockRegistrationRepo) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockEventRepo
type MockEventRepo struct {
	mock.Mock
}

func (m *MockEventRepo) Create(ctx context.Context, event *domain.Event) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}
func (m *MockEventRepo) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Event), args.Error(1)
}
func (m *MockEventRepo) List(ctx context.Context) ([]domain.Event, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Event), args.Error(1)
}
func (m *MockEventRepo) Update(ctx context.Context, event *domain.Event) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}
func (m *MockEventRepo) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockMemberRepo
type MockMemberRepo struct {
	mock.Mock
}

func (m *MockMemberRepo) Create(ctx context.Context, member *domain.Member) error {
	args := m.Called(ctx, member)
	return args.Error(0)
}
func (m *MockMemberRepo) List(ctx context.Context) ([]domain.Member, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Member), args.Error(1)
}

// MockDeadLetterRepo
type MockDeadLetterRepo struct {
	mock.Mock
}

func (m *MockDeadLetterRepo) Create(ctx context.Context, letter *domain.DeadLetter) error {
	args := m.Called(ctx, letter)
	return args.Error(0)
}
func (m *MockDeadLetterRepo) List(ctx context.Context, limit int) ([]domain.DeadLetter, error) {
	args := m.Called(ctx, limit)
	return args.Get(0).([]domain.DeadLetter), args.Error(1)
}
func (m *MockDeadLetterRepo) Update(ctx context.Context, letter *domain.DeadLetter) error {
	args := m.Called(ctx, letter)
	return args.Error(0)
}
func (m *MockDeadLetterRepo) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockEmailService
type MockEmailService struct {
	mock.Mock
}

func (m *MockEmailService) SendApplicationAcknowledgment(ctx context.Context, email, name string) error {
	args := m.Called(ctx, email, name)
	return args.Error(0)
}
func (m *MockEmailService) SendRegistrationConfirmation(ctx context.Context, email, name, eventTitle string) error {
	args := m.Called(ctx, email, name, eventTitle)
	return args.Error(0)
}
func (m *MockEmailService) SendStatusUpdate(ctx context.Context, email, name string, status domain.ApplicationStatus) error {
	args := m.Called(ctx, email, name, status)
	return args.Error(0)
}
func (m *MockEmailService) SendAdminNotification(ctx context.Context, subject, message string) error {
	args := m.Called(ctx, subject, message)
	return args.Error(0)
}

// MockSheetsMirror
type MockSheetsMirror struct {
	mock.Mock
}

func (m *MockSheetsMirror) AppendRow(ctx context.Context, fields map[string]string) error {
	args := m.Called(ctx, fields)
	return args.Error(0)
}
func (m *MockSheetsMirror) Delete(ctx context.Context, email string) error {
	args := m.Called(ctx, email)
	return args.Error(0)
}
func (m *MockSheetsMirror) UpdateStatus(ctx context.Context, email, status string) error {
	args := m.Called(ctx, email, status)
	return args.Error(0)
}

// MockNotifier
type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) ApplicationSubmitted(ctx context.Context, app *domain.Application) {
	m.Called(ctx, app)
}
func (m *MockNotifier) RegistrationSubmitted(ctx context.Context, reg *domain.Registration) {
	m.Called(ctx, reg)
}
func (m *MockNotifier) ApplicationStatusChanged(ctx context.Context, app *domain.Application) {
	m.Called(ctx, app)
}
func (m *MockNotifier) ApplicationDeleted(ctx context.Context, email string) {
	m.Called(ctx, email)
}
