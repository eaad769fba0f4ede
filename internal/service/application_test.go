package service

import (
	"context"
	"net"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"clubhub-backend/internal/domain"
	"clubhub-backend/internal/validation"
)

func stubEmailValidator() *validation.EmailValidator {
	return validation.NewEmailValidator("club@clubhub.org", func(ctx context.Context, domain string) ([]*net.MX, error) {
		return []*net.MX{{Host: "mx." + domain}}, nil
	})
}

func validSubmission() ApplicationSubmission {
	return ApplicationSubmission{
		Name:   "Asha Rao",
		Email:  "asha@iitb.ac.in",
		Branch: "CSE",
		Year:   "2",
		Reason: "I want to build things with people who ship.",
	}
}

func TestApplicationService_Submit(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mockRepo := new(MockApplicationRepo)
		mockNotifier := new(MockNotifier)
		svc := NewApplicationService(mockRepo, stubEmailValidator(), mockNotifier, false, 0)

		mockRepo.On("GetByEmail", ctx, "asha@iitb.ac.in").Return(nil, domain.ErrNotFound).Once()
		mockRepo.On("Create", ctx, mock.MatchedBy(func(app *domain.Application) bool {
			return app.Email == "asha@iitb.ac.in" && app.Status == domain.ApplicationStatusPending
		})).Run(func(args mock.Arguments) {
			args.Get(1).(*domain.Application).ID = "app-1"
		}).Return(nil).Once()
		mockNotifier.On("ApplicationSubmitted", ctx, mock.Anything).Once()

		result, err := svc.Submit(ctx, validSubmission())
		assert.NoError(t, err)
		assert.Equal(t, "app-1", result.ID)
		assert.Equal(t, "Application submitted successfully", result.Message)
		mockRepo.AssertExpectations(t)
		mockNotifier.AssertExpectations(t)
	})

	t.Run("MissingName", func(t *testing.T) {
		mockRepo := new(MockApplicationRepo)
		svc := NewApplicationService(mockRepo, stubEmailValidator(), new(MockNotifier), false, 0)

		sub := validSubmission()
		sub.Name = "   "
		_, err := svc.Submit(ctx, sub)

		apiErr := domain.AsError(err)
		assert.Equal(t, domain.CodeValidation, apiErr.Code)
		assert.Equal(t, "Name is required", apiErr.Message)
		mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("NameTooLong", func(t *testing.T) {
		svc := NewApplicationService(new(MockApplicationRepo), stubEmailValidator(), new(MockNotifier), false, 0)

		sub := validSubmission()
		sub.Name = strings.Repeat("a", 101)
		_, err := svc.Submit(ctx, sub)

		apiErr := domain.AsError(err)
		assert.Equal(t, domain.CodeValidation, apiErr.Code)
		assert.Contains(t, apiErr.Message, "Name too long")
	})

	t.Run("BlockedEmailDomain", func(t *testing.T) {
		mockRepo := new(MockApplicationRepo)
		svc := NewApplicationService(mockRepo, stubEmailValidator(), new(MockNotifier), false, 0)

		sub := validSubmission()
		sub.Email = "someone@mailinator.com"
		_, err := svc.Submit(ctx, sub)

		apiErr := domain.AsError(err)
		assert.Equal(t, domain.CodeValidation, apiErr.Code)
		mockRepo.AssertNotCalled(t, "GetByEmail", mock.Anything, mock.Anything)
	})

	t.Run("DuplicateEmail", func(t *testing.T) {
		mockRepo := new(MockApplicationRepo)
		svc := NewApplicationService(mockRepo, stubEmailValidator(), new(MockNotifier), false, 0)

		existing := &domain.Application{ID: "app-1", Email: "asha@iitb.ac.in"}
		mockRepo.On("GetByEmail", ctx, "asha@iitb.ac.in").Return(existing, nil).Once()

		_, err := svc.Submit(ctx, validSubmission())

		apiErr := domain.AsError(err)
		assert.Equal(t, domain.CodeConflict, apiErr.Code)
		assert.Equal(t, 409, apiErr.Status)
		mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("DuplicateLostRace", func(t *testing.T) {
		mockRepo := new(MockApplicationRepo)
		svc := NewApplicationService(mockRepo, stubEmailValidator(), new(MockNotifier), false, 0)

		mockRepo.On("GetByEmail", ctx, "asha@iitb.ac.in").Return(nil, domain.ErrNotFound).Once()
		mockRepo.On("Create", ctx, mock.Anything).Return(domain.ErrAlreadyExists).Once()

		_, err := svc.Submit(ctx, validSubmission())

		apiErr := domain.AsError(err)
		assert.Equal(t, domain.CodeConflict, apiErr.Code)
	})

	t.Run("PersistenceFailure", func(t *testing.T) {
		mockRepo := new(MockApplicationRepo)
		mockNotifier := new(MockNotifier)
		svc := NewApplicationService(mockRepo, stubEmailValidator(), mockNotifier, false, 0)

		mockRepo.On("GetByEmail", ctx, "asha@iitb.ac.in").Return(nil, domain.ErrNotFound).Once()
		mockRepo.On("Create", ctx, mock.Anything).Return(assert.AnError).Once()

		_, err := svc.Submit(ctx, validSubmission())

		apiErr := domain.AsError(err)
		assert.Equal(t, domain.CodeInternal, apiErr.Code)
		mockNotifier.AssertNotCalled(t, "ApplicationSubmitted", mock.Anything, mock.Anything)
	})

	t.Run("TestModeMessage", func(t *testing.T) {
		mockRepo := new(MockApplicationRepo)
		mockNotifier := new(MockNotifier)
		svc := NewApplicationService(mockRepo, stubEmailValidator(), mockNotifier, true, 0)

		mockRepo.On("GetByEmail", ctx, "asha@iitb.ac.in").Return(nil, domain.ErrNotFound).Once()
		mockRepo.On("Create", ctx, mock.Anything).Return(nil).Once()
		mockNotifier.On("ApplicationSubmitted", ctx, mock.Anything).Once()

		result, err := svc.Submit(ctx, validSubmission())
		assert.NoError(t, err)
		assert.Equal(t, "Application received in test mode", result.Message)
	})
}

func TestApplicationService_SpamTraps(t *testing.T) {
	ctx := context.Background()

	t.Run("HoneypotFilled", func(t *testing.T) {
		mockRepo := new(MockApplicationRepo)
		mockNotifier := new(MockNotifier)
		svc := NewApplicationService(mockRepo, stubEmailValidator(), mockNotifier, false, 3*time.Second)

		sub := validSubmission()
		sub.Honeypot = "https://spam.example"
		result, err := svc.Submit(ctx, sub)

		// Looks exactly like success, but nothing was written or sent.
		assert.NoError(t, err)
		assert.Equal(t, "Application submitted successfully", result.Message)
		assert.Empty(t, result.ID)
		mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		mockNotifier.AssertNotCalled(t, "ApplicationSubmitted", mock.Anything, mock.Anything)
	})

	t.Run("FilledTooFast", func(t *testing.T) {
		mockRepo := new(MockApplicationRepo)
		svc := NewApplicationService(mockRepo, stubEmailValidator(), new(MockNotifier), false, 3*time.Second)

		sub := validSubmission()
		sub.FormStartedAt = time.Now().UnixMilli()
		result, err := svc.Submit(ctx, sub)

		assert.NoError(t, err)
		assert.Empty(t, result.ID)
		mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("NormalFillTimePasses", func(t *testing.T) {
		mockRepo := new(MockApplicationRepo)
		mockNotifier := new(MockNotifier)
		svc := NewApplicationService(mockRepo, stubEmailValidator(), mockNotifier, false, 3*time.Second)

		mockRepo.On("GetByEmail", ctx, "asha@iitb.ac.in").Return(nil, domain.ErrNotFound).Once()
		mockRepo.On("Create", ctx, mock.Anything).Return(nil).Once()
		mockNotifier.On("ApplicationSubmitted", ctx, mock.Anything).Once()

		sub := validSubmission()
		sub.FormStartedAt = time.Now().Add(-time.Minute).UnixMilli()
		_, err := svc.Submit(ctx, sub)

		assert.NoError(t, err)
		mockRepo.AssertExpectations(t)
	})
}
