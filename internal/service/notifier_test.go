package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"clubhub-backend/internal/domain"
)

func TestNotifier_ApplicationSubmitted(t *testing.T) {
	ctx := context.Background()
	app := &domain.Application{
		ID:        "app-1",
		Name:      "Asha Rao",
		Email:     "asha@iitb.ac.in",
		Status:    domain.ApplicationStatusPending,
		CreatedAt: time.Now().UTC(),
	}

	t.Run("BothChannelsSucceed", func(t *testing.T) {
		mockEmail := new(MockEmailService)
		mockSheets := new(MockSheetsMirror)
		mockLetters := new(MockDeadLetterRepo)
		n := NewNotifier(mockEmail, mockSheets, mockLetters, "admin@clubhub.org", false)

		mockEmail.On("SendApplicationAcknowledgment", ctx, "asha@iitb.ac.in", "Asha Rao").Return(nil).Once()
		mockEmail.On("SendAdminNotification", ctx, "New membership application", mock.Anything).Return(nil).Once()
		mockSheets.On("AppendRow", ctx, mock.MatchedBy(func(fields map[string]string) bool {
			return fields["Email"] == "asha@iitb.ac.in" && fields["Status"] == "Pending"
		})).Return(nil).Once()

		n.ApplicationSubmitted(ctx, app)

		mockEmail.AssertExpectations(t)
		mockSheets.AssertExpectations(t)
		mockLetters.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("EmailFailureIsDeadLettered", func(t *testing.T) {
		mockEmail := new(MockEmailService)
		mockSheets := new(MockSheetsMirror)
		mockLetters := new(MockDeadLetterRepo)
		n := NewNotifier(mockEmail, mockSheets, mockLetters, "", false)

		mockEmail.On("SendApplicationAcknowledgment", ctx, "asha@iitb.ac.in", "Asha Rao").
			Return(errors.New("sendgrid error: status 503")).Once()
		mockSheets.On("AppendRow", ctx, mock.Anything).Return(nil).Once()
		mockLetters.On("Create", ctx, mock.MatchedBy(func(letter *domain.DeadLetter) bool {
			return letter.Channel == domain.ChannelEmail &&
				letter.Operation == OpApplicationAck &&
				letter.Attempts == 1 &&
				letter.Payload["email"] == "asha@iitb.ac.in"
		})).Return(nil).Once()

		// The failure is swallowed; only the dead letter records it.
		n.ApplicationSubmitted(ctx, app)

		mockSheets.AssertExpectations(t)
		mockLetters.AssertExpectations(t)
	})

	t.Run("SheetsFailureKeepsRawPayload", func(t *testing.T) {
		mockEmail := new(MockEmailService)
		mockSheets := new(MockSheetsMirror)
		mockLetters := new(MockDeadLetterRepo)
		n := NewNotifier(mockEmail, mockSheets, mockLetters, "", false)

		hostile := &domain.Application{ID: "app-2", Name: "=HYPERLINK(\"http://x\",\"y\")", Email: "eve@iitb.ac.in"}
		mockEmail.On("SendApplicationAcknowledgment", ctx, "eve@iitb.ac.in", hostile.Name).Return(nil).Once()
		mockSheets.On("AppendRow", ctx, mock.Anything).Return(errors.New("sheets webhook error: status 500")).Once()
		mockLetters.On("Create", ctx, mock.MatchedBy(func(letter *domain.DeadLetter) bool {
			// Dead letters hold the unsanitized projection; escaping happens
			// inside the mirror client on every dispatch.
			return letter.Channel == domain.ChannelSheets &&
				letter.Operation == OpAppendRow &&
				letter.Payload["Name"] == "=HYPERLINK(\"http://x\",\"y\")"
		})).Return(nil).Once()

		n.ApplicationSubmitted(ctx, hostile)

		mockLetters.AssertExpectations(t)
	})

	t.Run("TestModeSkipsEmailNotSheets", func(t *testing.T) {
		mockEmail := new(MockEmailService)
		mockSheets := new(MockSheetsMirror)
		mockLetters := new(MockDeadLetterRepo)
		n := NewNotifier(mockEmail, mockSheets, mockLetters, "admin@clubhub.org", true)

		mockSheets.On("AppendRow", ctx, mock.Anything).Return(nil).Once()

		n.ApplicationSubmitted(ctx, app)

		mockEmail.AssertNotCalled(t, "SendApplicationAcknowledgment", mock.Anything, mock.Anything, mock.Anything)
		mockSheets.AssertExpectations(t)
	})
}

func TestNotifier_ApplicationDeleted(t *testing.T) {
	ctx := context.Background()
	mockSheets := new(MockSheetsMirror)
	n := NewNotifier(new(MockEmailService), mockSheets, new(MockDeadLetterRepo), "", false)

	mockSheets.On("Delete", ctx, "asha@iitb.ac.in").Return(nil).Once()

	n.ApplicationDeleted(ctx, "asha@iitb.ac.in")
	mockSheets.AssertExpectations(t)
}

func TestNotifier_Retry(t *testing.T) {
	ctx := context.Background()

	t.Run("EmailChannel", func(t *testing.T) {
		mockEmail := new(MockEmailService)
		n := NewNotifier(mockEmail, new(MockSheetsMirror), new(MockDeadLetterRepo), "", false)

		mockEmail.On("SendApplicationAcknowledgment", ctx, "asha@iitb.ac.in", "Asha Rao").Return(nil).Once()

		err := n.Retry(ctx, &domain.DeadLetter{
			Channel:   domain.ChannelEmail,
			Operation: OpApplicationAck,
			Payload:   map[string]string{"email": "asha@iitb.ac.in", "name": "Asha Rao"},
		})
		assert.NoError(t, err)
		mockEmail.AssertExpectations(t)
	})

	t.Run("SheetsChannel", func(t *testing.T) {
		mockSheets := new(MockSheetsMirror)
		n := NewNotifier(new(MockEmailService), mockSheets, new(MockDeadLetterRepo), "", false)

		mockSheets.On("UpdateStatus", ctx, "asha@iitb.ac.in", "Approved").Return(nil).Once()

		err := n.Retry(ctx, &domain.DeadLetter{
			Channel:   domain.ChannelSheets,
			Operation: OpUpdateStatusRow,
			Payload:   map[string]string{"email": "asha@iitb.ac.in", "status": "Approved"},
		})
		assert.NoError(t, err)
	})

	t.Run("UnknownChannel", func(t *testing.T) {
		n := NewNotifier(new(MockEmailService), new(MockSheetsMirror), new(MockDeadLetterRepo), "", false)

		err := n.Retry(ctx, &domain.DeadLetter{Channel: "pigeon"})
		assert.Error(t, err)
	})

	t.Run("RetryFailurePropagates", func(t *testing.T) {
		mockEmail := new(MockEmailService)
		n := NewNotifier(mockEmail, new(MockSheetsMirror), new(MockDeadLetterRepo), "", false)

		mockEmail.On("SendApplicationAcknowledgment", ctx, mock.Anything, mock.Anything).
			Return(errors.New("still down")).Once()

		err := n.Retry(ctx, &domain.DeadLetter{
			Channel:   domain.ChannelEmail,
			Operation: OpApplicationAck,
			Payload:   map[string]string{"email": "a@b.co", "name": "A"},
		})
		assert.Error(t, err)
	})
}
