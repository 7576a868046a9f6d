package usecase_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"portfolio-backend/config"
	"portfolio-backend/internal/domain"
	"portfolio-backend/internal/usecase"
	"portfolio-backend/pkg/apperror"
	"portfolio-backend/pkg/email"
	"portfolio-backend/pkg/validation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// Mock mailer
type MockContactMailer struct {
	mock.Mock
}

func (m *MockContactMailer) SendContactEmail(ctx context.Context, data email.ContactEmailData) error {
	return m.Called(ctx, data).Error(0)
}

// Mock transport, for driving the real EmailService
type MockSender struct {
	mock.Mock
}

func (m *MockSender) Send(ctx context.Context, msg *email.Message) error {
	return m.Called(ctx, msg).Error(0)
}

func assertBadRequest(t *testing.T, err error, message string) {
	t.Helper()
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusBadRequest, appErr.Code)
	assert.Equal(t, message, appErr.Message)
}

func TestContactPresenceCheck(t *testing.T) {
	cases := map[string]domain.ContactSubmission{
		"missing name":          {Email: "ann@example.com", Message: "Hello"},
		"missing email":         {Name: "Ann", Message: "Hello"},
		"missing message":       {Name: "Ann", Email: "ann@example.com"},
		"all missing":           {},
		"whitespace-only name":  {Name: "   ", Email: "ann@example.com", Message: "Hello"},
		"missing name bad mail": {Email: "foo", Message: "Hello"},
	}

	for name, req := range cases {
		t.Run(name, func(t *testing.T) {
			mailer := new(MockContactMailer)
			uc := usecase.NewContactUsecase(mailer, validation.New())

			err := uc.SendContactMessage(context.Background(), &req)
			assertBadRequest(t, err, domain.MsgAllFieldsRequired)
			mailer.AssertNotCalled(t, "SendContactEmail", mock.Anything, mock.Anything)
		})
	}
}

func TestContactEmailShapeCheck(t *testing.T) {
	for _, addr := range []string{"foo", "foo@bar", "@bar.com", "ann @example.com"} {
		t.Run(addr, func(t *testing.T) {
			mailer := new(MockContactMailer)
			uc := usecase.NewContactUsecase(mailer, validation.New())

			err := uc.SendContactMessage(context.Background(), &domain.ContactSubmission{
				Name: "Ann", Email: addr, Message: "Hello",
			})
			assertBadRequest(t, err, domain.MsgInvalidEmail)
			mailer.AssertNotCalled(t, "SendContactEmail", mock.Anything, mock.Anything)
		})
	}

	t.Run("a@b.co passes", func(t *testing.T) {
		mailer := new(MockContactMailer)
		mailer.On("SendContactEmail", mock.Anything, mock.Anything).Return(nil).Once()
		uc := usecase.NewContactUsecase(mailer, validation.New())

		err := uc.SendContactMessage(context.Background(), &domain.ContactSubmission{
			Name: "A", Email: "a@b.co", Message: "Hi",
		})
		assert.NoError(t, err)
		mailer.AssertExpectations(t)
	})
}

func TestContactEmailShapeUsesRawValue(t *testing.T) {
	for _, addr := range []string{" ann@example.com", "ann@example.com ", "ann@example.com\n"} {
		t.Run(addr, func(t *testing.T) {
			mailer := new(MockContactMailer)
			uc := usecase.NewContactUsecase(mailer, validation.New())

			err := uc.SendContactMessage(context.Background(), &domain.ContactSubmission{
				Name: "Ann", Email: addr, Message: "Hello",
			})
			assertBadRequest(t, err, domain.MsgInvalidEmail)
			mailer.AssertNotCalled(t, "SendContactEmail", mock.Anything, mock.Anything)
		})
	}
}

func TestContactRelaysFieldsVerbatim(t *testing.T) {
	mailer := new(MockContactMailer)
	mailer.On("SendContactEmail", mock.Anything, email.ContactEmailData{
		SenderName: "  Ann ", SenderEmail: "ann@example.com", Message: "  Hello\n",
	}).Return(nil).Once()
	uc := usecase.NewContactUsecase(mailer, validation.New())

	err := uc.SendContactMessage(context.Background(), &domain.ContactSubmission{
		Name: "  Ann ", Email: "ann@example.com", Message: "  Hello\n",
	})
	assert.NoError(t, err)
	mailer.AssertExpectations(t)
}

func TestContactSendsThroughTransport(t *testing.T) {
	sender := new(MockSender)
	sender.On("Send", mock.Anything, mock.AnythingOfType("*email.Message")).Return(nil).Once()
	emailService := email.NewEmailService(&config.Config{ContactEmail: "owner@example.com"}, sender)
	uc := usecase.NewContactUsecase(emailService, validation.New())

	err := uc.SendContactMessage(context.Background(), &domain.ContactSubmission{
		Name: "Ann", Email: "ann@example.com", Message: "Hello",
	})
	require.NoError(t, err)

	sender.AssertNumberOfCalls(t, "Send", 1)
	msg := sender.Calls[0].Arguments.Get(1).(*email.Message)
	assert.Equal(t, "owner@example.com", msg.To)
	assert.Equal(t, "ann@example.com", msg.From)
	assert.Equal(t, "ann@example.com", msg.ReplyTo)
	assert.Equal(t, "New message from Ann - Portfolio Contact Form", msg.Subject)
}

func TestContactTransportFailure(t *testing.T) {
	cause := &email.SendError{Kind: email.KindNetwork, Err: errors.New("dial tcp: connection refused")}
	sender := new(MockSender)
	sender.On("Send", mock.Anything, mock.Anything).Return(cause).Once()
	emailService := email.NewEmailService(&config.Config{ContactEmail: "owner@example.com"}, sender)
	uc := usecase.NewContactUsecase(emailService, validation.New())

	err := uc.SendContactMessage(context.Background(), &domain.ContactSubmission{
		Name: "Ann", Email: "ann@example.com", Message: "Hello",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, cause)

	var appErr *apperror.AppError
	assert.False(t, errors.As(err, &appErr), "transport failures are not validation errors")
	sender.AssertExpectations(t)
}
