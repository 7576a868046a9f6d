package usecase

import (
	"context"
	"strings"

	"portfolio-backend/internal/domain"
	"portfolio-backend/pkg/apperror"
	"portfolio-backend/pkg/email"
	"portfolio-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
)

// ContactMailer is the part of email.EmailService the contact flow needs
type ContactMailer interface {
	SendContactEmail(ctx context.Context, data email.ContactEmailData) error
}

type contactUsecase struct {
	mailer   ContactMailer
	validate *validator.Validate
}

// NewContactUsecase creates a new contact usecase. validate must have the
// custom tags from validation.RegisterValidators.
func NewContactUsecase(mailer ContactMailer, validate *validator.Validate) domain.ContactUsecase {
	return &contactUsecase{
		mailer:   mailer,
		validate: validate,
	}
}

// SendContactMessage validates the contact request and sends the email.
// Fields are relayed exactly as submitted; trimming only decides presence.
func (uc *contactUsecase) SendContactMessage(ctx context.Context, req *domain.ContactSubmission) error {
	trimmed := domain.ContactSubmission{
		Name:    strings.TrimSpace(req.Name),
		Email:   strings.TrimSpace(req.Email),
		Message: strings.TrimSpace(req.Message),
	}
	// Presence is reported before shape
	if err := uc.validate.Struct(&trimmed); validation.HasTag(err, "required") {
		return apperror.BadRequest(domain.MsgAllFieldsRequired)
	}

	if err := uc.validate.Struct(req); err != nil {
		if validation.HasTag(err, "email_shape") {
			return apperror.BadRequest(domain.MsgInvalidEmail)
		}
		return apperror.BadRequest(domain.MsgAllFieldsRequired)
	}

	return uc.mailer.SendContactEmail(ctx, email.ContactEmailData{
		SenderName:  req.Name,
		SenderEmail: req.Email,
		Message:     req.Message,
	})
}
