package domain

import "context"

// User-facing outcomes of a contact form submission
const (
	MsgAllFieldsRequired = "All fields are required"
	MsgInvalidEmail      = "Please provide a valid email address"
	MsgInvalidBody       = "Invalid request body"
	MsgSendSucceeded     = "Message sent successfully!"
	MsgSendFailed        = "Failed to send message. Please try again later."
)

// ContactSubmission represents a contact form submission. It lives for one request only.
type ContactSubmission struct {
	Name    string `json:"name" form:"name" validate:"required"`
	Email   string `json:"email" form:"email" validate:"required,email_shape"`
	Message string `json:"message" form:"message" validate:"required"`
}

// ContactUsecase defines the interface for contact form operations
type ContactUsecase interface {
	// SendContactMessage validates the submission and relays it as an email.
	// Validation failures are *apperror.AppError with a 400 code; anything else is a transport failure.
	SendContactMessage(ctx context.Context, req *ContactSubmission) error
}
