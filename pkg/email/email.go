package email

import (
	"context"
	"errors"
	"fmt"

	"portfolio-backend/config"
)

// ErrNoRecipient is returned when no contact recipient is configured.
var ErrNoRecipient = errors.New("contact recipient is not configured")

// Message is a provider-agnostic outbound email.
type Message struct {
	From    string
	To      string
	ReplyTo string
	Subject string
	HTML    string
	Text    string // Optional plain-text alternative
}

// Sender delivers a fully prepared Message.
type Sender interface {
	Send(ctx context.Context, msg *Message) error
}

// EmailService renders contact form emails and hands them to a Sender
type EmailService struct {
	sender  Sender
	toEmail string
}

// ContactEmailData holds the data for contact form emails
type ContactEmailData struct {
	SenderName  string
	SenderEmail string
	Message     string
}

// NewEmailService creates an email service delivering to cfg.ContactEmail
func NewEmailService(cfg *config.Config, sender Sender) *EmailService {
	return &EmailService{
		sender:  sender,
		toEmail: cfg.ContactEmail,
	}
}

// ContactSubject returns the subject line for a submission from name.
func ContactSubject(name string) string {
	return fmt.Sprintf("New message from %s - Portfolio Contact Form", name)
}

// BuildContactMessage renders the contact email. The submitter is both sender and reply-to.
func (s *EmailService) BuildContactMessage(data ContactEmailData) (*Message, error) {
	html, text, err := renderContactEmail(data)
	if err != nil {
		return nil, err
	}

	return &Message{
		From:    data.SenderEmail,
		To:      s.toEmail,
		ReplyTo: data.SenderEmail,
		Subject: ContactSubject(data.SenderName),
		HTML:    html,
		Text:    text,
	}, nil
}

// SendContactEmail sends a contact form email to the configured recipient
func (s *EmailService) SendContactEmail(ctx context.Context, data ContactEmailData) error {
	if s.toEmail == "" {
		return &SendError{Kind: KindConfig, Err: ErrNoRecipient}
	}

	msg, err := s.BuildContactMessage(data)
	if err != nil {
		return fmt.Errorf("failed to build contact email: %w", err)
	}

	if err := s.sender.Send(ctx, msg); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}

// IsConfigured checks if there is a recipient and, when the sender can tell, valid credentials
func (s *EmailService) IsConfigured() bool {
	if s.toEmail == "" || s.sender == nil {
		return false
	}
	if c, ok := s.sender.(interface{ IsConfigured() bool }); ok {
		return c.IsConfigured()
	}
	return true
}
