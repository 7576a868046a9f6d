package email

import (
	"context"
	"errors"
	"fmt"

	"portfolio-backend/config"

	"github.com/wneessen/go-mail"
)

var (
	// ErrUnknownService is returned when neither a known service nor an explicit host is given.
	ErrUnknownService = errors.New("unknown email service and no SMTP host configured")
	// ErrNotConfigured is returned on send when credentials are missing.
	ErrNotConfigured = errors.New("smtp credentials are not configured")
)

// SMTPConfig configures the SMTP sender.
type SMTPConfig struct {
	Service  string // Well-known provider identifier, e.g. "gmail"
	Host     string // Overrides the service host
	Port     int    // Overrides the service port
	Secure   bool   // Implicit TLS; only used together with Host
	Username string
	Password string
}

// SMTPConfigFromConfig extracts the transport settings from the process config.
func SMTPConfigFromConfig(cfg *config.Config) SMTPConfig {
	return SMTPConfig{
		Service:  cfg.MailService,
		Host:     cfg.SMTPHost,
		Port:     cfg.SMTPPort,
		Secure:   cfg.SMTPSecure,
		Username: cfg.EmailUser,
		Password: cfg.EmailPass,
	}
}

// SMTPSender is a Sender that dials a fresh SMTP connection for every message.
type SMTPSender struct {
	host      string
	port      int
	secure    bool
	tlsPolicy mail.TLSPolicy
	username  string
	password  string
}

// NewSMTPSender resolves the provider endpoint. Missing credentials are not an
// error here so the server can boot; Send reports them instead.
//
// Well-known providers require STARTTLS. An explicit host upgrades only when
// the server offers STARTTLS, so plaintext local relays work.
func NewSMTPSender(cfg SMTPConfig) (*SMTPSender, error) {
	s := &SMTPSender{
		username: cfg.Username,
		password: cfg.Password,
	}

	if cfg.Host != "" {
		s.host = cfg.Host
		s.port = cfg.Port
		s.secure = cfg.Secure
		s.tlsPolicy = mail.TLSOpportunistic
		if s.port == 0 {
			s.port = 587
			if s.secure {
				s.port = 465
			}
		}
		return s, nil
	}

	svc, ok := LookupService(cfg.Service)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownService, cfg.Service)
	}
	s.host = svc.Host
	s.port = svc.Port
	s.secure = svc.Secure
	s.tlsPolicy = mail.TLSMandatory
	if cfg.Port != 0 {
		s.port = cfg.Port
	}
	return s, nil
}

// Addr returns host:port of the resolved endpoint
func (s *SMTPSender) Addr() string {
	return fmt.Sprintf("%s:%d", s.host, s.port)
}

// IsConfigured checks if credentials are present
func (s *SMTPSender) IsConfigured() bool {
	return s.username != "" && s.password != ""
}

// Send delivers msg. Every returned error is a *SendError.
func (s *SMTPSender) Send(ctx context.Context, msg *Message) error {
	if !s.IsConfigured() {
		return &SendError{Kind: KindConfig, Err: ErrNotConfigured}
	}

	m, err := s.buildMsg(msg)
	if err != nil {
		return err
	}

	client, err := mail.NewClient(s.host, s.options()...)
	if err != nil {
		return &SendError{Kind: KindConfig, Err: fmt.Errorf("create client: %w", err)}
	}

	if err := client.DialAndSendWithContext(ctx, m); err != nil {
		return classify(err)
	}
	return nil
}

func (s *SMTPSender) buildMsg(msg *Message) (*mail.Msg, error) {
	m := mail.NewMsg()
	if err := m.From(msg.From); err != nil {
		return nil, &SendError{Kind: KindAddress, Err: fmt.Errorf("set from: %w", err)}
	}
	if err := m.To(msg.To); err != nil {
		return nil, &SendError{Kind: KindAddress, Err: fmt.Errorf("set to: %w", err)}
	}
	if msg.ReplyTo != "" {
		if err := m.ReplyTo(msg.ReplyTo); err != nil {
			return nil, &SendError{Kind: KindAddress, Err: fmt.Errorf("set reply-to: %w", err)}
		}
	}
	m.Subject(msg.Subject)

	if msg.Text != "" {
		m.SetBodyString(mail.TypeTextPlain, msg.Text)
		m.AddAlternativeString(mail.TypeTextHTML, msg.HTML)
	} else {
		m.SetBodyString(mail.TypeTextHTML, msg.HTML)
	}
	return m, nil
}

func (s *SMTPSender) options() []mail.Option {
	opts := []mail.Option{
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(s.username),
		mail.WithPassword(s.password),
	}
	if s.secure {
		opts = append(opts, mail.WithSSL())
	} else {
		opts = append(opts, mail.WithTLSPortPolicy(s.tlsPolicy))
	}
	// Port last so the TLS options do not reset it
	return append(opts, mail.WithPort(s.port))
}
