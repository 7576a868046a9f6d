package email

import "strings"

// Service is a well-known SMTP submission endpoint.
type Service struct {
	Host   string
	Port   int
	Secure bool // implicit TLS instead of STARTTLS
}

var wellKnownServices = map[string]Service{
	"gmail":    {Host: "smtp.gmail.com", Port: 465, Secure: true},
	"outlook":  {Host: "smtp-mail.outlook.com", Port: 587},
	"hotmail":  {Host: "smtp-mail.outlook.com", Port: 587},
	"yahoo":    {Host: "smtp.mail.yahoo.com", Port: 465, Secure: true},
	"icloud":   {Host: "smtp.mail.me.com", Port: 587},
	"zoho":     {Host: "smtp.zoho.com", Port: 465, Secure: true},
	"brevo":    {Host: "smtp-relay.brevo.com", Port: 587},
	"sendgrid": {Host: "smtp.sendgrid.net", Port: 587},
	"mailgun":  {Host: "smtp.mailgun.org", Port: 587},
}

// LookupService resolves a provider identifier, case-insensitively.
func LookupService(name string) (Service, bool) {
	svc, ok := wellKnownServices[strings.ToLower(strings.TrimSpace(name))]
	return svc, ok
}
