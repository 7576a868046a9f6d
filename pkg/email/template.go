package email

import (
	"bytes"
	"fmt"
	htmltemplate "html/template"
	texttemplate "text/template"
)

// contactEmailTemplate is the HTML template for contact form emails.
// html/template escapes every field for its context.
const contactEmailTemplate = `<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>New Contact Form Submission</title>
</head>
<body>
    <div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
        <h2 style="color: #333;">New Contact Form Submission</h2>
        <div style="background-color: #f9f9f9; padding: 20px; border-radius: 5px;">
            <p><strong>Name:</strong> {{.SenderName}}</p>
            <p><strong>Email:</strong> {{.SenderEmail}}</p>
            <p><strong>Message:</strong></p>
            <p style="background-color: #fff; padding: 15px; border-left: 4px solid #00ffff; white-space: pre-wrap;">{{.Message}}</p>
        </div>
        <p style="color: #888; font-size: 12px; margin-top: 20px;">
            This message was sent from your portfolio contact form.
        </p>
    </div>
</body>
</html>`

const contactTextTemplate = `New Contact Form Submission

Name: {{.SenderName}}
Email: {{.SenderEmail}}

Message:
{{.Message}}

--
This message was sent from your portfolio contact form.
`

var (
	contactHTML = htmltemplate.Must(htmltemplate.New("contact.html").Parse(contactEmailTemplate))
	contactText = texttemplate.Must(texttemplate.New("contact.txt").Parse(contactTextTemplate))
)

// renderContactEmail returns the HTML and plain-text bodies for a submission
func renderContactEmail(data ContactEmailData) (string, string, error) {
	var html bytes.Buffer
	if err := contactHTML.Execute(&html, data); err != nil {
		return "", "", fmt.Errorf("failed to execute email template: %w", err)
	}

	var text bytes.Buffer
	if err := contactText.Execute(&text, data); err != nil {
		return "", "", fmt.Errorf("failed to execute text template: %w", err)
	}

	return html.String(), text.String(), nil
}
