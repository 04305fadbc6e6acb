package mail

import (
	"bytes"
	"fmt"
	"text/template"

	"gopkg.in/gomail.v2"

	"github.com/muraalee/almalead/internal/infra/http/middleware"
)

var prospectConfirmationTmpl = template.Must(template.New("prospect_confirmation").Parse(
	`Dear {{.FirstName}},

Thank you for submitting your information to {{.FromName}}.

We have received your application and our team will review it shortly.
You can expect to hear from us within 2-3 business days.

Best regards,
The {{.FromName}} Team`))

var attorneyNotificationTmpl = template.Must(template.New("attorney_notification").Parse(
	`New lead submission received:

Name: {{.FirstName}} {{.LastName}}
Email: {{.Email}}
Lead ID: {{.LeadID}}

Please review the lead in the dashboard.`))

func NewEmailSender(host string, port int, fromEmail, fromName string) *EmailSender {
	return &EmailSender{
		Host:      host,
		Port:      port,
		FromEmail: fromEmail,
		FromName:  fromName,
	}
}

// SendProspectConfirmation thanks the prospect for their submission.
func (s *EmailSender) SendProspectConfirmation(to, firstName string) error {
	body, err := render(prospectConfirmationTmpl, prospectConfirmationData{
		FirstName: firstName,
		FromName:  s.FromName,
	})
	if err != nil {
		return err
	}

	if err := s.send(to, "Thank you for your submission", body); err != nil {
		middleware.RecordNotificationError("prospect")
		return err
	}
	return nil
}

// SendAttorneyNotification tells the attorney a new lead arrived.
func (s *EmailSender) SendAttorneyNotification(to, prospectFirstName, prospectLastName, prospectEmail, leadID string) error {
	body, err := render(attorneyNotificationTmpl, attorneyNotificationData{
		FirstName: prospectFirstName,
		LastName:  prospectLastName,
		Email:     prospectEmail,
		LeadID:    leadID,
	})
	if err != nil {
		return err
	}

	subject := fmt.Sprintf("New Lead Submission: %s %s", prospectFirstName, prospectLastName)
	if err := s.send(to, subject, body); err != nil {
		middleware.RecordNotificationError("attorney")
		return err
	}
	return nil
}

func (s *EmailSender) send(to, subject, body string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", m.FormatAddress(s.FromEmail, s.FromName))
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)

	d := gomail.NewDialer(s.Host, s.Port, "", "")

	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("send email via SMTP: %w", err)
	}

	return nil
}

func render(t *template.Template, data any) (string, error) {
	var body bytes.Buffer
	if err := t.Execute(&body, data); err != nil {
		return "", fmt.Errorf("render email template: %w", err)
	}
	return body.String(), nil
}
