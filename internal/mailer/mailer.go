package mailer

import (
	"fmt"
	"strings"

	gomail "gopkg.in/gomail.v2"

	"candidate-backend/internal/shared/telemetry"
)

// Sender delivers email to a single recipient.
type Sender interface {
	Send(to, subject, body string) error
}

// SMTPMailer sends HTML email over SMTP with STARTTLS.
type SMTPMailer struct {
	dialer *gomail.Dialer
	from   string
}

// New constructs an SMTPMailer.
func New(host string, port int, from, password string) *SMTPMailer {
	return &SMTPMailer{
		dialer: gomail.NewDialer(host, port, from, password),
		from:   from,
	}
}

// Send wraps the plain-text body in the HTML template and delivers it.
func (m *SMTPMailer) Send(to, subject, body string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", HTMLBody(body))

	if err := m.dialer.DialAndSend(msg); err != nil {
		telemetry.Error("mail.send_failed", map[string]any{
			"to":      to,
			"subject": subject,
			"error":   err.Error(),
		})
		return fmt.Errorf("send mail: %w", err)
	}
	telemetry.Info("mail.sent", map[string]any{"to": to, "subject": subject})
	return nil
}

// HTMLBody wraps a plain-text email body in the standard HTML layout.
func HTMLBody(body string) string {
	return fmt.Sprintf(`
<html>
  <body style="font-family: Arial, sans-serif; line-height: 1.6; color: #333;">
    <div style="max-width: 600px; margin: 0 auto; padding: 20px;">
      %s
      <br><br>
      <hr style="border: 1px solid #eee;">
      <p style="font-size: 12px; color: #666;">
        This is an automated email.<br>
        Please do not reply to this email.
      </p>
    </div>
  </body>
</html>
`, strings.ReplaceAll(body, "\n", "<br>"))
}

var _ Sender = (*SMTPMailer)(nil)
