package notifications

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html/template"

	"github.com/adeebakausar/latest-intune-mindset-refresh/internal/models"
)

const contactMessageTemplate = `<!DOCTYPE html>
<html>
<body>
  <h1>New Contact Form Message</h1>
  <ul>
    <li>Name: {{.Name}}</li>
    <li>Email: {{.Email}}</li>
    <li>Phone: {{if .Phone}}{{.Phone}}{{else}}Not provided{{end}}</li>
  </ul>
  <h3>Message</h3>
  <p>{{.Message}}</p>
  <p>This is an automated notification from the Intune Therapy &amp; Counselling website.</p>
</body>
</html>`

var contactMessageTmpl = template.Must(template.New("contact_message").Parse(contactMessageTemplate))

// SendContactMessage forwards a contact form submission to the practice
// addresses. Same at-least-one delivery policy as booking notifications.
func (c *ResendClient) SendContactMessage(ctx context.Context, msg models.ContactMessage, recipients []string) (int, error) {
	if c == nil {
		return 0, errors.New("resend client is nil")
	}
	if len(recipients) == 0 {
		return 0, errors.New("no contact recipients configured")
	}

	var buf bytes.Buffer
	if err := contactMessageTmpl.Execute(&buf, msg); err != nil {
		return 0, err
	}
	subject := fmt.Sprintf("Contact Form: Message from %s", msg.Name)

	sent := 0
	var lastErr error
	for _, to := range recipients {
		if _, err := c.sendHTML(ctx, to, subject, buf.String(), msg.Email); err != nil {
			lastErr = err
			continue
		}
		sent++
	}
	if sent == 0 {
		return 0, fmt.Errorf("failed to send all contact emails: %w", lastErr)
	}
	return sent, nil
}
