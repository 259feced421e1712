package notifications

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html/template"
)

// BookingNotification carries the formatted session and customer details
// sent to the therapists after a booking is confirmed. Dates and times
// arrive pre-formatted ("Tuesday, 10 June 2025", "9:00 AM – 10:00 AM").
type BookingNotification struct {
	TherapistName   string
	CustomerName    string
	CustomerEmail   string
	CustomerPhone   string
	CustomerAddress string
	SessionDate     string
	SessionTime     string
	SessionPrice    string
}

const bookingNotificationTemplate = `<!DOCTYPE html>
<html>
<body>
  <h1>New Booking Received</h1>
  <p>A new counselling session has been booked.</p>
  <h3>Session Details</h3>
  <ul>
    <li>Therapist: {{.TherapistName}}</li>
    <li>Date: {{.SessionDate}}</li>
    <li>Time: {{.SessionTime}}</li>
    <li>Fee: {{.SessionPrice}}</li>
  </ul>
  <h3>Customer Details</h3>
  <ul>
    <li>Name: {{.CustomerName}}</li>
    <li>Email: {{.CustomerEmail}}</li>
    <li>Phone: {{.CustomerPhone}}</li>
    {{if .CustomerAddress}}<li>Address: {{.CustomerAddress}}</li>{{end}}
  </ul>
  <p>This is an automated notification from Intune Therapy &amp; Counselling.</p>
</body>
</html>`

var bookingNotificationTmpl = template.Must(template.New("booking_notification").Parse(bookingNotificationTemplate))

func buildBookingNotificationHTML(n BookingNotification) (string, error) {
	var buf bytes.Buffer
	if err := bookingNotificationTmpl.Execute(&buf, n); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// SendBookingNotification emails both therapists about a new booking.
// It succeeds if at least one recipient accepted the message, mirroring
// the practice's "tell somebody" policy.
func (c *ResendClient) SendBookingNotification(ctx context.Context, n BookingNotification, recipients []string) (int, error) {
	if c == nil {
		return 0, errors.New("resend client is nil")
	}
	if len(recipients) == 0 {
		return 0, errors.New("no notification recipients configured")
	}

	htmlBody, err := buildBookingNotificationHTML(n)
	if err != nil {
		return 0, err
	}
	subject := fmt.Sprintf("New Booking: %s - %s", n.CustomerName, n.SessionDate)

	sent := 0
	var lastErr error
	for _, to := range recipients {
		if _, err := c.sendHTML(ctx, to, subject, htmlBody, n.CustomerEmail); err != nil {
			lastErr = err
			continue
		}
		sent++
	}
	if sent == 0 {
		return 0, fmt.Errorf("failed to send all notification emails: %w", lastErr)
	}
	return sent, nil
}
