package notifications

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const defaultResendEndpoint = "https://api.resend.com/emails"

// ResendClient sends transactional email through the Resend API. A nil
// client is returned when no API key is configured; callers treat that
// as "mail disabled".
type ResendClient struct {
	apiKey      string
	senderEmail string
	senderName  string
	endpoint    string
	httpClient  *http.Client
}

func NewResendClient(apiKey, senderEmail, senderName string) *ResendClient {
	if strings.TrimSpace(apiKey) == "" || strings.TrimSpace(senderEmail) == "" {
		return nil
	}
	if strings.TrimSpace(senderName) == "" {
		senderName = senderEmail
	}
	return &ResendClient{
		apiKey:      apiKey,
		senderEmail: senderEmail,
		senderName:  senderName,
		endpoint:    defaultResendEndpoint,
		httpClient:  &http.Client{Timeout: 8 * time.Second},
	}
}

func (c *ResendClient) sendHTML(ctx context.Context, toEmail, subject, htmlBody, replyTo string) (string, error) {
	if c == nil {
		return "", errors.New("resend client is nil")
	}
	if strings.TrimSpace(toEmail) == "" {
		return "", errors.New("missing recipient email")
	}
	if strings.TrimSpace(subject) == "" {
		return "", errors.New("missing subject")
	}
	if strings.TrimSpace(htmlBody) == "" {
		return "", errors.New("missing html body")
	}

	payload := resendSendRequest{
		From:    fmt.Sprintf("%s <%s>", c.senderName, c.senderEmail),
		To:      []string{toEmail},
		Subject: subject,
		HTML:    htmlBody,
		ReplyTo: replyTo,
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("resend marshal payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(raw))
	if err != nil {
		return "", fmt.Errorf("resend create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("resend request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return "", fmt.Errorf("resend send failed: status=%d body=%s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var out resendSendResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("resend decode response: %w", err)
	}
	if strings.TrimSpace(out.ID) == "" {
		return "", errors.New("resend response missing id")
	}
	return out.ID, nil
}

type resendSendRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html,omitempty"`
	ReplyTo string   `json:"reply_to,omitempty"`
}

type resendSendResponse struct {
	ID string `json:"id"`
}
