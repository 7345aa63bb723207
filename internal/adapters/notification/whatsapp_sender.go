package notification

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	portssvc "github.com/bookora/bookora_backend/internal/core/ports/services"
)

// WhatsAppSender delivers one-time codes through a WhatsApp Business API
// endpoint configured by URL and bearer token.
type WhatsAppSender struct {
	apiURL   string
	apiToken string
	client   *http.Client
}

// NewWhatsAppSender creates a WhatsAppSender with a bounded request timeout.
func NewWhatsAppSender(apiURL, apiToken string) *WhatsAppSender {
	return &WhatsAppSender{
		apiURL:   apiURL,
		apiToken: apiToken,
		client:   &http.Client{Timeout: 10 * time.Second},
	}
}

var _ portssvc.NotificationSender = (*WhatsAppSender)(nil)

type whatsAppMessage struct {
	To   string `json:"to"`
	Type string `json:"type"`
	Text struct {
		Body string `json:"body"`
	} `json:"text"`
}

// SendOTP posts a text message to the configured WhatsApp endpoint.
func (s *WhatsAppSender) SendOTP(ctx context.Context, destination, code string) error {
	msg := whatsAppMessage{To: destination, Type: "text"}
	msg.Text.Body = fmt.Sprintf("Your verification code is %s", code)

	payload, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to marshal whatsapp message: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.apiURL, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to build whatsapp request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+s.apiToken)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("whatsapp request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("whatsapp api returned status %s", resp.Status)
	}
	return nil
}
