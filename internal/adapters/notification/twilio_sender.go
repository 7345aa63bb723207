package notification

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	portssvc "github.com/bookora/bookora_backend/internal/core/ports/services"
)

const twilioAPIBase = "https://api.twilio.com/2010-04-01"

// TwilioSender delivers one-time codes as SMS through the Twilio REST API.
type TwilioSender struct {
	accountSID string
	authToken  string
	fromNumber string
	client     *http.Client
}

// NewTwilioSender creates a TwilioSender with a bounded request timeout.
func NewTwilioSender(accountSID, authToken, fromNumber string) *TwilioSender {
	return &TwilioSender{
		accountSID: accountSID,
		authToken:  authToken,
		fromNumber: fromNumber,
		client:     &http.Client{Timeout: 10 * time.Second},
	}
}

var _ portssvc.NotificationSender = (*TwilioSender)(nil)

// SendOTP posts a Messages resource to the Twilio API.
func (s *TwilioSender) SendOTP(ctx context.Context, destination, code string) error {
	endpoint := fmt.Sprintf("%s/Accounts/%s/Messages.json", twilioAPIBase, s.accountSID)

	form := url.Values{}
	form.Set("To", destination)
	form.Set("From", s.fromNumber)
	form.Set("Body", fmt.Sprintf("Your verification code is %s", code))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("failed to build twilio request: %w", err)
	}
	req.SetBasicAuth(s.accountSID, s.authToken)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("twilio request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("twilio api returned status %s", resp.Status)
	}
	return nil
}
