package notification

import (
	"context"
	"log/slog"

	portssvc "github.com/bookora/bookora_backend/internal/core/ports/services"
	"github.com/bookora/bookora_backend/internal/platform/config"
)

// FallbackSender tries each configured provider in order and, when all of
// them fail, degrades to logging the code. It never returns an error: OTP
// issuance must report success once the code is persisted, regardless of
// delivery.
type FallbackSender struct {
	senders []portssvc.NotificationSender
	logger  *slog.Logger
}

// NewFallbackSender wraps the given providers in delivery order.
func NewFallbackSender(logger *slog.Logger, senders ...portssvc.NotificationSender) *FallbackSender {
	return &FallbackSender{senders: senders, logger: logger}
}

var _ portssvc.NotificationSender = (*FallbackSender)(nil)

// SendOTP attempts delivery through each provider in turn.
func (s *FallbackSender) SendOTP(ctx context.Context, destination, code string) error {
	for _, sender := range s.senders {
		if err := sender.SendOTP(ctx, destination, code); err != nil {
			s.logger.Warn("OTP delivery provider failed, trying next",
				slog.String("destination", destination),
				slog.String("error", err.Error()),
			)
			continue
		}
		return nil
	}

	// All providers failed; degrade to log delivery.
	s.logger.Warn("All OTP delivery providers failed, degrading to log delivery",
		slog.String("destination", destination),
	)
	return NewLogSender(s.logger).SendOTP(ctx, destination, code)
}

// NewSenderFromConfig builds the delivery chain declared by
// cfg.NotificationProviders. Unknown provider names are skipped with a
// warning; the chain always terminates in log delivery.
func NewSenderFromConfig(cfg *config.Config, logger *slog.Logger) portssvc.NotificationSender {
	var senders []portssvc.NotificationSender
	for _, name := range cfg.NotificationProviders {
		switch name {
		case "twilio":
			senders = append(senders, NewTwilioSender(cfg.TwilioAccountSID, cfg.TwilioAuthToken, cfg.TwilioFromNumber))
		case "whatsapp":
			senders = append(senders, NewWhatsAppSender(cfg.WhatsAppAPIURL, cfg.WhatsAppAPIToken))
		case "log":
			senders = append(senders, NewLogSender(logger))
		default:
			logger.Warn("Unknown notification provider, skipping", slog.String("provider", name))
		}
	}
	return NewFallbackSender(logger, senders...)
}
