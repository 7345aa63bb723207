package notification

import (
	"context"
	"log/slog"

	portssvc "github.com/bookora/bookora_backend/internal/core/ports/services"
)

// LogSender writes the code to the application log instead of delivering it.
// Used in development and as the terminal fallback of the delivery chain.
type LogSender struct {
	logger *slog.Logger
}

// NewLogSender creates a LogSender.
func NewLogSender(logger *slog.Logger) *LogSender {
	return &LogSender{logger: logger}
}

var _ portssvc.NotificationSender = (*LogSender)(nil)

// SendOTP logs the code. It never fails.
func (s *LogSender) SendOTP(_ context.Context, destination, code string) error {
	s.logger.Info("OTP issued (log delivery)",
		slog.String("destination", destination),
		slog.String("code", code),
	)
	return nil
}
