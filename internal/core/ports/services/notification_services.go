package services

import "context"

// NotificationSender delivers one-time codes to a destination (phone number).
// Implementations are selected by configuration; delivery is best-effort and
// the primary business operation never depends on it succeeding.
type NotificationSender interface {
	SendOTP(ctx context.Context, destination, code string) error
}
