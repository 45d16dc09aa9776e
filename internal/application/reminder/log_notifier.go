package reminder

import (
	"context"
	"log/slog"

	"github.com/tasker-otp/internal/domain"
)

// LogNotifier writes notifications to a logger. Used when no push target is configured.
type LogNotifier struct {
	Logger *slog.Logger
}

func (n LogNotifier) Notify(ctx context.Context, msg domain.Notification) error {
	log := n.Logger
	if log == nil {
		log = slog.Default()
	}
	log.InfoContext(ctx, msg.Title, "body", msg.Body, "count", msg.Count)
	return nil
}
