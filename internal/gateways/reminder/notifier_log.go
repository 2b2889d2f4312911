package reminder

import (
	"context"
	"log/slog"
	"time"
)

// LogNotifier only logs reminder requests, used when reminders are disabled
type LogNotifier struct {
	log *slog.Logger
}

func NewLogNotifier(log *slog.Logger) *LogNotifier {
	if log == nil {
		log = slog.Default()
	}
	return &LogNotifier{log: log}
}

func (n *LogNotifier) ScheduleReminder(_ context.Context, id string, fireAt time.Time, title, _ string) error {
	n.log.Info("reminder not scheduled, reminders disabled",
		slog.String("subscription_id", id),
		slog.String("title", title),
		slog.Time("fire_at", fireAt),
	)
	return nil
}

func (n *LogNotifier) CancelReminder(_ context.Context, id string) error {
	n.log.Debug("reminder cancel skipped, reminders disabled", slog.String("subscription_id", id))
	return nil
}
