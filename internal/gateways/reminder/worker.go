package reminder

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/hibiken/asynq"
)

// Deliverer hands a due reminder to the user
type Deliverer interface {
	Deliver(ctx context.Context, p ReminderPayload) error
}

// LogDeliverer writes due reminders to the log
type LogDeliverer struct {
	log *slog.Logger
}

func NewLogDeliverer(log *slog.Logger) *LogDeliverer {
	if log == nil {
		log = slog.Default()
	}
	return &LogDeliverer{log: log}
}

func (d *LogDeliverer) Deliver(_ context.Context, p ReminderPayload) error {
	d.log.Info("reminder due",
		slog.String("subscription_id", p.SubscriptionID),
		slog.String("title", p.Title),
		slog.String("body", p.Body),
	)
	return nil
}

// TaskHandler processes reminder tasks on the worker side
type TaskHandler struct {
	d   Deliverer
	log *slog.Logger
}

func NewTaskHandler(d Deliverer, log *slog.Logger) *TaskHandler {
	if log == nil {
		log = slog.Default()
	}
	return &TaskHandler{d: d, log: log}
}

func (h *TaskHandler) HandleReminderTask(ctx context.Context, t *asynq.Task) error {
	var p ReminderPayload
	if err := json.Unmarshal(t.Payload(), &p); err != nil {
		return fmt.Errorf("unmarshal reminder payload: %v: %w", err, asynq.SkipRetry)
	}
	if p.SubscriptionID == "" {
		return fmt.Errorf("reminder without subscription id: %w", asynq.SkipRetry)
	}
	if err := h.d.Deliver(ctx, p); err != nil {
		return fmt.Errorf("deliver reminder %s: %w", p.SubscriptionID, err)
	}
	return nil
}

// NewServeMux routes reminder tasks to h
func NewServeMux(h *TaskHandler) *asynq.ServeMux {
	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeReminder, h.HandleReminderTask)
	return mux
}

// NewServer builds the asynq worker server consuming queue
func NewServer(opt asynq.RedisClientOpt, queue string, concurrency int, log *slog.Logger) *asynq.Server {
	if queue == "" {
		queue = DefaultQueue
	}
	if concurrency <= 0 {
		concurrency = 1
	}
	if log == nil {
		log = slog.Default()
	}
	return asynq.NewServer(opt, asynq.Config{
		Concurrency: concurrency,
		Queues:      map[string]int{queue: 1},
		RetryDelayFunc: func(n int, err error, task *asynq.Task) time.Duration {
			delay := time.Minute
			for i := 0; i < n && delay < time.Hour; i++ {
				delay *= 2
			}
			if delay > time.Hour {
				delay = time.Hour
			}
			log.Warn("reminder task failed, retrying",
				slog.String("type", task.Type()),
				slog.Int("attempt", n+1),
				slog.Duration("delay", delay),
				slog.String("err", err.Error()),
			)
			return delay
		},
	})
}
