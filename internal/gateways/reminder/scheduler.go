package reminder

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/hibiken/asynq"
)

const DefaultQueue = "reminders"

// TaskEnqueuer is implemented by asynq.Client
type TaskEnqueuer interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

// TaskDeleter is implemented by asynq.Inspector
type TaskDeleter interface {
	DeleteTask(queue, id string) error
}

// Scheduler keeps one delayed asynq task per subscription
type Scheduler struct {
	client    TaskEnqueuer
	inspector TaskDeleter
	queue     string
	maxRetry  int
	log       *slog.Logger
}

func NewScheduler(client TaskEnqueuer, inspector TaskDeleter, queue string, log *slog.Logger) *Scheduler {
	if queue == "" {
		queue = DefaultQueue
	}
	if log == nil {
		log = slog.Default()
	}
	return &Scheduler{
		client:    client,
		inspector: inspector,
		queue:     queue,
		maxRetry:  5,
		log:       log,
	}
}

// ScheduleReminder replaces any pending reminder of the subscription with one firing at fireAt
func (s *Scheduler) ScheduleReminder(ctx context.Context, id string, fireAt time.Time, title, body string) error {
	if err := s.CancelReminder(ctx, id); err != nil {
		return err
	}

	task, err := NewReminderTask(ReminderPayload{
		SubscriptionID: id,
		Title:          title,
		Body:           body,
		FireAt:         fireAt,
	})
	if err != nil {
		return fmt.Errorf("build reminder task: %w", err)
	}

	info, err := s.client.EnqueueContext(ctx, task,
		asynq.TaskID(TaskID(id)),
		asynq.Queue(s.queue),
		asynq.ProcessAt(fireAt),
		asynq.MaxRetry(s.maxRetry),
	)
	if err != nil {
		return fmt.Errorf("enqueue reminder %s: %w", id, err)
	}
	s.log.Debug("reminder scheduled",
		slog.String("subscription_id", id),
		slog.String("task_id", info.ID),
		slog.Time("fire_at", fireAt),
	)
	return nil
}

// CancelReminder deletes the pending reminder of the subscription; a missing task is not an error
func (s *Scheduler) CancelReminder(_ context.Context, id string) error {
	err := s.inspector.DeleteTask(s.queue, TaskID(id))
	if err == nil || errors.Is(err, asynq.ErrTaskNotFound) || errors.Is(err, asynq.ErrQueueNotFound) {
		return nil
	}
	return fmt.Errorf("cancel reminder %s: %w", id, err)
}
