package reminder

import (
	"context"
	"log/slog"
	"time"

	"subs_manager/internal/entity"
)

const defaultDispatchTimeout = 5 * time.Second

// Notifier schedules and cancels billing reminders
type Notifier interface {
	ScheduleReminder(ctx context.Context, id string, fireAt time.Time, title, body string) error
	CancelReminder(ctx context.Context, id string) error
}

// Recorder counts dispatched effects by kind and result
type Recorder interface {
	ObserveEffect(kind, result string)
}

// Dispatcher applies effects returned by committed mutations.
// Failures are logged and counted, they never reach the caller.
type Dispatcher struct {
	n       Notifier
	log     *slog.Logger
	rec     Recorder
	timeout time.Duration
}

type DispatcherOption func(*Dispatcher)

func WithRecorder(rec Recorder) DispatcherOption {
	return func(d *Dispatcher) {
		d.rec = rec
	}
}

func WithDispatchTimeout(timeout time.Duration) DispatcherOption {
	return func(d *Dispatcher) {
		if timeout > 0 {
			d.timeout = timeout
		}
	}
}

func NewDispatcher(n Notifier, log *slog.Logger, opts ...DispatcherOption) *Dispatcher {
	if log == nil {
		log = slog.Default()
	}
	d := &Dispatcher{
		n:       n,
		log:     log,
		timeout: defaultDispatchTimeout,
	}
	for _, o := range opts {
		o(d)
	}
	return d
}

// Dispatch runs the effects in order. It outlives a cancelled request context but not the timeout.
func (d *Dispatcher) Dispatch(ctx context.Context, effects []entity.Effect) {
	if len(effects) == 0 {
		return
	}
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), d.timeout)
	defer cancel()

	for _, ef := range effects {
		id := ef.SubscriptionID.String()
		var err error
		switch ef.Kind {
		case entity.EffectScheduleReminder:
			err = d.n.ScheduleReminder(ctx, id, ef.FireAt, ef.Title, ef.Body)
		case entity.EffectCancelReminder:
			err = d.n.CancelReminder(ctx, id)
		default:
			d.log.Warn("unknown effect", slog.String("kind", string(ef.Kind)), slog.String("subscription_id", id))
			d.observe(string(ef.Kind), "unknown")
			continue
		}
		if err != nil {
			d.log.Error("effect failed",
				slog.String("kind", string(ef.Kind)),
				slog.String("subscription_id", id),
				slog.String("err", err.Error()),
			)
			d.observe(string(ef.Kind), "error")
			continue
		}
		d.observe(string(ef.Kind), "ok")
	}
}

func (d *Dispatcher) observe(kind, result string) {
	if d.rec != nil {
		d.rec.ObserveEffect(kind, result)
	}
}
