package reminder

import (
	"encoding/json"
	"time"

	"github.com/hibiken/asynq"
)

const TypeReminder = "subscription:reminder"

// ReminderPayload is carried by a reminder task
type ReminderPayload struct {
	SubscriptionID string    `json:"subscription_id"`
	Title          string    `json:"title"`
	Body           string    `json:"body"`
	FireAt         time.Time `json:"fire_at"`
}

func NewReminderTask(p ReminderPayload) (*asynq.Task, error) {
	payload, err := json.Marshal(p)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeReminder, payload), nil
}

// TaskID is the stable task ID of a subscription's reminder, at most one is pending per subscription
func TaskID(subscriptionID string) string {
	return "reminder:" + subscriptionID
}
