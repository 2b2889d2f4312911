package entity

import (
	"time"

	"github.com/go-openapi/strfmt"
)

// EffectKind names a side effect requested by a committed mutation.
type EffectKind string

const (
	EffectScheduleReminder EffectKind = "schedule_reminder"
	EffectCancelReminder   EffectKind = "cancel_reminder"
)

// Effect is dispatched by the caller after the mutation that produced it is durable.
type Effect struct {
	Kind           EffectKind
	SubscriptionID strfmt.UUID
	// FireAt, Title and Body are set for EffectScheduleReminder only
	FireAt time.Time
	Title  string
	Body   string
}

// CalendarEvent - event written to the user's calendar for a billing date
type CalendarEvent struct {
	UID         string
	Title       string
	Description string
	Start       time.Time
	Duration    time.Duration
	// AlarmOffset is relative to Start, negative means before
	AlarmOffset time.Duration
}
