package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/go-openapi/strfmt"

	"subs_manager/internal/entity"
)

const (
	defaultEventDuration = time.Hour
	defaultAlarmOffset   = -24 * time.Hour
)

// Calendar turns stored subscriptions into calendar events. It never mutates the store.
type Calendar struct {
	Sr SubscriptionRepository
	Gw CalendarGateway

	duration    time.Duration
	alarmOffset time.Duration
}

// NewCalendar creates a calendar use case; zero duration or offset keep the defaults
func NewCalendar(sr SubscriptionRepository, gw CalendarGateway, duration, alarmOffset time.Duration) *Calendar {
	if duration <= 0 {
		duration = defaultEventDuration
	}
	if alarmOffset == 0 {
		alarmOffset = defaultAlarmOffset
	}
	return &Calendar{
		Sr:          sr,
		Gw:          gw,
		duration:    duration,
		alarmOffset: alarmOffset,
	}
}

// EventFor builds the billing event of the subscription with the given ID
func (c *Calendar) EventFor(ctx context.Context, id strfmt.UUID) (entity.CalendarEvent, error) {
	if !strfmt.IsUUID(id.String()) {
		return entity.CalendarEvent{}, ErrInvalidID
	}
	sub, err := c.Sr.GetSubByID(ctx, id)
	if err != nil {
		return entity.CalendarEvent{}, err
	}
	return BuildCalendarEvent(sub, c.duration, c.alarmOffset), nil
}

// AddToCalendar writes the billing event of the subscription to the calendar gateway
func (c *Calendar) AddToCalendar(ctx context.Context, id strfmt.UUID) (entity.CalendarEvent, error) {
	ev, err := c.EventFor(ctx, id)
	if err != nil {
		return entity.CalendarEvent{}, err
	}
	if err := c.Gw.AddEvent(ctx, ev); err != nil {
		return entity.CalendarEvent{}, fmt.Errorf("%w: %w", ErrCalendar, err)
	}
	return ev, nil
}

// BuildCalendarEvent maps a subscription onto its billing date event
func BuildCalendarEvent(sub *entity.Subscription, duration, alarmOffset time.Duration) entity.CalendarEvent {
	return entity.CalendarEvent{
		UID:   fmt.Sprintf("%s-%s@subs-manager", sub.ID, sub.NextBillingDate.Format("20060102")),
		Title: fmt.Sprintf("%s Billing Date", sub.ServiceName),
		Description: fmt.Sprintf("%s %s subscription, %s",
			sub.ServiceName, sub.BillingCycle, sub.Cost.StringFixed(2)),
		Start:       sub.NextBillingDate,
		Duration:    duration,
		AlarmOffset: alarmOffset,
	}
}
