package usecase

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/go-openapi/strfmt"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"subs_manager/internal/entity"
)

const defaultReminderLead = 24 * time.Hour

// maxCost is the largest value a NUMERIC(12,2) column holds
var maxCost = decimal.RequireFromString("9999999999.99")

// Subscription coordinates subscription use cases via the repository
type Subscription struct {
	Sr SubscriptionRepository

	now          func() time.Time
	newID        func() strfmt.UUID
	reminderLead time.Duration
}

// Option configures a Subscription use case
type Option func(*Subscription)

// WithClock overrides the time source used for date validation and reminders
func WithClock(now func() time.Time) Option {
	return func(s *Subscription) {
		if now != nil {
			s.now = now
		}
	}
}

// WithIDGenerator overrides how new subscription IDs are produced
func WithIDGenerator(gen func() strfmt.UUID) Option {
	return func(s *Subscription) {
		if gen != nil {
			s.newID = gen
		}
	}
}

// WithReminderLead sets how long before the billing date a reminder fires
func WithReminderLead(lead time.Duration) Option {
	return func(s *Subscription) {
		if lead >= 0 {
			s.reminderLead = lead
		}
	}
}

// NewSubscription creates a use case service with the given repository
func NewSubscription(sr SubscriptionRepository, opts ...Option) *Subscription {
	s := &Subscription{
		Sr:           sr,
		now:          time.Now,
		newID:        func() strfmt.UUID { return strfmt.UUID(uuid.NewString()) },
		reminderLead: defaultReminderLead,
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// RegisterSub validates and saves a new subscription under a fresh ID.
// The returned effects must be dispatched by the caller.
func (s *Subscription) RegisterSub(ctx context.Context, sub *entity.Subscription) (*entity.Subscription, []entity.Effect, error) {
	if err := s.validateAndNormalize(sub); err != nil {
		return nil, nil, err
	}
	if s.isPast(sub.NextBillingDate) {
		return nil, nil, errPastBillingDate
	}
	sub.ID = s.newID()

	created, err := s.Sr.SaveSub(ctx, sub)
	if err != nil {
		return nil, nil, err
	}

	var effects []entity.Effect
	if created.ReminderEnabled {
		effects = append(effects, s.scheduleEffect(created))
	}
	return created, effects, nil
}

// UpdateSub replaces every mutable field of the subscription with sub.ID and returns the fresh copy.
// A billing date that has already passed is accepted only when it equals the stored one.
func (s *Subscription) UpdateSub(ctx context.Context, sub *entity.Subscription) (*entity.Subscription, []entity.Effect, error) {
	if sub == nil || !strfmt.IsUUID(sub.ID.String()) {
		return nil, nil, ErrInvalidID
	}
	if err := s.validateAndNormalize(sub); err != nil {
		return nil, nil, err
	}
	if s.isPast(sub.NextBillingDate) {
		current, err := s.Sr.GetSubByID(ctx, sub.ID)
		if err != nil {
			return nil, nil, err
		}
		if !dayStart(current.NextBillingDate).Equal(sub.NextBillingDate) {
			return nil, nil, errPastBillingDate
		}
	}
	if err := s.Sr.UpdateSub(ctx, sub); err != nil {
		return nil, nil, err
	}

	updated, err := s.Sr.GetSubByID(ctx, sub.ID)
	if err != nil {
		return nil, nil, err
	}

	effects := []entity.Effect{cancelEffect(updated.ID)}
	// a billing day that already passed has nothing left to remind about
	if updated.ReminderEnabled && !s.isPast(updated.NextBillingDate) {
		effects = append(effects, s.scheduleEffect(updated))
	}
	return updated, effects, nil
}

// DeleteSub removes a subscription by ID and returns the previously stored record.
// Deleting an absent ID is a no-op: nil record, no effects, no error.
func (s *Subscription) DeleteSub(ctx context.Context, id strfmt.UUID) (*entity.Subscription, []entity.Effect, error) {
	if !strfmt.IsUUID(id.String()) {
		return nil, nil, ErrInvalidID
	}

	existing, err := s.Sr.GetSubByID(ctx, id)
	if errors.Is(err, ErrSubscriptionNotFound) {
		return nil, nil, nil
	}
	if err != nil {
		return nil, nil, err
	}

	err = s.Sr.DeleteSub(ctx, id)
	if errors.Is(err, ErrSubscriptionNotFound) {
		return nil, nil, nil
	}
	if err != nil {
		return nil, nil, err
	}
	return existing, []entity.Effect{cancelEffect(id)}, nil
}

// GetSubByID fetches a subscription by its ID
func (s *Subscription) GetSubByID(ctx context.Context, id strfmt.UUID) (*entity.Subscription, error) {
	if !strfmt.IsUUID(id.String()) {
		return nil, ErrInvalidID
	}
	return s.Sr.GetSubByID(ctx, id)
}

// ListSubs returns every subscription ordered by next billing date, ties kept in insertion order
func (s *Subscription) ListSubs(ctx context.Context) ([]*entity.Subscription, error) {
	subs, err := s.Sr.ListSubs(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(subs, func(i, j int) bool {
		return subs[i].NextBillingDate.Before(subs[j].NextBillingDate)
	})
	return subs, nil
}

// ListSubsByFilter normalizes the filter and returns the matching page of subscriptions
func (s *Subscription) ListSubsByFilter(ctx context.Context, filter SubFilter) ([]*entity.Subscription, error) {
	nf, err := normalizeFilter(filter)
	if err != nil {
		return nil, err
	}
	subs, err := s.ListSubs(ctx)
	if err != nil {
		return nil, err
	}
	return paginate(FilterSubs(subs, nf), nf.Limit, nf.Offset), nil
}

// CostSubsByFilter normalizes the filter and sums the cost of every matching subscription.
// Pagination is ignored.
func (s *Subscription) CostSubsByFilter(ctx context.Context, filter SubFilter) (CostSummary, error) {
	nf, err := normalizeFilter(filter)
	if err != nil {
		return CostSummary{}, err
	}
	subs, err := s.ListSubs(ctx)
	if err != nil {
		return CostSummary{}, err
	}
	return SummarizeCost(FilterSubs(subs, nf)), nil
}

// dayStart truncates a time to midnight UTC of its calendar day
func dayStart(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

var errPastBillingDate = fmt.Errorf("%w: next_billing_date is in the past", ErrInvalidSubscription)

func (s *Subscription) isPast(date time.Time) bool {
	return date.Before(dayStart(s.now().UTC()))
}

// validateAndNormalize enforces field rules and aligns the billing date to a day.
// Whether a past date is allowed depends on the caller.
func (s *Subscription) validateAndNormalize(sub *entity.Subscription) error {
	if sub == nil {
		return fmt.Errorf("%w: nil", ErrInvalidSubscription)
	}
	sub.ServiceName = strings.TrimSpace(sub.ServiceName)
	if sub.ServiceName == "" {
		return fmt.Errorf("%w: empty service_name", ErrInvalidSubscription)
	}
	sub.Cost = sub.Cost.Round(2)
	if !sub.Cost.IsPositive() {
		return fmt.Errorf("%w: cost must be > 0", ErrInvalidSubscription)
	}
	if sub.Cost.GreaterThan(maxCost) {
		return fmt.Errorf("%w: cost must be <= %s", ErrInvalidSubscription, maxCost.StringFixed(2))
	}
	if !sub.BillingCycle.IsValid() {
		return fmt.Errorf("%w: unknown billing_cycle %q", ErrInvalidSubscription, sub.BillingCycle)
	}
	if sub.NextBillingDate.IsZero() {
		return fmt.Errorf("%w: empty next_billing_date", ErrInvalidSubscription)
	}

	sub.NextBillingDate = dayStart(sub.NextBillingDate)
	return nil
}

func (s *Subscription) scheduleEffect(sub *entity.Subscription) entity.Effect {
	date := sub.NextBillingDate.Format(time.DateOnly)
	return entity.Effect{
		Kind:           entity.EffectScheduleReminder,
		SubscriptionID: sub.ID,
		// billing dates are UTC days, so the lead counts back from 00:00 UTC
		FireAt:         sub.NextBillingDate.Add(-s.reminderLead),
		Title:          fmt.Sprintf("%s billing reminder", sub.ServiceName),
		Body: fmt.Sprintf("%s (%s) renews on %s for %s",
			sub.ServiceName, sub.BillingCycle, date, sub.Cost.StringFixed(2)),
	}
}

func cancelEffect(id strfmt.UUID) entity.Effect {
	return entity.Effect{
		Kind:           entity.EffectCancelReminder,
		SubscriptionID: id,
	}
}

// normalizeFilter validates the cycle, cost bound and pagination
func normalizeFilter(f SubFilter) (SubFilter, error) {
	cycle, err := ParseCycleFilter(string(f.Cycle))
	if err != nil {
		return f, err
	}
	if f.MaxCost.IsNegative() {
		return f, fmt.Errorf("%w: max_cost must be >= 0", ErrInvalidFilter)
	}
	if f.Offset < 0 {
		return f, fmt.Errorf("%w: offset must be >= 0", ErrInvalidPagination)
	}
	if f.Limit < 0 {
		return f, fmt.Errorf("%w: limit must be >= 0", ErrInvalidPagination)
	}

	ff := f
	ff.Cycle = cycle
	if ff.Limit > maxListLimit {
		ff.Limit = maxListLimit
	}
	return ff, nil
}

func paginate(subs []*entity.Subscription, limit, offset int) []*entity.Subscription {
	if offset >= len(subs) {
		return []*entity.Subscription{}
	}
	subs = subs[offset:]
	if limit > 0 && limit < len(subs) {
		subs = subs[:limit]
	}
	return subs
}
