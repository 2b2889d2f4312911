package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-openapi/strfmt"
	"github.com/shopspring/decimal"

	"subs_manager/internal/entity"
)

//go:generate go run github.com/golang/mock/mockgen@v1.6.0 -destination=usecase_mock.go -package=usecase subs_manager/internal/usecase SubscriptionRepository,SettingsRepository,CalendarGateway

var (
	ErrInvalidSubscription  = errors.New("invalid subscription")
	ErrSubscriptionNotFound = errors.New("subscription not found")
	ErrInvalidID            = errors.New("invalid id")
	ErrInvalidFilter        = errors.New("invalid filter")
	ErrInvalidPagination    = errors.New("invalid pagination")
	ErrPersistence          = errors.New("persistence failure")
	ErrCompanyNotFound      = errors.New("company not found")
	ErrInvalidCurrency      = errors.New("invalid currency")
	ErrSettingNotFound      = errors.New("setting not found")
	ErrCalendar             = errors.New("calendar unavailable")
)

const maxListLimit = 200

// CycleFilter selects records by billing cycle
type CycleFilter string

const (
	CycleAll     CycleFilter = "All"
	CycleMonthly CycleFilter = "Monthly"
	CycleYearly  CycleFilter = "Yearly"
)

// ParseCycleFilter converts raw input into a CycleFilter, empty input means CycleAll
func ParseCycleFilter(value string) (CycleFilter, error) {
	switch CycleFilter(value) {
	case "", CycleAll:
		return CycleAll, nil
	case CycleMonthly, CycleYearly:
		return CycleFilter(value), nil
	}
	return "", fmt.Errorf("%w: unknown billing cycle %q", ErrInvalidFilter, value)
}

// SubFilter - transient filter state used to compute the visible subset
type SubFilter struct {
	// Search - case-insensitive substring of the service name, empty matches all
	Search string
	// Cycle - billing cycle to keep, CycleAll or empty matches all
	Cycle CycleFilter
	// MaxCost - inclusive upper bound on cost, zero disables the bound
	MaxCost decimal.Decimal
	// Limit - maximum number of records in the response, zero means all
	Limit int
	// Offset - result set offset
	Offset int
}

// CostSummary - aggregated spend of a set of subscriptions
type CostSummary struct {
	// Count - number of subscriptions summed
	Count int
	// Monthly - monthly-equivalent total
	Monthly decimal.Decimal
	// Yearly - yearly-equivalent total
	Yearly decimal.Decimal
}

// SubscriptionRepository - durable storage of subscription records
type SubscriptionRepository interface {
	// SaveSub - insert a subscription, the ID is already assigned
	SaveSub(ctx context.Context, s *entity.Subscription) (*entity.Subscription, error)
	// UpdateSub - replace every mutable field of an existing subscription
	UpdateSub(ctx context.Context, s *entity.Subscription) error
	// DeleteSub - delete a subscription
	DeleteSub(ctx context.Context, id strfmt.UUID) error
	// GetSubByID - get a subscription by ID
	GetSubByID(ctx context.Context, id strfmt.UUID) (*entity.Subscription, error)
	// ListSubs - all subscriptions ordered by next billing date, then insertion order
	ListSubs(ctx context.Context) ([]*entity.Subscription, error)
}

// SettingsRepository - key/value user preferences
type SettingsRepository interface {
	// GetSetting - value stored under key or ErrSettingNotFound
	GetSetting(ctx context.Context, key string) (string, error)
	// SaveSetting - insert or replace the value stored under key
	SaveSetting(ctx context.Context, key, value string) error
}

// CompanyCatalog - static reference dataset of known companies
type CompanyCatalog interface {
	Companies() []entity.Company
}

// CalendarGateway - writes billing events to the user's calendar
type CalendarGateway interface {
	AddEvent(ctx context.Context, ev entity.CalendarEvent) error
}
