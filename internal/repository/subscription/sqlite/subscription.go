package sqlite

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-openapi/strfmt"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"subs_manager/internal/entity"
	"subs_manager/internal/usecase"
)

// SubRepository keeps subscriptions in a local SQLite file.
type SubRepository struct {
	db *gorm.DB
}

// NewSubRepository binds a GORM connection opened with Open.
func NewSubRepository(db *gorm.DB) *SubRepository {
	return &SubRepository{db: db}
}

func (r *SubRepository) SaveSub(ctx context.Context, sub *entity.Subscription) (*entity.Subscription, error) {
	if sub == nil {
		return nil, fmt.Errorf("save sub: %w", usecase.ErrInvalidSubscription)
	}
	if !strfmt.IsUUID(sub.ID.String()) {
		return nil, fmt.Errorf("save sub: %w: %q", usecase.ErrInvalidID, sub.ID)
	}

	row := toRow(sub)
	row.CreatedAt = time.Now().UTC()
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return nil, fmt.Errorf("save sub: %w: %w", usecase.ErrPersistence, err)
	}
	return toEntity(row)
}

func (r *SubRepository) UpdateSub(ctx context.Context, sub *entity.Subscription) error {
	if sub == nil {
		return fmt.Errorf("update sub: %w", usecase.ErrInvalidSubscription)
	}
	row := toRow(sub)
	res := r.db.WithContext(ctx).
		Model(&subscriptionRow{}).
		Where("id = ?", row.ID).
		Updates(map[string]any{
			"service_name":      row.ServiceName,
			"cost":              row.Cost,
			"billing_cycle":     row.BillingCycle,
			"next_billing_date": row.NextBillingDate,
			"reminder_enabled":  row.ReminderEnabled,
			"notes":             row.Notes,
		})
	if res.Error != nil {
		return fmt.Errorf("update sub: %w: %w", usecase.ErrPersistence, res.Error)
	}
	if res.RowsAffected == 0 {
		return usecase.ErrSubscriptionNotFound
	}
	return nil
}

func (r *SubRepository) DeleteSub(ctx context.Context, id strfmt.UUID) error {
	res := r.db.WithContext(ctx).Where("id = ?", id.String()).Delete(&subscriptionRow{})
	if res.Error != nil {
		return fmt.Errorf("delete sub: %w: %w", usecase.ErrPersistence, res.Error)
	}
	if res.RowsAffected == 0 {
		return usecase.ErrSubscriptionNotFound
	}
	return nil
}

func (r *SubRepository) GetSubByID(ctx context.Context, id strfmt.UUID) (*entity.Subscription, error) {
	var row subscriptionRow
	err := r.db.WithContext(ctx).Where("id = ?", id.String()).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrSubscriptionNotFound
		}
		return nil, fmt.Errorf("get sub by id=%s: %w: %w", id, usecase.ErrPersistence, err)
	}
	return toEntity(row)
}

func (r *SubRepository) ListSubs(ctx context.Context) ([]*entity.Subscription, error) {
	var rows []subscriptionRow
	err := r.db.WithContext(ctx).
		Order("next_billing_date ASC").
		Order("seq ASC").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("list subs: %w: %w", usecase.ErrPersistence, err)
	}

	out := make([]*entity.Subscription, 0, len(rows))
	for _, row := range rows {
		sub, err := toEntity(row)
		if err != nil {
			return nil, err
		}
		out = append(out, sub)
	}
	return out, nil
}

// SettingsRepository keeps key/value preferences next to the subscriptions.
type SettingsRepository struct {
	db *gorm.DB
}

func NewSettingsRepository(db *gorm.DB) *SettingsRepository {
	return &SettingsRepository{db: db}
}

func (r *SettingsRepository) GetSetting(ctx context.Context, key string) (string, error) {
	var row settingRow
	err := r.db.WithContext(ctx).Where("\"key\" = ?", key).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", usecase.ErrSettingNotFound
		}
		return "", fmt.Errorf("get setting %q: %w: %w", key, usecase.ErrPersistence, err)
	}
	return row.Value, nil
}

func (r *SettingsRepository) SaveSetting(ctx context.Context, key, value string) error {
	row := settingRow{Key: key, Value: value, UpdatedAt: time.Now().UTC()}
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&row).Error
	if err != nil {
		return fmt.Errorf("save setting %q: %w: %w", key, usecase.ErrPersistence, err)
	}
	return nil
}

func toRow(s *entity.Subscription) subscriptionRow {
	return subscriptionRow{
		ID:              s.ID.String(),
		ServiceName:     s.ServiceName,
		Cost:            s.Cost.StringFixed(2),
		BillingCycle:    s.BillingCycle.String(),
		NextBillingDate: s.NextBillingDate.UTC().Format(time.DateOnly),
		ReminderEnabled: s.ReminderEnabled,
		Notes:           s.Notes,
	}
}

func toEntity(row subscriptionRow) (*entity.Subscription, error) {
	cost, err := decimal.NewFromString(row.Cost)
	if err != nil {
		return nil, fmt.Errorf("decode cost of %s: %w: %w", row.ID, usecase.ErrPersistence, err)
	}
	date, err := time.ParseInLocation(time.DateOnly, row.NextBillingDate, time.UTC)
	if err != nil {
		return nil, fmt.Errorf("decode date of %s: %w: %w", row.ID, usecase.ErrPersistence, err)
	}
	return &entity.Subscription{
		ID:              strfmt.UUID(row.ID),
		ServiceName:     row.ServiceName,
		Cost:            cost,
		BillingCycle:    entity.BillingCycle(row.BillingCycle),
		NextBillingDate: date,
		ReminderEnabled: row.ReminderEnabled,
		Notes:           row.Notes,
		CreatedAt:       row.CreatedAt.UTC(),
	}, nil
}
