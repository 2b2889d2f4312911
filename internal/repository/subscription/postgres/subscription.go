package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-openapi/strfmt"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"subs_manager/internal/entity"
	"subs_manager/internal/repository/subscription/postgres/sqlc"
	"subs_manager/internal/usecase"
)

type SubRepository struct {
	pool    *pgxpool.Pool
	queries *sqlc.Queries
}

func NewSubRepository(pool *pgxpool.Pool) *SubRepository {
	return &SubRepository{
		pool:    pool,
		queries: sqlc.New(pool),
	}
}

func (r *SubRepository) SaveSub(ctx context.Context, sub *entity.Subscription) (*entity.Subscription, error) {
	if sub == nil {
		return nil, fmt.Errorf("save sub: %w", usecase.ErrInvalidSubscription)
	}
	id, err := parseID(sub.ID)
	if err != nil {
		return nil, fmt.Errorf("save sub: %w", err)
	}

	out, err := r.queries.CreateSubscription(ctx, sqlc.CreateSubscriptionParams{
		ID:              id,
		ServiceName:     sub.ServiceName,
		Cost:            sub.Cost,
		BillingCycle:    sub.BillingCycle.String(),
		NextBillingDate: sub.NextBillingDate,
		ReminderEnabled: sub.ReminderEnabled,
		Notes:           sub.Notes,
	})
	if err != nil {
		return nil, fmt.Errorf("save sub: %w: %w", usecase.ErrPersistence, err)
	}
	return toEntity(out), nil
}

func (r *SubRepository) UpdateSub(ctx context.Context, sub *entity.Subscription) error {
	if sub == nil {
		return fmt.Errorf("update sub: %w", usecase.ErrInvalidSubscription)
	}
	id, err := parseID(sub.ID)
	if err != nil {
		return fmt.Errorf("update sub: %w", err)
	}

	rows, err := r.queries.UpdateSubscription(ctx, sqlc.UpdateSubscriptionParams{
		ID:              id,
		ServiceName:     sub.ServiceName,
		Cost:            sub.Cost,
		BillingCycle:    sub.BillingCycle.String(),
		NextBillingDate: sub.NextBillingDate,
		ReminderEnabled: sub.ReminderEnabled,
		Notes:           sub.Notes,
	})
	if err != nil {
		return fmt.Errorf("update sub: %w: %w", usecase.ErrPersistence, err)
	}
	if rows == 0 {
		return usecase.ErrSubscriptionNotFound
	}
	return nil
}

func (r *SubRepository) DeleteSub(ctx context.Context, id strfmt.UUID) error {
	uid, err := parseID(id)
	if err != nil {
		return fmt.Errorf("delete sub: %w", err)
	}
	rows, err := r.queries.DeleteSubscription(ctx, uid)
	if err != nil {
		return fmt.Errorf("delete sub: %w: %w", usecase.ErrPersistence, err)
	}
	if rows == 0 {
		return usecase.ErrSubscriptionNotFound
	}
	return nil
}

func (r *SubRepository) GetSubByID(ctx context.Context, id strfmt.UUID) (*entity.Subscription, error) {
	uid, err := parseID(id)
	if err != nil {
		return nil, fmt.Errorf("get sub by id=%s: %w", id, err)
	}
	sub, err := r.queries.GetSubscription(ctx, uid)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, usecase.ErrSubscriptionNotFound
		}
		return nil, fmt.Errorf("get sub by id=%s: %w: %w", id, usecase.ErrPersistence, err)
	}
	return toEntity(sub), nil
}

// ListSubs returns every stored subscription ordered by next billing date, then insertion order
func (r *SubRepository) ListSubs(ctx context.Context) ([]*entity.Subscription, error) {
	rows, err := r.queries.ListSubscriptions(ctx)
	if err != nil {
		return nil, fmt.Errorf("list subs: %w: %w", usecase.ErrPersistence, err)
	}
	out := make([]*entity.Subscription, 0, len(rows))
	for _, item := range rows {
		out = append(out, toEntity(item))
	}
	return out, nil
}

func parseID(id strfmt.UUID) (uuid.UUID, error) {
	uid, err := uuid.Parse(id.String())
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %q", usecase.ErrInvalidID, id)
	}
	return uid, nil
}

func toEntity(s sqlc.Subscription) *entity.Subscription {
	return &entity.Subscription{
		ID:              strfmt.UUID(s.ID.String()),
		ServiceName:     s.ServiceName,
		Cost:            s.Cost,
		BillingCycle:    entity.BillingCycle(s.BillingCycle),
		NextBillingDate: s.NextBillingDate.UTC(),
		ReminderEnabled: s.ReminderEnabled,
		Notes:           s.Notes,
		CreatedAt:       s.CreatedAt.UTC(),
	}
}
