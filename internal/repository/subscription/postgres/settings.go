package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"subs_manager/internal/repository/subscription/postgres/sqlc"
	"subs_manager/internal/usecase"
)

type SettingsRepository struct {
	queries *sqlc.Queries
}

func NewSettingsRepository(pool *pgxpool.Pool) *SettingsRepository {
	return &SettingsRepository{queries: sqlc.New(pool)}
}

func (r *SettingsRepository) GetSetting(ctx context.Context, key string) (string, error) {
	v, err := r.queries.GetSetting(ctx, key)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", usecase.ErrSettingNotFound
		}
		return "", fmt.Errorf("get setting %q: %w: %w", key, usecase.ErrPersistence, err)
	}
	return v, nil
}

func (r *SettingsRepository) SaveSetting(ctx context.Context, key, value string) error {
	err := r.queries.UpsertSetting(ctx, sqlc.UpsertSettingParams{Key: key, Value: value})
	if err != nil {
		return fmt.Errorf("save setting %q: %w: %w", key, usecase.ErrPersistence, err)
	}
	return nil
}
