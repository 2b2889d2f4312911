package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/go-openapi/strfmt"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"subs_manager/internal/entity"
)

var testNow = time.Date(2026, time.January, 10, 15, 30, 0, 0, time.UTC)

func fixedClock() time.Time { return testNow }

func day(offset int) time.Time {
	return time.Date(2026, time.January, 10+offset, 0, 0, 0, 0, time.UTC)
}

func newTestUseCase(repo SubscriptionRepository, id strfmt.UUID) *Subscription {
	return NewSubscription(repo,
		WithClock(fixedClock),
		WithIDGenerator(func() strfmt.UUID { return id }),
	)
}

func Test_subscription_RegisterSub(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	invalid := []struct {
		Name string
		Sub  *entity.Subscription
	}{
		{
			Name: "err, zero cost",
			Sub: &entity.Subscription{
				ServiceName:     "Netflix",
				Cost:            decimal.Zero,
				BillingCycle:    entity.BillingCycleMonthly,
				NextBillingDate: day(7),
			},
		},
		{
			Name: "err, negative cost",
			Sub: &entity.Subscription{
				ServiceName:     "Netflix",
				Cost:            decimal.RequireFromString("-1"),
				BillingCycle:    entity.BillingCycleMonthly,
				NextBillingDate: day(7),
			},
		},
		{
			Name: "err, cost above column precision",
			Sub: &entity.Subscription{
				ServiceName:     "Netflix",
				Cost:            decimal.RequireFromString("10000000000"),
				BillingCycle:    entity.BillingCycleMonthly,
				NextBillingDate: day(7),
			},
		},
		{
			Name: "err, blank service name",
			Sub: &entity.Subscription{
				ServiceName:     "   ",
				Cost:            decimal.RequireFromString("9.99"),
				BillingCycle:    entity.BillingCycleMonthly,
				NextBillingDate: day(7),
			},
		},
		{
			Name: "err, unknown billing cycle",
			Sub: &entity.Subscription{
				ServiceName:     "Netflix",
				Cost:            decimal.RequireFromString("9.99"),
				BillingCycle:    "Weekly",
				NextBillingDate: day(7),
			},
		},
		{
			Name: "err, billing date in the past",
			Sub: &entity.Subscription{
				ServiceName:     "Netflix",
				Cost:            decimal.RequireFromString("9.99"),
				BillingCycle:    entity.BillingCycleMonthly,
				NextBillingDate: day(-1),
			},
		},
		{
			Name: "err, missing billing date",
			Sub: &entity.Subscription{
				ServiceName:  "Netflix",
				Cost:         decimal.RequireFromString("9.99"),
				BillingCycle: entity.BillingCycleMonthly,
			},
		},
		{
			Name: "err, nil subscription",
			Sub:  nil,
		},
	}
	for _, tc := range invalid {
		t.Run(tc.Name, func(t *testing.T) {
			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()

			repo := NewMockSubscriptionRepository(ctrl)
			repo.EXPECT().SaveSub(gomock.Any(), gomock.Any()).Times(0)

			uc := newTestUseCase(repo, strfmt.UUID(uuid.NewString()))

			got, effects, err := uc.RegisterSub(ctx, tc.Sub)
			assert.ErrorIs(t, err, ErrInvalidSubscription)
			assert.Nil(t, got)
			assert.Empty(t, effects)
		})
	}

	t.Run("ok, billing date today is accepted", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		repo := NewMockSubscriptionRepository(ctrl)
		repo.EXPECT().SaveSub(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, s *entity.Subscription) (*entity.Subscription, error) {
				return s, nil
			}).Times(1)

		uc := newTestUseCase(repo, strfmt.UUID(uuid.NewString()))

		_, _, err := uc.RegisterSub(ctx, &entity.Subscription{
			ServiceName:     "Hulu",
			Cost:            decimal.RequireFromString("7.99"),
			BillingCycle:    entity.BillingCycleMonthly,
			NextBillingDate: testNow.Add(-time.Hour),
		})
		assert.NoError(t, err)
	})

	t.Run("err, repo returns persistence error", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		repo := NewMockSubscriptionRepository(ctrl)
		expected := fmt.Errorf("save sub: %w: %w", ErrPersistence, errors.New("disk full"))
		repo.EXPECT().SaveSub(ctx, gomock.Any()).Times(1).Return(nil, expected)

		uc := newTestUseCase(repo, strfmt.UUID(uuid.NewString()))

		_, effects, err := uc.RegisterSub(ctx, &entity.Subscription{
			ServiceName:     "Netflix",
			Cost:            decimal.RequireFromString("9.99"),
			BillingCycle:    entity.BillingCycleMonthly,
			NextBillingDate: day(7),
			ReminderEnabled: true,
		})
		assert.ErrorIs(t, err, ErrPersistence)
		assert.Empty(t, effects)
	})

	t.Run("ok, assigns id and schedules reminder", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		id := strfmt.UUID(uuid.NewString())
		repo := NewMockSubscriptionRepository(ctrl)
		repo.EXPECT().SaveSub(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, s *entity.Subscription) (*entity.Subscription, error) {
				assert.Equal(t, id, s.ID)
				assert.Equal(t, "Netflix", s.ServiceName)
				assert.Equal(t, day(7), s.NextBillingDate)
				return s, nil
			}).Times(1)

		uc := newTestUseCase(repo, id)

		got, effects, err := uc.RegisterSub(ctx, &entity.Subscription{
			ServiceName:     "  Netflix ",
			Cost:            decimal.RequireFromString("9.99"),
			BillingCycle:    entity.BillingCycleMonthly,
			NextBillingDate: day(7).Add(13 * time.Hour),
			ReminderEnabled: true,
			Notes:           "family plan",
		})
		require.NoError(t, err)
		assert.Equal(t, id, got.ID)
		assert.Equal(t, "family plan", got.Notes)
		require.Len(t, effects, 1)
		assert.Equal(t, entity.EffectScheduleReminder, effects[0].Kind)
		assert.Equal(t, id, effects[0].SubscriptionID)
		assert.Equal(t, day(6), effects[0].FireAt)
		assert.Equal(t, "Netflix billing reminder", effects[0].Title)
		assert.Equal(t, "Netflix (Monthly) renews on 2026-01-17 for 9.99", effects[0].Body)
	})

	t.Run("ok, no reminder means no effects", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		repo := NewMockSubscriptionRepository(ctrl)
		repo.EXPECT().SaveSub(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, s *entity.Subscription) (*entity.Subscription, error) {
				return s, nil
			}).Times(1)

		uc := newTestUseCase(repo, strfmt.UUID(uuid.NewString()))

		got, effects, err := uc.RegisterSub(ctx, &entity.Subscription{
			ServiceName:     "Spotify",
			Cost:            decimal.RequireFromString("4.99"),
			BillingCycle:    entity.BillingCycleMonthly,
			NextBillingDate: day(3),
		})
		require.NoError(t, err)
		assert.True(t, decimal.RequireFromString("4.99").Equal(got.Cost))
		assert.Empty(t, effects)
	})
}

func Test_subscription_UpdateSub(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("err, invalid id", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		repo := NewMockSubscriptionRepository(ctrl)
		repo.EXPECT().UpdateSub(gomock.Any(), gomock.Any()).Times(0)

		uc := newTestUseCase(repo, "")

		_, _, err := uc.UpdateSub(ctx, &entity.Subscription{
			ID:              "not-a-uuid",
			ServiceName:     "A",
			Cost:            decimal.NewFromInt(1),
			BillingCycle:    entity.BillingCycleMonthly,
			NextBillingDate: day(1),
		})
		assert.ErrorIs(t, err, ErrInvalidID)
	})

	t.Run("err, invalid fields rejected before store", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		repo := NewMockSubscriptionRepository(ctrl)
		repo.EXPECT().UpdateSub(gomock.Any(), gomock.Any()).Times(0)

		uc := newTestUseCase(repo, "")

		_, _, err := uc.UpdateSub(ctx, &entity.Subscription{
			ID:              strfmt.UUID(uuid.NewString()),
			ServiceName:     "A",
			Cost:            decimal.Zero,
			BillingCycle:    entity.BillingCycleMonthly,
			NextBillingDate: day(1),
		})
		assert.ErrorIs(t, err, ErrInvalidSubscription)
	})

	t.Run("err, not found", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		repo := NewMockSubscriptionRepository(ctrl)
		repo.EXPECT().UpdateSub(ctx, gomock.Any()).Times(1).Return(ErrSubscriptionNotFound)
		repo.EXPECT().GetSubByID(gomock.Any(), gomock.Any()).Times(0)

		uc := newTestUseCase(repo, "")

		_, effects, err := uc.UpdateSub(ctx, &entity.Subscription{
			ID:              strfmt.UUID(uuid.NewString()),
			ServiceName:     "Spotify",
			Cost:            decimal.RequireFromString("4.99"),
			BillingCycle:    entity.BillingCycleMonthly,
			NextBillingDate: day(3),
		})
		assert.ErrorIs(t, err, ErrSubscriptionNotFound)
		assert.Empty(t, effects)
	})

	t.Run("err, cost above column precision", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		repo := NewMockSubscriptionRepository(ctrl)
		repo.EXPECT().GetSubByID(gomock.Any(), gomock.Any()).Times(0)
		repo.EXPECT().UpdateSub(gomock.Any(), gomock.Any()).Times(0)

		uc := newTestUseCase(repo, "")

		_, _, err := uc.UpdateSub(ctx, &entity.Subscription{
			ID:              strfmt.UUID(uuid.NewString()),
			ServiceName:     "A",
			Cost:            decimal.RequireFromString("1e10"),
			BillingCycle:    entity.BillingCycleMonthly,
			NextBillingDate: day(1),
		})
		assert.ErrorIs(t, err, ErrInvalidSubscription)
	})

	t.Run("ok, edit notes of a record whose date has passed", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		id := strfmt.UUID(uuid.NewString())
		current := &entity.Subscription{
			ID:              id,
			ServiceName:     "Netflix",
			Cost:            decimal.RequireFromString("9.99"),
			BillingCycle:    entity.BillingCycleMonthly,
			NextBillingDate: day(1),
			ReminderEnabled: true,
		}
		edited := *current
		edited.Notes = "shared with family"

		repo := NewMockSubscriptionRepository(ctrl)
		gomock.InOrder(
			repo.EXPECT().GetSubByID(ctx, id).Times(1).Return(current, nil),
			repo.EXPECT().UpdateSub(ctx, gomock.Any()).
				DoAndReturn(func(_ context.Context, s *entity.Subscription) error {
					assert.Equal(t, day(1), s.NextBillingDate)
					assert.Equal(t, "shared with family", s.Notes)
					return nil
				}).Times(1),
			repo.EXPECT().GetSubByID(ctx, id).Times(1).Return(&edited, nil),
		)

		// a week after the stored billing date
		uc := NewSubscription(repo, WithClock(func() time.Time { return testNow.AddDate(0, 0, 8) }))

		got, effects, err := uc.UpdateSub(ctx, &entity.Subscription{
			ID:              id,
			ServiceName:     "Netflix",
			Cost:            decimal.RequireFromString("9.99"),
			BillingCycle:    entity.BillingCycleMonthly,
			NextBillingDate: day(1).Add(9 * time.Hour),
			ReminderEnabled: true,
			Notes:           "shared with family",
		})
		require.NoError(t, err)
		assert.Equal(t, "shared with family", got.Notes)
		require.Len(t, effects, 1)
		assert.Equal(t, entity.EffectCancelReminder, effects[0].Kind)
	})

	t.Run("err, moving to a different past date", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		id := strfmt.UUID(uuid.NewString())
		repo := NewMockSubscriptionRepository(ctrl)
		repo.EXPECT().GetSubByID(ctx, id).Times(1).Return(&entity.Subscription{
			ID:              id,
			ServiceName:     "Netflix",
			Cost:            decimal.RequireFromString("9.99"),
			BillingCycle:    entity.BillingCycleMonthly,
			NextBillingDate: day(1),
		}, nil)
		repo.EXPECT().UpdateSub(gomock.Any(), gomock.Any()).Times(0)

		uc := NewSubscription(repo, WithClock(func() time.Time { return testNow.AddDate(0, 0, 8) }))

		_, _, err := uc.UpdateSub(ctx, &entity.Subscription{
			ID:              id,
			ServiceName:     "Netflix",
			Cost:            decimal.RequireFromString("9.99"),
			BillingCycle:    entity.BillingCycleMonthly,
			NextBillingDate: day(2),
		})
		assert.ErrorIs(t, err, ErrInvalidSubscription)
	})

	t.Run("err, past date on an absent record", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		id := strfmt.UUID(uuid.NewString())
		repo := NewMockSubscriptionRepository(ctrl)
		repo.EXPECT().GetSubByID(ctx, id).Times(1).Return(nil, ErrSubscriptionNotFound)
		repo.EXPECT().UpdateSub(gomock.Any(), gomock.Any()).Times(0)

		uc := newTestUseCase(repo, "")

		_, _, err := uc.UpdateSub(ctx, &entity.Subscription{
			ID:              id,
			ServiceName:     "Netflix",
			Cost:            decimal.RequireFromString("9.99"),
			BillingCycle:    entity.BillingCycleMonthly,
			NextBillingDate: day(-3),
		})
		assert.ErrorIs(t, err, ErrSubscriptionNotFound)
	})

	t.Run("ok, update then get", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		repo := NewMockSubscriptionRepository(ctrl)
		id := strfmt.UUID(uuid.NewString())
		stored := &entity.Subscription{
			ID:              id,
			ServiceName:     "Netflix Premium",
			Cost:            decimal.RequireFromString("19.99"),
			BillingCycle:    entity.BillingCycleYearly,
			NextBillingDate: day(30),
			ReminderEnabled: true,
			Notes:           "upgraded",
		}

		repo.EXPECT().UpdateSub(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, s *entity.Subscription) error {
				assert.Equal(t, id, s.ID)
				assert.Equal(t, day(30), s.NextBillingDate)
				return nil
			}).Times(1)
		repo.EXPECT().GetSubByID(ctx, id).Times(1).Return(stored, nil)

		uc := newTestUseCase(repo, "")

		got, effects, err := uc.UpdateSub(ctx, &entity.Subscription{
			ID:              id,
			ServiceName:     "Netflix Premium",
			Cost:            decimal.RequireFromString("19.99"),
			BillingCycle:    entity.BillingCycleYearly,
			NextBillingDate: day(30).Add(8 * time.Hour),
			ReminderEnabled: true,
			Notes:           "upgraded",
		})
		require.NoError(t, err)
		assert.Equal(t, stored, got)
		require.Len(t, effects, 2)
		assert.Equal(t, entity.EffectCancelReminder, effects[0].Kind)
		assert.Equal(t, entity.EffectScheduleReminder, effects[1].Kind)
		assert.Equal(t, id, effects[1].SubscriptionID)
	})

	t.Run("ok, reminder turned off only cancels", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		repo := NewMockSubscriptionRepository(ctrl)
		id := strfmt.UUID(uuid.NewString())
		stored := &entity.Subscription{
			ID:              id,
			ServiceName:     "Hulu",
			Cost:            decimal.RequireFromString("7.99"),
			BillingCycle:    entity.BillingCycleMonthly,
			NextBillingDate: day(2),
		}
		repo.EXPECT().UpdateSub(ctx, gomock.Any()).Times(1).Return(nil)
		repo.EXPECT().GetSubByID(ctx, id).Times(1).Return(stored, nil)

		uc := newTestUseCase(repo, "")

		_, effects, err := uc.UpdateSub(ctx, &entity.Subscription{
			ID:              id,
			ServiceName:     "Hulu",
			Cost:            decimal.RequireFromString("7.99"),
			BillingCycle:    entity.BillingCycleMonthly,
			NextBillingDate: day(2),
		})
		require.NoError(t, err)
		require.Len(t, effects, 1)
		assert.Equal(t, entity.EffectCancelReminder, effects[0].Kind)
	})
}

func Test_subscription_DeleteSub(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("err, invalid id", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		repo := NewMockSubscriptionRepository(ctrl)
		repo.EXPECT().GetSubByID(gomock.Any(), gomock.Any()).Times(0)

		uc := newTestUseCase(repo, "")

		_, _, err := uc.DeleteSub(ctx, "123")
		assert.ErrorIs(t, err, ErrInvalidID)
	})

	t.Run("ok, absent id is a no-op", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		id := strfmt.UUID(uuid.NewString())
		repo := NewMockSubscriptionRepository(ctrl)
		repo.EXPECT().GetSubByID(ctx, id).Times(2).Return(nil, ErrSubscriptionNotFound)
		repo.EXPECT().DeleteSub(gomock.Any(), gomock.Any()).Times(0)

		uc := newTestUseCase(repo, "")

		for i := 0; i < 2; i++ {
			got, effects, err := uc.DeleteSub(ctx, id)
			assert.NoError(t, err)
			assert.Nil(t, got)
			assert.Empty(t, effects)
		}
	})

	t.Run("err, persistence failure", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		id := strfmt.UUID(uuid.NewString())
		repo := NewMockSubscriptionRepository(ctrl)
		repo.EXPECT().GetSubByID(ctx, id).Times(1).Return(&entity.Subscription{ID: id}, nil)
		repo.EXPECT().DeleteSub(ctx, id).Times(1).Return(fmt.Errorf("delete sub: %w", ErrPersistence))

		uc := newTestUseCase(repo, "")

		_, effects, err := uc.DeleteSub(ctx, id)
		assert.ErrorIs(t, err, ErrPersistence)
		assert.Empty(t, effects)
	})

	t.Run("ok, return deleted entity", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		repo := NewMockSubscriptionRepository(ctrl)
		id := strfmt.UUID(uuid.NewString())
		existing := &entity.Subscription{
			ID:              id,
			ServiceName:     "Skillbox",
			Cost:            decimal.NewFromInt(100),
			BillingCycle:    entity.BillingCycleYearly,
			NextBillingDate: day(40),
		}

		repo.EXPECT().GetSubByID(ctx, id).Times(1).Return(existing, nil)
		repo.EXPECT().DeleteSub(ctx, id).Times(1).Return(nil)

		uc := newTestUseCase(repo, "")

		got, effects, err := uc.DeleteSub(ctx, id)
		assert.NoError(t, err)
		assert.Equal(t, existing, got)
		require.Len(t, effects, 1)
		assert.Equal(t, entity.Effect{Kind: entity.EffectCancelReminder, SubscriptionID: id}, effects[0])
	})
}

func Test_subscription_GetSubByID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("repo error", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		id := strfmt.UUID(uuid.NewString())
		repo := NewMockSubscriptionRepository(ctrl)
		repo.EXPECT().GetSubByID(ctx, id).Times(1).Return(nil, ErrSubscriptionNotFound)

		uc := newTestUseCase(repo, "")

		_, err := uc.GetSubByID(ctx, id)
		assert.ErrorIs(t, err, ErrSubscriptionNotFound)
	})

	t.Run("ok", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		id := strfmt.UUID(uuid.NewString())
		repo := NewMockSubscriptionRepository(ctrl)
		repo.EXPECT().GetSubByID(ctx, id).Times(1).Return(&entity.Subscription{
			ID:              id,
			ServiceName:     "Netflix",
			Cost:            decimal.RequireFromString("9.99"),
			BillingCycle:    entity.BillingCycleMonthly,
			NextBillingDate: day(7),
		}, nil)

		uc := newTestUseCase(repo, "")

		got, err := uc.GetSubByID(ctx, id)
		assert.NoError(t, err)
		assert.Equal(t, id, got.ID)
	})
}

func scenarioSubs() []*entity.Subscription {
	return []*entity.Subscription{
		{
			ID:              strfmt.UUID(uuid.NewString()),
			ServiceName:     "Netflix",
			Cost:            decimal.RequireFromString("9.99"),
			BillingCycle:    entity.BillingCycleMonthly,
			NextBillingDate: day(7),
		},
		{
			ID:              strfmt.UUID(uuid.NewString()),
			ServiceName:     "Spotify",
			Cost:            decimal.RequireFromString("4.99"),
			BillingCycle:    entity.BillingCycleMonthly,
			NextBillingDate: day(3),
		},
	}
}

func Test_subscription_ListSubs(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("ordered by next billing date, stable on ties", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		subs := scenarioSubs()
		hulu := &entity.Subscription{
			ID:              strfmt.UUID(uuid.NewString()),
			ServiceName:     "Hulu",
			Cost:            decimal.RequireFromString("7.99"),
			BillingCycle:    entity.BillingCycleMonthly,
			NextBillingDate: day(3),
		}
		subs = append(subs, hulu)

		repo := NewMockSubscriptionRepository(ctrl)
		repo.EXPECT().ListSubs(ctx).Times(1).Return(subs, nil)

		uc := newTestUseCase(repo, "")

		got, err := uc.ListSubs(ctx)
		require.NoError(t, err)
		require.Len(t, got, 3)
		assert.Equal(t, "Spotify", got[0].ServiceName)
		assert.Equal(t, "Hulu", got[1].ServiceName)
		assert.Equal(t, "Netflix", got[2].ServiceName)
	})

	t.Run("repo error", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		repo := NewMockSubscriptionRepository(ctrl)
		repo.EXPECT().ListSubs(ctx).Times(1).Return(nil, errors.New("oops"))

		uc := newTestUseCase(repo, "")

		_, err := uc.ListSubs(ctx)
		assert.Error(t, err)
	})
}

func Test_subscription_ListSubsByFilter(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tcases := []struct {
		Name   string
		Filter SubFilter
		Want   []string
	}{
		{
			Name:   "search net",
			Filter: SubFilter{Search: "net", Cycle: CycleAll},
			Want:   []string{"Netflix"},
		},
		{
			Name:   "monthly under 5.00",
			Filter: SubFilter{Cycle: CycleMonthly, MaxCost: decimal.RequireFromString("5.00")},
			Want:   []string{"Spotify"},
		},
		{
			Name:   "no filter keeps list order",
			Filter: SubFilter{},
			Want:   []string{"Spotify", "Netflix"},
		},
		{
			Name:   "yearly matches nothing",
			Filter: SubFilter{Cycle: CycleYearly},
			Want:   []string{},
		},
		{
			Name:   "limit",
			Filter: SubFilter{Limit: 1},
			Want:   []string{"Spotify"},
		},
		{
			Name:   "offset",
			Filter: SubFilter{Offset: 1},
			Want:   []string{"Netflix"},
		},
		{
			Name:   "offset past the end",
			Filter: SubFilter{Offset: 5},
			Want:   []string{},
		},
	}
	for _, tc := range tcases {
		t.Run(tc.Name, func(t *testing.T) {
			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()

			repo := NewMockSubscriptionRepository(ctrl)
			repo.EXPECT().ListSubs(ctx).Times(1).Return(scenarioSubs(), nil)

			uc := newTestUseCase(repo, "")

			got, err := uc.ListSubsByFilter(ctx, tc.Filter)
			require.NoError(t, err)
			names := make([]string, 0, len(got))
			for _, s := range got {
				names = append(names, s.ServiceName)
			}
			assert.Equal(t, tc.Want, names)
		})
	}

	invalid := []struct {
		Name   string
		Filter SubFilter
		Error  error
	}{
		{Name: "unknown cycle", Filter: SubFilter{Cycle: "Weekly"}, Error: ErrInvalidFilter},
		{Name: "negative max cost", Filter: SubFilter{MaxCost: decimal.NewFromInt(-1)}, Error: ErrInvalidFilter},
		{Name: "negative offset", Filter: SubFilter{Offset: -1}, Error: ErrInvalidPagination},
		{Name: "negative limit", Filter: SubFilter{Limit: -1}, Error: ErrInvalidPagination},
	}
	for _, tc := range invalid {
		t.Run(tc.Name, func(t *testing.T) {
			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()

			repo := NewMockSubscriptionRepository(ctrl)
			repo.EXPECT().ListSubs(gomock.Any()).Times(0)

			uc := newTestUseCase(repo, "")

			_, err := uc.ListSubsByFilter(ctx, tc.Filter)
			assert.ErrorIs(t, err, tc.Error)
		})
	}
}

func Test_subscription_CostSubsByFilter(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("repo error", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		repo := NewMockSubscriptionRepository(ctrl)
		repo.EXPECT().ListSubs(ctx).Times(1).Return(nil, fmt.Errorf("list subs: %w", ErrPersistence))

		uc := newTestUseCase(repo, "")

		_, err := uc.CostSubsByFilter(ctx, SubFilter{})
		assert.ErrorIs(t, err, ErrPersistence)
	})

	t.Run("ok sum, pagination ignored", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		repo := NewMockSubscriptionRepository(ctrl)
		repo.EXPECT().ListSubs(ctx).Times(1).Return(scenarioSubs(), nil)

		uc := newTestUseCase(repo, "")

		sum, err := uc.CostSubsByFilter(ctx, SubFilter{Limit: 1})
		require.NoError(t, err)
		assert.Equal(t, 2, sum.Count)
		assert.Equal(t, "14.98", sum.Monthly.StringFixed(2))
		assert.Equal(t, "179.76", sum.Yearly.StringFixed(2))
	})
}
