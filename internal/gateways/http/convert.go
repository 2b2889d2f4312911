package http

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-openapi/strfmt"
	"github.com/shopspring/decimal"

	"subs_manager/internal/entity"
	"subs_manager/internal/entity/generated"
	"subs_manager/internal/usecase"
)

// parseFilter reads search, billing_cycle, max_cost, limit and offset from the query string
func parseFilter(c *gin.Context) (usecase.SubFilter, error) {
	f := usecase.SubFilter{
		Search: c.Query("search"),
		Cycle:  usecase.CycleFilter(strings.TrimSpace(c.Query("billing_cycle"))),
	}

	if s := strings.TrimSpace(c.Query("max_cost")); s != "" {
		v, err := decimal.NewFromString(s)
		if err != nil {
			return f, fmt.Errorf("%w: invalid max_cost", usecase.ErrInvalidFilter)
		}
		f.MaxCost = v
	}
	if s := c.Query("limit"); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil {
			return f, fmt.Errorf("%w: invalid limit", usecase.ErrInvalidPagination)
		}
		f.Limit = v
	}
	if s := c.Query("offset"); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil {
			return f, fmt.Errorf("%w: invalid offset", usecase.ErrInvalidPagination)
		}
		f.Offset = v
	}
	return f, nil
}

// fromInput maps a validated request body onto a subscription record
func fromInput(id strfmt.UUID, in *generated.SubscriptionInput) *entity.Subscription {
	return &entity.Subscription{
		ID:              id,
		ServiceName:     *in.ServiceName,
		Cost:            decimal.NewFromFloat(*in.Cost),
		BillingCycle:    entity.BillingCycle(*in.BillingCycle),
		NextBillingDate: time.Time(*in.NextBillingDate),
		ReminderEnabled: in.ReminderEnabled,
		Notes:           in.Notes,
	}
}

func toResponse(s *entity.Subscription) generated.Subscription {
	name := s.ServiceName
	cost := s.Cost.InexactFloat64()
	cycle := s.BillingCycle.String()
	date := strfmt.Date(s.NextBillingDate)

	return generated.Subscription{
		SubscriptionInput: generated.SubscriptionInput{
			ServiceName:     &name,
			Cost:            &cost,
			BillingCycle:    &cycle,
			NextBillingDate: &date,
			ReminderEnabled: s.ReminderEnabled,
			Notes:           s.Notes,
		},
		SubscriptionID: generated.SubscriptionID{ID: s.ID},
	}
}

func toCompany(c entity.Company) generated.Company {
	return generated.Company{
		ID:                   c.ID,
		Name:                 c.Name,
		Category:             c.Category,
		Description:          c.Description,
		WebsiteURL:           c.WebsiteURL,
		CancellationGuideURL: c.CancellationGuideURL,
		LogoURL:              c.LogoURL,
		HexColor:             c.HexColor,
	}
}

func toDraft(s *entity.Subscription) generated.SubscriptionInput {
	name := s.ServiceName
	cycle := s.BillingCycle.String()
	return generated.SubscriptionInput{
		ServiceName:  &name,
		BillingCycle: &cycle,
	}
}

func toCostSummary(sum usecase.CostSummary, currency string) generated.CostSummary {
	return generated.CostSummary{
		Count:        int64(sum.Count),
		Currency:     currency,
		MonthlyTotal: sum.Monthly.InexactFloat64(),
		YearlyTotal:  sum.Yearly.InexactFloat64(),
	}
}
