package usecase

import (
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"

	"subs_manager/internal/entity"
)

var twelve = decimal.NewFromInt(12)

// FilterSubs returns the subscriptions matching every active predicate of f, in input order.
// It never fails: nil records are dropped, an empty service name never matches a non-empty search.
func FilterSubs(subs []*entity.Subscription, f SubFilter) []*entity.Subscription {
	search := foldCase(strings.TrimSpace(f.Search))

	out := make([]*entity.Subscription, 0, len(subs))
	for _, sub := range subs {
		if sub == nil {
			continue
		}
		if !matchesSearch(sub.ServiceName, search) {
			continue
		}
		if !matchesCycle(sub.BillingCycle, f.Cycle) {
			continue
		}
		if !matchesMaxCost(sub.Cost, f.MaxCost) {
			continue
		}
		out = append(out, sub)
	}
	return out
}

// SummarizeCost sums monthly- and yearly-equivalent spend, rounded to cents
func SummarizeCost(subs []*entity.Subscription) CostSummary {
	monthly := decimal.Zero
	yearly := decimal.Zero
	count := 0
	for _, sub := range subs {
		if sub == nil {
			continue
		}
		count++
		switch sub.BillingCycle {
		case entity.BillingCycleYearly:
			monthly = monthly.Add(sub.Cost.Div(twelve))
			yearly = yearly.Add(sub.Cost)
		default:
			monthly = monthly.Add(sub.Cost)
			yearly = yearly.Add(sub.Cost.Mul(twelve))
		}
	}
	return CostSummary{
		Count:   count,
		Monthly: monthly.Round(2),
		Yearly:  yearly.Round(2),
	}
}

// foldCase maps s to its case-folded form; a Caser is stateful so one is built per call
func foldCase(s string) string {
	if s == "" {
		return s
	}
	return cases.Fold().String(s)
}

func matchesSearch(name, foldedSearch string) bool {
	if foldedSearch == "" {
		return true
	}
	if name == "" {
		return false
	}
	return strings.Contains(foldCase(name), foldedSearch)
}

func matchesCycle(cycle entity.BillingCycle, f CycleFilter) bool {
	if f == "" || f == CycleAll {
		return true
	}
	return string(cycle) == string(f)
}

func matchesMaxCost(cost, maxCost decimal.Decimal) bool {
	if !maxCost.IsPositive() {
		return true
	}
	return cost.LessThanOrEqual(maxCost)
}
