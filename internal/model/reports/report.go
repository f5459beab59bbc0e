package reports

import (
	"time"

	"max.ks1230/finances-tracker/internal/entity/finance"
	"max.ks1230/finances-tracker/internal/model/analytics"
)

type Report struct {
	Period          finance.Period
	Summary         analytics.Summary
	Breakdown       []analytics.CategoryShare
	Comparison      analytics.Comparison
	Insights        analytics.Insights
	Recommendations []analytics.Recommendation
}

// Build assembles the report of p from a snapshot covering at least p and the month before.
func Build(txs []finance.Transaction, budgets []finance.Budget, p finance.Period, now time.Time) Report {
	insights := analytics.Analyze(txs, budgets, p, now)
	return Report{
		Period:          p,
		Summary:         analytics.Summarize(txs, budgets, p),
		Breakdown:       analytics.CategoryBreakdown(analytics.FilterTransactions(txs, p), analytics.ChartCategoriesLimit),
		Comparison:      analytics.BudgetComparison(txs, budgets, p),
		Insights:        insights,
		Recommendations: analytics.Recommendations(insights),
	}
}

func (r Report) Empty() bool {
	return r.Summary.TransactionCount == 0 && len(r.Comparison.Budgets) == 0
}
