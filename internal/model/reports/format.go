package reports

import (
	"fmt"
	"strings"

	"max.ks1230/finances-tracker/internal/model/analytics"
)

const noDataMessage = "No transactions or budgets recorded for %s"

// Format renders the report as chat text.
func Format(r Report) string {
	if r.Empty() {
		return fmt.Sprintf(noDataMessage, r.Period.Label())
	}

	money := analytics.FormatMoney
	res := []string{
		fmt.Sprintf("Report for %s", r.Period.Label()),
		"",
		fmt.Sprintf("Income: %s", money(r.Summary.TotalIncome)),
		fmt.Sprintf("Expenses: %s", money(r.Summary.TotalExpenses)),
		fmt.Sprintf("Net: %s", money(r.Summary.NetAmount)),
	}

	if len(r.Breakdown) > 0 {
		res = append(res, "", "Spending by category:")
		for _, c := range r.Breakdown {
			res = append(res, fmt.Sprintf("%s: %s (%.1f%%)", c.Category, money(c.Amount), c.Share))
		}
	}

	if len(r.Comparison.Budgets) > 0 {
		res = append(res, "", "Budgets:")
		for _, b := range r.Comparison.Budgets {
			res = append(res, fmt.Sprintf("%s %s: %s of %s (%.0f%%)",
				statusMark(b.Status), b.Category, money(b.Spent), money(b.Budget), b.Percentage))
		}
		s := r.Comparison.Summary
		res = append(res, fmt.Sprintf("Total: %s of %s, %d over budget",
			money(s.TotalSpent), money(s.TotalBudget), s.OverBudgetCategories))
	}

	ins := r.Insights
	res = append(res, "",
		fmt.Sprintf("Change vs last month: %+.1f%%", ins.ExpenseChange),
		fmt.Sprintf("Daily average: %s", money(ins.DailyAverage)),
		fmt.Sprintf("Savings rate: %.1f%% (%s)", ins.SavingsRate, ins.SavingsTier),
	)

	if len(r.Recommendations) > 0 {
		res = append(res, "", "Recommendations:")
		for _, rec := range r.Recommendations {
			res = append(res, "- "+rec.Text)
		}
	}
	return strings.Join(res, "\n")
}

func statusMark(s analytics.BudgetStatus) string {
	switch s {
	case analytics.StatusOver:
		return "🔴"
	case analytics.StatusWarning:
		return "🟡"
	}
	return "🟢"
}
