package analytics

import (
	"math"
	"sort"

	"max.ks1230/finances-tracker/internal/entity/finance"
)

type BudgetStatus string

const (
	StatusGood    BudgetStatus = "good"
	StatusWarning BudgetStatus = "warning"
	StatusOver    BudgetStatus = "over"
)

// Percentages of a budget used above which the status escalates.
const (
	WarningThreshold = 80.0
	OverThreshold    = 100.0
)

type BudgetEvaluation struct {
	Category   string       `json:"category"`
	Budget     float64      `json:"budget"`
	Spent      float64      `json:"spent"`
	Remaining  float64      `json:"remaining"`
	Percentage float64      `json:"percentage"`
	Status     BudgetStatus `json:"status"`
}

type BudgetSummary struct {
	TotalBudget          float64 `json:"totalBudget"`
	TotalSpent           float64 `json:"totalSpent"`
	TotalRemaining       float64 `json:"totalRemaining"`
	OverBudgetCategories int     `json:"overBudgetCategories"`
	OverallPercentage    float64 `json:"overallPercentage"`
}

func StatusOf(percentage float64) BudgetStatus {
	switch {
	case percentage > OverThreshold:
		return StatusOver
	case percentage > WarningThreshold:
		return StatusWarning
	}
	return StatusGood
}

// EvaluateBudgets joins the budgets of a period with that period's expense totals.
// Budgets sharing a category are merged and their limits summed. A limit <= 0
// reports 0% and is over as soon as anything was spent.
// The result is ordered by percentage descending, then by category.
func EvaluateBudgets(budgets []finance.Budget, totals map[string]CategoryTotal) []BudgetEvaluation {
	limits := make(map[string]float64)
	order := make([]string, 0, len(budgets))
	for _, b := range budgets {
		if _, ok := limits[b.Category]; !ok {
			order = append(order, b.Category)
		}
		limits[b.Category] += b.Amount
	}

	res := make([]BudgetEvaluation, 0, len(order))
	for _, cat := range order {
		res = append(res, evaluate(cat, limits[cat], totals[cat].Total))
	}
	sort.Slice(res, func(i, j int) bool {
		if res[i].Percentage != res[j].Percentage {
			return res[i].Percentage > res[j].Percentage
		}
		return res[i].Category < res[j].Category
	})
	return res
}

func evaluate(category string, limit, spent float64) BudgetEvaluation {
	ev := BudgetEvaluation{
		Category:  category,
		Budget:    limit,
		Spent:     spent,
		Remaining: math.Max(0, limit-spent),
	}
	if limit <= 0 {
		ev.Status = StatusGood
		if spent > 0 {
			ev.Status = StatusOver
		}
		return ev
	}
	ev.Percentage = spent * 100 / limit
	ev.Status = StatusOf(ev.Percentage)
	return ev
}

func SummarizeBudgets(evals []BudgetEvaluation) BudgetSummary {
	var s BudgetSummary
	for _, ev := range evals {
		s.TotalBudget += ev.Budget
		s.TotalSpent += ev.Spent
		if ev.Status == StatusOver {
			s.OverBudgetCategories++
		}
	}
	s.TotalRemaining = s.TotalBudget - s.TotalSpent
	if s.TotalBudget > 0 {
		s.OverallPercentage = s.TotalSpent * 100 / s.TotalBudget
	}
	return s
}

// Alerts returns the evaluations that are not in good standing.
func Alerts(evals []BudgetEvaluation) []BudgetEvaluation {
	res := make([]BudgetEvaluation, 0)
	for _, ev := range evals {
		if ev.Status != StatusGood {
			res = append(res, ev)
		}
	}
	return res
}
