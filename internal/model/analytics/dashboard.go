package analytics

import (
	"sort"

	"max.ks1230/finances-tracker/internal/entity/finance"
)

const ChartCategoriesLimit = 10

type Summary struct {
	Period           string          `json:"period"`
	TotalIncome      float64         `json:"totalIncome"`
	TotalExpenses    float64         `json:"totalExpenses"`
	NetAmount        float64         `json:"netAmount"`
	TotalBudget      float64         `json:"totalBudget"`
	BudgetUsed       float64         `json:"budgetUsed"`
	TopCategory      *CategoryAmount `json:"topCategory"`
	TransactionCount int             `json:"transactionCount"`
}

// Summarize builds the headline numbers of period p. BudgetUsed is 0 when no budget is set.
func Summarize(txs []finance.Transaction, budgets []finance.Budget, p finance.Period) Summary {
	current := FilterTransactions(txs, p)
	s := Summary{
		Period:           p.Key(),
		TotalIncome:      totalOf(current, finance.Income),
		TotalExpenses:    totalOf(current, finance.Expense),
		TransactionCount: len(current),
	}
	s.NetAmount = s.TotalIncome - s.TotalExpenses
	for _, b := range FilterBudgets(budgets, p) {
		s.TotalBudget += b.Amount
	}
	if s.TotalBudget > 0 {
		s.BudgetUsed = s.TotalExpenses * 100 / s.TotalBudget
	}
	if top := TopCategories(AggregateByCategory(FilterByType(current, finance.Expense)), 1); len(top) > 0 {
		s.TopCategory = &top[0]
	}
	return s
}

type MonthlyPoint struct {
	Period   string  `json:"period"`
	Month    string  `json:"month"`
	Expenses float64 `json:"expenses"`
	Income   float64 `json:"income"`
}

// MonthlyTrend returns income and expenses per month in chronological order.
func MonthlyTrend(txs []finance.Transaction) []MonthlyPoint {
	byPeriod := make(map[finance.Period]*MonthlyPoint)
	periods := make([]finance.Period, 0)
	for _, tx := range txs {
		p := tx.Period()
		point, ok := byPeriod[p]
		if !ok {
			point = &MonthlyPoint{Period: p.Key(), Month: p.Label()}
			byPeriod[p] = point
			periods = append(periods, p)
		}
		if tx.Type == finance.Expense {
			point.Expenses += tx.Amount
		} else {
			point.Income += tx.Amount
		}
	}
	sort.Slice(periods, func(i, j int) bool {
		return periods[i].Before(periods[j])
	})
	res := make([]MonthlyPoint, 0, len(periods))
	for _, p := range periods {
		res = append(res, *byPeriod[p])
	}
	return res
}

type CategoryShare struct {
	CategoryAmount
	Share float64 `json:"share"`
}

// CategoryBreakdown lists the top expense categories with their share of the listed total.
func CategoryBreakdown(txs []finance.Transaction, limit int) []CategoryShare {
	top := TopCategories(AggregateByCategory(FilterByType(txs, finance.Expense)), limit)
	total := 0.0
	for _, c := range top {
		total += c.Amount
	}
	res := make([]CategoryShare, 0, len(top))
	for _, c := range top {
		cs := CategoryShare{CategoryAmount: c}
		if total > 0 {
			cs.Share = c.Amount * 100 / total
		}
		res = append(res, cs)
	}
	return res
}

type Comparison struct {
	Period  string             `json:"period"`
	Budgets []BudgetEvaluation `json:"budgets"`
	Summary BudgetSummary      `json:"summary"`
}

func BudgetComparison(txs []finance.Transaction, budgets []finance.Budget, p finance.Period) Comparison {
	expenses := FilterByType(FilterTransactions(txs, p), finance.Expense)
	evals := EvaluateBudgets(FilterBudgets(budgets, p), AggregateByCategory(expenses))
	return Comparison{
		Period:  p.Key(),
		Budgets: evals,
		Summary: SummarizeBudgets(evals),
	}
}
