package analytics

import (
	"time"

	"max.ks1230/finances-tracker/internal/entity/finance"
)

type SavingsTier string

const (
	SavingsGood SavingsTier = "good"
	SavingsFair SavingsTier = "fair"
	SavingsPoor SavingsTier = "poor"
)

const (
	// SavingsGoodThreshold and SavingsFairThreshold are savings rates in percent.
	SavingsGoodThreshold = 20.0
	SavingsFairThreshold = 10.0

	// ExpenseIncreaseThreshold is the month over month growth, in percent,
	// above which spending is called out.
	ExpenseIncreaseThreshold = 10.0

	ProjectionDays     = 30
	TopCategoriesLimit = 3
)

func TierOf(savingsRate float64) SavingsTier {
	switch {
	case savingsRate >= SavingsGoodThreshold:
		return SavingsGood
	case savingsRate >= SavingsFairThreshold:
		return SavingsFair
	}
	return SavingsPoor
}

func (t SavingsTier) Color() string {
	switch t {
	case SavingsGood:
		return "green"
	case SavingsFair:
		return "yellow"
	}
	return "red"
}

type Insights struct {
	ExpenseChange    float64            `json:"expenseChange"`
	DailyAverage     float64            `json:"dailyAverage"`
	ProjectedMonthly float64            `json:"projectedMonthly"`
	SavingsRate      float64            `json:"savingsRate"`
	SavingsTier      SavingsTier        `json:"savingsTier"`
	BudgetAlerts     []BudgetEvaluation `json:"budgetAlerts"`
	TopCategories    []CategoryAmount   `json:"topCategories"`
	CurrentExpenses  float64            `json:"currentMonthExpenses"`
	PriorExpenses    float64            `json:"lastMonthExpenses"`
	CurrentIncome    float64            `json:"currentMonthIncome"`
}

// BuildInsights compares the current period with the prior one. Both slices must
// already be filtered to their periods, evals must belong to the current period.
//
// The daily average divides by the day of month of now rather than by the days
// in the month, and the projection is a flat 30 days.
func BuildInsights(current, prior []finance.Transaction, evals []BudgetEvaluation, now time.Time) Insights {
	curExpenses := FilterByType(current, finance.Expense)

	ins := Insights{
		CurrentExpenses: sumAmounts(curExpenses),
		PriorExpenses:   totalOf(prior, finance.Expense),
		CurrentIncome:   totalOf(current, finance.Income),
		BudgetAlerts:    Alerts(evals),
		TopCategories:   TopCategories(AggregateByCategory(curExpenses), TopCategoriesLimit),
	}

	if ins.PriorExpenses > 0 {
		ins.ExpenseChange = (ins.CurrentExpenses - ins.PriorExpenses) * 100 / ins.PriorExpenses
	}
	if day := now.Day(); day > 0 {
		ins.DailyAverage = ins.CurrentExpenses / float64(day)
	}
	ins.ProjectedMonthly = ins.DailyAverage * ProjectionDays
	if ins.CurrentIncome > 0 {
		ins.SavingsRate = (ins.CurrentIncome - ins.CurrentExpenses) * 100 / ins.CurrentIncome
	}
	ins.SavingsTier = TierOf(ins.SavingsRate)
	return ins
}

// Analyze runs the whole pipeline for period p over an unfiltered snapshot.
func Analyze(txs []finance.Transaction, budgets []finance.Budget, p finance.Period, now time.Time) Insights {
	current := FilterTransactions(txs, p)
	prior := FilterTransactions(txs, p.Previous())
	evals := EvaluateBudgets(FilterBudgets(budgets, p), AggregateByCategory(FilterByType(current, finance.Expense)))
	return BuildInsights(current, prior, evals, ReferenceDay(p, now))
}

// ReferenceDay picks the day used for run-rate math in p: now itself for the
// current month, the last day for past months and the first day for future ones.
func ReferenceDay(p finance.Period, now time.Time) time.Time {
	np := finance.PeriodOf(now)
	switch {
	case np == p:
		return now
	case p.Before(np):
		return p.End()
	}
	return p.Start()
}
