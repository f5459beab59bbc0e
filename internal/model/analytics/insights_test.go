package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"max.ks1230/finances-tracker/internal/entity/finance"
)

var refNow = time.Date(2025, time.October, 10, 15, 30, 0, 0, time.UTC)

func Test_OnTwoExpensesNoBudgets_ShouldListTopCategoriesWithoutAlerts(t *testing.T) {
	txs := []finance.Transaction{
		expense(100, "catA", day(2025, time.October, 2)),
		expense(50, "catB", day(2025, time.October, 3)),
	}

	ins := Analyze(txs, nil, finance.PeriodOf(refNow), refNow)

	assert.Empty(t, ins.BudgetAlerts)
	assert.Equal(t, []CategoryAmount{
		{Category: "catA", Amount: 100, Count: 1},
		{Category: "catB", Amount: 50, Count: 1},
	}, ins.TopCategories)
}

func Test_OnNoPriorExpenses_ShouldReportZeroChange(t *testing.T) {
	current := []finance.Transaction{expense(500, "A", day(2025, time.October, 1))}

	ins := BuildInsights(current, nil, nil, refNow)

	assert.Equal(t, 0.0, ins.ExpenseChange)
	assert.Equal(t, 500.0, ins.CurrentExpenses)
}

func Test_OnPriorExpenses_ShouldComputeChange(t *testing.T) {
	current := []finance.Transaction{expense(150, "A", day(2025, time.October, 1))}
	prior := []finance.Transaction{
		expense(100, "A", day(2025, time.September, 1)),
		income(1000, "Salary", day(2025, time.September, 1)),
	}

	ins := BuildInsights(current, prior, nil, refNow)

	assert.Equal(t, 50.0, ins.ExpenseChange)
	assert.Equal(t, 100.0, ins.PriorExpenses)
}

func Test_OnNoIncome_ShouldReportZeroSavingsRate(t *testing.T) {
	current := []finance.Transaction{expense(150, "A", day(2025, time.October, 1))}

	ins := BuildInsights(current, nil, nil, refNow)

	assert.Equal(t, 0.0, ins.SavingsRate)
	assert.Equal(t, SavingsPoor, ins.SavingsTier)
}

func Test_OnIncomeAndExpenses_ShouldComputeSavingsRate(t *testing.T) {
	current := []finance.Transaction{
		income(2000, "Salary", day(2025, time.October, 1)),
		expense(1500, "Rent", day(2025, time.October, 1)),
	}

	ins := BuildInsights(current, nil, nil, refNow)

	assert.Equal(t, 25.0, ins.SavingsRate)
	assert.Equal(t, SavingsGood, ins.SavingsTier)
	assert.Equal(t, 2000.0, ins.CurrentIncome)
}

func Test_OnRunRate_ShouldUseDayOfMonthAndFlatThirtyDays(t *testing.T) {
	current := []finance.Transaction{expense(300, "A", day(2025, time.October, 1))}

	ins := BuildInsights(current, nil, nil, refNow)

	assert.Equal(t, 30.0, ins.DailyAverage)
	assert.Equal(t, 900.0, ins.ProjectedMonthly)
}

func Test_OnSavingsTier_ShouldRespectBoundaries(t *testing.T) {
	assert.Equal(t, SavingsGood, TierOf(SavingsGoodThreshold))
	assert.Equal(t, SavingsFair, TierOf(SavingsGoodThreshold-0.01))
	assert.Equal(t, SavingsFair, TierOf(SavingsFairThreshold))
	assert.Equal(t, SavingsPoor, TierOf(SavingsFairThreshold-0.01))
	assert.Equal(t, SavingsPoor, TierOf(-40))

	assert.Equal(t, "green", SavingsGood.Color())
	assert.Equal(t, "yellow", SavingsFair.Color())
	assert.Equal(t, "red", SavingsPoor.Color())
}

func Test_OnAnalyzeInJanuary_ShouldCompareWithDecember(t *testing.T) {
	now := time.Date(2026, time.January, 5, 9, 0, 0, 0, time.UTC)
	txs := []finance.Transaction{
		expense(200, "A", day(2026, time.January, 2)),
		expense(100, "A", day(2025, time.December, 20)),
		expense(999, "A", day(2025, time.January, 20)),
	}

	ins := Analyze(txs, nil, finance.PeriodOf(now), now)

	assert.Equal(t, 100.0, ins.PriorExpenses)
	assert.Equal(t, 100.0, ins.ExpenseChange)
	assert.Equal(t, 40.0, ins.DailyAverage)
}

func Test_OnAnalyzeWithBudgets_ShouldRaiseAlerts(t *testing.T) {
	p := finance.PeriodOf(refNow)
	txs := []finance.Transaction{
		expense(120, "catA", day(2025, time.October, 2)),
		expense(85, "catB", day(2025, time.October, 2)),
		expense(10, "catC", day(2025, time.October, 2)),
	}
	budgets := []finance.Budget{
		budget("catA", 100, p),
		budget("catB", 100, p),
		budget("catC", 100, p),
		budget("catA", 1000, p.Previous()),
	}

	ins := Analyze(txs, budgets, p, refNow)

	require.Len(t, ins.BudgetAlerts, 2)
	assert.Equal(t, "catA", ins.BudgetAlerts[0].Category)
	assert.Equal(t, StatusOver, ins.BudgetAlerts[0].Status)
	assert.Equal(t, "catB", ins.BudgetAlerts[1].Category)
	assert.Equal(t, StatusWarning, ins.BudgetAlerts[1].Status)
}

func Test_OnAnalyzePastPeriod_ShouldUseLastDayForRunRate(t *testing.T) {
	txs := []finance.Transaction{expense(300, "A", day(2025, time.September, 3))}

	ins := Analyze(txs, nil, finance.Period{Year: 2025, Month: time.September}, refNow)

	assert.Equal(t, 10.0, ins.DailyAverage)
	assert.Equal(t, 300.0, ins.ProjectedMonthly)
}

func Test_OnInputs_ShouldNotBeMutated(t *testing.T) {
	txs := []finance.Transaction{
		expense(50, "B", day(2025, time.October, 2)),
		expense(100, "A", day(2025, time.October, 1)),
	}
	budgets := []finance.Budget{budget("A", 10, finance.PeriodOf(refNow))}
	txsCopy := append([]finance.Transaction(nil), txs...)
	budgetsCopy := append([]finance.Budget(nil), budgets...)

	_ = Analyze(txs, budgets, finance.PeriodOf(refNow), refNow)

	assert.Equal(t, txsCopy, txs)
	assert.Equal(t, budgetsCopy, budgets)
}

func Test_OnRecommendations_ShouldFollowThresholds(t *testing.T) {
	kinds := func(recs []Recommendation) []RecommendationKind {
		res := make([]RecommendationKind, 0, len(recs))
		for _, r := range recs {
			res = append(res, r.Kind)
		}
		return res
	}

	poor := Insights{
		ExpenseChange: 25,
		SavingsRate:   5,
		BudgetAlerts:  []BudgetEvaluation{{Category: "A", Status: StatusOver}},
	}
	assert.Equal(t, []RecommendationKind{
		KindSpendingIncrease, KindLowSavings, KindBudgetAlerts, KindProjection, KindAutoTransfer,
	}, kinds(Recommendations(poor)))

	good := Insights{ExpenseChange: ExpenseIncreaseThreshold, SavingsRate: SavingsGoodThreshold}
	assert.Equal(t, []RecommendationKind{
		KindProjection, KindGreatSavings, KindAutoTransfer,
	}, kinds(Recommendations(good)))

	fair := Insights{SavingsRate: 15, DailyAverage: 12.5, ProjectedMonthly: 375}
	recs := Recommendations(fair)
	assert.Equal(t, []RecommendationKind{KindProjection, KindAutoTransfer}, kinds(recs))
	assert.Contains(t, recs[0].Text, "$12.50")
	assert.Contains(t, recs[0].Text, "$375.00")
}
