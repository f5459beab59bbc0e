package reports

import (
	"context"
	"testing"
	"time"

	"github.com/gojuno/minimock/v3"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"max.ks1230/finances-tracker/internal/entity/finance"
	"max.ks1230/finances-tracker/internal/model/reports/mock"
)

type utcConfig struct{}

func (utcConfig) Location() *time.Location { return time.UTC }

var october = finance.Period{Year: 2025, Month: time.October}

func day(m time.Month, d int) time.Time {
	return time.Date(2025, m, d, 0, 0, 0, 0, time.UTC)
}

func sampleTransactions() []finance.Transaction {
	return []finance.Transaction{
		{Amount: 100, Category: "Food", Type: finance.Expense, Date: day(time.September, 20)},
		{Amount: 150, Category: "Food", Type: finance.Expense, Date: day(time.October, 2)},
		{Amount: 50, Category: "Travel", Type: finance.Expense, Date: day(time.October, 5)},
		{Amount: 1000, Category: "Salary", Type: finance.Income, Date: day(time.October, 1)},
	}
}

func sampleBudgets() []finance.Budget {
	return []finance.Budget{
		{Category: "Food", Amount: 200, Month: "10", Year: 2025},
		{Category: "Food", Amount: 999, Month: "09", Year: 2025},
	}
}

func newTestGenerator(storage reportStorage) *Generator {
	g := NewGenerator(utcConfig{}, storage)
	g.now = func() time.Time { return day(time.October, 10) }
	return g
}

func Test_OnGenerate_ShouldLoadPeriodWithPriorMonth(t *testing.T) {
	ctx := context.Background()
	m := minimock.NewController(t)
	defer m.Finish()

	storage := mock.NewReportStorageMock(m)
	storage.TransactionsBetweenMock.
		Expect(october.Previous().Start(), october.End()).
		Return(sampleTransactions(), nil).
		ListBudgetsMock.
		Return(sampleBudgets(), nil)

	report, err := newTestGenerator(storage).Generate(ctx, october)
	require.NoError(t, err)

	assert.Equal(t, 1000.0, report.Summary.TotalIncome)
	assert.Equal(t, 200.0, report.Summary.TotalExpenses)
	assert.Equal(t, 800.0, report.Summary.NetAmount)
	assert.Equal(t, 100.0, report.Summary.BudgetUsed)
	assert.Equal(t, 3, report.Summary.TransactionCount)

	require.Len(t, report.Breakdown, 2)
	assert.Equal(t, "Food", report.Breakdown[0].Category)
	assert.Equal(t, 75.0, report.Breakdown[0].Share)

	require.Len(t, report.Comparison.Budgets, 1)
	assert.Equal(t, 75.0, report.Comparison.Budgets[0].Percentage)

	assert.Equal(t, 100.0, report.Insights.ExpenseChange)
	assert.Equal(t, 20.0, report.Insights.DailyAverage)
	assert.Equal(t, 600.0, report.Insights.ProjectedMonthly)
	assert.Equal(t, 80.0, report.Insights.SavingsRate)
	assert.Len(t, report.Recommendations, 4)
}

func Test_OnGenerateReport_ShouldRenderText(t *testing.T) {
	ctx := context.Background()
	m := minimock.NewController(t)
	defer m.Finish()

	storage := mock.NewReportStorageMock(m)
	storage.TransactionsBetweenMock.
		Return(sampleTransactions(), nil).
		ListBudgetsMock.
		Return(sampleBudgets(), nil)

	result, err := newTestGenerator(storage).GenerateReport(ctx, 123, "2025-10")
	require.NoError(t, err)

	assert.True(t, result.Success())
	assert.Equal(t, int64(123), result.ChatID)
	assert.Equal(t, "2025-10", result.Period)
	assert.Contains(t, result.Text, "Report for Oct 2025")
	assert.Contains(t, result.Text, "Income: $1000.00")
	assert.Contains(t, result.Text, "Food: $150.00 (75.0%)")
	assert.Contains(t, result.Text, "🟢 Food: $150.00 of $200.00 (75%)")
	assert.Contains(t, result.Text, "Change vs last month: +100.0%")
	assert.Contains(t, result.Text, "Savings rate: 80.0% (good)")
}

func Test_OnMalformedPeriod_ShouldReturnFailedResult(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()

	result, err := newTestGenerator(mock.NewReportStorageMock(m)).GenerateReport(context.Background(), 7, "10.2025")

	assert.Error(t, err)
	assert.False(t, result.Success())
	assert.Equal(t, int64(7), result.ChatID)
	assert.Equal(t, "10.2025", result.Period)
}

func Test_OnStorageFailure_ShouldReturnFailedResult(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()

	storage := mock.NewReportStorageMock(m)
	storage.TransactionsBetweenMock.Return(nil, errors.New("connection refused"))

	result, err := newTestGenerator(storage).GenerateReport(context.Background(), 7, "2025-10")

	assert.Error(t, err)
	assert.Contains(t, result.Error, "connection refused")
	assert.Empty(t, result.Text)
}

func Test_OnEmptyPeriod_ShouldRenderNoDataMessage(t *testing.T) {
	report := Build(nil, nil, october, day(time.October, 10))

	assert.Equal(t, "No transactions or budgets recorded for Oct 2025", Format(report))
}
