package records

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/gojuno/minimock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"max.ks1230/finances-tracker/internal/entity/finance"
	"max.ks1230/finances-tracker/internal/model/customerr"
	"max.ks1230/finances-tracker/internal/model/records/mock"
	"max.ks1230/finances-tracker/internal/model/storage"
)

type utcConfig struct{}

func (utcConfig) Location() *time.Location { return time.UTC }

var fixedNow = time.Date(2025, time.October, 10, 12, 0, 0, 0, time.UTC)

func newTestService(cache reportCache) *Service {
	s := NewService(storage.NewInMemStorage(), cache, utcConfig{})
	s.now = func() time.Time { return fixedNow }
	ids := 0
	s.newID = func() string {
		ids++
		return "id-" + string(rune('0'+ids))
	}
	return s
}

func validInput() TransactionInput {
	return TransactionInput{
		Amount:      42.5,
		Date:        time.Date(2025, time.October, 3, 0, 0, 0, 0, time.UTC),
		Description: " Groceries ",
		Type:        finance.Expense,
		Category:    "Food & Dining",
	}
}

func Test_OnAddTransaction_ShouldStampAndInvalidateReports(t *testing.T) {
	ctx := context.Background()
	m := minimock.NewController(t)
	defer m.Finish()
	cache := mock.NewReportCacheMock(m)
	cache.InvalidateReportsMock.Expect([]string{"2025-10", "2025-11"}).Return(nil)

	s := newTestService(cache)
	tx, err := s.AddTransaction(ctx, validInput())

	require.NoError(t, err)
	assert.Equal(t, "id-1", tx.ID)
	assert.Equal(t, "Groceries", tx.Description)
	assert.Equal(t, fixedNow, tx.CreatedAt)
	assert.Equal(t, fixedNow, tx.UpdatedAt)

	stored, err := s.GetTransaction(ctx, tx.ID)
	require.NoError(t, err)
	assert.Equal(t, tx, stored)
}

func Test_OnInvalidTransaction_ShouldRejectBeforeStoring(t *testing.T) {
	ctx := context.Background()
	s := newTestService(nil)

	cases := map[string]func(in *TransactionInput){
		"zero amount":     func(in *TransactionInput) { in.Amount = 0 },
		"negative amount": func(in *TransactionInput) { in.Amount = -3 },
		"blank desc":      func(in *TransactionInput) { in.Description = "   " },
		"long desc":       func(in *TransactionInput) { in.Description = strings.Repeat("a", 101) },
		"no date":         func(in *TransactionInput) { in.Date = time.Time{} },
		"future date":     func(in *TransactionInput) { in.Date = fixedNow.AddDate(0, 0, 1) },
		"bad type":        func(in *TransactionInput) { in.Type = "transfer" },
		"no category":     func(in *TransactionInput) { in.Category = "" },
	}
	for name, mutate := range cases {
		in := validInput()
		mutate(&in)
		_, err := s.AddTransaction(ctx, in)
		assert.True(t, customerr.IsValidation(err), name)
	}

	txs, err := s.ListTransactions(ctx, Filter{})
	require.NoError(t, err)
	assert.Empty(t, txs)
}

func Test_OnBoundaryInput_ShouldAccept(t *testing.T) {
	ctx := context.Background()
	s := newTestService(nil)
	in := validInput()
	in.Description = strings.Repeat("é", MaxDescriptionLength)
	in.Date = fixedNow

	_, err := s.AddTransaction(ctx, in)

	assert.NoError(t, err)
}

func Test_OnUpdateTransaction_ShouldReplaceFieldsAndInvalidateBothPeriods(t *testing.T) {
	ctx := context.Background()
	m := minimock.NewController(t)
	defer m.Finish()
	cache := mock.NewReportCacheMock(m)
	cache.InvalidateReportsMock.Return(nil)

	s := newTestService(cache)
	tx, err := s.AddTransaction(ctx, validInput())
	require.NoError(t, err)

	later := fixedNow.Add(time.Hour)
	s.now = func() time.Time { return later }
	in := validInput()
	in.Amount = 10
	in.Type = finance.Income
	in.Category = "Salary"
	in.Date = time.Date(2025, time.August, 30, 0, 0, 0, 0, time.UTC)

	updated, err := s.UpdateTransaction(ctx, tx.ID, in)
	require.NoError(t, err)

	assert.Equal(t, tx.ID, updated.ID)
	assert.Equal(t, 10.0, updated.Amount)
	assert.Equal(t, finance.Income, updated.Type)
	assert.Equal(t, fixedNow, updated.CreatedAt)
	assert.Equal(t, later, updated.UpdatedAt)

	calls := cache.InvalidateReportsMock.Calls()
	require.Len(t, calls, 2)
	assert.Equal(t, []string{"2025-10", "2025-11", "2025-08", "2025-09"}, calls[1])
}

func Test_OnUnknownTransaction_ShouldReturnNotFound(t *testing.T) {
	ctx := context.Background()
	s := newTestService(nil)

	_, err := s.UpdateTransaction(ctx, "missing", validInput())
	assert.True(t, customerr.IsNotFound(err))

	err = s.DeleteTransaction(ctx, "missing")
	assert.True(t, customerr.IsNotFound(err))
}

func Test_OnDeleteTransaction_ShouldRemoveIt(t *testing.T) {
	ctx := context.Background()
	s := newTestService(nil)
	tx, err := s.AddTransaction(ctx, validInput())
	require.NoError(t, err)

	require.NoError(t, s.DeleteTransaction(ctx, tx.ID))

	_, err = s.GetTransaction(ctx, tx.ID)
	assert.True(t, customerr.IsNotFound(err))
}

func Test_OnListTransactions_ShouldSearchFilterAndSort(t *testing.T) {
	ctx := context.Background()
	s := newTestService(nil)

	add := func(desc string, amount float64, typ finance.TransactionType, d int) {
		in := validInput()
		in.Description, in.Amount, in.Type = desc, amount, typ
		in.Date = time.Date(2025, time.October, d, 0, 0, 0, 0, time.UTC)
		_, err := s.AddTransaction(ctx, in)
		require.NoError(t, err)
	}
	add("Coffee beans", 15, finance.Expense, 2)
	add("Monthly salary", 3000, finance.Income, 1)
	add("coffee shop", 4, finance.Expense, 5)

	txs, err := s.ListTransactions(ctx, Filter{Search: "COFFEE", SortBy: SortByDate})
	require.NoError(t, err)
	require.Len(t, txs, 2)
	assert.Equal(t, "coffee shop", txs[0].Description)

	txs, _ = s.ListTransactions(ctx, Filter{Type: finance.Expense, SortBy: SortByAmount})
	require.Len(t, txs, 2)
	assert.Equal(t, 15.0, txs[0].Amount)

	txs, _ = s.ListTransactions(ctx, Filter{Type: "all", SortBy: SortByAmount})
	require.Len(t, txs, 3)
	assert.Equal(t, 3000.0, txs[0].Amount)
}

func Test_OnBudgets_ShouldValidateAndInvalidatePeriod(t *testing.T) {
	ctx := context.Background()
	m := minimock.NewController(t)
	defer m.Finish()
	cache := mock.NewReportCacheMock(m)
	cache.InvalidateReportsMock.Expect([]string{"2025-10"}).Return(nil)

	s := newTestService(cache)
	b, err := s.AddBudget(ctx, BudgetInput{Category: "Food", Amount: 300, Month: "10", Year: 2025})
	require.NoError(t, err)
	assert.Equal(t, "Food", b.Category)

	for _, in := range []BudgetInput{
		{Category: "", Amount: 1, Month: "10", Year: 2025},
		{Category: "Food", Amount: 0, Month: "10", Year: 2025},
		{Category: "Food", Amount: 1, Month: "13", Year: 2025},
		{Category: "Food", Amount: 1, Month: "1", Year: 2025},
		{Category: "Food", Amount: 1, Month: "10", Year: 0},
	} {
		_, err = s.AddBudget(ctx, in)
		assert.True(t, customerr.IsValidation(err), in)
	}

	budgets, err := s.ListBudgets(ctx)
	require.NoError(t, err)
	assert.Len(t, budgets, 1)
}

func Test_OnUpdateAndDeleteBudget_ShouldPersist(t *testing.T) {
	ctx := context.Background()
	s := newTestService(nil)
	b, err := s.AddBudget(ctx, BudgetInput{Category: "Food", Amount: 300, Month: "10", Year: 2025})
	require.NoError(t, err)

	updated, err := s.UpdateBudget(ctx, b.ID, BudgetInput{Category: "Travel", Amount: 500, Month: "11", Year: 2025})
	require.NoError(t, err)
	assert.Equal(t, "Travel", updated.Category)
	assert.Equal(t, "11", updated.Month)

	require.NoError(t, s.DeleteBudget(ctx, b.ID))
	assert.True(t, customerr.IsNotFound(s.DeleteBudget(ctx, b.ID)))
}

func Test_OnCategories_ShouldReturnSuggestions(t *testing.T) {
	assert.Len(t, Categories(""), 2)
	assert.Equal(t, finance.ExpenseCategories, Categories(finance.Expense)[finance.Expense])
}
