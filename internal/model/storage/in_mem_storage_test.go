package storage

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"max.ks1230/finances-tracker/internal/entity/finance"
	"max.ks1230/finances-tracker/internal/model/customerr"
)

func newTx(id string, amount float64, date, created time.Time) finance.Transaction {
	return finance.Transaction{
		ID:        id,
		Amount:    amount,
		Date:      date,
		Type:      finance.Expense,
		Category:  "Food",
		CreatedAt: created,
		UpdatedAt: created,
	}
}

func Test_OnTransactionCRUD_ShouldRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := NewInMemStorage()
	created := time.Date(2025, time.May, 1, 10, 0, 0, 0, time.UTC)
	tx := newTx("1", 10, finance.DateOf(created), created)

	require.NoError(t, s.CreateTransaction(ctx, tx))

	got, err := s.GetTransaction(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, tx, got)

	tx.Amount = 25
	require.NoError(t, s.UpdateTransaction(ctx, tx))
	got, _ = s.GetTransaction(ctx, "1")
	assert.Equal(t, 25.0, got.Amount)

	require.NoError(t, s.DeleteTransaction(ctx, "1"))
	_, err = s.GetTransaction(ctx, "1")
	assert.True(t, customerr.IsNotFound(err))
}

func Test_OnUnknownIDs_ShouldReturnNotFound(t *testing.T) {
	ctx := context.Background()
	s := NewInMemStorage()

	assert.True(t, customerr.IsNotFound(s.UpdateTransaction(ctx, finance.Transaction{ID: "x"})))
	assert.True(t, customerr.IsNotFound(s.DeleteTransaction(ctx, "x")))
	assert.True(t, customerr.IsNotFound(s.UpdateBudget(ctx, finance.Budget{ID: "x"})))
	assert.True(t, customerr.IsNotFound(s.DeleteBudget(ctx, "x")))
	_, err := s.GetBudget(ctx, "x")
	assert.True(t, customerr.IsNotFound(err))
}

func Test_OnListTransactions_ShouldReturnNewestFirst(t *testing.T) {
	ctx := context.Background()
	s := NewInMemStorage()
	base := time.Date(2025, time.May, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, s.CreateTransaction(ctx, newTx("a", 1, base, base)))
	require.NoError(t, s.CreateTransaction(ctx, newTx("b", 2, base, base.Add(time.Hour))))
	require.NoError(t, s.CreateTransaction(ctx, newTx("c", 3, base, base.Add(-time.Hour))))

	txs, err := s.ListTransactions(ctx)
	require.NoError(t, err)

	require.Len(t, txs, 3)
	assert.Equal(t, "b", txs[0].ID)
	assert.Equal(t, "a", txs[1].ID)
	assert.Equal(t, "c", txs[2].ID)
}

func Test_OnListTransactions_ShouldReturnCopy(t *testing.T) {
	ctx := context.Background()
	s := NewInMemStorage()
	base := time.Date(2025, time.May, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, s.CreateTransaction(ctx, newTx("a", 1, base, base)))

	txs, _ := s.ListTransactions(ctx)
	txs[0].Amount = 1000

	got, _ := s.GetTransaction(ctx, "a")
	assert.Equal(t, 1.0, got.Amount)
}

func Test_OnTransactionsBetween_ShouldIncludeBounds(t *testing.T) {
	ctx := context.Background()
	s := NewInMemStorage()
	p := finance.Period{Year: 2025, Month: time.May}
	created := time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, s.CreateTransaction(ctx, newTx("first", 1, p.Start(), created)))
	require.NoError(t, s.CreateTransaction(ctx, newTx("last", 1, time.Date(2025, time.May, 31, 0, 0, 0, 0, time.UTC), created)))
	require.NoError(t, s.CreateTransaction(ctx, newTx("before", 1, time.Date(2025, time.April, 30, 0, 0, 0, 0, time.UTC), created)))
	require.NoError(t, s.CreateTransaction(ctx, newTx("after", 1, time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC), created)))

	txs, err := s.TransactionsBetween(ctx, p.Start(), p.End())
	require.NoError(t, err)

	ids := []string{txs[0].ID, txs[1].ID}
	assert.ElementsMatch(t, []string{"first", "last"}, ids)
	assert.Len(t, txs, 2)
}

func Test_OnListBudgets_ShouldSortByPeriodDescending(t *testing.T) {
	ctx := context.Background()
	s := NewInMemStorage()
	require.NoError(t, s.CreateBudget(ctx, finance.Budget{ID: "1", Category: "A", Month: "02", Year: 2025}))
	require.NoError(t, s.CreateBudget(ctx, finance.Budget{ID: "2", Category: "A", Month: "11", Year: 2024}))
	require.NoError(t, s.CreateBudget(ctx, finance.Budget{ID: "3", Category: "A", Month: "10", Year: 2025}))

	budgets, err := s.ListBudgets(ctx)
	require.NoError(t, err)

	require.Len(t, budgets, 3)
	assert.Equal(t, "3", budgets[0].ID)
	assert.Equal(t, "1", budgets[1].ID)
	assert.Equal(t, "2", budgets[2].ID)
}

func Test_OnConcurrentWrites_ShouldKeepEveryRecord(t *testing.T) {
	ctx := context.Background()
	s := NewInMemStorage()
	base := time.Date(2025, time.May, 1, 0, 0, 0, 0, time.UTC)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			id := string(rune('A' + i))
			_ = s.CreateTransaction(ctx, newTx(id, 1, base, base))
			_, _ = s.ListTransactions(ctx)
		}(i)
	}
	wg.Wait()

	txs, _ := s.ListTransactions(ctx)
	assert.Len(t, txs, 50)
}

func Test_OnOpenMemoryBackend_ShouldReturnInMemStorage(t *testing.T) {
	s, err := Open(MemoryBackend, nil)
	require.NoError(t, err)
	defer s.Close()
	assert.IsType(t, &InMemStorage{}, s)

	_, err = Open("sqlite", nil)
	assert.Error(t, err)
}
