package storage

import (
	"context"
	"sort"
	"sync"
	"time"

	"max.ks1230/finances-tracker/internal/entity/finance"
	"max.ks1230/finances-tracker/internal/model/customerr"
)

type InMemStorage struct {
	mu           sync.RWMutex
	transactions map[string]finance.Transaction
	budgets      map[string]finance.Budget
}

func NewInMemStorage() *InMemStorage {
	return &InMemStorage{
		transactions: make(map[string]finance.Transaction),
		budgets:      make(map[string]finance.Budget),
	}
}

func (s *InMemStorage) Close() {}

func (s *InMemStorage) CreateTransaction(_ context.Context, tx finance.Transaction) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.transactions[tx.ID] = tx
	return nil
}

func (s *InMemStorage) UpdateTransaction(_ context.Context, tx finance.Transaction) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.transactions[tx.ID]; !ok {
		return &customerr.NotFoundError{Kind: transactionKind, ID: tx.ID}
	}
	s.transactions[tx.ID] = tx
	return nil
}

func (s *InMemStorage) DeleteTransaction(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.transactions[id]; !ok {
		return &customerr.NotFoundError{Kind: transactionKind, ID: id}
	}
	delete(s.transactions, id)
	return nil
}

func (s *InMemStorage) GetTransaction(_ context.Context, id string) (finance.Transaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	tx, ok := s.transactions[id]
	if !ok {
		return finance.Transaction{}, &customerr.NotFoundError{Kind: transactionKind, ID: id}
	}
	return tx, nil
}

func (s *InMemStorage) ListTransactions(_ context.Context) ([]finance.Transaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	res := make([]finance.Transaction, 0, len(s.transactions))
	for _, tx := range s.transactions {
		res = append(res, tx)
	}
	sortByCreated(res)
	return res, nil
}

// TransactionsBetween returns transactions dated within [from, to].
func (s *InMemStorage) TransactionsBetween(_ context.Context, from, to time.Time) ([]finance.Transaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	res := make([]finance.Transaction, 0)
	for _, tx := range s.transactions {
		if !tx.Date.Before(from) && !tx.Date.After(to) {
			res = append(res, tx)
		}
	}
	sortByCreated(res)
	return res, nil
}

func (s *InMemStorage) CreateBudget(_ context.Context, b finance.Budget) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.budgets[b.ID] = b
	return nil
}

func (s *InMemStorage) UpdateBudget(_ context.Context, b finance.Budget) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.budgets[b.ID]; !ok {
		return &customerr.NotFoundError{Kind: budgetKind, ID: b.ID}
	}
	s.budgets[b.ID] = b
	return nil
}

func (s *InMemStorage) DeleteBudget(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.budgets[id]; !ok {
		return &customerr.NotFoundError{Kind: budgetKind, ID: id}
	}
	delete(s.budgets, id)
	return nil
}

func (s *InMemStorage) GetBudget(_ context.Context, id string) (finance.Budget, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	b, ok := s.budgets[id]
	if !ok {
		return finance.Budget{}, &customerr.NotFoundError{Kind: budgetKind, ID: id}
	}
	return b, nil
}

func (s *InMemStorage) ListBudgets(_ context.Context) ([]finance.Budget, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	res := make([]finance.Budget, 0, len(s.budgets))
	for _, b := range s.budgets {
		res = append(res, b)
	}
	sort.Slice(res, func(i, j int) bool {
		if res[i].Year != res[j].Year {
			return res[i].Year > res[j].Year
		}
		if res[i].Month != res[j].Month {
			return res[i].Month > res[j].Month
		}
		return res[i].Category < res[j].Category
	})
	return res, nil
}

func sortByCreated(txs []finance.Transaction) {
	sort.Slice(txs, func(i, j int) bool {
		if !txs[i].CreatedAt.Equal(txs[j].CreatedAt) {
			return txs[i].CreatedAt.After(txs[j].CreatedAt)
		}
		return txs[i].ID < txs[j].ID
	})
}
