package storage

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"max.ks1230/finances-tracker/internal/entity/finance"
)

const (
	transactionKind = "transaction"
	budgetKind      = "budget"

	MemoryBackend   = "memory"
	PostgresBackend = "postgres"
)

// Storage is the ledger of transactions and budgets.
type Storage interface {
	CreateTransaction(ctx context.Context, tx finance.Transaction) error
	UpdateTransaction(ctx context.Context, tx finance.Transaction) error
	DeleteTransaction(ctx context.Context, id string) error
	GetTransaction(ctx context.Context, id string) (finance.Transaction, error)
	ListTransactions(ctx context.Context) ([]finance.Transaction, error)
	TransactionsBetween(ctx context.Context, from, to time.Time) ([]finance.Transaction, error)

	CreateBudget(ctx context.Context, b finance.Budget) error
	UpdateBudget(ctx context.Context, b finance.Budget) error
	DeleteBudget(ctx context.Context, id string) error
	GetBudget(ctx context.Context, id string) (finance.Budget, error)
	ListBudgets(ctx context.Context) ([]finance.Budget, error)

	Close()
}

// Open returns the storage of the given backend.
func Open(backend string, pg config) (Storage, error) {
	switch backend {
	case MemoryBackend:
		return NewInMemStorage(), nil
	case PostgresBackend:
		db, err := NewPostgresStorage(pg)
		if err != nil {
			return nil, err
		}
		return db, nil
	}
	return nil, errors.Errorf("unknown storage backend %q", backend)
}
