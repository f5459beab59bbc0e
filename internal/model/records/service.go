package records

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/opentracing/opentracing-go"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"max.ks1230/finances-tracker/internal/entity/finance"
	"max.ks1230/finances-tracker/internal/logger"
)

type recordStore interface {
	CreateTransaction(ctx context.Context, tx finance.Transaction) error
	UpdateTransaction(ctx context.Context, tx finance.Transaction) error
	DeleteTransaction(ctx context.Context, id string) error
	GetTransaction(ctx context.Context, id string) (finance.Transaction, error)
	ListTransactions(ctx context.Context) ([]finance.Transaction, error)

	CreateBudget(ctx context.Context, b finance.Budget) error
	UpdateBudget(ctx context.Context, b finance.Budget) error
	DeleteBudget(ctx context.Context, id string) error
	GetBudget(ctx context.Context, id string) (finance.Budget, error)
	ListBudgets(ctx context.Context) ([]finance.Budget, error)
}

type reportCache interface {
	InvalidateReports(periods []string) error
}

type config interface {
	Location() *time.Location
}

type Service struct {
	store recordStore
	cache reportCache
	loc   *time.Location
	now   func() time.Time
	newID func() string
}

// NewService wires the records service. cache may be nil.
func NewService(store recordStore, cache reportCache, config config) *Service {
	return &Service{
		store: store,
		cache: cache,
		loc:   config.Location(),
		now:   time.Now,
		newID: uuid.NewString,
	}
}

// Now is the current time in the configured location.
func (s *Service) Now() time.Time {
	return s.now().In(s.loc)
}

func (s *Service) today() time.Time {
	return finance.DateOf(s.Now())
}

func (s *Service) AddTransaction(ctx context.Context, in TransactionInput) (finance.Transaction, error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, "addTransaction")
	defer span.Finish()

	if err := validateTransaction(in, s.today()); err != nil {
		return finance.Transaction{}, errors.Wrap(err, "add transaction")
	}

	stamp := s.now()
	tx := finance.Transaction{
		ID:          s.newID(),
		Amount:      in.Amount,
		Date:        finance.DateOf(in.Date),
		Description: strings.TrimSpace(in.Description),
		Type:        in.Type,
		Category:    strings.TrimSpace(in.Category),
		CreatedAt:   stamp,
		UpdatedAt:   stamp,
	}
	if err := s.store.CreateTransaction(ctx, tx); err != nil {
		return finance.Transaction{}, errors.Wrap(err, "add transaction")
	}
	observeOperation(transactionKind, opCreate)

	s.invalidate(affectedBy(tx.Period()))
	return tx, nil
}

// UpdateTransaction replaces every mutable field of the transaction.
func (s *Service) UpdateTransaction(ctx context.Context, id string, in TransactionInput) (finance.Transaction, error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, "updateTransaction")
	defer span.Finish()

	if err := validateTransaction(in, s.today()); err != nil {
		return finance.Transaction{}, errors.Wrap(err, "update transaction")
	}

	tx, err := s.store.GetTransaction(ctx, id)
	if err != nil {
		return finance.Transaction{}, errors.Wrap(err, "update transaction")
	}
	oldPeriod := tx.Period()

	tx.Amount = in.Amount
	tx.Date = finance.DateOf(in.Date)
	tx.Description = strings.TrimSpace(in.Description)
	tx.Type = in.Type
	tx.Category = strings.TrimSpace(in.Category)
	tx.UpdatedAt = s.now()

	if err = s.store.UpdateTransaction(ctx, tx); err != nil {
		return finance.Transaction{}, errors.Wrap(err, "update transaction")
	}
	observeOperation(transactionKind, opUpdate)

	s.invalidate(append(affectedBy(oldPeriod), affectedBy(tx.Period())...))
	return tx, nil
}

func (s *Service) DeleteTransaction(ctx context.Context, id string) error {
	span, ctx := opentracing.StartSpanFromContext(ctx, "deleteTransaction")
	defer span.Finish()

	tx, err := s.store.GetTransaction(ctx, id)
	if err != nil {
		return errors.Wrap(err, "delete transaction")
	}
	if err = s.store.DeleteTransaction(ctx, id); err != nil {
		return errors.Wrap(err, "delete transaction")
	}
	observeOperation(transactionKind, opDelete)

	s.invalidate(affectedBy(tx.Period()))
	return nil
}

func (s *Service) GetTransaction(ctx context.Context, id string) (finance.Transaction, error) {
	tx, err := s.store.GetTransaction(ctx, id)
	return tx, errors.Wrap(err, "get transaction")
}

type SortField string

const (
	SortByCreated SortField = ""
	SortByDate    SortField = "date"
	SortByAmount  SortField = "amount"
)

type Filter struct {
	Search string
	// Type is empty or "all" for both types.
	Type   finance.TransactionType
	SortBy SortField
}

func (s *Service) ListTransactions(ctx context.Context, filter Filter) ([]finance.Transaction, error) {
	txs, err := s.store.ListTransactions(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "list transactions")
	}
	return applyFilter(txs, filter), nil
}

func applyFilter(txs []finance.Transaction, filter Filter) []finance.Transaction {
	search := strings.ToLower(strings.TrimSpace(filter.Search))
	res := make([]finance.Transaction, 0, len(txs))
	for _, tx := range txs {
		if search != "" && !strings.Contains(strings.ToLower(tx.Description), search) {
			continue
		}
		if filter.Type.Valid() && tx.Type != filter.Type {
			continue
		}
		res = append(res, tx)
	}

	switch filter.SortBy {
	case SortByDate:
		sort.SliceStable(res, func(i, j int) bool {
			return res[i].Date.After(res[j].Date)
		})
	case SortByAmount:
		sort.SliceStable(res, func(i, j int) bool {
			return res[i].Amount > res[j].Amount
		})
	}
	return res
}

func (s *Service) AddBudget(ctx context.Context, in BudgetInput) (finance.Budget, error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, "addBudget")
	defer span.Finish()

	if err := validateBudget(in); err != nil {
		return finance.Budget{}, errors.Wrap(err, "add budget")
	}

	stamp := s.now()
	b := finance.Budget{
		ID:        s.newID(),
		Category:  strings.TrimSpace(in.Category),
		Amount:    in.Amount,
		Month:     in.Month,
		Year:      in.Year,
		CreatedAt: stamp,
		UpdatedAt: stamp,
	}
	if err := s.store.CreateBudget(ctx, b); err != nil {
		return finance.Budget{}, errors.Wrap(err, "add budget")
	}
	observeOperation(budgetKind, opCreate)

	s.invalidate(budgetPeriods(b))
	return b, nil
}

func (s *Service) UpdateBudget(ctx context.Context, id string, in BudgetInput) (finance.Budget, error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, "updateBudget")
	defer span.Finish()

	if err := validateBudget(in); err != nil {
		return finance.Budget{}, errors.Wrap(err, "update budget")
	}

	b, err := s.store.GetBudget(ctx, id)
	if err != nil {
		return finance.Budget{}, errors.Wrap(err, "update budget")
	}
	old := budgetPeriods(b)

	b.Category = strings.TrimSpace(in.Category)
	b.Amount = in.Amount
	b.Month = in.Month
	b.Year = in.Year
	b.UpdatedAt = s.now()

	if err = s.store.UpdateBudget(ctx, b); err != nil {
		return finance.Budget{}, errors.Wrap(err, "update budget")
	}
	observeOperation(budgetKind, opUpdate)

	s.invalidate(append(old, budgetPeriods(b)...))
	return b, nil
}

func (s *Service) DeleteBudget(ctx context.Context, id string) error {
	span, ctx := opentracing.StartSpanFromContext(ctx, "deleteBudget")
	defer span.Finish()

	b, err := s.store.GetBudget(ctx, id)
	if err != nil {
		return errors.Wrap(err, "delete budget")
	}
	if err = s.store.DeleteBudget(ctx, id); err != nil {
		return errors.Wrap(err, "delete budget")
	}
	observeOperation(budgetKind, opDelete)

	s.invalidate(budgetPeriods(b))
	return nil
}

func (s *Service) ListBudgets(ctx context.Context) ([]finance.Budget, error) {
	budgets, err := s.store.ListBudgets(ctx)
	return budgets, errors.Wrap(err, "list budgets")
}

// Snapshot returns every record, for the analytics views.
func (s *Service) Snapshot(ctx context.Context) ([]finance.Transaction, []finance.Budget, error) {
	txs, err := s.store.ListTransactions(ctx)
	if err != nil {
		return nil, nil, errors.Wrap(err, "snapshot")
	}
	budgets, err := s.store.ListBudgets(ctx)
	if err != nil {
		return nil, nil, errors.Wrap(err, "snapshot")
	}
	return txs, budgets, nil
}

// affectedBy lists the periods whose reports read transactions of p:
// p itself and the month after, which compares against p.
func affectedBy(p finance.Period) []string {
	return []string{p.Key(), p.Next().Key()}
}

func budgetPeriods(b finance.Budget) []string {
	if p, ok := b.Period(); ok {
		return []string{p.Key()}
	}
	return nil
}

func (s *Service) invalidate(periods []string) {
	if s.cache == nil || len(periods) == 0 {
		return
	}
	if err := s.cache.InvalidateReports(periods); err != nil {
		logger.Error("failed to invalidate report cache", zap.Error(err), zap.Strings("periods", periods))
	}
}
