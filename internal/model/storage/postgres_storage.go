package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	// postgres driver
	_ "github.com/lib/pq"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"max.ks1230/finances-tracker/internal/entity/finance"
	"max.ks1230/finances-tracker/internal/logger"
	"max.ks1230/finances-tracker/internal/model/customerr"
)

const dsnTemplate = "user=%s password=%s host=%s dbname=%s sslmode=disable"

const (
	transactionsTable = "transactions"
	budgetsTable      = "budgets"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var transactionColumns = []string{"id", "amount", "date", "description", "type", "category", "created_at", "updated_at"}

var budgetColumns = []string{"id", "category", "amount", "month", "year", "created_at", "updated_at"}

type config interface {
	Host() string
	Username() string
	Password() string
	Database() string
	RunMigrations() bool
}

type PostgresStorage struct {
	db *sql.DB
}

func NewPostgresStorage(config config) (*PostgresStorage, error) {
	db, err := sql.Open("postgres", fmt.Sprintf(dsnTemplate,
		config.Username(),
		config.Password(),
		config.Host(),
		config.Database()))
	if err != nil {
		return nil, errors.Wrap(err, "cannot connect to database")
	}
	if err = db.Ping(); err != nil {
		return nil, errors.Wrap(err, "cannot connect to database")
	}
	if config.RunMigrations() {
		if err = RunMigrations(db); err != nil {
			return nil, errors.Wrap(err, "cannot migrate database")
		}
	}
	return &PostgresStorage{db}, nil
}

func (s *PostgresStorage) Close() {
	if err := s.db.Close(); err != nil {
		logger.Error("failed to close database", zap.Error(err))
	}
}

func (s *PostgresStorage) CreateTransaction(ctx context.Context, tx finance.Transaction) error {
	query := psql.Insert(transactionsTable).
		Columns(transactionColumns...).
		Values(tx.ID, tx.Amount, tx.Date, tx.Description, string(tx.Type), tx.Category, tx.CreatedAt, tx.UpdatedAt)

	_, err := query.RunWith(s.db).ExecContext(ctx)
	return errors.Wrap(err, "create transaction")
}

func (s *PostgresStorage) UpdateTransaction(ctx context.Context, tx finance.Transaction) error {
	query := psql.Update(transactionsTable).
		SetMap(map[string]interface{}{
			"amount":      tx.Amount,
			"date":        tx.Date,
			"description": tx.Description,
			"type":        string(tx.Type),
			"category":    tx.Category,
			"updated_at":  tx.UpdatedAt,
		}).
		Where(sq.Eq{"id": tx.ID})

	res, err := query.RunWith(s.db).ExecContext(ctx)
	if err != nil {
		return errors.Wrap(err, "update transaction")
	}
	return ensureAffected(res, transactionKind, tx.ID)
}

func (s *PostgresStorage) DeleteTransaction(ctx context.Context, id string) error {
	res, err := psql.Delete(transactionsTable).
		Where(sq.Eq{"id": id}).
		RunWith(s.db).
		ExecContext(ctx)
	if err != nil {
		return errors.Wrap(err, "delete transaction")
	}
	return ensureAffected(res, transactionKind, id)
}

func (s *PostgresStorage) GetTransaction(ctx context.Context, id string) (finance.Transaction, error) {
	query := psql.Select(transactionColumns...).
		From(transactionsTable).
		Where(sq.Eq{"id": id})

	tx, err := scanTransaction(query.RunWith(s.db).QueryRowContext(ctx))
	if errors.Is(err, sql.ErrNoRows) {
		return finance.Transaction{}, &customerr.NotFoundError{Kind: transactionKind, ID: id}
	}
	if err != nil {
		return finance.Transaction{}, errors.Wrap(err, "get transaction")
	}
	return tx, nil
}

func (s *PostgresStorage) ListTransactions(ctx context.Context) ([]finance.Transaction, error) {
	query := psql.Select(transactionColumns...).
		From(transactionsTable).
		OrderBy("created_at DESC", "id")
	return s.queryTransactions(ctx, query)
}

func (s *PostgresStorage) TransactionsBetween(ctx context.Context, from, to time.Time) ([]finance.Transaction, error) {
	query := psql.Select(transactionColumns...).
		From(transactionsTable).
		Where(sq.And{sq.GtOrEq{"date": from}, sq.LtOrEq{"date": to}}).
		OrderBy("created_at DESC", "id")
	return s.queryTransactions(ctx, query)
}

func (s *PostgresStorage) queryTransactions(ctx context.Context, query sq.SelectBuilder) ([]finance.Transaction, error) {
	rows, err := query.RunWith(s.db).QueryContext(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "get transactions")
	}
	defer closeRows(rows)

	txs := make([]finance.Transaction, 0)
	for rows.Next() {
		tx, err := scanTransaction(rows)
		if err != nil {
			return nil, errors.Wrap(err, "get transactions")
		}
		txs = append(txs, tx)
	}
	if err = rows.Err(); err != nil {
		return nil, errors.Wrap(err, "get transactions")
	}
	return txs, nil
}

func (s *PostgresStorage) CreateBudget(ctx context.Context, b finance.Budget) error {
	query := psql.Insert(budgetsTable).
		Columns(budgetColumns...).
		Values(b.ID, b.Category, b.Amount, b.Month, b.Year, b.CreatedAt, b.UpdatedAt)

	_, err := query.RunWith(s.db).ExecContext(ctx)
	return errors.Wrap(err, "create budget")
}

func (s *PostgresStorage) UpdateBudget(ctx context.Context, b finance.Budget) error {
	query := psql.Update(budgetsTable).
		SetMap(map[string]interface{}{
			"category":   b.Category,
			"amount":     b.Amount,
			"month":      b.Month,
			"year":       b.Year,
			"updated_at": b.UpdatedAt,
		}).
		Where(sq.Eq{"id": b.ID})

	res, err := query.RunWith(s.db).ExecContext(ctx)
	if err != nil {
		return errors.Wrap(err, "update budget")
	}
	return ensureAffected(res, budgetKind, b.ID)
}

func (s *PostgresStorage) DeleteBudget(ctx context.Context, id string) error {
	res, err := psql.Delete(budgetsTable).
		Where(sq.Eq{"id": id}).
		RunWith(s.db).
		ExecContext(ctx)
	if err != nil {
		return errors.Wrap(err, "delete budget")
	}
	return ensureAffected(res, budgetKind, id)
}

func (s *PostgresStorage) GetBudget(ctx context.Context, id string) (finance.Budget, error) {
	query := psql.Select(budgetColumns...).
		From(budgetsTable).
		Where(sq.Eq{"id": id})

	var b finance.Budget
	err := query.RunWith(s.db).QueryRowContext(ctx).
		Scan(&b.ID, &b.Category, &b.Amount, &b.Month, &b.Year, &b.CreatedAt, &b.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return finance.Budget{}, &customerr.NotFoundError{Kind: budgetKind, ID: id}
	}
	if err != nil {
		return finance.Budget{}, errors.Wrap(err, "get budget")
	}
	return b, nil
}

func (s *PostgresStorage) ListBudgets(ctx context.Context) ([]finance.Budget, error) {
	query := psql.Select(budgetColumns...).
		From(budgetsTable).
		OrderBy("year DESC", "month DESC", "category")

	rows, err := query.RunWith(s.db).QueryContext(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "get budgets")
	}
	defer closeRows(rows)

	budgets := make([]finance.Budget, 0)
	for rows.Next() {
		var b finance.Budget
		err = rows.Scan(&b.ID, &b.Category, &b.Amount, &b.Month, &b.Year, &b.CreatedAt, &b.UpdatedAt)
		if err != nil {
			return nil, errors.Wrap(err, "get budgets")
		}
		budgets = append(budgets, b)
	}
	if err = rows.Err(); err != nil {
		return nil, errors.Wrap(err, "get budgets")
	}
	return budgets, nil
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanTransaction(row scanner) (finance.Transaction, error) {
	var tx finance.Transaction
	var txType string
	err := row.Scan(&tx.ID, &tx.Amount, &tx.Date, &tx.Description, &txType, &tx.Category, &tx.CreatedAt, &tx.UpdatedAt)
	if err != nil {
		return finance.Transaction{}, err
	}
	tx.Type = finance.TransactionType(txType)
	tx.Date = finance.DateOf(tx.Date)
	return tx, nil
}

func ensureAffected(res sql.Result, kind, id string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return errors.Wrap(err, "rows affected")
	}
	if n == 0 {
		return &customerr.NotFoundError{Kind: kind, ID: id}
	}
	return nil
}

func closeRows(rows *sql.Rows) {
	if err := rows.Close(); err != nil {
		logger.Error("error closing rows", zap.Error(err))
	}
}
