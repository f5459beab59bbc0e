package mock

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/gojuno/minimock/v3"
	"max.ks1230/finances-tracker/internal/entity/finance"
)

// ReportStorageMock implements reports.reportStorage
type ReportStorageMock struct {
	t minimock.Tester

	TransactionsBetweenMock mReportStorageMockTransactionsBetween
	ListBudgetsMock         mReportStorageMockListBudgets
}

func NewReportStorageMock(t minimock.Tester) *ReportStorageMock {
	m := &ReportStorageMock{t: t}
	if controller, ok := t.(minimock.MockController); ok {
		controller.RegisterMocker(m)
	}
	m.TransactionsBetweenMock = mReportStorageMockTransactionsBetween{mock: m}
	m.ListBudgetsMock = mReportStorageMockListBudgets{mock: m}
	return m
}

type ReportStorageMockTransactionsBetweenParams struct {
	From time.Time
	To   time.Time
}

type mReportStorageMockTransactionsBetween struct {
	mock *ReportStorageMock

	expected *ReportStorageMockTransactionsBetweenParams
	inspect  func(ctx context.Context, from, to time.Time)
	txs      []finance.Transaction
	err      error
	set      bool
	counter  uint64
}

func (mm *mReportStorageMockTransactionsBetween) Expect(from, to time.Time) *mReportStorageMockTransactionsBetween {
	mm.expected = &ReportStorageMockTransactionsBetweenParams{From: from, To: to}
	return mm
}

func (mm *mReportStorageMockTransactionsBetween) Inspect(f func(ctx context.Context, from, to time.Time)) *mReportStorageMockTransactionsBetween {
	mm.inspect = f
	return mm
}

func (mm *mReportStorageMockTransactionsBetween) Return(txs []finance.Transaction, err error) *ReportStorageMock {
	mm.txs, mm.err, mm.set = txs, err, true
	return mm.mock
}

func (m *ReportStorageMock) TransactionsBetween(ctx context.Context, from, to time.Time) ([]finance.Transaction, error) {
	mm := &m.TransactionsBetweenMock
	atomic.AddUint64(&mm.counter, 1)

	if mm.inspect != nil {
		mm.inspect(ctx, from, to)
	}
	got := ReportStorageMockTransactionsBetweenParams{From: from, To: to}
	if mm.expected != nil && !minimock.Equal(*mm.expected, got) {
		m.t.Errorf("ReportStorageMock.TransactionsBetween got unexpected parameters, %s", minimock.Diff(*mm.expected, got))
	}
	if !mm.set {
		m.t.Fatalf("Unexpected call to ReportStorageMock.TransactionsBetween. %v %v", from, to)
		return nil, nil
	}
	return mm.txs, mm.err
}

func (m *ReportStorageMock) TransactionsBetweenAfterCounter() uint64 {
	return atomic.LoadUint64(&m.TransactionsBetweenMock.counter)
}

type mReportStorageMockListBudgets struct {
	mock *ReportStorageMock

	budgets []finance.Budget
	err     error
	set     bool
	counter uint64
}

func (mm *mReportStorageMockListBudgets) Return(budgets []finance.Budget, err error) *ReportStorageMock {
	mm.budgets, mm.err, mm.set = budgets, err, true
	return mm.mock
}

func (m *ReportStorageMock) ListBudgets(_ context.Context) ([]finance.Budget, error) {
	mm := &m.ListBudgetsMock
	atomic.AddUint64(&mm.counter, 1)

	if !mm.set {
		m.t.Fatalf("Unexpected call to ReportStorageMock.ListBudgets")
		return nil, nil
	}
	return mm.budgets, mm.err
}

func (m *ReportStorageMock) ListBudgetsAfterCounter() uint64 {
	return atomic.LoadUint64(&m.ListBudgetsMock.counter)
}

// MinimockFinish checks that every mocked method with an expectation was called.
func (m *ReportStorageMock) MinimockFinish() {
	if m.TransactionsBetweenMock.expected != nil && m.TransactionsBetweenAfterCounter() == 0 {
		m.t.Errorf("Expected call to ReportStorageMock.TransactionsBetween")
	}
}

func (m *ReportStorageMock) MinimockWait(timeout time.Duration) {
	deadline := time.After(timeout)
	for m.TransactionsBetweenMock.expected != nil && m.TransactionsBetweenAfterCounter() == 0 {
		select {
		case <-deadline:
			m.MinimockFinish()
			return
		case <-time.After(10 * time.Millisecond):
		}
	}
}
