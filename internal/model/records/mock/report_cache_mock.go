package mock

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/gojuno/minimock/v3"
)

// ReportCacheMock implements records.reportCache
type ReportCacheMock struct {
	t minimock.Tester

	InvalidateReportsMock mReportCacheMockInvalidateReports
}

func NewReportCacheMock(t minimock.Tester) *ReportCacheMock {
	m := &ReportCacheMock{t: t}
	if controller, ok := t.(minimock.MockController); ok {
		controller.RegisterMocker(m)
	}
	m.InvalidateReportsMock = mReportCacheMockInvalidateReports{mock: m}
	return m
}

type mReportCacheMockInvalidateReports struct {
	mock *ReportCacheMock

	mu       sync.Mutex
	expected *[]string
	inspect  func(periods []string)
	fn       func(periods []string) error
	err      error
	set      bool
	calls    [][]string
	counter  uint64
}

func (mm *mReportCacheMockInvalidateReports) Expect(periods []string) *mReportCacheMockInvalidateReports {
	mm.expected = &periods
	return mm
}

func (mm *mReportCacheMockInvalidateReports) Inspect(f func(periods []string)) *mReportCacheMockInvalidateReports {
	mm.inspect = f
	return mm
}

func (mm *mReportCacheMockInvalidateReports) Return(err error) *ReportCacheMock {
	mm.err = err
	mm.set = true
	return mm.mock
}

func (mm *mReportCacheMockInvalidateReports) Set(f func(periods []string) error) *ReportCacheMock {
	mm.fn = f
	mm.set = true
	return mm.mock
}

// Calls returns the arguments of every call made so far.
func (mm *mReportCacheMockInvalidateReports) Calls() [][]string {
	mm.mu.Lock()
	defer mm.mu.Unlock()
	return append([][]string(nil), mm.calls...)
}

func (m *ReportCacheMock) InvalidateReports(periods []string) error {
	mm := &m.InvalidateReportsMock
	atomic.AddUint64(&mm.counter, 1)

	mm.mu.Lock()
	mm.calls = append(mm.calls, periods)
	mm.mu.Unlock()

	if mm.inspect != nil {
		mm.inspect(periods)
	}
	if mm.expected != nil && !minimock.Equal(*mm.expected, periods) {
		m.t.Errorf("ReportCacheMock.InvalidateReports got unexpected parameters, %s", minimock.Diff(*mm.expected, periods))
	}
	if mm.fn != nil {
		return mm.fn(periods)
	}
	if !mm.set {
		m.t.Fatalf("Unexpected call to ReportCacheMock.InvalidateReports. %v", periods)
		return nil
	}
	return mm.err
}

func (m *ReportCacheMock) InvalidateReportsAfterCounter() uint64 {
	return atomic.LoadUint64(&m.InvalidateReportsMock.counter)
}

// MinimockFinish checks that every mocked method with an expectation was called.
func (m *ReportCacheMock) MinimockFinish() {
	if m.InvalidateReportsMock.expected != nil && m.InvalidateReportsAfterCounter() == 0 {
		m.t.Errorf("Expected call to ReportCacheMock.InvalidateReports")
	}
}

func (m *ReportCacheMock) MinimockWait(timeout time.Duration) {
	deadline := time.After(timeout)
	for m.InvalidateReportsMock.expected != nil && m.InvalidateReportsAfterCounter() == 0 {
		select {
		case <-deadline:
			m.MinimockFinish()
			return
		case <-time.After(10 * time.Millisecond):
		}
	}
}
