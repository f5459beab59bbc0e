package mock

import (
	"sync/atomic"
	"time"

	"github.com/gojuno/minimock/v3"
)

// ReportCacheMock implements messages.reportCache
type ReportCacheMock struct {
	t minimock.Tester

	GetReportMock        mReportCacheMockGetReport
	ReportGenerationMock mReportCacheMockReportGeneration
	CacheReportMock      mReportCacheMockCacheReport
}

func NewReportCacheMock(t minimock.Tester) *ReportCacheMock {
	m := &ReportCacheMock{t: t}
	if controller, ok := t.(minimock.MockController); ok {
		controller.RegisterMocker(m)
	}
	m.GetReportMock = mReportCacheMockGetReport{mock: m}
	m.ReportGenerationMock = mReportCacheMockReportGeneration{mock: m}
	m.CacheReportMock = mReportCacheMockCacheReport{mock: m}
	return m
}

type mReportCacheMockGetReport struct {
	mock *ReportCacheMock

	expected *string
	report   string
	ok       bool
	err      error
	set      bool
	counter  uint64
}

func (mm *mReportCacheMockGetReport) Expect(period string) *mReportCacheMockGetReport {
	mm.expected = &period
	return mm
}

func (mm *mReportCacheMockGetReport) Return(report string, ok bool, err error) *ReportCacheMock {
	mm.report, mm.ok, mm.err, mm.set = report, ok, err, true
	return mm.mock
}

func (m *ReportCacheMock) GetReport(period string) (string, bool, error) {
	mm := &m.GetReportMock
	atomic.AddUint64(&mm.counter, 1)

	if mm.expected != nil && *mm.expected != period {
		m.t.Errorf("ReportCacheMock.GetReport got unexpected parameters, %s", minimock.Diff(*mm.expected, period))
	}
	if !mm.set {
		m.t.Fatalf("Unexpected call to ReportCacheMock.GetReport. %v", period)
		return "", false, nil
	}
	return mm.report, mm.ok, mm.err
}

func (m *ReportCacheMock) GetReportAfterCounter() uint64 {
	return atomic.LoadUint64(&m.GetReportMock.counter)
}

type mReportCacheMockReportGeneration struct {
	mock *ReportCacheMock

	expected   *string
	generation uint64
	err        error
	set        bool
	counter    uint64
}

func (mm *mReportCacheMockReportGeneration) Expect(period string) *mReportCacheMockReportGeneration {
	mm.expected = &period
	return mm
}

func (mm *mReportCacheMockReportGeneration) Return(generation uint64, err error) *ReportCacheMock {
	mm.generation, mm.err, mm.set = generation, err, true
	return mm.mock
}

func (m *ReportCacheMock) ReportGeneration(period string) (uint64, error) {
	mm := &m.ReportGenerationMock
	atomic.AddUint64(&mm.counter, 1)

	if mm.expected != nil && *mm.expected != period {
		m.t.Errorf("ReportCacheMock.ReportGeneration got unexpected parameters, %s", minimock.Diff(*mm.expected, period))
	}
	if !mm.set {
		m.t.Fatalf("Unexpected call to ReportCacheMock.ReportGeneration. %v", period)
		return 0, nil
	}
	return mm.generation, mm.err
}

func (m *ReportCacheMock) ReportGenerationAfterCounter() uint64 {
	return atomic.LoadUint64(&m.ReportGenerationMock.counter)
}

type ReportCacheMockCacheReportParams struct {
	Period     string
	Report     string
	Generation uint64
}

type mReportCacheMockCacheReport struct {
	mock *ReportCacheMock

	expected *ReportCacheMockCacheReportParams
	err      error
	set      bool
	counter  uint64
}

func (mm *mReportCacheMockCacheReport) Expect(period string, report string, generation uint64) *mReportCacheMockCacheReport {
	mm.expected = &ReportCacheMockCacheReportParams{Period: period, Report: report, Generation: generation}
	return mm
}

func (mm *mReportCacheMockCacheReport) Return(err error) *ReportCacheMock {
	mm.err, mm.set = err, true
	return mm.mock
}

func (m *ReportCacheMock) CacheReport(period string, report string, generation uint64) error {
	mm := &m.CacheReportMock
	atomic.AddUint64(&mm.counter, 1)

	got := ReportCacheMockCacheReportParams{Period: period, Report: report, Generation: generation}
	if mm.expected != nil && !minimock.Equal(*mm.expected, got) {
		m.t.Errorf("ReportCacheMock.CacheReport got unexpected parameters, %s", minimock.Diff(*mm.expected, got))
	}
	if !mm.set {
		m.t.Fatalf("Unexpected call to ReportCacheMock.CacheReport. %v", period)
		return nil
	}
	return mm.err
}

func (m *ReportCacheMock) CacheReportAfterCounter() uint64 {
	return atomic.LoadUint64(&m.CacheReportMock.counter)
}

// MinimockFinish checks that every mocked method with an expectation was called.
func (m *ReportCacheMock) MinimockFinish() {
	if m.GetReportMock.expected != nil && m.GetReportAfterCounter() == 0 {
		m.t.Errorf("Expected call to ReportCacheMock.GetReport")
	}
	if m.ReportGenerationMock.expected != nil && m.ReportGenerationAfterCounter() == 0 {
		m.t.Errorf("Expected call to ReportCacheMock.ReportGeneration")
	}
	if m.CacheReportMock.expected != nil && m.CacheReportAfterCounter() == 0 {
		m.t.Errorf("Expected call to ReportCacheMock.CacheReport")
	}
}

func (m *ReportCacheMock) MinimockWait(timeout time.Duration) {
	deadline := time.After(timeout)
	for {
		if (m.GetReportMock.expected == nil || m.GetReportAfterCounter() > 0) &&
			(m.ReportGenerationMock.expected == nil || m.ReportGenerationAfterCounter() > 0) &&
			(m.CacheReportMock.expected == nil || m.CacheReportAfterCounter() > 0) {
			return
		}
		select {
		case <-deadline:
			m.MinimockFinish()
			return
		case <-time.After(10 * time.Millisecond):
		}
	}
}
