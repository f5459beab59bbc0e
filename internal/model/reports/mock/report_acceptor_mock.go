package mock

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/gojuno/minimock/v3"
	"max.ks1230/finances-tracker/api/reportpb"
)

// ReportAcceptorMock implements reports.reportAcceptor
type ReportAcceptorMock struct {
	t minimock.Tester

	AcceptReportMock mReportAcceptorMockAcceptReport
}

func NewReportAcceptorMock(t minimock.Tester) *ReportAcceptorMock {
	m := &ReportAcceptorMock{t: t}
	if controller, ok := t.(minimock.MockController); ok {
		controller.RegisterMocker(m)
	}
	m.AcceptReportMock = mReportAcceptorMockAcceptReport{mock: m}
	return m
}

type mReportAcceptorMockAcceptReport struct {
	mock *ReportAcceptorMock

	expected *reportpb.ReportResult
	err      error
	set      bool
	counter  uint64
}

func (mm *mReportAcceptorMockAcceptReport) Expect(report *reportpb.ReportResult) *mReportAcceptorMockAcceptReport {
	mm.expected = report
	return mm
}

func (mm *mReportAcceptorMockAcceptReport) Return(err error) *ReportAcceptorMock {
	mm.err, mm.set = err, true
	return mm.mock
}

func (m *ReportAcceptorMock) AcceptReport(_ context.Context, report *reportpb.ReportResult) error {
	mm := &m.AcceptReportMock
	atomic.AddUint64(&mm.counter, 1)

	if mm.expected != nil && !minimock.Equal(mm.expected, report) {
		m.t.Errorf("ReportAcceptorMock.AcceptReport got unexpected parameters, %s", minimock.Diff(mm.expected, report))
	}
	if !mm.set {
		m.t.Fatalf("Unexpected call to ReportAcceptorMock.AcceptReport. %v", report)
		return nil
	}
	return mm.err
}

func (m *ReportAcceptorMock) AcceptReportAfterCounter() uint64 {
	return atomic.LoadUint64(&m.AcceptReportMock.counter)
}

// MinimockFinish checks that every mocked method with an expectation was called.
func (m *ReportAcceptorMock) MinimockFinish() {
	if m.AcceptReportMock.expected != nil && m.AcceptReportAfterCounter() == 0 {
		m.t.Errorf("Expected call to ReportAcceptorMock.AcceptReport")
	}
}

func (m *ReportAcceptorMock) MinimockWait(timeout time.Duration) {
	deadline := time.After(timeout)
	for m.AcceptReportMock.expected != nil && m.AcceptReportAfterCounter() == 0 {
		select {
		case <-deadline:
			m.MinimockFinish()
			return
		case <-time.After(10 * time.Millisecond):
		}
	}
}
