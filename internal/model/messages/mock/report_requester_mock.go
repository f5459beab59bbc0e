package mock

import (
	"sync/atomic"
	"time"

	"github.com/gojuno/minimock/v3"
)

// ReportRequesterMock implements messages.reportRequester
type ReportRequesterMock struct {
	t minimock.Tester

	RequestReportMock mReportRequesterMockRequestReport
}

func NewReportRequesterMock(t minimock.Tester) *ReportRequesterMock {
	m := &ReportRequesterMock{t: t}
	if controller, ok := t.(minimock.MockController); ok {
		controller.RegisterMocker(m)
	}
	m.RequestReportMock = mReportRequesterMockRequestReport{mock: m}
	return m
}

type ReportRequesterMockRequestReportParams struct {
	ChatID     int64
	Period     string
	Generation uint64
}

type mReportRequesterMockRequestReport struct {
	mock *ReportRequesterMock

	expected *ReportRequesterMockRequestReportParams
	err      error
	set      bool
	counter  uint64
}

func (mm *mReportRequesterMockRequestReport) Expect(chatID int64, period string, generation uint64) *mReportRequesterMockRequestReport {
	mm.expected = &ReportRequesterMockRequestReportParams{ChatID: chatID, Period: period, Generation: generation}
	return mm
}

func (mm *mReportRequesterMockRequestReport) Return(err error) *ReportRequesterMock {
	mm.err, mm.set = err, true
	return mm.mock
}

func (m *ReportRequesterMock) RequestReport(chatID int64, period string, generation uint64) error {
	mm := &m.RequestReportMock
	atomic.AddUint64(&mm.counter, 1)

	got := ReportRequesterMockRequestReportParams{ChatID: chatID, Period: period, Generation: generation}
	if mm.expected != nil && !minimock.Equal(*mm.expected, got) {
		m.t.Errorf("ReportRequesterMock.RequestReport got unexpected parameters, %s", minimock.Diff(*mm.expected, got))
	}
	if !mm.set {
		m.t.Fatalf("Unexpected call to ReportRequesterMock.RequestReport. %v %v", chatID, period)
		return nil
	}
	return mm.err
}

func (m *ReportRequesterMock) RequestReportAfterCounter() uint64 {
	return atomic.LoadUint64(&m.RequestReportMock.counter)
}

// MinimockFinish checks that every mocked method with an expectation was called.
func (m *ReportRequesterMock) MinimockFinish() {
	if m.RequestReportMock.expected != nil && m.RequestReportAfterCounter() == 0 {
		m.t.Errorf("Expected call to ReportRequesterMock.RequestReport")
	}
}

func (m *ReportRequesterMock) MinimockWait(timeout time.Duration) {
	deadline := time.After(timeout)
	for m.RequestReportMock.expected != nil && m.RequestReportAfterCounter() == 0 {
		select {
		case <-deadline:
			m.MinimockFinish()
			return
		case <-time.After(10 * time.Millisecond):
		}
	}
}
