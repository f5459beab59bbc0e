package mock

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/gojuno/minimock/v3"
)

// MessageSenderMock implements messages.messageSender
type MessageSenderMock struct {
	t minimock.Tester

	SendMessageMock mMessageSenderMockSendMessage
}

func NewMessageSenderMock(t minimock.Tester) *MessageSenderMock {
	m := &MessageSenderMock{t: t}
	if controller, ok := t.(minimock.MockController); ok {
		controller.RegisterMocker(m)
	}
	m.SendMessageMock = mMessageSenderMockSendMessage{mock: m}
	return m
}

type MessageSenderMockSendMessageParams struct {
	Text   string
	ChatID int64
}

type mMessageSenderMockSendMessage struct {
	mock *MessageSenderMock

	mu       sync.Mutex
	expected *MessageSenderMockSendMessageParams
	inspect  func(text string, chatID int64)
	err      error
	set      bool
	calls    []MessageSenderMockSendMessageParams
	counter  uint64
}

func (mm *mMessageSenderMockSendMessage) Expect(text string, chatID int64) *mMessageSenderMockSendMessage {
	mm.expected = &MessageSenderMockSendMessageParams{Text: text, ChatID: chatID}
	return mm
}

func (mm *mMessageSenderMockSendMessage) Inspect(f func(text string, chatID int64)) *mMessageSenderMockSendMessage {
	mm.inspect = f
	return mm
}

func (mm *mMessageSenderMockSendMessage) Return(err error) *MessageSenderMock {
	mm.err, mm.set = err, true
	return mm.mock
}

// Calls returns the arguments of every call made so far.
func (mm *mMessageSenderMockSendMessage) Calls() []MessageSenderMockSendMessageParams {
	mm.mu.Lock()
	defer mm.mu.Unlock()
	return append([]MessageSenderMockSendMessageParams(nil), mm.calls...)
}

func (m *MessageSenderMock) SendMessage(text string, chatID int64) error {
	mm := &m.SendMessageMock
	atomic.AddUint64(&mm.counter, 1)

	got := MessageSenderMockSendMessageParams{Text: text, ChatID: chatID}
	mm.mu.Lock()
	mm.calls = append(mm.calls, got)
	mm.mu.Unlock()

	if mm.inspect != nil {
		mm.inspect(text, chatID)
	}
	if mm.expected != nil && !minimock.Equal(*mm.expected, got) {
		m.t.Errorf("MessageSenderMock.SendMessage got unexpected parameters, %s", minimock.Diff(*mm.expected, got))
	}
	if !mm.set {
		m.t.Fatalf("Unexpected call to MessageSenderMock.SendMessage. %v %v", text, chatID)
		return nil
	}
	return mm.err
}

func (m *MessageSenderMock) SendMessageAfterCounter() uint64 {
	return atomic.LoadUint64(&m.SendMessageMock.counter)
}

// MinimockFinish checks that every mocked method with an expectation was called.
func (m *MessageSenderMock) MinimockFinish() {
	if m.SendMessageMock.expected != nil && m.SendMessageAfterCounter() == 0 {
		m.t.Errorf("Expected call to MessageSenderMock.SendMessage")
	}
}

func (m *MessageSenderMock) MinimockWait(timeout time.Duration) {
	deadline := time.After(timeout)
	for m.SendMessageMock.expected != nil && m.SendMessageAfterCounter() == 0 {
		select {
		case <-deadline:
			m.MinimockFinish()
			return
		case <-time.After(10 * time.Millisecond):
		}
	}
}
