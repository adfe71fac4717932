package llm

import (
	"context"
	"sync"
)

// MockReply is a canned reply for the Mock provider.
type MockReply struct {
	Text string
	Err  error
}

// Mock is a deterministic Provider for tests. Replies are handed out in
// FIFO order and every prompt is recorded.
type Mock struct {
	mu      sync.Mutex
	replies []MockReply
	Prompts []Prompt
}

// NewMock creates a Mock with the given canned replies.
func NewMock(replies ...MockReply) *Mock {
	return &Mock{replies: replies}
}

// Complete returns the next canned reply, or ErrUnavailable when the queue
// is empty.
func (m *Mock) Complete(_ context.Context, p Prompt) (*Completion, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Prompts = append(m.Prompts, p)

	if len(m.replies) == 0 {
		return nil, &ErrUnavailable{}
	}

	reply := m.replies[0]
	m.replies = m.replies[1:]

	if reply.Err != nil {
		return nil, reply.Err
	}
	return &Completion{Text: reply.Text, Model: "mock"}, nil
}

// ModelID returns "mock".
func (m *Mock) ModelID() string { return "mock" }

// Enqueue appends a canned reply.
func (m *Mock) Enqueue(reply MockReply) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.replies = append(m.replies, reply)
}

// CallCount returns how many Complete calls were made.
func (m *Mock) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Prompts)
}
