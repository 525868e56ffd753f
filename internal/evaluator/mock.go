package evaluator

import (
	"context"
	"sync"
)

// MockResult is a canned result for the MockEvaluator.
type MockResult struct {
	Result *Result
	Err    error
}

// MockEvaluator is a deterministic Evaluator for testing.
// It returns canned results in FIFO order and records all requests.
type MockEvaluator struct {
	mu      sync.Mutex
	results []MockResult
	Calls   []Request
}

// NewMockEvaluator creates a MockEvaluator with the given canned results.
func NewMockEvaluator(results ...MockResult) *MockEvaluator {
	return &MockEvaluator{results: results}
}

// Evaluate returns the next canned result or ErrProviderUnavailable if
// the queue is empty.
func (m *MockEvaluator) Evaluate(_ context.Context, req Request) (*Result, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Calls = append(m.Calls, req)

	if len(m.results) == 0 {
		return nil, &ErrProviderUnavailable{Err: nil}
	}

	next := m.results[0]
	m.results = m.results[1:]

	if next.Err != nil {
		return nil, next.Err
	}
	return next.Result, nil
}

// ModelID returns "mock".
func (m *MockEvaluator) ModelID() string {
	return "mock"
}

// AddResult appends a canned result to the queue.
func (m *MockEvaluator) AddResult(res MockResult) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.results = append(m.results, res)
}

// CallCount returns the number of Evaluate calls made.
func (m *MockEvaluator) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Calls)
}
