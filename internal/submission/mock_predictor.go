package submission

import (
	"context"
	"sync"

	"github.com/JoyOffere/linear-regression-model/internal/model"
)

// MockPredictor is a test implementation of the Predictor interface.
// It records every request and returns a preconfigured outcome,
// optionally blocking until released so tests can observe the
// in-flight phase.
type MockPredictor struct {
	outcome model.Outcome
	release chan struct{}
	calls   []model.PredictionRequest
	mu      sync.Mutex
	blocked bool
}

// NewMockPredictor creates a mock that resolves immediately with outcome.
func NewMockPredictor(outcome model.Outcome) *MockPredictor {
	return &MockPredictor{outcome: outcome}
}

// NewBlockingMockPredictor creates a mock that holds every call until
// Release is invoked.
func NewBlockingMockPredictor(outcome model.Outcome) *MockPredictor {
	return &MockPredictor{
		outcome: outcome,
		release: make(chan struct{}),
		blocked: true,
	}
}

// Predict records the request and returns the configured outcome.
func (m *MockPredictor) Predict(ctx context.Context, request model.PredictionRequest) model.Outcome {
	m.mu.Lock()
	m.calls = append(m.calls, request)
	blocked := m.blocked
	m.mu.Unlock()

	if blocked {
		select {
		case <-m.release:
		case <-ctx.Done():
		}
	}
	return m.outcome
}

// Release unblocks all pending and future calls.
func (m *MockPredictor) Release() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.blocked {
		m.blocked = false
		close(m.release)
	}
}

// Calls returns a copy of the requests seen so far.
func (m *MockPredictor) Calls() []model.PredictionRequest {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]model.PredictionRequest(nil), m.calls...)
}

// CallCount returns how many predictions were requested.
func (m *MockPredictor) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.calls)
}
