package engine

import "time"

// MockTime is a controllable TimeSource for tests. The frame loop is
// single-threaded, so no locking is needed around the stored time.
type MockTime struct {
	current time.Time
}

// NewMockTime creates a mock source starting at the given instant.
func NewMockTime(start time.Time) *MockTime {
	return &MockTime{current: start}
}

// Now returns the mocked current time.
func (m *MockTime) Now() time.Time {
	return m.current
}

// Advance moves the mocked time forward by d.
func (m *MockTime) Advance(d time.Duration) {
	m.current = m.current.Add(d)
}
