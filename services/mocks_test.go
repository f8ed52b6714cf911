package services

import (
	"testing"

	"github.com/stretchr/testify/mock"
)

// MockLogger is a mock type for the Logger type
type MockLogger struct {
	mock.Mock
}

func (m *MockLogger) Info(msg string) {
	m.Called(msg)
}

func (m *MockLogger) Debug(msg string) {
	m.Called(msg)
}

func (m *MockLogger) Error(msg string) {
	m.Called(msg)
}

func (m *MockLogger) Warning(msg string) {
	m.Called(msg)
}

// Infof is a mock method for logger Infof
func (m *MockLogger) Infof(format string, args ...interface{}) {
	m.Called(format, args)
}

// Debugf is a mock method for logger Debugf
func (m *MockLogger) Debugf(format string, args ...interface{}) {
	m.Called(format, args)
}

// Errorf is a mock method for logger Errorf
func (m *MockLogger) Errorf(format string, args ...interface{}) {
	m.Called(format, args)
}

// Warningf is a mock method for logger Warningf
func (m *MockLogger) Warningf(format string, args ...interface{}) {
	m.Called(format, args)
}

// newMockLogger accepts any log call.
func newMockLogger(t *testing.T) *MockLogger {
	t.Helper()
	l := new(MockLogger)
	for _, method := range []string{"Info", "Debug", "Error", "Warning"} {
		l.On(method, mock.Anything).Maybe().Return()
	}
	for _, method := range []string{"Infof", "Debugf", "Errorf", "Warningf"} {
		l.On(method, mock.Anything, mock.Anything).Maybe().Return()
	}
	return l
}

// countingBackend counts host lookups.
type countingBackend struct {
	*Harness
	finds map[string]int
}

func newCountingBackend() *countingBackend {
	return &countingBackend{Harness: NewHarness(), finds: map[string]int{}}
}

func (c *countingBackend) FindDataRef(name string) (Ref, bool) {
	c.finds[name]++
	return c.Harness.FindDataRef(name)
}
