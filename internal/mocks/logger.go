package mocks

import (
	"github.com/stretchr/testify/mock"
	"terraweave.app/internal/ports"
)

// Logger is a testify mock of ports.Logger.
// Fields are recorded as one []ports.Field argument.
type Logger struct {
	mock.Mock
}

func NewLogger(t testingT) *Logger {
	m := &Logger{}
	register(t, &m.Mock)
	return m
}

// AllowAll accepts any log call at any level
func (m *Logger) AllowAll() *Logger {
	for _, level := range []string{"Debug", "Info", "Warn", "Error"} {
		m.On(level, mock.Anything, mock.Anything).Maybe()
	}
	return m
}

func (m *Logger) Debug(msg string, fields ...ports.Field) {
	m.Called(msg, fields)
}

func (m *Logger) Info(msg string, fields ...ports.Field) {
	m.Called(msg, fields)
}

func (m *Logger) Warn(msg string, fields ...ports.Field) {
	m.Called(msg, fields)
}

func (m *Logger) Error(msg string, fields ...ports.Field) {
	m.Called(msg, fields)
}
