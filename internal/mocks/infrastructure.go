package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"
	"terraweave.app/internal/ports"
)

// ConfigProvider is a testify mock of ports.ConfigProvider
type ConfigProvider struct {
	mock.Mock
}

func NewConfigProvider(t testingT) *ConfigProvider {
	m := &ConfigProvider{}
	register(t, &m.Mock)
	return m
}

func (m *ConfigProvider) GetAuthConfig() ports.AuthConfig {
	return m.Called().Get(0).(ports.AuthConfig)
}

func (m *ConfigProvider) GetNASAConfig() ports.NASAConfig {
	return m.Called().Get(0).(ports.NASAConfig)
}

func (m *ConfigProvider) GetServerConfig() ports.ServerConfig {
	return m.Called().Get(0).(ports.ServerConfig)
}

func (m *ConfigProvider) GetStoreConfig() ports.StoreConfig {
	return m.Called().Get(0).(ports.StoreConfig)
}

// MetricsCollector is a testify mock of ports.MetricsCollector
type MetricsCollector struct {
	mock.Mock
}

func NewMetricsCollector(t testingT) *MetricsCollector {
	m := &MetricsCollector{}
	register(t, &m.Mock)
	return m
}

func (m *MetricsCollector) RecordRequest(method, route string, status int, duration time.Duration) {
	m.Called(method, route, status, duration)
}

func (m *MetricsCollector) RecordLogin(outcome string) {
	m.Called(outcome)
}

// SystemHealthChecker is a testify mock of ports.SystemHealthChecker
type SystemHealthChecker struct {
	mock.Mock
}

func NewSystemHealthChecker(t testingT) *SystemHealthChecker {
	m := &SystemHealthChecker{}
	register(t, &m.Mock)
	return m
}

func (m *SystemHealthChecker) CheckAll(ctx context.Context) map[string]ports.HealthStatus {
	statuses, _ := m.Called(ctx).Get(0).(map[string]ports.HealthStatus)
	return statuses
}
