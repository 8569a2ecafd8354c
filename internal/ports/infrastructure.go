package ports

import "time"

// AuthConfig represents authentication configuration
type AuthConfig struct {
	TokenTTL time.Duration
	DemoMode bool
}

// NASAConfig represents configuration of the mocked imagery endpoints
type NASAConfig struct {
	ImageryBaseURL string
}

// ServerConfig represents server configuration
type ServerConfig struct {
	Port              int
	StaticDir         string
	CORSAllowedOrigin string
}

// StoreConfig represents backing store configuration
type StoreConfig struct {
	Driver string
	Target string
}

// ConfigProvider defines the contract for configuration management
type ConfigProvider interface {
	GetAuthConfig() AuthConfig
	GetNASAConfig() NASAConfig
	GetServerConfig() ServerConfig
	GetStoreConfig() StoreConfig
}

// Logger defines the contract for structured logging
type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)
}

// Field represents a log field
type Field struct {
	Key   string
	Value interface{}
}

// F creates a log field
func F(key string, value interface{}) Field {
	return Field{Key: key, Value: value}
}

// MetricsCollector defines the contract for request metrics collection
type MetricsCollector interface {
	RecordRequest(method, route string, status int, duration time.Duration)
	RecordLogin(outcome string)
}
