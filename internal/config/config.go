package config

import (
	"fmt"
	"strings"

	"github.com/kelseyhightower/envconfig"
	"terraweave.app/pkg/errors"
)

const (
	maxPortNumber     = 65535
	maxTokenTTLHours  = 24 * 30
	minJWTSecretBytes = 16
)

// Config represents the application configuration structure
type Config struct {
	Server ServerConfig `split_words:"true"`
	Store  StoreConfig  `split_words:"true"`
	Auth   AuthConfig   `split_words:"true"`
	Seed   SeedConfig   `split_words:"true"`
	NASA   NASAConfig   `split_words:"true"`
	Log    LogConfig    `split_words:"true"`
}

type ServerConfig struct {
	Port              int    `envconfig:"SERVER_PORT" default:"3000"`
	StaticDir         string `envconfig:"STATIC_DIR" default:"public"`
	CORSAllowedOrigin string `envconfig:"CORS_ALLOWED_ORIGIN" default:"*"`
}

// StoreDriver selects the relational backend
type StoreDriver int

const (
	StoreDriverUnknown StoreDriver = iota
	StoreDriverSQLite
	StoreDriverPostgres
)

// String returns the string representation of the store driver
func (d StoreDriver) String() string {
	switch d {
	case StoreDriverSQLite:
		return "sqlite"
	case StoreDriverPostgres:
		return "postgres"
	default:
		return "unknown"
	}
}

// IsValid checks if the store driver is supported
func (d StoreDriver) IsValid() bool {
	return d == StoreDriverSQLite || d == StoreDriverPostgres
}

// StoreDriverFromString converts string to StoreDriver enum
func StoreDriverFromString(s string) StoreDriver {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "sqlite", "sqlite3":
		return StoreDriverSQLite
	case "postgres", "postgresql":
		return StoreDriverPostgres
	default:
		return StoreDriverUnknown
	}
}

// UnmarshalText implements encoding.TextUnmarshaler for envconfig
func (d *StoreDriver) UnmarshalText(text []byte) error {
	*d = StoreDriverFromString(string(text))
	return nil
}

// MarshalText implements encoding.TextMarshaler for envconfig
func (d StoreDriver) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

type StoreConfig struct {
	Driver     StoreDriver    `envconfig:"STORE_DRIVER" default:"sqlite"`
	SQLitePath string         `envconfig:"STORE_SQLITE_PATH" default:"data/terraweave.db"`
	Postgres   DatabaseConfig `split_words:"true"`
}

type DatabaseConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     int    `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" default:"postgres"`
	Password string `envconfig:"DB_PASSWORD" default:"postgres"`
	Name     string `envconfig:"DB_NAME" default:"terraweave"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
}

func (c DatabaseConfig) GetDSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode)
}

type AuthConfig struct {
	JWTSecret     string `envconfig:"AUTH_JWT_SECRET" default:"terraweave-nasa-hackathon-2024"`
	TokenTTLHours int    `envconfig:"AUTH_TOKEN_TTL_HOURS" default:"24"`
	DemoMode      bool   `envconfig:"AUTH_DEMO_MODE" default:"false"`
}

type SeedConfig struct {
	AdminPassword string `envconfig:"SEED_ADMIN_PASSWORD" default:"password123"`
}

type NASAConfig struct {
	ImageryBaseURL string `envconfig:"NASA_IMAGERY_BASE_URL" default:"https://landsat.terraweave.app/imagery"`
}

type LogConfig struct {
	Level    string `envconfig:"LOG_LEVEL" default:"info"`
	FilePath string `envconfig:"LOG_FILE_PATH"`
}

func LoadConfig() (*Config, error) {
	var config Config
	if err := envconfig.Process("", &config); err != nil {
		return nil, errors.NewConfigurationError("error processing config", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

func (c *Config) Validate() error {
	if err := c.Server.Validate(); err != nil {
		return err
	}
	if err := c.Store.Validate(); err != nil {
		return err
	}
	if err := c.Auth.Validate(); err != nil {
		return err
	}
	if err := c.Seed.Validate(); err != nil {
		return err
	}
	if err := c.NASA.Validate(); err != nil {
		return err
	}
	return c.Log.Validate()
}

func (s *ServerConfig) Validate() error {
	if s.Port < 1 || s.Port > maxPortNumber {
		return errors.NewConfigurationError("SERVER_PORT must be between 1 and 65535", nil)
	}
	if strings.TrimSpace(s.StaticDir) == "" {
		return errors.NewConfigurationError("STATIC_DIR cannot be empty", nil)
	}
	if strings.TrimSpace(s.CORSAllowedOrigin) == "" {
		return errors.NewConfigurationError("CORS_ALLOWED_ORIGIN cannot be empty", nil)
	}
	return nil
}

func (s *StoreConfig) Validate() error {
	switch s.Driver {
	case StoreDriverSQLite:
		if strings.TrimSpace(s.SQLitePath) == "" {
			return errors.NewConfigurationError("STORE_SQLITE_PATH cannot be empty when STORE_DRIVER is sqlite", nil)
		}
		return nil
	case StoreDriverPostgres:
		return s.Postgres.Validate()
	default:
		return errors.NewConfigurationError("STORE_DRIVER must be one of: sqlite, postgres", nil)
	}
}

func (d *DatabaseConfig) Validate() error {
	if d.Host == "" {
		return errors.NewConfigurationError("DB_HOST cannot be empty", nil)
	}
	if d.Port < 1 || d.Port > maxPortNumber {
		return errors.NewConfigurationError("DB_PORT must be between 1 and 65535", nil)
	}
	if d.User == "" {
		return errors.NewConfigurationError("DB_USER cannot be empty", nil)
	}
	if d.Name == "" {
		return errors.NewConfigurationError("DB_NAME cannot be empty", nil)
	}
	return d.ValidateSSLMode()
}

func (d *DatabaseConfig) ValidateSSLMode() error {
	validSSLModes := []string{"disable", "require", "verify-ca", "verify-full"}
	for _, mode := range validSSLModes {
		if d.SSLMode == mode {
			return nil
		}
	}
	return errors.NewConfigurationError(
		fmt.Sprintf("DB_SSL_MODE must be one of: %s", strings.Join(validSSLModes, ", ")), nil)
}

func (a *AuthConfig) Validate() error {
	if len(a.JWTSecret) < minJWTSecretBytes {
		return errors.NewConfigurationError(
			fmt.Sprintf("AUTH_JWT_SECRET must be at least %d characters", minJWTSecretBytes), nil)
	}
	if a.TokenTTLHours < 1 || a.TokenTTLHours > maxTokenTTLHours {
		return errors.NewConfigurationError("AUTH_TOKEN_TTL_HOURS must be between 1 and 720", nil)
	}
	return nil
}

func (s *SeedConfig) Validate() error {
	if strings.TrimSpace(s.AdminPassword) == "" {
		return errors.NewConfigurationError("SEED_ADMIN_PASSWORD cannot be empty", nil)
	}
	return nil
}

func (n *NASAConfig) Validate() error {
	if !strings.HasPrefix(n.ImageryBaseURL, "http://") && !strings.HasPrefix(n.ImageryBaseURL, "https://") {
		return errors.NewConfigurationError("NASA_IMAGERY_BASE_URL must start with http:// or https://", nil)
	}
	return nil
}

func (l *LogConfig) Validate() error {
	switch strings.ToLower(l.Level) {
	case "debug", "info", "warn", "warning", "error":
		return nil
	default:
		return errors.NewConfigurationError("LOG_LEVEL must be one of: debug, info, warn, error", nil)
	}
}
