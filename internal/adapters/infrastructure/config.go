package infrastructure

import (
	"time"

	"terraweave.app/internal/config"
	"terraweave.app/internal/ports"
)

// ConfigProviderAdapter implements the ConfigProvider port
type ConfigProviderAdapter struct {
	config *config.Config
}

// NewConfigProviderAdapter creates a new config provider adapter
func NewConfigProviderAdapter(cfg *config.Config) *ConfigProviderAdapter {
	return &ConfigProviderAdapter{
		config: cfg,
	}
}

// GetAuthConfig returns authentication configuration
func (c *ConfigProviderAdapter) GetAuthConfig() ports.AuthConfig {
	return ports.AuthConfig{
		TokenTTL: time.Duration(c.config.Auth.TokenTTLHours) * time.Hour,
		DemoMode: c.config.Auth.DemoMode,
	}
}

// GetNASAConfig returns configuration of the mocked imagery endpoints
func (c *ConfigProviderAdapter) GetNASAConfig() ports.NASAConfig {
	return ports.NASAConfig{
		ImageryBaseURL: c.config.NASA.ImageryBaseURL,
	}
}

// GetServerConfig returns server configuration
func (c *ConfigProviderAdapter) GetServerConfig() ports.ServerConfig {
	return ports.ServerConfig{
		Port:              c.config.Server.Port,
		StaticDir:         c.config.Server.StaticDir,
		CORSAllowedOrigin: c.config.Server.CORSAllowedOrigin,
	}
}

// GetStoreConfig returns the store driver and its connection target
func (c *ConfigProviderAdapter) GetStoreConfig() ports.StoreConfig {
	store := ports.StoreConfig{Driver: c.config.Store.Driver.String()}
	switch c.config.Store.Driver {
	case config.StoreDriverPostgres:
		store.Target = c.config.Store.Postgres.GetDSN()
	default:
		store.Target = c.config.Store.SQLitePath
	}
	return store
}
