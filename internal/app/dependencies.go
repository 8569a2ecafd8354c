package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/jonboulle/clockwork"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"
	"terraweave.app/internal/adapters/database"
	"terraweave.app/internal/adapters/infrastructure"
	"terraweave.app/internal/adapters/security"
	"terraweave.app/internal/config"
	"terraweave.app/internal/ports"
	"terraweave.app/pkg/logger"
)

type DependencyContainer struct {
	config  DependencyConfig
	clock   clockwork.Clock
	db      *gorm.DB
	ports   *ports.ApplicationPorts
	metrics *infrastructure.PrometheusMetricsCollector
	health  *infrastructure.SystemHealthChecker
}

type DependencyConfig struct {
	Config *config.Config
	// Registerer and Gatherer default to the prometheus globals
	Registerer prometheus.Registerer
	Gatherer   prometheus.Gatherer
	Clock      clockwork.Clock
	// HashCost overrides bcrypt.DefaultCost when non-zero
	HashCost int
}

func NewDependencyContainer(ctx context.Context, depConfig DependencyConfig) (*DependencyContainer, error) {
	if depConfig.Config == nil {
		return nil, fmt.Errorf("configuration is required")
	}
	if depConfig.Registerer == nil {
		depConfig.Registerer = prometheus.DefaultRegisterer
	}
	if depConfig.Gatherer == nil {
		depConfig.Gatherer = prometheus.DefaultGatherer
	}
	if depConfig.Clock == nil {
		depConfig.Clock = clockwork.NewRealClock()
	}

	container := &DependencyContainer{
		config: depConfig,
		clock:  depConfig.Clock,
	}

	if err := container.initializePorts(); err != nil {
		return nil, fmt.Errorf("initialize ports: %w", err)
	}

	if err := RunSetup(ctx, container.setupSteps(), container.ports.Logger); err != nil {
		_ = container.Cleanup()
		return nil, fmt.Errorf("run setup: %w", err)
	}

	container.wireStore()
	return container, nil
}

func (c *DependencyContainer) initializePorts() error {
	slog.Info("Initializing ports...")
	cfg := c.config.Config

	var log ports.Logger = infrastructure.NewSlogLoggerAdapter(slog.Default())
	if cfg.Log.FilePath != "" {
		fileLogger, err := infrastructure.NewFileLoggerAdapter(infrastructure.FileLoggerConfig{
			Path:     cfg.Log.FilePath,
			MinLevel: logger.ParseLevel(cfg.Log.Level),
			Clock:    c.clock,
		})
		if err != nil {
			slog.Warn("Failed to create file logger, falling back to slog", "error", err)
		} else {
			log = fileLogger
			slog.Info("File logging enabled", "path", cfg.Log.FilePath)
		}
	}

	configProvider := infrastructure.NewConfigProviderAdapter(cfg)

	tokens, err := security.NewJWTTokenService(security.JWTTokenServiceConfig{
		Secret: cfg.Auth.JWTSecret,
		TTL:    configProvider.GetAuthConfig().TokenTTL,
		Clock:  c.clock,
	})
	if err != nil {
		return fmt.Errorf("create token service: %w", err)
	}

	metrics, err := infrastructure.NewPrometheusMetricsCollector(c.config.Registerer)
	if err != nil {
		return fmt.Errorf("register metrics: %w", err)
	}
	c.metrics = metrics

	c.ports = &ports.ApplicationPorts{
		TokenService:   tokens,
		PasswordHasher: security.NewBcryptHasher(c.config.HashCost),
		ConfigProvider: configProvider,
		Logger:         log,
	}

	slog.Info("Ports initialized successfully")
	return nil
}

// setupSteps lists the startup work in execution order
func (c *DependencyContainer) setupSteps() []SetupStep {
	steps := []SetupStep{
		{Name: "open store", Fatal: true, Run: c.openStore},
		{Name: "migrate schema", Fatal: true, Run: func(ctx context.Context) error {
			return database.Migrate(ctx, c.db)
		}},
	}

	seeds := []struct {
		name string
		run  func(*database.Seeder, context.Context) error
	}{
		{"seed users", (*database.Seeder).SeedUsers},
		{"seed cities", (*database.Seeder).SeedCities},
		{"seed climate data", (*database.Seeder).SeedClimateData},
		{"seed energy plants", (*database.Seeder).SeedEnergyPlants},
		{"seed recommendations", (*database.Seeder).SeedRecommendations},
		{"seed user actions", (*database.Seeder).SeedUserActions},
	}
	for _, seed := range seeds {
		run := seed.run
		steps = append(steps, SetupStep{Name: seed.name, Run: func(ctx context.Context) error {
			seeder, err := database.NewSeeder(database.SeederConfig{
				DB:            c.db,
				Hasher:        c.ports.PasswordHasher,
				Clock:         c.clock,
				AdminPassword: c.config.Config.Seed.AdminPassword,
			})
			if err != nil {
				return err
			}
			return run(seeder, ctx)
		}})
	}

	return steps
}

func (c *DependencyContainer) openStore(ctx context.Context) error {
	storeConfig := c.ports.ConfigProvider.GetStoreConfig()
	slog.Info("Opening store", "driver", storeConfig.Driver)

	db, err := database.Open(storeConfig)
	if err != nil {
		return err
	}
	c.db = db
	return nil
}

// wireStore builds the repositories and health checks once the store is ready
func (c *DependencyContainer) wireStore() {
	c.ports.UserRepository = database.NewUserRepositoryAdapter(c.db)
	c.ports.CityRepository = database.NewCityRepositoryAdapter(c.db)
	c.ports.ClimateDataRepository = database.NewClimateDataRepositoryAdapter(c.db)
	c.ports.EnergyPlantRepository = database.NewEnergyPlantRepositoryAdapter(c.db)
	c.ports.RecommendationRepository = database.NewRecommendationRepositoryAdapter(c.db)
	c.ports.UserActionRepository = database.NewUserActionRepositoryAdapter(c.db)
	c.ports.Database = c.db

	c.health = infrastructure.NewSystemHealthChecker(infrastructure.SystemHealthCheckerConfig{
		DatabaseChecker: infrastructure.NewDatabaseHealthChecker(c.db, c.ports.ConfigProvider.GetStoreConfig().Driver, c.clock),
		ConfigProvider:  c.ports.ConfigProvider,
	})
}

func (c *DependencyContainer) ApplicationPorts() *ports.ApplicationPorts {
	return c.ports
}

func (c *DependencyContainer) Database() *gorm.DB {
	return c.db
}

func (c *DependencyContainer) Clock() clockwork.Clock {
	return c.clock
}

func (c *DependencyContainer) MetricsCollector() ports.MetricsCollector {
	return c.metrics
}

func (c *DependencyContainer) SystemHealthChecker() ports.SystemHealthChecker {
	return c.health
}

// MetricsHandler serves the Prometheus exposition of the container's gatherer
func (c *DependencyContainer) MetricsHandler() http.Handler {
	return promhttp.HandlerFor(c.config.Gatherer, promhttp.HandlerOpts{})
}

// Cleanup closes the store
func (c *DependencyContainer) Cleanup() error {
	return database.Close(c.db)
}
