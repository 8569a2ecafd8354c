package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"terraweave.app/internal/adapters/api"
	"terraweave.app/internal/config"
	"terraweave.app/internal/core/action"
	"terraweave.app/internal/core/auth"
	"terraweave.app/internal/core/climate"
	"terraweave.app/internal/core/energy"
	"terraweave.app/internal/core/nasa"
	"terraweave.app/internal/ports"
)

type Application struct {
	config *config.Config

	// Use Cases
	authUseCase    *auth.UseCase
	climateUseCase *climate.UseCase
	energyUseCase  *energy.UseCase
	actionUseCase  *action.UseCase
	nasaUseCase    *nasa.UseCase

	// Adapters
	httpServer *http.Server
	router     *gin.Engine

	// Infrastructure
	deps  *DependencyContainer
	ports *ports.ApplicationPorts
}

// NewApplication loads configuration, prepares the store and wires every layer
func NewApplication(ctx context.Context) (*Application, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}

	deps, err := NewDependencyContainer(ctx, DependencyConfig{Config: cfg})
	if err != nil {
		return nil, fmt.Errorf("create dependency container: %w", err)
	}

	app, err := NewApplicationWithDependencies(cfg, deps)
	if err != nil {
		_ = deps.Cleanup()
		return nil, err
	}
	return app, nil
}

// NewApplicationWithDependencies creates an application over a prepared container
func NewApplicationWithDependencies(cfg *config.Config, deps *DependencyContainer) (*Application, error) {
	app := &Application{
		config: cfg,
		deps:   deps,
		ports:  deps.ApplicationPorts(),
	}

	if err := app.initializeUseCases(); err != nil {
		return nil, fmt.Errorf("initialize use cases: %w", err)
	}

	if err := app.initializeAdapters(); err != nil {
		return nil, fmt.Errorf("initialize adapters: %w", err)
	}

	return app, nil
}

func (a *Application) initializeUseCases() error {
	slog.Info("Initializing use cases...")

	authUseCase, err := auth.NewUseCase(auth.UseCaseDependencies{
		UserRepo: a.ports.UserRepository,
		Tokens:   a.ports.TokenService,
		Hasher:   a.ports.PasswordHasher,
		Config:   a.ports.ConfigProvider,
		Metrics:  a.deps.MetricsCollector(),
		Clock:    a.deps.Clock(),
		Logger:   a.ports.Logger,
	})
	if err != nil {
		return fmt.Errorf("create auth use case: %w", err)
	}
	a.authUseCase = authUseCase

	climateUseCase, err := climate.NewUseCase(climate.UseCaseDependencies{
		CityRepo:   a.ports.CityRepository,
		SeriesRepo: a.ports.ClimateDataRepository,
		Logger:     a.ports.Logger,
	})
	if err != nil {
		return fmt.Errorf("create climate use case: %w", err)
	}
	a.climateUseCase = climateUseCase

	energyUseCase, err := energy.NewUseCase(energy.UseCaseDependencies{
		PlantRepo: a.ports.EnergyPlantRepository,
		Logger:    a.ports.Logger,
	})
	if err != nil {
		return fmt.Errorf("create energy use case: %w", err)
	}
	a.energyUseCase = energyUseCase

	actionUseCase, err := action.NewUseCase(action.UseCaseDependencies{
		RecommendationRepo: a.ports.RecommendationRepository,
		UserActionRepo:     a.ports.UserActionRepository,
		Logger:             a.ports.Logger,
	})
	if err != nil {
		return fmt.Errorf("create action use case: %w", err)
	}
	a.actionUseCase = actionUseCase

	nasaUseCase, err := nasa.NewUseCase(nasa.UseCaseDependencies{
		Config: a.ports.ConfigProvider,
		Clock:  a.deps.Clock(),
		Logger: a.ports.Logger,
	})
	if err != nil {
		return fmt.Errorf("create NASA use case: %w", err)
	}
	a.nasaUseCase = nasaUseCase

	slog.Info("Use cases initialized successfully")
	return nil
}

func (a *Application) initializeAdapters() error {
	slog.Info("Initializing adapters...")

	httpAdapter, err := api.NewHTTPServerAdapter(api.ServerOptions{
		Config: api.ServerConfig{
			Port:              a.config.Server.Port,
			StaticDir:         a.config.Server.StaticDir,
			CORSAllowedOrigin: a.config.Server.CORSAllowedOrigin,
		},
		AuthUseCase:         a.authUseCase,
		ClimateUseCase:      a.climateUseCase,
		EnergyUseCase:       a.energyUseCase,
		ActionUseCase:       a.actionUseCase,
		NASAUseCase:         a.nasaUseCase,
		MetricsCollector:    a.deps.MetricsCollector(),
		SystemHealthChecker: a.deps.SystemHealthChecker(),
		MetricsHandler:      a.deps.MetricsHandler(),
		Clock:               a.deps.Clock(),
		RequestLogging:      gin.Mode() != gin.TestMode,
	})
	if err != nil {
		return fmt.Errorf("create HTTP adapter: %w", err)
	}

	a.router = httpAdapter.GetRouter()

	a.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", a.config.Server.Port),
		Handler:      a.router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	slog.Info("Adapters initialized successfully")
	return nil
}

func (a *Application) Start(ctx context.Context) error {
	slog.Info("Starting application...")

	if a.config.Auth.DemoMode {
		slog.Warn("AUTH_DEMO_MODE is enabled: any password is accepted for known emails")
	}

	slog.Info("Starting HTTP server", "port", a.config.Server.Port,
		"store", a.config.Store.Driver.String())
	if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("HTTP server error: %w", err)
	}

	return nil
}

func (a *Application) Shutdown(ctx context.Context) error {
	slog.Info("Shutting down application...")

	if err := a.httpServer.Shutdown(ctx); err != nil {
		slog.Error("Error shutting down HTTP server", "error", err)
		return fmt.Errorf("shutdown HTTP server: %w", err)
	}

	if err := a.deps.Cleanup(); err != nil {
		slog.Warn("Error closing store", "error", err)
	}

	slog.Info("Application shutdown complete")
	return nil
}

// Config returns the application configuration
func (a *Application) Config() *config.Config {
	return a.config
}

// GetRouter returns the Gin router for testing
func (a *Application) GetRouter() *gin.Engine {
	return a.router
}
