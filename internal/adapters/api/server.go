// Package api provides HTTP adapters for the hexagonal architecture
// These adapters handle incoming HTTP requests and translate them to use cases
package api

import (
	"context"
	"fmt"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/jonboulle/clockwork"
	"terraweave.app/internal/core/action"
	"terraweave.app/internal/core/auth"
	"terraweave.app/internal/core/climate"
	"terraweave.app/internal/core/energy"
	"terraweave.app/internal/core/nasa"
	"terraweave.app/internal/ports"
	"terraweave.app/pkg/errors"
)

// ServerConfig represents HTTP server configuration
type ServerConfig struct {
	Port              int
	StaticDir         string
	CORSAllowedOrigin string
}

// HTTPServerAdapter implements HTTP server using Gin framework
type HTTPServerAdapter struct {
	router              *gin.Engine
	config              ServerConfig
	authUseCase         AuthUseCase
	climateUseCase      ClimateUseCase
	energyUseCase       EnergyUseCase
	actionUseCase       ActionUseCase
	nasaUseCase         NASAUseCase
	metricsCollector    ports.MetricsCollector
	systemHealthChecker ports.SystemHealthChecker
	metricsHandler      http.Handler
	clock               clockwork.Clock
}

// Use case interfaces that the HTTP adapter depends on
type AuthUseCase interface {
	Authenticate(ctx context.Context, creds auth.Credentials) (*auth.Result, error)
	VerifyToken(ctx context.Context, token string) (*ports.TokenClaims, error)
	Profile(ctx context.Context, userID uint) (*auth.User, error)
}

type ClimateUseCase interface {
	ListCities(ctx context.Context) ([]climate.City, error)
	GetTimeSeries(ctx context.Context, request climate.SeriesRequest) ([]climate.DataPoint, error)
}

type EnergyUseCase interface {
	ListPlants(ctx context.Context) ([]energy.Plant, error)
}

type ActionUseCase interface {
	ListRecommendations(ctx context.Context, request action.RecommendationRequest) ([]action.Recommendation, error)
	Summarize(ctx context.Context, userID uint) (*action.Summary, error)
}

type NASAUseCase interface {
	GetSatelliteAnalysis(ctx context.Context, location string) *nasa.SatelliteAnalysis
	GetCityAnomaly(ctx context.Context, city string) *nasa.CityAnomaly
}

// ServerOptions represents options for creating the HTTP server
type ServerOptions struct {
	Config              ServerConfig
	AuthUseCase         AuthUseCase
	ClimateUseCase      ClimateUseCase
	EnergyUseCase       EnergyUseCase
	ActionUseCase       ActionUseCase
	NASAUseCase         NASAUseCase
	MetricsCollector    ports.MetricsCollector
	SystemHealthChecker ports.SystemHealthChecker
	// MetricsHandler serves /metrics when set
	MetricsHandler http.Handler
	Clock          clockwork.Clock
	// RequestLogging enables gin's access log
	RequestLogging bool
}

// NewHTTPServerAdapter creates a new HTTP server adapter
func NewHTTPServerAdapter(opts ServerOptions) (*HTTPServerAdapter, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("invalid server options: %w", err)
	}
	if opts.Clock == nil {
		opts.Clock = clockwork.NewRealClock()
	}
	if opts.Config.CORSAllowedOrigin == "" {
		opts.Config.CORSAllowedOrigin = "*"
	}

	router := gin.New()
	if opts.RequestLogging {
		router.Use(gin.Logger())
	}
	router.Use(gin.Recovery())

	server := &HTTPServerAdapter{
		router:              router,
		config:              opts.Config,
		authUseCase:         opts.AuthUseCase,
		climateUseCase:      opts.ClimateUseCase,
		energyUseCase:       opts.EnergyUseCase,
		actionUseCase:       opts.ActionUseCase,
		nasaUseCase:         opts.NASAUseCase,
		metricsCollector:    opts.MetricsCollector,
		systemHealthChecker: opts.SystemHealthChecker,
		metricsHandler:      opts.MetricsHandler,
		clock:               opts.Clock,
	}

	server.setupRoutes()
	return server, nil
}

// Validate checks if all required dependencies are provided
func (opts *ServerOptions) Validate() error {
	if opts.AuthUseCase == nil {
		return errors.NewValidationError("auth use case is required")
	}
	if opts.ClimateUseCase == nil {
		return errors.NewValidationError("climate use case is required")
	}
	if opts.EnergyUseCase == nil {
		return errors.NewValidationError("energy use case is required")
	}
	if opts.ActionUseCase == nil {
		return errors.NewValidationError("action use case is required")
	}
	if opts.NASAUseCase == nil {
		return errors.NewValidationError("NASA use case is required")
	}
	if strings.TrimSpace(opts.Config.StaticDir) == "" {
		return errors.NewValidationError("static directory is required")
	}
	return nil
}

// setupRoutes configures all HTTP routes
func (s *HTTPServerAdapter) setupRoutes() {
	s.router.Use(
		requestIDMiddleware(),
		corsMiddleware(s.config.CORSAllowedOrigin),
		metricsMiddleware(s.metricsCollector, s.clock),
	)

	api := s.router.Group("/api")
	{
		api.POST("/auth/login", s.login)
		api.GET("/auth/me", s.requireToken(), s.me)

		api.GET("/cities", s.listCities)
		api.GET("/climate-data/:location", s.getClimateData)
		api.GET("/energy-plants", s.listEnergyPlants)
		api.GET("/recommendations/:locationType", s.listRecommendations)

		api.GET("/nasa/landsat/:location", s.getLandsat)
		api.GET("/nasa/climate/:city", s.getCityAnomaly)

		api.GET("/health", s.health)
		api.GET("/health/details", s.healthDetails)
	}

	if s.metricsHandler != nil {
		s.router.GET("/metrics", gin.WrapH(s.metricsHandler))
	}

	s.setupStaticFiles()
}

// GetRouter returns the router for testing purposes
func (s *HTTPServerAdapter) GetRouter() *gin.Engine {
	return s.router
}

// setupStaticFiles serves the HTML shells; unknown non-API paths fall back to the index page
func (s *HTTPServerAdapter) setupStaticFiles() {
	dir := s.config.StaticDir
	index := filepath.Join(dir, "index.html")

	s.router.Static("/static", filepath.Join(dir, "static"))
	s.router.StaticFile("/", index)
	s.router.StaticFile("/login", filepath.Join(dir, "login.html"))
	s.router.StaticFile("/dashboard", filepath.Join(dir, "dashboard.html"))

	s.router.NoRoute(func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, "/api/") || c.Request.URL.Path == "/api" {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Not found"})
			return
		}
		c.File(index)
	})
}
