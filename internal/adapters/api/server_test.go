package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jonboulle/clockwork"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"terraweave.app/internal/core/action"
	"terraweave.app/internal/core/auth"
	"terraweave.app/internal/core/climate"
	"terraweave.app/internal/core/energy"
	"terraweave.app/internal/core/nasa"
	"terraweave.app/internal/mocks"
	"terraweave.app/internal/ports"
	"terraweave.app/pkg/errors"
)

var testNow = time.Date(2024, 10, 5, 12, 0, 0, 0, time.UTC)

type apiFixture struct {
	router      *gin.Engine
	users       *mocks.UserRepository
	cities      *mocks.CityRepository
	series      *mocks.ClimateDataRepository
	plants      *mocks.EnergyPlantRepository
	recs        *mocks.RecommendationRepository
	actions     *mocks.UserActionRepository
	tokens      *mocks.TokenService
	hasher      *mocks.PasswordHasher
	metrics     *mocks.MetricsCollector
	healthCheck *mocks.SystemHealthChecker
}

func newAPIFixture(t *testing.T) *apiFixture {
	t.Helper()
	gin.SetMode(gin.TestMode)

	f := &apiFixture{
		users:       mocks.NewUserRepository(t),
		cities:      mocks.NewCityRepository(t),
		series:      mocks.NewClimateDataRepository(t),
		plants:      mocks.NewEnergyPlantRepository(t),
		recs:        mocks.NewRecommendationRepository(t),
		actions:     mocks.NewUserActionRepository(t),
		tokens:      mocks.NewTokenService(t),
		hasher:      mocks.NewPasswordHasher(t),
		metrics:     mocks.NewMetricsCollector(t),
		healthCheck: mocks.NewSystemHealthChecker(t),
	}
	f.metrics.On("RecordRequest", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Maybe()
	f.metrics.On("RecordLogin", mock.Anything).Maybe()

	logger := mocks.NewLogger(t).AllowAll()
	clock := clockwork.NewFakeClockAt(testNow)

	config := mocks.NewConfigProvider(t)
	config.On("GetAuthConfig").Return(ports.AuthConfig{TokenTTL: 24 * time.Hour}).Maybe()
	config.On("GetNASAConfig").Return(ports.NASAConfig{ImageryBaseURL: "https://imagery.test/landsat"}).Maybe()

	authUC, err := auth.NewUseCase(auth.UseCaseDependencies{
		UserRepo: f.users,
		Tokens:   f.tokens,
		Hasher:   f.hasher,
		Config:   config,
		Metrics:  f.metrics,
		Clock:    clock,
		Logger:   logger,
	})
	require.NoError(t, err)

	climateUC, err := climate.NewUseCase(climate.UseCaseDependencies{
		CityRepo:   f.cities,
		SeriesRepo: f.series,
		Logger:     logger,
	})
	require.NoError(t, err)

	energyUC, err := energy.NewUseCase(energy.UseCaseDependencies{PlantRepo: f.plants, Logger: logger})
	require.NoError(t, err)

	actionUC, err := action.NewUseCase(action.UseCaseDependencies{
		RecommendationRepo: f.recs,
		UserActionRepo:     f.actions,
		Logger:             logger,
	})
	require.NoError(t, err)

	nasaUC, err := nasa.NewUseCase(nasa.UseCaseDependencies{Config: config, Clock: clock, Logger: logger})
	require.NoError(t, err)

	server, err := NewHTTPServerAdapter(ServerOptions{
		Config:              ServerConfig{Port: 3000, StaticDir: writeStaticDir(t), CORSAllowedOrigin: "*"},
		AuthUseCase:         authUC,
		ClimateUseCase:      climateUC,
		EnergyUseCase:       energyUC,
		ActionUseCase:       actionUC,
		NASAUseCase:         nasaUC,
		MetricsCollector:    f.metrics,
		SystemHealthChecker: f.healthCheck,
		MetricsHandler: http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("# metrics"))
		}),
		Clock: clock,
	})
	require.NoError(t, err)

	f.router = server.GetRouter()
	return f
}

func writeStaticDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	for name, body := range map[string]string{
		"index.html":     "<title>index</title>",
		"login.html":     "<title>login</title>",
		"dashboard.html": "<title>dashboard</title>",
	} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(body), 0o600))
	}
	return dir
}

func (f *apiFixture) do(method, path, body string, headers ...string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	return w
}

func decodeJSON(t *testing.T, w *httptest.ResponseRecorder, v any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), v), w.Body.String())
}

func adminData() *ports.UserData {
	return &ports.UserData{
		ID:           1,
		Email:        "admin@terraweave.com",
		PasswordHash: "$2a$10$hash",
		Name:         "Admin User",
		Organization: "TerraWeave",
	}
}

func TestNewHTTPServerAdapter_RequiresUseCases(t *testing.T) {
	_, err := NewHTTPServerAdapter(ServerOptions{Config: ServerConfig{StaticDir: "public"}})

	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
}

func TestLogin(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		f := newAPIFixture(t)
		expires := testNow.Add(24 * time.Hour)
		f.users.On("FindByEmail", mock.Anything, "admin@terraweave.com").Return(adminData(), nil)
		f.hasher.On("Compare", "$2a$10$hash", "password123").Return(nil)
		f.tokens.On("Issue", mock.Anything, uint(1), "admin@terraweave.com").
			Return("signed.jwt.token", &ports.TokenClaims{UserID: 1, ExpiresAt: expires}, nil)
		f.users.On("TouchLastLogin", mock.Anything, uint(1), mock.Anything).Return(nil)

		w := f.do(http.MethodPost, "/api/auth/login", `{"email":" Admin@TerraWeave.com ","password":"password123"}`)

		require.Equal(t, http.StatusOK, w.Code)
		var resp LoginResponse
		decodeJSON(t, w, &resp)
		assert.True(t, resp.Success)
		assert.Equal(t, "signed.jwt.token", resp.Token)
		assert.True(t, expires.Equal(resp.ExpiresAt))
		assert.Equal(t, uint(1), resp.User.ID)
		assert.Equal(t, "Admin User", resp.User.Name)
		assert.Equal(t, "TerraWeave", resp.User.Organization)
		f.metrics.AssertCalled(t, "RecordLogin", auth.OutcomeSuccess)
	})

	t.Run("WrongPassword", func(t *testing.T) {
		f := newAPIFixture(t)
		f.users.On("FindByEmail", mock.Anything, "admin@terraweave.com").Return(adminData(), nil)
		f.hasher.On("Compare", "$2a$10$hash", "nope").Return(errors.NewAuthError("password mismatch"))

		w := f.do(http.MethodPost, "/api/auth/login", `{"email":"admin@terraweave.com","password":"nope"}`)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, "Invalid credentials", decodeError(t, w))
	})

	t.Run("UnknownEmail", func(t *testing.T) {
		f := newAPIFixture(t)
		f.users.On("FindByEmail", mock.Anything, "ghost@terraweave.com").Return(nil, errors.NewNotFoundError("user not found"))

		w := f.do(http.MethodPost, "/api/auth/login", `{"email":"ghost@terraweave.com","password":"x"}`)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, "Invalid credentials", decodeError(t, w))
	})

	t.Run("MissingEmail", func(t *testing.T) {
		f := newAPIFixture(t)

		w := f.do(http.MethodPost, "/api/auth/login", `{"password":"password123"}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "email is required", decodeError(t, w))
		f.users.AssertNotCalled(t, "FindByEmail", mock.Anything, mock.Anything)
		f.metrics.AssertCalled(t, "RecordLogin", auth.OutcomeBadRequest)
	})

	t.Run("MissingPassword", func(t *testing.T) {
		f := newAPIFixture(t)

		w := f.do(http.MethodPost, "/api/auth/login", `{"email":"admin@terraweave.com"}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "password is required", decodeError(t, w))
		f.metrics.AssertCalled(t, "RecordLogin", auth.OutcomeBadRequest)
	})

	t.Run("MalformedBody", func(t *testing.T) {
		f := newAPIFixture(t)

		w := f.do(http.MethodPost, "/api/auth/login", `{"email":`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "invalid request body", decodeError(t, w))
		f.metrics.AssertCalled(t, "RecordLogin", auth.OutcomeBadRequest)
		f.users.AssertNotCalled(t, "FindByEmail", mock.Anything, mock.Anything)
	})

	t.Run("StoreFailure", func(t *testing.T) {
		f := newAPIFixture(t)
		f.users.On("FindByEmail", mock.Anything, "admin@terraweave.com").
			Return(nil, errors.NewDatabaseError("failed to find user", fmt.Errorf("disk I/O error")))

		w := f.do(http.MethodPost, "/api/auth/login", `{"email":"admin@terraweave.com","password":"password123"}`)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, "Internal server error", decodeError(t, w))
	})
}

func TestMe(t *testing.T) {
	t.Run("MissingToken", func(t *testing.T) {
		f := newAPIFixture(t)

		w := f.do(http.MethodGet, "/api/auth/me", "")

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, "missing bearer token", decodeError(t, w))
	})

	t.Run("ExpiredToken", func(t *testing.T) {
		f := newAPIFixture(t)
		f.tokens.On("Verify", mock.Anything, "stale").Return(nil, errors.NewTokenError("token expired", nil))

		w := f.do(http.MethodGet, "/api/auth/me", "", "Authorization", "Bearer stale")

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, "token expired", decodeError(t, w))
	})

	t.Run("ProfileWithActions", func(t *testing.T) {
		f := newAPIFixture(t)
		completed := time.Date(2024, 9, 15, 0, 0, 0, 0, time.UTC)
		f.tokens.On("Verify", mock.Anything, "good").Return(&ports.TokenClaims{UserID: 1, Email: "admin@terraweave.com"}, nil)
		f.users.On("FindByID", mock.Anything, uint(1)).Return(adminData(), nil)
		f.actions.On("ListCompletedByUser", mock.Anything, uint(1)).Return([]*ports.UserActionData{
			{ID: 1, UserID: 1, RecommendationID: 2, ActionTaken: true, DateCompleted: &completed,
				ImpactCO2: decimal.RequireFromString("0.5"), RecommendationText: "Switch to LED lighting"},
			{ID: 2, UserID: 1, RecommendationID: 1, ActionTaken: true,
				ImpactCO2: decimal.RequireFromString("2.3"), RecommendationText: "Use public transport"},
		}, nil)

		w := f.do(http.MethodGet, "/api/auth/me", "", "Authorization", "Bearer good")

		require.Equal(t, http.StatusOK, w.Code)
		var resp ProfileResponse
		decodeJSON(t, w, &resp)
		assert.Equal(t, "admin@terraweave.com", resp.User.Email)
		require.Len(t, resp.Actions, 2)
		assert.Equal(t, "Switch to LED lighting", resp.Actions[0].Recommendation)
		assert.InDelta(t, 2.8, resp.TotalImpactCO2, 1e-9)
	})
}

func TestListCities(t *testing.T) {
	f := newAPIFixture(t)
	f.cities.On("ListCities", mock.Anything).Return([]*ports.CityClimateData{
		{ID: 2, CityName: "Lagos", Country: "Nigeria", CurrentTemp: decimal.RequireFromString("31.2"),
			HistoricalAvgTemp: decimal.RequireFromString("27.5"), AQI: 155},
		{ID: 1, CityName: "Pretoria", Country: "South Africa", CurrentTemp: decimal.RequireFromString("28.5"),
			HistoricalAvgTemp: decimal.RequireFromString("24.2"), AQI: 85},
	}, nil)

	w := f.do(http.MethodGet, "/api/cities", "")

	require.Equal(t, http.StatusOK, w.Code)
	var resp []CityResponse
	decodeJSON(t, w, &resp)
	require.Len(t, resp, 2)
	assert.Equal(t, "Lagos", resp[0].CityName)
	assert.InDelta(t, 3.7, resp[0].Anomaly, 1e-9)
	assert.InDelta(t, 4.3, resp[1].Anomaly, 1e-9)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
	f.metrics.AssertCalled(t, "RecordRequest", http.MethodGet, "/api/cities", http.StatusOK, mock.Anything)
}

func TestGetClimateData(t *testing.T) {
	t.Run("StoredSeries", func(t *testing.T) {
		f := newAPIFixture(t)
		f.series.On("FindRecentByLocation", mock.Anything, "Pretoria", climate.MaxSeriesPoints).Return([]*ports.ClimateDataPointData{
			{ID: 4, LocationName: "Pretoria", DataType: "temperature", Year: 2024, Value: decimal.RequireFromString("28.5"), Unit: "°C", Source: "NASA GISS"},
			{ID: 3, LocationName: "Pretoria", DataType: "temperature", Year: 2020, Value: decimal.RequireFromString("27.1"), Unit: "°C", Source: "NASA GISS"},
		}, nil)

		w := f.do(http.MethodGet, "/api/climate-data/Pretoria", "")

		require.Equal(t, http.StatusOK, w.Code)
		var resp []DataPointResponse
		decodeJSON(t, w, &resp)
		require.Len(t, resp, 2)
		assert.Equal(t, 2024, resp[0].Year)
		assert.InDelta(t, 28.5, resp[0].Value, 1e-9)
	})

	t.Run("FallbackWhenEmpty", func(t *testing.T) {
		f := newAPIFixture(t)
		f.series.On("FindRecentByLocation", mock.Anything, "Atlantis", climate.MaxSeriesPoints).Return([]*ports.ClimateDataPointData{}, nil)

		w := f.do(http.MethodGet, "/api/climate-data/Atlantis", "")

		require.Equal(t, http.StatusOK, w.Code)
		var resp []DataPointResponse
		decodeJSON(t, w, &resp)
		require.Len(t, resp, 3)
		assert.Equal(t, []int{2024, 2020, 2014}, []int{resp[0].Year, resp[1].Year, resp[2].Year})
		assert.InDelta(t, 2.1, resp[0].Value, 1e-9)
		assert.InDelta(t, 2.0, resp[1].Value, 1e-9)
		assert.InDelta(t, 1.8, resp[2].Value, 1e-9)
	})

	t.Run("LongUnknownLocationGetsFallback", func(t *testing.T) {
		f := newAPIFixture(t)
		location := strings.Repeat("a", 101)
		f.series.On("FindRecentByLocation", mock.Anything, location, climate.MaxSeriesPoints).Return([]*ports.ClimateDataPointData{}, nil)

		w := f.do(http.MethodGet, "/api/climate-data/"+location, "")

		require.Equal(t, http.StatusOK, w.Code)
		var resp []DataPointResponse
		decodeJSON(t, w, &resp)
		require.Len(t, resp, 3)
		assert.Equal(t, []int{2024, 2020, 2014}, []int{resp[0].Year, resp[1].Year, resp[2].Year})
		assert.InDelta(t, 2.1, resp[0].Value, 1e-9)
		assert.InDelta(t, 2.0, resp[1].Value, 1e-9)
		assert.InDelta(t, 1.8, resp[2].Value, 1e-9)
	})

	t.Run("BlankLocationGetsFallback", func(t *testing.T) {
		f := newAPIFixture(t)

		w := f.do(http.MethodGet, "/api/climate-data/%20%20", "")

		require.Equal(t, http.StatusOK, w.Code)
		var resp []DataPointResponse
		decodeJSON(t, w, &resp)
		require.Len(t, resp, 3)
		assert.Equal(t, 2024, resp[0].Year)
		assert.InDelta(t, 2.1, resp[0].Value, 1e-9)
		f.series.AssertNotCalled(t, "FindRecentByLocation", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestListEnergyPlants(t *testing.T) {
	f := newAPIFixture(t)
	f.plants.On("ListByEmissions", mock.Anything).Return([]*ports.EnergyPlantData{
		{ID: 1, PlantName: "Kusile Power Station", PlantType: "coal", CapacityMW: decimal.RequireFromString("4800"),
			CO2EmissionsTonsPerYear: decimal.RequireFromString("30000000"), PopulationImpact: 2500000,
			Location: "Mpumalanga", Lat: decimal.RequireFromString("-25.9167"), Lng: decimal.RequireFromString("28.9167")},
		{ID: 3, PlantName: "Jasper Solar", PlantType: "solar", CapacityMW: decimal.RequireFromString("96"),
			CO2EmissionsTonsPerYear: decimal.Zero},
	}, nil)

	w := f.do(http.MethodGet, "/api/energy-plants", "")

	require.Equal(t, http.StatusOK, w.Code)
	var resp []EnergyPlantResponse
	decodeJSON(t, w, &resp)
	require.Len(t, resp, 2)
	assert.Equal(t, "Kusile Power Station", resp[0].PlantName)
	assert.InDelta(t, 30000000, resp[0].CO2EmissionsTonsPerYear, 1e-6)
	assert.InDelta(t, -25.9167, resp[0].Lat, 1e-9)
	assert.Zero(t, resp[1].CO2EmissionsTonsPerYear)
}

func TestListRecommendations(t *testing.T) {
	t.Run("Known", func(t *testing.T) {
		f := newAPIFixture(t)
		f.recs.On("ListByLocationType", mock.Anything, "urban").Return([]*ports.RecommendationData{
			{ID: 1, LocationType: "urban", ClimateIssue: "heat_island", RecommendationText: "Plant trees",
				ImpactCO2: decimal.RequireFromString("2.5"), DifficultyLevel: "medium", EstimatedCost: "$$"},
		}, nil)

		w := f.do(http.MethodGet, "/api/recommendations/Urban", "")

		require.Equal(t, http.StatusOK, w.Code)
		var resp []RecommendationResponse
		decodeJSON(t, w, &resp)
		require.Len(t, resp, 1)
		assert.Equal(t, "Plant trees", resp[0].RecommendationText)
		assert.InDelta(t, 2.5, resp[0].ImpactCO2, 1e-9)
	})

	t.Run("UnknownTypeIsEmpty", func(t *testing.T) {
		f := newAPIFixture(t)
		f.recs.On("ListByLocationType", mock.Anything, "lunar").Return([]*ports.RecommendationData{}, nil)

		w := f.do(http.MethodGet, "/api/recommendations/lunar", "")

		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `[]`, w.Body.String())
	})

	t.Run("FreeFormTypeIsEmpty", func(t *testing.T) {
		f := newAPIFixture(t)
		f.recs.On("ListByLocationType", mock.Anything, "urban area").Return([]*ports.RecommendationData{}, nil)

		w := f.do(http.MethodGet, "/api/recommendations/Urban%20Area", "")

		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `[]`, w.Body.String())
	})

	t.Run("BlankTypeIsEmpty", func(t *testing.T) {
		f := newAPIFixture(t)

		w := f.do(http.MethodGet, "/api/recommendations/%20", "")

		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `[]`, w.Body.String())
		f.recs.AssertNotCalled(t, "ListByLocationType", mock.Anything, mock.Anything)
	})
}

func TestNASAEndpoints(t *testing.T) {
	f := newAPIFixture(t)

	t.Run("CityAnomaly", func(t *testing.T) {
		w := f.do(http.MethodGet, "/api/nasa/climate/pretoria", "")

		require.Equal(t, http.StatusOK, w.Code)
		var resp CityAnomalyResponse
		decodeJSON(t, w, &resp)
		assert.Equal(t, "pretoria", resp.City)
		assert.InDelta(t, 32, resp.CurrentTemp, 1e-9)
		assert.InDelta(t, 28, resp.HistoricalAvg, 1e-9)
		assert.Equal(t, "4.0", resp.Anomaly)
		assert.Equal(t, nasa.TrendIncreasing, resp.Trend)
		assert.True(t, testNow.Equal(resp.Timestamp))
	})

	t.Run("Landsat", func(t *testing.T) {
		w := f.do(http.MethodGet, "/api/nasa/landsat/Cape%20Town", "")

		require.Equal(t, http.StatusOK, w.Code)
		var resp LandsatResponse
		decodeJSON(t, w, &resp)
		assert.Equal(t, "Cape Town", resp.Location)
		assert.Equal(t, 1984, resp.Imagery.BeforeYear)
		assert.Equal(t, 2024, resp.Imagery.AfterYear)
		assert.Contains(t, resp.Imagery.BeforeURL, "Cape%20Town")
		assert.Equal(t, "+45%", resp.Analysis.UrbanGrowth)
		assert.Equal(t, nasa.DataSource, resp.DataSource)
	})
}

func TestHealth(t *testing.T) {
	t.Run("Liveness", func(t *testing.T) {
		f := newAPIFixture(t)

		w := f.do(http.MethodGet, "/api/health", "")

		require.Equal(t, http.StatusOK, w.Code)
		var resp HealthResponse
		decodeJSON(t, w, &resp)
		assert.Equal(t, "OK", resp.Status)
		assert.Equal(t, "TerraWeave+ NASA App Running", resp.Message)
		assert.Equal(t, "2024-10-05T12:00:00Z", resp.Timestamp)
	})

	t.Run("DetailsHealthy", func(t *testing.T) {
		f := newAPIFixture(t)
		f.healthCheck.On("CheckAll", mock.Anything).Return(map[string]ports.HealthStatus{
			"database": {Component: "database", Status: "healthy"},
		})

		w := f.do(http.MethodGet, "/api/health/details", "")

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("DetailsDegraded", func(t *testing.T) {
		f := newAPIFixture(t)
		f.healthCheck.On("CheckAll", mock.Anything).Return(map[string]ports.HealthStatus{
			"database": {Component: "database", Status: "unhealthy", Error: "database is closed"},
		})

		w := f.do(http.MethodGet, "/api/health/details", "")

		require.Equal(t, http.StatusServiceUnavailable, w.Code)
		var resp HealthDetailsResponse
		decodeJSON(t, w, &resp)
		assert.Equal(t, "DEGRADED", resp.Status)
		assert.Equal(t, "database is closed", resp.Components["database"].Error)
	})
}

func TestCORS(t *testing.T) {
	f := newAPIFixture(t)

	for _, path := range []string{"/api/cities", "/api/auth/login", "/api/does-not-exist"} {
		t.Run(path, func(t *testing.T) {
			w := f.do(http.MethodOptions, path, "", "Origin", "https://example.org")

			assert.Equal(t, http.StatusNoContent, w.Code)
			assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
			assert.Contains(t, w.Header().Get("Access-Control-Allow-Headers"), "Authorization")
		})
	}
}

func TestRequestIDIsEchoed(t *testing.T) {
	f := newAPIFixture(t)

	w := f.do(http.MethodGet, "/api/health", "", "X-Request-ID", "req-42")

	assert.Equal(t, "req-42", w.Header().Get("X-Request-ID"))
}

func TestStaticAndFallbackRoutes(t *testing.T) {
	f := newAPIFixture(t)

	t.Run("UnknownAPIRoute", func(t *testing.T) {
		w := f.do(http.MethodGet, "/api/unknown", "")

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "Not found", decodeError(t, w))
	})

	t.Run("Pages", func(t *testing.T) {
		for path, title := range map[string]string{
			"/":              "index",
			"/login":         "login",
			"/dashboard":     "dashboard",
			"/some/deep/url": "index",
		} {
			w := f.do(http.MethodGet, path, "")
			assert.Equal(t, http.StatusOK, w.Code, path)
			assert.Contains(t, w.Body.String(), "<title>"+title+"</title>", path)
		}
	})

	t.Run("Metrics", func(t *testing.T) {
		w := f.do(http.MethodGet, "/metrics", "")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "# metrics", w.Body.String())
	})
}
