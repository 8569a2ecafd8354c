package infrastructure

import (
	"context"

	"github.com/jonboulle/clockwork"
	"gorm.io/gorm"
	"terraweave.app/internal/ports"
)

// DatabaseHealthChecker implements store health checking
type DatabaseHealthChecker struct {
	db     *gorm.DB
	driver string
	clock  clockwork.Clock
}

// NewDatabaseHealthChecker creates a new database health checker
func NewDatabaseHealthChecker(db *gorm.DB, driver string, clock clockwork.Clock) *DatabaseHealthChecker {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &DatabaseHealthChecker{db: db, driver: driver, clock: clock}
}

// Check verifies store connectivity
func (d *DatabaseHealthChecker) Check(ctx context.Context) ports.HealthStatus {
	status := ports.HealthStatus{
		Component: "database",
		Details: map[string]interface{}{
			"driver": d.driver,
		},
	}

	if d.db == nil {
		status.Status = "unhealthy"
		status.Error = "database instance is nil"
		return status
	}

	sqlDB, err := d.db.DB()
	if err != nil {
		status.Status = "unhealthy"
		status.Error = "failed to get underlying database connection"
		return status
	}

	start := d.clock.Now()
	if err := sqlDB.PingContext(ctx); err != nil {
		status.Status = "unhealthy"
		status.Error = err.Error()
		return status
	}

	status.Status = "healthy"
	status.Details["connected"] = true
	status.Details["ping_ms"] = d.clock.Since(start).Milliseconds()
	status.Details["open_connections"] = sqlDB.Stats().OpenConnections
	return status
}
