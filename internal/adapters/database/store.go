package database

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"terraweave.app/internal/ports"
	"terraweave.app/pkg/errors"
)

// Store drivers accepted by Open
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// Open connects to the store described by cfg. For sqlite the target is a file path
// whose directory is created on demand; for postgres it is a DSN.
func Open(cfg ports.StoreConfig) (*gorm.DB, error) {
	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	}

	switch cfg.Driver {
	case DriverSQLite:
		return openSQLite(cfg.Target, gormConfig)
	case DriverPostgres:
		db, err := gorm.Open(postgres.Open(cfg.Target), gormConfig)
		if err != nil {
			return nil, errors.NewDatabaseError("failed to connect to postgres", err)
		}
		return db, nil
	default:
		return nil, errors.NewConfigurationError(fmt.Sprintf("unsupported store driver %q", cfg.Driver), nil)
	}
}

func openSQLite(path string, gormConfig *gorm.Config) (*gorm.DB, error) {
	if path == "" {
		return nil, errors.NewConfigurationError("sqlite path cannot be empty", nil)
	}

	if !isInMemory(path) {
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return nil, errors.NewDatabaseError("failed to create store directory", err)
		}
	}

	db, err := gorm.Open(sqlite.Open(sqliteDSN(path)), gormConfig)
	if err != nil {
		return nil, errors.NewDatabaseError("failed to open sqlite store", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.NewDatabaseError("failed to access sqlite connection pool", err)
	}
	// sqlite serializes writers; one connection also keeps :memory: stores shared
	sqlDB.SetMaxOpenConns(1)

	return db, nil
}

func isInMemory(path string) bool {
	return path == ":memory:" || strings.Contains(path, "mode=memory")
}

func sqliteDSN(path string) string {
	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	return path + sep + "_foreign_keys=on"
}

// Close releases the underlying connection pool
func Close(db *gorm.DB) error {
	if db == nil {
		return nil
	}
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
