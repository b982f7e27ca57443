package persistence

import (
	"fmt"
	"log"
	"regexp"

	"github.com/MGTheTrain/rsa-vault/internal/pkg/config"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// SQLiteInMemoryDSN opens a private in-memory SQLite database
const SQLiteInMemoryDSN = ":memory:"

var databaseNamePattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]{0,62}$`)

// NewDBConnection opens the key store described by settings. For postgres a non-empty
// Name selects that database, creating it first when it does not exist.
func NewDBConnection(settings config.DatabaseSettings) (*gorm.DB, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}

	dialector, err := dialectorFor(settings)
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(dialector, gormConfig())
	if err != nil {
		return nil, fmt.Errorf("failed to open %s key store: %w", settings.Type, err)
	}

	// every pooled connection to :memory: would open its own empty database
	if settings.Type == config.SqliteDbType && settings.DSN == SQLiteInMemoryDSN {
		sqlDB, err := db.DB()
		if err != nil {
			return nil, fmt.Errorf("failed to get raw DB connection: %w", err)
		}
		sqlDB.SetMaxOpenConns(1)
	}

	return db, nil
}

func gormConfig() *gorm.Config {
	return &gorm.Config{Logger: gormlogger.Default.LogMode(gormlogger.Silent)}
}

func dialectorFor(settings config.DatabaseSettings) (gorm.Dialector, error) {
	switch settings.Type {
	case config.SqliteDbType:
		return sqlite.Open(settings.DSN), nil
	case config.PostgresDbType:
		if settings.Name == "" {
			return postgres.Open(settings.DSN), nil
		}
		if err := ensurePostgresDatabase(settings.DSN, settings.Name); err != nil {
			return nil, err
		}
		return postgres.Open(fmt.Sprintf("%s dbname=%s", settings.DSN, settings.Name)), nil
	default:
		return nil, fmt.Errorf("unsupported database type: %s", settings.Type)
	}
}

// withAdminConnection runs fn on a short-lived connection to adminDSN
func withAdminConnection(adminDSN string, fn func(db *gorm.DB) error) error {
	db, err := gorm.Open(postgres.Open(adminDSN), gormConfig())
	if err != nil {
		return fmt.Errorf("failed to connect to PostgreSQL: %w", err)
	}
	defer func() {
		if err := CloseDB(db); err != nil {
			log.Printf("Warning: failed to close admin connection: %v", err)
		}
	}()
	return fn(db)
}

func ensurePostgresDatabase(adminDSN, name string) error {
	if !databaseNamePattern.MatchString(name) {
		return fmt.Errorf("invalid database name %q", name)
	}
	return withAdminConnection(adminDSN, func(db *gorm.DB) error {
		var count int64
		if err := db.Raw("SELECT count(*) FROM pg_database WHERE datname = ?", name).Scan(&count).Error; err != nil {
			return fmt.Errorf("failed to look up database '%s': %w", name, err)
		}
		if count > 0 {
			return nil
		}
		if err := db.Exec(fmt.Sprintf("CREATE DATABASE %s", name)).Error; err != nil {
			return fmt.Errorf("failed to create database '%s': %w", name, err)
		}
		return nil
	})
}

// CloseDB closes the database connection
func CloseDB(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database instance: %w", err)
	}
	if err := sqlDB.Close(); err != nil {
		return fmt.Errorf("failed to close database connection: %w", err)
	}
	return nil
}

// DropDatabase drops a PostgreSQL database; integration tests use it for cleanup
func DropDatabase(adminDSN, name string) error {
	if !databaseNamePattern.MatchString(name) {
		return fmt.Errorf("invalid database name %q", name)
	}
	return withAdminConnection(adminDSN, func(db *gorm.DB) error {
		if err := db.Exec(fmt.Sprintf("DROP DATABASE IF EXISTS %s", name)).Error; err != nil {
			return fmt.Errorf("failed to drop database '%s': %w", name, err)
		}
		return nil
	})
}
