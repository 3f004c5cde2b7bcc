// Package db opens and migrates the relational store.
package db

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	gmysql "gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	categoryentity "movie_backend/internal/feature/category/domain/entity"
	movieentity "movie_backend/internal/feature/movie/domain/entity"
	userentity "movie_backend/internal/feature/user/domain/entity"
)

// Supported values of DB_DRIVER.
const (
	DriverPostgres = "postgres"
	DriverMySQL    = "mysql"
	DriverSQLite   = "sqlite"
)

const defaultConnectTimeout = 60 * time.Second

// retryInterval is the pause between connection attempts.
var retryInterval = 3 * time.Second

// Config describes how to reach the database.
type Config struct {
	Driver       string
	User         string
	Password     string
	Name         string
	Host         string
	Port         string
	SSLMode      string
	InstanceName string // Cloud SQL instance connection name (mysql only)
	SQLitePath   string

	ConnectTimeout time.Duration
	RunMigrations  bool
}

// Opener opens a gorm connection for a DSN.
type Opener func(dsn string) (*gorm.DB, error)

// LoadConfigFromEnv reads the database settings from environment variables.
func LoadConfigFromEnv() Config {
	cfg := Config{
		Driver:         os.Getenv("DB_DRIVER"),
		User:           os.Getenv("DB_USER"),
		Password:       os.Getenv("DB_PASSWORD"),
		Name:           os.Getenv("DB_NAME"),
		Host:           os.Getenv("DB_HOST"),
		Port:           os.Getenv("DB_PORT"),
		SSLMode:        os.Getenv("DB_SSLMODE"),
		InstanceName:   os.Getenv("INSTANCE_CONNECTION_NAME"),
		SQLitePath:     os.Getenv("SQLITE_PATH"),
		ConnectTimeout: defaultConnectTimeout,
		RunMigrations:  os.Getenv("RUN_MIGRATIONS") == "true",
	}
	if cfg.Driver == "" {
		cfg.Driver = DriverPostgres
	}
	if cfg.SSLMode == "" {
		cfg.SSLMode = "disable"
	}
	if cfg.SQLitePath == "" {
		cfg.SQLitePath = "./movies.db"
	}
	if v := os.Getenv("DB_CONNECT_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			cfg.ConnectTimeout = d
		}
	}
	return cfg
}

// BuildDSN returns the data source name for the configured driver.
// An empty driver is treated as mysql to keep the Cloud SQL socket form.
func BuildDSN(cfg Config) string {
	switch cfg.Driver {
	case DriverPostgres:
		return postgresDSN(cfg)
	case DriverSQLite:
		return cfg.SQLitePath + "?_foreign_keys=on"
	}
	if cfg.InstanceName != "" {
		return fmt.Sprintf("%s:%s@unix(/cloudsql/%s)/%s?charset=utf8mb4&parseTime=true&loc=Local&clientFoundRows=true",
			cfg.User, cfg.Password, cfg.InstanceName, cfg.Name)
	}
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=true&loc=Local&clientFoundRows=true",
		cfg.User, cfg.Password, cfg.Host, cfg.Port, cfg.Name)
}

var pgEscaper = strings.NewReplacer(`\`, `\\`, `'`, `\'`)

// postgresDSN builds a keyword/value connection string. Values are quoted so
// spaces and quotes stay attached to their keyword; empty values are left out
// and fall back to the libpq defaults.
func postgresDSN(cfg Config) string {
	pairs := []struct{ key, value string }{
		{"host", cfg.Host},
		{"user", cfg.User},
		{"password", cfg.Password},
		{"dbname", cfg.Name},
		{"port", cfg.Port},
		{"sslmode", cfg.SSLMode},
	}
	parts := make([]string, 0, len(pairs)+1)
	for _, p := range pairs {
		if p.value == "" {
			continue
		}
		parts = append(parts, p.key+"='"+pgEscaper.Replace(p.value)+"'")
	}
	parts = append(parts, "TimeZone=UTC")
	return strings.Join(parts, " ")
}

// NewOpener returns an Opener for the configured driver.
func NewOpener(driver string) (Opener, error) {
	var dialect func(string) gorm.Dialector
	switch driver {
	case DriverPostgres:
		dialect = postgres.Open
	case DriverMySQL, "":
		dialect = gmysql.Open
	case DriverSQLite:
		dialect = sqlite.Open
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", driver)
	}
	return func(dsn string) (*gorm.DB, error) {
		return gorm.Open(dialect(dsn), &gorm.Config{TranslateError: true, Logger: newLogger()})
	}, nil
}

// newLogger routes gorm's log output through the default slog handler.
// Lookups that find no row are reported to callers as errors, not logged.
func newLogger() logger.Interface {
	return logger.New(
		slog.NewLogLogger(slog.Default().Handler(), slog.LevelWarn),
		logger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
		},
	)
}

// ConnectWithRetry calls opener until it succeeds or timeout elapses.
func ConnectWithRetry(dsn string, timeout time.Duration, opener Opener) (*gorm.DB, error) {
	deadline := time.Now().Add(timeout)
	for {
		db, err := opener(dsn)
		if err == nil {
			return db, nil
		}
		if time.Now().After(deadline) {
			return nil, fmt.Errorf("db connect failed after %s: %w", timeout, err)
		}
		slog.Warn("DB connect failed, retrying", "error", err, "retry_in", retryInterval)
		time.Sleep(retryInterval)
	}
}

// Open connects to the database described by cfg and migrates it when requested.
func Open(cfg Config) (*gorm.DB, error) {
	opener, err := NewOpener(cfg.Driver)
	if err != nil {
		return nil, err
	}
	db, err := ConnectWithRetry(BuildDSN(cfg), cfg.ConnectTimeout, opener)
	if err != nil {
		return nil, err
	}
	slog.Info("database connected", "driver", cfg.Driver)

	if cfg.Driver == DriverSQLite {
		// SQLiteは書き込みが直列化されるため接続は1本に絞る
		sqlDB, err := db.DB()
		if err != nil {
			return nil, err
		}
		sqlDB.SetMaxOpenConns(1)
	}

	if cfg.RunMigrations || cfg.Driver == DriverSQLite {
		if err := Migrate(db); err != nil {
			return nil, err
		}
	}
	return db, nil
}

// Migrate creates or updates the users, categories and movies tables.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&userentity.User{},
		&categoryentity.Category{},
		&movieentity.Movie{},
	); err != nil {
		return fmt.Errorf("failed to migrate: %w", err)
	}
	return nil
}
