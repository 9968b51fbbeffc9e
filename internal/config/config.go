// Package config loads the lahman configuration from defaults, a YAML file,
// LAHMAN_ environment variables and command-line flags, in rising order of
// precedence.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Supported database drivers.
const (
	DriverMySQL    = "mysql"
	DriverPostgres = "postgres"
	DriverPgx      = "pgx"
	DriverSQLite   = "sqlite"
)

// Config is the full configuration.
type Config struct {
	Database Database `koanf:"database"`
	Log      Log      `koanf:"log"`

	// File is the config file that was loaded, if any.
	File string `koanf:"-"`
}

// Database selects the store and tunes its connection pool. DSN, when set,
// takes precedence over the individual connection fields.
type Database struct {
	Driver   string            `koanf:"driver"`
	DSN      string            `koanf:"dsn"`
	Host     string            `koanf:"host"`
	Port     int               `koanf:"port"`
	User     string            `koanf:"user"`
	Password string            `koanf:"password"`
	Name     string            `koanf:"name"`
	Path     string            `koanf:"path"`
	Params   map[string]string `koanf:"params"`

	MaxOpenConns    int           `koanf:"max_open_conns"`
	MaxIdleConns    int           `koanf:"max_idle_conns"`
	ConnMaxLifetime time.Duration `koanf:"conn_max_lifetime"`
	ConnMaxIdleTime time.Duration `koanf:"conn_max_idle_time"`
	ConnectTimeout  time.Duration `koanf:"connect_timeout"`
}

// Log configures the process logger.
type Log struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

// Defaults
const (
	DefaultDriver          = DriverSQLite
	DefaultPath            = "lahman.db"
	DefaultMaxOpenConns    = 20
	DefaultMaxIdleConns    = 5
	DefaultConnMaxLifetime = time.Hour
	DefaultConnMaxIdleTime = 10 * time.Minute
	DefaultConnectTimeout  = 30 * time.Second
	DefaultLogLevel        = "info"
	DefaultLogFormat       = "console"
)

func defaults() map[string]any {
	return map[string]any{
		"database.driver":             DefaultDriver,
		"database.path":               DefaultPath,
		"database.max_open_conns":     DefaultMaxOpenConns,
		"database.max_idle_conns":     DefaultMaxIdleConns,
		"database.conn_max_lifetime":  DefaultConnMaxLifetime.String(),
		"database.conn_max_idle_time": DefaultConnMaxIdleTime.String(),
		"database.connect_timeout":    DefaultConnectTimeout.String(),
		"log.level":                   DefaultLogLevel,
		"log.format":                  DefaultLogFormat,
	}
}

// Default returns the configuration used when nothing is set.
func Default() *Config {
	return &Config{
		Database: Database{
			Driver:          DefaultDriver,
			Path:            DefaultPath,
			MaxOpenConns:    DefaultMaxOpenConns,
			MaxIdleConns:    DefaultMaxIdleConns,
			ConnMaxLifetime: DefaultConnMaxLifetime,
			ConnMaxIdleTime: DefaultConnMaxIdleTime,
			ConnectTimeout:  DefaultConnectTimeout,
		},
		Log: Log{Level: DefaultLogLevel, Format: DefaultLogFormat},
	}
}

// Drivers lists the supported database drivers.
func Drivers() []string {
	return []string{DriverMySQL, DriverPostgres, DriverPgx, DriverSQLite}
}

var logLevels = []string{"trace", "debug", "info", "warn", "error", "fatal", "panic", "disabled"}

// Validate reports every invalid setting.
func (c *Config) Validate() error {
	var errs []error
	errs = append(errs, c.Database.Validate())

	if !contains(logLevels, strings.ToLower(c.Log.Level)) {
		errs = append(errs, fmt.Errorf("log.level %q must be one of %s", c.Log.Level, strings.Join(logLevels, ", ")))
	}
	switch c.Log.Format {
	case "console", "json":
	default:
		errs = append(errs, fmt.Errorf("log.format %q must be console or json", c.Log.Format))
	}
	return errors.Join(errs...)
}

// Validate checks the driver and the fields it needs.
func (d *Database) Validate() error {
	var errs []error
	switch d.Driver {
	case DriverSQLite:
		if d.DSN == "" && d.Path == "" {
			errs = append(errs, errors.New("database.path is required for sqlite"))
		}
	case DriverMySQL, DriverPostgres, DriverPgx:
		if d.DSN == "" && d.Host == "" {
			errs = append(errs, fmt.Errorf("database.dsn or database.host is required for %s", d.Driver))
		}
		if d.Port < 0 || d.Port > 65535 {
			errs = append(errs, fmt.Errorf("database.port %d out of range", d.Port))
		}
	case "":
		errs = append(errs, errors.New("database.driver is required"))
	default:
		errs = append(errs, fmt.Errorf("unknown database.driver %q (want mysql, postgres, pgx or sqlite)", d.Driver))
	}
	if d.MaxOpenConns < 0 {
		errs = append(errs, errors.New("database.max_open_conns must not be negative"))
	}
	if d.MaxIdleConns < 0 {
		errs = append(errs, errors.New("database.max_idle_conns must not be negative"))
	}
	if d.ConnectTimeout < 0 {
		errs = append(errs, errors.New("database.connect_timeout must not be negative"))
	}
	return errors.Join(errs...)
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
