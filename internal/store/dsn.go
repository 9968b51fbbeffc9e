package store

import (
	"fmt"
	"net"
	"net/url"
	"sort"
	"strconv"
	"strings"

	"github.com/go-sql-driver/mysql"

	"github.com/fortuna/lahman/internal/config"
)

// BuildDSN returns the database/sql driver name and data source name for cfg.
func BuildDSN(cfg config.Database) (driver, dsn string, err error) {
	switch cfg.Driver {
	case config.DriverMySQL:
		dsn, err = buildMySQLDSN(cfg)
		return "mysql", dsn, err
	case config.DriverPostgres, config.DriverPgx:
		if cfg.DSN != "" {
			return cfg.Driver, cfg.DSN, nil
		}
		return cfg.Driver, buildPostgresDSN(cfg), nil
	case config.DriverSQLite:
		return "sqlite", buildSQLiteDSN(cfg), nil
	default:
		return "", "", fmt.Errorf("unknown database driver %q", cfg.Driver)
	}
}

// buildMySQLDSN always enables parseTime so DATE columns scan into time.Time.
func buildMySQLDSN(cfg config.Database) (string, error) {
	var mc *mysql.Config
	if cfg.DSN != "" {
		parsed, err := mysql.ParseDSN(cfg.DSN)
		if err != nil {
			return "", fmt.Errorf("parsing mysql dsn: %w", err)
		}
		mc = parsed
	} else {
		mc = mysql.NewConfig()
		host := cfg.Host
		if host == "" {
			host = "localhost"
		}
		port := cfg.Port
		if port == 0 {
			port = 3306
		}
		mc.Net = "tcp"
		mc.Addr = net.JoinHostPort(host, strconv.Itoa(port))
		mc.User = cfg.User
		mc.Passwd = cfg.Password
		mc.DBName = cfg.Name
	}
	mc.ParseTime = true
	if len(cfg.Params) > 0 && mc.Params == nil {
		mc.Params = make(map[string]string, len(cfg.Params))
	}
	for k, v := range cfg.Params {
		mc.Params[k] = v
	}
	return mc.FormatDSN(), nil
}

// buildPostgresDSN builds a key=value connection string understood by both
// lib/pq and pgx.
func buildPostgresDSN(cfg config.Database) string {
	host := cfg.Host
	if host == "" {
		host = "localhost"
	}
	port := cfg.Port
	if port == 0 {
		port = 5432
	}
	params := map[string]string{"sslmode": "disable"}
	for k, v := range cfg.Params {
		params[k] = v
	}

	parts := []string{
		"host=" + pgValue(host),
		"port=" + strconv.Itoa(port),
	}
	if cfg.Name != "" {
		parts = append(parts, "dbname="+pgValue(cfg.Name))
	}
	if cfg.User != "" {
		parts = append(parts, "user="+pgValue(cfg.User))
	}
	if cfg.Password != "" {
		parts = append(parts, "password="+pgValue(cfg.Password))
	}
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		parts = append(parts, k+"="+pgValue(params[k]))
	}
	return strings.Join(parts, " ")
}

func pgValue(v string) string {
	if v != "" && !strings.ContainsAny(v, ` '\`) {
		return v
	}
	v = strings.ReplaceAll(v, `\`, `\\`)
	v = strings.ReplaceAll(v, `'`, `\'`)
	return "'" + v + "'"
}

// buildSQLiteDSN turns on foreign key enforcement, which SQLite leaves off
// by default, and stores dates in a format it sorts and parses back.
func buildSQLiteDSN(cfg config.Database) string {
	dsn := cfg.DSN
	if dsn == "" {
		dsn = cfg.Path
	}
	q := url.Values{}
	if !strings.Contains(dsn, "foreign_keys") {
		q.Add("_pragma", "foreign_keys(1)")
	}
	if !strings.Contains(dsn, "_time_format") {
		q.Add("_time_format", "sqlite")
	}
	for k, v := range cfg.Params {
		q.Add(k, v)
	}
	if len(q) == 0 {
		return dsn
	}
	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}
	return dsn + sep + q.Encode()
}
