package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
)

// EnvPrefix prefixes every environment variable read. A double underscore
// separates nesting levels: LAHMAN_DATABASE__MAX_OPEN_CONNS.
const EnvPrefix = "LAHMAN_"

// FileNames are searched in the working directory when no file is given.
var FileNames = []string{"lahman.yaml", "lahman.yml"}

// flagKeys maps command-line flag names to config keys.
var flagKeys = map[string]string{
	"driver":     "database.driver",
	"dsn":        "database.dsn",
	"db-path":    "database.path",
	"db-host":    "database.host",
	"db-port":    "database.port",
	"db-user":    "database.user",
	"db-name":    "database.name",
	"log-level":  "log.level",
	"log-format": "log.format",
}

// BindFlags registers the flags Load understands on fs.
func BindFlags(fs *pflag.FlagSet) {
	fs.String("driver", DefaultDriver, "database driver (mysql|postgres|pgx|sqlite)")
	fs.String("dsn", "", "database DSN, overrides the individual connection settings")
	fs.String("db-path", DefaultPath, "sqlite database file")
	fs.String("db-host", "", "database host")
	fs.Int("db-port", 0, "database port")
	fs.String("db-user", "", "database user")
	fs.String("db-name", "", "database name")
	fs.String("log-level", DefaultLogLevel, "log level (trace|debug|info|warn|error)")
	fs.String("log-format", DefaultLogFormat, "log format (console|json)")
}

func findConfigFile(explicit string) string {
	if explicit != "" {
		return explicit
	}
	for _, name := range FileNames {
		if _, err := os.Stat(name); err == nil {
			return name
		}
	}
	return ""
}

// Load reads the configuration. Precedence, lowest first: defaults, the
// config file, environment variables, flags that were set explicitly.
func Load(cfgFile string, flags *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	used := findConfigFile(cfgFile)
	if used != "" {
		if err := k.Load(file.Provider(used), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("error reading config file %s: %w", used, err)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
		return strings.ReplaceAll(key, "__", ".")
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	if flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, interface{}) {
			if !f.Changed {
				return "", nil
			}
			key, ok := flagKeys[f.Name]
			if !ok {
				return "", nil
			}
			return key, posflag.FlagVal(flags, f)
		}), nil); err != nil {
			return nil, fmt.Errorf("failed to load flags: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}
	cfg.File = used
	return &cfg, nil
}
