package config

import (
	"flag"
	"io"
	"strings"
)

// newFlagSet declares every supported flag with cfg's current values as
// defaults.
//
// Supported flags:
//
//	-config string   JSON config file
//	-addr string     HTTP listen address
//	-store string    storage driver (sqlite, postgres, redis, memory)
//	-db string       SQLite database path
//	-dsn string      PostgreSQL DSN
//	-redis string    Redis address
//	-static string   front-end directory
//	-jwt-secret string
//	-token-ttl duration
//	-log-level string
//	-log-format string (text or json)
//	-tz string       time zone for entry dates
//	-trusted-proxies string  comma-separated proxy IPs
func newFlagSet(cfg *Config, configFile *string) *flag.FlagSet {
	fs := flag.NewFlagSet("ecotracker", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(configFile, "config", "", "JSON config file")
	fs.StringVar(&cfg.HTTPAddr, "addr", cfg.HTTPAddr, "address and port to run server")
	fs.StringVar(&cfg.StoreDriver, "store", cfg.StoreDriver, "storage driver: sqlite, postgres, redis or memory")
	fs.StringVar(&cfg.DBPath, "db", cfg.DBPath, "SQLite database path")
	fs.StringVar(&cfg.PostgresDSN, "dsn", cfg.PostgresDSN, "PostgreSQL DSN")
	fs.StringVar(&cfg.RedisAddr, "redis", cfg.RedisAddr, "Redis address")
	fs.StringVar(&cfg.StaticDir, "static", cfg.StaticDir, "directory with the front-end build")
	fs.StringVar(&cfg.JWTSecret, "jwt-secret", cfg.JWTSecret, "HS256 secret for session tokens")
	fs.DurationVar(&cfg.TokenTTL, "token-ttl", cfg.TokenTTL, "session token lifetime")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "debug, info, warn or error")
	fs.StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "text or json")
	fs.StringVar(&cfg.Timezone, "tz", cfg.Timezone, "time zone that decides an entry's date")
	fs.Func("trusted-proxies", "comma-separated proxy IPs whose X-Forwarded-For is trusted", func(v string) error {
		cfg.TrustedProxies = splitList(v)
		return nil
	})
	return fs
}

func parseFlags(cfg *Config, args []string) error {
	var configFile string
	return newFlagSet(cfg, &configFile).Parse(args)
}

// configPath finds the JSON file before any other layer is applied: the
// -config flag wins over ECOTRACKER_CONFIG.
func configPath(args []string, getenv func(string) string) string {
	for i, arg := range args {
		name, value, hasValue := strings.Cut(strings.TrimLeft(arg, "-"), "=")
		if !strings.HasPrefix(arg, "-") || name != "config" {
			continue
		}
		if hasValue {
			return value
		}
		if i+1 < len(args) {
			return args[i+1]
		}
	}
	return getenv(EnvPrefix + "CONFIG")
}
