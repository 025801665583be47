package config

import (
	"fmt"
	"strconv"
	"time"
)

// EnvPrefix prefixes every environment variable read by parseEnv.
const EnvPrefix = "ECOTRACKER_"

// parseEnv overlays ECOTRACKER_* variables. Unset or empty variables leave
// the current value alone; malformed numbers and durations are errors.
func parseEnv(cfg *Config, getenv func(string) string) error {
	env := func(name string) string { return getenv(EnvPrefix + name) }

	stringVars := map[string]*string{
		"HTTP_ADDR":      &cfg.HTTPAddr,
		"STORE_DRIVER":   &cfg.StoreDriver,
		"DB_PATH":        &cfg.DBPath,
		"POSTGRES_DSN":   &cfg.PostgresDSN,
		"REDIS_ADDR":     &cfg.RedisAddr,
		"REDIS_PASSWORD": &cfg.RedisPassword,
		"STATIC_DIR":     &cfg.StaticDir,
		"JWT_SECRET":     &cfg.JWTSecret,
		"LOG_LEVEL":      &cfg.LogLevel,
		"LOG_FORMAT":     &cfg.LogFormat,
		"TIMEZONE":       &cfg.Timezone,
	}
	for name, dst := range stringVars {
		if v := env(name); v != "" {
			*dst = v
		}
	}

	if v := env("REDIS_DB"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%sREDIS_DB: %w", EnvPrefix, err)
		}
		cfg.RedisDB = n
	}
	if v := env("TOKEN_TTL"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("%sTOKEN_TTL: %w", EnvPrefix, err)
		}
		cfg.TokenTTL = d
	}
	if v := env("LOGIN_RATE_PER_SECOND"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("%sLOGIN_RATE_PER_SECOND: %w", EnvPrefix, err)
		}
		cfg.LoginRatePerSecond = f
	}
	if v := env("LOGIN_BURST"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%sLOGIN_BURST: %w", EnvPrefix, err)
		}
		cfg.LoginBurst = n
	}
	if v := env("TRUSTED_PROXIES"); v != "" {
		cfg.TrustedProxies = splitList(v)
	}
	return nil
}
