package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// Duration unmarshals from either a Go duration string ("24h") or an
// integer number of nanoseconds.
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	switch value := v.(type) {
	case float64:
		d.Duration = time.Duration(value)
		return nil
	case string:
		parsed, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		d.Duration = parsed
		return nil
	default:
		return fmt.Errorf("invalid duration %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// jsonConfig is the on-disk layout. Pointer fields distinguish "absent"
// from zero so a file only overrides what it names.
type jsonConfig struct {
	HTTPAddr           *string   `json:"http_addr"`
	StoreDriver        *string   `json:"store_driver"`
	DBPath             *string   `json:"db_path"`
	PostgresDSN        *string   `json:"postgres_dsn"`
	RedisAddr          *string   `json:"redis_addr"`
	RedisPassword      *string   `json:"redis_password"`
	RedisDB            *int      `json:"redis_db"`
	StaticDir          *string   `json:"static_dir"`
	JWTSecret          *string   `json:"jwt_secret"`
	TokenTTL           *Duration `json:"token_ttl"`
	LogLevel           *string   `json:"log_level"`
	LogFormat          *string   `json:"log_format"`
	Timezone           *string   `json:"timezone"`
	LoginRatePerSecond *float64  `json:"login_rate_per_second"`
	LoginBurst         *int      `json:"login_burst"`
	TrustedProxies     []string  `json:"trusted_proxies"`
}

func parseJSONFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}
	return parseJSON(cfg, data)
}

func parseJSON(cfg *Config, data []byte) error {
	var c jsonConfig
	if err := json.Unmarshal(data, &c); err != nil {
		return fmt.Errorf("failed to parse config file: %w", err)
	}

	setString(&cfg.HTTPAddr, c.HTTPAddr)
	setString(&cfg.StoreDriver, c.StoreDriver)
	setString(&cfg.DBPath, c.DBPath)
	setString(&cfg.PostgresDSN, c.PostgresDSN)
	setString(&cfg.RedisAddr, c.RedisAddr)
	setString(&cfg.RedisPassword, c.RedisPassword)
	if c.RedisDB != nil {
		cfg.RedisDB = *c.RedisDB
	}
	setString(&cfg.StaticDir, c.StaticDir)
	setString(&cfg.JWTSecret, c.JWTSecret)
	if c.TokenTTL != nil {
		cfg.TokenTTL = c.TokenTTL.Duration
	}
	setString(&cfg.LogLevel, c.LogLevel)
	setString(&cfg.LogFormat, c.LogFormat)
	setString(&cfg.Timezone, c.Timezone)
	if c.LoginRatePerSecond != nil {
		cfg.LoginRatePerSecond = *c.LoginRatePerSecond
	}
	if c.LoginBurst != nil {
		cfg.LoginBurst = *c.LoginBurst
	}
	if c.TrustedProxies != nil {
		cfg.TrustedProxies = c.TrustedProxies
	}
	return nil
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}
