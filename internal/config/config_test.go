package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func envOf(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, ":8080", c.HTTPAddr)
	assert.Equal(t, DriverSQLite, c.StoreDriver)
	assert.Equal(t, "./data/ecotracker.db", c.DBPath)
	assert.Equal(t, 24*time.Hour, c.TokenTTL)
	assert.Equal(t, "UTC", c.Timezone)
	assert.Equal(t, "info", c.LogLevel)
	assert.NoError(t, c.Validate())
}

func TestLoadWithoutOverrides(t *testing.T) {
	c, err := Load(nil, envOf(nil))
	require.NoError(t, err)

	var want Config
	want.LoadDefaults()
	if diff := cmp.Diff(&want, c); diff != "" {
		t.Errorf("Load() mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadLayering(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"http_addr": ":9000",
		"store_driver": "postgres",
		"token_ttl": "2h",
		"log_level": "debug",
		"login_burst": 3
	}`), 0o600))

	env := envOf(map[string]string{
		"ECOTRACKER_HTTP_ADDR": ":9100",
		"ECOTRACKER_TOKEN_TTL": "90m",
		"ECOTRACKER_REDIS_DB":  "2",
	})
	args := []string{"-config", path, "-addr", ":9200", "-tz", "Europe/Paris"}

	c, err := Load(args, env)
	require.NoError(t, err)

	assert.Equal(t, ":9200", c.HTTPAddr, "flag beats env and file")
	assert.Equal(t, 90*time.Minute, c.TokenTTL, "env beats file")
	assert.Equal(t, DriverPostgres, c.StoreDriver, "file beats default")
	assert.Equal(t, "debug", c.LogLevel)
	assert.Equal(t, 3, c.LoginBurst)
	assert.Equal(t, 2, c.RedisDB)
	assert.Equal(t, "Europe/Paris", c.Timezone)
	assert.Equal(t, "./data/ecotracker.db", c.DBPath, "untouched default")
}

func TestLoadConfigFileFromEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "c.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"store_driver":"memory"}`), 0o600))

	c, err := Load(nil, envOf(map[string]string{"ECOTRACKER_CONFIG": path}))
	require.NoError(t, err)
	assert.Equal(t, DriverMemory, c.StoreDriver)
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		env  map[string]string
	}{
		{name: "unknown driver", args: []string{"-store", "mongo"}},
		{name: "bad timezone", args: []string{"-tz", "Mars/Olympus"}},
		{name: "bad env duration", env: map[string]string{"ECOTRACKER_TOKEN_TTL": "soon"}},
		{name: "bad env int", env: map[string]string{"ECOTRACKER_LOGIN_BURST": "many"}},
		{name: "missing config file", args: []string{"-config=/does/not/exist.json"}},
		{name: "unknown flag", args: []string{"-nope"}},
		{name: "empty secret", args: []string{"-jwt-secret", ""}},
		{name: "zero ttl", args: []string{"-token-ttl", "0s"}},
		{name: "bad trusted proxy", env: map[string]string{"ECOTRACKER_TRUSTED_PROXIES": "10.0.0.1,proxy.local"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(tt.args, envOf(tt.env))
			assert.Error(t, err)
		})
	}
}

func TestLoadTrustedProxies(t *testing.T) {
	c, err := Load(nil, envOf(map[string]string{"ECOTRACKER_TRUSTED_PROXIES": " 10.0.0.1, ,::1"}))
	require.NoError(t, err)
	assert.Equal(t, []string{"10.0.0.1", "::1"}, c.TrustedProxies)

	c, err = Load([]string{"-trusted-proxies", "192.168.1.1"}, envOf(map[string]string{"ECOTRACKER_TRUSTED_PROXIES": "10.0.0.1"}))
	require.NoError(t, err)
	assert.Equal(t, []string{"192.168.1.1"}, c.TrustedProxies)
}

func TestConfigPath(t *testing.T) {
	none := envOf(nil)
	assert.Equal(t, "a.json", configPath([]string{"-config", "a.json"}, none))
	assert.Equal(t, "b.json", configPath([]string{"--config=b.json"}, none))
	assert.Equal(t, "", configPath([]string{"-addr", ":1"}, none))
	assert.Equal(t, "env.json", configPath(nil, envOf(map[string]string{"ECOTRACKER_CONFIG": "env.json"})))
}

func TestDurationJSON(t *testing.T) {
	tests := []struct {
		in      string
		want    time.Duration
		wantErr bool
	}{
		{in: `"1s"`, want: time.Second},
		{in: `"24h"`, want: 24 * time.Hour},
		{in: `1000000`, want: time.Millisecond},
		{in: `"tomorrow"`, wantErr: true},
		{in: `true`, wantErr: true},
	}
	for _, tt := range tests {
		var d Duration
		err := d.UnmarshalJSON([]byte(tt.in))
		if tt.wantErr {
			assert.Error(t, err, tt.in)
			continue
		}
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, d.Duration, tt.in)
	}

	b, err := Duration{Duration: 90 * time.Second}.MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `"1m30s"`, string(b))
}

func TestParseJSONRejectsGarbage(t *testing.T) {
	var c Config
	c.LoadDefaults()
	assert.Error(t, parseJSON(&c, []byte("{")))
}
