package main

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/ecotracker/internal/config"
)

func TestOpenStore(t *testing.T) {
	ctx := context.Background()

	t.Run("memory", func(t *testing.T) {
		cfg := &config.Config{StoreDriver: config.DriverMemory}
		s, where, err := openStore(ctx, cfg)
		require.NoError(t, err)
		defer s.Close()
		assert.Equal(t, "in-memory", where)
		assert.Nil(t, pingFunc(s))
	})

	t.Run("sqlite", func(t *testing.T) {
		cfg := &config.Config{StoreDriver: config.DriverSQLite, DBPath: filepath.Join(t.TempDir(), "e.db")}
		s, _, err := openStore(ctx, cfg)
		require.NoError(t, err)
		defer s.Close()
		ping := pingFunc(s)
		require.NotNil(t, ping)
		assert.NoError(t, ping(ctx))
	})

	t.Run("unknown", func(t *testing.T) {
		_, _, err := openStore(ctx, &config.Config{StoreDriver: "tape"})
		assert.Error(t, err)
	})
}
