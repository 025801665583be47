package redis

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/ecotracker/internal/storage"
)

// openTestStore connects to the Redis named by ECOTRACKER_TEST_REDIS_ADDR.
func openTestStore(t *testing.T) *Store {
	t.Helper()
	addr := os.Getenv("ECOTRACKER_TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("ECOTRACKER_TEST_REDIS_ADDR not set")
	}
	prefix := "ecotracker-test:" + time.Now().Format("150405.000000") + ":"
	s, err := Open(context.Background(), Options{Addr: addr, Prefix: prefix})
	require.NoError(t, err)
	t.Cleanup(func() {
		ctx := context.Background()
		for _, k := range []string{storage.KeyUsers, storage.KeySession, storage.KeyLogs} {
			_ = s.Delete(ctx, k)
		}
		s.Close()
	})
	return s
}

func TestStore(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	_, err := s.Get(ctx, storage.KeySession)
	require.ErrorIs(t, err, storage.ErrNotFound)

	require.NoError(t, s.Put(ctx,
		storage.Record{Key: storage.KeyUsers, Value: []byte(`[]`)},
		storage.Record{Key: storage.KeySession, Value: []byte(`{"id":"u1"}`)},
	))

	v, err := s.Get(ctx, storage.KeySession)
	require.NoError(t, err)
	assert.Equal(t, `{"id":"u1"}`, string(v))

	require.NoError(t, s.Delete(ctx, storage.KeySession))
	_, err = s.Get(ctx, storage.KeySession)
	require.ErrorIs(t, err, storage.ErrNotFound)
}

func TestOpenFailsWithoutServer(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	_, err := Open(ctx, Options{Addr: "127.0.0.1:1"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "redis ping failed")
}

func TestNewDefaultsPrefix(t *testing.T) {
	s := New(nil, "")
	assert.Equal(t, DefaultPrefix, s.prefix)
}
