package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/require"
)

func newTestCache(t *testing.T) *RedisCache {
	t.Helper()
	srv := miniredis.RunT(t)
	return NewRedis(srv.Addr(), "", 0)
}

func TestRedisSetGetDelete(t *testing.T) {
	ctx := context.Background()
	c := newTestCache(t)

	_, ok, err := c.Get(ctx, "missing")
	require.NoError(t, err)
	require.False(t, ok)

	require.NoError(t, c.Set(ctx, "availability:brett", []byte(`{"slots":[]}`), time.Minute))

	val, ok, err := c.Get(ctx, "availability:brett")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, []byte(`{"slots":[]}`), val)

	require.NoError(t, c.Delete(ctx, "availability:brett"))
	_, ok, err = c.Get(ctx, "availability:brett")
	require.NoError(t, err)
	require.False(t, ok)
}

func TestRedisDeletePrefix(t *testing.T) {
	ctx := context.Background()
	c := newTestCache(t)

	require.NoError(t, c.Set(ctx, "availability:brett:all", []byte("a"), time.Minute))
	require.NoError(t, c.Set(ctx, "availability:sandra:all", []byte("b"), time.Minute))
	require.NoError(t, c.Set(ctx, "content:services", []byte("c"), time.Minute))

	require.NoError(t, c.DeletePrefix(ctx, "availability:"))

	_, ok, err := c.Get(ctx, "availability:brett:all")
	require.NoError(t, err)
	require.False(t, ok)

	_, ok, err = c.Get(ctx, "content:services")
	require.NoError(t, err)
	require.True(t, ok)
}
