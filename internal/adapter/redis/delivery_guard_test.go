package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGuard(t *testing.T) (*DeliveryGuard, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewDeliveryGuard(client), mr
}

func TestClaimOnce(t *testing.T) {
	g, _ := newGuard(t)
	ctx := context.Background()

	ok, err := g.Claim(ctx, "google-ads", "d-1", time.Hour)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = g.Claim(ctx, "google-ads", "d-1", time.Hour)
	require.NoError(t, err)
	assert.False(t, ok)

	// same id from another source is independent
	ok, err = g.Claim(ctx, "facebook-ads", "d-1", time.Hour)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestClaimExpires(t *testing.T) {
	g, mr := newGuard(t)
	ctx := context.Background()

	ok, _ := g.Claim(ctx, "s", "d", time.Minute)
	require.True(t, ok)
	mr.FastForward(2 * time.Minute)

	ok, err := g.Claim(ctx, "s", "d", time.Minute)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestClaimBackendDown(t *testing.T) {
	g, mr := newGuard(t)
	mr.SetError("LOADING Redis is loading the dataset in memory")

	_, err := g.Claim(context.Background(), "s", "d", time.Minute)
	assert.Error(t, err)
}

func TestReleaseAllowsReclaim(t *testing.T) {
	g, _ := newGuard(t)
	ctx := context.Background()

	ok, _ := g.Claim(ctx, "s", "d", time.Hour)
	require.True(t, ok)
	require.NoError(t, g.Release(ctx, "s", "d"))

	ok, err := g.Claim(ctx, "s", "d", time.Hour)
	require.NoError(t, err)
	assert.True(t, ok)

	assert.NoError(t, g.Release(ctx, "s", "never-claimed"))
}
