package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInMemoryTokenBlacklist_AddAndCheck(t *testing.T) {
	bl := NewInMemoryTokenBlacklist()
	ctx := context.Background()

	require.NoError(t, bl.Add(ctx, "jti-1", time.Minute))

	blacklisted, err := bl.IsBlacklisted(ctx, "jti-1")
	require.NoError(t, err)
	assert.True(t, blacklisted)

	blacklisted, err = bl.IsBlacklisted(ctx, "jti-unknown")
	require.NoError(t, err)
	assert.False(t, blacklisted)
}

func TestInMemoryTokenBlacklist_ExpiredEntriesDrop(t *testing.T) {
	bl := NewInMemoryTokenBlacklist()
	ctx := context.Background()

	require.NoError(t, bl.Add(ctx, "jti-short", 10*time.Millisecond))
	time.Sleep(30 * time.Millisecond)

	blacklisted, err := bl.IsBlacklisted(ctx, "jti-short")
	require.NoError(t, err)
	assert.False(t, blacklisted)
}

func TestInMemoryTokenBlacklist_NonPositiveTTLIgnored(t *testing.T) {
	bl := NewInMemoryTokenBlacklist()
	ctx := context.Background()

	require.NoError(t, bl.Add(ctx, "jti-expired", -time.Minute))

	blacklisted, err := bl.IsBlacklisted(ctx, "jti-expired")
	require.NoError(t, err)
	assert.False(t, blacklisted)
}
