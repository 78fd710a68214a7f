package auth

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skillswap/backend/internal/domain/identity"
	"github.com/skillswap/backend/internal/infrastructure/config"
)

func testJWTConfig() config.JWTConfig {
	return config.JWTConfig{
		Secret:                "test-secret-key-that-is-long-enough",
		AccessTokenExpiration: 2 * time.Hour,
		Issuer:                "skillswap-backend",
		Audience:              "skillswap-clients",
	}
}

func testUser(t *testing.T) *identity.User {
	t.Helper()
	user, err := identity.NewUser("Ada", "ada@example.com", "stored-hash", true)
	require.NoError(t, err)
	require.NoError(t, user.SetBalance(decimal.RequireFromString("42.50")))
	return user
}

func TestJWTService_IssueAndValidate(t *testing.T) {
	service := NewJWTService(testJWTConfig())
	user := testUser(t)

	token, err := service.Issue(user)
	require.NoError(t, err)
	assert.Equal(t, "Bearer", token.TokenType)
	assert.WithinDuration(t, time.Now().Add(2*time.Hour), token.ExpiresAt, 5*time.Second)

	claims, err := service.Validate(token.Token)
	require.NoError(t, err)
	assert.Equal(t, user.ID.String(), claims.UserID)
	assert.Equal(t, RoleUser, claims.Role)
	assert.Equal(t, user.Email, claims.Subject)
	assert.Equal(t, "skillswap-backend", claims.Issuer)
	assert.Contains(t, claims.Audience, "skillswap-clients")
	assert.NotEmpty(t, claims.ID)
	assert.Equal(t, "42.5", claims.Balance)
}

func TestJWTService_BalanceSnapshot(t *testing.T) {
	service := NewJWTService(testJWTConfig())
	user := testUser(t)

	token, err := service.Issue(user)
	require.NoError(t, err)
	claims, err := service.Validate(token.Token)
	require.NoError(t, err)

	snapshot, err := claims.BalanceSnapshot()
	require.NoError(t, err)
	assert.True(t, snapshot.Equal(decimal.RequireFromString("42.50")))

	// The claim does not follow later balance changes.
	require.NoError(t, user.SetBalance(decimal.RequireFromString("10")))
	snapshot, err = claims.BalanceSnapshot()
	require.NoError(t, err)
	assert.True(t, snapshot.Equal(decimal.RequireFromString("42.50")))
}

func TestJWTService_RejectsWrongSecret(t *testing.T) {
	issuing := NewJWTService(testJWTConfig())
	user := testUser(t)
	token, err := issuing.Issue(user)
	require.NoError(t, err)

	otherCfg := testJWTConfig()
	otherCfg.Secret = "a-completely-different-secret-value"
	validating := NewJWTService(otherCfg)

	_, err = validating.Validate(token.Token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWTService_RejectsExpiredToken(t *testing.T) {
	cfg := testJWTConfig()
	cfg.AccessTokenExpiration = -time.Minute
	service := NewJWTService(cfg)

	token, err := service.Issue(testUser(t))
	require.NoError(t, err)

	_, err = service.Validate(token.Token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestJWTService_RejectsGarbage(t *testing.T) {
	service := NewJWTService(testJWTConfig())

	_, err := service.Validate("not.a.token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
