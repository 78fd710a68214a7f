package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	appidentity "github.com/skillswap/backend/internal/application/identity"
	"github.com/skillswap/backend/internal/domain/identity"
	"github.com/skillswap/backend/internal/domain/shared"
	"github.com/skillswap/backend/internal/infrastructure/auth"
	"github.com/skillswap/backend/internal/infrastructure/config"
	"github.com/skillswap/backend/internal/infrastructure/password"
)

// stubUserRepo serves a fixed set of users keyed by email.
type stubUserRepo struct {
	identity.UserRepository
	users map[string]*identity.User
}

func (s *stubUserRepo) FindByEmail(_ context.Context, email string) (*identity.User, error) {
	if user, ok := s.users[email]; ok {
		return user, nil
	}
	return nil, shared.ErrNotFound
}

func (s *stubUserRepo) FindByID(_ context.Context, id uuid.UUID) (*identity.User, error) {
	for _, user := range s.users {
		if user.ID == id {
			return user, nil
		}
	}
	return nil, shared.ErrNotFound
}

func newLoginRouter(t *testing.T) (*gin.Engine, *identity.User) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	hasher := password.NewHasher()
	hash, err := hasher.Hash("correct-password")
	require.NoError(t, err)

	user, err := identity.NewUser("Ada", "ada@example.com", hash, false)
	require.NoError(t, err)

	jwtService := auth.NewJWTService(config.JWTConfig{
		Secret:                "test-secret-for-login-handler-tests",
		AccessTokenExpiration: 2 * time.Hour,
		Issuer:                "skillswap-backend",
		Audience:              "skillswap-clients",
	})
	authService := appidentity.NewAuthService(
		&stubUserRepo{users: map[string]*identity.User{user.Email: user}},
		hasher, jwtService, auth.NewInMemoryTokenBlacklist(), zap.NewNop())

	h := NewAuthHandler(authService, nil, nil)
	engine := gin.New()
	engine.POST("/auth/login", h.Login)
	return engine, user
}

func postJSON(t *testing.T, engine *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)
	return rec
}

func TestAuthHandler_LoginSuccess(t *testing.T) {
	engine, _ := newLoginRouter(t)

	rec := postJSON(t, engine, "/auth/login", gin.H{
		"email":    "ada@example.com",
		"password": "correct-password",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.NotEmpty(t, body["accessToken"])
	assert.Equal(t, "Bearer", body["tokenType"])
}

func TestAuthHandler_LoginMissingFields(t *testing.T) {
	engine, _ := newLoginRouter(t)

	rec := postJSON(t, engine, "/auth/login", gin.H{"email": "ada@example.com"})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Email and password are required.", body["message"])
	assert.Equal(t, float64(http.StatusBadRequest), body["statusCode"])
}

func TestAuthHandler_LoginUnknownUser(t *testing.T) {
	engine, _ := newLoginRouter(t)

	rec := postJSON(t, engine, "/auth/login", gin.H{
		"email":    "ghost@example.com",
		"password": "whatever",
	})
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "User not found.", body["message"])
	assert.Equal(t, float64(http.StatusUnauthorized), body["statusCode"])
}

func TestAuthHandler_LoginWrongPassword(t *testing.T) {
	engine, _ := newLoginRouter(t)

	rec := postJSON(t, engine, "/auth/login", gin.H{
		"email":    "ada@example.com",
		"password": "wrong-password",
	})
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Incorrect password!", body["message"])
}
