package router

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	appbilling "github.com/skillswap/backend/internal/application/billing"
	appcatalog "github.com/skillswap/backend/internal/application/catalog"
	appidentity "github.com/skillswap/backend/internal/application/identity"
	appmentorship "github.com/skillswap/backend/internal/application/mentorship"
	"github.com/skillswap/backend/internal/infrastructure/auth"
	"github.com/skillswap/backend/internal/infrastructure/config"
	"github.com/skillswap/backend/internal/infrastructure/mail"
	"github.com/skillswap/backend/internal/infrastructure/password"
	"github.com/skillswap/backend/internal/infrastructure/persistence"
	"github.com/skillswap/backend/internal/interfaces/http/handler"
)

func newTestServer(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	log := zap.NewNop()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	gormDB, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	db := &persistence.Database{DB: gormDB}
	require.NoError(t, db.AutoMigrate())

	cfg := &config.Config{}
	cfg.App.Name = "skillswap"
	cfg.App.Env = "test"
	cfg.JWT = config.JWTConfig{
		Secret:                "integration-test-secret",
		AccessTokenExpiration: time.Hour,
		Issuer:                "skillswap-backend",
		Audience:              "skillswap-clients",
	}

	jwtService := auth.NewJWTService(cfg.JWT)
	blacklist := auth.NewInMemoryTokenBlacklist()
	hasher := password.NewHasher()
	mailer := mail.NewLogMailer(log, "noreply@skillswap.test")

	userRepo := persistence.NewGormUserRepository(gormDB)
	resetTokenRepo := persistence.NewGormPasswordResetTokenRepository(gormDB)
	skillRepo := persistence.NewGormSkillRepository(gormDB)
	userSkillRepo := persistence.NewGormUserSkillRepository(gormDB)
	requestRepo := persistence.NewGormRequestRepository(gormDB)
	sessionRepo := persistence.NewGormSessionRepository(gormDB)
	reviewRepo := persistence.NewGormReviewRepository(gormDB)
	paymentRepo := persistence.NewGormPaymentRepository(gormDB)
	ledgerRepo := persistence.NewGormBalanceTransactionRepository(gormDB)
	settlementScope := persistence.NewGormSettlementScope(gormDB)

	authService := appidentity.NewAuthService(userRepo, hasher, jwtService, blacklist, log)
	userService := appidentity.NewUserService(userRepo, ledgerRepo, hasher, nil, log)
	resetService := appidentity.NewPasswordResetService(userRepo, resetTokenRepo, hasher, mailer, log)
	skillService := appcatalog.NewSkillService(skillRepo, userSkillRepo, userRepo, log)
	requestService := appmentorship.NewRequestService(requestRepo, userRepo, skillRepo, log)
	sessionService := appmentorship.NewSessionService(sessionRepo, requestRepo, log)
	reviewService := appmentorship.NewReviewService(reviewRepo, sessionRepo, log)
	paymentService := appbilling.NewPaymentService(paymentRepo, ledgerRepo, userRepo, settlementScope, log)

	return New(Dependencies{
		Config:         cfg,
		Logger:         log,
		JWTService:     jwtService,
		TokenBlacklist: blacklist,
		Handlers: Handlers{
			Auth:       handler.NewAuthHandler(authService, userService, resetService),
			User:       handler.NewUserHandler(userService, skillService, paymentService),
			Skill:      handler.NewSkillHandler(skillService),
			Mentorship: handler.NewMentorshipHandler(requestService, sessionService, reviewService),
			Payment:    handler.NewPaymentHandler(paymentService),
			System:     handler.NewSystemHandler(db),
		},
	})
}

func doJSON(t *testing.T, engine *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body), "body: %s", rec.Body.String())
	return body
}

func registerAccount(t *testing.T, engine *gin.Engine, name, email string, isMentor bool) string {
	t.Helper()
	rec := doJSON(t, engine, http.MethodPost, "/api/v1/auth/register", "", gin.H{
		"name":     name,
		"email":    email,
		"password": "long-enough-password",
		"isMentor": isMentor,
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	return decode(t, rec)["id"].(string)
}

func login(t *testing.T, engine *gin.Engine, email string) string {
	t.Helper()
	rec := doJSON(t, engine, http.MethodPost, "/api/v1/auth/login", "", gin.H{
		"email":    email,
		"password": "long-enough-password",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	body := decode(t, rec)
	assert.Equal(t, "Bearer", body["tokenType"])
	return body["accessToken"].(string)
}

// The full happy path: two accounts, a funded learner, a payment created
// against a mentor and settled, with both balances and the payment status
// checked over the wire.
func TestSettlementFlow(t *testing.T) {
	engine := newTestServer(t)

	learnerID := registerAccount(t, engine, "Learner", "learner@example.com", false)
	mentorID := registerAccount(t, engine, "Mentor", "mentor@example.com", true)

	learnerToken := login(t, engine, "learner@example.com")
	mentorToken := login(t, engine, "mentor@example.com")

	rec := doJSON(t, engine, http.MethodPatch, "/api/v1/users/"+learnerID+"/balance", learnerToken,
		gin.H{"balance": "100"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "100", decode(t, rec)["balance"])

	rec = doJSON(t, engine, http.MethodPost, "/api/v1/payments", learnerToken, gin.H{
		"mentorId": mentorID,
		"amount":   "30",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	payment := decode(t, rec)
	assert.Equal(t, "PENDING", payment["status"])
	paymentID := payment["id"].(string)

	rec = doJSON(t, engine, http.MethodPost, "/api/v1/payments/"+paymentID+"/settle", learnerToken, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "COMPLETED", decode(t, rec)["status"])

	rec = doJSON(t, engine, http.MethodGet, "/api/v1/users/"+learnerID, learnerToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "70", decode(t, rec)["balance"])

	rec = doJSON(t, engine, http.MethodGet, "/api/v1/users/"+mentorID, mentorToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "30", decode(t, rec)["balance"])

	// A second settle attempt finds the payment already completed.
	rec = doJSON(t, engine, http.MethodPost, "/api/v1/payments/"+paymentID+"/settle", learnerToken, nil)
	assert.Equal(t, http.StatusConflict, rec.Code, rec.Body.String())

	rec = doJSON(t, engine, http.MethodGet, "/api/v1/users/"+learnerID+"/transactions", learnerToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestSettlementFlow_InsufficientBalance(t *testing.T) {
	engine := newTestServer(t)

	learnerID := registerAccount(t, engine, "Broke Learner", "broke@example.com", false)
	mentorID := registerAccount(t, engine, "Mentor", "mentor2@example.com", true)
	learnerToken := login(t, engine, "broke@example.com")

	rec := doJSON(t, engine, http.MethodPost, "/api/v1/payments", learnerToken, gin.H{
		"mentorId": mentorID,
		"amount":   "30",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	paymentID := decode(t, rec)["id"].(string)

	rec = doJSON(t, engine, http.MethodPost, "/api/v1/payments/"+paymentID+"/settle", learnerToken, nil)
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code, rec.Body.String())

	// The failed settlement stays durable and the learner keeps their balance.
	rec = doJSON(t, engine, http.MethodGet, "/api/v1/payments/"+paymentID, learnerToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "FAILED", decode(t, rec)["status"])

	rec = doJSON(t, engine, http.MethodGet, "/api/v1/users/"+learnerID, learnerToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "0", decode(t, rec)["balance"])
}

func TestMentorshipFlow(t *testing.T) {
	engine := newTestServer(t)

	registerAccount(t, engine, "Learner", "flow-learner@example.com", false)
	mentorID := registerAccount(t, engine, "Mentor", "flow-mentor@example.com", true)
	learnerToken := login(t, engine, "flow-learner@example.com")
	mentorToken := login(t, engine, "flow-mentor@example.com")

	rec := doJSON(t, engine, http.MethodPost, "/api/v1/skills", mentorToken, gin.H{
		"name":        "Go",
		"description": "Backend development with Go",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	skillID := decode(t, rec)["id"].(string)

	rec = doJSON(t, engine, http.MethodPost, "/api/v1/mentorship-requests", learnerToken, gin.H{
		"mentorId": mentorID,
		"skillId":  skillID,
		"message":  "Looking for help with Go services",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	requestID := decode(t, rec)["id"].(string)

	rec = doJSON(t, engine, http.MethodPost, "/api/v1/mentorship-requests/"+requestID+"/accept", mentorToken, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "ACCEPTED", decode(t, rec)["status"])

	rec = doJSON(t, engine, http.MethodPost, "/api/v1/sessions", mentorToken, gin.H{
		"requestId":   requestID,
		"scheduledAt": time.Now().Add(24 * time.Hour).Format(time.RFC3339),
		"duration":    60,
		"price":       "25.5",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	sessionID := decode(t, rec)["id"].(string)

	rec = doJSON(t, engine, http.MethodPost, "/api/v1/sessions/"+sessionID+"/complete", mentorToken, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = doJSON(t, engine, http.MethodPost, "/api/v1/reviews", learnerToken, gin.H{
		"sessionId": sessionID,
		"rating":    5,
		"comment":   "Great session",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = doJSON(t, engine, http.MethodGet, "/api/v1/mentors/"+mentorID+"/rating", learnerToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	rating := decode(t, rec)
	assert.Equal(t, float64(5), rating["averageRating"])
}

func TestLogoutRevokesToken(t *testing.T) {
	engine := newTestServer(t)

	registerAccount(t, engine, "Learner", "logout@example.com", false)
	token := login(t, engine, "logout@example.com")

	rec := doJSON(t, engine, http.MethodGet, "/api/v1/auth/me", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, engine, http.MethodPost, "/api/v1/auth/logout", token, nil)
	require.Equal(t, http.StatusNoContent, rec.Code, rec.Body.String())

	rec = doJSON(t, engine, http.MethodGet, "/api/v1/auth/me", token, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestProtectedRoutesRejectAnonymous(t *testing.T) {
	engine := newTestServer(t)

	rec := doJSON(t, engine, http.MethodGet, "/api/v1/skills", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = doJSON(t, engine, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}
