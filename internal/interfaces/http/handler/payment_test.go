package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	appbilling "github.com/skillswap/backend/internal/application/billing"
	"github.com/skillswap/backend/internal/domain/billing"
	"github.com/skillswap/backend/internal/domain/shared"
)

// stubPaymentRepo serves a fixed set of payments keyed by ID.
type stubPaymentRepo struct {
	billing.PaymentRepository
	payments map[uuid.UUID]*billing.Payment
	saved    int
}

func (s *stubPaymentRepo) FindByID(_ context.Context, id uuid.UUID) (*billing.Payment, error) {
	if p, ok := s.payments[id]; ok {
		return p, nil
	}
	return nil, shared.ErrNotFound
}

func (s *stubPaymentRepo) SaveWithLock(_ context.Context, _ *billing.Payment) error {
	s.saved++
	return nil
}

func newPaymentRouter(repo *stubPaymentRepo) *gin.Engine {
	gin.SetMode(gin.TestMode)
	service := appbilling.NewPaymentService(repo, nil, nil, nil, zap.NewNop())
	h := NewPaymentHandler(service)

	engine := gin.New()
	engine.PATCH("/payments/:id/status", h.UpdateStatus)
	return engine
}

func patchStatus(t *testing.T, engine *gin.Engine, id, status string) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(gin.H{"status": status})
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPatch, "/payments/"+id+"/status", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)
	return rec
}

func TestPaymentHandler_UpdateStatus(t *testing.T) {
	payment, err := billing.NewPayment(uuid.New(), uuid.New(), decimal.NewFromInt(10))
	require.NoError(t, err)
	repo := &stubPaymentRepo{payments: map[uuid.UUID]*billing.Payment{payment.ID: payment}}
	engine := newPaymentRouter(repo)

	rec := patchStatus(t, engine, payment.ID.String(), "COMPLETED")
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "COMPLETED", body["status"])
	assert.Equal(t, 1, repo.saved)
}

func TestPaymentHandler_UpdateStatusUnknownPayment(t *testing.T) {
	repo := &stubPaymentRepo{payments: map[uuid.UUID]*billing.Payment{}}
	engine := newPaymentRouter(repo)

	rec := patchStatus(t, engine, uuid.NewString(), "COMPLETED")
	require.Equal(t, http.StatusNotFound, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, float64(http.StatusNotFound), body["statusCode"])
	assert.Equal(t, 0, repo.saved, "a missing payment writes nothing")
}

func TestPaymentHandler_UpdateStatusIllegalTransition(t *testing.T) {
	payment, err := billing.NewPayment(uuid.New(), uuid.New(), decimal.NewFromInt(10))
	require.NoError(t, err)
	require.NoError(t, payment.MarkFailed())
	repo := &stubPaymentRepo{payments: map[uuid.UUID]*billing.Payment{payment.ID: payment}}
	engine := newPaymentRouter(repo)

	rec := patchStatus(t, engine, payment.ID.String(), "COMPLETED")
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, 0, repo.saved)
}

func TestPaymentHandler_UpdateStatusInvalidID(t *testing.T) {
	engine := newPaymentRouter(&stubPaymentRepo{})

	rec := patchStatus(t, engine, "not-a-uuid", "COMPLETED")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
