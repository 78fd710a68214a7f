package identity

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/skillswap/backend/internal/domain/identity"
	"github.com/skillswap/backend/internal/domain/shared"
)

func TestWelcomeMailHandler_SendsOnRegistration(t *testing.T) {
	mailer := new(MockMailer)
	handler := NewWelcomeMailHandler(mailer, zap.NewNop())

	mailer.On("Send", mock.Anything, "mentor@example.com", "Welcome to SkillSwap",
		mock.MatchedBy(func(body string) bool {
			return strings.Contains(body, "mentor profile")
		})).Return(nil)

	ev := identity.NewUserRegisteredEvent(uuid.New(), "mentor@example.com", true)
	require.NoError(t, handler.Handle(context.Background(), ev))
	mailer.AssertExpectations(t)
}

func TestWelcomeMailHandler_IgnoresOtherEvents(t *testing.T) {
	mailer := new(MockMailer)
	handler := NewWelcomeMailHandler(mailer, zap.NewNop())

	base := shared.NewBaseDomainEvent("identity.user.password_reset", "User", uuid.New())
	require.NoError(t, handler.Handle(context.Background(), &base))
	mailer.AssertNotCalled(t, "Send", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestWelcomeMailHandler_EventTypes(t *testing.T) {
	handler := NewWelcomeMailHandler(new(MockMailer), zap.NewNop())
	assert.Equal(t, []string{identity.EventUserRegistered}, handler.EventTypes())
}
