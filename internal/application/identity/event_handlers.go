package identity

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/skillswap/backend/internal/domain/identity"
	"github.com/skillswap/backend/internal/domain/shared"
	"github.com/skillswap/backend/internal/infrastructure/mail"
)

// WelcomeMailHandler sends an onboarding mail when an account is created.
type WelcomeMailHandler struct {
	mailer mail.Mailer
	logger *zap.Logger
}

// NewWelcomeMailHandler creates a welcome mail handler
func NewWelcomeMailHandler(mailer mail.Mailer, logger *zap.Logger) *WelcomeMailHandler {
	return &WelcomeMailHandler{mailer: mailer, logger: logger}
}

// EventTypes returns the events this handler subscribes to
func (h *WelcomeMailHandler) EventTypes() []string {
	return []string{identity.EventUserRegistered}
}

// Handle sends the welcome mail for a registration event
func (h *WelcomeMailHandler) Handle(ctx context.Context, ev shared.DomainEvent) error {
	registered, ok := ev.(*identity.UserRegisteredEvent)
	if !ok {
		return nil
	}

	body := "Welcome to SkillSwap! Your account is ready."
	if registered.IsMentor {
		body = "Welcome to SkillSwap! Your mentor profile is live. " +
			"Add your skills and hourly rate so learners can find you."
	}
	if err := h.mailer.Send(ctx, registered.Email, "Welcome to SkillSwap", body); err != nil {
		return fmt.Errorf("send welcome mail: %w", err)
	}
	return nil
}

var _ shared.EventHandler = (*WelcomeMailHandler)(nil)
