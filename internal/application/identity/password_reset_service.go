package identity

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/skillswap/backend/internal/domain/identity"
	"github.com/skillswap/backend/internal/domain/shared"
	"github.com/skillswap/backend/internal/infrastructure/mail"
)

// PasswordResetService issues and redeems single-use recovery tokens
type PasswordResetService struct {
	userRepo  identity.UserRepository
	tokenRepo identity.PasswordResetTokenRepository
	hasher    identity.PasswordHasher
	mailer    mail.Mailer
	logger    *zap.Logger
}

// NewPasswordResetService creates a new password reset service
func NewPasswordResetService(
	userRepo identity.UserRepository,
	tokenRepo identity.PasswordResetTokenRepository,
	hasher identity.PasswordHasher,
	mailer mail.Mailer,
	logger *zap.Logger,
) *PasswordResetService {
	return &PasswordResetService{
		userRepo:  userRepo,
		tokenRepo: tokenRepo,
		hasher:    hasher,
		mailer:    mailer,
		logger:    logger,
	}
}

// RequestReset issues a reset token and mails it to the account's address.
// An unknown email returns success without issuing anything, so the endpoint
// does not leak which addresses exist.
func (s *PasswordResetService) RequestReset(ctx context.Context, email string) error {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			s.logger.Info("Password reset requested for unknown email")
			return nil
		}
		return err
	}

	token, err := identity.NewPasswordResetToken(user.ID)
	if err != nil {
		return err
	}
	if err := s.tokenRepo.Save(ctx, token); err != nil {
		return err
	}

	body := fmt.Sprintf("Use this token to reset your password within one hour: %s", token.Token)
	if err := s.mailer.Send(ctx, user.Email, "Password reset", body); err != nil {
		// The token is already stored; delivery failure only gets logged.
		s.logger.Error("Failed to send password reset mail",
			zap.Error(err), zap.String("user_id", user.ID.String()))
	}

	s.logger.Info("Password reset token issued", zap.String("user_id", user.ID.String()))
	return nil
}

// ConfirmReset redeems a token and replaces the account password. The token
// is consumed whether or not it has expired, so it can never be replayed.
func (s *PasswordResetService) ConfirmReset(ctx context.Context, rawToken, newPassword string) error {
	if rawToken == "" {
		return shared.NewDomainError("VALIDATION_ERROR", "Reset token is required")
	}
	if err := identity.ValidatePasswordPolicy(newPassword); err != nil {
		return err
	}

	token, err := s.tokenRepo.FindByToken(ctx, rawToken)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return shared.NewDomainError("INVALID_TOKEN", "Reset token is invalid or has expired")
		}
		return err
	}

	if token.IsExpired() {
		if err := s.tokenRepo.Delete(ctx, token.ID); err != nil {
			s.logger.Error("Failed to delete expired reset token", zap.Error(err))
		}
		return shared.NewDomainError("INVALID_TOKEN", "Reset token is invalid or has expired")
	}

	user, err := s.userRepo.FindByID(ctx, token.UserID)
	if err != nil {
		return err
	}

	hash, err := s.hasher.Hash(newPassword)
	if err != nil {
		s.logger.Error("Password hashing failed", zap.Error(err))
		return shared.NewDomainError("INTERNAL_ERROR", "Failed to process password")
	}
	if err := user.ChangePassword(hash); err != nil {
		return err
	}

	if err := s.userRepo.Save(ctx, user); err != nil {
		return err
	}
	if err := s.tokenRepo.Delete(ctx, token.ID); err != nil {
		s.logger.Error("Failed to consume reset token",
			zap.Error(err), zap.String("user_id", user.ID.String()))
	}

	s.logger.Info("Password reset completed", zap.String("user_id", user.ID.String()))
	return nil
}
