package identity

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/skillswap/backend/internal/domain/identity"
	"github.com/skillswap/backend/internal/domain/shared"
	"github.com/skillswap/backend/internal/infrastructure/auth"
)

// AuthService handles authentication operations
type AuthService struct {
	userRepo   identity.UserRepository
	hasher     identity.PasswordHasher
	jwtService *auth.JWTService
	blacklist  auth.TokenBlacklist
	logger     *zap.Logger
}

// NewAuthService creates a new authentication service
func NewAuthService(
	userRepo identity.UserRepository,
	hasher identity.PasswordHasher,
	jwtService *auth.JWTService,
	blacklist auth.TokenBlacklist,
	logger *zap.Logger,
) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		hasher:     hasher,
		jwtService: jwtService,
		blacklist:  blacklist,
		logger:     logger,
	}
}

// Login verifies credentials and issues a bearer token. Unknown email and
// wrong password both come back as credential failures with distinguishable
// messages, and each class logs its own line.
func (s *AuthService) Login(ctx context.Context, input LoginInput) (*LoginResult, error) {
	if input.Email == "" || input.Password == "" {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Email and password are required.")
	}

	user, err := s.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		s.logger.Warn("Login attempt for unknown email", zap.String("email", input.Email))
		return nil, shared.NewDomainError("INVALID_CREDENTIALS", "User not found.")
	}

	if !s.hasher.Verify(input.Password, user.PasswordHash) {
		s.logger.Warn("Login attempt with wrong password",
			zap.String("email", input.Email),
			zap.String("user_id", user.ID.String()))
		return nil, shared.NewDomainError("INVALID_CREDENTIALS", "Incorrect password!")
	}

	token, err := s.jwtService.Issue(user)
	if err != nil {
		s.logger.Error("Token issuance failed", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to issue token")
	}

	s.logger.Info("Login succeeded", zap.String("user_id", user.ID.String()))
	return &LoginResult{
		AccessToken: token.Token,
		TokenType:   token.TokenType,
		ExpiresAt:   token.ExpiresAt,
		UserID:      user.ID,
	}, nil
}

// Logout revokes the presented token until its natural expiry.
func (s *AuthService) Logout(ctx context.Context, claims *auth.Claims) error {
	if claims == nil || claims.ID == "" {
		return shared.NewDomainError("VALIDATION_ERROR", "Token has no identifier")
	}
	ttl := time.Until(claims.ExpiresAt.Time)
	if err := s.blacklist.Add(ctx, claims.ID, ttl); err != nil {
		s.logger.Error("Failed to blacklist token", zap.Error(err), zap.String("jti", claims.ID))
		return shared.NewDomainError("INTERNAL_ERROR", "Failed to revoke token")
	}
	s.logger.Info("Token revoked", zap.String("jti", claims.ID))
	return nil
}
