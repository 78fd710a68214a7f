package identity

import (
	"crypto/rand"
	"encoding/hex"
	"time"

	"github.com/google/uuid"

	"github.com/skillswap/backend/internal/domain/shared"
)

// PasswordResetTokenTTL is the fixed lifetime of a reset token.
const PasswordResetTokenTTL = time.Hour

// PasswordResetToken is a single-use recovery credential. Expired tokens are
// rejected on read; there is no background sweep.
type PasswordResetToken struct {
	shared.BaseEntity
	UserID    uuid.UUID
	Token     string
	ExpiresAt time.Time
}

// NewPasswordResetToken issues a token for the given user, valid for one hour.
func NewPasswordResetToken(userID uuid.UUID) (*PasswordResetToken, error) {
	if userID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_USER", "User ID cannot be empty")
	}
	raw := make([]byte, 32)
	if _, err := rand.Read(raw); err != nil {
		return nil, err
	}
	return &PasswordResetToken{
		BaseEntity: shared.NewBaseEntity(),
		UserID:     userID,
		Token:      hex.EncodeToString(raw),
		ExpiresAt:  time.Now().Add(PasswordResetTokenTTL),
	}, nil
}

// IsExpired reports whether the token has passed its expiry.
func (t *PasswordResetToken) IsExpired() bool {
	return time.Now().After(t.ExpiresAt)
}
