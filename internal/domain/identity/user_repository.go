package identity

import (
	"context"

	"github.com/google/uuid"

	"github.com/skillswap/backend/internal/domain/shared"
)

// UserRepository defines persistence operations for the User aggregate
type UserRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	FindMentors(ctx context.Context, filter shared.Filter) ([]User, int64, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	Save(ctx context.Context, user *User) error
	// SaveWithLock persists the aggregate only when the stored row still
	// carries the previous version, returning a concurrency conflict
	// otherwise.
	SaveWithLock(ctx context.Context, user *User) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// PasswordResetTokenRepository defines persistence for reset tokens
type PasswordResetTokenRepository interface {
	Save(ctx context.Context, token *PasswordResetToken) error
	FindByToken(ctx context.Context, token string) (*PasswordResetToken, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
