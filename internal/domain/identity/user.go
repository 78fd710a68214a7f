package identity

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/skillswap/backend/internal/domain/shared"
)

const (
	maxNameLength = 100
	maxBioLength  = 2000
	minPasswordLen = 8
	maxPasswordLen = 128
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// User is the aggregate root for a marketplace account. A user may act as a
// learner, a mentor, or both; the mentor flag gates the payee side of
// payments and the mentor-facing catalog surfaces.
type User struct {
	shared.BaseAggregateRoot
	Name           string
	Email          string
	PasswordHash   string
	Bio            string
	ProfilePicture string
	Balance        decimal.Decimal
	IsMentor       bool
	HourlyRate     decimal.Decimal
}

// NewUser creates a user with a zero balance. The password must already be
// hashed; plaintext never reaches the domain layer.
func NewUser(name, email, passwordHash string, isMentor bool) (*User, error) {
	u := &User{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Balance:           decimal.Zero,
		IsMentor:          isMentor,
	}
	if err := u.setName(name); err != nil {
		return nil, err
	}
	if err := u.SetEmail(email); err != nil {
		return nil, err
	}
	if passwordHash == "" {
		return nil, shared.NewDomainError("INVALID_PASSWORD", "Password hash cannot be empty")
	}
	u.PasswordHash = passwordHash

	u.AddDomainEvent(NewUserRegisteredEvent(u.ID, u.Email, u.IsMentor))
	return u, nil
}

func (u *User) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Name cannot be empty")
	}
	if len(name) > maxNameLength {
		return shared.NewDomainError("INVALID_NAME", fmt.Sprintf("Name cannot exceed %d characters", maxNameLength))
	}
	u.Name = name
	return nil
}

// SetEmail validates and normalizes the email address. Emails are stored
// lowercase so lookups can use exact matching.
func (u *User) SetEmail(email string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return shared.NewDomainError("INVALID_EMAIL", "Email cannot be empty")
	}
	if !emailRegex.MatchString(email) {
		return shared.NewDomainError("INVALID_EMAIL", "Invalid email format")
	}
	u.Email = email
	u.Touch()
	return nil
}

// UpdateProfile replaces the mutable profile fields.
func (u *User) UpdateProfile(name, bio, profilePicture string) error {
	if err := u.setName(name); err != nil {
		return err
	}
	if len(bio) > maxBioLength {
		return shared.NewDomainError("INVALID_BIO", fmt.Sprintf("Bio cannot exceed %d characters", maxBioLength))
	}
	if profilePicture != "" {
		if _, err := url.ParseRequestURI(profilePicture); err != nil {
			return shared.NewDomainError("INVALID_PROFILE_PICTURE", "Profile picture must be a valid URL")
		}
	}
	u.Bio = bio
	u.ProfilePicture = profilePicture
	u.Touch()
	return nil
}

// SetHourlyRate sets the rate a mentor charges per session hour.
func (u *User) SetHourlyRate(rate decimal.Decimal) error {
	if !u.IsMentor {
		return shared.NewDomainError("NOT_A_MENTOR", "Only mentors can set an hourly rate")
	}
	if rate.IsNegative() {
		return shared.NewDomainError("INVALID_RATE", "Hourly rate cannot be negative")
	}
	u.HourlyRate = rate
	u.Touch()
	return nil
}

// ChangePassword replaces the stored hash. Plaintext validation and hashing
// happen in the application layer.
func (u *User) ChangePassword(newHash string) error {
	if newHash == "" {
		return shared.NewDomainError("INVALID_PASSWORD", "Password hash cannot be empty")
	}
	u.PasswordHash = newHash
	u.Touch()
	return nil
}

// SetBalance overwrites the balance. Negative targets are rejected and the
// stored value stays untouched.
func (u *User) SetBalance(balance decimal.Decimal) error {
	if balance.IsNegative() {
		return shared.NewDomainError("NEGATIVE_BALANCE", "Balance cannot be negative")
	}
	old := u.Balance
	u.Balance = balance
	u.IncrementVersion()
	u.Touch()
	u.AddDomainEvent(NewUserBalanceChangedEvent(u.ID, old, balance))
	return nil
}

// AddBalance credits the balance by a positive amount.
func (u *User) AddBalance(amount decimal.Decimal) error {
	if amount.LessThanOrEqual(decimal.Zero) {
		return shared.NewDomainError("INVALID_AMOUNT", "Credit amount must be positive")
	}
	old := u.Balance
	u.Balance = u.Balance.Add(amount)
	u.IncrementVersion()
	u.Touch()
	u.AddDomainEvent(NewUserBalanceChangedEvent(u.ID, old, u.Balance))
	return nil
}

// DeductBalance debits the balance by a positive amount, failing when the
// funds are insufficient.
func (u *User) DeductBalance(amount decimal.Decimal) error {
	if amount.LessThanOrEqual(decimal.Zero) {
		return shared.NewDomainError("INVALID_AMOUNT", "Debit amount must be positive")
	}
	if u.Balance.LessThan(amount) {
		return shared.ErrInsufficientBalance
	}
	old := u.Balance
	u.Balance = u.Balance.Sub(amount)
	u.IncrementVersion()
	u.Touch()
	u.AddDomainEvent(NewUserBalanceChangedEvent(u.ID, old, u.Balance))
	return nil
}

// ValidatePasswordPolicy checks a plaintext candidate before it is hashed.
func ValidatePasswordPolicy(password string) error {
	if len(password) < minPasswordLen {
		return shared.NewDomainError("INVALID_PASSWORD", fmt.Sprintf("Password must be at least %d characters", minPasswordLen))
	}
	if len(password) > maxPasswordLen {
		return shared.NewDomainError("INVALID_PASSWORD", fmt.Sprintf("Password cannot exceed %d characters", maxPasswordLen))
	}
	return nil
}
