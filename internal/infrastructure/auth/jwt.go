package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/skillswap/backend/internal/domain/identity"
	"github.com/skillswap/backend/internal/infrastructure/config"
)

// RoleUser is the single authorization role carried by every token.
const RoleUser = "User"

// Common errors
var (
	ErrInvalidToken     = errors.New("invalid token")
	ErrExpiredToken     = errors.New("token has expired")
	ErrInvalidClaims    = errors.New("invalid token claims")
	ErrTokenNotYetValid = errors.New("token is not yet valid")
	ErrMissingUserID    = errors.New("missing user_id in claims")
	ErrTokenBlacklisted = errors.New("token has been revoked")
)

// Claims represents the custom JWT claims. Subject carries the email.
// Balance is the account balance serialized as a string at issuance time;
// it is a point-in-time snapshot and goes stale as soon as the balance
// moves, so services always re-read the stored balance before acting on it.
type Claims struct {
	jwt.RegisteredClaims
	UserID         string `json:"user_id"`
	Role           string `json:"role"`
	Bio            string `json:"bio,omitempty"`
	ProfilePicture string `json:"profile_picture,omitempty"`
	Balance        string `json:"balance"`
}

// AccessToken is an issued bearer token with its metadata
type AccessToken struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
	TokenType string    `json:"token_type"` // Bearer
}

// JWTService issues and validates HS256 bearer tokens
type JWTService struct {
	secret     []byte
	expiration time.Duration
	issuer     string
	audience   string
}

// NewJWTService creates a JWT service from immutable configuration
func NewJWTService(cfg config.JWTConfig) *JWTService {
	return &JWTService{
		secret:     []byte(cfg.Secret),
		expiration: cfg.AccessTokenExpiration,
		issuer:     cfg.Issuer,
		audience:   cfg.Audience,
	}
}

// Issue generates a signed access token for a verified user
func (s *JWTService) Issue(user *identity.User) (*AccessToken, error) {
	now := time.Now()
	expiresAt := now.Add(s.expiration)

	claims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.New().String(),
			Issuer:    s.issuer,
			Subject:   user.Email,
			Audience:  jwt.ClaimStrings{s.audience},
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			NotBefore: jwt.NewNumericDate(now),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		UserID:         user.ID.String(),
		Role:           RoleUser,
		Bio:            user.Bio,
		ProfilePicture: user.ProfilePicture,
		Balance:        user.Balance.String(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return nil, err
	}

	return &AccessToken{
		Token:     signed,
		ExpiresAt: expiresAt,
		TokenType: "Bearer",
	}, nil
}

// Validate parses and verifies a token, returning its claims
func (s *JWTService) Validate(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return s.secret, nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		if errors.Is(err, jwt.ErrTokenNotValidYet) {
			return nil, ErrTokenNotYetValid
		}
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidClaims
	}
	if claims.UserID == "" {
		return nil, ErrMissingUserID
	}

	return claims, nil
}

// BalanceSnapshot parses the balance claim embedded at issuance time
func (c *Claims) BalanceSnapshot() (decimal.Decimal, error) {
	return decimal.NewFromString(c.Balance)
}
