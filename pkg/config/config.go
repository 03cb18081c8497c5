package config

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	// Token Expiration Duration
	AccessTokenDuration = 15 * time.Minute

	// Context Keys
	UserClaimKey = "user_claims"
)

// UserClaims is the payload for the Access Token
type UserClaims struct {
	UserID uuid.UUID `json:"user_id"`
	jwt.RegisteredClaims
}
