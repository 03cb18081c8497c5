package identity

import (
	"errors"
	"fmt"
	"time"

	"github.com/gobid/auctionhouse/pkg/config"
	"github.com/gobid/auctionhouse/pkg/utils"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var ErrInvalidToken = errors.New("token is invalid or expired")

// Verifier resolves a session token to a trusted user id.
type Verifier interface {
	Verify(tokenString string) (uuid.UUID, error)
}

type Manager struct {
	secret []byte
}

func NewManager() (*Manager, error) {
	secret := utils.GetEnv("ACCESS_TOKEN_SECRET", "")
	if secret == "" {
		return nil, fmt.Errorf("JWT secret must be set in environment: ACCESS_TOKEN_SECRET")
	}
	return &Manager{secret: []byte(secret)}, nil
}

// NewManagerWithSecret builds a Manager around an explicit secret, mainly
// for tests.
func NewManagerWithSecret(secret []byte) *Manager {
	return &Manager{secret: secret}
}

// Issue creates a signed access token for userID. A zero ttl falls back to
// the configured default.
func (m *Manager) Issue(userID uuid.UUID, ttl time.Duration) (string, error) {
	if ttl == 0 {
		ttl = config.AccessTokenDuration
	}
	now := time.Now()
	claims := config.UserClaims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			ID:        uuid.NewString(),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

// Verify parses and validates an access token and returns the user id it
// was issued for.
func (m *Manager) Verify(tokenString string) (uuid.UUID, error) {
	claims := &config.UserClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Method.Alg())
		}
		return m.secret, nil
	})
	if err != nil || !token.Valid {
		return uuid.Nil, ErrInvalidToken
	}
	if claims.UserID == uuid.Nil {
		return uuid.Nil, ErrInvalidToken
	}
	return claims.UserID, nil
}
