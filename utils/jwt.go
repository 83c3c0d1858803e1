package utils

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// TerminalClaims bind a browser session to the register it logged into.
type TerminalClaims struct {
	RegisterID string `json:"registerId"`
	jwt.RegisteredClaims
}

// GenerateTerminalToken mints the session token handed out on register login.
func GenerateTerminalToken(registerID, secret string, ttl time.Duration) (string, error) {
	claims := &TerminalClaims{
		RegisterID: registerID,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ParseTerminalToken validates the token and returns the register id it was
// minted for.
func ParseTerminalToken(tokenStr, secret string) (string, error) {
	claims := &TerminalClaims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method")
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return "", fmt.Errorf("invalid token")
	}
	return claims.RegisterID, nil
}
