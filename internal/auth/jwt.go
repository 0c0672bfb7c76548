package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/vasapolrittideah/e-comm-api/internal/model"
)

// Claims is the payload carried inside a signed session token: a sanitized
// user record plus the registered expiry metadata.
type Claims struct {
	User model.User `json:"user"`
	jwt.RegisteredClaims
}

// TokenCodec issues and verifies HMAC-signed session tokens.
type TokenCodec struct {
	secret string
	ttl    time.Duration
}

// NewTokenCodec creates a TokenCodec with the given shared secret and token
// lifetime.
func NewTokenCodec(secret string, ttl time.Duration) TokenCodec {
	return TokenCodec{
		secret: secret,
		ttl:    ttl,
	}
}

// Issue signs a token embedding the sanitized user, expiring ttl from now.
func (c TokenCodec) Issue(user model.User) (string, error) {
	now := time.Now()
	claims := Claims{
		User: user.Sanitized(),
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(c.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenStr, err := token.SignedString([]byte(c.secret))
	if err != nil {
		return "", err
	}

	return tokenStr, nil
}

// Verify parses and validates a token and returns its claims. Malformed
// tokens, bad signatures and expired tokens all fail the same way; callers
// branch only on success or failure.
func (c TokenCodec) Verify(tokenString string) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}

		return []byte(c.secret), nil
	},
		jwt.WithExpirationRequired(),
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}),
	)
	if err != nil {
		return nil, err
	}

	if !token.Valid {
		return nil, errors.New("invalid token")
	}

	return claims, nil
}
