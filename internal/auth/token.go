// Package auth issues and verifies the signed bearer tokens that bind an
// authenticated email to a session.
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken is returned when a token fails signature or expiry checks.
var ErrInvalidToken = errors.New("invalid token")

// Claims carries the standard registered claims plus the authenticated email.
type Claims struct {
	jwt.RegisteredClaims
	Email string `json:"email"`
}

// IssueToken signs an HS256 token binding the email to a session that
// expires after ttl.
func IssueToken(email string, secretKey []byte, ttl time.Duration) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		Email: email,
	})

	return token.SignedString(secretKey)
}

// EmailFromToken verifies the token and returns the email it attests.
// Verification is a pure check with no side effects.
func EmailFromToken(tokenString string, secretKey []byte) (string, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return secretKey, nil
	})
	if err != nil {
		return "", err
	}

	if !token.Valid || claims.Email == "" {
		return "", ErrInvalidToken
	}

	return claims.Email, nil
}
