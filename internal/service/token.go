package service

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pmendys/course-match/internal/domain"
)

// TokenSigner signs and validates the session cookie. The cookie
// carries only the opaque session id; all session data lives in the
// orchestrator's memory.
type TokenSigner struct {
	secret []byte
}

// NewTokenSigner creates a TokenSigner using the given HMAC secret.
func NewTokenSigner(secret string) *TokenSigner {
	return &TokenSigner{secret: []byte(secret)}
}

// Sign returns a signed token for the given session id.
func (s *TokenSigner) Sign(sessionID string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub": sessionID,
		"iat": now.Unix(),
		"exp": now.Add(24 * time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Validate parses a token string and returns the session id from the
// sub claim. Any parse or signature failure is ErrInvalidInput; the
// middleware responds by minting a fresh session.
func (s *TokenSigner) Validate(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return "", domain.ErrInvalidInput
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return "", domain.ErrInvalidInput
	}

	sub, err := claims.GetSubject()
	if err != nil || sub == "" {
		return "", domain.ErrInvalidInput
	}
	return sub, nil
}
