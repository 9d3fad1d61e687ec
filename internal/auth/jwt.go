// Package auth holds the token and authorization-code primitives used by the
// PKCE login flow.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// ErrInvalidToken is returned for any token that fails validation.
var ErrInvalidToken = errors.New("invalid token")

// clockSkew is how far the API and the token issuer's clocks may disagree.
const clockSkew = 30 * time.Second

// JWTManager signs and checks the HS256 bearer tokens handed out by the
// token endpoint. The subject is the user id; client_id names the OAuth
// client that redeemed the code.
type JWTManager struct {
	key    []byte
	issuer string
	ttl    time.Duration
	now    func() time.Time
}

// NewJWTManager creates a JWTManager. The config layer rejects secrets
// shorter than 32 characters.
func NewJWTManager(secret, issuer string, ttl time.Duration) *JWTManager {
	return &JWTManager{key: []byte(secret), issuer: issuer, ttl: ttl, now: time.Now}
}

type timelineClaims struct {
	jwt.RegisteredClaims
	ClientID string `json:"client_id,omitempty"`
}

// TTL returns the lifetime of issued access tokens.
func (m *JWTManager) TTL() time.Duration { return m.ttl }

// GenerateAccessToken signs a token for userID on behalf of clientID.
func (m *JWTManager) GenerateAccessToken(userID uuid.UUID, clientID string) (string, error) {
	issued := m.now().Truncate(time.Second)
	claims := timelineClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   userID.String(),
			Issuer:    m.issuer,
			IssuedAt:  jwt.NewNumericDate(issued),
			NotBefore: jwt.NewNumericDate(issued),
			ExpiresAt: jwt.NewNumericDate(issued.Add(m.ttl)),
		},
		ClientID: clientID,
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.key)
	if err != nil {
		return "", fmt.Errorf("sign access token: %w", err)
	}
	return signed, nil
}

// ValidateAccessToken checks signature, issuer and lifetime and returns the
// user the token was issued to. Every failure wraps ErrInvalidToken.
func (m *JWTManager) ValidateAccessToken(raw string) (uuid.UUID, error) {
	if raw == "" {
		return uuid.Nil, fmt.Errorf("%w: empty", ErrInvalidToken)
	}

	var claims timelineClaims
	_, err := jwt.ParseWithClaims(raw, &claims,
		func(*jwt.Token) (any, error) { return m.key, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(m.issuer),
		jwt.WithExpirationRequired(),
		jwt.WithIssuedAt(),
		jwt.WithLeeway(clockSkew),
		jwt.WithTimeFunc(m.now),
	)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil || userID == uuid.Nil {
		return uuid.Nil, fmt.Errorf("%w: bad subject %q", ErrInvalidToken, claims.Subject)
	}
	return userID, nil
}
