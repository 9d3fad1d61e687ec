package auth

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"regexp"
)

// MethodS256 is the only supported code challenge method.
const MethodS256 = "S256"

// verifierPattern is the RFC 7636 code_verifier grammar.
var verifierPattern = regexp.MustCompile(`^[A-Za-z0-9\-._~]{43,128}$`)

// NewVerifier returns a random code verifier of 43 characters.
func NewVerifier() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generate code verifier: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}

// Challenge computes the S256 challenge for verifier: unpadded
// base64url(sha256(verifier)).
func Challenge(verifier string) string {
	h := sha256.Sum256([]byte(verifier))
	return base64.RawURLEncoding.EncodeToString(h[:])
}

// ValidVerifier reports whether v satisfies the code_verifier grammar.
func ValidVerifier(v string) bool {
	return verifierPattern.MatchString(v)
}

// Verify reports whether verifier matches challenge.
func Verify(verifier, challenge string) bool {
	if !ValidVerifier(verifier) {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(Challenge(verifier)), []byte(challenge)) == 1
}
