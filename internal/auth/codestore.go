package auth

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"sync"
	"time"

	"github.com/heartmarshall/lifelog-timeline/internal/domain"
)

// CodeStore keeps authorization codes in memory until they are redeemed or
// expire. Codes are single use.
type CodeStore struct {
	mu    sync.Mutex
	codes map[string]domain.AuthCode
	now   func() time.Time
}

// NewCodeStore creates an empty store.
func NewCodeStore() *CodeStore {
	return &CodeStore{codes: make(map[string]domain.AuthCode), now: time.Now}
}

// NewCode returns a random opaque code.
func NewCode() (string, error) {
	b := make([]byte, 24)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generate authorization code: %w", err)
	}
	return hex.EncodeToString(b), nil
}

// Put stores c under c.Code.
func (s *CodeStore) Put(c domain.AuthCode) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.codes[c.Code] = c
}

// Take removes and returns the code. Expired codes are removed and reported
// as missing.
func (s *CodeStore) Take(code string) (domain.AuthCode, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.codes[code]
	if !ok {
		return domain.AuthCode{}, false
	}
	delete(s.codes, code)
	if c.IsExpired(s.now()) {
		return domain.AuthCode{}, false
	}
	return c, true
}

// Sweep drops expired codes and returns how many were removed.
func (s *CodeStore) Sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	n := 0
	for k, c := range s.codes {
		if c.IsExpired(now) {
			delete(s.codes, k)
			n++
		}
	}
	return n
}

// Len returns the number of stored codes.
func (s *CodeStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.codes)
}
