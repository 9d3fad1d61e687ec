// Package auth implements the authorization-code flow with PKCE used by the
// timeline frontend and the CLI.
package auth

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/lifelog-timeline/internal/config"
	"github.com/heartmarshall/lifelog-timeline/internal/domain"
)

// userRepo defines the user repository interface needed by auth service.
type userRepo interface {
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
}

// codeStore keeps issued authorization codes until redemption.
type codeStore interface {
	Put(c domain.AuthCode)
	Take(code string) (domain.AuthCode, bool)
}

// jwtManager defines the JWT token management interface needed by auth service.
type jwtManager interface {
	GenerateAccessToken(userID uuid.UUID, clientID string) (string, error)
	ValidateAccessToken(token string) (uuid.UUID, error)
	TTL() time.Duration
}

// Service implements auth operations.
type Service struct {
	log   *slog.Logger
	users userRepo
	codes codeStore
	jwt   jwtManager
	cfg   config.AuthConfig
	now   func() time.Time
}

// NewService creates a new auth service instance.
func NewService(
	logger *slog.Logger,
	users userRepo,
	codes codeStore,
	jwt jwtManager,
	cfg config.AuthConfig,
) *Service {
	return &Service{
		log:   logger.With("service", "auth"),
		users: users,
		codes: codes,
		jwt:   jwt,
		cfg:   cfg,
		now:   time.Now,
	}
}

// ValidateToken returns the user an access token was issued for.
func (s *Service) ValidateToken(_ context.Context, token string) (uuid.UUID, error) {
	id, err := s.jwt.ValidateAccessToken(token)
	if err != nil {
		return uuid.Nil, domain.ErrUnauthorized
	}
	return id, nil
}
