package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"golang.org/x/crypto/bcrypt"

	authpkg "github.com/heartmarshall/lifelog-timeline/internal/auth"
	"github.com/heartmarshall/lifelog-timeline/internal/domain"
)

// Authorize checks the user's password and issues a one-time code bound to
// the PKCE challenge. Wrong credentials and unknown users both return
// ErrUnauthorized.
func (s *Service) Authorize(ctx context.Context, input AuthorizeInput) (*AuthorizeResult, error) {
	input.Username = strings.TrimSpace(input.Username)

	if err := input.Validate(); err != nil {
		return nil, err
	}
	if input.ClientID != s.cfg.ClientID {
		return nil, domain.NewValidationError("client_id", "unknown client")
	}
	if !s.cfg.IsRedirectAllowed(input.RedirectURI) {
		return nil, domain.NewValidationError("redirect_uri", "not allowed")
	}

	user, err := s.users.GetByUsername(ctx, input.Username)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrUnauthorized
		}
		return nil, fmt.Errorf("auth.Authorize get user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		s.log.WarnContext(ctx, "authorize rejected", slog.String("username", input.Username))
		return nil, domain.ErrUnauthorized
	}

	code, err := authpkg.NewCode()
	if err != nil {
		return nil, fmt.Errorf("auth.Authorize: %w", err)
	}

	ac := domain.AuthCode{
		Code:          code,
		UserID:        user.ID,
		ClientID:      input.ClientID,
		RedirectURI:   input.RedirectURI,
		CodeChallenge: input.CodeChallenge,
		ExpiresAt:     s.now().Add(s.cfg.CodeTTL),
	}
	s.codes.Put(ac)

	s.log.InfoContext(ctx, "authorization code issued",
		slog.String("user_id", user.ID.String()),
		slog.String("client_id", input.ClientID))

	return &AuthorizeResult{Code: code, RedirectURI: input.RedirectURI, ExpiresAt: ac.ExpiresAt}, nil
}
