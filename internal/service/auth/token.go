package auth

import (
	"context"
	"fmt"
	"log/slog"

	authpkg "github.com/heartmarshall/lifelog-timeline/internal/auth"
	"github.com/heartmarshall/lifelog-timeline/internal/domain"
)

// Token redeems an authorization code for an access token. The code is
// consumed even when verification fails.
func (s *Service) Token(ctx context.Context, input TokenInput) (*TokenResult, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	ac, ok := s.codes.Take(input.Code)
	if !ok {
		return nil, fmt.Errorf("invalid or expired code: %w", domain.ErrUnauthorized)
	}
	if ac.ClientID != input.ClientID {
		return nil, fmt.Errorf("client_id mismatch: %w", domain.ErrUnauthorized)
	}
	if ac.RedirectURI != input.RedirectURI {
		return nil, fmt.Errorf("redirect_uri mismatch: %w", domain.ErrUnauthorized)
	}
	if !authpkg.Verify(input.CodeVerifier, ac.CodeChallenge) {
		s.log.WarnContext(ctx, "pkce verification failed", slog.String("user_id", ac.UserID.String()))
		return nil, fmt.Errorf("code verifier mismatch: %w", domain.ErrUnauthorized)
	}

	token, err := s.jwt.GenerateAccessToken(ac.UserID, ac.ClientID)
	if err != nil {
		return nil, fmt.Errorf("auth.Token generate access token: %w", err)
	}

	s.log.InfoContext(ctx, "access token issued", slog.String("user_id", ac.UserID.String()))

	return &TokenResult{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   int(s.jwt.TTL().Seconds()),
	}, nil
}
