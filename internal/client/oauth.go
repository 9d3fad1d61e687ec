package client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/heartmarshall/lifelog-timeline/internal/auth"
	authsvc "github.com/heartmarshall/lifelog-timeline/internal/service/auth"
)

// Credentials identify the user and the registered client during login.
type Credentials struct {
	Username    string
	Password    string
	ClientID    string
	RedirectURI string
}

// Authorize exchanges credentials and a PKCE challenge for a one-time code.
func (c *Client) Authorize(ctx context.Context, cred Credentials, challenge string) (*authsvc.AuthorizeResult, error) {
	body := map[string]string{
		"username":              cred.Username,
		"password":              cred.Password,
		"client_id":             cred.ClientID,
		"redirect_uri":          cred.RedirectURI,
		"code_challenge":        challenge,
		"code_challenge_method": "S256",
	}
	var out authsvc.AuthorizeResult
	if err := c.do(ctx, http.MethodPost, "/api/oauth/authorize/", nil, body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Token redeems an authorization code with its PKCE verifier.
func (c *Client) Token(ctx context.Context, cred Credentials, code, verifier string) (*authsvc.TokenResult, error) {
	body := map[string]string{
		"grant_type":    "authorization_code",
		"code":          code,
		"client_id":     cred.ClientID,
		"redirect_uri":  cred.RedirectURI,
		"code_verifier": verifier,
	}
	var out authsvc.TokenResult
	if err := c.do(ctx, http.MethodPost, "/api/oauth/token/", nil, body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Login runs the full authorization-code flow with a fresh PKCE verifier
// and stores the issued token on the client.
func (c *Client) Login(ctx context.Context, cred Credentials) (*authsvc.TokenResult, error) {
	verifier, err := auth.NewVerifier()
	if err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}

	code, err := c.Authorize(ctx, cred, auth.Challenge(verifier))
	if err != nil {
		return nil, fmt.Errorf("login: authorize: %w", err)
	}

	tok, err := c.Token(ctx, cred, code.Code, verifier)
	if err != nil {
		return nil, fmt.Errorf("login: token: %w", err)
	}

	c.SetToken(tok.AccessToken)
	return tok, nil
}
