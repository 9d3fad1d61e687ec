package auth

import "time"

// AuthorizeResult is the code handed back to the redirect URI.
type AuthorizeResult struct {
	Code        string    `json:"code"`
	RedirectURI string    `json:"redirect_uri"`
	ExpiresAt   time.Time `json:"expires_at"`
}

// TokenResult is the token endpoint response.
type TokenResult struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
}
