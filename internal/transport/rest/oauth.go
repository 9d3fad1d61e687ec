package rest

import (
	"context"
	"errors"
	"log/slog"
	"mime"
	"net/http"

	"github.com/heartmarshall/lifelog-timeline/internal/domain"
	"github.com/heartmarshall/lifelog-timeline/internal/service/auth"
)

type authService interface {
	Authorize(ctx context.Context, input auth.AuthorizeInput) (*auth.AuthorizeResult, error)
	Token(ctx context.Context, input auth.TokenInput) (*auth.TokenResult, error)
}

// OAuthHandler serves the authorization-code-with-PKCE endpoints.
type OAuthHandler struct {
	svc authService
	log *slog.Logger
}

// NewOAuthHandler creates an OAuthHandler.
func NewOAuthHandler(svc authService, logger *slog.Logger) *OAuthHandler {
	return &OAuthHandler{svc: svc, log: logger.With("handler", "oauth")}
}

type authorizeRequest struct {
	Username            string `json:"username"`
	Password            string `json:"password"`
	ClientID            string `json:"client_id"`
	RedirectURI         string `json:"redirect_uri"`
	CodeChallenge       string `json:"code_challenge"`
	CodeChallengeMethod string `json:"code_challenge_method"`
}

type tokenRequest struct {
	GrantType    string `json:"grant_type"`
	Code         string `json:"code"`
	ClientID     string `json:"client_id"`
	RedirectURI  string `json:"redirect_uri"`
	CodeVerifier string `json:"code_verifier"`
}

// Authorize handles POST /api/oauth/authorize/. Accepts a JSON or
// form-encoded body.
func (h *OAuthHandler) Authorize(w http.ResponseWriter, r *http.Request) {
	var req authorizeRequest
	if !decodeOAuthBody(w, r, &req, func(get func(string) string) {
		req = authorizeRequest{
			Username:            get("username"),
			Password:            get("password"),
			ClientID:            get("client_id"),
			RedirectURI:         get("redirect_uri"),
			CodeChallenge:       get("code_challenge"),
			CodeChallengeMethod: get("code_challenge_method"),
		}
	}) {
		return
	}

	result, err := h.svc.Authorize(r.Context(), auth.AuthorizeInput{
		Username:            req.Username,
		Password:            req.Password,
		ClientID:            req.ClientID,
		RedirectURI:         req.RedirectURI,
		CodeChallenge:       req.CodeChallenge,
		CodeChallengeMethod: req.CodeChallengeMethod,
	})
	if err != nil {
		h.handleOAuthError(w, r, err)
		return
	}
	w.Header().Set("Cache-Control", "no-store")
	writeJSON(w, http.StatusOK, result)
}

// Token handles POST /api/oauth/token/. Accepts a JSON or form-encoded body.
func (h *OAuthHandler) Token(w http.ResponseWriter, r *http.Request) {
	var req tokenRequest
	if !decodeOAuthBody(w, r, &req, func(get func(string) string) {
		req = tokenRequest{
			GrantType:    get("grant_type"),
			Code:         get("code"),
			ClientID:     get("client_id"),
			RedirectURI:  get("redirect_uri"),
			CodeVerifier: get("code_verifier"),
		}
	}) {
		return
	}

	result, err := h.svc.Token(r.Context(), auth.TokenInput{
		GrantType:    req.GrantType,
		Code:         req.Code,
		ClientID:     req.ClientID,
		RedirectURI:  req.RedirectURI,
		CodeVerifier: req.CodeVerifier,
	})
	if err != nil {
		h.handleOAuthError(w, r, err)
		return
	}
	w.Header().Set("Cache-Control", "no-store")
	writeJSON(w, http.StatusOK, result)
}

// handleOAuthError reports rejected grants as invalid_grant, the error code
// OAuth clients look for.
func (h *OAuthHandler) handleOAuthError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, domain.ErrUnauthorized) {
		writeJSON(w, http.StatusUnauthorized, ErrorResponse{Error: "invalid_grant"})
		return
	}
	handleError(r.Context(), h.log, w, err)
}

func decodeOAuthBody(w http.ResponseWriter, r *http.Request, v any, fromForm func(get func(string) string)) bool {
	ct, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if ct != "application/x-www-form-urlencoded" {
		return decodeJSON(w, r, v)
	}
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := r.ParseForm(); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return false
	}
	fromForm(r.PostForm.Get)
	return true
}
