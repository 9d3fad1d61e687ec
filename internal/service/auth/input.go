package auth

import (
	authpkg "github.com/heartmarshall/lifelog-timeline/internal/auth"
	"github.com/heartmarshall/lifelog-timeline/internal/domain"
)

// GrantAuthorizationCode is the only supported token grant.
const GrantAuthorizationCode = "authorization_code"

// AuthorizeInput holds the credentials and PKCE parameters of a login.
type AuthorizeInput struct {
	Username            string
	Password            string
	ClientID            string
	RedirectURI         string
	CodeChallenge       string
	CodeChallengeMethod string
}

// Validate validates the authorize input.
func (i AuthorizeInput) Validate() error {
	var errs []domain.FieldError

	if i.Username == "" {
		errs = append(errs, domain.FieldError{Field: "username", Message: "required"})
	}
	if i.Password == "" {
		errs = append(errs, domain.FieldError{Field: "password", Message: "required"})
	} else if len(i.Password) > 72 {
		errs = append(errs, domain.FieldError{Field: "password", Message: "too long"})
	}
	if i.ClientID == "" {
		errs = append(errs, domain.FieldError{Field: "client_id", Message: "required"})
	}
	if i.RedirectURI == "" {
		errs = append(errs, domain.FieldError{Field: "redirect_uri", Message: "required"})
	}
	if i.CodeChallenge == "" {
		errs = append(errs, domain.FieldError{Field: "code_challenge", Message: "required"})
	} else if len(i.CodeChallenge) != 43 {
		errs = append(errs, domain.FieldError{Field: "code_challenge", Message: "malformed"})
	}
	if i.CodeChallengeMethod != authpkg.MethodS256 {
		errs = append(errs, domain.FieldError{Field: "code_challenge_method", Message: "must be S256"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// TokenInput holds the parameters of a code redemption.
type TokenInput struct {
	GrantType    string
	Code         string
	ClientID     string
	RedirectURI  string
	CodeVerifier string
}

// Validate validates the token input.
func (i TokenInput) Validate() error {
	var errs []domain.FieldError

	if i.GrantType != GrantAuthorizationCode {
		errs = append(errs, domain.FieldError{Field: "grant_type", Message: "unsupported grant type"})
	}
	if i.Code == "" {
		errs = append(errs, domain.FieldError{Field: "code", Message: "required"})
	}
	if i.ClientID == "" {
		errs = append(errs, domain.FieldError{Field: "client_id", Message: "required"})
	}
	if i.CodeVerifier == "" {
		errs = append(errs, domain.FieldError{Field: "code_verifier", Message: "required"})
	} else if !authpkg.ValidVerifier(i.CodeVerifier) {
		errs = append(errs, domain.FieldError{Field: "code_verifier", Message: "malformed"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
