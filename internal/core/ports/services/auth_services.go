package services

import (
	"context"
	"time"

	"github.com/SscSPs/personal_finance_app/internal/core/domain"
	"golang.org/x/oauth2"
	"google.golang.org/api/idtoken"
)

// TokenSvcFacade defines the interface for token management services.
type TokenSvcFacade interface {
	// GenerateAccessToken issues a signed JWT for the user.
	GenerateAccessToken(ctx context.Context, user *domain.User) (string, time.Time, error)

	// ValidateAccessToken parses a token string and returns the user ID it
	// was issued for.
	ValidateAccessToken(ctx context.Context, tokenString string) (string, error)
}

// GoogleAuthSvcFacade defines the interface for Google sign-in verification.
type GoogleAuthSvcFacade interface {
	// ValidateGoogleIDToken validates an ID token string from Google and
	// returns its payload.
	ValidateGoogleIDToken(ctx context.Context, idTokenString string) (*idtoken.Payload, error)

	// ExchangeCodeForToken exchanges an OAuth authorization code for Google
	// tokens, using the redirect URI from configuration.
	ExchangeCodeForToken(ctx context.Context, code string) (*oauth2.Token, error)
}
