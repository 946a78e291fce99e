package services

import (
	"context"
	"time"

	"github.com/healthpredictor/health_predictor_app/internal/core/domain"
	"golang.org/x/oauth2"
	"google.golang.org/api/idtoken"
)

// SessionClaims is the decoded content of a verified session token.
type SessionClaims struct {
	UserID   string `json:"id"`
	Username string `json:"username"`
}

// TokenSvcFacade defines the interface for session token management.
type TokenSvcFacade interface {
	// GenerateAccessToken mints a signed session token for the user and
	// returns it with its expiry time.
	GenerateAccessToken(ctx context.Context, user *domain.User) (string, time.Time, error)

	// ValidateAccessToken verifies signature and expiry and returns the
	// session claims. Returns apperrors.ErrUnauthorized for any invalid
	// or expired token.
	ValidateAccessToken(ctx context.Context, tokenString string) (*SessionClaims, error)
}

// GoogleOAuthSvcFacade defines the interface for Google OAuth operations.
type GoogleOAuthSvcFacade interface {
	// ExchangeCodeForToken exchanges an OAuth authorization code for a token.
	ExchangeCodeForToken(ctx context.Context, code string) (*oauth2.Token, error)

	// ValidateGoogleIDToken validates an ID token string from Google and
	// returns its payload.
	ValidateGoogleIDToken(ctx context.Context, idTokenString string) (*idtoken.Payload, error)
}
