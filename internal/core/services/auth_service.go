package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/healthpredictor/health_predictor_app/internal/apperrors"
	"github.com/healthpredictor/health_predictor_app/internal/core/domain"
	portssvc "github.com/healthpredictor/health_predictor_app/internal/core/ports/services"
	"github.com/healthpredictor/health_predictor_app/internal/platform/config"
	"github.com/healthpredictor/health_predictor_app/internal/utils"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/idtoken"
)

// tokenService implements TokenSvcFacade for minting and verifying session
// tokens. Tokens are never revoked server-side; expiry is the only
// invalidation mechanism.
type tokenService struct {
	cfg *config.Config
}

// NewTokenService creates a new instance of tokenService.
func NewTokenService(cfg *config.Config) portssvc.TokenSvcFacade {
	return &tokenService{cfg: cfg}
}

// sessionUsername picks the claim value identifying the user to the client.
// Provider-created accounts have no username; their email stands in.
func sessionUsername(user *domain.User) string {
	if user.Username != "" {
		return user.Username
	}
	return user.Email
}

// GenerateAccessToken creates a new signed session token for the given user.
func (s *tokenService) GenerateAccessToken(ctx context.Context, user *domain.User) (string, time.Time, error) {
	expiryTime := time.Now().Add(s.cfg.JWTExpiryDuration)

	accessToken, err := utils.GenerateJWT(user.UserID, sessionUsername(user), s.cfg.JWTSecret, s.cfg.JWTExpiryDuration, s.cfg.JWTIssuer)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign session token: %w", err)
	}
	return accessToken, expiryTime, nil
}

// ValidateAccessToken verifies the token's signature and expiry and returns
// its decoded claims.
func (s *tokenService) ValidateAccessToken(ctx context.Context, tokenString string) (*portssvc.SessionClaims, error) {
	claims, err := utils.ParseAndValidateJWT(tokenString, s.cfg.JWTSecret)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrUnauthorized, err.Error())
	}
	if claims.Subject == "" {
		return nil, fmt.Errorf("%w: token has no subject", apperrors.ErrUnauthorized)
	}
	return &portssvc.SessionClaims{
		UserID:   claims.Subject,
		Username: claims.Username,
	}, nil
}

// googleOAuthService implements GoogleOAuthSvcFacade.
type googleOAuthService struct {
	cfg          *config.Config
	oauth2Config *oauth2.Config
}

// NewGoogleOAuthService creates a new instance of googleOAuthService.
func NewGoogleOAuthService(cfg *config.Config) portssvc.GoogleOAuthSvcFacade {
	return &googleOAuthService{
		cfg: cfg,
		oauth2Config: &oauth2.Config{
			ClientID:     cfg.GoogleClientID,
			ClientSecret: cfg.GoogleClientSecret,
			RedirectURL:  cfg.GoogleRedirectURL,
			Scopes:       []string{"https://www.googleapis.com/auth/userinfo.email", "https://www.googleapis.com/auth/userinfo.profile"},
			Endpoint:     google.Endpoint,
		},
	}
}

// ExchangeCodeForToken exchanges an OAuth authorization code for a token.
func (s *googleOAuthService) ExchangeCodeForToken(ctx context.Context, code string) (*oauth2.Token, error) {
	token, err := s.oauth2Config.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to exchange oauth code for token: %w", err)
	}
	return token, nil
}

// ValidateGoogleIDToken validates an ID token received from Google and
// returns the payload if valid.
func (s *googleOAuthService) ValidateGoogleIDToken(ctx context.Context, idTokenString string) (*idtoken.Payload, error) {
	if s.cfg.GoogleClientID == "" {
		return nil, errors.New("google client ID is not configured in the application")
	}

	payload, err := idtoken.Validate(ctx, idTokenString, s.cfg.GoogleClientID)
	if err != nil {
		return nil, fmt.Errorf("google ID token validation failed: %w", err)
	}
	return payload, nil
}
