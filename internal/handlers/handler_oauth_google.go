package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/healthpredictor/health_predictor_app/internal/apperrors"
	portssvc "github.com/healthpredictor/health_predictor_app/internal/core/ports/services"
	"github.com/healthpredictor/health_predictor_app/internal/dto"
	"github.com/healthpredictor/health_predictor_app/internal/middleware"
	"github.com/healthpredictor/health_predictor_app/internal/platform/config"
	"github.com/gin-gonic/gin"
)

// GoogleOAuthHandler handles Google sign-in requests. The mobile client does
// the Google sign-in itself and posts the resulting profile; the web flow
// posts an authorization code instead.
type GoogleOAuthHandler struct {
	googleOAuthService portssvc.GoogleOAuthSvcFacade
	userService        portssvc.UserSvcFacade
	tokenService       portssvc.TokenSvcFacade
	verifyIDTokens     bool
}

// NewGoogleOAuthHandler creates a new instance of GoogleOAuthHandler.
func NewGoogleOAuthHandler(
	cfg *config.Config,
	googleOAuthService portssvc.GoogleOAuthSvcFacade,
	userService portssvc.UserSvcFacade,
	tokenService portssvc.TokenSvcFacade,
) *GoogleOAuthHandler {
	return &GoogleOAuthHandler{
		googleOAuthService: googleOAuthService,
		userService:        userService,
		tokenService:       tokenService,
		verifyIDTokens:     cfg.GoogleClientID != "",
	}
}

// ExchangeCodeRequest is the body of POST /auth/google/exchange-code.
type ExchangeCodeRequest struct {
	Code string `json:"code" binding:"required"`
}

// GoogleSignIn godoc
// @Summary Sign in with a Google profile
// @Description Upserts a user from the posted Google profile. An optional idToken is verified server-side when configured.
// @Tags oauth
// @Accept json
// @Produce json
// @Param profile body dto.GoogleSignInRequest true "Google profile"
// @Success 200 {object} dto.GoogleSignInResponse
// @Failure 400 {object} apperrors.AppError
// @Failure 401 {object} apperrors.AppError
// @Failure 500 {object} map[string]string
// @Router /auth/google [post]
func (h *GoogleOAuthHandler) GoogleSignIn(c *gin.Context) {
	ctx := c.Request.Context()
	logger := middleware.GetLoggerFromCtx(ctx)

	var req dto.GoogleSignInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Name, email and googleId required"})
		return
	}
	if req.Name == "" || req.Email == "" || req.GoogleID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Name, email and googleId required"})
		return
	}

	// The posted profile is client-supplied; verify the accompanying ID
	// token against it when verification is configured.
	if h.verifyIDTokens && req.IDToken != "" {
		payload, err := h.googleOAuthService.ValidateGoogleIDToken(ctx, req.IDToken)
		if err != nil {
			logger.Warn("Google ID token validation failed", slog.String("error", err.Error()))
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid Google ID token"})
			return
		}
		if payload.Subject != req.GoogleID {
			logger.Warn("Google ID token subject mismatch", slog.String("subject", payload.Subject))
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid Google ID token"})
			return
		}
	}

	user, err := h.userService.UpsertGoogleUser(ctx, req.Name, req.Email, req.Photo, req.GoogleID)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Name, email and googleId required"})
			return
		}
		logger.Error("Failed to upsert Google user", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
		return
	}

	c.JSON(http.StatusOK, dto.GoogleSignInResponse{
		Success: true,
		User:    dto.ToPublicUser(user),
	})
}

// ExchangeCodeGoogle godoc
// @Summary Exchange a Google authorization code for a session token
// @Description Exchanges the code with Google, validates the returned ID token, upserts the user and returns an application session token.
// @Tags oauth
// @Accept json
// @Produce json
// @Param code body ExchangeCodeRequest true "Authorization code"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} apperrors.AppError
// @Failure 401 {object} apperrors.AppError
// @Failure 500 {object} apperrors.AppError
// @Router /auth/google/exchange-code [post]
func (h *GoogleOAuthHandler) ExchangeCodeGoogle(c *gin.Context) {
	ctx := c.Request.Context()
	logger := middleware.GetLoggerFromCtx(ctx)

	var req ExchangeCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		appErr := apperrors.NewBadRequestError("Authorization code is required.")
		c.JSON(appErr.Code, appErr)
		return
	}

	oauth2Token, err := h.googleOAuthService.ExchangeCodeForToken(ctx, req.Code)
	if err != nil {
		logger.Error("Failed to exchange authorization code with Google", slog.String("error", err.Error()))
		appErr := apperrors.NewGatewayTimeoutError("Failed to communicate with Google OAuth service.")
		if strings.Contains(strings.ToLower(err.Error()), "invalid_grant") || strings.Contains(strings.ToLower(err.Error()), "bad request") {
			appErr = apperrors.NewBadRequestError("Invalid or expired authorization code provided by Google.")
		}
		c.JSON(appErr.Code, appErr)
		return
	}

	idTokenString, ok := oauth2Token.Extra("id_token").(string)
	if !ok || idTokenString == "" {
		logger.Error("ID token not found in Google's token response")
		appErr := apperrors.NewInternalServerError("Failed to retrieve ID token from Google.")
		c.JSON(appErr.Code, appErr)
		return
	}

	payload, err := h.googleOAuthService.ValidateGoogleIDToken(ctx, idTokenString)
	if err != nil {
		logger.Error("Google ID token validation failed", slog.String("error", err.Error()))
		appErr := apperrors.NewUnauthorizedError("Invalid Google ID token.")
		c.JSON(appErr.Code, appErr)
		return
	}

	email, _ := payload.Claims["email"].(string)
	name, _ := payload.Claims["name"].(string)
	picture, _ := payload.Claims["picture"].(string)
	providerUserID := payload.Subject

	if email == "" || providerUserID == "" {
		logger.Error("Essential claims missing from Google ID token payload")
		appErr := apperrors.NewInternalServerError("Essential user information missing from Google token.")
		c.JSON(appErr.Code, appErr)
		return
	}

	user, err := h.userService.UpsertGoogleUser(ctx, name, email, picture, providerUserID)
	if err != nil {
		logger.Error("Failed to upsert Google user", slog.String("error", err.Error()))
		appErr := apperrors.NewInternalServerError("Failed to process user authentication.")
		c.JSON(appErr.Code, appErr)
		return
	}

	accessToken, _, err := h.tokenService.GenerateAccessToken(ctx, user)
	if err != nil {
		logger.Error("Failed to generate session token", slog.String("error", err.Error()), slog.String("user_id", user.UserID))
		appErr := apperrors.NewInternalServerError("Failed to generate access token.")
		c.JSON(appErr.Code, appErr)
		return
	}

	c.JSON(http.StatusOK, dto.LoginResponse{
		Success:  true,
		Token:    accessToken,
		Username: user.Email,
	})
}

// registerGoogleOAuthRoutes registers the Google sign-in routes.
func registerGoogleOAuthRoutes(rg *gin.Engine, cfg *config.Config, services *portssvc.ServiceContainer) {
	h := NewGoogleOAuthHandler(cfg, services.GoogleOAuth, services.User, services.Token)
	googleRoutes := rg.Group("/auth/google")
	{
		googleRoutes.POST("", h.GoogleSignIn)
		googleRoutes.POST("/exchange-code", h.ExchangeCodeGoogle)
	}
}
