package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"

	"github.com/healthpredictor/health_predictor_app/internal/apperrors"
	portssvc "github.com/healthpredictor/health_predictor_app/internal/core/ports/services"
	"github.com/healthpredictor/health_predictor_app/internal/dto"
	"github.com/healthpredictor/health_predictor_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// AuthHandler handles signup and login requests.
type AuthHandler struct {
	userService  portssvc.UserSvcFacade
	tokenService portssvc.TokenSvcFacade
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(us portssvc.UserSvcFacade, ts portssvc.TokenSvcFacade) *AuthHandler {
	return &AuthHandler{
		userService:  us,
		tokenService: ts,
	}
}

// registerAuthRoutes sets up the public signup and login routes.
func registerAuthRoutes(rg *gin.Engine, services *portssvc.ServiceContainer) {
	h := NewAuthHandler(services.User, services.Token)

	// Login gets rate limited: 5 requests per minute per IP
	rate, _ := limiter.NewRateFromFormatted("5-M")
	ipLimiter := limiter.New(memory.NewStore(), rate)

	rg.POST("/signup", h.Signup)
	rg.POST("/login", middleware.RateLimit(ipLimiter), h.Login)
}

// Signup godoc
// @Summary Register a new user
// @Description Creates a new account from a username and password.
// @Tags auth
// @Accept json
// @Produce json
// @Param signup body dto.SignupRequest true "Signup credentials"
// @Success 200 {object} dto.SignupResponse
// @Failure 400 {object} apperrors.AppError
// @Failure 500 {object} map[string]string
// @Router /signup [post]
func (h *AuthHandler) Signup(c *gin.Context) {
	var req dto.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Username and password required"})
		return
	}
	if req.Username == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Username and password required"})
		return
	}

	newUser, err := h.userService.CreateUser(c.Request.Context(), req)
	if err != nil {
		logger := middleware.GetLoggerFromCtx(c.Request.Context())
		switch {
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"message": "Username and password required"})
		case errors.Is(err, apperrors.ErrDuplicate):
			c.JSON(http.StatusBadRequest, gin.H{"message": "User already exists"})
		default:
			logger.Error("Signup failed", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.SignupResponse{
		Success: true,
		Message: "User created",
		User:    dto.PublicUser{Username: newUser.Username},
	})
}

// Login godoc
// @Summary User login
// @Description Authenticates a user and returns a session token.
// @Tags auth
// @Accept json
// @Produce json
// @Param login body dto.LoginRequest true "Login credentials"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} apperrors.AppError
// @Failure 401 {object} apperrors.AppError
// @Failure 500 {object} map[string]string
// @Router /login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Username and password required"})
		return
	}
	if req.Username == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Username and password required"})
		return
	}

	user, err := h.userService.AuthenticateUser(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		logger := middleware.GetLoggerFromCtx(c.Request.Context())
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusBadRequest, gin.H{"message": "User not found"})
		case errors.Is(err, apperrors.ErrUnauthorized):
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid password"})
		default:
			logger.Error("Login failed", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
		}
		return
	}

	token, _, err := h.tokenService.GenerateAccessToken(c.Request.Context(), user)
	if err != nil {
		logger := middleware.GetLoggerFromCtx(c.Request.Context())
		logger.Error("Failed to sign session token", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
		return
	}

	c.JSON(http.StatusOK, dto.LoginResponse{
		Success:  true,
		Token:    token,
		Username: user.Username,
	})
}
