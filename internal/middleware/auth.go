package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	portssvc "github.com/healthpredictor/health_predictor_app/internal/core/ports/services"
)

// AuthMiddleware creates a Gin middleware handler that verifies the bearer
// session token before any protected handler runs. A request with no usable
// token gets 403, a request with a bad or expired token gets 401, matching
// what the mobile client expects.
func AuthMiddleware(tokenService portssvc.TokenSvcFacade) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := GetLoggerFromCtx(c.Request.Context())

		tokenString := bearerToken(c.GetHeader("Authorization"))
		if tokenString == "" {
			logger.Warn("Authorization bearer token missing")
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "Token required"})
			return
		}

		claims, err := tokenService.ValidateAccessToken(c.Request.Context(), tokenString)
		if err != nil {
			logger.Warn("Invalid session token", slog.String("error", err.Error()))
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Invalid token"})
			return
		}

		c.Set(sessionClaimsKey, claims)

		// Enrich the request-scoped logger with the authenticated user.
		enrichedLogger := logger.With(slog.String("user_id", claims.UserID))
		ctx := context.WithValue(c.Request.Context(), loggerCtxKey, enrichedLogger)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

func bearerToken(authHeader string) string {
	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return ""
	}
	return parts[1]
}
