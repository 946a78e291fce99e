package middleware

import (
	"github.com/gin-gonic/gin"
	portssvc "github.com/healthpredictor/health_predictor_app/internal/core/ports/services"
)

// sessionClaimsKey is the key used to store the verified session claims in
// the Gin context.
const sessionClaimsKey = string(contextKey("sessionClaims"))

// GetSessionClaims retrieves the verified session claims placed in the
// context by AuthMiddleware. The boolean is false on unauthenticated routes.
func GetSessionClaims(c *gin.Context) (*portssvc.SessionClaims, bool) {
	val, exists := c.Get(sessionClaimsKey)
	if !exists {
		return nil, false
	}
	claims, ok := val.(*portssvc.SessionClaims)
	if !ok {
		return nil, false
	}
	return claims, true
}
