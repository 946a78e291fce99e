package handlers

import (
	"net/http"

	"github.com/healthpredictor/health_predictor_app/internal/dto"
	"github.com/healthpredictor/health_predictor_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// Dashboard godoc
// @Summary Protected dashboard greeting
// @Description Returns the decoded session claims of the authenticated user.
// @Tags dashboard
// @Produce json
// @Success 200 {object} dto.DashboardResponse
// @Failure 401 {object} apperrors.AppError
// @Failure 403 {object} apperrors.AppError
// @Security BearerAuth
// @Router /dashboard [get]
func Dashboard(c *gin.Context) {
	claims, ok := middleware.GetSessionClaims(c)
	if !ok {
		// AuthMiddleware always runs first on this route.
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid token"})
		return
	}

	c.JSON(http.StatusOK, dto.DashboardResponse{
		Message: "Welcome to dashboard",
		User: dto.SessionUser{
			ID:       claims.UserID,
			Username: claims.Username,
		},
	})
}
