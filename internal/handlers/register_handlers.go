package handlers

import (
	"github.com/healthpredictor/health_predictor_app/cmd/docs"
	portssvc "github.com/healthpredictor/health_predictor_app/internal/core/ports/services"
	"github.com/healthpredictor/health_predictor_app/internal/middleware"
	"github.com/healthpredictor/health_predictor_app/internal/platform/config"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes sets up all application routes, injecting dependencies
// through the service container.
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	// Liveness probe used by the mobile client on startup
	r.GET("/", getHome)

	// Public authentication routes
	registerAuthRoutes(r, services)
	registerGoogleOAuthRoutes(r, cfg, services)

	// Protected routes behind the session token check
	setupProtectedRoutes(r, services)

	// Swagger routes (conditionally available)
	setupSwaggerRoutes(r, cfg)
}

// setupProtectedRoutes configures the routes requiring a verified session.
func setupProtectedRoutes(
	r *gin.Engine,
	services *portssvc.ServiceContainer,
) {
	protected := r.Group("/", middleware.AuthMiddleware(services.Token))

	protected.GET("/dashboard", Dashboard)

	reportHandler := NewReportHandler(services.Report)
	protected.POST("/get-tips", reportHandler.GetTips)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
