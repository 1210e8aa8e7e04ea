package handlers

import (
	"net/http"

	"github.com/SscSPs/banking_portal/cmd/docs"
	portssvc "github.com/SscSPs/banking_portal/internal/core/ports/services"
	"github.com/SscSPs/banking_portal/internal/middleware"
	"github.com/SscSPs/banking_portal/internal/platform/config"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/ulule/limiter/v3"
)

// RateLimiters holds the limiters applied to the API. A nil limiter disables that limit.
type RateLimiters struct {
	Login *limiter.Limiter
	API   *limiter.Limiter
}

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	limiters RateLimiters,
) {
	registerValidators()

	r.GET("/health", getHealth)

	api := r.Group("/api/v1")
	if limiters.API != nil {
		api.Use(middleware.RateLimit(limiters.API))
	}

	var loginLimit gin.HandlerFunc
	if limiters.Login != nil {
		loginLimit = middleware.RateLimit(limiters.Login)
	}
	registerAuthRoutes(api, services, loginLimit)

	setupAPIV1Routes(api, cfg, services)

	setupSwaggerRoutes(r, cfg)

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "route not found"})
	})
}

// setupAPIV1Routes registers the authenticated routes under /api/v1
func setupAPIV1Routes(
	api *gin.RouterGroup,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	protected := api.Group("", middleware.AuthMiddleware(cfg.JWTSecret))

	registerAccountRoutes(protected, services.Account)
	registerLoanRoutes(protected, services.Loan)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
