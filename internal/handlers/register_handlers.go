package handlers

import (
	"github.com/abdulaziz27/seblak-sulthane-api-sub001/cmd/docs"
	portssvc "github.com/abdulaziz27/seblak-sulthane-api-sub001/internal/core/ports/services"
	"github.com/abdulaziz27/seblak-sulthane-api-sub001/internal/middleware"
	"github.com/abdulaziz27/seblak-sulthane-api-sub001/internal/platform/config"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {

	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	r.GET("/", getHome)

	// Setup API v1 routes, passing service interfaces
	setupAPIV1Routes(r, cfg, services)

	// Swagger routes (typically public or conditionally available)
	setupSwaggerRoutes(r, cfg)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	service *portssvc.ServiceContainer,
) {
	// The gateway in front of this service authenticates callers and
	// forwards their identity as headers; RequestScope copies them in.
	v1 := r.Group("/api/v1", middleware.RequestScope())

	registerDailyCashRoutes(v1, service.DailyLedger, service.SalesReconciler)
	registerOrderRoutes(v1, service.Order, service.SalesReconciler)
	registerDiscountRoutes(v1, service.Discount)
	registerMemberRoutes(v1, service.Member)
	registerOutletRoutes(v1, service.Outlet)
	registerCatalogRoutes(v1, service.Category, service.Product)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	// Swagger setup
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
