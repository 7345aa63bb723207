package handlers

import (
	"regexp"

	"github.com/bookora/bookora_backend/cmd/docs"
	portssvc "github.com/bookora/bookora_backend/internal/core/ports/services"
	"github.com/bookora/bookora_backend/internal/middleware"
	"github.com/bookora/bookora_backend/internal/platform/config"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var ddmmyyyyRegexp = regexp.MustCompile(`^(0[1-9]|[12][0-9]|3[01])-(0[1-9]|1[0-2])-\d{4}$`)

// RegisterRoutes sets up all application routes, injecting dependencies
// through the service container.
func RegisterRoutes(r *gin.Engine, cfg *config.Config, services *portssvc.ServiceContainer) {
	registerCustomValidators()

	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	registerAuthRoutes(r, services.Auth, newAuthLimiter())
	setupAPIV1Routes(r, cfg, services)
	setupSwaggerRoutes(r, cfg)
}

// registerCustomValidators installs the ddmmyyyy date-string validator on
// gin's binding engine. Dates like store open dates are validated by shape
// only and never parsed.
func registerCustomValidators() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("ddmmyyyy", func(fl validator.FieldLevel) bool {
			return ddmmyyyyRegexp.MatchString(fl.Field().String())
		})
	}
}

// newAuthLimiter builds the per-IP rate limiter shared by the public auth
// endpoints.
func newAuthLimiter() *limiter.Limiter {
	rate, _ := limiter.NewRateFromFormatted("10-M")
	return limiter.New(memory.NewStore(), rate)
}

// setupAPIV1Routes configures the /api/v1 group behind the auth middleware.
func setupAPIV1Routes(r *gin.Engine, cfg *config.Config, services *portssvc.ServiceContainer) {
	v1 := r.Group("/api/v1", middleware.AuthMiddleware(cfg.JWTSecret))

	registerUserRoutes(v1, services.User)
	registerRoleRoutes(v1, services.Role)
	registerVisibilityRoutes(v1, services.Visibility)
	registerStoreRoutes(v1, services.Store, services.Category, services.Catalog, services.Client)
	RegisterAppointmentRoutes(v1, services.Appointment)
}

// setupSwaggerRoutes configures the swagger documentation routes.
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		// no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
