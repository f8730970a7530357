package routes

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/RyanLee0396/SVDiscordBot/config"
	"github.com/RyanLee0396/SVDiscordBot/internal/interaction"
	"github.com/RyanLee0396/SVDiscordBot/internal/middleware"
	"github.com/RyanLee0396/SVDiscordBot/internal/scrim"
	"github.com/RyanLee0396/SVDiscordBot/pkg/responses"
	"github.com/RyanLee0396/SVDiscordBot/pkg/rmiddleware"
)

// Dependencies are the wired services the HTTP surface exposes.
type Dependencies struct {
	Config       *config.Config
	Log          *zap.Logger
	DB           *gorm.DB
	Scrim        *scrim.Service
	Interactions *interaction.Coordinator
	// Limiter is nil when rate limiting is disabled.
	Limiter *middleware.LimiterStore
	// Metrics serves /metrics; nil means the default Prometheus registry.
	Metrics http.Handler
}

func SetupRoutes(deps Dependencies) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestLogger(deps.Log))

	corsCfg := cors.DefaultConfig()
	corsCfg.AllowOrigins = []string{deps.Config.App.FrontendURL}
	corsCfg.AddAllowHeaders("Authorization")
	r.Use(cors.New(corsCfg))

	r.GET("/healthz", func(c *gin.Context) {
		sqlDB, err := deps.DB.DB()
		if err == nil {
			err = sqlDB.PingContext(c.Request.Context())
		}
		if err != nil {
			responses.SendErrorReason(c, http.StatusServiceUnavailable, scrim.CodeStorageUnavailable, "database unreachable")
			return
		}
		responses.SendSuccess(c, http.StatusOK, "ok", nil)
	})

	metricsHandler := deps.Metrics
	if metricsHandler == nil {
		metricsHandler = promhttp.Handler()
	}
	r.GET("/metrics", gin.WrapH(metricsHandler))

	// Swagger route
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API routes
	api := r.Group("/api")
	if deps.Limiter != nil {
		api.Use(middleware.RateLimitMiddleware(deps.Limiter))
	}
	authMW := middleware.AuthMiddleware(deps.Config.JWT.Secret)

	scrim.ScrimRoutes(api, deps.Scrim, deps.Log, authMW, rmiddleware.AdminMiddleware())
	interaction.InteractionRoutes(api, deps.Interactions, deps.Log, authMW)

	return r
}
