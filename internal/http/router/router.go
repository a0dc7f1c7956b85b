// Package router assembles the Gin engine from the application's modules.
package router

import (
	"net/http"

	apphttp "leadscore_backend/internal/http"
	"leadscore_backend/internal/http/middleware"
	"leadscore_backend/platform/httpkit"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/time/rate"
)

// New builds the HTTP engine: global middleware, health and metrics endpoints,
// and the /api/v1 group on which every module registers its routes.
func New(app *apphttp.App) *gin.Engine {
	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(httpkit.RequestLogger(app.Logger))
	engine.Use(httpkit.SecurityHeaders())
	engine.Use(middleware.Metrics())
	engine.Use(corsMiddleware(app))

	limiter := httpkit.NewIPRateLimiter(rate.Limit(50), 100, app.Logger)
	engine.Use(limiter.RateLimit())

	engine.GET("/api/health", func(c *gin.Context) {
		if err := app.Health.Ping(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	engine.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := engine.Group("/api/v1")
	if app.TenantResolver != nil {
		v1.Use(app.TenantResolver)
	}

	ctx := &apphttp.RouterContext{
		Engine: engine,
		V1:     v1,
	}

	for _, module := range app.Modules {
		module.RegisterRoutes(ctx)
		app.Logger.Info("module routes registered", "module", module.Name())
	}

	return engine
}

func corsMiddleware(app *apphttp.App) gin.HandlerFunc {
	corsConfig := cors.DefaultConfig()
	if app.Config.GetCORSAllowAll() {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = app.Config.GetCORSOrigins()
	}
	corsConfig.AllowCredentials = app.Config.GetCORSAllowCreds()
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "X-Tenant-ID")
	corsConfig.ExposeHeaders = append(corsConfig.ExposeHeaders, "X-Tenant-Name")
	return cors.New(corsConfig)
}
