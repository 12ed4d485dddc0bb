package route

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/ddc-studio/portfolio-api/api/controller"
	"github.com/ddc-studio/portfolio-api/api/middleware"
	"github.com/ddc-studio/portfolio-api/api/route/route_auth"
	"github.com/ddc-studio/portfolio-api/api/route/route_portfolio"
	"github.com/ddc-studio/portfolio-api/bootstrap"
	"github.com/ddc-studio/portfolio-api/domain"
	"github.com/ddc-studio/portfolio-api/mongo"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func Setup(env *bootstrap.Env, timeout time.Duration, db mongo.Database, tx domain.Transactor, engine *gin.Engine) {
	engine.Use(
		middleware.RequestLoggerMiddleware(),
		gin.Recovery(),
		cors.New(corsConfig(env)),
		middleware.SanitizeInputMiddleware(),
	)

	engine.GET("/health", healthHandler(db))

	publicRouter := engine.Group("/api")
	protectedRouter := engine.Group("/api")
	protectedRouter.Use(middleware.JwtAuthMiddleware(env.AccessTokenSecret))

	route_auth.NewAdministratorRouter(env.AccessTokenSecret, env.AccessTokenExpiryHour, timeout, db, publicRouter, protectedRouter)

	route_portfolio.NewArtistRouter(timeout, db, publicRouter, protectedRouter)
	route_portfolio.NewArtworkRouter(timeout, db, publicRouter, protectedRouter)
	route_portfolio.NewImageRouter(timeout, db, tx, protectedRouter)
	route_portfolio.NewInstallationRouter(timeout, db, tx, publicRouter, protectedRouter)
}

func corsConfig(env *bootstrap.Env) cors.Config {
	cfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}

	origins := make([]string, 0)
	for _, o := range strings.Split(env.CorsOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		cfg.AllowAllOrigins = true
		cfg.AllowCredentials = false
	} else {
		cfg.AllowOrigins = origins
	}
	return cfg
}

func healthHandler(db mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		if err := db.Client().Ping(ctx); err != nil {
			controller.ErrorResponse(c, domain.Unexpected("Database unavailable.", err), "Database unavailable.")
			return
		}
		controller.SuccessResponse(c, http.StatusOK, "ok", nil)
	}
}
