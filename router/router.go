// router/router.go

package router

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dev-mohitbeniwal/echo-xaudit/controller"
	"github.com/dev-mohitbeniwal/echo-xaudit/middleware"
)

// Options carries the settings the middleware chain needs.
type Options struct {
	Limiter           middleware.Limiter
	RateLimitRequests int
	RateLimitDuration time.Duration
	JWTSecret         []byte
	AdminGroup        string
}

func SetupRouter(controllers *controller.Controllers, opts Options) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.Session(opts.JWTSecret, opts.AdminGroup))
	router.Use(middleware.Logger())
	if opts.Limiter != nil {
		router.Use(middleware.RateLimiter(opts.Limiter, opts.RateLimitRequests, opts.RateLimitDuration))
	}

	api := router.Group("/api/v1")

	controllers.Audit.RegisterRoutes(api)

	return router
}
