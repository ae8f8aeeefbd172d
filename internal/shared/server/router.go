package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/SAADSTACK/ergoassess/internal/assessments"
	"github.com/SAADSTACK/ergoassess/internal/images"
	"github.com/SAADSTACK/ergoassess/internal/shared/config"
	"github.com/SAADSTACK/ergoassess/internal/shared/metrics"
	"github.com/SAADSTACK/ergoassess/internal/shared/server/middleware"
	"github.com/SAADSTACK/ergoassess/internal/shared/server/respond"
)

// RouterDeps carries the handlers the router wires up.
type RouterDeps struct {
	Config             config.Config
	ImagesHandler      *images.Handler
	AssessmentsHandler *assessments.Handler
}

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(deps.Config.CORSAllowOrigin),
		middleware.RateLimit(middleware.DefaultRateLimitConfig()),
	)

	r.GET("/metrics", metrics.Handler())

	api := r.Group("/api/v1")
	api.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, gin.H{"ok": true})
	})
	deps.ImagesHandler.RegisterRoutes(api)
	deps.AssessmentsHandler.RegisterRoutes(api)

	return r
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
