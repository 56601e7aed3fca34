package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"candidate-backend/internal/candidates"
	"candidate-backend/internal/docrequests"
	"candidate-backend/internal/shared/config"
	"candidate-backend/internal/shared/server/middleware"
	"candidate-backend/internal/shared/server/respond"
)

// RouterDeps holds the handlers wired into the HTTP router.
type RouterDeps struct {
	Config            config.Config
	CandidateHandler  *candidates.Handler
	DocRequestHandler *docrequests.Handler
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
	)

	api := r.Group("/api")
	api.Use(middleware.RateLimit(middleware.RateLimitConfig{
		Rules: map[string]middleware.RateLimitRule{
			"WRITE": {Rate: 5, Burst: 10},
		},
		GroupFor: func(c *gin.Context) string {
			if c.Request.Method == http.MethodPost {
				return "WRITE"
			}
			return ""
		},
	}))

	api.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, gin.H{"status": "healthy", "message": "Backend is running"})
	})
	if deps.CandidateHandler != nil {
		deps.CandidateHandler.RegisterRoutes(api)
	}
	if deps.DocRequestHandler != nil {
		deps.DocRequestHandler.RegisterRoutes(api)
	}

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
