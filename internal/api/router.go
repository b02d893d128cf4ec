package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"baas-lcos/internal/api/handlers"
	"baas-lcos/internal/api/middleware"
	"baas-lcos/internal/api/models"
	"baas-lcos/internal/logger"
)

// Options wires the router's collaborators.
type Options struct {
	Evaluate    *handlers.EvaluateHandler
	Log         logger.Logger
	CORSOrigins []string
	// Gatherer backs /metrics; nil disables the route.
	Gatherer prometheus.Gatherer
}

// NewRouter builds the gin engine with middleware and routes.
func NewRouter(opts Options) *gin.Engine {
	router := gin.New()

	router.Use(middleware.CORS(opts.CORSOrigins))
	router.Use(middleware.Logger(opts.Log))
	router.Use(middleware.ErrorHandler(opts.Log))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	if opts.Gatherer != nil {
		router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(opts.Gatherer, promhttp.HandlerOpts{})))
	}

	api := router.Group("/api/v1")
	{
		api.POST("/evaluate", opts.Evaluate.Evaluate)
		api.GET("/evaluations/:id/degradation", opts.Evaluate.GetDegradation)
		api.GET("/parameters", handlers.ListParameters)
	}

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "NOT_FOUND",
				Message: "Not found",
			},
		})
	})
	return router
}
