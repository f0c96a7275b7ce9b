package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "productmetrics/docs"
	"productmetrics/internal/config"
	"productmetrics/internal/handlers"
	"productmetrics/internal/metrics"
	"productmetrics/internal/middleware"
	"productmetrics/internal/repository"
)

const docsPath = "/api-docs"

// NewRouter wires every route for cfg. m may be nil, in which case nothing is
// measured and /metrics is not mounted. The API description served under
// /api-docs is the registered docs.SwaggerInfo; main sets its base path once.
func NewRouter(cfg config.Config, repo repository.Repository, m *metrics.Metrics) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Recovery())
	r.Use(middleware.Logger("/healthz", "/metrics"))

	if m != nil {
		r.Use(middleware.Metrics(m))
		repo = repository.Instrument(repo, m)
	}

	mode := handlers.ErrorMode{Strict: cfg.StrictStatusCodes}

	api := r.Group(cfg.BasePath())
	{
		// the collection also answers with a trailing slash instead of redirecting
		api.GET("/products", handlers.GetProducts(repo, mode))
		api.GET("/products/", handlers.GetProducts(repo, mode))
		api.GET("/products/:id", handlers.GetProduct(repo, mode))
		api.POST("/products", handlers.CreateProduct(repo, mode))
		api.POST("/products/", handlers.CreateProduct(repo, mode))
		api.PUT("/products/:id", handlers.UpdateProduct(repo, mode))
		api.DELETE("/products/:id", handlers.DeleteProduct(repo, mode))
	}

	swaggerHandler := ginSwagger.WrapHandler(swaggerFiles.Handler)
	r.GET(docsPath+"/*any", func(c *gin.Context) {
		if c.Param("any") == "/" {
			c.Redirect(http.StatusMovedPermanently, docsPath+"/index.html")
			return
		}
		swaggerHandler(c)
	})

	r.GET("/healthz", handlers.Health(repo))
	if m != nil && cfg.MetricsEnabled {
		r.GET("/metrics", gin.WrapH(m.Handler()))
	}

	r.NoRoute(func(c *gin.Context) {
		c.AbortWithStatus(http.StatusNotFound)
	})

	return r
}
