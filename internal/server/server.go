// Package server wires the HTTP surface: thin gin handlers over the cache
// manager, query engine and material calculator.
package server

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"desglose/internal/cache"
	"desglose/internal/config"
	"desglose/internal/metrics"
)

// Version is the reported service version.
const Version = "1.0.0"

// Server is the HTTP server over the in-memory catalog.
type Server struct {
	router    *gin.Engine
	cache     *cache.Manager
	cfg       *config.AppConfig
	log       *zap.Logger
	excelPath string
	planosDir string
	startedAt time.Time
}

// New creates the server and registers all routes.
func New(cfg *config.AppConfig, c *cache.Manager, log *zap.Logger) *Server {
	if !cfg.Server.DevMode {
		gin.SetMode(gin.ReleaseMode)
	}

	s := &Server{
		router:    gin.New(),
		cache:     c,
		cfg:       cfg,
		log:       log,
		excelPath: config.ExcelPath(cfg),
		planosDir: config.PlanosPath(cfg),
		startedAt: time.Now(),
	}

	s.router.Use(gin.Recovery())
	s.router.Use(corsMiddleware())
	s.router.Use(metricsMiddleware())
	s.setupRoutes()

	return s
}

// Run starts the server on the given address, blocking.
func (s *Server) Run(addr string) error {
	return s.router.Run(addr)
}

// Router exposes the gin engine, mainly for tests.
func (s *Server) Router() *gin.Engine {
	return s.router
}

func (s *Server) setupRoutes() {
	api := s.router.Group("/api")
	{
		api.GET("/options", s.GetOptions)
		api.GET("/search", s.Search)
		api.POST("/calculate", s.Calculate)
		api.POST("/upload-excel", s.UploadExcel)
		api.GET("/buscar-plano", s.BuscarPlano)
		api.GET("/debug", s.Debug)
		api.GET("/cache", s.CacheInfo)
		api.GET("/status", s.Status)
	}

	s.router.GET("/metrics", gin.WrapH(metrics.Handler()))
	s.router.Static("/planos", s.planosDir)
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	}
}

func metricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		metrics.HTTPRequests.WithLabelValues(route, strconv.Itoa(c.Writer.Status())).Inc()
	}
}
