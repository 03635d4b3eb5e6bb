package server

import (
	"context"
	"fmt"
	"net/http"
	"sync"

	"github.com/ajez/logtide/internal/config"
	"github.com/ajez/logtide/internal/handler"
	"github.com/ajez/logtide/internal/logger"
	"github.com/ajez/logtide/internal/rules"
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// Dependencies holds the dependencies needed by the server.
type Dependencies struct {
	Config    *config.Config
	Resolver  *rules.Resolver
	AppLogger *logger.AppLogger
}

// Server represents the HTTP ingestion server
type Server struct {
	router    *gin.Engine
	httpSrv   *http.Server
	config    *config.Config
	resolver  *rules.Resolver
	appLogger *logger.AppLogger
	// Rate limiting specific
	limiters   map[string]*rate.Limiter
	limiterMu  sync.Mutex
	rateLimit  rate.Limit
	burstLimit int
}

// NewServer creates a new server instance with its dependencies.
func NewServer(deps Dependencies) *Server {
	if deps.Config == nil {
		panic("server: Config dependency cannot be nil")
	}
	if deps.Resolver == nil {
		panic("server: Resolver dependency cannot be nil")
	}
	if deps.AppLogger == nil {
		panic("server: AppLogger dependency cannot be nil")
	}

	if deps.Config.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())

	server := &Server{
		router:    router,
		config:    deps.Config,
		resolver:  deps.Resolver,
		appLogger: deps.AppLogger,
		limiters:  make(map[string]*rate.Limiter),
	}

	if deps.Config.Server.RequestLimits.RateLimit > 0 {
		// Convert requests per minute to requests per second
		server.rateLimit = rate.Limit(float64(deps.Config.Server.RequestLimits.RateLimit) / 60.0)
		// Allow bursts up to the per-minute limit
		server.burstLimit = deps.Config.Server.RequestLimits.RateLimit
		server.appLogger.Info("Rate limiting enabled for /log: Rate=%.2f req/sec, Burst=%d", float64(server.rateLimit), server.burstLimit)
	} else {
		server.rateLimit = rate.Inf
		server.burstLimit = 0
		server.appLogger.Info("Rate limiting disabled for /log.")
	}

	server.setupRoutes()
	return server
}

// setupRoutes configures the HTTP routes
func (s *Server) setupRoutes() {
	// Health check endpoints (no rate limit)
	s.router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	s.router.HEAD("/health", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	// Version endpoint (no rate limit)
	s.router.GET("/version", handler.VersionHandler)

	// Log endpoint - apply rate limiter middleware first
	logGroup := s.router.Group("/log")
	if s.rateLimit != rate.Inf {
		logGroup.Use(s.rateLimitMiddleware())
	}
	logGroup.POST("", handler.NewLogHandler(handler.LogHandlerDependencies{
		Resolver:  s.resolver,
		Config:    s.config,
		AppLogger: s.appLogger,
	}))
}

// rateLimitMiddleware creates a Gin middleware for rate limiting based on
// client IP.
func (s *Server) rateLimitMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := c.ClientIP()

		s.limiterMu.Lock()
		limiter, exists := s.limiters[ip]
		if !exists {
			limiter = rate.NewLimiter(s.rateLimit, s.burstLimit)
			s.limiters[ip] = limiter
		}
		s.limiterMu.Unlock()

		if !limiter.Allow() {
			s.appLogger.Info("Rate limit exceeded for IP: %s", ip)
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "Rate limit exceeded"})
			return
		}

		c.Next()
	}
}

// Router exposes the underlying gin engine for tests.
func (s *Server) Router() http.Handler {
	return s.router
}

// Start starts the HTTP server and blocks until it stops.
func (s *Server) Start() error {
	addr := fmt.Sprintf("%s:%d", s.config.Server.Host, s.config.Server.Port)
	s.appLogger.Info("Starting server on %s", addr)
	s.httpSrv = &http.Server{
		Addr:    addr,
		Handler: s.router,
	}
	return s.httpSrv.ListenAndServe()
}

// Shutdown stops the HTTP listener gracefully. Sink actors are not drained;
// messages still queued when the process exits may be lost.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpSrv == nil {
		return nil
	}
	return s.httpSrv.Shutdown(ctx)
}
