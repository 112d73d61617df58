package ui

import (
	"net/http"
	"time"

	"empinsight/app"
	"empinsight/domain/core"
	"empinsight/internal"

	"github.com/gin-gonic/gin"
)

// RequestIDHeader carries the per-request identifier.
const RequestIDHeader = "X-Request-ID"

// Server exposes dashboard data as JSON. It renders nothing; the presentation
// layer consumes the payloads.
type Server struct {
	router  *gin.Engine
	service *app.DashboardService
	logger  *internal.Logger
}

// NewServer creates a new web server instance
func NewServer(service *app.DashboardService, logger *internal.Logger) *Server {
	if logger == nil {
		logger = internal.Discard
	}
	s := &Server{
		router:  gin.New(),
		service: service,
		logger:  logger.With("http"),
	}
	s.setupMiddleware()
	s.setupRoutes()
	return s
}

// setupMiddleware configures Gin middleware
func (s *Server) setupMiddleware() {
	s.router.Use(gin.Recovery())
	s.router.Use(s.requestID())
	s.router.Use(s.accessLog())
}

func (s *Server) requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = core.NewID().String()
		}
		c.Set("request_id", id)
		c.Header(RequestIDHeader, id)
		c.Next()
	}
}

func (s *Server) accessLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		s.logger.Debug("%s %s -> %d in %.2fms (request %s)", c.Request.Method, c.Request.URL.Path,
			c.Writer.Status(), float64(time.Since(start).Nanoseconds())/1e6, c.GetString("request_id"))
	}
}

// setupRoutes configures the application routes
func (s *Server) setupRoutes() {
	s.router.GET("/health", s.handleHealth)

	api := s.router.Group("/api")
	api.GET("/bounds", s.handleBounds)
	api.GET("/report", s.handleReport)
	api.GET("/records", s.handleRecords)
	api.GET("/trend", s.handleTrend)
	api.GET("/correlation", s.handleCorrelation)
	api.GET("/groups", s.handleGroups)
}

// Handler returns the router for use with httptest or a custom http.Server.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start starts the web server
func (s *Server) Start(addr string) error {
	s.logger.Info("Serving dashboard API on http://%s", addr)
	return s.router.Run(addr)
}
