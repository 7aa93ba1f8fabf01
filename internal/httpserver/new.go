package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"

	"travel-assistant/internal/agent"
	"travel-assistant/internal/middleware"
	queryHTTP "travel-assistant/internal/query/delivery/http"
	"travel-assistant/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string
	middleware  middleware.Middleware
	gatherer    prometheus.Gatherer

	// Query domain
	queryHandler queryHTTP.Handler
	capabilities *agent.ToolRegistry
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string
	Middleware  middleware.Middleware

	// Gatherer backs GET /metrics. The route is skipped when nil.
	Gatherer prometheus.Gatherer

	// Query domain
	QueryHandler queryHTTP.Handler
	Capabilities *agent.ToolRegistry
}

// New creates a new HTTPServer instance with all routes mapped.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:            logger,
		gin:          gin.New(),
		port:         cfg.Port,
		mode:         cfg.Mode,
		environment:  cfg.Environment,
		middleware:   cfg.Middleware,
		gatherer:     cfg.Gatherer,
		queryHandler: cfg.QueryHandler,
		capabilities: cfg.Capabilities,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.queryHandler == nil {
		return errors.New("query handler is required")
	}
	return nil
}
