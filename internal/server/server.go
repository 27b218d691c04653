package server

import (
	"context"
	"fmt"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/jeduden/textstat/internal/analysis"
	vlog "github.com/jeduden/textstat/internal/log"
)

// DefaultBodyLimit caps request bodies.
const DefaultBodyLimit = "1M"

// Config holds server settings.
type Config struct {
	Addr string
	// TopKeywords is used when a request does not set "top". Zero selects
	// analysis.DefaultKeywordCount.
	TopKeywords int
	// FrontMatter strips YAML front matter from Markdown requests.
	FrontMatter bool
	BodyLimit   string
}

// Server is the HTTP front end of the analysis engine.
type Server struct {
	echo     *echo.Echo
	config   Config
	logger   *vlog.Logger
	registry *prometheus.Registry
	http     *HTTPMetrics
	stats    *AnalysisMetrics

	startTime time.Time
}

// NewServer builds a server and registers its routes and metrics on reg.
func NewServer(cfg Config, logger *vlog.Logger, reg *prometheus.Registry) *Server {
	if cfg.BodyLimit == "" {
		cfg.BodyLimit = DefaultBodyLimit
	}
	if cfg.TopKeywords <= 0 {
		cfg.TopKeywords = analysis.DefaultKeywordCount
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	srv := &Server{
		echo:      e,
		config:    cfg,
		logger:    logger,
		registry:  reg,
		http:      NewHTTPMetrics(reg),
		stats:     NewAnalysisMetrics(reg),
		startTime: time.Now(),
	}

	srv.registerRoutes()

	return srv
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() *echo.Echo {
	return s.echo
}

// Start listens on the configured address and blocks until the server stops.
func (s *Server) Start() error {
	s.logger.Initialized("server")
	s.logger.Printf("listening on %s", s.config.Addr)
	if err := s.echo.Start(s.config.Addr); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}
	return nil
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	if err := s.echo.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shutdown server: %w", err)
	}
	return nil
}
