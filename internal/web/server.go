// Package web serves the two calculator forms and renders their result
// panels in place on submission.
package web

import (
	"context"
	"embed"
	"errors"
	"html/template"
	"net/http"
	"time"

	"github.com/eei/returns-calculator/internal/calculation"
	"github.com/eei/returns-calculator/internal/config"
	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

//go:embed templates/*.tmpl
var templateFS embed.FS

func parsePages() map[string]*template.Template {
	pages := make(map[string]*template.Template, 3)
	for _, name := range []string{"index", "franchise", "investors"} {
		pages[name] = template.Must(template.ParseFS(templateFS,
			"templates/layout.html.tmpl", "templates/"+name+".html.tmpl"))
	}
	return pages
}

// Server wires the calculation engine to HTTP.
type Server struct {
	cfg     *config.ServerConfig
	engine  *calculation.Engine
	logger  *zap.Logger
	limiter *RateLimiter
	pages   map[string]*template.Template
}

// NewServer builds a server. A nil logger disables request logging.
// Disclaimers set in cfg are applied to engine.
func NewServer(cfg *config.ServerConfig, engine *calculation.Engine, logger *zap.Logger) *Server {
	if cfg == nil {
		cfg = config.DefaultServerConfig()
	}
	if engine == nil {
		engine = calculation.NewEngine()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if d := cfg.Disclaimers.Franchise; d != "" {
		engine.Notes.Franchise = d
	}
	if d := cfg.Disclaimers.Investor; d != "" {
		engine.Notes.Investor = d
	}
	s := &Server{
		cfg:    cfg,
		engine: engine,
		logger: logger,
		pages:  parsePages(),
	}
	if cfg.RateLimit.Requests > 0 {
		s.limiter = NewRateLimiter(cfg.RateLimit.Requests, cfg.RateLimit.Window)
	}
	return s
}

// Handler returns the routed handler with logging applied.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/", s.index)
	mux.Handle("/franchise", RateLimitMiddleware(s.limiter, http.HandlerFunc(s.franchisePage)))
	mux.Handle("/investors", RateLimitMiddleware(s.limiter, http.HandlerFunc(s.investorPage)))
	mux.Handle("/api/franchise", RateLimitMiddleware(s.limiter, http.HandlerFunc(s.franchiseFragment)))
	mux.Handle("/api/investors", RateLimitMiddleware(s.limiter, http.HandlerFunc(s.investorFragment)))
	return LoggingMiddleware(s.logger, mux)
}

// Close releases background resources.
func (s *Server) Close() {
	if s.limiter != nil {
		s.limiter.Stop()
	}
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	defer s.Close()

	server := &http.Server{
		Addr:         s.cfg.Addr,
		Handler:      s.Handler(),
		ReadTimeout:  s.cfg.ReadTimeout,
		WriteTimeout: s.cfg.WriteTimeout,
		IdleTimeout:  s.cfg.IdleTimeout,
	}

	serverErr := make(chan error, 1)
	go func() {
		s.logger.Info("server listening", zap.String("addr", s.cfg.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	select {
	case err := <-serverErr:
		return err
	case <-ctx.Done():
		s.logger.Info("shutting down server")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}
