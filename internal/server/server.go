// Package server wires the portfolio page, its JSON API and the visit
// counter into a gin engine.
package server

import (
	"context"
	"errors"
	"fmt"
	"html/template"
	"io/fs"
	"net"
	"net/http"
	"path"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"

	"github.com/sahiltalaviya99/portfolio/internal/config"
	"github.com/sahiltalaviya99/portfolio/internal/logging"
	"github.com/sahiltalaviya99/portfolio/internal/theme"
	"github.com/sahiltalaviya99/portfolio/internal/visits"
	"github.com/sahiltalaviya99/portfolio/web"
)

const shutdownTimeout = 10 * time.Second

// Server serves the portfolio.
type Server struct {
	cfg      *config.Config
	logger   *zap.Logger
	clock    clockwork.Clock
	sessions *theme.Sessions
	visits   *visits.Store

	router *gin.Engine
}

// Option configures a Server.
type Option func(*Server)

// WithClock replaces the wall clock used for quote rotation and the
// footer year.
func WithClock(c clockwork.Clock) Option {
	return func(s *Server) { s.clock = c }
}

// WithVisits enables visit counting and the stats endpoint.
func WithVisits(store *visits.Store) Option {
	return func(s *Server) { s.visits = store }
}

// New builds the server and its routes.
func New(cfg *config.Config, logger *zap.Logger, opts ...Option) (*Server, error) {
	s := &Server{
		cfg:    cfg,
		logger: logger,
		clock:  clockwork.NewRealClock(),
	}
	for _, opt := range opts {
		opt(s)
	}

	secret := cfg.SessionSecret
	if secret == "" {
		secret = visits.GenerateToken()
		logger.Warn("SESSION_SECRET not set, theme cookies will not survive a restart")
	}
	s.sessions = theme.NewSessions(secret, cfg.SecureCookies)

	gin.SetMode(cfg.Mode)
	if err := s.routes(); err != nil {
		return nil, err
	}
	return s, nil
}

// Router exposes the HTTP handler.
func (s *Server) Router() http.Handler {
	return s.router
}

func (s *Server) routes() error {
	r := gin.New()
	r.Use(logging.Middleware(s.logger), gin.Recovery())
	if s.visits != nil {
		r.Use(s.visits.Middleware())
	}
	r.Use(s.themeMiddleware())

	tmpl, err := template.ParseFS(web.FS, "templates/*.html")
	if err != nil {
		return fmt.Errorf("parse templates: %w", err)
	}
	r.SetHTMLTemplate(tmpl)

	static, err := fs.Sub(web.FS, "static")
	if err != nil {
		return fmt.Errorf("static assets: %w", err)
	}
	r.StaticFS("/static", http.FS(static))
	r.GET(s.cfg.Assets.ResumePath, s.asset(s.cfg.Assets.ResumePath))
	r.GET(s.cfg.Assets.ProfileImage, s.asset(s.cfg.Assets.ProfileImage))

	r.GET("/", s.index)
	r.GET("/healthz", s.health)

	api := r.Group("/api")
	api.GET("/sections", s.sections)
	api.GET("/projects", s.projects)
	api.GET("/projects/:id", s.project)
	api.GET("/experience", s.experience)
	api.GET("/skills", s.skills)
	api.GET("/quotes", s.quotes)
	api.GET("/quotes/stream", s.streamQuotes)
	api.GET("/theme", s.getTheme)
	api.POST("/theme/toggle", s.toggleTheme)
	api.PUT("/theme", s.setTheme)
	api.GET("/motion/:section", s.motion)

	if s.visits != nil {
		token := s.cfg.Visits.AdminToken
		if token == "" {
			token = visits.GenerateToken()
			if gin.Mode() == gin.DebugMode {
				s.logger.Debug("generated admin token", zap.String("token", token))
			}
		}
		admin := r.Group("/admin", visits.AdminAuth(token))
		admin.GET("/api/stats", s.visits.StatsHandler)
		s.logger.Info("visit tracking enabled with hashed client addresses")
	}

	s.router = r
	return nil
}

// asset serves a file from the asset directory named after the last
// element of the URL path.
func (s *Server) asset(urlPath string) gin.HandlerFunc {
	file := filepath.Join(s.cfg.Assets.Dir, path.Base(urlPath))
	return func(c *gin.Context) {
		c.File(file)
	}
}

func (s *Server) themeMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		t := theme.Default
		if s.cfg.RememberTheme {
			t = s.sessions.Load(c.Request).Theme
		}
		c.Request = c.Request.WithContext(theme.WithContext(c.Request.Context(), t))
		c.Next()
	}
}

// Run listens until ctx is cancelled and then shuts down gracefully.
// Open quote streams are ended as part of shutdown.
func (s *Server) Run(ctx context.Context) error {
	base, cancelBase := context.WithCancel(context.Background())
	defer cancelBase()

	srv := &http.Server{
		Addr:              s.cfg.Addr(),
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return base },
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("listening", zap.String("addr", srv.Addr), zap.String("version", s.cfg.Version))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("listen on %s: %w", srv.Addr, err)
	case <-ctx.Done():
	}

	s.logger.Info("shutting down")
	cancelBase()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
