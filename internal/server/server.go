// Package server serves the rendered portfolio page, its static assets and a
// small read-only JSON API over the content.
package server

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/lalitmohan/portfolio/internal/config"
	"github.com/lalitmohan/portfolio/internal/content"
	"github.com/lalitmohan/portfolio/internal/logging"
	"github.com/lalitmohan/portfolio/internal/metrics"
	"github.com/lalitmohan/portfolio/internal/seo"
	"github.com/lalitmohan/portfolio/internal/view"
)

// Option configures a Server.
type Option func(*Server)

// WithClock sets the time source for the footer year and the sitemap date.
func WithClock(now func() time.Time) Option {
	return func(s *Server) { s.now = now }
}

// WithLogger replaces the component logger.
func WithLogger(l zerolog.Logger) Option {
	return func(s *Server) { s.log = l }
}

// Server holds the gin engine and everything rendered at startup.
type Server struct {
	cfg     *config.Config
	site    content.Site
	engine  *gin.Engine
	metrics *metrics.Metrics
	log     zerolog.Logger
	now     func() time.Time

	page    []byte
	etag    string
	robots  string
	sitemap []byte
}

// New renders the page, robots.txt and sitemap once and builds the router.
func New(cfg *config.Config, site content.Site, opts ...Option) (*Server, error) {
	s := &Server{
		cfg:  cfg,
		site: site,
		log:  logging.WithComponent("server"),
		now:  time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	if cfg.MetricsEnabled {
		s.metrics = metrics.New()
		s.metrics.SetContent(site.Portfolio)
	}

	if err := s.render(); err != nil {
		return nil, err
	}

	gin.SetMode(cfg.GinMode())
	s.engine = gin.New()
	s.routes()
	return s, nil
}

func (s *Server) render() error {
	start := time.Now()
	r, err := view.NewRenderer(s.site, view.WithClock(s.now))
	if err != nil {
		return fmt.Errorf("build renderer: %w", err)
	}
	page, err := r.Bytes()
	if err != nil {
		return fmt.Errorf("render page: %w", err)
	}
	if s.metrics != nil {
		s.metrics.ObserveRender(time.Since(start))
	}
	sum := sha256.Sum256(page)
	s.page = page
	s.etag = `"` + hex.EncodeToString(sum[:8]) + `"`

	s.robots = seo.NewRobotsBuilder(seo.RobotsFor(s.site.Metadata, s.cfg.SiteURL)).Build()
	s.sitemap, err = seo.NewSitemapBuilder(s.cfg.SiteURL).
		AddPage("/", s.now(), 1.0).
		Build()
	if err != nil {
		return fmt.Errorf("build sitemap: %w", err)
	}

	s.log.Debug().
		Int("bytes", len(page)).
		Str("etag", s.etag).
		Dur("took", time.Since(start)).
		Msg("page rendered")
	return nil
}

// Handler returns the router.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Page returns the rendered document.
func (s *Server) Page() []byte {
	return s.page
}

// Robots returns the robots.txt body.
func (s *Server) Robots() string {
	return s.robots
}

// Sitemap returns the sitemap.xml document.
func (s *Server) Sitemap() []byte {
	return s.sitemap
}


// Run listens on the configured address and serves until ctx is cancelled.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.cfg.Addr())
	if err != nil {
		return fmt.Errorf("listen %s: %w", s.cfg.Addr(), err)
	}
	return s.Serve(ctx, ln)
}

// Serve serves on ln until ctx is cancelled, then shuts down gracefully
// within the configured timeout. ln is closed on return.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.engine,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    1 << 20,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Serve(ln)
	}()
	s.log.Info().Str("addr", ln.Addr().String()).Msg("server listening")

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve: %w", err)
	case <-ctx.Done():
	}

	s.log.Info().Msg("shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("serve: %w", err)
	}
	s.log.Info().Msg("server stopped")
	return nil
}
