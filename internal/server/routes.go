package server

import (
	"io/fs"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/lalitmohan/portfolio/internal/assets"
)

func (s *Server) routes() {
	r := s.engine
	r.Use(recoveryMiddleware())
	r.Use(requestIDMiddleware(s.log))
	r.Use(accessLogMiddleware())
	if s.metrics != nil {
		r.Use(s.metrics.Middleware())
	}
	r.Use(securityHeadersMiddleware(!s.cfg.IsDevelopment()))

	r.GET("/", s.handlePage)
	r.HEAD("/", s.handlePage)

	static := r.Group(strings.TrimSuffix(assets.URLPrefix, "/"))
	static.Use(staticCacheMiddleware())
	static.StaticFS("/", http.FS(filesOnly{assets.FS()}))

	r.GET("/robots.txt", s.handleRobots)
	r.GET("/sitemap.xml", s.handleSitemap)
	r.GET("/healthz", s.handleHealth)
	if s.metrics != nil {
		r.GET("/metrics", gin.WrapH(s.metrics.Handler()))
	}

	api := r.Group("/api")
	api.GET("/portfolio", s.handlePortfolio)
	api.GET("/projects", s.handleProjects)
	api.GET("/projects/:id", s.handleProject)

	r.NoRoute(s.handleNotFound)
}

// filesOnly hides directories so the file server never renders an index.
type filesOnly struct {
	fs.FS
}

func (f filesOnly) Open(name string) (fs.File, error) {
	file, err := f.FS.Open(name)
	if err != nil {
		return nil, err
	}
	info, err := file.Stat()
	if err != nil {
		file.Close()
		return nil, err
	}
	if info.IsDir() {
		file.Close()
		return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrNotExist}
	}
	return file, nil
}
