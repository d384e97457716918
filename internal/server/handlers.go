package server

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

func (s *Server) handlePage(c *gin.Context) {
	c.Header("ETag", s.etag)
	c.Header("Cache-Control", "no-cache")
	if match := c.GetHeader("If-None-Match"); match != "" && etagMatches(match, s.etag) {
		c.Status(http.StatusNotModified)
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", s.page)
}

// etagMatches handles the comma separated list and "*" forms of If-None-Match.
func etagMatches(header, etag string) bool {
	for _, candidate := range strings.Split(header, ",") {
		candidate = strings.TrimPrefix(strings.TrimSpace(candidate), "W/")
		if candidate == "*" || candidate == etag {
			return true
		}
	}
	return false
}

func (s *Server) handleRobots(c *gin.Context) {
	c.String(http.StatusOK, s.robots)
}

func (s *Server) handleSitemap(c *gin.Context) {
	c.Data(http.StatusOK, "application/xml; charset=utf-8", s.sitemap)
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) handlePortfolio(c *gin.Context) {
	success(c, http.StatusOK, "portfolio", s.site.Portfolio)
}

func (s *Server) handleProjects(c *gin.Context) {
	projects := s.site.Portfolio.Projects
	if c.Query("featured") == "true" {
		projects = s.site.Portfolio.Featured()
	}
	success(c, http.StatusOK, "projects", projects)
}

func (s *Server) handleProject(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		fail(c, http.StatusBadRequest, "invalid project id", "id must be a positive integer")
		return
	}
	p, ok := s.site.Portfolio.Project(id)
	if !ok {
		fail(c, http.StatusNotFound, "project not found", "no project with id "+strconv.Itoa(id))
		return
	}
	success(c, http.StatusOK, "project", p)
}

func (s *Server) handleNotFound(c *gin.Context) {
	if strings.HasPrefix(c.Request.URL.Path, "/api/") {
		fail(c, http.StatusNotFound, "not found", "")
		return
	}
	c.String(http.StatusNotFound, "404 page not found")
}
