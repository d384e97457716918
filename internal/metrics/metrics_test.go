package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lalitmohan/portfolio/internal/portfolio"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestMiddleware_LabelsByRoute(t *testing.T) {
	m := New()
	r := gin.New()
	r.Use(m.Middleware())
	r.GET("/api/projects/:id", func(c *gin.Context) { c.Status(http.StatusOK) })

	for _, path := range []string{"/api/projects/1", "/api/projects/2", "/nope"} {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}

	assert.Equal(t, 2.0, testutil.ToFloat64(m.requests.WithLabelValues("GET", "/api/projects/:id", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.requests.WithLabelValues("GET", unmatchedRoute, "404")))
	assert.Equal(t, 2, testutil.CollectAndCount(m.duration))
}

func TestObserveRenderAndContent(t *testing.T) {
	m := New()
	m.ObserveRender(3 * time.Millisecond)
	m.ObserveRender(time.Millisecond)
	assert.Equal(t, 2.0, testutil.ToFloat64(m.renders))

	m.SetContent(portfolio.Config{
		Projects: make([]portfolio.Project, 4),
		Skills:   make([]portfolio.Skill, 4),
		Services: make([]portfolio.Service, 3),
	})
	assert.Equal(t, 4.0, testutil.ToFloat64(m.contentItems.WithLabelValues("projects")))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.contentItems.WithLabelValues("services")))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.contentItems.WithLabelValues("navigation")))
}

func TestHandler_Exposition(t *testing.T) {
	m := New()
	m.ObserveRender(time.Millisecond)

	srv := httptest.NewServer(m.Handler())
	defer srv.Close()

	resp, err := srv.Client().Get(srv.URL)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	n, err := testutil.GatherAndCount(m.Registry(), "portfolio_page_renders_total")
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestNew_IndependentRegistries(t *testing.T) {
	assert.NotPanics(t, func() {
		New()
		New()
	})
}
