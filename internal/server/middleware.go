package server

import (
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/lalitmohan/portfolio/internal/logging"
)

// RequestIDHeader carries the request id in both directions.
const RequestIDHeader = "X-Request-ID"

var validRequestID = regexp.MustCompile(`^[A-Za-z0-9._-]{1,128}$`)

// quietPrefixes are logged at debug level only.
var quietPrefixes = []string{"/static/", "/favicon", "/healthz", "/metrics"}

// requestIDMiddleware reuses a well-formed incoming X-Request-ID or mints a
// new one, and puts it on the gin context, the request context and the
// response.
func requestIDMiddleware(base zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if !validRequestID.MatchString(id) {
			id = uuid.NewString()
		}
		c.Set(requestIDKey, id)
		c.Header(RequestIDHeader, id)

		ctx := logging.ContextWithRequestID(c.Request.Context(), id)
		l := logging.WithContext(ctx, base)
		c.Request = c.Request.WithContext(l.WithContext(ctx))
		c.Next()
	}
}

func quiet(path string) bool {
	for _, prefix := range quietPrefixes {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}

// accessLogMiddleware writes one line per request.
func accessLogMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.Request.URL.Path
		status := c.Writer.Status()
		l := logging.FromContext(c.Request.Context())

		var ev *zerolog.Event
		switch {
		case status >= http.StatusInternalServerError:
			ev = l.Error()
		case quiet(path):
			ev = l.Debug()
		default:
			ev = l.Info()
		}
		if len(c.Errors) > 0 {
			ev = ev.Str("errors", c.Errors.String())
		}
		ev.Str("method", c.Request.Method).
			Str("path", path).
			Int("status", status).
			Int("bytes", c.Writer.Size()).
			Dur("duration", time.Since(start)).
			Str("client_ip", c.ClientIP()).
			Msg("request")
	}
}

// recoveryMiddleware turns panics into a 500 and logs them.
func recoveryMiddleware() gin.HandlerFunc {
	return gin.CustomRecoveryWithWriter(nil, func(c *gin.Context, recovered any) {
		logging.FromContext(c.Request.Context()).Error().
			Interface("panic", recovered).
			Str("path", c.Request.URL.Path).
			Msg("recovered from panic")
		if strings.HasPrefix(c.Request.URL.Path, "/api/") {
			fail(c, http.StatusInternalServerError, "internal error", "")
			return
		}
		c.AbortWithStatus(http.StatusInternalServerError)
	})
}

// contentSecurityPolicy allows the font and utility stylesheet hosts the
// layout links to.
const contentSecurityPolicy = "default-src 'self'; " +
	"script-src 'self' https://cdn.tailwindcss.com; " +
	"style-src 'self' 'unsafe-inline' https://fonts.googleapis.com; " +
	"font-src 'self' https://fonts.gstatic.com; " +
	"img-src 'self' data:; " +
	"connect-src 'self'; " +
	"frame-ancestors 'none'; " +
	"base-uri 'self'; " +
	"form-action 'self'"

// securityHeadersMiddleware adds the browser hardening headers. HSTS is only
// sent outside development.
func securityHeadersMiddleware(hsts bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		if hsts {
			c.Header("Strict-Transport-Security", "max-age=63072000; includeSubDomains")
		}
		c.Header("X-Content-Type-Options", "nosniff")
		c.Header("X-Frame-Options", "DENY")
		c.Header("Referrer-Policy", "strict-origin-when-cross-origin")
		c.Header("Permissions-Policy", "camera=(), microphone=(), geolocation=(), payment=()")
		c.Header("Content-Security-Policy", contentSecurityPolicy)
		c.Next()
	}
}

// staticCacheMiddleware lets browsers keep embedded assets for a day.
func staticCacheMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Cache-Control", "public, max-age=86400")
		c.Next()
	}
}
