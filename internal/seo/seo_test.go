package seo

import (
	"encoding/xml"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRobotsDirective(t *testing.T) {
	tests := []struct {
		robots Robots
		want   string
	}{
		{Robots{Index: true, Follow: true}, "index, follow"},
		{Robots{Index: true}, "index, nofollow"},
		{Robots{Follow: true}, "noindex, follow"},
		{Robots{}, "noindex, nofollow"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Metadata{Robots: tt.robots}.RobotsDirective())
	}
}

func TestKeywordListAndViewport(t *testing.T) {
	m := Metadata{Keywords: []string{"Go", "ML"}}
	assert.Equal(t, "Go, ML", m.KeywordList())
	assert.Equal(t, "width=device-width, initial-scale=1", m.ViewportContent())

	m.Viewport = Viewport{Width: "device-width", InitialScale: 1.5}
	assert.Equal(t, "width=device-width, initial-scale=1.5", m.ViewportContent())
}

func TestRobotsBuilder(t *testing.T) {
	meta := Metadata{Robots: Robots{Index: true, Follow: true}}
	content := NewRobotsBuilder(RobotsFor(meta, "https://example.com/")).Build()

	assert.True(t, strings.HasPrefix(content, "User-agent: *\n"))
	assert.Contains(t, content, "Disallow: /api/\n")
	assert.Contains(t, content, "Disallow: /metrics\n")
	assert.Contains(t, content, "Allow: /\n")
	assert.Contains(t, content, "Sitemap: https://example.com/sitemap.xml\n")
}

func TestRobotsBuilder_NoIndex(t *testing.T) {
	content := NewRobotsBuilder(RobotsFor(Metadata{}, "https://example.com")).Build()
	assert.Equal(t, "User-agent: *\nDisallow: /\n", content)
}

func TestSitemapBuilder(t *testing.T) {
	modified := time.Date(2024, 2, 1, 15, 0, 0, 0, time.UTC)
	out, err := NewSitemapBuilder("https://example.com/").AddPage("/", modified, 1).Build()
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(out), xml.Header))

	var doc Sitemap
	require.NoError(t, xml.Unmarshal(out, &doc))
	assert.Contains(t, string(out), `xmlns="`+XMLNamespace+`"`)
	require.Len(t, doc.URLs, 1)
	assert.Equal(t, "https://example.com/", doc.URLs[0].Loc)
	assert.Equal(t, "2024-02-01", doc.URLs[0].LastMod)
	assert.Equal(t, "1.0", doc.URLs[0].Priority)
}
