package seo

import (
	"encoding/xml"
	"fmt"
	"strings"
	"time"
)

// XMLNamespace is the sitemap XML namespace.
const XMLNamespace = "http://www.sitemaps.org/schemas/sitemap/0.9"

// SitemapURL is a single <url> entry.
type SitemapURL struct {
	Loc        string `xml:"loc"`
	LastMod    string `xml:"lastmod,omitempty"`
	ChangeFreq string `xml:"changefreq,omitempty"`
	Priority   string `xml:"priority,omitempty"`
}

// Sitemap is the <urlset> document.
type Sitemap struct {
	XMLName xml.Name     `xml:"urlset"`
	XMLNS   string       `xml:"xmlns,attr"`
	URLs    []SitemapURL `xml:"url"`
}

// SitemapBuilder collects the site's pages. A single-page site has one entry,
// the root, but anchors are never listed since crawlers ignore fragments.
type SitemapBuilder struct {
	siteURL string
	urls    []SitemapURL
}

// NewSitemapBuilder creates a builder for pages under siteURL.
func NewSitemapBuilder(siteURL string) *SitemapBuilder {
	return &SitemapBuilder{siteURL: strings.TrimSuffix(siteURL, "/")}
}

// AddPage adds a page by path relative to the site root.
func (b *SitemapBuilder) AddPage(path string, modified time.Time, priority float64) *SitemapBuilder {
	loc := b.siteURL + "/" + strings.TrimPrefix(path, "/")
	entry := SitemapURL{
		Loc:        loc,
		ChangeFreq: "monthly",
		Priority:   fmt.Sprintf("%.1f", priority),
	}
	if !modified.IsZero() {
		entry.LastMod = modified.UTC().Format("2006-01-02")
	}
	b.urls = append(b.urls, entry)
	return b
}

// Build marshals the sitemap including the XML declaration.
func (b *SitemapBuilder) Build() ([]byte, error) {
	doc := Sitemap{XMLNS: XMLNamespace, URLs: b.urls}
	out, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal sitemap: %w", err)
	}
	return append([]byte(xml.Header), out...), nil
}
