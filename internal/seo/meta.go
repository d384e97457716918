// Package seo builds the document metadata, robots.txt and sitemap.xml for the
// site.
package seo

import (
	"strconv"
	"strings"
)

// Author credits a page author.
type Author struct {
	Name string `json:"name"`
	URL  string `json:"url,omitempty"`
}

// OpenGraph holds the og:* properties.
type OpenGraph struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Type        string `json:"type"`
	Locale      string `json:"locale"`
}

// TwitterCard holds the twitter:* properties.
type TwitterCard struct {
	Card        string `json:"card"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Robots is the crawler directive for the page.
type Robots struct {
	Index  bool `json:"index"`
	Follow bool `json:"follow"`
}

// Viewport is rendered into the viewport meta tag.
type Viewport struct {
	Width        string  `json:"width"`
	InitialScale float64 `json:"initialScale"`
}

// Metadata is the head metadata of the page.
type Metadata struct {
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Keywords    []string    `json:"keywords"`
	Authors     []Author    `json:"authors"`
	Creator     string      `json:"creator"`
	OpenGraph   OpenGraph   `json:"openGraph"`
	Twitter     TwitterCard `json:"twitter"`
	Robots      Robots      `json:"robots"`
	Viewport    Viewport    `json:"viewport"`
	Lang        string      `json:"lang"`
}

// RobotsDirective renders the robots meta content, e.g. "index, follow".
func (m Metadata) RobotsDirective() string {
	index, follow := "noindex", "nofollow"
	if m.Robots.Index {
		index = "index"
	}
	if m.Robots.Follow {
		follow = "follow"
	}
	return index + ", " + follow
}

// KeywordList joins the keywords for the keywords meta tag.
func (m Metadata) KeywordList() string {
	return strings.Join(m.Keywords, ", ")
}

// ViewportContent renders the viewport meta content.
func (m Metadata) ViewportContent() string {
	width := m.Viewport.Width
	if width == "" {
		width = "device-width"
	}
	scale := m.Viewport.InitialScale
	if scale == 0 {
		scale = 1
	}
	return "width=" + width + ", initial-scale=" + strconv.FormatFloat(scale, 'f', -1, 64)
}
