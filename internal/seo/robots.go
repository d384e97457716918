package seo

import "strings"

// RobotsConfig controls robots.txt output.
type RobotsConfig struct {
	SiteURL       string   // base URL for the sitemap reference
	DisallowAll   bool     // block all crawlers, e.g. on staging
	DisallowPaths []string // extra paths to keep out of the index
}

// RobotsBuilder builds robots.txt content.
type RobotsBuilder struct {
	config RobotsConfig
}

// NewRobotsBuilder creates a robots.txt builder.
func NewRobotsBuilder(config RobotsConfig) *RobotsBuilder {
	return &RobotsBuilder{config: config}
}

// RobotsFor derives the robots.txt settings from the page's robots directive.
func RobotsFor(meta Metadata, siteURL string) RobotsConfig {
	return RobotsConfig{
		SiteURL:       siteURL,
		DisallowAll:   !meta.Robots.Index,
		DisallowPaths: []string{"/api/", "/metrics"},
	}
}

// Build generates the robots.txt content.
func (b *RobotsBuilder) Build() string {
	var sb strings.Builder

	sb.WriteString("User-agent: *\n")
	if b.config.DisallowAll {
		sb.WriteString("Disallow: /\n")
		return sb.String()
	}

	for _, path := range b.config.DisallowPaths {
		sb.WriteString("Disallow: ")
		sb.WriteString(path)
		sb.WriteString("\n")
	}
	sb.WriteString("Allow: /\n")

	if b.config.SiteURL != "" {
		sb.WriteString("\nSitemap: ")
		sb.WriteString(strings.TrimSuffix(b.config.SiteURL, "/"))
		sb.WriteString("/sitemap.xml\n")
	}
	return sb.String()
}
