package content

import "github.com/lalitmohan/portfolio/internal/seo"

var metadata = seo.Metadata{
	Title:       "Lalit Mohan - Full Stack & ML Engineer",
	Description: "Portfolio of Lalit Mohan, a Full Stack & ML Engineer building intelligent systems that bridge robust software architecture and machine intelligence.",
	Keywords:    []string{"Full Stack Developer", "Machine Learning Engineer", "React", "Next.js", "Python", "AI", "Software Engineer"},
	Authors:     []seo.Author{{Name: "Lalit Mohan", URL: "mailto:lalitmohan.engineer@gmail.com"}},
	Creator:     "Lalit Mohan",
	OpenGraph: seo.OpenGraph{
		Title:       "Lalit Mohan - Full Stack & ML Engineer",
		Description: "Portfolio showcasing intelligent systems and scalable software solutions",
		Type:        "website",
		Locale:      "en_US",
	},
	Twitter: seo.TwitterCard{
		Card:        "summary_large_image",
		Title:       "Lalit Mohan - Full Stack & ML Engineer",
		Description: "Building intelligent systems that bridge software architecture and machine intelligence",
	},
	Robots:   seo.Robots{Index: true, Follow: true},
	Viewport: seo.Viewport{Width: "device-width", InitialScale: 1},
	Lang:     "en",
}
