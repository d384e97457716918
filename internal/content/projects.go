package content

import "github.com/lalitmohan/portfolio/internal/portfolio"

var projects = []portfolio.Project{
	{
		ID:          1,
		Title:       "Neural Vision API",
		Category:    "Machine Learning",
		Description: "High-throughput computer vision pipeline for real-time object detection and spatial analysis using custom-trained YOLO models.",
		Tags:        []string{"Python", "PyTorch", "FastAPI"},
		Color:       "from-blue-600 via-indigo-500 to-violet-500",
		GitHubURL:   "https://github.com/lalitmohan/neural-vision-api",
		LiveURL:     "https://neural-vision-api.demo.com",
		Featured:    true,
	},
	{
		ID:          2,
		Title:       "EcoSphere Dashboard",
		Category:    "Full Stack",
		Description: "A comprehensive environmental monitoring system with real-time sensor data visualization and predictive maintenance alerts.",
		Tags:        []string{"React", "Go", "PostgreSQL"},
		Color:       "from-emerald-500 to-teal-400",
		GitHubURL:   "https://github.com/lalitmohan/ecosphere-dashboard",
		LiveURL:     "https://ecosphere-dashboard.demo.com",
		Featured:    true,
	},
	{
		ID:          3,
		Title:       "Sentix NLP",
		Category:    "AI/ML",
		Description: "Advanced sentiment analysis engine for financial markets, processing millions of news headlines with transformer-based architectures.",
		Tags:        []string{"TensorFlow", "Transformers", "AWS"},
		Color:       "from-orange-500 to-rose-500",
		GitHubURL:   "https://github.com/lalitmohan/sentix-nlp",
		Featured:    true,
	},
	{
		ID:          4,
		Title:       "Vault Protocol",
		Category:    "Infrastructure",
		Description: "Secure, distributed credential management system built with end-to-end encryption and zero-knowledge proofs.",
		Tags:        []string{"Rust", "Wasm", "TypeScript"},
		Color:       "from-cyan-500 to-blue-500",
		GitHubURL:   "https://github.com/lalitmohan/vault-protocol",
		LiveURL:     "https://vault-protocol.demo.com",
		Featured:    true,
	},
}

var projectsCopy = portfolio.SectionCopy{
	SectionTitle: "Portfolio",
	Heading:      "CRAFTED SOLUTIONS.",
	Description:  "Exploring the intersection of scalable software and intelligent data processing through purposeful engineering.",
	ButtonText:   "View Archive",
}
