package content

import "github.com/lalitmohan/portfolio/internal/portfolio"

var services = []portfolio.Service{
	{
		Title:       "End-to-End Product Engineering",
		Description: "Taking ideas from whiteboard to production-ready deployments with modern tech stacks.",
	},
	{
		Title:       "ML Model Implementation",
		Description: "Specialized in integrating LLMs and Computer Vision into existing business workflows.",
	},
	{
		Title:       "Scalable Cloud Architecture",
		Description: "Designing distributed systems that handle millions of requests with high availability.",
	},
}

var servicesCopy = portfolio.SectionCopy{
	SectionTitle: "Service Offering",
	Heading:      "HOW I CAN HELP YOU.",
}
