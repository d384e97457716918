package content

import "github.com/lalitmohan/portfolio/internal/portfolio"

var socialLinks = []portfolio.SocialLink{
	{
		Platform: portfolio.PlatformGitHub,
		URL:      "https://github.com/lalitmohan",
		Label:    "GitHub",
	},
	{
		Platform: portfolio.PlatformLinkedIn,
		URL:      "https://linkedin.com/in/lalitmohan",
		Label:    "LinkedIn",
	},
	{
		Platform: portfolio.PlatformEmail,
		URL:      "mailto:lalitmohan.engineer@gmail.com",
		Label:    "Email",
	},
}

var personalInfo = portfolio.PersonalInfo{
	Name:            "Lalit Mohan",
	Title:           "Full Stack & ML Engineer",
	Email:           "lalitmohan.engineer@gmail.com",
	Bio:             "I build intelligent systems that bridge the gap between robust software architecture and machine intelligence.",
	Availability:    "Open for collaborations",
	Location:        "India",
	EstablishedYear: "199X",
	SocialLinks:     socialLinks,
}

var heroCopy = portfolio.HeroCopy{
	Tagline:             "FULL STACK & ML ENGINEER.",
	Description:         "Exploring the intersection of scalable software and intelligent data processing through purposeful engineering.",
	AvailabilityDetails: "Available for projects starting Feb 2024",
	CTAText:             "View My Work",
	ContactTitle:        "LET'S BUILD SOMETHING GREAT.",
	ContactSubtitle:     "Available for projects starting Feb 2024",
}
