package content

import "github.com/lalitmohan/portfolio/internal/portfolio"

var navigationItems = []portfolio.NavItem{
	{Label: "Selected Work", ID: "work"},
	{Label: "Expertise", ID: "skills"},
	{Label: "Process", ID: "services"},
	{Label: "Contact", ID: "contact"},
}

var brand = portfolio.Brand{
	Initials: "LM",
	FullName: "Lalit Mohan",
}

var navigationCTA = portfolio.CallToAction{
	Text: "Get in touch",
	Href: "#contact",
}
