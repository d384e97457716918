package content

import "github.com/lalitmohan/portfolio/internal/portfolio"

// Icons are left empty and picked by the skills section from the name.
var skills = []portfolio.Skill{
	{
		Name:  "Frontend",
		Level: portfolio.LevelExpert,
		Items: []string{"React", "Next.js", "Tailwind", "Three.js"},
		Color: "bg-blue-50",
	},
	{
		Name:  "Backend",
		Level: portfolio.LevelExpert,
		Items: []string{"Node.js", "Go", "Python", "FastAPI"},
		Color: "bg-emerald-50",
	},
	{
		Name:  "ML/AI",
		Level: portfolio.LevelAdvanced,
		Items: []string{"PyTorch", "Scikit-Learn", "NLP", "CV"},
		Color: "bg-purple-50",
	},
	{
		Name:  "Cloud",
		Level: portfolio.LevelProficient,
		Items: []string{"Docker", "K8s", "AWS", "CI/CD"},
		Color: "bg-orange-50",
	},
}

var skillsCopy = portfolio.SectionCopy{
	SectionTitle: "Core Expertise",
	Heading:      "TECHNICAL ARSENAL",
}
