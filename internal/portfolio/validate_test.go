package portfolio

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() Config {
	return Config{
		Personal: PersonalInfo{
			Name:            "Ada Lovelace",
			Title:           "Engineer",
			Email:           "ada@example.com",
			Bio:             "Builds engines.",
			Availability:    "Open",
			Location:        "London",
			EstablishedYear: "1815",
			SocialLinks: []SocialLink{
				{Platform: PlatformGitHub, URL: "https://github.com/ada", Label: "GitHub"},
				{Platform: PlatformEmail, URL: "mailto:ada@example.com", Label: "Email"},
			},
		},
		Projects: []Project{
			{ID: 1, Title: "Engine", Category: "Hardware", Description: "Analytical.", Tags: []string{"Brass"}, Color: "from-blue-600 to-violet-500"},
		},
		Skills: []Skill{
			{Name: "Math", Level: LevelExpert, Items: []string{"Algebra"}, Color: "bg-blue-50"},
		},
		Services:   []Service{{Title: "Consulting", Description: "Numbers."}},
		Navigation: []NavItem{{Label: "Work", ID: "work"}},
	}
}

func TestValidate_AcceptsCompleteConfig(t *testing.T) {
	require.NoError(t, Validate(validConfig()))
}

func TestValidate_RejectsBrokenRecords(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		field  string
	}{
		{"bad email", func(c *Config) { c.Personal.Email = "not-an-email" }, "Email"},
		{"unknown platform", func(c *Config) { c.Personal.SocialLinks[0].Platform = "myspace" }, "Platform"},
		{"duplicate platform", func(c *Config) { c.Personal.SocialLinks[1].Platform = PlatformGitHub }, "SocialLinks"},
		{"missing project title", func(c *Config) { c.Projects[0].Title = "" }, "Title"},
		{"zero project id", func(c *Config) { c.Projects[0].ID = 0 }, "ID"},
		{"duplicate project id", func(c *Config) { c.Projects = append(c.Projects, c.Projects[0]) }, "Projects"},
		{"bad source url", func(c *Config) { c.Projects[0].GitHubURL = "github" }, "GitHubURL"},
		{"no tags", func(c *Config) { c.Projects[0].Tags = nil }, "Tags"},
		{"empty tag", func(c *Config) { c.Projects[0].Tags = []string{""} }, "Tags[0]"},
		{"gradient token", func(c *Config) { c.Projects[0].Color = "blue" }, "Color"},
		{"unknown level", func(c *Config) { c.Skills[0].Level = "Guru" }, "Level"},
		{"skill color token", func(c *Config) { c.Skills[0].Color = "blue" }, "Color"},
		{"anchor with hash", func(c *Config) { c.Navigation[0].ID = "#work" }, "ID"},
		{"anchor with space", func(c *Config) { c.Navigation[0].ID = "my work" }, "ID"},
		{"duplicate anchor", func(c *Config) { c.Navigation = append(c.Navigation, c.Navigation[0]) }, "Navigation"},
		{"no services", func(c *Config) { c.Services = nil }, "Services"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			cfg.Personal.SocialLinks = append([]SocialLink(nil), cfg.Personal.SocialLinks...)
			tt.mutate(&cfg)
			err := Validate(cfg)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.field)
		})
	}
}

func TestValidate_OptionalLinksMayBeAbsent(t *testing.T) {
	cfg := validConfig()
	cfg.Projects[0].GitHubURL = ""
	cfg.Projects[0].LiveURL = ""
	require.NoError(t, Validate(cfg))
	assert.False(t, cfg.Projects[0].HasSource())
	assert.False(t, cfg.Projects[0].HasDemo())
}

func TestEnums(t *testing.T) {
	for _, p := range Platforms() {
		assert.True(t, p.Valid(), p)
	}
	assert.False(t, Platform("").Valid())
	assert.False(t, PlatformEmail.External())
	assert.True(t, PlatformGitHub.External())

	for _, l := range SkillLevels() {
		assert.True(t, l.Valid(), l)
	}
	assert.False(t, SkillLevel("expert").Valid())
}

func TestLinks(t *testing.T) {
	cfg := validConfig()
	assert.Equal(t, "mailto:ada@example.com", cfg.Personal.MailTo())
	assert.Equal(t, "#work", cfg.Navigation[0].Href())

	p, ok := cfg.Project(1)
	require.True(t, ok)
	assert.Equal(t, "Engine", p.Title)
	_, ok = cfg.Project(99)
	assert.False(t, ok)
}

func TestFeatured(t *testing.T) {
	cfg := validConfig()
	cfg.Projects = []Project{
		{ID: 1, Featured: true},
		{ID: 2},
		{ID: 3, Featured: true},
	}
	got := cfg.Featured()
	require.Len(t, got, 2)
	assert.Equal(t, 1, got[0].ID)
	assert.Equal(t, 3, got[1].ID)
}

func TestSectionCopyWords(t *testing.T) {
	s := SectionCopy{Heading: "HOW I CAN HELP YOU."}
	assert.Equal(t, []string{"HOW", "I", "CAN", "HELP", "YOU."}, s.Words())
}

func TestValidateStruct_CopyBlocks(t *testing.T) {
	assert.NoError(t, ValidateStruct(Brand{Initials: "AL", FullName: "Ada Lovelace"}))
	assert.Error(t, ValidateStruct(Brand{Initials: "ADAL", FullName: "Ada Lovelace"}))
	assert.Error(t, ValidateStruct(CallToAction{Text: "Go"}))
}
