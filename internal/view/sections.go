package view

import (
	"fmt"
	"html/template"
	"strings"

	"github.com/lalitmohan/portfolio/internal/portfolio"
)

// Section element ids. Navigation items point at these.
const (
	SectionWork     = "work"
	SectionSkills   = "skills"
	SectionServices = "services"
	SectionContact  = "contact"
)

// Word is one word of a display heading.
type Word struct {
	Text        string
	BreakBefore bool
	Muted       bool
}

// SplitHeading splits text into words, breaking the line before word breakAt
// and muting word mutedAt. Pass -1 to disable either.
func SplitHeading(text string, breakAt, mutedAt int) []Word {
	return splitWords(strings.Fields(text), breakAt, mutedAt)
}

func splitWords(fields []string, breakAt, mutedAt int) []Word {
	words := make([]Word, len(fields))
	for i, f := range fields {
		words[i] = Word{Text: f, BreakBefore: i > 0 && i == breakAt, Muted: i == mutedAt}
	}
	return words
}

// TaglinePart is a segment of the hero tagline. Parts after the first are
// introduced by a line break and a faded ampersand.
type TaglinePart struct {
	Text      string
	Ampersand bool
}

// SplitTagline splits the hero tagline on " & ".
func SplitTagline(tagline string) []TaglinePart {
	pieces := strings.Split(tagline, " & ")
	parts := make([]TaglinePart, len(pieces))
	for i, p := range pieces {
		parts[i] = TaglinePart{Text: p, Ampersand: i > 0}
	}
	return parts
}

// Hero is the opening section.
type Hero struct {
	Availability string
	Tagline      []TaglinePart
	Name         string
	Bio          string
	CTA          Button
	Social       SocialLinks
}

// ProjectsSection lists the projects.
type ProjectsSection struct {
	ID      string
	Copy    portfolio.SectionCopy
	Heading []Word
	Cards   []ProjectCard
	Archive Button
}

// SkillsSection lists the skills.
type SkillsSection struct {
	ID    string
	Copy  portfolio.SectionCopy
	Cards []SkillCard
}

// ServiceItem is one entry of the services list.
type ServiceItem struct {
	Title       string
	Description template.HTML
	Icon        string
}

// ServicesSection lists the services beside the decorative orbit.
type ServicesSection struct {
	ID       string
	Copy     portfolio.SectionCopy
	Heading  []Word
	Services []ServiceItem
	Orbit    []OrbitIcon
}

// OrbitIcon is an icon pinned to the decorative ring.
type OrbitIcon struct {
	Icon     string
	Position string
}

// ContactSection is the closing call to action.
type ContactSection struct {
	ID                  string
	AvailabilityDetails string
	Title               []Word
	Email               string
	MailTo              string
	Social              SocialLinks
}

func newHero(info portfolio.PersonalInfo, text portfolio.HeroCopy) Hero {
	return Hero{
		Availability: info.Availability,
		Tagline:      SplitTagline(text.Tagline),
		Name:         info.Name,
		Bio:          info.Bio,
		CTA: Button{
			Label:    text.CTAText,
			Href:     "#" + SectionWork,
			Variant:  ButtonPrimary,
			Size:     ButtonMedium,
			Class:    "rounded-2xl",
			Icon:     "chevron-right",
			IconSize: 18,
		},
		Social: NewSocialLinks(info.SocialLinks, SocialHero, ""),
	}
}

func newProjectsSection(projects []portfolio.Project, text portfolio.SectionCopy, md *Markdown) (ProjectsSection, error) {
	section := ProjectsSection{
		ID:      SectionWork,
		Copy:    text,
		Heading: splitWords(text.Words(), 1, -1),
	}
	for _, p := range projects {
		desc, err := md.Inline(p.Description)
		if err != nil {
			return ProjectsSection{}, fmt.Errorf("project %d: %w", p.ID, err)
		}
		section.Cards = append(section.Cards, ProjectCard{Project: p, Description: desc})
	}
	if text.ButtonText != "" {
		section.Archive = Button{
			Label:   text.ButtonText,
			Variant: ButtonSecondary,
			Size:    ButtonLarge,
			Class:   "font-black tracking-[0.2em]",
		}
	}
	return section, nil
}

func newSkillsSection(skills []portfolio.Skill, text portfolio.SectionCopy) SkillsSection {
	section := SkillsSection{ID: SectionSkills, Copy: text}
	for _, s := range skills {
		section.Cards = append(section.Cards, SkillCard{Skill: s, Icon: SkillIcon(s)})
	}
	return section
}

func newServicesSection(services []portfolio.Service, text portfolio.SectionCopy, md *Markdown) (ServicesSection, error) {
	section := ServicesSection{
		ID:      SectionServices,
		Copy:    text,
		Heading: splitWords(text.Words(), 3, -1),
		Orbit: []OrbitIcon{
			{Icon: "cpu", Position: "top-0 left-1/2 -translate-x-1/2 -translate-y-1/2"},
			{Icon: "code", Position: "bottom-0 left-1/2 -translate-x-1/2 translate-y-1/2"},
			{Icon: "database", Position: "left-0 top-1/2 -translate-x-1/2 -translate-y-1/2"},
		},
	}
	for _, s := range services {
		desc, err := md.Inline(s.Description)
		if err != nil {
			return ServicesSection{}, fmt.Errorf("service %q: %w", s.Title, err)
		}
		section.Services = append(section.Services, ServiceItem{Title: s.Title, Description: desc, Icon: s.Icon})
	}
	return section, nil
}

func newContactSection(info portfolio.PersonalInfo, text portfolio.HeroCopy) ContactSection {
	return ContactSection{
		ID:                  SectionContact,
		AvailabilityDetails: text.AvailabilityDetails,
		Title:               SplitHeading(text.ContactTitle, 2, 2),
		Email:               info.Email,
		MailTo:              info.MailTo(),
		Social:              NewSocialLinks(info.SocialLinks, SocialFooter, ""),
	}
}
