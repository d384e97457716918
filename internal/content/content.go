// Package content holds the literal site content: biography, projects, skills,
// services, navigation and page metadata.
package content

import (
	"errors"
	"fmt"

	"github.com/lalitmohan/portfolio/internal/portfolio"
	"github.com/lalitmohan/portfolio/internal/seo"
)

// ErrInvalid is returned when the literals fail validation.
var ErrInvalid = errors.New("invalid site content")

// Site is everything the page renders.
type Site struct {
	Portfolio portfolio.Config       `json:"portfolio"`
	Hero      portfolio.HeroCopy     `json:"hero"`
	Projects  portfolio.SectionCopy  `json:"projects"`
	Skills    portfolio.SectionCopy  `json:"skills"`
	Services  portfolio.SectionCopy  `json:"services"`
	Brand     portfolio.Brand        `json:"brand"`
	NavCTA    portfolio.CallToAction `json:"navCta"`
	Metadata  seo.Metadata           `json:"metadata"`
}

// Load returns a validated copy of the site content. Callers own the result;
// changing it does not affect later calls.
func Load() (Site, error) {
	site := Site{
		Portfolio: portfolio.Config{
			Personal:   clonePersonal(personalInfo),
			Projects:   cloneProjects(projects),
			Skills:     cloneSkills(skills),
			Services:   append([]portfolio.Service(nil), services...),
			Navigation: append([]portfolio.NavItem(nil), navigationItems...),
		},
		Hero:     heroCopy,
		Projects: projectsCopy,
		Skills:   skillsCopy,
		Services: servicesCopy,
		Brand:    brand,
		NavCTA:   navigationCTA,
		Metadata: cloneMetadata(metadata),
	}
	if err := site.Validate(); err != nil {
		return Site{}, err
	}
	return site, nil
}

// MustLoad is Load for callers that cannot continue with broken content.
func MustLoad() Site {
	site, err := Load()
	if err != nil {
		panic(err)
	}
	return site
}

// Validate checks the portfolio records and every copy block.
func (s Site) Validate() error {
	if err := portfolio.Validate(s.Portfolio); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	blocks := []any{s.Hero, s.Projects, s.Skills, s.Services, s.Brand, s.NavCTA}
	for _, b := range blocks {
		if err := portfolio.ValidateStruct(b); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalid, err)
		}
	}
	for _, item := range s.Portfolio.Navigation {
		if s.NavCTA.Href == item.Href() {
			return nil
		}
	}
	return fmt.Errorf("%w: navigation CTA %q does not target a navigation section", ErrInvalid, s.NavCTA.Href)
}

func clonePersonal(p portfolio.PersonalInfo) portfolio.PersonalInfo {
	p.SocialLinks = append([]portfolio.SocialLink(nil), p.SocialLinks...)
	return p
}

func cloneProjects(in []portfolio.Project) []portfolio.Project {
	out := make([]portfolio.Project, len(in))
	for i, p := range in {
		p.Tags = append([]string(nil), p.Tags...)
		out[i] = p
	}
	return out
}

func cloneSkills(in []portfolio.Skill) []portfolio.Skill {
	out := make([]portfolio.Skill, len(in))
	for i, s := range in {
		s.Items = append([]string(nil), s.Items...)
		out[i] = s
	}
	return out
}

func cloneMetadata(m seo.Metadata) seo.Metadata {
	m.Keywords = append([]string(nil), m.Keywords...)
	m.Authors = append([]seo.Author(nil), m.Authors...)
	return m
}
