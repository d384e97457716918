package view

import (
	"fmt"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/lalitmohan/portfolio/internal/assets"
	"github.com/lalitmohan/portfolio/internal/content"
	"github.com/lalitmohan/portfolio/internal/portfolio"
	"github.com/lalitmohan/portfolio/internal/seo"
)

var upper = cases.Upper(language.English)

// Footer is the closing strip of the page.
type Footer struct {
	Copyright       string
	EstablishedYear string
	Location        string
}

// NewFooter builds the footer for the given year.
func NewFooter(info portfolio.PersonalInfo, year int) Footer {
	return Footer{
		Copyright:       fmt.Sprintf("© %d %s — %s", year, upper.String(info.Name), upper.String(info.Title)),
		EstablishedYear: info.EstablishedYear,
		Location:        upper.String(info.Location),
	}
}

// Page is the whole document, sections in render order.
type Page struct {
	Meta       seo.Metadata
	Stylesheet string
	Script     string
	Favicon    string

	Navbar   Navbar
	Hero     Hero
	Projects ProjectsSection
	Skills   SkillsSection
	Services ServicesSection
	Contact  ContactSection
	Footer   Footer
}

// SectionIDs returns the ids of the anchored sections in page order.
func (p Page) SectionIDs() []string {
	return []string{p.Projects.ID, p.Skills.ID, p.Services.ID, p.Contact.ID}
}

// BuildPage turns the site content into the page model. now only feeds the
// footer year.
func BuildPage(site content.Site, now time.Time, md *Markdown) (Page, error) {
	projects, err := newProjectsSection(site.Portfolio.Projects, site.Projects, md)
	if err != nil {
		return Page{}, err
	}
	services, err := newServicesSection(site.Portfolio.Services, site.Services, md)
	if err != nil {
		return Page{}, err
	}
	info := site.Portfolio.Personal
	return Page{
		Meta:       site.Metadata,
		Stylesheet: assets.URL("css/site.css"),
		Script:     assets.URL("js/navbar.js"),
		Favicon:    assets.URL("logos/monogram.svg"),
		Navbar:     NewNavbar(site.Brand, site.Portfolio.Navigation, site.NavCTA),
		Hero:       newHero(info, site.Hero),
		Projects:   projects,
		Skills:     newSkillsSection(site.Portfolio.Skills, site.Skills),
		Services:   services,
		Contact:    newContactSection(info, site.Hero),
		Footer:     NewFooter(info, now.Year()),
	}, nil
}
