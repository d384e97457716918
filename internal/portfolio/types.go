// Package portfolio describes the shape of the site's content: the biography,
// projects, skills, services and navigation entries, plus the copy blocks that
// decorate each section.
package portfolio

import "strings"

// Platform identifies a social profile kind.
type Platform string

const (
	PlatformGitHub   Platform = "github"
	PlatformLinkedIn Platform = "linkedin"
	PlatformTwitter  Platform = "twitter"
	PlatformEmail    Platform = "email"
)

// Platforms returns every supported platform in display order.
func Platforms() []Platform {
	return []Platform{PlatformGitHub, PlatformLinkedIn, PlatformTwitter, PlatformEmail}
}

// Valid reports whether p is one of the supported platforms.
func (p Platform) Valid() bool {
	for _, known := range Platforms() {
		if p == known {
			return true
		}
	}
	return false
}

// External reports whether links for this platform leave the page in a new tab.
// Email links open the mail client in place.
func (p Platform) External() bool {
	return p != PlatformEmail
}

// SkillLevel is a proficiency grade.
type SkillLevel string

const (
	LevelBeginner   SkillLevel = "Beginner"
	LevelProficient SkillLevel = "Proficient"
	LevelAdvanced   SkillLevel = "Advanced"
	LevelExpert     SkillLevel = "Expert"
)

// SkillLevels returns every proficiency grade from lowest to highest.
func SkillLevels() []SkillLevel {
	return []SkillLevel{LevelBeginner, LevelProficient, LevelAdvanced, LevelExpert}
}

// Valid reports whether l is a known grade.
func (l SkillLevel) Valid() bool {
	for _, known := range SkillLevels() {
		if l == known {
			return true
		}
	}
	return false
}

// SocialLink is an outbound profile link.
type SocialLink struct {
	Platform Platform `json:"platform" validate:"required,platform"`
	URL      string   `json:"url" validate:"required,url"`
	Label    string   `json:"label" validate:"required"`
}

// PersonalInfo holds the biography shown in the hero, contact and footer.
type PersonalInfo struct {
	Name            string       `json:"name" validate:"required"`
	Title           string       `json:"title" validate:"required"`
	Email           string       `json:"email" validate:"required,email"`
	Bio             string       `json:"bio" validate:"required"`
	Availability    string       `json:"availability" validate:"required"`
	Location        string       `json:"location" validate:"required"`
	EstablishedYear string       `json:"establishedYear" validate:"required"`
	SocialLinks     []SocialLink `json:"socialLinks" validate:"required,min=1,unique=Platform,dive"`
}

// MailTo returns the mailto link for the contact email.
func (p PersonalInfo) MailTo() string {
	return "mailto:" + p.Email
}

// Project is a single portfolio entry.
type Project struct {
	ID          int      `json:"id" validate:"gt=0"`
	Title       string   `json:"title" validate:"required"`
	Category    string   `json:"category" validate:"required"`
	Description string   `json:"description" validate:"required"`
	Tags        []string `json:"tags" validate:"required,min=1,dive,required"`
	Color       string   `json:"color" validate:"required,startswith=from-"` // gradient stops
	GitHubURL   string   `json:"githubUrl,omitempty" validate:"omitempty,url"`
	LiveURL     string   `json:"liveUrl,omitempty" validate:"omitempty,url"`
	Featured    bool     `json:"featured"`
}

// HasSource reports whether the project links to its source code.
func (p Project) HasSource() bool { return p.GitHubURL != "" }

// HasDemo reports whether the project links to a live demo.
func (p Project) HasDemo() bool { return p.LiveURL != "" }

// Skill is an expertise area. Icon names an asset under icons/; when empty the
// skills section picks one from the skill name.
type Skill struct {
	Name  string     `json:"name" validate:"required"`
	Level SkillLevel `json:"level" validate:"required,skill_level"`
	Icon  string     `json:"icon,omitempty"`
	Items []string   `json:"items" validate:"required,min=1,dive,required"`
	Color string     `json:"color" validate:"required,startswith=bg-"`
}

// Service is an offering listed in the services section.
type Service struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description" validate:"required"`
	Icon        string `json:"icon,omitempty"`
}

// NavItem is an in-page navigation entry. ID matches a section element id.
type NavItem struct {
	Label string `json:"label" validate:"required"`
	ID    string `json:"id" validate:"required,anchor"`
}

// Href returns the fragment link for the item.
func (n NavItem) Href() string {
	return "#" + n.ID
}

// Config is the complete portfolio content.
type Config struct {
	Personal   PersonalInfo `json:"personal"`
	Projects   []Project    `json:"projects" validate:"required,min=1,unique=ID,dive"`
	Skills     []Skill      `json:"skills" validate:"required,min=1,unique=Name,dive"`
	Services   []Service    `json:"services" validate:"required,min=1,dive"`
	Navigation []NavItem    `json:"navigation" validate:"required,min=1,unique=ID,dive"`
}

// Project looks up a project by id.
func (c Config) Project(id int) (Project, bool) {
	for _, p := range c.Projects {
		if p.ID == id {
			return p, true
		}
	}
	return Project{}, false
}

// Featured returns the featured projects in authoring order.
func (c Config) Featured() []Project {
	var out []Project
	for _, p := range c.Projects {
		if p.Featured {
			out = append(out, p)
		}
	}
	return out
}

// Brand is the logo shown in the navigation bar.
type Brand struct {
	Initials string `json:"initials" validate:"required,max=3"`
	FullName string `json:"fullName" validate:"required"`
}

// CallToAction is a labelled link.
type CallToAction struct {
	Text string `json:"text" validate:"required"`
	Href string `json:"href" validate:"required"`
}

// HeroCopy is the text of the hero and contact sections.
type HeroCopy struct {
	Tagline             string `json:"tagline" validate:"required"`
	Description         string `json:"description"`
	AvailabilityDetails string `json:"availabilityDetails" validate:"required"`
	CTAText             string `json:"ctaText" validate:"required"`
	ContactTitle        string `json:"contactTitle" validate:"required"`
	ContactSubtitle     string `json:"contactSubtitle"`
}

// SectionCopy is the heading block of a content section. ButtonText is only
// used by sections with a trailing button.
type SectionCopy struct {
	SectionTitle string `json:"sectionTitle" validate:"required"`
	Heading      string `json:"heading" validate:"required"`
	Description  string `json:"description,omitempty"`
	ButtonText   string `json:"buttonText,omitempty"`
}

// Words splits the heading on whitespace.
func (s SectionCopy) Words() []string {
	return strings.Fields(s.Heading)
}
