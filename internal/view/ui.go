package view

import (
	"html/template"
	"strings"

	"github.com/lalitmohan/portfolio/internal/portfolio"
)

// ButtonVariant selects the button palette.
type ButtonVariant string

const (
	ButtonPrimary   ButtonVariant = "primary"
	ButtonSecondary ButtonVariant = "secondary"
	ButtonOutline   ButtonVariant = "outline"
)

// ButtonSize selects padding and type scale.
type ButtonSize string

const (
	ButtonSmall  ButtonSize = "sm"
	ButtonMedium ButtonSize = "md"
	ButtonLarge  ButtonSize = "lg"
)

const buttonBaseClass = "font-bold uppercase tracking-widest transition-all flex items-center justify-center gap-3 rounded-full"

var buttonVariantClass = map[ButtonVariant]string{
	ButtonPrimary:   "bg-black text-white hover:scale-[1.02] active:scale-95 shadow-2xl",
	ButtonSecondary: "bg-white border-2 border-black text-black hover:bg-black hover:text-white",
	ButtonOutline:   "bg-transparent border-2 border-black text-black hover:bg-black hover:text-white",
}

var buttonSizeClass = map[ButtonSize]string{
	ButtonSmall:  "px-6 py-2.5 text-xs",
	ButtonMedium: "px-10 py-5 text-sm",
	ButtonLarge:  "px-12 py-6 text-base",
}

// Button renders as a link when it has an href and is enabled, otherwise as a
// <button>. Icon names a trailing icon.
type Button struct {
	Label    string
	Variant  ButtonVariant
	Size     ButtonSize
	Href     string
	Disabled bool
	Class    string
	Icon     string
	IconSize int
}

// IsLink reports whether the button renders as an anchor.
func (b Button) IsLink() bool {
	return b.Href != "" && !b.Disabled
}

// Classes is the full class list. Unknown variants and sizes fall back to
// primary and medium.
func (b Button) Classes() string {
	variant, ok := buttonVariantClass[b.Variant]
	if !ok {
		variant = buttonVariantClass[ButtonPrimary]
	}
	size, ok := buttonSizeClass[b.Size]
	if !ok {
		size = buttonSizeClass[ButtonMedium]
	}
	state := "cursor-pointer"
	if b.Disabled {
		state = "opacity-50 cursor-not-allowed"
	}
	return joinClasses(buttonBaseClass, variant, size, b.Class, state)
}

// SocialVariant selects how a social link list is styled.
type SocialVariant string

const (
	SocialDefault SocialVariant = "default"
	SocialFooter  SocialVariant = "footer"
	SocialHero    SocialVariant = "hero"
)

// PlatformIcon names the icon drawn for a platform.
func PlatformIcon(p portfolio.Platform) string {
	switch p {
	case portfolio.PlatformGitHub:
		return "github"
	case portfolio.PlatformLinkedIn:
		return "linkedin"
	case portfolio.PlatformEmail:
		return "mail"
	case portfolio.PlatformTwitter:
		return "twitter"
	default:
		return ""
	}
}

// SocialLink is one entry of a SocialLinks list.
type SocialLink struct {
	portfolio.SocialLink
	Icon string
}

// SocialLinks is a row of profile links. The footer variant shows labels,
// the others show platform icons.
type SocialLinks struct {
	Links   []SocialLink
	Variant SocialVariant
	Class   string
}

// NewSocialLinks builds a list in the given variant.
func NewSocialLinks(links []portfolio.SocialLink, variant SocialVariant, class string) SocialLinks {
	out := SocialLinks{Variant: variant, Class: class}
	for _, l := range links {
		out.Links = append(out.Links, SocialLink{SocialLink: l, Icon: PlatformIcon(l.Platform)})
	}
	return out
}

// ShowLabels reports whether links render their text label instead of an icon.
func (s SocialLinks) ShowLabels() bool {
	return s.Variant == SocialFooter
}

// ContainerClass is the class of the wrapping element.
func (s SocialLinks) ContainerClass() string {
	if s.Variant == SocialFooter {
		return joinClasses("flex gap-12", s.Class)
	}
	return joinClasses("flex items-center gap-6", s.Class)
}

// LinkClass is the class of each anchor.
func (s SocialLinks) LinkClass() string {
	if s.Variant == SocialFooter {
		return "font-bold uppercase tracking-[0.2em] text-xs hover:text-blue-600 transition-colors"
	}
	return "text-gray-400 hover:text-black cursor-pointer transition-colors"
}

// ProjectCard renders one project.
type ProjectCard struct {
	Project     portfolio.Project
	Description template.HTML
	Class       string
}

// SkillCard renders one skill.
type SkillCard struct {
	Skill portfolio.Skill
	Icon  string
	Class string
}

// skillIcons maps lower-cased skill names to icons.
var skillIcons = map[string]string{
	"frontend": "layers",
	"backend":  "terminal",
	"ml/ai":    "sparkles",
	"cloud":    "database",
}

// SkillIcon returns the icon for a skill: its own when set, else one picked
// from the name, else "terminal".
func SkillIcon(s portfolio.Skill) string {
	if s.Icon != "" {
		return s.Icon
	}
	if icon, ok := skillIcons[strings.ToLower(s.Name)]; ok {
		return icon
	}
	return "terminal"
}

func joinClasses(parts ...string) string {
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return strings.Join(out, " ")
}
