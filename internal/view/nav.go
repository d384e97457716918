package view

import "github.com/lalitmohan/portfolio/internal/portfolio"

// ScrollThreshold is the vertical offset in pixels past which the navigation
// bar switches to its condensed style.
const ScrollThreshold = 20

const (
	navScrolledClass = "py-4 bg-white/70 backdrop-blur-xl border-b border-gray-100 shadow-sm"
	navTopClass      = "py-8 bg-transparent"
)

// NavState is the navigation bar's local UI state. The zero value is the state
// of a freshly mounted bar: at the top of the page with the menu closed.
type NavState struct {
	Scrolled bool
	MenuOpen bool
}

// OnScroll records a new scroll offset. Only the last offset matters.
func (s NavState) OnScroll(offsetY float64) NavState {
	s.Scrolled = offsetY > ScrollThreshold
	return s
}

// ToggleMenu flips the mobile menu.
func (s NavState) ToggleMenu() NavState {
	s.MenuOpen = !s.MenuOpen
	return s
}

// CloseMenu closes the mobile menu, as following one of its links does.
func (s NavState) CloseMenu() NavState {
	s.MenuOpen = false
	return s
}

// BarClass is the style for the current scroll position.
func (s NavState) BarClass() string {
	if s.Scrolled {
		return navScrolledClass
	}
	return navTopClass
}

// Navbar is the fixed navigation bar.
type Navbar struct {
	Brand           portfolio.Brand
	Items           []portfolio.NavItem
	CTA             Button
	State           NavState
	ScrollThreshold int
	ScrolledClass   string
	TopClass        string
	Class           string
}

// NewNavbar builds the bar in its initial state.
func NewNavbar(brand portfolio.Brand, items []portfolio.NavItem, cta portfolio.CallToAction) Navbar {
	return Navbar{
		Brand: brand,
		Items: items,
		CTA: Button{
			Label:   cta.Text,
			Href:    cta.Href,
			Variant: ButtonPrimary,
			Size:    ButtonSmall,
			Class:   "hover:shadow-xl hover:-translate-y-0.5",
		},
		ScrollThreshold: ScrollThreshold,
		ScrolledClass:   navScrolledClass,
		TopClass:        navTopClass,
	}
}
