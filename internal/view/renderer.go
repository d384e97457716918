// Package view renders the portfolio page: the root layout, the navigation bar
// and footer, the content sections and the leaf cards they are built from.
// Each component is a Go model plus one template under templates/.
package view

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"time"

	"github.com/lalitmohan/portfolio/internal/assets"
	"github.com/lalitmohan/portfolio/internal/content"
)

//go:embed templates/*.gohtml
var templateFiles embed.FS

// RootTemplate is the template that renders a whole document.
const RootTemplate = "layout"

// TemplateFS exposes the component templates.
func TemplateFS() fs.FS {
	sub, err := fs.Sub(templateFiles, "templates")
	if err != nil {
		panic(fmt.Sprintf("view templates: %v", err))
	}
	return sub
}

// Funcs are the helpers available to every template.
func Funcs() template.FuncMap {
	return template.FuncMap{
		"icon": assets.Icon,
	}
}

// ParseTemplates parses every component template.
func ParseTemplates() (*template.Template, error) {
	tmpl, err := template.New(RootTemplate).Funcs(Funcs()).ParseFS(TemplateFS(), "*.gohtml")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return tmpl, nil
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithClock sets the time source used for the footer year.
func WithClock(now func() time.Time) Option {
	return func(r *Renderer) { r.now = now }
}

// WithMarkdown replaces the description renderer.
func WithMarkdown(md *Markdown) Option {
	return func(r *Renderer) { r.md = md }
}

// Renderer renders the page built from one Site.
type Renderer struct {
	tmpl *template.Template
	page Page
	now  func() time.Time
	md   *Markdown
}

// NewRenderer parses the templates and builds the page model.
func NewRenderer(site content.Site, opts ...Option) (*Renderer, error) {
	r := &Renderer{now: time.Now, md: NewMarkdown()}
	for _, opt := range opts {
		opt(r)
	}
	tmpl, err := ParseTemplates()
	if err != nil {
		return nil, err
	}
	page, err := BuildPage(site, r.now(), r.md)
	if err != nil {
		return nil, fmt.Errorf("build page: %w", err)
	}
	r.tmpl = tmpl
	r.page = page
	return r, nil
}

// Page returns the page model.
func (r *Renderer) Page() Page {
	return r.page
}

// Render writes the full document.
func (r *Renderer) Render(w io.Writer) error {
	return r.RenderComponent(w, RootTemplate, r.page)
}

// RenderComponent renders one named component with the given model.
func (r *Renderer) RenderComponent(w io.Writer, name string, data any) error {
	// Render to a buffer first so a failing template never leaves half a page.
	var buf bytes.Buffer
	if err := r.tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		return fmt.Errorf("render %s: %w", name, err)
	}
	if _, err := buf.WriteTo(w); err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}
	return nil
}

// Bytes renders the full document into memory.
func (r *Renderer) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	if err := r.Render(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
