package view

import (
	"io/fs"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lalitmohan/portfolio/internal/assets"
)

var (
	kebabTemplate = regexp.MustCompile(`^[a-z]+(-[a-z]+)*\.gohtml$`)
	goFileName    = regexp.MustCompile(`^[a-z0-9_]+\.go$`)
	defineAction  = regexp.MustCompile(`\{\{-?\s*define "([^"]+)"`)
	iconAction    = regexp.MustCompile(`icon "([^"]+)"`)
	classAttr     = regexp.MustCompile(`class="([^"]*)"`)
)

var allowedVariants = map[string]bool{
	"sm": true, "md": true, "lg": true, "xl": true, "2xl": true,
	"hover": true, "active": true, "focus": true, "group-hover": true, "selection": true,
}

func readTemplates(t *testing.T) map[string]string {
	t.Helper()
	entries, err := fs.ReadDir(TemplateFS(), ".")
	require.NoError(t, err)
	out := make(map[string]string, len(entries))
	for _, e := range entries {
		raw, err := fs.ReadFile(TemplateFS(), e.Name())
		require.NoError(t, err)
		out[e.Name()] = string(raw)
	}
	return out
}

func TestTemplates_OneComponentPerKebabFile(t *testing.T) {
	for name, src := range readTemplates(t) {
		assert.Regexp(t, kebabTemplate, name)
		defines := defineAction.FindAllStringSubmatch(src, -1)
		require.Len(t, defines, 1, name)
		assert.Equal(t, strings.TrimSuffix(name, ".gohtml"), defines[0][1], name)
	}
}

func TestTemplates_RequiredComponents(t *testing.T) {
	tmpl, err := ParseTemplates()
	require.NoError(t, err)
	for _, name := range []string{
		RootTemplate, "page", "navbar", "footer", "button", "heading", "social-links",
		"project-card", "skill-card", "hero", "projects-section", "skills-section",
		"services-section", "contact-section",
	} {
		assert.NotNil(t, tmpl.Lookup(name), name)
	}
}

func TestTemplates_IconsExist(t *testing.T) {
	manifest, err := assets.Manifest()
	require.NoError(t, err)
	for name, src := range readTemplates(t) {
		for _, m := range iconAction.FindAllStringSubmatch(src, -1) {
			assert.Contains(t, manifest, assets.IconPath(m[1]), "%s uses icon %q", name, m[1])
		}
	}
}

func TestPage_UtilityClasses(t *testing.T) {
	out, _ := renderPage(t)
	attrs := classAttr.FindAllStringSubmatch(out, -1)
	require.NotEmpty(t, attrs)

	for _, attr := range attrs {
		tokens := strings.Fields(attr[1])
		responsiveGrid, plainGrid := false, false
		for _, tok := range tokens {
			parts := strings.Split(tok, ":")
			for _, variant := range parts[:len(parts)-1] {
				assert.True(t, allowedVariants[variant], "unexpected variant %q in %q", variant, tok)
			}
			utility := parts[len(parts)-1]
			if strings.HasPrefix(utility, "grid-cols-") {
				if len(parts) > 1 {
					responsiveGrid = true
				} else {
					plainGrid = true
				}
			}
		}
		if plainGrid {
			assert.True(t, responsiveGrid, "grid without a breakpoint variant: %q", attr[1])
		}
	}
}

func TestRepo_GoFileNames(t *testing.T) {
	root := filepath.Join("..", "..")
	err := filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		name := d.Name()
		if d.IsDir() {
			if p != root && (strings.HasPrefix(name, "_") || strings.HasPrefix(name, ".")) {
				return filepath.SkipDir
			}
			return nil
		}
		if filepath.Ext(name) == ".go" {
			assert.Regexp(t, goFileName, name, p)
		}
		return nil
	})
	require.NoError(t, err)
}
