// Package assets embeds the static directory served under /static/.
package assets

import (
	"embed"
	"errors"
	"fmt"
	"html"
	"html/template"
	"io/fs"
	"path"
	"sort"
	"strconv"
	"strings"
)

//go:embed static
var static embed.FS

// ErrUnknownIcon is returned for icon names without a file under icons/.
var ErrUnknownIcon = errors.New("unknown icon")

// Vector asset directories. Each holds kebab-case .svg files only.
const (
	CategoryIcons = "icons"
	CategoryLogos = "logos"
)

// URLPrefix is where the static directory is mounted.
const URLPrefix = "/static/"

// FS returns the static directory with "static/" stripped.
func FS() fs.FS {
	sub, err := fs.Sub(static, "static")
	if err != nil {
		panic(fmt.Sprintf("static assets: %v", err))
	}
	return sub
}

// Categories maps each vector asset directory to its file names, sorted.
func Categories() (map[string][]string, error) {
	out := make(map[string][]string, 2)
	for _, dir := range []string{CategoryIcons, CategoryLogos} {
		entries, err := fs.ReadDir(FS(), dir)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", dir, err)
		}
		names := make([]string, 0, len(entries))
		for _, e := range entries {
			if !e.IsDir() {
				names = append(names, e.Name())
			}
		}
		sort.Strings(names)
		out[dir] = names
	}
	return out, nil
}

// Manifest lists every vector asset by its conventional path, e.g.
// "icons/github.svg".
func Manifest() ([]string, error) {
	cats, err := Categories()
	if err != nil {
		return nil, err
	}
	var paths []string
	for _, dir := range []string{CategoryIcons, CategoryLogos} {
		for _, name := range cats[dir] {
			paths = append(paths, path.Join(dir, name))
		}
	}
	return paths, nil
}

// URL returns the public URL of an asset path.
func URL(assetPath string) string {
	return URLPrefix + strings.TrimPrefix(assetPath, "/")
}

// IconPath returns the conventional path of a named icon.
func IconPath(name string) string {
	return path.Join(CategoryIcons, name+".svg")
}

// Icon returns the inline markup of icons/<name>.svg sized to size pixels with
// class applied to the root element. A size of zero keeps the file's own size.
func Icon(name string, size int, class string) (template.HTML, error) {
	raw, err := fs.ReadFile(FS(), IconPath(name))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("%w: %q", ErrUnknownIcon, name)
		}
		return "", fmt.Errorf("read icon %q: %w", name, err)
	}
	svg := strings.TrimSpace(string(raw))
	if size > 0 {
		dim := strconv.Itoa(size)
		svg = strings.Replace(svg, `width="24" height="24"`, `width="`+dim+`" height="`+dim+`"`, 1)
	}
	attrs := `aria-hidden="true"`
	if class != "" {
		attrs = `class="` + html.EscapeString(class) + `" ` + attrs
	}
	svg = strings.Replace(svg, "<svg ", "<svg "+attrs+" ", 1)
	return template.HTML(svg), nil
}
