// Package web renders the HTML pages of the directory.
package web

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"path"
	"slices"
	"strings"
	"time"

	"fyyur/internal/forms"
)

//go:embed templates
var files embed.FS

const (
	layoutMedium = "Mon 01, 02, 2006 3:04PM"
	layoutFull   = "Monday January, 2, 2006 at 3:04PM"
)

// Page is what every template receives.
type Page struct {
	Title   string
	Flashes []string
	Data    any
}

// Renderer holds one parsed template set per page.
type Renderer struct {
	pages map[string]*template.Template
}

// New parses the embedded layout and pages.
func New() (*Renderer, error) {
	names, err := fs.Glob(files, "templates/pages/*.html")
	if err != nil {
		return nil, fmt.Errorf("list templates: %w", err)
	}

	r := &Renderer{pages: make(map[string]*template.Template, len(names))}
	for _, file := range names {
		name := strings.TrimSuffix(path.Base(file), ".html")
		tmpl, err := template.New(name).Funcs(funcs()).ParseFS(files, "templates/layout.html", file)
		if err != nil {
			return nil, fmt.Errorf("parse template %s: %w", name, err)
		}
		r.pages[name] = tmpl
	}
	return r, nil
}

// Render executes the named page into w.
func (r *Renderer) Render(w io.Writer, name string, page Page) error {
	tmpl, ok := r.pages[name]
	if !ok {
		return fmt.Errorf("unknown template %q", name)
	}
	if err := tmpl.ExecuteTemplate(w, "layout", page); err != nil {
		return fmt.Errorf("render %s: %w", name, err)
	}
	return nil
}

// Pages lists the names of the parsed pages.
func (r *Renderer) Pages() []string {
	names := make([]string, 0, len(r.pages))
	for name := range r.pages {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

func funcs() template.FuncMap {
	return template.FuncMap{
		"datetime": FormatDatetime,
		"join":     strings.Join,
		"contains": func(list []string, s string) bool { return slices.Contains(list, s) },
		"genres":   func() []string { return forms.Genres },
		"states":   func() []string { return forms.States },
	}
}

// FormatDatetime renders t in the server's zone using the "full" or
// "medium" (default) style.
func FormatDatetime(t time.Time, format string) string {
	layout := layoutMedium
	if format == "full" {
		layout = layoutFull
	}
	return t.Local().Format(layout)
}
