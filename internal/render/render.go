// Package render turns page state into the HTML page.
package render

import (
	"embed"
	"fmt"
	"html/template"
	"io"

	"github.com/Masterminds/sprig/v3"
)

//go:embed templates/*.html.tmpl
var templates embed.FS

// Renderer executes the page template
type Renderer struct {
	tmpl *template.Template
}

// New parses the embedded templates
func New() (*Renderer, error) {
	tmpl, err := template.New("page").
		Funcs(sprig.FuncMap()).
		ParseFS(templates, "templates/*.html.tmpl")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}
	return &Renderer{tmpl: tmpl}, nil
}

// Render writes the full page for v
func (r *Renderer) Render(w io.Writer, v View) error {
	if err := r.tmpl.ExecuteTemplate(w, "page.html.tmpl", v); err != nil {
		return fmt.Errorf("failed to render page: %w", err)
	}
	return nil
}
