package view

import (
	"embed"
	"fmt"
	"html/template"
	"io"
)

//go:embed templates/*.html
var templates embed.FS

// Renderer writes [PageData] as an HTML document.
type Renderer struct {
	tmpl *template.Template
}

// NewRenderer parses the embedded page template.
func NewRenderer() (*Renderer, error) {
	tmpl, err := template.New("error_page.html").ParseFS(templates, "templates/error_page.html")
	if err != nil {
		return nil, fmt.Errorf("error parsing page template: %w", err)
	}
	return &Renderer{tmpl: tmpl}, nil
}

// Render executes the page template into w.
func (r *Renderer) Render(w io.Writer, page PageData) error {
	if err := r.tmpl.Execute(w, page); err != nil {
		return fmt.Errorf("error rendering page: %w", err)
	}
	return nil
}
