package server

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"

	"github.com/valpere/pereweb/internal/languages"
)

//go:embed templates/*.html
var templateFS embed.FS

// TemplateNotFoundError indicates a named view does not exist.
type TemplateNotFoundError struct {
	Name string
}

func (e *TemplateNotFoundError) Error() string {
	return fmt.Sprintf("template %q not found", e.Name)
}

// Renderer renders embedded HTML views.
type Renderer struct {
	templates *template.Template
}

func NewRenderer() (*Renderer, error) {
	funcs := template.FuncMap{
		"langName": languages.Name,
	}

	templates, err := template.New("").Funcs(funcs).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	return &Renderer{templates: templates}, nil
}

// Render executes the named view with data. Output is buffered so a
// mid-execution failure never leaves a half-written response.
func (r *Renderer) Render(w io.Writer, name string, data any) error {
	t := r.templates.Lookup(name)
	if t == nil {
		return &TemplateNotFoundError{Name: name}
	}

	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return fmt.Errorf("failed to render %s: %w", name, err)
	}

	_, err := buf.WriteTo(w)
	return err
}
