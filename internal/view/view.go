package view

import (
	"embed"
	"fmt"
	"html/template"
	"net/http"

	"github.com/brookxc/etmenu/pkg/colorutil"
	"github.com/brookxc/etmenu/pkg/format"
	"github.com/brookxc/etmenu/pkg/logger"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// Renderer executes the embedded page templates
type Renderer struct {
	templates *template.Template
	logger    *logger.Logger
}

// NewRenderer parses the embedded templates with the price and color helpers
// available as template functions.
func NewRenderer(colors *colorutil.Deriver, log *logger.Logger) (*Renderer, error) {
	funcs := template.FuncMap{
		"formatPrice": format.Price,
		"lighten":     colors.Lighten,
		"darken":      colors.Darken,
	}

	templates, err := template.New("").Funcs(funcs).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %v", err)
	}

	return &Renderer{
		templates: templates,
		logger:    log.WithComponent("view"),
	}, nil
}

// Render writes a page template. Every page reflects live store data
// (lock state, menu edits), so responses are marked uncacheable.
func (r *Renderer) Render(w http.ResponseWriter, statusCode int, name string, data interface{}) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(statusCode)

	if err := r.templates.ExecuteTemplate(w, name, data); err != nil {
		r.logger.Error("Failed to render template", "template", name, "error", err)
	}
}

// StaticHandler serves the embedded stylesheet and scripts under /static/
func StaticHandler() http.Handler {
	return http.FileServer(http.FS(staticFS))
}
