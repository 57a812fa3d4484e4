package dashboard

import (
	"embed"
	"fmt"
	"html/template"
	"io"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

//go:embed templates/*.html
var templateFiles embed.FS

var pages = []string{"list", "charts", "add", "edit", "delete"}

// partials are parsed into every page
var partials = []string{"templates/layout.html", "templates/app_fields.html"}

var funcs = template.FuncMap{
	"price": func(d decimal.Decimal) string {
		if d.IsZero() {
			return "Free"
		}
		return "$" + d.StringFixed(2)
	},
	"deref": func(s *string) string {
		if s == nil {
			return ""
		}
		return *s
	},
}

// templateRenderer holds one template set per page, each combined with the shared partials
type templateRenderer struct {
	templates map[string]*template.Template
}

func newTemplateRenderer() (*templateRenderer, error) {
	r := &templateRenderer{templates: make(map[string]*template.Template, len(pages))}
	for _, page := range pages {
		t, err := template.New("layout.html").Funcs(funcs).ParseFS(templateFiles, append(partials, "templates/"+page+".html")...)
		if err != nil {
			return nil, fmt.Errorf("could not parse template %s: %w", page, err)
		}
		r.templates[page] = t
	}
	return r, nil
}

func (r *templateRenderer) Render(w io.Writer, name string, data any, _ echo.Context) error {
	t, ok := r.templates[name]
	if !ok {
		return fmt.Errorf("unknown template %s", name)
	}
	return t.ExecuteTemplate(w, "layout.html", data)
}
