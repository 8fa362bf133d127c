package pages

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"time"

	"directory-server/config"
	services "directory-server/service"
)

//go:embed templates/*.html
var templateFS embed.FS

var pageTemplates = []string{"home", "state", "city", "business"}

// Document wraps a page with the data the shared layout needs.
type Document struct {
	Title    string
	SiteName string
	Year     int
	Page     Page
}

// Renderer executes composed pages through the embedded HTML templates.
type Renderer struct {
	templates map[string]*template.Template
	now       func() time.Time
}

// NewRenderer parses every page template together with the layout and
// shared partials.
func NewRenderer() (*Renderer, error) {
	funcs := template.FuncMap{
		"isFull": func(s services.StarState) bool { return s == services.StarFull },
	}

	r := &Renderer{templates: make(map[string]*template.Template, len(pageTemplates)), now: time.Now}
	for _, name := range pageTemplates {
		t, err := template.New(name).Funcs(funcs).ParseFS(templateFS,
			"templates/layout.html",
			"templates/partials.html",
			"templates/"+name+".html",
		)
		if err != nil {
			return nil, fmt.Errorf("failed to parse %s template: %w", name, err)
		}
		r.templates[name] = t
	}
	return r, nil
}

// Render writes the full HTML document for page. Output is buffered so a
// template error never leaves a half-written response.
func (r *Renderer) Render(w io.Writer, page Page) error {
	t, ok := r.templates[page.TemplateName()]
	if !ok {
		return fmt.Errorf("no template named %q", page.TemplateName())
	}

	doc := Document{
		Title:    page.PageTitle() + " | " + config.SITE_NAME,
		SiteName: config.SITE_NAME,
		Year:     r.now().Year(),
		Page:     page,
	}

	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "layout", doc); err != nil {
		return fmt.Errorf("failed to render %s: %w", page.TemplateName(), err)
	}
	_, err := buf.WriteTo(w)
	return err
}
