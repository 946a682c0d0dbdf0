// Package view renders the server-side HTML pages.
package view

import (
	"embed"
	"html/template"
	"io"
	"io/fs"
	"net/url"
	"path"
	"strings"
	"time"

	"agrifarma/internal/delivery/web/flash"
	"agrifarma/internal/domain/entity"
	"agrifarma/internal/errors"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

const layoutFile = "templates/layout.html"

//go:embed templates/*.html
var templateFS embed.FS

// Page is the data every template receives. Data holds the page-specific view model.
type Page struct {
	Title     string
	Session   *entity.Session
	CartCount int
	Flashes   []flash.Message
	CSRFToken string
	Data      any
}

// LoggedIn reports whether the page is rendered for a member.
func (p *Page) LoggedIn() bool {
	return p.Session != nil
}

// Renderer implements echo.Renderer with one template set per page.
type Renderer struct {
	pages map[string]*template.Template
}

// New parses the layout together with every page template.
func New() (*Renderer, error) {
	files, err := fs.Glob(templateFS, "templates/*.html")
	if err != nil {
		return nil, errors.Wrap(err, "failed to list templates")
	}

	pages := make(map[string]*template.Template, len(files))
	for _, file := range files {
		if file == layoutFile {
			continue
		}

		name := strings.TrimSuffix(path.Base(file), ".html")
		tmpl, err := template.New(name).Funcs(funcs).ParseFS(templateFS, layoutFile, file)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to parse template %s", name)
		}
		pages[name] = tmpl
	}

	return &Renderer{pages: pages}, nil
}

// Render writes the named page wrapped in the layout.
func (r *Renderer) Render(w io.Writer, name string, data any, _ echo.Context) error {
	tmpl, ok := r.pages[name]
	if !ok {
		return errors.Errorf("template %q not found", name)
	}

	return errors.WithStack(tmpl.ExecuteTemplate(w, "layout", data))
}

// Has reports whether a page template exists.
func (r *Renderer) Has(name string) bool {
	_, ok := r.pages[name]

	return ok
}

var funcs = template.FuncMap{
	"money": func(d decimal.Decimal) string {
		return d.StringFixed(2)
	},
	"date": func(t time.Time) string {
		return t.Format("Jan 02, 2006")
	},
	"datetime": func(t *time.Time) string {
		if t == nil {
			return ""
		}

		return t.Format("Jan 02, 2006 15:04")
	},
	"upload": func(key string) string {
		return "/uploads/" + url.PathEscape(key)
	},
	"query": url.QueryEscape,
	"excerpt": func(s string, n int) string {
		runes := []rune(s)
		if len(runes) <= n {
			return s
		}

		return string(runes[:n]) + "..."
	},
	"tags": func(s string) []string {
		var out []string
		for _, tag := range strings.Split(s, ",") {
			if tag = strings.TrimSpace(tag); tag != "" {
				out = append(out, tag)
			}
		}

		return out
	},
}
