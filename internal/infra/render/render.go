package render

//go:generate mockgen -source=render.go -destination=../../../test/unit/doubles/infra/render/render_mock.go -package=render -mock_names=Renderer=MockRenderer

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"log/slog"
	"net/http"
	"path"
	"strings"
	"time"
)

//go:embed templates
var templatesFS embed.FS

const (
	_layoutTemplate = "base"
	_pagesDir       = "templates/pages"
)

// Renderer writes full pages and partial fragments.
type Renderer interface {
	Render(w http.ResponseWriter, status int, view string, data map[string]any)
	RenderFragment(w http.ResponseWriter, status int, fragment string, data map[string]any)
}

var _ Renderer = (*TemplateRenderer)(nil)

type TemplateRenderer struct {
	views     map[string]*template.Template
	fragments *template.Template
}

// NewTemplateRenderer parses every embedded page against the shared layout and
// partials. A view is named by its path under pages without the extension,
// e.g. "admin/dashboard".
func NewTemplateRenderer() (*TemplateRenderer, error) {
	return newTemplateRenderer(templatesFS)
}

func newTemplateRenderer(source fs.FS) (*TemplateRenderer, error) {
	shared, err := template.New("").
		Funcs(templateFuncs()).
		ParseFS(source, "templates/layout/*.html", "templates/partials/*.html")
	if err != nil {
		return nil, fmt.Errorf("parsing layout: %w", err)
	}

	views := make(map[string]*template.Template)
	err = fs.WalkDir(source, _pagesDir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || path.Ext(p) != ".html" {
			return nil
		}

		page, err := shared.Clone()
		if err != nil {
			return fmt.Errorf("cloning layout: %w", err)
		}

		if _, err := page.ParseFS(source, p); err != nil {
			return fmt.Errorf("parsing %s: %w", p, err)
		}

		name := strings.TrimSuffix(strings.TrimPrefix(p, _pagesDir+"/"), ".html")
		views[name] = page
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &TemplateRenderer{
		views:     views,
		fragments: shared,
	}, nil
}

func (r *TemplateRenderer) Render(w http.ResponseWriter, status int, view string, data map[string]any) {
	page, ok := r.views[view]
	if !ok {
		slog.Error("rendering view", slog.String("view", view), slog.String("error", "unknown view"))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	r.execute(w, status, page, _layoutTemplate, data)
}

func (r *TemplateRenderer) RenderFragment(w http.ResponseWriter, status int, fragment string, data map[string]any) {
	if r.fragments.Lookup(fragment) == nil {
		slog.Error("rendering fragment", slog.String("fragment", fragment), slog.String("error", "unknown fragment"))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	r.execute(w, status, r.fragments, fragment, data)
}

func (r *TemplateRenderer) execute(w http.ResponseWriter, status int, t *template.Template, name string, data map[string]any) {
	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, name, data); err != nil {
		slog.Error("executing template", slog.String("template", name), slog.String("error", err.Error()))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	buf.WriteTo(w)
}

func templateFuncs() template.FuncMap {
	return template.FuncMap{
		"datetime": func(t time.Time) string {
			if t.IsZero() {
				return ""
			}
			return t.Format("2006-01-02 15:04")
		},
		// errorFor tolerates a missing error map so pages can omit it.
		"errorFor": func(errs any, field string) string {
			if m, ok := errs.(map[string]string); ok {
				return m[field]
			}
			return ""
		},
		"valueFor": func(values any, key string) string {
			if m, ok := values.(map[string]string); ok {
				return m[key]
			}
			return ""
		},
		"plural": func(n int, singular, plural string) string {
			if n == 1 {
				return singular
			}
			return plural
		},
	}
}
