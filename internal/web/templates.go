package web

import (
	"embed"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"time"

	"github.com/dustin/go-humanize"
)

//go:embed templates/*.html
var templateFS embed.FS

// pages are the standalone views; each is parsed together with the
// shared layout.
var pages = []string{"index", "login", "register", "post"}

// Renderer executes the embedded HTML templates.
type Renderer struct {
	templates map[string]*template.Template
}

// NewRenderer parses all embedded templates.
func NewRenderer() (*Renderer, error) {
	funcs := template.FuncMap{
		// humantime renders a Unix timestamp as a relative time,
		// e.g. "3 minutes ago".
		"humantime": func(unix int64) string {
			return humanize.Time(time.Unix(unix, 0))
		},
		// add1 turns a zero-based range index into a ranking position.
		"add1": func(i int) int { return i + 1 },
	}

	templates := make(map[string]*template.Template, len(pages))
	for _, page := range pages {
		t, err := template.New("layout.html").Funcs(funcs).ParseFS(
			templateFS,
			"templates/layout.html",
			"templates/"+page+".html",
		)
		if err != nil {
			return nil, fmt.Errorf("failed to parse template %s: %w", page, err)
		}
		templates[page] = t
	}

	return &Renderer{templates: templates}, nil
}

// Render writes the named page with the given data and status code.
func (rd *Renderer) Render(w http.ResponseWriter, status int, page string, data any) {
	t, ok := rd.templates[page]
	if !ok {
		slog.Error("unknown template", "page", page)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := t.ExecuteTemplate(w, "layout.html", data); err != nil {
		// Headers are already out; nothing left to do but log.
		slog.Error("template execution failed", "page", page, "error", err)
	}
}
