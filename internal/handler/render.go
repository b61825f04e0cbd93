package handler

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"

	"github.com/devdiary/devdiary-go/internal/middleware"
	"github.com/devdiary/devdiary-go/internal/model"
)

//go:embed templates/*.html
var templateFS embed.FS

var pageNames = []string{"home.html", "register.html", "login.html", "blog.html", "notes.html"}

// PageData is the view model shared by all pages.
type PageData struct {
	User     *model.User
	Flash    string
	Error    string
	Form     map[string]string
	Notes    []model.Note
	Next     string
	Remember bool
}

// Renderer executes the embedded page templates inside the common layout.
type Renderer struct {
	pages   map[string]*template.Template
	cookies middleware.Cookies
	log     *slog.Logger
}

// NewRenderer parses every page together with the layout once at startup.
func NewRenderer(cookies middleware.Cookies, log *slog.Logger) (*Renderer, error) {
	pages := make(map[string]*template.Template, len(pageNames))
	for _, name := range pageNames {
		t, err := template.New("layout.html").
			Option("missingkey=zero").
			ParseFS(templateFS, "templates/layout.html", "templates/"+name)
		if err != nil {
			return nil, fmt.Errorf("parse template %s: %w", name, err)
		}
		pages[name] = t
	}

	return &Renderer{pages: pages, cookies: cookies, log: log}, nil
}

// HTML renders page with status. Any pending flash message is consumed.
func (rd *Renderer) HTML(w http.ResponseWriter, r *http.Request, status int, page string, data PageData) {
	t, ok := rd.pages[page]
	if !ok {
		rd.ServerError(w, r, fmt.Errorf("unknown page %q", page))
		return
	}

	if data.Flash == "" {
		data.Flash = rd.cookies.PopFlash(w, r)
	}

	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		rd.ServerError(w, r, fmt.Errorf("render %s: %w", page, err))
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

// ServerError logs err and answers with a generic 500.
func (rd *Renderer) ServerError(w http.ResponseWriter, r *http.Request, err error) {
	rd.log.Error("request failed", "method", r.Method, "path", r.URL.Path, "error", err)
	http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}
