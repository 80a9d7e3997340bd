// Package web provides HTTP handlers for the documentation page and its theme toggle.
package web

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"

	"github.com/go-pkgz/routegroup"

	"github.com/umputun/themer/app/prefs"
	"github.com/umputun/themer/app/server/internal"
	"github.com/umputun/themer/app/theme"
)

//go:embed static
var staticFS embed.FS

//go:embed templates
var templatesFS embed.FS

// StaticFS returns the embedded static filesystem for external use.
func StaticFS() (fs.FS, error) {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		return nil, fmt.Errorf("failed to get static sub-filesystem: %w", err)
	}
	return sub, nil
}

// DefaultPage returns the embedded documentation page.
func DefaultPage() ([]byte, error) {
	data, err := templatesFS.ReadFile("templates/page.html")
	if err != nil {
		return nil, fmt.Errorf("read page.html: %w", err)
	}
	return data, nil
}

// Config holds web handler configuration.
type Config struct {
	BaseURL string
	Page    []byte // page markup, the embedded page if empty
}

// Handler handles web UI requests.
type Handler struct {
	storage internal.StorageFunc
	tmpl    *template.Template
	page    []byte
	baseURL string
}

// New creates a new web handler.
func New(storage internal.StorageFunc, cfg Config) (*Handler, error) {
	tmpl, err := parseTemplates()
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	page := cfg.Page
	if len(page) == 0 {
		if page, err = DefaultPage(); err != nil {
			return nil, err
		}
	}

	return &Handler{storage: storage, tmpl: tmpl, page: page, baseURL: cfg.BaseURL}, nil
}

// Register registers web UI routes on the given router.
func (h *Handler) Register(r *routegroup.Bundle) {
	r.HandleFunc("GET /{$}", h.handleIndex)
	r.HandleFunc("POST /web/theme", h.handleThemeToggle)
}

// parseTemplates parses all templates from embedded filesystem.
func parseTemplates() (*template.Template, error) {
	tmpl, err := template.ParseFS(templatesFS, "templates/toggle.html")
	if err != nil {
		return nil, fmt.Errorf("parse toggle.html: %w", err)
	}
	return tmpl, nil
}

// toggleData holds data passed to the toggle button template.
type toggleData struct {
	Label string
	Icon  string
	OOB   bool // render as htmx out-of-band swap
}

// pageState is the per-request page with its resolved theme.
type pageState struct {
	page   *theme.Page
	toggle *theme.Toggle
}

// resolve parses the page and resolves its theme for the request.
// A stored preference gets applied to the page here already.
func (h *Handler) resolve(w http.ResponseWriter, r *http.Request) (*pageState, error) {
	page, err := theme.ParsePage(bytes.NewReader(h.page))
	if err != nil {
		return nil, fmt.Errorf("failed to parse page: %w", err)
	}
	store := prefs.New(h.storage(w, r))
	return &pageState{page: page, toggle: theme.New(store, page, theme.FromRequest(r))}, nil
}

// renderToggle renders the toggle button for the current state.
func (h *Handler) renderToggle(tg *theme.Toggle, oob bool) (string, error) {
	var buf bytes.Buffer
	data := toggleData{Label: tg.Label(), Icon: tg.Icon(), OOB: oob}
	if err := h.tmpl.ExecuteTemplate(&buf, "toggle", data); err != nil {
		return "", fmt.Errorf("failed to execute toggle template: %w", err)
	}
	return buf.String(), nil
}

// url returns a URL path with the base URL prefix.
func (h *Handler) url(path string) string {
	return h.baseURL + path
}
