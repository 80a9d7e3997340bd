// Package api provides JSON HTTP handlers for the theme preference.
package api

import (
	"net/http"

	log "github.com/go-pkgz/lgr"
	"github.com/go-pkgz/rest"
	"github.com/go-pkgz/routegroup"

	"github.com/umputun/themer/app/prefs"
	"github.com/umputun/themer/app/server/internal"
	"github.com/umputun/themer/app/theme"
)

// Handler handles API requests for /api/* endpoints.
type Handler struct {
	storage internal.StorageFunc
}

// New creates a new API handler.
func New(storage internal.StorageFunc) *Handler {
	return &Handler{storage: storage}
}

// Register registers API routes on the given router.
func (h *Handler) Register(r *routegroup.Bundle) {
	r.HandleFunc("GET /theme", h.handleGet)
	r.HandleFunc("POST /theme/toggle", h.handleToggle)
}

// themeResponse describes the active theme. API clients apply Href themselves.
type themeResponse struct {
	Theme  string `json:"theme"`
	IsDark bool   `json:"is_dark"`
	Label  string `json:"label"`
	Icon   string `json:"icon"`
	Href   string `json:"href"`
	Stored bool   `json:"stored"` // an explicit choice is persisted
}

// handleGet returns the visitor's theme.
// GET /api/theme
func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	theme.AdvertiseHint(w)
	store := prefs.New(h.storage(w, r))
	_, stored := store.Get()
	tg := theme.New(store, headless{}, theme.FromRequest(r))
	rest.RenderJSON(w, makeResponse(tg, stored))
}

// handleToggle switches the visitor's theme and returns the new one.
// POST /api/theme/toggle
func (h *Handler) handleToggle(w http.ResponseWriter, r *http.Request) {
	store := prefs.New(h.storage(w, r))
	tg := theme.New(store, headless{}, theme.FromRequest(r))
	tg.Toggle()
	_, stored := store.Get()
	log.Printf("[DEBUG] theme toggled to %s via api, stored=%t", tg.Theme(), stored)
	rest.RenderJSON(w, makeResponse(tg, stored))
}

func makeResponse(tg *theme.Toggle, stored bool) themeResponse {
	return themeResponse{
		Theme:  tg.Name(),
		IsDark: tg.IsDark(),
		Label:  tg.Label(),
		Icon:   tg.Icon(),
		Href:   theme.Href(tg.Theme()),
		Stored: stored,
	}
}

// headless is a document without markup, API responses carry the stylesheet href instead.
type headless struct{}

func (headless) RemoveMarked(string) int { return 0 }
func (headless) UpsertStylesheet(string, string) {}
