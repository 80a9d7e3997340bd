package web

import (
	"net/http"

	log "github.com/go-pkgz/lgr"

	"github.com/umputun/themer/app/server/internal"
	"github.com/umputun/themer/app/theme"
)

// handleIndex renders the documentation page with the visitor's theme.
func (h *Handler) handleIndex(w http.ResponseWriter, r *http.Request) {
	theme.AdvertiseHint(w)

	st, err := h.resolve(w, r)
	if err != nil {
		log.Printf("[ERROR] %v", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	button, err := h.renderToggle(st.toggle, false)
	if err != nil {
		log.Printf("[ERROR] %v", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	ok, err := st.page.ReplaceByID(internal.ToggleButtonID, button)
	if err != nil {
		log.Printf("[ERROR] %v", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	if !ok {
		log.Printf("[DEBUG] page has no #%s element, toggle not rendered", internal.ToggleButtonID)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := st.page.Render(w); err != nil {
		log.Printf("[WARN] failed to write page: %v", err)
	}
}

// handleThemeToggle switches the visitor's theme.
// htmx requests get the reconciled <head> content plus the refreshed button as out-of-band swap,
// plain form posts are redirected back to the page.
func (h *Handler) handleThemeToggle(w http.ResponseWriter, r *http.Request) {
	st, err := h.resolve(w, r)
	if err != nil {
		log.Printf("[ERROR] %v", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	st.toggle.Toggle()
	log.Printf("[DEBUG] theme toggled to %s", st.toggle.Theme())

	if !internal.IsHTMX(r) {
		http.Redirect(w, r, h.url("/"), http.StatusSeeOther)
		return
	}

	button, err := h.renderToggle(st.toggle, true)
	if err != nil {
		log.Printf("[ERROR] %v", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := st.page.RenderHead(w); err != nil {
		log.Printf("[WARN] failed to write head: %v", err)
		return
	}
	if _, err := w.Write([]byte(button)); err != nil {
		log.Printf("[WARN] failed to write toggle: %v", err)
	}
}
