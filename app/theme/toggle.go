// Package theme resolves which of the light and dark themes is active for a page,
// switches between them and keeps the page's stylesheet links in line with the choice.
package theme

import (
	"fmt"

	log "github.com/go-pkgz/lgr"

	"github.com/umputun/themer/app/enum"
)

//go:generate moq -out mocks/preferencestore.go -pkg mocks -skip-ensure -fmt goimports . PreferenceStore
//go:generate moq -out mocks/document.go -pkg mocks -skip-ensure -fmt goimports . Document

const (
	// DefaultLinkAttr marks the page's media-conditional default theme links.
	DefaultLinkAttr = "aio-theme"
	// CustomLinkID identifies the single link carrying an explicitly chosen theme.
	CustomLinkID = "aio-custom-theme"
)

// PreferenceStore persists the theme choice. Both calls must never fail.
type PreferenceStore interface {
	Get() (string, bool)
	Set(isDark bool)
}

// Document is the page whose stylesheet links reflect the active theme.
type Document interface {
	RemoveMarked(attr string) int
	UpsertStylesheet(id, href string)
}

// Toggle holds the active theme of one page instance.
type Toggle struct {
	store PreferenceStore
	doc   Document
	theme enum.Theme
}

// New resolves the initial theme. A stored preference wins and is applied to the document
// right away. Otherwise the ambient signal decides and the document is left as is, since its
// default links already follow the system color scheme. Nil ambient means "not dark".
func New(store PreferenceStore, doc Document, ambient AmbientSignal) *Toggle {
	t := &Toggle{store: store, doc: doc, theme: enum.ThemeLight}

	stored, ok := store.Get()
	if ok {
		t.theme = enum.ThemeFromPreference(stored)
		log.Printf("[DEBUG] stored theme preference %q, using %s", stored, t.theme)
		t.Apply()
		return t
	}

	if ambient != nil {
		t.theme = enum.ThemeFromDark(ambient.PrefersDark())
	}
	log.Printf("[DEBUG] no stored theme preference, ambient %s", t.theme)
	return t
}

// Toggle switches to the other theme and applies it.
func (t *Toggle) Toggle() {
	t.theme = t.theme.Toggle()
	t.Apply()
}

// Apply makes the custom link the only theme stylesheet of the document, points it at the
// active theme and persists the choice. Repeated calls with the same theme change nothing.
func (t *Toggle) Apply() {
	if n := t.doc.RemoveMarked(DefaultLinkAttr); n > 0 {
		log.Printf("[DEBUG] removed %d default theme links", n)
	}
	t.doc.UpsertStylesheet(CustomLinkID, Href(t.theme))
	t.store.Set(t.theme.IsDark())
}

// Theme returns the active theme.
func (t *Toggle) Theme() enum.Theme { return t.theme }

// IsDark reports whether the dark theme is active.
func (t *Toggle) IsDark() bool { return t.theme.IsDark() }

// Name returns "dark" or "light".
func (t *Toggle) Name() string { return t.theme.String() }

// Label describes what the next toggle does, e.g. "Switch to light mode" while dark.
func (t *Toggle) Label() string {
	return fmt.Sprintf("Switch to %s mode", t.theme.Toggle())
}

// Icon returns the icon token of the active theme, e.g. "dark_mode".
func (t *Toggle) Icon() string {
	return t.theme.String() + "_mode"
}

// Href returns the stylesheet asset path of the theme.
func Href(th enum.Theme) string {
	return "assets/" + th.String() + "-theme.css"
}
