// Package internal provides shared utilities for server subpackages.
package internal

import (
	"net/http"

	"github.com/umputun/themer/app/prefs"
)

// ToggleButtonID is the id of the theme toggle control on the page.
const ToggleButtonID = "aio-theme-toggle"

// StorageFunc makes the preference storage for one request.
type StorageFunc func(w http.ResponseWriter, r *http.Request) prefs.Storage

// CookieStorage keeps preferences in browser cookies scoped to path.
func CookieStorage(path string) StorageFunc {
	return func(w http.ResponseWriter, r *http.Request) prefs.Storage {
		return prefs.NewCookieStorage(w, r, path)
	}
}

// KVStorage keeps preferences in the key-value store, scoped per visitor.
func KVStorage(kv prefs.KVStore, path string) StorageFunc {
	return func(w http.ResponseWriter, r *http.Request) prefs.Storage {
		return prefs.NewKVStorage(w, r, kv, path)
	}
}

// IsHTMX reports whether the request was issued by htmx.
func IsHTMX(r *http.Request) bool {
	return r.Header.Get("HX-Request") == "true"
}
