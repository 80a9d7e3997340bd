package prefs

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// cookieTTL is how long a stored preference survives in the browser.
const cookieTTL = 365 * 24 * time.Hour

// CookieStorage keeps values in browser cookies. It is bound to a single request:
// reads come from the request, writes go out as Set-Cookie on the response.
type CookieStorage struct {
	w       http.ResponseWriter
	r       *http.Request
	path    string
	pending map[string]string // written during this request, shadows request cookies
}

// NewCookieStorage makes a storage for one request/response pair.
// Empty path means "/".
func NewCookieStorage(w http.ResponseWriter, r *http.Request, path string) *CookieStorage {
	if path == "" {
		path = "/"
	}
	return &CookieStorage{w: w, r: r, path: path, pending: map[string]string{}}
}

// Get returns the cookie value, ErrNoValue if the cookie is not set.
func (c *CookieStorage) Get(key string) (string, error) {
	if v, ok := c.pending[key]; ok {
		return v, nil
	}
	cookie, err := c.r.Cookie(key)
	if errors.Is(err, http.ErrNoCookie) {
		return "", ErrNoValue
	}
	if err != nil {
		return "", fmt.Errorf("read cookie %q: %w", key, err)
	}
	return cookie.Value, nil
}

// Set writes the cookie, replacing any Set-Cookie for the same name issued earlier in the request.
func (c *CookieStorage) Set(key, value string) error {
	cookie := &http.Cookie{
		Name:     key,
		Value:    value,
		Path:     c.path,
		MaxAge:   int(cookieTTL.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	if err := cookie.Valid(); err != nil {
		return fmt.Errorf("invalid cookie %q: %w", key, err)
	}

	h := c.w.Header()
	var kept []string
	for _, sc := range h.Values("Set-Cookie") {
		if !strings.HasPrefix(sc, key+"=") {
			kept = append(kept, sc)
		}
	}
	h.Del("Set-Cookie")
	for _, sc := range kept {
		h.Add("Set-Cookie", sc)
	}
	http.SetCookie(c.w, cookie)
	c.pending[key] = value
	return nil
}
