package theme

import (
	"net/http"
	"strings"
)

// ColorSchemeHint is the client hint header carrying the visitor's system color scheme.
// Browsers send it only after the server advertised it in Accept-CH.
const ColorSchemeHint = "Sec-CH-Prefers-Color-Scheme"

// AmbientSignal reports the environment's "prefers dark color scheme" preference.
type AmbientSignal interface {
	PrefersDark() bool
}

// Fixed is an ambient signal with a constant answer.
type Fixed bool

// PrefersDark returns the fixed value.
func (f Fixed) PrefersDark() bool { return bool(f) }

// RequestHint reads the ambient signal from the request's color scheme client hint.
type RequestHint struct {
	r *http.Request
}

// FromRequest makes an ambient signal for the request.
func FromRequest(r *http.Request) RequestHint {
	return RequestHint{r: r}
}

// PrefersDark is true only if the hint is present and says "dark".
// The header is a structured-field string, so the value usually comes quoted.
func (h RequestHint) PrefersDark() bool {
	if h.r == nil {
		return false
	}
	v := strings.Trim(strings.TrimSpace(h.r.Header.Get(ColorSchemeHint)), `"`)
	return strings.EqualFold(v, "dark")
}

// AdvertiseHint asks the browser to send the color scheme hint, on this and later requests.
func AdvertiseHint(w http.ResponseWriter) {
	h := w.Header()
	h.Set("Accept-CH", ColorSchemeHint)
	h.Set("Critical-CH", ColorSchemeHint)
	h.Add("Vary", ColorSchemeHint)
}
