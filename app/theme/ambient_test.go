package theme

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRequestHint_PrefersDark(t *testing.T) {
	tests := []struct {
		name     string
		header   string
		expected bool
	}{
		{"no hint", "", false},
		{"quoted dark", `"dark"`, true},
		{"bare dark", "dark", true},
		{"upper case", `"Dark"`, true},
		{"light", `"light"`, false},
		{"junk", "no-preference", false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", http.NoBody)
			if tc.header != "" {
				req.Header.Set(ColorSchemeHint, tc.header)
			}
			assert.Equal(t, tc.expected, FromRequest(req).PrefersDark())
		})
	}

	assert.False(t, RequestHint{}.PrefersDark(), "no request means not dark")
}

func TestFixed(t *testing.T) {
	assert.True(t, Fixed(true).PrefersDark())
	assert.False(t, Fixed(false).PrefersDark())
}

func TestAdvertiseHint(t *testing.T) {
	rec := httptest.NewRecorder()
	AdvertiseHint(rec)
	assert.Equal(t, ColorSchemeHint, rec.Header().Get("Accept-CH"))
	assert.Equal(t, ColorSchemeHint, rec.Header().Get("Critical-CH"))
	assert.Equal(t, ColorSchemeHint, rec.Header().Get("Vary"))
}
