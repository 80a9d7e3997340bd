package server

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/themer/app/enum"
	"github.com/umputun/themer/app/prefs"
	"github.com/umputun/themer/app/prefs/mocks"
	"github.com/umputun/themer/app/store"
)

func TestNew(t *testing.T) {
	t.Run("cookie store without kv", func(t *testing.T) {
		srv, err := New(nil, Config{StoreType: enum.StoreTypeCookie})
		require.NoError(t, err)
		assert.NotNil(t, srv.webHandler)
		assert.NotNil(t, srv.apiHandler)
	})

	t.Run("db store requires kv", func(t *testing.T) {
		_, err := New(nil, Config{StoreType: enum.StoreTypeDB})
		require.Error(t, err)
	})
}

func TestServer_Routes(t *testing.T) {
	srv, err := New(nil, Config{Version: "test"})
	require.NoError(t, err)
	h := srv.routes()

	t.Run("ping", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", http.NoBody))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "pong", rec.Body.String())
		assert.Equal(t, "themer", rec.Header().Get("App-Name"))
	})

	t.Run("index", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", http.NoBody))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "Documentation")
	})

	t.Run("theme assets", func(t *testing.T) {
		for _, path := range []string{"/assets/light-theme.css", "/assets/dark-theme.css", "/static/assets/dark-theme.css"} {
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, http.NoBody))
			assert.Equal(t, http.StatusOK, rec.Code, path)
			assert.Contains(t, rec.Header().Get("Content-Type"), "text/css", path)
		}
	})

	t.Run("api", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/theme", http.NoBody))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"theme":"light"`)
	})

	t.Run("unknown route", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/nope", http.NoBody))
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestServer_BaseURL(t *testing.T) {
	srv, err := New(nil, Config{BaseURL: "/docs"})
	require.NoError(t, err)
	h := srv.handler()

	t.Run("redirects bare base", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/docs", http.NoBody))
		assert.Equal(t, http.StatusMovedPermanently, rec.Code)
		assert.Equal(t, "/docs/", rec.Header().Get("Location"))
	})

	t.Run("toggle sets scoped cookie", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/docs/web/theme", http.NoBody))
		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/docs/", rec.Header().Get("Location"))
		cookies := rec.Result().Cookies()
		require.Len(t, cookies, 1)
		assert.Equal(t, "/docs/", cookies[0].Path)
	})

	t.Run("assets under base", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/docs/assets/dark-theme.css", http.NoBody))
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestServer_DBStore(t *testing.T) {
	kv, err := store.New(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	defer kv.Close()

	srv, err := New(kv, Config{StoreType: enum.StoreTypeDB})
	require.NoError(t, err)
	h := srv.routes()

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/theme/toggle", http.NoBody))
	require.Equal(t, http.StatusOK, rec.Code)

	var visitor *http.Cookie
	for _, c := range rec.Result().Cookies() {
		if c.Name == prefs.VisitorCookie {
			visitor = c
		}
		assert.NotEqual(t, prefs.Key, c.Name, "preference itself stays server-side")
	}
	require.NotNil(t, visitor)

	val, err := kv.Get(context.Background(), visitor.Value+"/"+prefs.Key)
	require.NoError(t, err)
	assert.Equal(t, "true", string(val))

	req := httptest.NewRequest(http.MethodGet, "/", http.NoBody)
	req.AddCookie(visitor)
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Contains(t, rec.Body.String(), `href="assets/dark-theme.css"/>`)
}

func TestServer_DBStoreFailing(t *testing.T) {
	kv := &mocks.KVStoreMock{
		GetFunc: func(context.Context, string) ([]byte, error) { return nil, errors.New("db down") },
		SetFunc: func(context.Context, string, []byte) error { return errors.New("db down") },
	}
	srv, err := New(kv, Config{StoreType: enum.StoreTypeDB})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/web/theme", http.NoBody)
	req.Header.Set("HX-Request", "true")
	rec := httptest.NewRecorder()
	srv.routes().ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "dark_mode")
}

func TestServer_Run(t *testing.T) {
	srv, err := New(nil, Config{Address: "127.0.0.1:18571", ReadTimeout: time.Second, ShutdownTimeout: time.Second})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() { errCh <- srv.Run(ctx) }()

	client := &http.Client{Timeout: time.Second}
	require.Eventually(t, func() bool {
		resp, err := client.Get("http://127.0.0.1:18571/ping")
		if err != nil {
			return false
		}
		defer resp.Body.Close()
		body, _ := io.ReadAll(resp.Body)
		return strings.Contains(string(body), "pong")
	}, 2*time.Second, 50*time.Millisecond)

	cancel()
	select {
	case err := <-errCh:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down in time")
	}
}
