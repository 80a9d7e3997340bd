package main

import (
	"context"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntegration(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cmd := &ServerCmd{Store: "cookie", ctx: ctx}
	cmd.Server.Address = "127.0.0.1:18484"
	cmd.Server.ReadTimeout = 5 * time.Second

	errCh := make(chan error, 1)
	go func() { errCh <- cmd.Execute(nil) }()

	waitForServer(t, "http://127.0.0.1:18484/ping")

	// no redirects, the toggle answers with 303
	client := &http.Client{
		Timeout:       5 * time.Second,
		CheckRedirect: func(*http.Request, []*http.Request) error { return http.ErrUseLastResponse },
	}

	t.Run("page follows ambient hint", func(t *testing.T) {
		req, err := http.NewRequest(http.MethodGet, "http://127.0.0.1:18484/", http.NoBody)
		require.NoError(t, err)
		req.Header.Set("Sec-CH-Prefers-Color-Scheme", "dark")
		resp, err := client.Do(req)
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "Sec-CH-Prefers-Color-Scheme", resp.Header.Get("Accept-CH"))
		assert.Empty(t, resp.Cookies(), "ambient branch persists nothing")

		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		assert.Contains(t, string(body), "Switch to light mode")
		assert.Contains(t, string(body), "aio-theme=")
	})

	t.Run("toggle persists choice", func(t *testing.T) {
		resp, err := client.Post("http://127.0.0.1:18484/web/theme", "", http.NoBody)
		require.NoError(t, err)
		require.NoError(t, resp.Body.Close())
		assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
		cookies := resp.Cookies()
		require.Len(t, cookies, 1)
		assert.Equal(t, "aio-theme", cookies[0].Name)
		assert.Equal(t, "true", cookies[0].Value)

		req, err := http.NewRequest(http.MethodGet, "http://127.0.0.1:18484/", http.NoBody)
		require.NoError(t, err)
		req.AddCookie(cookies[0])
		resp, err = client.Do(req)
		require.NoError(t, err)
		defer resp.Body.Close()
		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		assert.Contains(t, string(body), `id="aio-custom-theme"`)
		assert.Contains(t, string(body), "assets/dark-theme.css")
		assert.NotContains(t, string(body), "aio-theme=")
	})

	t.Run("api", func(t *testing.T) {
		resp, err := client.Get("http://127.0.0.1:18484/api/theme")
		require.NoError(t, err)
		defer resp.Body.Close()
		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		assert.Contains(t, string(body), `"stored":false`)
	})

	cancel()
	select {
	case err := <-errCh:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down in time")
	}
}

func waitForServer(t *testing.T, url string) {
	t.Helper()
	client := &http.Client{Timeout: 100 * time.Millisecond}
	require.Eventually(t, func() bool {
		resp, err := client.Get(url)
		if err != nil {
			return false
		}
		_ = resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 2*time.Second, 50*time.Millisecond, "server did not start")
}

func TestSetupLogs(t *testing.T) {
	t.Run("default mode", func(t *testing.T) {
		w := setupLogs(false)
		assert.NotNil(t, w)
	})

	t.Run("debug mode", func(t *testing.T) {
		w := setupLogs(true)
		assert.NotNil(t, w)
	})
}

func TestSignals(t *testing.T) {
	_, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NotPanics(t, func() {
		signals(cancel)
	})
}

func TestValidateBaseURL(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"empty", "", "", false},
		{"valid", "/docs", "/docs", false},
		{"valid nested", "/site/docs", "/site/docs", false},
		{"strips trailing slash", "/docs/", "/docs", false},
		{"root only", "/", "", false},
		{"missing leading slash", "docs", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := validateBaseURL(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestIntegration_WithBaseURL(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cmd := &ServerCmd{Store: "cookie", ctx: ctx}
	cmd.Server.Address = "127.0.0.1:18488"
	cmd.Server.ReadTimeout = 5 * time.Second
	cmd.Server.BaseURL = "/docs/"

	errCh := make(chan error, 1)
	go func() { errCh <- cmd.Execute(nil) }()

	waitForServer(t, "http://127.0.0.1:18488/docs/ping")

	client := &http.Client{Timeout: 5 * time.Second}
	resp, err := client.Get("http://127.0.0.1:18488/docs/assets/light-theme.css")
	require.NoError(t, err)
	require.NoError(t, resp.Body.Close())
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = client.Get("http://127.0.0.1:18488/docs/")
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(body), "aio-theme-toggle"))

	cancel()
	select {
	case err := <-errCh:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down in time")
	}
}
