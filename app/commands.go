package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	log "github.com/go-pkgz/lgr"

	"github.com/umputun/themer/app/enum"
	"github.com/umputun/themer/app/prefs"
	"github.com/umputun/themer/app/server"
	"github.com/umputun/themer/app/server/web"
	"github.com/umputun/themer/app/store"
	"github.com/umputun/themer/app/theme"
)

// ServerCmd implements the server subcommand
type ServerCmd struct {
	Server struct {
		Address     string        `long:"address" env:"ADDRESS" default:":8080" description:"server listen address"`
		ReadTimeout time.Duration `long:"read-timeout" env:"READ_TIMEOUT" default:"5s" description:"read timeout"`
		BaseURL     string        `long:"base-url" env:"BASE_URL" description:"base URL path for reverse proxy (e.g., /docs)"`
	} `group:"server" namespace:"server" env-namespace:"THEMER_SERVER"`

	Store     string `long:"store" env:"THEMER_STORE" choice:"cookie" choice:"db" default:"cookie" description:"where theme preferences are kept"`
	DB        string `short:"d" long:"db" env:"THEMER_DB" default:"themer.db" description:"database URL (sqlite file or postgres://...), db store only"`
	CacheSize int    `long:"cache-size" env:"THEMER_CACHE_SIZE" default:"1000" description:"max cached preferences, 0 disables cache"`
	Page      string `long:"page" env:"THEMER_PAGE" description:"html page to serve instead of the embedded one"`

	Debug bool `long:"dbg" env:"DEBUG" description:"debug mode"`

	ctx    context.Context
	cancel context.CancelFunc
}

// Execute runs the server command
func (s *ServerCmd) Execute(_ []string) error {
	setupLogs(s.Debug)

	defer func() {
		if x := recover(); x != nil {
			log.Printf("[WARN] run time panic:\n%v", x)
			panic(x)
		}
	}()

	if s.ctx == nil {
		s.ctx, s.cancel = context.WithCancel(context.Background())
		signals(s.cancel)
	}

	return s.run(s.ctx)
}

func (s *ServerCmd) run(ctx context.Context) error {
	baseURL, err := validateBaseURL(s.Server.BaseURL)
	if err != nil {
		return fmt.Errorf("invalid base URL: %w", err)
	}

	storeType, err := enum.ParseStoreType(s.Store)
	if err != nil {
		return fmt.Errorf("invalid store type: %w", err)
	}

	page, err := readPage(s.Page)
	if err != nil {
		return err
	}

	log.Printf("[INFO] starting themer server on %s, preferences in %s", s.Server.Address, storeType)
	if baseURL != "" {
		log.Printf("[INFO] base URL: %s", baseURL)
	}

	var kv server.KVStore
	if storeType == enum.StoreTypeDB {
		kvStore, kvErr := s.makeStore()
		if kvErr != nil {
			return kvErr
		}
		defer kvStore.Close()
		if keys, listErr := kvStore.List(ctx, ""); listErr == nil {
			log.Printf("[INFO] %d stored preferences in %s", len(keys), s.DB)
		}
		if cached, ok := kvStore.(*store.Cached); ok {
			defer func() { log.Printf("[DEBUG] store cache stats: %+v", cached.Stats()) }()
		}
		kv = kvStore
	}

	srv, err := server.New(kv, server.Config{
		Address:     s.Server.Address,
		ReadTimeout: s.Server.ReadTimeout,
		Version:     revision,
		BaseURL:     baseURL,
		StoreType:   storeType,
		Page:        page,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize server: %w", err)
	}

	if err := srv.Run(ctx); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}
	return nil
}

// makeStore opens the database store, wrapped with the cache if enabled.
func (s *ServerCmd) makeStore() (store.Interface, error) {
	dbStore, err := store.New(s.DB)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize store: %w", err)
	}
	if s.CacheSize <= 0 {
		return dbStore, nil
	}
	cached, err := store.NewCached(dbStore, s.CacheSize)
	if err != nil {
		_ = dbStore.Close()
		return nil, fmt.Errorf("failed to initialize cache: %w", err)
	}
	log.Printf("[DEBUG] store cache enabled, max keys %d", s.CacheSize)
	return cached, nil
}

// RenderCmd implements the render subcommand
type RenderCmd struct {
	Page  string `long:"page" description:"html page to render, the embedded one if not set"`
	Pref  string `long:"pref" description:"stored preference value (true for dark), empty means nothing stored"`
	Dark  bool   `long:"dark" description:"ambient signal prefers dark"`
	Debug bool   `long:"dbg" description:"debug mode"`

	out io.Writer
}

// Execute runs the render command
func (c *RenderCmd) Execute(_ []string) error {
	setupLogs(c.Debug)

	raw, err := readPage(c.Page)
	if err != nil {
		return err
	}
	if len(raw) == 0 {
		if raw, err = web.DefaultPage(); err != nil {
			return fmt.Errorf("failed to load embedded page: %w", err)
		}
	}

	page, err := theme.ParsePage(bytes.NewReader(raw))
	if err != nil {
		return fmt.Errorf("failed to parse page: %w", err)
	}

	storage := &staticStorage{values: map[string]string{}}
	if c.Pref != "" {
		storage.values[prefs.Key] = c.Pref
	}
	tg := theme.New(prefs.New(storage), page, theme.Fixed(c.Dark))
	log.Printf("[DEBUG] rendering with %s theme", tg.Theme())

	out := c.out
	if out == nil {
		out = os.Stdout
	}
	if err := page.Render(out); err != nil {
		return fmt.Errorf("failed to render page: %w", err)
	}
	return nil
}

// readPage reads the page override file, nil if not set.
func readPage(path string) ([]byte, error) {
	if path == "" {
		return nil, nil
	}
	data, err := os.ReadFile(path) //nolint:gosec // path comes from cli option
	if err != nil {
		return nil, fmt.Errorf("failed to read page %s: %w", path, err)
	}
	return data, nil
}

// staticStorage is an in-memory preference storage for one render.
type staticStorage struct {
	values map[string]string
}

func (s *staticStorage) Get(key string) (string, error) {
	v, ok := s.values[key]
	if !ok {
		return "", prefs.ErrNoValue
	}
	return v, nil
}

func (s *staticStorage) Set(key, value string) error {
	if key == "" {
		return errors.New("empty key")
	}
	s.values[key] = value
	return nil
}
