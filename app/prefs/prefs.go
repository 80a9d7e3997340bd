// Package prefs implements the theme preference store: a narrow facade over key/value storage
// that never fails. Reads degrade to "no preference", writes degrade to no-op.
package prefs

import (
	"errors"

	log "github.com/go-pkgz/lgr"

	"github.com/umputun/themer/app/enum"
)

//go:generate moq -out mocks/storage.go -pkg mocks -skip-ensure -fmt goimports . Storage

// Key is the fixed storage key of the theme preference.
const Key = "aio-theme"

// ErrNoValue is returned by storages when nothing is stored under the key.
var ErrNoValue = errors.New("no stored value")

// Storage is a durable key/value backend. Implementations may fail on any call.
type Storage interface {
	Get(key string) (string, error)
	Set(key, value string) error
}

// Preferences persists a single theme choice under Key.
type Preferences struct {
	storage Storage
}

// New makes Preferences on top of the given storage.
func New(storage Storage) *Preferences {
	return &Preferences{storage: storage}
}

// Get returns the stored preference and true, or false if nothing usable is stored.
// Storage failures are treated as no preference. An empty stored value counts as absent.
func (p *Preferences) Get() (value string, ok bool) {
	defer func() {
		if x := recover(); x != nil {
			log.Printf("[WARN] theme preference read panicked: %v", x)
			value, ok = "", false
		}
	}()

	v, err := p.storage.Get(Key)
	if err != nil {
		if !errors.Is(err, ErrNoValue) {
			log.Printf("[WARN] can't read theme preference, treated as unset: %v", err)
		}
		return "", false
	}
	if v == "" {
		return "", false
	}
	return v, true
}

// Set stores "true" or "false". Failures are logged and dropped.
func (p *Preferences) Set(isDark bool) {
	defer func() {
		if x := recover(); x != nil {
			log.Printf("[WARN] theme preference write panicked: %v", x)
		}
	}()

	if err := p.storage.Set(Key, enum.ThemeFromDark(isDark).Preference()); err != nil {
		log.Printf("[WARN] can't persist theme preference %t: %v", isDark, err)
	}
}
