package core

import (
	"slices"
	"sync"

	"github.com/auth0/go-cookie-middleware/values"
)

// Whitelist holds cookie names exempt from encryption.
//
// Each entry is indexed twice: by its exact cookie name, checked for outgoing
// cookies, and by its dotted path, checked for incoming values. Whitelisting
// "option[bar]" therefore exempts the outgoing cookie "option[bar]" and the
// incoming leaf "option.bar".
type Whitelist struct {
	mu     sync.RWMutex
	names  []string
	byName map[string]struct{}
	byPath map[string]struct{}
}

// NewWhitelist returns a whitelist holding names.
func NewWhitelist(names ...string) *Whitelist {
	w := &Whitelist{
		byName: make(map[string]struct{}),
		byPath: make(map[string]struct{}),
	}
	w.Add(names...)
	return w
}

// Add appends names. Adding a name twice has no further effect on matching.
func (w *Whitelist) Add(names ...string) {
	w.mu.Lock()
	defer w.mu.Unlock()

	for _, name := range names {
		w.names = append(w.names, name)
		w.byName[name] = struct{}{}
		w.byPath[values.ToDottedPath(name)] = struct{}{}
	}
}

// HasName reports whether the exact cookie name is whitelisted.
func (w *Whitelist) HasName(name string) bool {
	if w == nil {
		return false
	}
	w.mu.RLock()
	defer w.mu.RUnlock()

	_, ok := w.byName[name]
	return ok
}

// HasPath reports whether the dotted path of a value leaf is whitelisted.
func (w *Whitelist) HasPath(path string) bool {
	if w == nil {
		return false
	}
	w.mu.RLock()
	defer w.mu.RUnlock()

	_, ok := w.byPath[path]
	return ok
}

// Len returns the number of distinct names.
func (w *Whitelist) Len() int {
	if w == nil {
		return 0
	}
	w.mu.RLock()
	defer w.mu.RUnlock()

	return len(w.byName)
}

// Names returns the entries in the order they were added, duplicates included.
func (w *Whitelist) Names() []string {
	if w == nil {
		return nil
	}
	w.mu.RLock()
	defer w.mu.RUnlock()

	return slices.Clone(w.names)
}
