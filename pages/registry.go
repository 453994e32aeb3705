// Package pages holds the concrete showcase pages and the registry that
// resolves page keys to them.
package pages

import (
	"sort"
	"strings"

	"github.com/automoto/showcase/page"
)

// Page keys.
const (
	KeyHome       = "home"
	KeyPieceQuest = "piecequest"
	KeyAwakening  = "piecequestawakening"
)

// Factory creates an unloaded page.
type Factory func(rt *page.Runtime) *page.Page

// Registry maps lower-case page keys to factories.
type Registry struct {
	factories map[string]Factory
	fallback  string
}

// NewRegistry returns a registry with every showcase page, falling back to
// home.
func NewRegistry() *Registry {
	r := &Registry{
		factories: make(map[string]Factory),
		fallback:  KeyHome,
	}
	r.Register(KeyHome, NewHome)
	r.Register(KeyPieceQuest, NewPieceQuest)
	r.Register(KeyAwakening, NewAwakening)
	return r
}

// Register adds or replaces a page.
func (r *Registry) Register(key string, f Factory) {
	r.factories[strings.ToLower(key)] = f
}

// Resolve maps any key to a registered one. Matching ignores case; empty
// and unknown keys resolve to the fallback page.
func (r *Registry) Resolve(key string) string {
	key = strings.ToLower(strings.TrimSpace(key))
	if _, ok := r.factories[key]; ok {
		return key
	}
	return r.fallback
}

// Fallback returns the key unknown keys resolve to.
func (r *Registry) Fallback() string { return r.fallback }

// New creates the page for key after resolving it.
func (r *Registry) New(key string, rt *page.Runtime) *page.Page {
	return r.factories[r.Resolve(key)](rt)
}

// Keys returns the registered keys in order.
func (r *Registry) Keys() []string {
	keys := make([]string, 0, len(r.factories))
	for k := range r.factories {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
