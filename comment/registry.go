package comment

import (
	"maps"
	"slices"
	"sync"
)

// FallbackPrefixes returns the prefixes used for unregistered languages: a
// permissive superset so markers keep matching in unknown files.
func FallbackPrefixes() []string {
	return []string{"//", "#", "--"}
}

// Registry is a table of [Language] entries keyed by [Language.ID].
//
// Entries keep their registration order. Safe for concurrent use; reads take
// a shared lock and [Registry.Register] and [Registry.ApplyOverrides] take an
// exclusive one. All returned values are copies.
//
// Create instances with [NewRegistry] or [DefaultRegistry].
type Registry struct {
	langs map[string]Language
	order []string
	mu    sync.RWMutex
}

// NewRegistry creates a [Registry] containing langs, in order.
func NewRegistry(langs ...Language) *Registry {
	r := &Registry{
		langs: make(map[string]Language, len(langs)),
	}
	for _, l := range langs {
		r.register(l)
	}

	return r
}

// DefaultRegistry creates a [Registry] populated with the built-in languages.
func DefaultRegistry() *Registry {
	return NewRegistry(Builtin()...)
}

// Get returns the entry registered under id. The lookup is exact and
// case-sensitive.
func (r *Registry) Get(id string) (Language, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	l, ok := r.langs[id]
	if !ok {
		return Language{}, false
	}

	return l.clone(), true
}

// All returns every entry in registration order.
func (r *Registry) All() []Language {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Language, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.langs[id].clone())
	}

	return out
}

// IDs returns the identifiers of every entry in registration order.
func (r *Registry) IDs() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return slices.Clone(r.order)
}

// Prefixes resolves the comment prefixes for id.
//
// A registered language with single-line prefixes yields those prefixes. A
// registered language without any yields its block start token, if it has
// one. Anything else yields [FallbackPrefixes].
func (r *Registry) Prefixes(id string) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	l, ok := r.langs[id]
	if ok {
		if len(l.SingleLine) > 0 {
			return slices.Clone(l.SingleLine)
		}

		if l.Block.Start != "" {
			return []string{l.Block.Start}
		}
	}

	return FallbackPrefixes()
}

// ForPath returns the first entry, in registration order, whose extensions
// match the path's extension or basename.
func (r *Registry) ForPath(path string) (Language, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, id := range r.order {
		l := r.langs[id]
		if l.matchesPath(path) {
			return l.clone(), true
		}
	}

	return Language{}, false
}

// Register inserts l, or replaces the entry with the same ID. A replaced
// entry keeps its position.
func (r *Registry) Register(l Language) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.register(l)
}

// ApplyOverrides replaces the single-line prefixes of each entry named in
// overrides, keeping its display name and block syntax. Unknown IDs become
// new entries with the ID as display name and no block syntax. Keys are
// applied in sorted order.
func (r *Registry) ApplyOverrides(overrides map[string][]string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, id := range slices.Sorted(maps.Keys(overrides)) {
		prefixes := slices.Clone(overrides[id])

		l, ok := r.langs[id]
		if !ok {
			r.register(Language{
				ID:          id,
				DisplayName: id,
				SingleLine:  prefixes,
			})

			continue
		}

		l.SingleLine = prefixes
		r.langs[id] = l
	}
}

func (r *Registry) register(l Language) {
	if _, exists := r.langs[l.ID]; !exists {
		r.order = append(r.order, l.ID)
	}

	r.langs[l.ID] = l.clone()
}
