package dedup

import (
	mapset "github.com/deckarep/golang-set/v2"
)

// Registry tracks listing identifiers for a single crawl run. It starts
// empty and is never shared across runs; there is no on-disk state.
type Registry struct {
	seen mapset.Set[string]
}

func NewRegistry() *Registry {
	return &Registry{seen: mapset.NewSet[string]()}
}

// Admit records id and reports whether the caller should keep the card.
// A repeated id is rejected. Cards without an extractable identifier are
// always admitted: they cannot be deduplicated in memory, the store's
// uniqueness constraint is the backstop for those.
func (r *Registry) Admit(id string) bool {
	if id == "" {
		return true
	}
	return r.seen.Add(id)
}

// Len reports how many distinct identifiers have been admitted.
func (r *Registry) Len() int {
	return r.seen.Cardinality()
}
