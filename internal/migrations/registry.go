package migrations

import (
	"sort"
	"sync"
)

// Registry holds migrations keyed by schema version
type Registry struct {
	mu         sync.RWMutex
	migrations map[int]Migration
}

// builtin collects the migrations shipped with the binary through init()
var builtin = NewRegistry()

func NewRegistry(migrations ...Migration) *Registry {
	r := &Registry{migrations: make(map[int]Migration, len(migrations))}
	for _, m := range migrations {
		r.Add(m)
	}
	return r
}

// Add stores m, replacing a migration with the same version
func (r *Registry) Add(m Migration) {
	r.mu.Lock()
	r.migrations[m.Version()] = m
	r.mu.Unlock()
}

// Get returns the migration for version
func (r *Registry) Get(version int) (Migration, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	m, ok := r.migrations[version]
	return m, ok
}

// Between returns the migrations with from < version <= to in ascending order
func (r *Registry) Between(from, to int) []Migration {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []Migration
	for version, m := range r.migrations {
		if version > from && version <= to {
			out = append(out, m)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Version() < out[j].Version() })
	return out
}
