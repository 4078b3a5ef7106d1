// Package metrics counts what the codecs move: messages, bits, failures.
package metrics

import (
	"maps"
	"slices"

	"sutext.github.io/bithelper/internal/safe"
)

// Registry hands out named counters. The zero value is ready to use.
type Registry struct {
	counters safe.Map[string, Counter]
}

func NewRegistry() *Registry {
	return &Registry{}
}

// Counter returns the counter registered under name, creating it on first use.
func (r *Registry) Counter(name string) Counter {
	c, _ := r.counters.GetOrSet(name, NewCounter)
	return c
}

// Snapshot returns the current value of every counter.
func (r *Registry) Snapshot() map[string]uint64 {
	out := make(map[string]uint64, r.counters.Len())
	r.counters.Range(func(name string, c Counter) bool {
		out[name] = c.Count()
		return true
	})
	return out
}

// Names returns the registered counter names in sorted order.
func (r *Registry) Names() []string {
	return slices.Sorted(maps.Keys(r.Snapshot()))
}
