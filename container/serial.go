package container

import (
	"fmt"
	"sync"
)

// Registry hands out serial numbers, counting separately per container type.
// One registry should be shared by everything that creates containers.
type Registry struct {
	mu     sync.Mutex
	counts map[Type]int
}

// NewRegistry creates a registry with all counters at zero
func NewRegistry() *Registry {
	return &Registry{counts: make(map[Type]int)}
}

// Next advances the counter of t and returns the new serial number,
// formatted as KON-<TYPE>-<NNNN>.
func (r *Registry) Next(t Type) string {
	r.mu.Lock()
	r.counts[t]++
	n := r.counts[t]
	r.mu.Unlock()

	return fmt.Sprintf("KON-%s-%04d", string(t), n)
}

// Issued returns how many serial numbers were handed out for t
func (r *Registry) Issued(t Type) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.counts[t]
}
