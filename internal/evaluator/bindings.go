package evaluator

import (
	"maps"
	"slices"
)

// Bindings is the variable store of one program run.
type Bindings struct {
	variables map[string]int64
}

func NewBindings() *Bindings {
	return &Bindings{variables: make(map[string]int64)}
}

// Get reports whether name is bound. A binding of 0 is still a binding.
func (b *Bindings) Get(name string) (int64, bool) {
	v, ok := b.variables[name]
	return v, ok
}

// Set binds name to v, replacing any previous value.
func (b *Bindings) Set(name string, v int64) {
	b.variables[name] = v
}

func (b *Bindings) Len() int {
	return len(b.variables)
}

func (b *Bindings) Names() []string {
	return slices.Sorted(maps.Keys(b.variables))
}

func (b *Bindings) Snapshot() map[string]int64 {
	return maps.Clone(b.variables)
}
