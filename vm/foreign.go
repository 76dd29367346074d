package vm

import (
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// ForeignFunc is a host-supplied callable invoked by name from the
// instruction stream. It receives full mutable access to the machine: it may
// freely manipulate the stack, the context map, the program counter, and the
// running/exited flags. Foreign functions are synchronous; they cannot
// suspend the fetch-decode-execute loop except by calling Machine.Pause or
// Machine.Exit.
type ForeignFunc func(m *Machine) error

// foreignRegistry holds the foreign functions registered on a Machine before
// Load is called.
type foreignRegistry struct {
	byName map[string]ForeignFunc
}

func newForeignRegistry() *foreignRegistry {
	return &foreignRegistry{byName: make(map[string]ForeignFunc)}
}

func (r *foreignRegistry) register(name string, fn ForeignFunc) {
	r.byName[name] = fn
}

func (r *foreignRegistry) lookup(name string) (ForeignFunc, bool) {
	fn, ok := r.byName[name]
	return fn, ok
}

// Names returns the sorted list of registered foreign function names, used to
// build a helpful UnknownFunction error message.
func (r *foreignRegistry) Names() []string {
	names := maps.Keys(r.byName)
	slices.Sort(names)
	return names
}
