package vm

import "github.com/dolthub/swiss"

// context is the VM's key-value store, keyed directly by the uint64 hash of
// a Value (see Value.Hash). It owns the values it stores; entries are
// created, overwritten, and removed by the context opcodes.
type context struct {
	m *swiss.Map[uint64, Value]
}

func newContext() *context {
	return &context{m: swiss.NewMap[uint64, Value](0)}
}

func (c *context) set(key Value, val Value) {
	c.m.Put(key.Hash(), val)
}

func (c *context) get(key Value) (Value, bool) {
	return c.m.Get(key.Hash())
}

func (c *context) has(key Value) bool {
	_, ok := c.m.Get(key.Hash())
	return ok
}

func (c *context) del(key Value) {
	c.m.Delete(key.Hash())
}
