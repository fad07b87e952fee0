package kvring

import "github.com/mgnsk/kvring/ringlist"

// Cursor references a single node of a Ring.
//
// The zero value is the null cursor. A cursor does not own its node: once the
// node is removed the cursor is stale, Valid reports false and the ring rejects
// it with ErrInvalidCursor. Reading a stale cursor returns the node's last key
// and value.
//
// Cursors are positions. Next, Prev and Move return a new cursor and leave the
// receiver unchanged. Two cursors are == when they reference the same node.
type Cursor[K comparable, V any] struct {
	e *ringlist.Element[entry[K, V]]
}

// Valid returns whether the cursor references a node which is still in a ring.
func (c Cursor[K, V]) Valid() bool {
	return c.e != nil && c.e.List() != nil
}

// IsNull returns whether c is the null cursor.
func (c Cursor[K, V]) IsNull() bool {
	return c.e == nil
}

// Key returns the key of the node. It panics on the null cursor.
func (c Cursor[K, V]) Key() K {
	c.mustNotBeNull()
	return c.e.Value.key
}

// Value returns the value of the node. It panics on the null cursor.
func (c Cursor[K, V]) Value() V {
	c.mustNotBeNull()
	return c.e.Value.value
}

// SetValue replaces the value of the node. It panics on the null cursor.
func (c Cursor[K, V]) SetValue(value V) {
	c.mustNotBeNull()
	c.e.Value.value = value
}

// Next returns a cursor to the successor node. The successor of the null cursor is the null cursor.
func (c Cursor[K, V]) Next() Cursor[K, V] {
	if c.e == nil {
		return c
	}
	return Cursor[K, V]{e: c.e.Next()}
}

// Prev returns a cursor to the predecessor node. The predecessor of the null cursor is the null cursor.
func (c Cursor[K, V]) Prev() Cursor[K, V] {
	if c.e == nil {
		return c
	}
	return Cursor[K, V]{e: c.e.Prev()}
}

// Move returns a cursor delta nodes forward, or backward for negative delta.
// The ring wraps around, so moving by the ring length returns c.
func (c Cursor[K, V]) Move(delta int) Cursor[K, V] {
	for ; delta > 0; delta-- {
		c = c.Next()
	}
	for ; delta < 0; delta++ {
		c = c.Prev()
	}
	return c
}

func (c Cursor[K, V]) mustNotBeNull() {
	if c.e == nil {
		panic("kvring: null cursor")
	}
}
