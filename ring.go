/*
Package kvring implements a circular doubly linked ring of key-value pairs with cursor traversal.

The ring has a single anchor, its logical start. Traversal, printing, equality
and occurrence counting all begin at the anchor. Keys need not be unique:
duplicates are told apart by their occurrence, the 1-based rank of a match
counted from the anchor.
*/
package kvring

import (
	"fmt"
	"iter"

	"github.com/mgnsk/kvring/ringlist"
	"github.com/sirupsen/logrus"
)

const (
	opInsertAfter  = "insert after"
	opInsertBefore = "insert before"
	opRemove       = "remove"
	opClear        = "clear"
)

type entry[K comparable, V any] struct {
	key   K
	value V
}

// Ring is a circular doubly linked sequence of key-value pairs.
//
// The zero value is a ready to use empty ring. A Ring must not be copied
// after first use, use Clone or Assign instead. A Ring is not safe for
// concurrent use.
type Ring[K comparable, V any] struct {
	list ringlist.List[entry[K, V]]
	opts ringOptions
}

// New creates an empty ring.
func New[K comparable, V any](opts ...Option) *Ring[K, V] {
	r := &Ring[K, V]{
		opts: newDefaultRingOptions(),
	}

	for _, opt := range opts {
		opt.apply(&r.opts)
	}

	return r
}

// IsEmpty returns whether the ring has no nodes.
func (r *Ring[K, V]) IsEmpty() bool {
	return r.list.Len() == 0
}

// Len returns the number of nodes in the ring.
func (r *Ring[K, V]) Len() int {
	return r.list.Len()
}

// Front returns a cursor to the anchor or the null cursor if the ring is empty.
func (r *Ring[K, V]) Front() Cursor[K, V] {
	return Cursor[K, V]{e: r.list.Front()}
}

// Back returns a cursor to the predecessor of the anchor or the null cursor if the ring is empty.
func (r *Ring[K, V]) Back() Cursor[K, V] {
	return Cursor[K, V]{e: r.list.Back()}
}

// Exists returns whether any node has key.
func (r *Ring[K, V]) Exists(key K) bool {
	return r.Find(key).Valid()
}

// Count returns the number of nodes with key.
func (r *Ring[K, V]) Count(key K) int {
	n := 0
	r.list.Do(func(e *ringlist.Element[entry[K, V]]) bool {
		if e.Value.key == key {
			n++
		}
		return true
	})
	return n
}

// Find returns a cursor to the first node with key or the null cursor.
func (r *Ring[K, V]) Find(key K) Cursor[K, V] {
	return r.FindNth(key, 1)
}

// FindNth returns a cursor to the occurrence-th node with key or the null
// cursor if there are fewer matches.
func (r *Ring[K, V]) FindNth(key K, occurrence int) Cursor[K, V] {
	var c Cursor[K, V]
	if occurrence < 1 {
		return c
	}

	n := 0
	r.list.Do(func(e *ringlist.Element[entry[K, V]]) bool {
		if e.Value.key == key {
			n++
			if n == occurrence {
				c.e = e
				return false
			}
		}
		return true
	})

	return c
}

// PushBack inserts a new node as the predecessor of the anchor and returns a cursor to it.
// If the ring is empty, the new node becomes the anchor.
func (r *Ring[K, V]) PushBack(key K, value V) Cursor[K, V] {
	return Cursor[K, V]{e: r.list.PushBack(entry[K, V]{key: key, value: value})}
}

// InsertAfter inserts a new node after the first node with key.
func (r *Ring[K, V]) InsertAfter(key, newKey K, newValue V) error {
	return r.InsertAfterNth(key, 1, newKey, newValue)
}

// InsertAfterNth inserts a new node after the occurrence-th node with key.
// The ring is not modified on error.
func (r *Ring[K, V]) InsertAfterNth(key K, occurrence int, newKey K, newValue V) error {
	e, err := r.resolve(opInsertAfter, key, occurrence)
	if err != nil {
		return err
	}

	r.list.InsertAfter(entry[K, V]{key: newKey, value: newValue}, e)

	return nil
}

// InsertAfterCursor inserts a new node after the node c references and returns a cursor to it.
func (r *Ring[K, V]) InsertAfterCursor(c Cursor[K, V], newKey K, newValue V) (Cursor[K, V], error) {
	if !r.owns(c) {
		return Cursor[K, V]{}, fmt.Errorf("%s: %w", opInsertAfter, ErrInvalidCursor)
	}

	return Cursor[K, V]{e: r.list.InsertAfter(entry[K, V]{key: newKey, value: newValue}, c.e)}, nil
}

// InsertBefore inserts a new node before the first node with key.
func (r *Ring[K, V]) InsertBefore(key, newKey K, newValue V) error {
	return r.InsertBeforeNth(key, 1, newKey, newValue)
}

// InsertBeforeNth inserts a new node before the occurrence-th node with key.
// Inserting before the anchor leaves the anchor in place.
// The ring is not modified on error.
func (r *Ring[K, V]) InsertBeforeNth(key K, occurrence int, newKey K, newValue V) error {
	e, err := r.resolve(opInsertBefore, key, occurrence)
	if err != nil {
		return err
	}

	r.list.InsertBefore(entry[K, V]{key: newKey, value: newValue}, e)

	return nil
}

// InsertBeforeCursor inserts a new node before the node c references and returns a cursor to it.
func (r *Ring[K, V]) InsertBeforeCursor(c Cursor[K, V], newKey K, newValue V) (Cursor[K, V], error) {
	if !r.owns(c) {
		return Cursor[K, V]{}, fmt.Errorf("%s: %w", opInsertBefore, ErrInvalidCursor)
	}

	return Cursor[K, V]{e: r.list.InsertBefore(entry[K, V]{key: newKey, value: newValue}, c.e)}, nil
}

// Remove removes the first node with key.
func (r *Ring[K, V]) Remove(key K) error {
	return r.RemoveNth(key, 1)
}

// RemoveNth removes the occurrence-th node with key.
// The ring is not modified on error.
func (r *Ring[K, V]) RemoveNth(key K, occurrence int) error {
	e, err := r.resolve(opRemove, key, occurrence)
	if err != nil {
		return err
	}

	r.list.Remove(e)

	return nil
}

// RemoveCursor removes the node c references. Cursors to the node become stale.
// If the node is the anchor, its successor becomes the new anchor.
func (r *Ring[K, V]) RemoveCursor(c Cursor[K, V]) error {
	if !r.owns(c) {
		return fmt.Errorf("%s: %w", opRemove, ErrInvalidCursor)
	}

	r.list.Remove(c.e)

	return nil
}

// Clear removes all nodes. Cursors into the ring become stale.
func (r *Ring[K, V]) Clear() {
	if r.list.Len() == 0 {
		r.logger().WithField("op", opClear).Info("ring is already empty")
		return
	}

	r.list.Clear()
}

// Clone returns a deep copy of the ring with the same options.
// The anchor of the copy holds the anchor's key and value.
func (r *Ring[K, V]) Clone() *Ring[K, V] {
	c := &Ring[K, V]{
		opts: r.opts,
	}
	c.appendAll(r)
	return c
}

// Assign replaces the contents of the ring with a deep copy of src.
// Assigning a ring to itself is a no-op.
func (r *Ring[K, V]) Assign(src *Ring[K, V]) {
	if r == src {
		return
	}

	r.list.Clear()
	r.appendAll(src)
}

// Do calls function f with a cursor to each node in forward order starting at the anchor.
// If f returns false, Do stops the iteration.
// f must not change r.
func (r *Ring[K, V]) Do(f func(c Cursor[K, V]) bool) {
	r.list.Do(func(e *ringlist.Element[entry[K, V]]) bool {
		return f(Cursor[K, V]{e: e})
	})
}

// All returns an iterator over key-value pairs in forward order starting at the anchor.
func (r *Ring[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for e := range r.list.All() {
			if !yield(e.Value.key, e.Value.value) {
				return
			}
		}
	}
}

// Backward returns an iterator over key-value pairs in backward order
// starting at the predecessor of the anchor.
func (r *Ring[K, V]) Backward() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for e := range r.list.Backward() {
			if !yield(e.Value.key, e.Value.value) {
				return
			}
		}
	}
}

// Keys returns an iterator over keys in forward order starting at the anchor.
func (r *Ring[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for e := range r.list.All() {
			if !yield(e.Value.key) {
				return
			}
		}
	}
}

func (r *Ring[K, V]) appendAll(src *Ring[K, V]) {
	src.list.Do(func(e *ringlist.Element[entry[K, V]]) bool {
		r.list.PushBack(e.Value)
		return true
	})
}

func (r *Ring[K, V]) owns(c Cursor[K, V]) bool {
	return c.e != nil && c.e.List() == &r.list
}

// resolve returns the occurrence-th element with key.
func (r *Ring[K, V]) resolve(op string, key K, occurrence int) (*ringlist.Element[entry[K, V]], error) {
	if r.list.Len() == 0 {
		return nil, r.fail(op, fmt.Errorf("%s: %w", op, ErrEmpty), logrus.Fields{
			"key": key,
		})
	}

	found := r.Count(key)

	if found == 0 {
		return nil, r.fail(op, fmt.Errorf("%s: key '%v': %w", op, key, ErrKeyNotFound), logrus.Fields{
			"key": key,
		})
	}

	if occurrence < 1 || occurrence > found {
		return nil, r.fail(op, fmt.Errorf(
			"%s: key '%v' found %d times, occurrence %d: %w",
			op,
			key,
			found,
			occurrence,
			ErrOccurrenceOutOfRange,
		), logrus.Fields{
			"key":        key,
			"found":      found,
			"occurrence": occurrence,
		})
	}

	return r.FindNth(key, occurrence).e, nil
}

func (r *Ring[K, V]) fail(op string, err error, fields logrus.Fields) error {
	r.logger().WithError(err).WithFields(fields).Warn("failed to " + op)
	return err
}

func (r *Ring[K, V]) logger() logrus.FieldLogger {
	if r.opts.logger == nil {
		return logrus.StandardLogger()
	}
	return r.opts.logger
}
