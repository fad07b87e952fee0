/*
Package ringlist implements a circular doubly linked list.

The list keeps a pointer to its back element. The front element is always the
successor of the back element, so the list has no sentinel and every element is
reachable from any other in both directions.
*/
package ringlist

import "iter"

// List is a circular doubly linked list.
//
// The zero value is a ready to use empty list.
type List[V any] struct {
	tail *Element[V]
	len  int
}

// Len returns the number of elements in the list.
func (l *List[V]) Len() int {
	return l.len
}

// Front returns the first element of the list or nil.
func (l *List[V]) Front() *Element[V] {
	if l.len == 0 {
		return nil
	}
	return l.tail.next
}

// Back returns the last element of the list or nil.
func (l *List[V]) Back() *Element[V] {
	return l.tail
}

// PushBack inserts a value at the back of list l and returns the new element.
func (l *List[V]) PushBack(value V) *Element[V] {
	e := NewElement(value)
	l.PushBackElem(e)
	return e
}

// PushBackElem inserts a new element at the back of list l.
// The element must not belong to any list.
func (l *List[V]) PushBackElem(e *Element[V]) {
	if e.list != nil {
		panic("ringlist: invalid element")
	}

	e.list = l
	if l.tail != nil {
		l.tail.link(e)
	}
	l.tail = e
	l.len++
}

// InsertAfter inserts a value immediately after mark and returns the new element.
// If mark == l.Back(), the new element becomes the back element.
func (l *List[V]) InsertAfter(value V, mark *Element[V]) *Element[V] {
	l.mustOwn(mark)

	e := NewElement(value)
	e.list = l
	mark.link(e)
	l.len++

	if mark == l.tail {
		l.tail = e
	}

	return e
}

// InsertBefore inserts a value immediately before mark and returns the new element.
// If mark == l.Front(), the new element becomes the back element and the front is unchanged.
func (l *List[V]) InsertBefore(value V, mark *Element[V]) *Element[V] {
	l.mustOwn(mark)

	return l.InsertAfter(value, mark.prev)
}

// Remove an element from the list.
// When the front element is removed, its successor becomes the new front.
func (l *List[V]) Remove(e *Element[V]) {
	l.mustOwn(e)

	if e == l.tail {
		if l.len == 1 {
			l.tail = nil
		} else {
			l.tail = e.prev
		}
	}
	e.unlink()
	l.len--
}

// Clear removes all elements from the list.
func (l *List[V]) Clear() {
	for l.tail != nil {
		l.Remove(l.tail.next)
	}
}

// Do calls function f on each element of the list, in forward order.
// If f returns false, Do stops the iteration.
// f must not change l.
func (l *List[V]) Do(f func(e *Element[V]) bool) {
	e := l.Front()
	if e == nil {
		return
	}

	if !f(e) {
		return
	}

	for p := e.next; p != e; p = p.next {
		if !f(p) {
			return
		}
	}
}

// All returns an iterator over the elements in forward order starting at the front.
func (l *List[V]) All() iter.Seq[*Element[V]] {
	return func(yield func(*Element[V]) bool) {
		l.Do(yield)
	}
}

// Backward returns an iterator over the elements in backward order starting at the back.
func (l *List[V]) Backward() iter.Seq[*Element[V]] {
	return func(yield func(*Element[V]) bool) {
		e := l.Back()
		if e == nil {
			return
		}

		if !yield(e) {
			return
		}

		for p := e.prev; p != e; p = p.prev {
			if !yield(p) {
				return
			}
		}
	}
}

func (l *List[V]) mustOwn(e *Element[V]) {
	if e == nil || e.list != l {
		panic("ringlist: invalid element")
	}
}
