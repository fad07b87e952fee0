package ringlist

// Element is a list element.
type Element[V any] struct {
	next, prev *Element[V]
	list       *List[V]
	Value      V
}

// NewElement creates a self-linked element which does not belong to any list.
func NewElement[V any](v V) *Element[V] {
	e := &Element[V]{
		Value: v,
	}
	e.next = e
	e.prev = e
	return e
}

// Next returns the next element. It never returns nil for an element created by NewElement.
func (e *Element[V]) Next() *Element[V] {
	return e.next
}

// Prev returns the previous element. It never returns nil for an element created by NewElement.
func (e *Element[V]) Prev() *Element[V] {
	return e.prev
}

// List returns the list e belongs to or nil if e was removed.
func (e *Element[V]) List() *List[V] {
	return e.list
}

// link inserts s after this element.
func (e *Element[V]) link(s *Element[V]) {
	n := e.next
	e.next = s
	s.prev = e
	n.prev = s
	s.next = n
}

// unlink unlinks this element and makes it self-linked.
func (e *Element[V]) unlink() {
	e.prev.next = e.next
	e.next.prev = e.prev
	e.next = e
	e.prev = e
	e.list = nil
}
