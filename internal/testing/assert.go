package testing

import (
	"reflect"
	"testing"
)

// Linked is a position in a circular doubly linked structure.
type Linked[E any] interface {
	comparable
	Next() E
	Prev() E
}

// AssertEqual asserts that values are deeply equal.
func AssertEqual[T any](t testing.TB, a, b T) {
	t.Helper()

	if !reflect.DeepEqual(a, b) {
		t.Fatalf("expected '%v' to be equal to '%v'", a, b)
	}
}

// AssertCycle asserts that following Next or Prev exactly n times from start
// returns to start and that Prev inverts Next at every step.
func AssertCycle[E Linked[E]](t testing.TB, start E, n int) {
	t.Helper()

	if n < 1 {
		t.Fatalf("expected a non-empty cycle, got length %d", n)
	}

	p := start
	for i := 0; i < n; i++ {
		next := p.Next()
		if next.Prev() != p {
			t.Fatalf("broken link at step %d: next.Prev() != p", i)
		}
		p = next
		if i < n-1 && p == start {
			t.Fatalf("forward cycle closed early after %d steps, expected %d", i+1, n)
		}
	}
	if p != start {
		t.Fatalf("forward walk of %d steps did not return to start", n)
	}

	for i := 0; i < n; i++ {
		prev := p.Prev()
		if prev.Next() != p {
			t.Fatalf("broken link at step %d: prev.Next() != p", i)
		}
		p = prev
		if i < n-1 && p == start {
			t.Fatalf("backward cycle closed early after %d steps, expected %d", i+1, n)
		}
	}
	if p != start {
		t.Fatalf("backward walk of %d steps did not return to start", n)
	}
}
