package kvring

// EqualFunc reports whether r and other have the same length and, walking
// both from their anchors, equal keys and eq-equal values at every position.
// Order matters: rotations of the same sequence are not equal.
func (r *Ring[K, V]) EqualFunc(other *Ring[K, V], eq func(a, b V) bool) bool {
	if r == other {
		return true
	}

	if r.list.Len() != other.list.Len() {
		return false
	}

	a, b := r.list.Front(), other.list.Front()
	for range r.list.Len() {
		if a.Value.key != b.Value.key || !eq(a.Value.value, b.Value.value) {
			return false
		}
		a, b = a.Next(), b.Next()
	}

	return true
}

// Equal reports whether rings a and b hold equal pairs in the same order from their anchors.
func Equal[K, V comparable](a, b *Ring[K, V]) bool {
	return a.EqualFunc(b, func(x, y V) bool {
		return x == y
	})
}
