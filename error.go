package kvring

import "errors"

var (
	// ErrEmpty indicates an operation on an empty ring.
	ErrEmpty = errors.New("ring is empty")
	// ErrKeyNotFound indicates a key was not found.
	ErrKeyNotFound = errors.New("key not found")
	// ErrOccurrenceOutOfRange indicates an occurrence index exceeding the number of matching keys.
	ErrOccurrenceOutOfRange = errors.New("occurrence out of range")
	// ErrInvalidCursor indicates a null cursor or a cursor not pointing into the ring.
	ErrInvalidCursor = errors.New("invalid cursor")
)
